package reembed

import (
	"context"
	"fmt"
	"time"

	"github.com/audiencelab/intentforge/ai"
	"github.com/audiencelab/intentforge/core"
	"github.com/audiencelab/intentforge/storage"
)

// BatchProcessor handles embedding generation for batches of segments.
type BatchProcessor struct {
	repo           storage.SegmentRepository
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of retry attempts for embedding API calls
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(repo storage.SegmentRepository, embedder ai.Embedder, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		repo:           repo,
		embedder:       embedder,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process generates embeddings for a batch of segments and updates them in
// the index. Vectors are normalized after embedding to ensure compatibility
// with cosine similarity.
func (bp *BatchProcessor) Process(ctx context.Context, segments []*core.Segment) error {
	if len(segments) == 0 {
		return nil
	}

	// Embed the topic-and-description text of each segment
	texts := make([]string, len(segments))
	for i, segment := range segments {
		texts[i] = segment.EmbeddingText()
	}

	// Generate embeddings with retry
	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = bp.embedder.EmbedTexts(ctx, texts)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)

	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.maxRetries, err)
	}

	if len(embeddings) != len(segments) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(segments), len(embeddings))
	}

	// Normalize vectors and assign to segments
	for i := range segments {
		segments[i].Vector = NormalizeVector(embeddings[i])
	}

	// Update segments in the index
	_, err = bp.repo.UpdateSegments(ctx, segments...)
	if err != nil {
		return fmt.Errorf("failed to update segments: %w", err)
	}

	return nil
}
