package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/audiencelab/intentforge/ai"
	"github.com/audiencelab/intentforge/core"
	"github.com/audiencelab/intentforge/storage"
)

// segmentIndexer generates embeddings for stored segments.
type segmentIndexer struct {
	segmentRepository storage.SegmentRepository
	embedder          ai.Embedder
	logger            *slog.Logger
}

// newSegmentIndexer creates a new segment indexer.
func newSegmentIndexer(segmentRepository storage.SegmentRepository, embedder ai.Embedder, logger *slog.Logger) (*segmentIndexer, error) {
	if segmentRepository == nil {
		return nil, ErrSegmentRepositoryRequired
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedder required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &segmentIndexer{
		segmentRepository: segmentRepository,
		embedder:          embedder,
		logger:            logger.With("processor", "segment-index"),
	}, nil
}

// process generates embeddings for the specified segments.
func (si *segmentIndexer) process(ctx context.Context, ids ...core.ID) error {
	si.logger.Info("embedding segments", "segments", len(ids))

	slices.Sort(ids)

	segments, err := si.segmentRepository.GetSegments(ctx, ids...)
	if err != nil {
		si.logger.Error("error retrieving segments", "err", err)
		return err
	}

	texts := make([]string, len(segments))
	for i, segment := range segments {
		texts[i] = segment.EmbeddingText()
	}

	si.logger.Debug("generating embeddings for segments", "segments", len(texts))
	embeddings, err := si.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		si.logger.Error("error generating embeddings", "err", err)
		return err
	}

	if len(embeddings) != len(segments) {
		return fmt.Errorf("embedding result mismatch. expected %d, received %d", len(segments), len(embeddings))
	}

	for i := range embeddings {
		segments[i].Vector = embeddings[i]
	}

	_, err = si.segmentRepository.UpdateSegments(ctx, segments...)
	return err
}
