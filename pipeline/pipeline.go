package pipeline

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/audiencelab/intentforge/ai"
	"github.com/audiencelab/intentforge/core"
	"github.com/audiencelab/intentforge/serp"
	"github.com/audiencelab/intentforge/storage"
	"github.com/panjf2000/ants/v2"
)

// Pipeline orchestrates phase 1 (mining), phase 2 (description) and the
// optional indexing of finished intents as segments.
type Pipeline struct {
	fetcher           *serp.Fetcher
	writer            ai.IntentWriter
	segmentRepository storage.SegmentRepository
	indexPool         *ants.Pool
	indexer           *segmentIndexer
	logger            *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for async segment indexing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.indexPool != nil {
			p.indexPool.Release()
		}

		indexPool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		p.indexPool = indexPool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithSegmentRepository enables indexing of finished intents into the
// given segment store. Without a repository, Index is a no-op error and
// Run skips indexing.
func WithSegmentRepository(repo storage.SegmentRepository) Option {
	return func(p *Pipeline) error {
		p.segmentRepository = repo
		return nil
	}
}

// NewPipeline creates a new intent building pipeline.
func NewPipeline(fetcher *serp.Fetcher, provider ai.AIProvider, opts ...Option) (*Pipeline, error) {
	if fetcher == nil {
		return nil, ErrFetcherRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	indexPool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		fetcher:   fetcher,
		writer:    provider.IntentWriter(),
		indexPool: indexPool,
		logger:    slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	if p.segmentRepository != nil {
		indexer, err := newSegmentIndexer(p.segmentRepository, provider.Embedder(), p.logger)
		if err != nil {
			p.Release()
			return nil, err
		}
		p.indexer = indexer
	}

	return p, nil
}

// Index stores the segments and schedules their embeddings asynchronously.
// Embedding errors are logged but do not fail the call.
func (p *Pipeline) Index(ctx context.Context, segments ...*core.Segment) ([]*core.Segment, error) {
	if p.segmentRepository == nil {
		return nil, ErrSegmentRepositoryRequired
	}

	added, err := p.segmentRepository.AddSegments(ctx, segments...)
	if err != nil {
		return nil, err
	}

	if len(added) == 0 {
		return added, nil
	}

	ids := make([]core.ID, len(added))
	for i, segment := range added {
		ids[i] = segment.Id
	}

	// Submit for async embedding
	p.indexPool.Submit(func() {
		if err := p.indexer.process(context.Background(), ids...); err != nil {
			p.logger.Error("error embedding segments", "err", err)
		}
	})

	return added, nil
}

// Release releases resources including the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.indexPool != nil {
		p.indexPool.Release()
	}
}
