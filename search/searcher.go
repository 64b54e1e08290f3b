package search

import (
	"context"
	"log/slog"
	"sort"

	"github.com/audiencelab/intentforge/ai"
	"github.com/audiencelab/intentforge/core"
	"github.com/audiencelab/intentforge/storage"
)

// minSimilarity is the vector similarity floor for candidate segments.
const minSimilarity = 0.60

// verbatimBoost is added when every query word appears in the segment text.
const verbatimBoost = 0.3

// Searcher provides semantic segment lookup with verbatim keyword boosting.
type Searcher struct {
	segmentRepository storage.SegmentRepository
	embedder          ai.Embedder
	logger            *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	segmentRepository storage.SegmentRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Searcher, error) {
	if segmentRepository == nil {
		return nil, ErrSegmentRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	s := &Searcher{
		segmentRepository: segmentRepository,
		embedder:          provider.Embedder(),
		logger:            slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// FindSimilar searches for segments similar to the query.
// Returns up to maxHits results, ranked by relevance score.
func (s *Searcher) FindSimilar(ctx context.Context, query string, maxHits int) ([]*core.SegmentResult, error) {
	return s.FindSimilarWithMonitor(ctx, query, maxHits, nil)
}

// FindSimilarWithMonitor searches for segments similar to the query with monitoring.
// The monitor receives callbacks at each stage of the search process.
// Returns up to maxHits results, ranked by relevance score.
func (s *Searcher) FindSimilarWithMonitor(ctx context.Context, query string, maxHits int, monitor SearchMonitor) ([]*core.SegmentResult, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	// 1. Embed the query
	embedding, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}

	// 2. Vector similarity over the segment index
	matches, err := s.segmentRepository.FindSimilar(ctx, embedding, minSimilarity, maxHits)
	if err != nil {
		s.logger.Error("error querying for similar segments", "err", err)
		return nil, err
	}

	semanticIds := make([]uint64, 0, len(matches))
	for _, match := range matches {
		semanticIds = append(semanticIds, uint64(match.Segment.Id))
	}
	monitor.AfterSemanticSearch(semanticIds)

	// 3. Score with verbatim match boost
	results := make([]*core.SegmentResult, 0, len(matches))
	for _, match := range matches {
		score := match.Score

		if containsAllQueryWords(match.Segment.EmbeddingText(), query) {
			score += verbatimBoost
			monitor.VerbatimHit(match.Segment)
		} else {
			monitor.SemanticHit(match.Segment)
		}

		results = append(results, &core.SegmentResult{
			Segment: match.Segment,
			Score:   score,
		})
	}

	// Sort by score descending
	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > maxHits {
		results = results[:maxHits]
	}
	monitor.Finish(results)

	return results, nil
}
