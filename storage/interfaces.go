package storage

import (
	"context"

	"github.com/audiencelab/intentforge/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// FindSimilar finds segments similar to the given vector.
	// Returns segments with similarity >= minSimilarity, up to limit results.
	// Results are ordered by similarity score (highest first).
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SegmentResult, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// SegmentRepository provides operations for managing intent segments.
type SegmentRepository interface {
	Repository
	// AddSegments adds one or more segments to storage.
	// Uses content-based IDs (IDFromContent of segment tuple) for segments with Id=0.
	// Sets InsertedAt timestamp if not already set.
	// Returns the segments with IDs and timestamps populated.
	AddSegments(ctx context.Context, segments ...*core.Segment) ([]*core.Segment, error)

	// UpdateSegments updates existing segments.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any segment doesn't exist.
	UpdateSegments(ctx context.Context, segments ...*core.Segment) ([]*core.Segment, error)

	// DeleteSegments removes segments by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any segment doesn't exist.
	DeleteSegments(ctx context.Context, ids ...core.ID) error

	// GetSegment retrieves a single segment by ID.
	// Returns ErrNotFound if the segment doesn't exist.
	GetSegment(ctx context.Context, id core.ID) (*core.Segment, error)

	// GetSegments retrieves multiple segments by their IDs.
	// Returns only the segments that exist (no error for missing segments).
	GetSegments(ctx context.Context, ids ...core.ID) ([]*core.Segment, error)

	// FindSegmentByTuple finds a segment by its (topicID, segmentID) tuple.
	// Returns ErrNotFound if no matching segment exists.
	FindSegmentByTuple(ctx context.Context, topicID, segmentID string) (*core.Segment, error)

	// GetSegmentsByTopic retrieves all segments belonging to a topic,
	// ordered by segment ID.
	GetSegmentsByTopic(ctx context.Context, topicID string) ([]*core.Segment, error)

	// GetAllSegments retrieves every stored segment.
	// Intended for bulk operations such as reindexing.
	GetAllSegments(ctx context.Context) ([]*core.Segment, error)
}
