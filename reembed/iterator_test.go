package reembed

import (
	"context"
	"fmt"
	"testing"

	"github.com/audiencelab/intentforge/core"
	"github.com/audiencelab/intentforge/storage"
	"github.com/audiencelab/intentforge/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T) storage.SegmentRepository {
	t.Helper()
	repo, backend, err := badger.NewMemorySegmentRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func addTestSegments(t *testing.T, repo storage.SegmentRepository, n int) []*core.Segment {
	t.Helper()
	segments := make([]*core.Segment, n)
	for i := 0; i < n; i++ {
		segments[i] = &core.Segment{
			SegmentID:   fmt.Sprintf("seg-%d", i),
			TopicID:     "topic-1",
			Topic:       "Gutter Guards",
			Description: "Gutter guard systems and debris protection.",
		}
	}
	added, err := repo.AddSegments(context.Background(), segments...)
	require.NoError(t, err)
	require.Len(t, added, n)
	return added
}

func TestSegmentIterator_Basic(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	addTestSegments(t, repo, 3)

	iter := NewSegmentIterator(repo, 2) // Batch size of 2
	count := 0
	var ids []core.ID

	err := iter.ForEach(ctx, func(segments []*core.Segment) error {
		count += len(segments)
		for _, s := range segments {
			ids = append(ids, s.Id)
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, count, "should iterate all 3 segments")
	assert.Len(t, ids, 3, "should have 3 IDs")
}

func TestSegmentIterator_BatchSizes(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	addTestSegments(t, repo, 10)

	tests := []struct {
		name          string
		batchSize     int
		expectedBatch int
	}{
		{"batch size 1", 1, 10},
		{"batch size 3", 3, 4}, // 3+3+3+1
		{"batch size 5", 5, 2}, // 5+5
		{"batch size 10", 10, 1},
		{"batch size 100", 100, 1}, // All in one batch
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iter := NewSegmentIterator(repo, tt.batchSize)
			batchCount := 0
			totalSegments := 0

			err := iter.ForEach(ctx, func(segments []*core.Segment) error {
				batchCount++
				totalSegments += len(segments)
				assert.LessOrEqual(t, len(segments), tt.batchSize, "batch should not exceed batchSize")
				return nil
			})

			require.NoError(t, err)
			assert.Equal(t, tt.expectedBatch, batchCount, "batch count")
			assert.Equal(t, 10, totalSegments, "total segments")
		})
	}
}

func TestSegmentIterator_EmptyIndex(t *testing.T) {
	repo := setupTestRepo(t)

	iter := NewSegmentIterator(repo, 10)
	called := false

	err := iter.ForEach(context.Background(), func(segments []*core.Segment) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.False(t, called, "callback should not be called for empty index")
}

func TestSegmentIterator_ErrorHandling(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	addTestSegments(t, repo, 2)

	iter := NewSegmentIterator(repo, 1)
	called := 0

	expectedErr := assert.AnError
	err := iter.ForEach(ctx, func(segments []*core.Segment) error {
		called++
		if called == 1 {
			return expectedErr
		}
		return nil
	})

	require.Error(t, err)
	assert.Equal(t, expectedErr, err, "should return callback error")
	assert.Equal(t, 1, called, "should stop on first error")
}

func TestSegmentIterator_ContextCancellation(t *testing.T) {
	repo := setupTestRepo(t)
	ctx, cancel := context.WithCancel(context.Background())

	addTestSegments(t, repo, 5)

	iter := NewSegmentIterator(repo, 1)
	called := 0

	err := iter.ForEach(ctx, func(segments []*core.Segment) error {
		called++
		if called == 2 {
			cancel()
		}
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, called, "should process until context canceled")
}

func TestSegmentIterator_InvalidBatchSize(t *testing.T) {
	repo := setupTestRepo(t)

	// Zero batch size should be handled gracefully
	iter := NewSegmentIterator(repo, 0)
	assert.Greater(t, iter.batchSize, 0, "should use default batch size for invalid input")

	// Negative batch size
	iter = NewSegmentIterator(repo, -10)
	assert.Greater(t, iter.batchSize, 0, "should use default batch size for negative input")
}
