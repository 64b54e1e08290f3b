// Copyright 2025 AudienceLab
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package reembed

import (
	"context"

	"github.com/audiencelab/intentforge/core"
	"github.com/audiencelab/intentforge/storage"
)

const (
	// DefaultBatchSize is the default number of segments to fetch in each batch
	DefaultBatchSize = 100
)

// SegmentIterator iterates over all stored segments in batches.
type SegmentIterator struct {
	repo      storage.SegmentRepository
	batchSize int
}

// NewSegmentIterator creates a new segment iterator.
// batchSize: number of segments to process in each batch (must be > 0)
func NewSegmentIterator(repo storage.SegmentRepository, batchSize int) *SegmentIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &SegmentIterator{
		repo:      repo,
		batchSize: batchSize,
	}
}

// ForEach iterates over all segments, calling fn for each batch.
// Iteration stops on first error from fn or when all segments are processed.
// Context cancellation is checked between batches.
func (it *SegmentIterator) ForEach(ctx context.Context, fn func([]*core.Segment) error) error {
	// Check context before starting
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	segments, err := it.repo.GetAllSegments(ctx)
	if err != nil {
		return err
	}

	if len(segments) == 0 {
		// Nothing to process
		return nil
	}

	// Process segments in batches of batchSize
	for i := 0; i < len(segments); i += it.batchSize {
		end := i + it.batchSize
		if end > len(segments) {
			end = len(segments)
		}

		batch := segments[i:end]

		// Call user function with batch
		if err := fn(batch); err != nil {
			return err
		}

		// Check context after each batch
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	return nil
}
