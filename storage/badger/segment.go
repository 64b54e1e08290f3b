package badger

import (
	"context"
	"time"

	"github.com/audiencelab/intentforge/core"
	"github.com/audiencelab/intentforge/storage"
	"github.com/dgraph-io/badger/v4"
)

// SegmentRepository implements storage.SegmentRepository for BadgerDB.
type SegmentRepository struct {
	backend *Backend
}

var _ storage.SegmentRepository = (*SegmentRepository)(nil)

// NewSegmentRepository creates a new SegmentRepository.
func NewSegmentRepository(backend *Backend) (*SegmentRepository, error) {
	return &SegmentRepository{
		backend: backend,
	}, nil
}

// Close releases resources. SegmentRepository has no resources to release.
func (r *SegmentRepository) Close() error {
	return nil
}

// FindSimilar delegates to the backend.
func (r *SegmentRepository) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SegmentResult, error) {
	return r.backend.FindSimilar(ctx, vector, minSimilarity, limit)
}

// WithTransaction delegates to the backend.
func (r *SegmentRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddSegments adds one or more segments to storage.
func (r *SegmentRepository) AddSegments(ctx context.Context, segments ...*core.Segment) ([]*core.Segment, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, segment := range segments {
			if err := core.ValidateSegment(segment); err != nil {
				return err
			}

			// Use content-based ID if not set
			if segment.Id == 0 {
				segment.Id = core.IDFromContent(segment.Tuple())
			}

			// Set timestamps
			segment.InsertedAt = time.Now().UTC()
			segment.UpdatedAt = segment.InsertedAt

			// Store primary record
			key := makeSegmentKey(segment.Id)
			value := storage.MarshalSegment(segment)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Store tuple index
			tupleKey := makeSegmentTupleKey(segment.TopicID, segment.SegmentID)
			if err := tx.Set(tupleKey, storage.MarshalID(segment.Id)); err != nil {
				return err
			}

			// Store topic index
			topicKey := makeSegmentTopicKey(segment.TopicID, segment.Id)
			if err := tx.Set(topicKey, storage.MarshalID(segment.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return segments, err
}

// UpdateSegments updates existing segments.
func (r *SegmentRepository) UpdateSegments(ctx context.Context, segments ...*core.Segment) ([]*core.Segment, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, segment := range segments {
			key := makeSegmentKey(segment.Id)

			// Read old segment to detect changes
			old, err := readSegment(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			// Update timestamp
			segment.UpdatedAt = time.Now().UTC()

			// Store updated record
			value := storage.MarshalSegment(segment)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update indices if the tuple changed
			if old.TopicID != segment.TopicID || old.SegmentID != segment.SegmentID {
				oldTupleKey := makeSegmentTupleKey(old.TopicID, old.SegmentID)
				if err := tx.Delete(oldTupleKey); err != nil {
					return err
				}
				newTupleKey := makeSegmentTupleKey(segment.TopicID, segment.SegmentID)
				if err := tx.Set(newTupleKey, storage.MarshalID(segment.Id)); err != nil {
					return err
				}
			}
			if old.TopicID != segment.TopicID {
				oldTopicKey := makeSegmentTopicKey(old.TopicID, segment.Id)
				if err := tx.Delete(oldTopicKey); err != nil {
					return err
				}
				newTopicKey := makeSegmentTopicKey(segment.TopicID, segment.Id)
				if err := tx.Set(newTopicKey, storage.MarshalID(segment.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return segments, err
}

// DeleteSegments removes segments by their IDs.
func (r *SegmentRepository) DeleteSegments(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeSegmentKey(id)

			// Read segment to get metadata for index cleanup
			segment, err := readSegment(tx, key)
			if err != nil {
				return err
			}
			if segment == nil {
				return storage.ErrNotFound
			}

			// Delete from tuple index
			tupleKey := makeSegmentTupleKey(segment.TopicID, segment.SegmentID)
			if err := tx.Delete(tupleKey); err != nil {
				return err
			}

			// Delete from topic index
			topicKey := makeSegmentTopicKey(segment.TopicID, segment.Id)
			if err := tx.Delete(topicKey); err != nil {
				return err
			}

			// Delete primary record
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetSegment retrieves a single segment by ID.
func (r *SegmentRepository) GetSegment(ctx context.Context, id core.ID) (*core.Segment, error) {
	var result *core.Segment
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSegmentKey(id)
		var err error
		result, err = readSegment(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetSegments retrieves multiple segments by their IDs.
func (r *SegmentRepository) GetSegments(ctx context.Context, ids ...core.ID) ([]*core.Segment, error) {
	var result []*core.Segment
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeSegmentKey(id)
			segment, err := readSegment(tx, key)
			if err != nil {
				return err
			}
			if segment != nil {
				result = append(result, segment)
			}
		}
		return nil
	}, false)
	return result, err
}

// FindSegmentByTuple finds a segment by its (topicID, segmentID) tuple.
func (r *SegmentRepository) FindSegmentByTuple(ctx context.Context, topicID, segmentID string) (*core.Segment, error) {
	var result *core.Segment
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Look up ID from tuple index
		tupleKey := makeSegmentTupleKey(topicID, segmentID)
		item, err := tx.Get(tupleKey)
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		var segmentRecordID core.ID
		err = item.Value(func(val []byte) error {
			segmentRecordID, err = storage.UnmarshalID(val)
			return err
		})
		if err != nil {
			return err
		}

		// Look up full segment
		segmentKey := makeSegmentKey(segmentRecordID)
		result, err = readSegment(tx, segmentKey)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetSegmentsByTopic retrieves all segments belonging to a topic.
func (r *SegmentRepository) GetSegmentsByTopic(ctx context.Context, topicID string) ([]*core.Segment, error) {
	var results []*core.Segment
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Collect segment IDs from the topic index
		var ids []core.ID
		opts := badger.DefaultIteratorOptions
		prefix := makePartialSegmentTopicKey(topicID)
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				id, err := storage.UnmarshalID(val)
				if err != nil {
					return err
				}
				ids = append(ids, id)
				return nil
			})
			if err != nil {
				return err
			}
		}

		// Resolve IDs to full segments
		for _, id := range ids {
			segment, err := readSegment(tx, makeSegmentKey(id))
			if err != nil {
				return err
			}
			if segment != nil {
				results = append(results, segment)
			}
		}
		return nil
	}, false)

	return results, err
}

// GetAllSegments retrieves all segments from storage.
func (r *SegmentRepository) GetAllSegments(ctx context.Context) ([]*core.Segment, error) {
	var results []*core.Segment
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		opts.Prefix = []byte(segmentRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var segment *core.Segment
			err := iter.Item().Value(func(val []byte) error {
				var err error
				segment, err = storage.UnmarshalSegment(val)
				return err
			})
			if err != nil {
				return err
			}

			if segment != nil {
				results = append(results, segment)
			}
		}
		return nil
	}, false)

	return results, err
}

// readSegment reads a segment from the transaction.
func readSegment(tx *badger.Txn, key []byte) (*core.Segment, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var segment *core.Segment
	err = item.Value(func(val []byte) error {
		var err error
		segment, err = storage.UnmarshalSegment(val)
		return err
	})
	return segment, err
}
