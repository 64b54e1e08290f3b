package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/audiencelab/intentforge/core"
)

// Key prefixes for different data types
const (
	segmentRecordPrefix = "segrec"
	segmentTuplePrefix  = "segtup"
	segmentTopicPrefix  = "segtop"
)

// makeSegmentKey generates a key for a segment by ID.
func makeSegmentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", segmentRecordPrefix, id))
}

// makeSegmentTupleKey generates a composite key for segment lookup by
// (topicID, segmentID).
// Format: prefix:topicID:segmentID
func makeSegmentTupleKey(topicID, segmentID string) []byte {
	prefix := segmentTuplePrefix + ":"
	totalSize := len(prefix) + len(topicID) + 1 + len(segmentID)
	buf := make([]byte, totalSize)
	offset := copy(buf, []byte(prefix))
	offset += copy(buf[offset:], []byte(topicID))
	buf[offset] = ':'
	offset++
	copy(buf[offset:], []byte(segmentID))
	return buf
}

// makeSegmentTopicKey generates a composite key for the topic index.
// Format: prefix:topicID:id
func makeSegmentTopicKey(topicID string, id core.ID) []byte {
	prefix := segmentTopicPrefix + ":" + topicID + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialSegmentTopicKey generates a partial key for topic queries.
// Format: prefix:topicID:
func makePartialSegmentTopicKey(topicID string) []byte {
	return []byte(segmentTopicPrefix + ":" + topicID + ":")
}
