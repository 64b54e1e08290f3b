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


package core

import "fmt"

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - Query must not be empty
//   - Position, when set, must be positive
//
// NOT validated (optional content zones):
//   - Title, Snippet, MainText, Link, Domain (any may be empty; extraction
//     skips empty zones rather than rejecting the document)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.Query == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyQuery)
	}

	if doc.Position < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrInvalidPosition)
	}

	return nil
}

// ValidateSegment validates a Segment according to domain rules.
//
// Validation rules:
//   - Topic must not be empty
//   - TopicID must not be empty
//   - SegmentID must not be empty
//
// NOT validated (populated by processors):
//   - Vector (can be empty until embedded)
//   - Description (optional; topic alone is embeddable)
//   - ID (derived from content hashing at insert time)
func ValidateSegment(segment *Segment) error {
	if segment == nil {
		return fmt.Errorf("%w: segment is nil", ErrInvalidSegment)
	}

	if segment.Topic == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSegment, ErrEmptyTopic)
	}

	if segment.TopicID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSegment, ErrEmptyTopicID)
	}

	if segment.SegmentID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSegment, ErrEmptySegmentID)
	}

	return nil
}
