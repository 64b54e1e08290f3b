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

import "errors"

// Domain validation errors
var (
	// ErrInvalidDocument indicates a Document failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrInvalidSegment indicates a Segment failed validation.
	ErrInvalidSegment = errors.New("invalid segment")

	// ErrEmptyQuery indicates the Query field is empty.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrInvalidPosition indicates a non-positive result position.
	ErrInvalidPosition = errors.New("position must be positive")

	// ErrEmptyTopic indicates the segment Topic field is empty.
	ErrEmptyTopic = errors.New("segment topic cannot be empty")

	// ErrEmptyTopicID indicates the segment TopicID field is empty.
	ErrEmptyTopicID = errors.New("segment topic id cannot be empty")

	// ErrEmptySegmentID indicates the SegmentID field is empty.
	ErrEmptySegmentID = errors.New("segment id cannot be empty")
)
