package core

import (
	"errors"
	"testing"
)

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name    string
		doc     *Document
		wantErr error
	}{
		{
			name: "valid document",
			doc: &Document{
				Query:    "gutter guards",
				Title:    "Best Gutter Guards of 2026",
				Snippet:  "We tested the leading gutter protection systems.",
				Link:     "https://example.com/gutter-guards",
				Domain:   "example.com",
				Position: 1,
			},
			wantErr: nil,
		},
		{
			name: "valid document with only a query",
			doc: &Document{
				Query: "gutter guards",
			},
			wantErr: nil,
		},
		{
			name: "valid document with empty main text",
			doc: &Document{
				Query:    "gutter guards",
				Title:    "Gutter Guard Reviews",
				MainText: "",
				Position: 3,
			},
			wantErr: nil,
		},
		{
			name:    "nil document",
			doc:     nil,
			wantErr: ErrInvalidDocument,
		},
		{
			name: "empty query",
			doc: &Document{
				Query: "",
				Title: "Gutter Guard Reviews",
			},
			wantErr: ErrEmptyQuery,
		},
		{
			name: "negative position",
			doc: &Document{
				Query:    "gutter guards",
				Position: -1,
			},
			wantErr: ErrInvalidPosition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(tt.doc)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateDocument() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Errorf("ValidateDocument() error = nil, want %v", tt.wantErr)
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDocument() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSegment(t *testing.T) {
	tests := []struct {
		name    string
		segment *Segment
		wantErr error
	}{
		{
			name: "valid segment",
			segment: &Segment{
				Id:          1,
				SegmentID:   "seg-42",
				TopicID:     "128",
				Topic:       "Gutter Protection",
				Description: "Homeowners researching leaf guards.",
			},
			wantErr: nil,
		},
		{
			name: "valid segment with empty vector",
			segment: &Segment{
				Id:        1,
				SegmentID: "seg-42",
				TopicID:   "128",
				Topic:     "Gutter Protection",
				Vector:    nil,
			},
			wantErr: nil,
		},
		{
			name: "valid segment with ID 0",
			segment: &Segment{
				Id:        0,
				SegmentID: "seg-42",
				TopicID:   "128",
				Topic:     "Gutter Protection",
			},
			wantErr: nil,
		},
		{
			name:    "nil segment",
			segment: nil,
			wantErr: ErrInvalidSegment,
		},
		{
			name: "empty topic",
			segment: &Segment{
				Id:        1,
				SegmentID: "seg-42",
				TopicID:   "128",
				Topic:     "",
			},
			wantErr: ErrEmptyTopic,
		},
		{
			name: "empty topic id",
			segment: &Segment{
				Id:        1,
				SegmentID: "seg-42",
				TopicID:   "",
				Topic:     "Gutter Protection",
			},
			wantErr: ErrEmptyTopicID,
		},
		{
			name: "empty segment id",
			segment: &Segment{
				Id:      1,
				TopicID: "128",
				Topic:   "Gutter Protection",
			},
			wantErr: ErrEmptySegmentID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSegment(tt.segment)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateSegment() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Errorf("ValidateSegment() error = nil, want %v", tt.wantErr)
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateSegment() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
