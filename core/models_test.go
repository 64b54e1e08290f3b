package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantSame bool
	}{
		{
			name:     "same content produces same ID",
			content:  "test content",
			wantSame: true,
		},
		{
			name:     "empty string",
			content:  "",
			wantSame: true,
		},
		{
			name:     "long content",
			content:  "This is a much longer piece of content that should still hash consistently",
			wantSame: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if tt.wantSame && id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestSegment_Tuple(t *testing.T) {
	tests := []struct {
		name    string
		segment Segment
		want    string
	}{
		{
			name: "basic segment",
			segment: Segment{
				TopicID:   "128",
				SegmentID: "seg-42",
			},
			want: "(128,seg-42)",
		},
		{
			name: "identifiers with spaces",
			segment: Segment{
				TopicID:   "topic id",
				SegmentID: "segment id",
			},
			want: "(topic id,segment id)",
		},
		{
			name: "empty segment",
			segment: Segment{
				TopicID:   "",
				SegmentID: "",
			},
			want: "(,)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.segment.Tuple()
			if got != tt.want {
				t.Errorf("Segment.Tuple() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSegment_EmbeddingText(t *testing.T) {
	tests := []struct {
		name    string
		segment Segment
		want    string
	}{
		{
			name: "topic and description",
			segment: Segment{
				Topic:       "Gutter Protection",
				Description: "Homeowners researching leaf guards.",
			},
			want: "Gutter Protection. Homeowners researching leaf guards.",
		},
		{
			name: "topic only",
			segment: Segment{
				Topic: "Gutter Protection",
			},
			want: "Gutter Protection",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.segment.EmbeddingText()
			if got != tt.want {
				t.Errorf("Segment.EmbeddingText() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestZone_String(t *testing.T) {
	tests := []struct {
		zone Zone
		want string
	}{
		{ZoneTitle, "title"},
		{ZoneSnippet, "snippet"},
		{ZoneMainText, "maintext"},
		{ZoneURL, "url"},
		{ZoneDomain, "domain"},
		{Zone(0), "unknown"},
		{Zone(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.zone.String(); got != tt.want {
				t.Errorf("Zone.String() = %v, want %v", got, tt.want)
			}
		})
	}
}
