package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "camel case split",
			input: "RoofingSystemInstallationAndRepairIntent",
			want:  "Roofing System Installation And Repair",
		},
		{
			name:  "acronym preserved",
			input: "SPFAuthenticationSetup",
			want:  "SPF Authentication Setup",
		},
		{
			name:  "already formatted",
			input: "Gutter Guard Installation",
			want:  "Gutter Guard Installation",
		},
		{
			name:  "generic suffix stripped",
			input: "Email Deliverability Platform",
			want:  "Email Deliverability",
		},
		{
			name:  "suffix stripped case insensitively",
			input: "Inbox Placement SOLUTION",
			want:  "Inbox Placement",
		},
		{
			name:  "whitespace collapsed",
			input: "Cold  Email   Outreach",
			want:  "Cold Email Outreach",
		},
		{
			name:  "all caps acronym untouched",
			input: "DMARC",
			want:  "DMARC",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatName(tt.input))
		})
	}
}

func TestFallbackNames(t *testing.T) {
	names := FallbackNames("gutter guards")

	assert.Equal(t, []string{
		"gutter guards Option 1",
		"gutter guards Option 2",
		"gutter guards Option 3",
	}, names)
}

func TestLensKnown(t *testing.T) {
	for _, lens := range Lenses {
		assert.True(t, lens.Known(), "lens %q should be known", lens)
	}
	assert.False(t, Lens("vertical").Known())
	assert.False(t, Lens("").Known())
}
