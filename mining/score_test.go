package mining

import (
	"testing"

	"github.com/audiencelab/intentforge/core"
)

func docWith(title string) core.Document {
	return core.Document{Query: "gutter guards", Title: title}
}

func TestScoreTerms_UnigramThreshold(t *testing.T) {
	// "gutter" appears in 4 documents, "downspout" in only 3.
	docs := []core.Document{
		docWith("gutter protection overview"),
		docWith("gutter cleaning tips downspout"),
		docWith("gutter maintenance downspout"),
		docWith("gutter repair downspout extensions"),
	}

	scores := ScoreTerms(docs)

	if df, ok := scores["gutter"]; !ok || df != 4 {
		t.Errorf("scores[gutter] = %d, %v; want 4, true", df, ok)
	}
	if _, ok := scores["downspout"]; ok {
		t.Error("downspout appears in 3 docs; unigram threshold is 4, want absent")
	}
}

func TestScoreTerms(t *testing.T) {
	docs := []core.Document{
		docWith("gutter guards installation pricing"),
		docWith("gutter guards installation pricing"),
		docWith("gutter guards installation pricing"),
		docWith("gutter guards installation pricing"),
	}

	scores := ScoreTerms(docs)

	tests := []struct {
		term   string
		wantDF int
	}{
		{"gutter", 4},
		{"guards", 4},
		{"installation", 4},
		{"pricing", 4},
		{"gutter guards", 4},
		{"guards installation", 4},
		{"gutter guards installation", 4},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			if df := scores[tt.term]; df != tt.wantDF {
				t.Errorf("scores[%q] = %d, want %d", tt.term, df, tt.wantDF)
			}
		})
	}
}

func TestScoreTerms_PhraseThreshold(t *testing.T) {
	docs := []core.Document{
		docWith("micro mesh guards"),
		docWith("micro mesh guards"),
		docWith("unrelated roofing article"),
		docWith("another unrelated piece"),
	}

	scores := ScoreTerms(docs)

	// Phrase threshold is 2 distinct docs.
	if df := scores["micro mesh"]; df != 2 {
		t.Errorf("scores[%q] = %d, want 2", "micro mesh", df)
	}
	// "micro" is a unigram seen in only 2 docs: below the unigram bar.
	if _, ok := scores["micro"]; ok {
		t.Errorf("unigram below support threshold should be dropped")
	}
}

func TestScoreTerms_DuplicatesWithinDoc(t *testing.T) {
	docs := []core.Document{
		{Query: "q", Title: "gutter gutter gutter", Snippet: "gutter gutter"},
		docWith("gutter systems"),
		docWith("gutter systems"),
		docWith("gutter systems"),
	}

	scores := ScoreTerms(docs)

	// Repetition within a single page must not inflate document frequency.
	if df := scores["gutter"]; df != 4 {
		t.Errorf("scores[gutter] = %d, want 4 (one per document)", df)
	}
}

func TestScoreTerms_Empty(t *testing.T) {
	if scores := ScoreTerms(nil); len(scores) != 0 {
		t.Errorf("ScoreTerms(nil) = %v, want empty", scores)
	}
}
