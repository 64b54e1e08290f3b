package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing so that identical content
// always maps to the same identifier.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Zone identifies the structural part of a search result a keyword was found in.
type Zone int

const (
	// ZoneTitle is the result title.
	ZoneTitle Zone = iota + 1
	// ZoneSnippet is the short result snippet.
	ZoneSnippet
	// ZoneMainText is the fetched page body.
	ZoneMainText
	// ZoneURL is the result link.
	ZoneURL
	// ZoneDomain is the registrable domain of the link.
	ZoneDomain
)

// String returns the zone name used in logs and score breakdowns.
func (z Zone) String() string {
	switch z {
	case ZoneTitle:
		return "title"
	case ZoneSnippet:
		return "snippet"
	case ZoneMainText:
		return "maintext"
	case ZoneURL:
		return "url"
	case ZoneDomain:
		return "domain"
	default:
		return "unknown"
	}
}

// Document is one search result, optionally enriched with fetched page text.
// All string fields default to empty; an absent field is skipped during
// extraction, never treated as an error.
type Document struct {
	Query    string
	Title    string
	Snippet  string
	MainText string // Empty unless page fetching was enabled
	Link     string
	Domain   string
	Position int // 1-based rank within the result set
}

// ScoredTerm is a candidate term that cleared its minimum-support threshold.
type ScoredTerm struct {
	Term      string
	DocFreq   int // Number of distinct documents containing the term
	WordCount int // 1, 2 or 3
}

// ZoneScore is a single scoring contribution from one zone of one document.
type ZoneScore struct {
	Zone  Zone
	Score float64
}

// KeywordBank is the curated, ranked output of the extraction pipeline that
// feeds downstream description generation.
type KeywordBank struct {
	ExactTerms      []string
	SemanticTerms   []string
	ActionModifiers []string
	Disambiguators  []string
	StopTerms       []string
	TopDomains      []string
	EvidenceCount   int
}

// DocSource is per-document metadata retained in a RawContent bundle.
type DocSource struct {
	Title      string
	Snippet    string
	Domain     string
	Link       string
	TextLength int
}

// RawContent is the maximal-signal counterpart of KeywordBank: true occurrence
// counts instead of document frequencies, plus the combined source text, for
// consumers that want raw material rather than the curated bank.
type RawContent struct {
	RawTexts            []string
	CombinedText        string
	TopTerms            []string
	TopPhrases          []string
	TermFrequencies     map[string]int
	PhraseFrequencies   map[string]int
	DocSources          []DocSource
	TotalDocs           int
	TotalTextLength     int
	Seeds               []string
	EvidenceCount       int
	ExtractedKeyphrases []string
}

// Segment is a pre-computed audience intent segment stored in the vector index.
type Segment struct {
	Id          ID
	SegmentID   string // External segment identifier
	TopicID     string
	Topic       string
	Description string
	Vector      []float32 // Embedding for similarity search (populated by indexing)
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// Tuple returns a string representation of the segment as "(TopicID,SegmentID)".
// This is used for generating deterministic IDs.
func (s *Segment) Tuple() string {
	return "(" + s.TopicID + "," + s.SegmentID + ")"
}

// EmbeddingText returns the text that is embedded for similarity search.
func (s *Segment) EmbeddingText() string {
	if s.Description == "" {
		return s.Topic
	}
	return s.Topic + ". " + s.Description
}

// SegmentMatch represents a segment match from vector similarity search.
type SegmentMatch struct {
	SegmentId ID
	Score     float32
}

// SegmentResult represents a lookup result with the full segment and relevance score.
type SegmentResult struct {
	Segment *Segment
	Score   float32
}
