package api

import (
	"github.com/audiencelab/intentforge/core"
	"github.com/audiencelab/intentforge/describe"
)

// RawContent is the wire form of the mined evidence bundle.
type RawContent struct {
	CombinedText        string         `json:"combined_text"`
	TopTerms            []string       `json:"top_terms"`
	TopPhrases          []string       `json:"top_phrases"`
	TermFrequencies     map[string]int `json:"term_frequencies"`
	PhraseFrequencies   map[string]int `json:"phrase_frequencies"`
	DocSources          []DocSource    `json:"doc_sources,omitempty"`
	TotalDocs           int            `json:"total_docs"`
	TotalTextLength     int            `json:"total_text_length"`
	Seeds               []string       `json:"seeds"`
	EvidenceCount       int            `json:"evidence_count"`
	ExtractedKeyphrases []string       `json:"extracted_keyphrases,omitempty"`
}

// DocSource is the wire form of per-document evidence metadata.
type DocSource struct {
	Title      string `json:"title"`
	Snippet    string `json:"snippet"`
	Domain     string `json:"domain"`
	Link       string `json:"link"`
	TextLength int    `json:"text_length"`
}

// KeywordBank is the wire form of the curated keyword bank.
type KeywordBank struct {
	ExactTerms      []string `json:"exact_terms"`
	SemanticTerms   []string `json:"semantic_terms"`
	ActionModifiers []string `json:"action_modifiers"`
	Disambiguators  []string `json:"disambiguators"`
	StopTerms       []string `json:"stop_terms"`
	TopDomains      []string `json:"top_domains"`
	EvidenceCount   int      `json:"evidence_count"`
}

// Validation is the wire form of the description validator's verdict.
type Validation struct {
	Valid       bool     `json:"valid"`
	WordCount   int      `json:"word_count"`
	FailedRules []int    `json:"failed_rules,omitempty"`
	Issues      []string `json:"issues,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func rawContentToWire(raw *core.RawContent) *RawContent {
	if raw == nil {
		return nil
	}
	sources := make([]DocSource, len(raw.DocSources))
	for i, s := range raw.DocSources {
		sources[i] = DocSource{
			Title:      s.Title,
			Snippet:    s.Snippet,
			Domain:     s.Domain,
			Link:       s.Link,
			TextLength: s.TextLength,
		}
	}
	return &RawContent{
		CombinedText:        raw.CombinedText,
		TopTerms:            raw.TopTerms,
		TopPhrases:          raw.TopPhrases,
		TermFrequencies:     raw.TermFrequencies,
		PhraseFrequencies:   raw.PhraseFrequencies,
		DocSources:          sources,
		TotalDocs:           raw.TotalDocs,
		TotalTextLength:     raw.TotalTextLength,
		Seeds:               raw.Seeds,
		EvidenceCount:       raw.EvidenceCount,
		ExtractedKeyphrases: raw.ExtractedKeyphrases,
	}
}

func rawContentFromWire(raw *RawContent) *core.RawContent {
	if raw == nil {
		return nil
	}
	sources := make([]core.DocSource, len(raw.DocSources))
	for i, s := range raw.DocSources {
		sources[i] = core.DocSource{
			Title:      s.Title,
			Snippet:    s.Snippet,
			Domain:     s.Domain,
			Link:       s.Link,
			TextLength: s.TextLength,
		}
	}
	return &core.RawContent{
		CombinedText:        raw.CombinedText,
		TopTerms:            raw.TopTerms,
		TopPhrases:          raw.TopPhrases,
		TermFrequencies:     raw.TermFrequencies,
		PhraseFrequencies:   raw.PhraseFrequencies,
		DocSources:          sources,
		TotalDocs:           raw.TotalDocs,
		TotalTextLength:     raw.TotalTextLength,
		Seeds:               raw.Seeds,
		EvidenceCount:       raw.EvidenceCount,
		ExtractedKeyphrases: raw.ExtractedKeyphrases,
	}
}

func bankToWire(bank *core.KeywordBank) *KeywordBank {
	if bank == nil {
		return nil
	}
	return &KeywordBank{
		ExactTerms:      bank.ExactTerms,
		SemanticTerms:   bank.SemanticTerms,
		ActionModifiers: bank.ActionModifiers,
		Disambiguators:  bank.Disambiguators,
		StopTerms:       bank.StopTerms,
		TopDomains:      bank.TopDomains,
		EvidenceCount:   bank.EvidenceCount,
	}
}

func validationToWire(result describe.Result) Validation {
	return Validation{
		Valid:       result.Valid,
		WordCount:   result.WordCount,
		FailedRules: result.FailedRules,
		Issues:      result.Issues,
		Suggestions: result.Suggestions,
	}
}
