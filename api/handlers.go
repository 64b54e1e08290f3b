package api

import (
	"errors"
	"net/http"

	"github.com/audiencelab/intentforge/ai"
	"github.com/audiencelab/intentforge/mining"
	"github.com/audiencelab/intentforge/pipeline"
)

const (
	defaultExtractTopN = 15
	maxExtractTopN     = 50
	defaultMaxHits     = 10
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Phase1Request is the wire form of the mining phase inputs.
type Phase1Request struct {
	SeedKeywords    []string `json:"seed_keywords"`
	Locale          string   `json:"locale"`
	ResultsPerQuery int      `json:"results_per_query"`
	HTMLFetch       bool     `json:"html_fetch"`
	// ExtractPhrases defaults to true when omitted.
	ExtractPhrases *bool `json:"extract_phrases"`
}

// Phase1Response carries the mined evidence and the draft description.
type Phase1Response struct {
	RawContent       *RawContent    `json:"raw_content"`
	KeywordBank      *KeywordBank   `json:"keyword_bank"`
	Domain           string         `json:"domain"`
	DraftDescription string         `json:"draft_description"`
	Meta             map[string]any `json:"meta"`
}

func (req *Phase1Request) toPipeline() *pipeline.Phase1Request {
	extractPhrases := true
	if req.ExtractPhrases != nil {
		extractPhrases = *req.ExtractPhrases
	}
	return &pipeline.Phase1Request{
		Seeds:          req.SeedKeywords,
		Locale:         req.Locale,
		PerQuery:       req.ResultsPerQuery,
		FetchPages:     req.HTMLFetch,
		ExtractPhrases: extractPhrases,
	}
}

func phase1Meta(req *Phase1Request, result *pipeline.Phase1Result) map[string]any {
	return map[string]any{
		"queries":            req.SeedKeywords,
		"locale":             req.Locale,
		"results_per_query":  req.ResultsPerQuery,
		"html_fetch_enabled": req.HTMLFetch,
		"docs_analyzed":      result.RawContent.EvidenceCount,
		"failed_queries":     result.FailedQueries,
	}
}

func (s *Server) handlePhase1(w http.ResponseWriter, r *http.Request) {
	var req Phase1Request
	if !s.decode(w, r, &req) {
		return
	}

	result, err := s.pipeline.RunPhase1(r.Context(), req.toPipeline())
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	s.writeJSON(w, http.StatusOK, Phase1Response{
		RawContent:       rawContentToWire(result.RawContent),
		KeywordBank:      bankToWire(result.Bank),
		Domain:           result.Domain,
		DraftDescription: result.DraftDescription,
		Meta:             phase1Meta(&req, result),
	})
}

// Phase2Request is the wire form of the description phase inputs.
type Phase2Request struct {
	Topic       string      `json:"topic"`
	Lens        string      `json:"lens"`
	Category    string      `json:"category"`
	Subcategory string      `json:"sub_category"`
	RawContent  *RawContent `json:"raw_content"`
}

// Phase2Response carries the candidate names and validated description.
type Phase2Response struct {
	Names       []string   `json:"names"`
	Description string     `json:"description"`
	Validation  Validation `json:"validation"`
}

func (s *Server) handlePhase2(w http.ResponseWriter, r *http.Request) {
	var req Phase2Request
	if !s.decode(w, r, &req) {
		return
	}

	result, err := s.pipeline.RunPhase2(r.Context(), &pipeline.Phase2Request{
		Topic:       req.Topic,
		Lens:        ai.Lens(req.Lens),
		Category:    req.Category,
		Subcategory: req.Subcategory,
		RawContent:  rawContentFromWire(req.RawContent),
	})
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	s.writeJSON(w, http.StatusOK, Phase2Response{
		Names:       result.Names,
		Description: result.Description,
		Validation:  validationToWire(result.Validation),
	})
}

// PipelineRequest is the wire form of a combined phase 1 → phase 2 run.
type PipelineRequest struct {
	SeedKeywords    []string `json:"seed_keywords"`
	Locale          string   `json:"locale"`
	ResultsPerQuery int      `json:"results_per_query"`
	HTMLFetch       bool     `json:"html_fetch"`
	ExtractPhrases  *bool    `json:"extract_phrases"`

	LensType    string `json:"lens_type"`
	Topic       string `json:"topic"`
	Category    string `json:"category"`
	Subcategory string `json:"sub_category"`

	Index     bool   `json:"index"`
	TopicID   string `json:"topic_id"`
	SegmentID string `json:"segment_id"`
}

// PipelineResponse combines both phase outputs.
type PipelineResponse struct {
	RawContent       *RawContent    `json:"raw_content"`
	KeywordBank      *KeywordBank   `json:"keyword_bank"`
	Domain           string         `json:"domain"`
	DraftDescription string         `json:"draft_description"`
	Meta             map[string]any `json:"meta"`

	Topic       string     `json:"topic"`
	Names       []string   `json:"names"`
	Description string     `json:"description"`
	Validation  Validation `json:"validation"`
	SegmentID   string     `json:"segment_id,omitempty"`
}

func (s *Server) handlePipeline(w http.ResponseWriter, r *http.Request) {
	var req PipelineRequest
	if !s.decode(w, r, &req) {
		return
	}

	extractPhrases := true
	if req.ExtractPhrases != nil {
		extractPhrases = *req.ExtractPhrases
	}

	result, err := s.pipeline.Run(r.Context(), &pipeline.Request{
		Seeds:          req.SeedKeywords,
		Locale:         req.Locale,
		PerQuery:       req.ResultsPerQuery,
		FetchPages:     req.HTMLFetch,
		ExtractPhrases: extractPhrases,
		Topic:          req.Topic,
		Lens:           ai.Lens(req.LensType),
		Category:       req.Category,
		Subcategory:    req.Subcategory,
		Index:          req.Index,
		TopicID:        req.TopicID,
		SegmentID:      req.SegmentID,
	})
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	resp := PipelineResponse{
		RawContent:       rawContentToWire(result.Phase1.RawContent),
		KeywordBank:      bankToWire(result.Phase1.Bank),
		Domain:           result.Phase1.Domain,
		DraftDescription: result.Phase1.DraftDescription,
		Meta: map[string]any{
			"queries":            req.SeedKeywords,
			"locale":             req.Locale,
			"results_per_query":  req.ResultsPerQuery,
			"html_fetch_enabled": req.HTMLFetch,
			"docs_analyzed":      result.Phase1.RawContent.EvidenceCount,
			"failed_queries":     result.Phase1.FailedQueries,
		},
		Topic:       result.Topic,
		Names:       result.Phase2.Names,
		Description: result.Phase2.Description,
		Validation:  validationToWire(result.Phase2.Validation),
	}
	if result.Segment != nil {
		resp.SegmentID = result.Segment.SegmentID
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// ExtractRequest asks for keyphrases from raw text.
type ExtractRequest struct {
	RawText string `json:"raw_text"`
	TopN    int    `json:"top_n"`
}

// ExtractResponse lists the extracted keyphrases.
type ExtractResponse struct {
	Keyphrases []string `json:"keyphrases"`
	Count      int      `json:"count"`
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.RawText == "" {
		s.writeError(w, http.StatusBadRequest, errors.New("raw_text required"))
		return
	}

	topN := req.TopN
	if topN <= 0 {
		topN = defaultExtractTopN
	}
	if topN > maxExtractTopN {
		topN = maxExtractTopN
	}

	domain := mining.DetectDomain(nil, req.RawText)
	extractor := mining.NewKeyphraseExtractor(domain)
	phrases := extractor.ExtractPhrases(req.RawText, topN)

	s.writeJSON(w, http.StatusOK, ExtractResponse{
		Keyphrases: phrases,
		Count:      len(phrases),
	})
}

// SearchRequest asks for segments matching a free-text query.
type SearchRequest struct {
	Query   string `json:"query"`
	MaxHits int    `json:"max_hits"`
}

// SearchResult is one ranked segment match.
type SearchResult struct {
	SegmentID   string  `json:"segment_id"`
	TopicID     string  `json:"topic_id"`
	Topic       string  `json:"topic"`
	Description string  `json:"description,omitempty"`
	Score       float32 `json:"score"`
}

// SearchResponse lists the ranked matches.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Count   int            `json:"count"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if s.searcher == nil {
		s.writeError(w, http.StatusServiceUnavailable, errors.New("segment search not configured"))
		return
	}

	var req SearchRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Query == "" {
		s.writeError(w, http.StatusBadRequest, errors.New("query required"))
		return
	}

	maxHits := req.MaxHits
	if maxHits <= 0 {
		maxHits = defaultMaxHits
	}

	matches, err := s.searcher.FindSimilar(r.Context(), req.Query, maxHits)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	results := make([]SearchResult, len(matches))
	for i, match := range matches {
		results[i] = SearchResult{
			SegmentID:   match.Segment.SegmentID,
			TopicID:     match.Segment.TopicID,
			Topic:       match.Segment.Topic,
			Description: match.Segment.Description,
			Score:       match.Score,
		}
	}

	s.writeJSON(w, http.StatusOK, SearchResponse{
		Results: results,
		Count:   len(results),
	})
}
