package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/audiencelab/intentforge/core"
	"github.com/audiencelab/intentforge/mining"
)

const (
	defaultPerQuery   = 30
	keyphraseTopN     = 15
	draftTermCount    = 4
	draftPhraseCount  = 2
	draftSeedCount    = 2
	enrichSemanticCap = 20
)

// Phase1Request holds the inputs for the mining phase.
type Phase1Request struct {
	// Seeds are the seed keywords to fetch search results for. Required.
	Seeds []string

	// Locale is a BCP-47 tag ("en-US") controlling search language and
	// region. Empty defaults to English.
	Locale string

	// PerQuery is the number of results requested per seed keyword.
	// Zero or negative defaults to 30.
	PerQuery int

	// FetchPages enables fetching the main text of each result page.
	FetchPages bool

	// ExtractPhrases enables keyphrase extraction over the mined text.
	ExtractPhrases bool
}

// Phase1Result is the mining phase output: the evidence bundle, the
// curated keyword bank, the detected domain and a deterministic draft
// description.
type Phase1Result struct {
	RawContent       *core.RawContent
	Bank             *core.KeywordBank
	Domain           string
	DraftDescription string
	Queries          int
	FailedQueries    []string
}

// RunPhase1 fetches search results for the seed keywords and mines them.
// Individual query failures are recorded in the result, not returned as
// errors; an empty result set still yields an (empty) bank.
func (p *Pipeline) RunPhase1(ctx context.Context, req *Phase1Request) (*Phase1Result, error) {
	if req == nil || len(req.Seeds) == 0 {
		return nil, ErrSeedKeywordsRequired
	}

	perQuery := req.PerQuery
	if perQuery <= 0 {
		perQuery = defaultPerQuery
	}

	queryResults := p.fetcher.FetchSERPs(ctx, req.Seeds, req.Locale, perQuery)

	var docs []core.Document
	var failed []string
	for _, qr := range queryResults {
		if qr.Err != nil {
			p.logger.Warn("query failed", "query", qr.Query, "err", qr.Err)
			failed = append(failed, qr.Query)
			continue
		}
		docs = append(docs, qr.Docs...)
	}

	if req.FetchPages && len(docs) > 0 {
		docs = p.fetcher.FetchMainText(ctx, docs)
	}

	rawContent := mining.ExtractRawContent(docs, req.Seeds)
	bank := mining.BuildKeywordBank(docs, req.Seeds)

	combined := combinedDocText(docs)
	domain := mining.DetectDomain(req.Seeds, combined)

	if req.ExtractPhrases && combined != "" {
		extractor := mining.NewKeyphraseExtractor(domain)
		phrases := extractor.ExtractPhrases(combined, keyphraseTopN)
		if len(phrases) > 0 {
			rawContent.ExtractedKeyphrases = phrases
			bank = mining.EnrichBank(bank, phrases, enrichSemanticCap)
		}
	}

	return &Phase1Result{
		RawContent:       rawContent,
		Bank:             bank,
		Domain:           domain,
		DraftDescription: draftDescription(rawContent),
		Queries:          len(req.Seeds),
		FailedQueries:    failed,
	}, nil
}

// combinedDocText concatenates the title, snippet and main text of every
// document into one string for domain detection and keyphrase extraction.
func combinedDocText(docs []core.Document) string {
	var parts []string
	for _, doc := range docs {
		for _, s := range []string{doc.Title, doc.Snippet, doc.MainText} {
			if s != "" {
				parts = append(parts, s)
			}
		}
	}
	return strings.Join(parts, " ")
}

// draftDescription builds the deterministic placeholder description from
// the highest-frequency evidence. It is not the final description; phase 2
// replaces it.
func draftDescription(raw *core.RawContent) string {
	var focus []string
	for _, t := range raw.TopTerms {
		if t != "" && len(focus) < draftTermCount {
			focus = append(focus, t)
		}
	}
	terms := len(focus)
	for _, ph := range raw.TopPhrases {
		if ph != "" && len(focus) < terms+draftPhraseCount {
			focus = append(focus, ph)
		}
	}
	if len(focus) == 0 {
		focus = []string{"the topic"}
	}

	seedSuffix := ""
	if len(raw.Seeds) > 0 {
		seeds := raw.Seeds
		if len(seeds) > draftSeedCount {
			seeds = seeds[:draftSeedCount]
		}
		seedSuffix = fmt.Sprintf(" (%s)", strings.Join(seeds, ", "))
	}

	return fmt.Sprintf("This intent captures research into %s%s. It focuses on pricing, reviews, comparisons for evaluation.",
		strings.Join(focus, ", "), seedSuffix)
}
