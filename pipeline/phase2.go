package pipeline

import (
	"context"

	"github.com/audiencelab/intentforge/ai"
	"github.com/audiencelab/intentforge/core"
	"github.com/audiencelab/intentforge/describe"
)

const maxNames = 3

// Phase2Request holds the inputs for the description phase.
type Phase2Request struct {
	// Topic is the subject the intent is written about. Required.
	Topic string

	// Lens selects the prompt framing (service, brand, event, ...).
	Lens ai.Lens

	// Category and Subcategory give optional taxonomy context.
	Category    string
	Subcategory string

	// RawContent is the evidence bundle produced by phase 1. Required.
	RawContent *core.RawContent
}

// Phase2Result carries the candidate names, the validated description and
// the validator's verdict on it.
type Phase2Result struct {
	Names       []string
	Description string
	Validation  describe.Result
}

// RunPhase2 asks the intent writer for names and a description grounded
// on the phase 1 evidence, then repairs the description through the
// validator. A failing validation is data, not an error: the result
// carries the verdict either way.
func (p *Pipeline) RunPhase2(ctx context.Context, req *Phase2Request) (*Phase2Result, error) {
	if req == nil || req.Topic == "" {
		return nil, ErrTopicRequired
	}
	if req.RawContent == nil {
		return nil, ErrRawContentRequired
	}

	draft, err := p.writer.WriteIntent(ctx, intentRequest(req))
	if err != nil {
		return nil, err
	}

	names := draft.Names
	if len(names) > maxNames {
		names = names[:maxNames]
	}

	description, validation := describe.ValidateAndFix(draft.Description, req.Topic)

	return &Phase2Result{
		Names:       names,
		Description: description,
		Validation:  validation,
	}, nil
}

// intentRequest maps the phase 1 evidence bundle onto the writer's input.
func intentRequest(req *Phase2Request) *ai.IntentRequest {
	raw := req.RawContent
	return &ai.IntentRequest{
		Topic:             req.Topic,
		Lens:              req.Lens,
		Category:          req.Category,
		Subcategory:       req.Subcategory,
		Seeds:             raw.Seeds,
		Keyphrases:        raw.ExtractedKeyphrases,
		TopTerms:          raw.TopTerms,
		TopPhrases:        raw.TopPhrases,
		TermFrequencies:   raw.TermFrequencies,
		PhraseFrequencies: raw.PhraseFrequencies,
		CombinedText:      raw.CombinedText,
		TotalDocs:         raw.TotalDocs,
		TotalTextLength:   raw.TotalTextLength,
	}
}
