package pipeline

import (
	"context"

	"github.com/audiencelab/intentforge/ai"
	"github.com/audiencelab/intentforge/core"
)

// Request holds the inputs for a combined phase 1 → phase 2 run.
type Request struct {
	// Phase 1 inputs
	Seeds          []string
	Locale         string
	PerQuery       int
	FetchPages     bool
	ExtractPhrases bool

	// Phase 2 inputs. Topic is optional here; when empty, the highest
	// frequency mined term is used.
	Topic       string
	Lens        ai.Lens
	Category    string
	Subcategory string

	// Index stores the finished intent as a segment. TopicID and
	// SegmentID identify it externally; when empty they default to the
	// topic itself.
	Index     bool
	TopicID   string
	SegmentID string
}

// Result combines the outputs of both phases.
type Result struct {
	Phase1  *Phase1Result
	Phase2  *Phase2Result
	Topic   string
	Segment *core.Segment // Set when indexing was requested
}

// Run executes phase 1 and phase 2 back to back and, when requested,
// indexes the finished intent as a segment. Segment embedding happens
// asynchronously after Run returns.
func (p *Pipeline) Run(ctx context.Context, req *Request) (*Result, error) {
	phase1, err := p.RunPhase1(ctx, &Phase1Request{
		Seeds:          req.Seeds,
		Locale:         req.Locale,
		PerQuery:       req.PerQuery,
		FetchPages:     req.FetchPages,
		ExtractPhrases: req.ExtractPhrases,
	})
	if err != nil {
		return nil, err
	}

	topic := req.Topic
	if topic == "" {
		topic = defaultTopic(phase1.RawContent)
	}

	phase2, err := p.RunPhase2(ctx, &Phase2Request{
		Topic:       topic,
		Lens:        req.Lens,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		RawContent:  phase1.RawContent,
	})
	if err != nil {
		return nil, err
	}

	result := &Result{
		Phase1: phase1,
		Phase2: phase2,
		Topic:  topic,
	}

	if req.Index {
		topicID := req.TopicID
		if topicID == "" {
			topicID = topic
		}
		segmentID := req.SegmentID
		if segmentID == "" {
			segmentID = topic
		}

		segment := &core.Segment{
			SegmentID:   segmentID,
			TopicID:     topicID,
			Topic:       topic,
			Description: phase2.Description,
		}

		added, err := p.Index(ctx, segment)
		if err != nil {
			return nil, err
		}
		if len(added) > 0 {
			result.Segment = added[0]
		}
	}

	return result, nil
}

// defaultTopic picks a topic from the mined evidence when the caller
// supplied none.
func defaultTopic(raw *core.RawContent) string {
	if len(raw.TopTerms) > 0 {
		return raw.TopTerms[0]
	}
	if len(raw.TopPhrases) > 0 {
		return raw.TopPhrases[0]
	}
	return "Intent Topic"
}
