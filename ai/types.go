package ai

// Lens identifies the angle an intent description is written from.
// The lens determines which prompt template the writer uses and how the
// topic is framed for the model.
type Lens string

// Recognized lens values. An unrecognized lens falls back to the generic
// topic prompt rather than failing.
const (
	LensService  Lens = "service"
	LensBrand    Lens = "brand"
	LensEvent    Lens = "event"
	LensProduct  Lens = "product"
	LensSolution Lens = "solution"
	LensFunction Lens = "function"
)

// Lenses lists the lens values with dedicated prompt templates.
var Lenses = []Lens{
	LensService,
	LensBrand,
	LensEvent,
	LensProduct,
	LensSolution,
	LensFunction,
}

// Known reports whether the lens has a dedicated prompt template.
func (l Lens) Known() bool {
	for _, known := range Lenses {
		if l == known {
			return true
		}
	}
	return false
}

// IntentRequest carries the topic and the mined evidence an intent writer
// grounds its output on. All evidence fields are optional; an empty request
// with only a Topic still produces a draft, just a less specific one.
type IntentRequest struct {
	// Topic is the subject the intent is written about. Required.
	Topic string

	// Lens selects the prompt framing (service, brand, event, ...).
	Lens Lens

	// Category and Subcategory give optional taxonomy context.
	Category    string
	Subcategory string

	// Seeds are the operator-provided keywords the evidence was mined from.
	Seeds []string

	// Keyphrases are the extracted keyphrases, most significant first.
	Keyphrases []string

	// TopTerms and TopPhrases are the highest-frequency terms and phrases
	// from the mined documents, most frequent first.
	TopTerms   []string
	TopPhrases []string

	// TermFrequencies and PhraseFrequencies map terms/phrases to their
	// occurrence counts across all mined documents.
	TermFrequencies   map[string]int
	PhraseFrequencies map[string]int

	// CombinedText is the concatenated document text the evidence came from.
	CombinedText string

	// TotalDocs and TotalTextLength describe the size of the evidence.
	TotalDocs       int
	TotalTextLength int
}

// IntentDraft is the writer's output: candidate names plus one description.
// The description is raw model output; callers are expected to validate it
// before use.
type IntentDraft struct {
	// Names holds up to three candidate names, already formatted for
	// readability.
	Names []string

	// Description is the generated intent description.
	Description string
}
