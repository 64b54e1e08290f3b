package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// IntentWriter generates candidate names and a description for an intent
// topic, grounded on mined evidence.
// Implementations must be thread-safe for concurrent use.
type IntentWriter interface {
	// WriteIntent produces a draft for the request's topic through the
	// request's lens. The draft carries up to three formatted candidate
	// names and a description built from the request's keyphrases and
	// term evidence.
	// Returns an error if the request has no topic or generation fails.
	WriteIntent(ctx context.Context, req *IntentRequest) (*IntentDraft, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and IntentWriter instances,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// IntentWriter returns the intent writing service.
	// The returned IntentWriter is safe for concurrent use.
	IntentWriter() IntentWriter

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
