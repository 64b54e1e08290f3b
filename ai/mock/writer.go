package mock

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/audiencelab/intentforge/ai"
)

// MockIntentWriter is a test double for ai.IntentWriter.
// It allows custom behavior injection via function fields.
type MockIntentWriter struct {
	// WriteIntentFunc is called by WriteIntent if set.
	// If nil, uses default deterministic behavior.
	WriteIntentFunc func(ctx context.Context, req *ai.IntentRequest) (*ai.IntentDraft, error)

	callCount int
}

// NewMockIntentWriter creates a mock intent writer with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockWriter().
func NewMockIntentWriter() *MockIntentWriter {
	return &MockIntentWriter{}
}

// WriteIntent produces a deterministic draft from the request.
// Default behavior: names derived from the topic, a description built from
// the request's keyphrases.
func (m *MockIntentWriter) WriteIntent(ctx context.Context, req *ai.IntentRequest) (*ai.IntentDraft, error) {
	m.callCount++

	if m.WriteIntentFunc != nil {
		return m.WriteIntentFunc(ctx, req)
	}

	if req == nil || strings.TrimSpace(req.Topic) == "" {
		return nil, errors.New("mock intent writer: topic is required")
	}

	// Default: ground the description on the first few keyphrases, like the
	// production writer is instructed to.
	keyphrases := req.Keyphrases
	if len(keyphrases) > 3 {
		keyphrases = keyphrases[:3]
	}
	detail := strings.Join(keyphrases, ", ")
	if detail == "" {
		detail = req.Topic + " research and evaluation"
	}

	return &ai.IntentDraft{
		Names: ai.FallbackNames(req.Topic),
		Description: fmt.Sprintf(
			"This intent represents interest in %s tools and services. It encompasses %s.",
			req.Topic, detail),
	}, nil
}

// CallCount returns the number of times WriteIntent was called.
func (m *MockIntentWriter) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockIntentWriter) Reset() {
	m.callCount = 0
	m.WriteIntentFunc = nil
}
