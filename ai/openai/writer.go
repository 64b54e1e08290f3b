// Copyright 2025 AudienceLab
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/audiencelab/intentforge/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// IntentWriter implements ai.IntentWriter using OpenAI-compatible chat APIs.
type IntentWriter struct {
	client llms.Model
	logger *slog.Logger
}

// newIntentWriter is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newIntentWriter(config *ai.Config) (*IntentWriter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for intent writing
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.WriterHost),
		openai.WithToken("none"),
		openai.WithModel(config.WriterModel),
	)
	if err != nil {
		return nil, err
	}

	return &IntentWriter{
		client: client,
		logger: slog.Default().With("component", "openai-writer"),
	}, nil
}

// NewIntentWriter creates a new intent writer using the provided configuration.
//
// Returns ai.IntentWriter interface to enforce abstraction.
func NewIntentWriter(config *ai.Config) (ai.IntentWriter, error) {
	return newIntentWriter(config)
}

// WriteIntent generates candidate names and a description for the request's
// topic. The model is asked for a fixed line protocol; malformed responses
// are retried up to 3 times. When the response carries no usable names the
// draft falls back to placeholder names derived from the topic.
func (w *IntentWriter) WriteIntent(ctx context.Context, req *ai.IntentRequest) (*ai.IntentDraft, error) {
	if req == nil || strings.TrimSpace(req.Topic) == "" {
		return nil, errors.New("intent writer: topic is required")
	}

	// Build the system and user prompts
	userPrompt := buildWriterPrompt(req)
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(writerSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}

	// Try up to 3 times in case the model drops the line protocol
	var draft *ai.IntentDraft
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := w.client.GenerateContent(ctx, content, llms.WithTemperature(0.0))
		if err != nil {
			w.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			lastErr = errors.New("no choices returned from model")
			w.logger.Debug("no choices returned from model", "attempt", attempt+1)
			continue
		}

		names, description := parseWriterResponse(response.Choices[0].Content)
		if description == "" {
			lastErr = errors.New("response missing DESCRIPTION line")
			w.logger.Warn("error parsing writer response",
				"attempt", attempt+1,
				"response", response.Choices[0].Content)
			continue
		}

		if len(names) == 0 {
			names = ai.FallbackNames(req.Topic)
		}
		draft = &ai.IntentDraft{Names: names, Description: description}
		lastErr = nil
		break
	}

	if lastErr != nil {
		w.logger.Error("failed to parse writer response after retries", "err", lastErr)
		return nil, lastErr
	}

	w.logger.Debug("generated intent draft",
		"topic", req.Topic,
		"lens", req.Lens,
		"names", len(draft.Names),
		"description_length", len(draft.Description))

	return draft, nil
}

// parseWriterResponse extracts names and the description from the NAME1/
// NAME2/NAME3/DESCRIPTION line protocol. Names are formatted for
// readability; unknown lines are ignored.
func parseWriterResponse(text string) ([]string, string) {
	var names []string
	var description string

	for _, line := range strings.Split(text, "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		switch strings.ToUpper(strings.TrimSpace(key)) {
		case "NAME1", "NAME2", "NAME3":
			if len(names) < 3 {
				if formatted := ai.FormatName(value); formatted != "" {
					names = append(names, formatted)
				}
			}
		case "DESCRIPTION":
			if description == "" {
				description = value
			}
		}
	}

	return names, description
}
