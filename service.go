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

package intentforge

import (
	"log/slog"

	"github.com/audiencelab/intentforge/ai"
	"github.com/audiencelab/intentforge/ai/openai"
	"github.com/audiencelab/intentforge/pipeline"
	"github.com/audiencelab/intentforge/search"
	"github.com/audiencelab/intentforge/serp"
	"github.com/audiencelab/intentforge/storage"
	"github.com/audiencelab/intentforge/storage/badger"
)

// Service aggregates the segment store and the AI provider and hands out
// searchers and pipelines wired against them.
type Service struct {
	backend     *badger.Backend
	segmentRepo storage.SegmentRepository
	provider    ai.AIProvider
	logger      *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
}

// WithAIConfig sets the AI provider configuration.
func WithAIConfig(cfg *ai.Config) ServiceOption {
	return func(o *serviceOptions) {
		o.aiConfig = cfg
	}
}

// WithProvider supplies a pre-built AI provider instead of constructing
// one from the configuration. Used mainly in tests.
func WithProvider(provider ai.AIProvider) ServiceOption {
	return func(o *serviceOptions) {
		o.provider = provider
	}
}

// NewService opens the segment store at filePath and initializes the AI
// provider. An empty filePath opens an in-memory store.
func NewService(filePath string, opts ...ServiceOption) (*Service, error) {
	options := &serviceOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, filePath == "")
	if err != nil {
		return nil, err
	}

	// Create segment repository
	segmentRepo, err := badger.NewSegmentRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create AI provider with configured settings
	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			segmentRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Service{
		backend:     backend,
		segmentRepo: segmentRepo,
		provider:    provider,
		logger:      slog.Default(),
	}, nil
}

func (s *Service) Close() error {
	// Close AI provider first
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}

	if err := s.segmentRepo.Close(); err != nil {
		s.logger.Error("error closing segment repository", "err", err)
		return err
	}

	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (s *Service) SegmentRepository() storage.SegmentRepository {
	return s.segmentRepo
}

func (s *Service) Provider() ai.AIProvider {
	return s.provider
}

func (s *Service) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(s.segmentRepo, s.provider, opts...)
}

// NewPipeline builds an intent pipeline over the given fetcher, wired to
// the service's segment store for indexing.
func (s *Service) NewPipeline(fetcher *serp.Fetcher, opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	opts = append([]pipeline.Option{pipeline.WithSegmentRepository(s.segmentRepo)}, opts...)
	return pipeline.NewPipeline(fetcher, s.provider, opts...)
}
