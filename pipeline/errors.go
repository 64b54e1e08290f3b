package pipeline

import "errors"

var (
	// ErrFetcherRequired is returned when a search fetcher is not provided.
	ErrFetcherRequired = errors.New("search fetcher required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrSegmentRepositoryRequired is returned when indexing is requested
	// without a segment repository configured.
	ErrSegmentRepositoryRequired = errors.New("segment repository required")

	// ErrSeedKeywordsRequired is returned when phase 1 is run without seed keywords.
	ErrSeedKeywordsRequired = errors.New("seed keywords required")

	// ErrTopicRequired is returned when phase 2 is run without a topic.
	ErrTopicRequired = errors.New("topic required")

	// ErrRawContentRequired is returned when phase 2 is run without mined evidence.
	ErrRawContentRequired = errors.New("raw content required")
)
