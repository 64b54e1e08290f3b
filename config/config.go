package config

import (
	"fmt"
	"os"

	"github.com/audiencelab/intentforge/ai"
	"gopkg.in/yaml.v3"
)

// searchAPIKeyEnv overrides the configured search API key when set.
const searchAPIKeyEnv = "SEARCHAPI_API_KEY"

// Config is the service configuration loaded from a YAML file.
type Config struct {
	Server   Server   `yaml:"server"`
	Storage  Storage  `yaml:"storage"`
	Search   Search   `yaml:"search"`
	AI       AI       `yaml:"ai"`
	Pipeline Pipeline `yaml:"pipeline"`
}

// Server configures the HTTP listener.
type Server struct {
	Addr string `yaml:"addr"`
}

// Storage configures the segment store.
type Storage struct {
	// Path is the BadgerDB data directory. Empty means in-memory.
	Path string `yaml:"path"`
}

// Search configures the search-results fetcher.
type Search struct {
	// APIKey authenticates against the SearchAPI endpoint. The
	// SEARCHAPI_API_KEY environment variable takes precedence.
	APIKey string `yaml:"api_key"`

	// RatePerSecond limits outgoing search requests.
	RatePerSecond float64 `yaml:"rate_per_second"`

	// Concurrency is the fetcher worker pool size.
	Concurrency int `yaml:"concurrency"`

	// PerQuery is the default number of results per seed keyword.
	PerQuery int `yaml:"per_query"`

	// Locale is the default search locale ("en-US").
	Locale string `yaml:"locale"`
}

// AI configures the embedding and intent-writing services.
type AI struct {
	// Host sets both embedding and writer hosts when they share one
	// endpoint. EmbeddingHost/WriterHost override it individually.
	Host           string `yaml:"host"`
	EmbeddingHost  string `yaml:"embedding_host"`
	WriterHost     string `yaml:"writer_host"`
	EmbeddingModel string `yaml:"embedding_model"`
	WriterModel    string `yaml:"writer_model"`
}

// Pipeline configures the intent building pipeline.
type Pipeline struct {
	// PoolSize is the async indexing worker pool size. Zero uses the
	// pipeline default.
	PoolSize int `yaml:"pool_size"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: Server{
			Addr: ":8080",
		},
		Search: Search{
			RatePerSecond: 5,
			Concurrency:   8,
			PerQuery:      30,
			Locale:        "en-US",
		},
	}
}

// Load reads the YAML file at path over the defaults and applies
// environment overrides. An empty path returns the defaults with
// overrides applied.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if key := os.Getenv(searchAPIKeyEnv); key != "" {
		cfg.Search.APIKey = key
	}

	return cfg, nil
}

// AIConfig converts the AI section into the provider configuration,
// falling back to the provider defaults for empty fields.
func (c *Config) AIConfig() *ai.Config {
	var opts []ai.ConfigOption
	if c.AI.Host != "" {
		opts = append(opts, ai.WithHost(c.AI.Host))
	}
	if c.AI.EmbeddingHost != "" {
		opts = append(opts, ai.WithEmbeddingHost(c.AI.EmbeddingHost))
	}
	if c.AI.WriterHost != "" {
		opts = append(opts, ai.WithWriterHost(c.AI.WriterHost))
	}
	if c.AI.EmbeddingModel != "" {
		opts = append(opts, ai.WithEmbeddingModel(c.AI.EmbeddingModel))
	}
	if c.AI.WriterModel != "" {
		opts = append(opts, ai.WithWriterModel(c.AI.WriterModel))
	}
	return ai.NewConfig(opts...)
}
