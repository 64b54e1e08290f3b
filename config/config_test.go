package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "en-US", cfg.Search.Locale)
	assert.Equal(t, 30, cfg.Search.PerQuery)
	assert.Equal(t, 8, cfg.Search.Concurrency)
	assert.Empty(t, cfg.Storage.Path, "defaults to in-memory storage")
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
server:
  addr: ":9090"
storage:
  path: /var/lib/intentforge
search:
  api_key: file-key
  per_query: 10
  locale: de-DE
ai:
  host: http://localhost:11434
  writer_model: qwen2.5:7b
pipeline:
  pool_size: 4
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "/var/lib/intentforge", cfg.Storage.Path)
	assert.Equal(t, "file-key", cfg.Search.APIKey)
	assert.Equal(t, 10, cfg.Search.PerQuery)
	assert.Equal(t, "de-DE", cfg.Search.Locale)
	assert.Equal(t, 4, cfg.Pipeline.PoolSize)

	// Unset fields keep their defaults
	assert.Equal(t, 8, cfg.Search.Concurrency)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Server.Addr, cfg.Server.Addr)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "server: [not a mapping")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfigFile(t, `
search:
  api_key: file-key
`)
	t.Setenv(searchAPIKeyEnv, "env-key")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Search.APIKey, "environment wins over file")
}

func TestAIConfig(t *testing.T) {
	cfg := Default()
	cfg.AI.Host = "http://localhost:9100"
	cfg.AI.WriterModel = "qwen2.5:7b"

	aiCfg := cfg.AIConfig()
	require.NoError(t, aiCfg.Validate())

	assert.Equal(t, "http://localhost:9100/v1", aiCfg.EmbeddingHost, "host normalized with /v1")
	assert.Equal(t, "qwen2.5:7b", aiCfg.WriterModel)
	assert.NotEmpty(t, aiCfg.EmbeddingModel, "falls back to provider default")
}
