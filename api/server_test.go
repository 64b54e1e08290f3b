package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/audiencelab/intentforge/ai"
	"github.com/audiencelab/intentforge/ai/mock"
	"github.com/audiencelab/intentforge/core"
	"github.com/audiencelab/intentforge/pipeline"
	"github.com/audiencelab/intentforge/search"
	"github.com/audiencelab/intentforge/serp"
	"github.com/audiencelab/intentforge/storage"
	"github.com/audiencelab/intentforge/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serpResponse = `{
	"organic_results": [
		{
			"link": "https://www.guardpro.com/installation",
			"title": "Gutter Guard Installation Service",
			"snippet": "Professional gutter guard installation with debris protection and mesh covers."
		},
		{
			"link": "https://www.leaffilter.com/reviews",
			"title": "Leaf Filter Reviews and Comparison",
			"snippet": "Compare gutter protection systems, mesh screens and micro mesh covers."
		}
	]
}`

type testEnv struct {
	server   *Server
	repo     storage.SegmentRepository
	embedder *mock.MockEmbedder
	writer   *mock.MockIntentWriter
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	serpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(serpResponse))
	}))
	t.Cleanup(serpServer.Close)

	client, err := serp.NewClient("test-key",
		serp.WithBaseURL(serpServer.URL),
		serp.WithRateLimit(1000))
	require.NoError(t, err)
	fetcher, err := serp.NewFetcher(client, serp.WithConcurrency(2))
	require.NoError(t, err)
	t.Cleanup(fetcher.Release)

	embedder := mock.NewMockEmbedder()
	writer := mock.NewMockIntentWriter()
	writer.WriteIntentFunc = func(ctx context.Context, req *ai.IntentRequest) (*ai.IntentDraft, error) {
		return &ai.IntentDraft{
			Names:       []string{"Gutter Guard Installation", "Gutter Protection"},
			Description: "Gutter guard installation service covering debris protection and seasonal maintenance.",
		}, nil
	}
	provider := mock.NewMockProviderWithServices(embedder, writer)

	repo, backend, err := badger.NewMemorySegmentRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	p, err := pipeline.NewPipeline(fetcher, provider, pipeline.WithSegmentRepository(repo))
	require.NoError(t, err)
	t.Cleanup(p.Release)

	searcher, err := search.NewSearcher(repo, provider)
	require.NoError(t, err)

	server, err := NewServer(p, searcher)
	require.NoError(t, err)

	return &testEnv{server: server, repo: repo, embedder: embedder, writer: writer}
}

func (env *testEnv) post(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.server.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	env.server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]bool](t, rec)
	assert.True(t, body["ok"])
}

func TestPhase1Endpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.post(t, "/v1/phase1/process", Phase1Request{
		SeedKeywords: []string{"gutter guards"},
		Locale:       "en-US",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[Phase1Response](t, rec)
	require.NotNil(t, resp.RawContent)
	assert.Equal(t, 2, resp.RawContent.TotalDocs)
	assert.NotEmpty(t, resp.RawContent.TopTerms)
	assert.NotNil(t, resp.KeywordBank)
	assert.Contains(t, resp.DraftDescription, "This intent captures research into")
	assert.Equal(t, float64(2), resp.Meta["docs_analyzed"])
}

func TestPhase1Endpoint_BadRequest(t *testing.T) {
	env := newTestEnv(t)

	t.Run("no seeds", func(t *testing.T) {
		rec := env.post(t, "/v1/phase1/process", Phase1Request{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/phase1/process", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		env.server.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPhase2Endpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.post(t, "/v1/phase2/describe", Phase2Request{
		Topic: "Gutter Guards",
		Lens:  "service",
		RawContent: &RawContent{
			Seeds:    []string{"gutter guards"},
			TopTerms: []string{"gutter", "guard"},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[Phase2Response](t, rec)
	assert.NotEmpty(t, resp.Names)
	assert.NotEmpty(t, resp.Description)
	assert.True(t, resp.Validation.Valid)
}

func TestPhase2Endpoint_MissingTopic(t *testing.T) {
	env := newTestEnv(t)

	rec := env.post(t, "/v1/phase2/describe", Phase2Request{
		RawContent: &RawContent{},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeBody[errorResponse](t, rec)
	assert.Contains(t, resp.Error, "topic")
}

func TestPipelineEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.post(t, "/v1/pipeline/process", PipelineRequest{
		SeedKeywords: []string{"gutter guards"},
		LensType:     "service",
		Topic:        "Gutter Guards",
		Index:        true,
		TopicID:      "topic-1",
		SegmentID:    "seg-1",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[PipelineResponse](t, rec)
	assert.Equal(t, "Gutter Guards", resp.Topic)
	assert.NotEmpty(t, resp.Names)
	assert.NotEmpty(t, resp.Description)
	assert.NotNil(t, resp.RawContent)
	assert.Equal(t, "seg-1", resp.SegmentID)
}

func TestExtractEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.post(t, "/v1/extract", ExtractRequest{
		RawText: "Professional gutter guard installation with debris protection, mesh covers and downspout screens for residential roofing systems.",
		TopN:    5,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[ExtractResponse](t, rec)
	assert.Equal(t, len(resp.Keyphrases), resp.Count)
	assert.LessOrEqual(t, resp.Count, 5)
}

func TestExtractEndpoint_MissingText(t *testing.T) {
	env := newTestEnv(t)

	rec := env.post(t, "/v1/extract", ExtractRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchEndpoint(t *testing.T) {
	env := newTestEnv(t)

	// Seed a segment with a known vector and pin the query embedding to it
	_, err := env.repo.AddSegments(context.Background(), &core.Segment{
		SegmentID:   "seg-1",
		TopicID:     "topic-1",
		Topic:       "Gutter Guards",
		Description: "Gutter guard systems and debris protection.",
		Vector:      []float32{1, 0, 0},
	})
	require.NoError(t, err)

	env.embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1, 0, 0}, nil
	}

	rec := env.post(t, "/v1/segments/search", SearchRequest{Query: "gutter guards"})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[SearchResponse](t, rec)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "seg-1", resp.Results[0].SegmentID)
	assert.Equal(t, "Gutter Guards", resp.Results[0].Topic)
	assert.Greater(t, resp.Results[0].Score, float32(1.0), "verbatim boost applied")
}

func TestSearchEndpoint_EmptyQuery(t *testing.T) {
	env := newTestEnv(t)

	rec := env.post(t, "/v1/segments/search", SearchRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchEndpoint_NotConfigured(t *testing.T) {
	env := newTestEnv(t)
	server, err := NewServer(env.server.pipeline, nil)
	require.NoError(t, err)

	payload, _ := json.Marshal(SearchRequest{Query: "gutter guards"})
	req := httptest.NewRequest(http.MethodPost, "/v1/segments/search", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
