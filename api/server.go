package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/audiencelab/intentforge/pipeline"
	"github.com/audiencelab/intentforge/search"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 4 << 20

// Server wires the pipeline and the segment searcher into an HTTP handler.
type Server struct {
	pipeline *pipeline.Pipeline
	searcher *search.Searcher
	logger   *slog.Logger
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets a custom logger.
// Default is a component-scoped slog.Default().
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates the HTTP server. The searcher may be nil, in which
// case /v1/segments/search reports the feature as unavailable.
func NewServer(p *pipeline.Pipeline, searcher *search.Searcher, opts ...ServerOption) (*Server, error) {
	if p == nil {
		return nil, pipeline.ErrFetcherRequired
	}

	s := &Server{
		pipeline: p,
		searcher: searcher,
		logger:   slog.Default().With("component", "api"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Handler returns the route table as an http.Handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /v1/phase1/process", s.handlePhase1)
	mux.HandleFunc("POST /v1/phase2/describe", s.handlePhase2)
	mux.HandleFunc("POST /v1/pipeline/process", s.handlePipeline)
	mux.HandleFunc("POST /v1/extract", s.handleExtract)
	mux.HandleFunc("POST /v1/segments/search", s.handleSearch)
	return mux
}

// errorResponse is the uniform error body.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("error encoding response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "status", status, "err", err)
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, into any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return false
	}
	return true
}

// statusFor maps pipeline input errors to 400 and everything else to 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, pipeline.ErrSeedKeywordsRequired),
		errors.Is(err, pipeline.ErrTopicRequired),
		errors.Is(err, pipeline.ErrRawContentRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
