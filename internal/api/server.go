package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mcqgen/internal/config"
	"mcqgen/internal/generate"
	"mcqgen/internal/pipeline"
)

// GeneratorFactory builds a question generator bound to one caller's
// API key. The credential is an explicit parameter of each request, not
// process-wide state.
type GeneratorFactory func(apiKey string) pipeline.Generator

// Server is the HTTP API server.
type Server struct {
	router       chi.Router
	newGenerator GeneratorFactory
	stats        *generate.Stats
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server. stats may be nil.
func NewServer(factory GeneratorFactory, stats *generate.Stats, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		newGenerator: factory,
		stats:        stats,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Post("/api/generate-mcqs-pdf", s.handleGeneratePDF)
	r.Post("/api/generate-mcqs-text", s.handleGenerateText)
	r.Post("/api/generate-mcqs", s.handleGenerate)

	r.Get("/api/stats/llm", s.handleLLMStats)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
