// Package http exposes the compiler as a stateless JSON API.
package http

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/verdict"
	"github.com/aretw0/verdict/internal/logging"
	"github.com/aretw0/verdict/pkg/domain"
	"github.com/aretw0/verdict/pkg/ports"
)

// Supported output formats for POST /compile.
const (
	FormatMermaid = "mermaid"
	FormatDAG     = "dag"
)

// CompileRequest is the body of POST /compile.
type CompileRequest struct {
	Questions map[string]string `json:"questions"`
	Logic     string            `json:"logic"`
	Format    string            `json:"format,omitempty"`
}

// CompileResponse is the body of a successful POST /compile.
type CompileResponse struct {
	Format string `json:"format"`
	Result string `json:"result"`
	Nodes  int    `json:"nodes"`
	Cached bool   `json:"cached"`
}

// Server handles the compile API. The cache is optional; a nil cache
// means every request compiles from scratch.
type Server struct {
	engine *verdict.Engine
	cache  ports.ResultCache
	logger *slog.Logger

	compileTotal    *prometheus.CounterVec
	compileDuration prometheus.Histogram
	registry        *prometheus.Registry
}

// Option configures a Server.
type Option func(*Server)

// WithCache wires a result cache into the compile handler.
func WithCache(cache ports.ResultCache) Option {
	return func(s *Server) {
		s.cache = cache
	}
}

// WithLogger injects a request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a Server around the given engine.
func NewServer(engine *verdict.Engine, opts ...Option) *Server {
	s := &Server{
		engine:   engine,
		logger:   logging.NewNop(),
		registry: prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.compileTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "verdict_compile_total",
		Help: "Compile requests by output format and status.",
	}, []string{"format", "status"})
	s.compileDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "verdict_compile_duration_seconds",
		Help:    "Wall time of compile requests.",
		Buckets: prometheus.DefBuckets,
	})
	s.registry.MustRegister(s.compileTotal, s.compileDuration)

	return s
}

// Handler builds the chi router for the server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(enableCORS)

	r.Post("/compile", s.handleCompile)
	r.Get("/health", s.handleHealth)
	r.Get("/info", s.handleInfo)
	r.Method("GET", "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return r
}

// enableCORS allows browser-based clients (e.g. a Mermaid preview page)
// to call the API from any origin.
func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleCompile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req CompileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.compileTotal.WithLabelValues("unknown", "error").Inc()
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Format == "" {
		req.Format = FormatMermaid
	}
	if req.Format != FormatMermaid && req.Format != FormatDAG {
		s.compileTotal.WithLabelValues(req.Format, "error").Inc()
		http.Error(w, fmt.Sprintf("Unsupported format %q", req.Format), http.StatusBadRequest)
		return
	}

	key := requestKey(req)
	if s.cache != nil {
		if result, err := s.cache.Load(r.Context(), key); err == nil {
			s.compileTotal.WithLabelValues(req.Format, "hit").Inc()
			s.writeJSON(w, CompileResponse{
				Format: req.Format,
				Result: result,
				Cached: true,
			})
			return
		} else if !errors.Is(err, domain.ErrResultNotFound) {
			s.logger.Warn("cache load failed", "err", err)
		}
	}

	g, err := s.engine.Compile(domain.Policy{
		Questions: req.Questions,
		Logic:     req.Logic,
	})
	if err != nil {
		s.compileTotal.WithLabelValues(req.Format, "error").Inc()
		if errors.Is(err, domain.ErrMalformedExpression) ||
			errors.Is(err, domain.ErrUnknownQuestion) ||
			errors.Is(err, domain.ErrEmptyQuestionSet) {
			http.Error(w, fmt.Sprintf("Compile error: %v", err), http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Compile error: %v", err), http.StatusInternalServerError)
		return
	}

	var result string
	switch req.Format {
	case FormatDAG:
		raw, err := verdict.RenderDAG(g)
		if err != nil {
			s.compileTotal.WithLabelValues(req.Format, "error").Inc()
			http.Error(w, fmt.Sprintf("Render error: %v", err), http.StatusInternalServerError)
			return
		}
		result = string(raw)
	default:
		result = verdict.RenderMermaid(g)
	}

	if s.cache != nil {
		if err := s.cache.Save(r.Context(), key, result); err != nil {
			s.logger.Warn("cache save failed", "err", err)
		}
	}

	s.compileTotal.WithLabelValues(req.Format, "ok").Inc()
	s.compileDuration.Observe(time.Since(start).Seconds())
	s.writeJSON(w, CompileResponse{
		Format: req.Format,
		Result: result,
		Nodes:  g.Len(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleInfo(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, map[string]string{
		"app":         "verdict-http",
		"version":     verdict.Version,
		"api_version": "1.0.0",
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}

// requestKey digests the request into a stable cache key. json.Marshal
// sorts map keys, so equal requests always digest the same.
func requestKey(req CompileRequest) string {
	raw, _ := json.Marshal(req)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
