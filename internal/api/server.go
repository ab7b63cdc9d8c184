package api

import (
	"errors"
	"net/http"

	"github.com/mustafameh/portfolio/internal/chat"
	"github.com/mustafameh/portfolio/internal/config"
	"github.com/mustafameh/portfolio/internal/content"
	"github.com/mustafameh/portfolio/internal/log"
	"github.com/mustafameh/portfolio/internal/ratelimit"
)

// ServerConfig contains configuration for creating the API server.
type ServerConfig struct {
	Logger         log.Logger
	Config         *config.Config     // Required
	Orchestrator   *chat.Orchestrator // Required
	Content        *content.Content   // Required
	RequestLimiter *ratelimit.Store   // Required: per-IP request limiter
	GlobalLimiter  *ratelimit.Store   // Required: shared model-call budget
	CORSOrigins    []string           // Allowed origins for CORS
	TrustProxy     bool               // Trust X-Real-IP/X-Forwarded-For headers (behind reverse proxy)
}

// Server is the JSON API HTTP server.
type Server struct {
	mux *http.ServeMux
}

// NewServer creates a new API server with all routes configured.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Config == nil {
		return nil, errors.New("config is required")
	}
	if cfg.Orchestrator == nil {
		return nil, errors.New("orchestrator is required")
	}
	if cfg.Content == nil {
		return nil, errors.New("content is required")
	}
	if cfg.RequestLimiter == nil || cfg.GlobalLimiter == nil {
		return nil, errors.New("rate limiters are required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewNop()
	}

	ch := &chatHandler{
		cfg:            cfg.Config,
		orchestrator:   cfg.Orchestrator,
		requestLimiter: cfg.RequestLimiter,
		globalLimiter:  cfg.GlobalLimiter,
		trustProxy:     cfg.TrustProxy,
		logger:         logger,
	}

	co := &contentHandler{content: cfg.Content, logger: logger}
	dh := &debugHandler{logger: logger}

	mux := http.NewServeMux()

	// Chat
	mux.HandleFunc("POST /api/chat", ch.serve)
	mux.HandleFunc("GET /api/chat/config", ch.clientConfig)

	// Read-only portfolio content
	co.registerRoutes(mux)

	// Diagnostics
	mux.HandleFunc("GET /api/debug/email", dh.email)

	// Build middleware stack (outermost first):
	//   Recovery → RequestID → Logging → CORS → Routes
	// RequestID must be before Logging so request_id is available in log attributes.
	var handler http.Handler = mux
	handler = corsMiddleware(cfg.CORSOrigins)(handler)
	handler = loggingMiddleware(logger)(handler)
	handler = requestIDMiddleware()(handler)
	handler = recoveryMiddleware(logger)(handler)

	// Wrap with security headers
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setSecurityHeaders(w)
		handler.ServeHTTP(w, r)
	})

	// Use a top-level mux to separate health probes from middleware stack
	topMux := http.NewServeMux()
	topMux.HandleFunc("GET /health", newHealthHandler(cfg.Orchestrator, logger))
	topMux.Handle("/", final)

	return &Server{mux: topMux}, nil
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}
