package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/mustafameh/portfolio/internal/chat"
	"github.com/mustafameh/portfolio/internal/config"
	"github.com/mustafameh/portfolio/internal/log"
	"github.com/mustafameh/portfolio/internal/ratelimit"
	"github.com/mustafameh/portfolio/internal/stream"
)

// chatHandler serves POST /api/chat: limiter gates, body guards, request
// validation, then a newline-delimited JSON event stream produced by the
// orchestrator. Every rejection happens before the stream opens; once
// streaming starts, failures surface as error events instead.
type chatHandler struct {
	cfg            *config.Config
	orchestrator   *chat.Orchestrator
	requestLimiter *ratelimit.Store
	globalLimiter  *ratelimit.Store
	trustProxy     bool
	logger         log.Logger
}

// clientConfig exposes the subset of assistant configuration the browser
// client needs: the persona and the message ceiling it should enforce before
// submitting. The system prompt and generation parameters stay server-side.
func (h *chatHandler) clientConfig(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":               h.cfg.Persona.Name,
		"greeting":           h.cfg.Persona.Greeting,
		"max_message_length": h.cfg.Limits.MaxMessageLength,
	}, h.logger)
}

func (h *chatHandler) serve(w http.ResponseWriter, r *http.Request) {
	ip := clientIP(r, h.trustProxy)

	// Limiters run before body parsing so abusive traffic fails cheaply.
	if !h.requestLimiter.Allow(ip) {
		h.logger.Warn("request rate limit exceeded", "ip", ip)
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please wait a moment.", h.logger)
		return
	}
	if !h.globalLimiter.Allow(ratelimit.GlobalKey) {
		h.logger.Warn("global model-call budget exceeded")
		writeError(w, http.StatusTooManyRequests, "The assistant is currently busy. Please try again later.", h.logger)
		return
	}

	// Declared size first, actual size after reading: a lying
	// Content-Length must not bypass the ceiling.
	if r.ContentLength > chat.MaxBodyBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "Request too large.", h.logger)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, chat.MaxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request too large.", h.logger)
			return
		}
		writeError(w, http.StatusBadRequest, "Could not read request.", h.logger)
		return
	}

	req, reqErr := chat.ParseRequest(body, h.cfg.Limits)
	if reqErr != nil {
		writeError(w, reqErr.Status, reqErr.Message, h.logger)
		return
	}

	if !h.orchestrator.Available() {
		writeError(w, http.StatusServiceUnavailable, "Chat is temporarily unavailable.", h.logger)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	enc := stream.NewEncoder(w)
	events := h.orchestrator.Stream(r.Context(), req, ip)
	for ev := range events {
		if err := enc.Encode(ev); err != nil {
			// Write failure usually means the client went away. Drain so
			// the producer observes cancellation and exits.
			h.logger.Debug("stream write failed", "error", err)
			for range events { //nolint:revive // intentional drain
			}
			return
		}
	}
}
