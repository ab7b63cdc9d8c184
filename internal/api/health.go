package api

import (
	"net/http"

	"github.com/mustafameh/portfolio/internal/chat"
	"github.com/mustafameh/portfolio/internal/log"
)

// newHealthHandler returns a liveness probe handler. It reports whether the
// assistant has a model credential so deploy dashboards can tell a healthy
// site with a disabled chatbot apart from a broken one.
func newHealthHandler(orchestrator *chat.Orchestrator, logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "ok",
			"chat":   orchestrator.Available(),
		}, logger)
	}
}
