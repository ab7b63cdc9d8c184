package api

import (
	"net/http"

	"github.com/mustafameh/portfolio/internal/log"
	"github.com/mustafameh/portfolio/internal/mail"
)

// debugHandler exposes operational diagnostics. The email probe exists
// because notification delivery fails in ways the chat stream hides behind a
// generic message; hitting this endpoint from the deployed host tells DNS
// and firewall problems apart from a bad credential.
type debugHandler struct {
	logger log.Logger
}

func (h *debugHandler) email(w http.ResponseWriter, r *http.Request) {
	probe := mail.CheckReachability(r.Context())
	if !probe.OK {
		h.logger.Warn("email provider unreachable", "detail", probe.Detail)
	}
	writeJSON(w, http.StatusOK, probe, h.logger)
}
