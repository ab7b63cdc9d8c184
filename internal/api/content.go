package api

import (
	"net/http"
	"strings"

	"github.com/mustafameh/portfolio/internal/content"
	"github.com/mustafameh/portfolio/internal/log"
)

// contentHandler exposes the portfolio content read-only for the static site.
type contentHandler struct {
	content *content.Content
	logger  log.Logger
}

func (h *contentHandler) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/content/profile", h.profile)
	mux.HandleFunc("GET /api/content/experience", h.experience)
	mux.HandleFunc("GET /api/content/projects", h.projects)
	mux.HandleFunc("GET /api/content/skills", h.skills)
	mux.HandleFunc("GET /api/content/education", h.education)
	mux.HandleFunc("GET /api/content/publication", h.publication)
	mux.HandleFunc("GET /api/content/contact", h.contact)
}

func (h *contentHandler) profile(w http.ResponseWriter, _ *http.Request) {
	site := h.content.Site
	writeJSON(w, http.StatusOK, map[string]string{
		"name":     site.Name,
		"role":     site.Role,
		"tagline":  site.Tagline,
		"location": site.Location,
	}, h.logger)
}

func (h *contentHandler) experience(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.content.Experiences, h.logger)
}

func (h *contentHandler) projects(w http.ResponseWriter, r *http.Request) {
	if slug := strings.ToLower(r.URL.Query().Get("slug")); slug != "" {
		for _, p := range h.content.Projects {
			if strings.ToLower(p.Slug) == slug {
				writeJSON(w, http.StatusOK, p, h.logger)
				return
			}
		}
		writeError(w, http.StatusNotFound, "Project not found.", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.content.Projects, h.logger)
}

func (h *contentHandler) skills(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"domains": h.content.SkillDomains,
		"skills":  h.content.Skills,
	}, h.logger)
}

func (h *contentHandler) education(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.content.Education, h.logger)
}

func (h *contentHandler) publication(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.content.Publication, h.logger)
}

func (h *contentHandler) contact(w http.ResponseWriter, _ *http.Request) {
	site := h.content.Site
	writeJSON(w, http.StatusOK, map[string]string{
		"email":    site.Email,
		"phone":    site.Phone,
		"linkedin": site.LinkedIn,
		"github":   site.GitHub,
	}, h.logger)
}
