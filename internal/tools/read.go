package tools

import (
	"context"
	"strings"

	"github.com/mustafameh/portfolio/internal/content"
)

// reader implements the pure data-lookup tools. Each handler optionally
// filters by a single string argument and always succeeds.
type reader struct {
	content *content.Content
}

func (r *reader) profile(_ context.Context, _ Args, _ Invocation) string {
	site := r.content.Site
	return mustJSON(map[string]string{
		"name":    site.Name,
		"role":    site.Role,
		"tagline": site.Tagline,
	})
}

// experience filters by case-insensitive substring match on company.
func (r *reader) experience(_ context.Context, args Args, _ Invocation) string {
	company := strings.ToLower(args["company"])

	var out []content.Experience
	for _, e := range r.content.Experiences {
		if company == "" || strings.Contains(strings.ToLower(e.Company), company) {
			out = append(out, e)
		}
	}
	if out == nil {
		out = []content.Experience{}
	}
	return mustJSON(out)
}

// projects filters by exact case-insensitive slug match.
func (r *reader) projects(_ context.Context, args Args, _ Invocation) string {
	slug := strings.ToLower(args["slug"])

	var out []content.Project
	for _, p := range r.content.Projects {
		if slug == "" || strings.ToLower(p.Slug) == slug {
			out = append(out, p)
		}
	}
	if out == nil {
		out = []content.Project{}
	}
	return mustJSON(out)
}

// skills filters by exact case-insensitive domain match; the domain list is
// always included so the model can map ids to labels.
func (r *reader) skills(_ context.Context, args Args, _ Invocation) string {
	domain := strings.ToLower(args["domain"])

	skills := []content.Skill{}
	for _, s := range r.content.Skills {
		if domain == "" || strings.ToLower(s.Domain) == domain {
			skills = append(skills, s)
		}
	}

	return mustJSON(map[string]any{
		"domains": r.content.SkillDomains,
		"skills":  skills,
	})
}

func (r *reader) education(_ context.Context, _ Args, _ Invocation) string {
	return mustJSON(r.content.Education)
}

func (r *reader) publication(_ context.Context, _ Args, _ Invocation) string {
	return mustJSON(r.content.Publication)
}

func (r *reader) contact(_ context.Context, _ Args, _ Invocation) string {
	site := r.content.Site
	return mustJSON(map[string]string{
		"email":    site.Email,
		"phone":    site.Phone,
		"linkedin": site.LinkedIn,
		"github":   site.GitHub,
	})
}
