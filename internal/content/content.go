// Package content holds the portfolio's structured content: the owner's
// profile, work experience, projects, skills, education, and publication.
// The chat tools and the read-only content API both serve from this model;
// it is populated once at startup and never mutated afterwards.
package content

// Site carries the owner's profile and contact details.
type Site struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Tagline  string `json:"tagline"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Location string `json:"location"`
}

// Experience is a single work engagement with a headline metric.
type Experience struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Period      string   `json:"period"`
	Current     bool     `json:"current"`
	Metric      string   `json:"metric"`
	MetricLabel string   `json:"metricLabel"`
	Highlights  []string `json:"highlights"`
}

// Metric is a labelled headline number on a project card.
type Metric struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Link is a labelled external URL.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Project is a portfolio project, addressable by slug.
type Project struct {
	Slug       string   `json:"slug"`
	Title      string   `json:"title"`
	Problem    string   `json:"problem"`
	Approach   string   `json:"approach"`
	TechStack  []string `json:"techStack"`
	Metrics    []Metric `json:"metrics"`
	Highlights []string `json:"highlights"`
	Links      []Link   `json:"links"`
}

// SkillDomain groups skills under a short identifier.
type SkillDomain struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Skill is a single named skill tagged with a domain and related projects.
type Skill struct {
	Name     string   `json:"name"`
	Domain   string   `json:"domain"`
	Projects []string `json:"projects,omitempty"`
}

// Degree is one qualification within Education.
type Degree struct {
	Level  string `json:"level"`
	Field  string `json:"field"`
	Grade  string `json:"grade,omitempty"`
	Period string `json:"period"`
}

// Education is the owner's academic record.
type Education struct {
	University string   `json:"university"`
	Location   string   `json:"location"`
	Degrees    []Degree `json:"degrees"`
	Modules    []string `json:"modules"`
}

// Publication is the owner's peer-reviewed publication.
type Publication struct {
	Authors   string `json:"authors"`
	Year      int    `json:"year"`
	Title     string `json:"title"`
	Journal   string `json:"journal"`
	Publisher string `json:"publisher"`
	DOI       string `json:"doi"`
	Summary   string `json:"summary"`
}

// Content is the complete portfolio content model.
type Content struct {
	Site         Site
	Experiences  []Experience
	Projects     []Project
	SkillDomains []SkillDomain
	Skills       []Skill
	Education    Education
	Publication  Publication
}
