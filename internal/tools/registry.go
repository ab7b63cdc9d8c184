// Package tools implements the assistant's callable tools: pure lookups over
// the portfolio content plus one side-effecting tool that relays a visitor's
// message to the owner by email.
//
// The registry is a closed dispatch table built at startup from the declared
// tool metadata. Any mismatch between the declared schema and the implemented
// handler set is rejected at construction, not per call. Handlers return a
// JSON-encoded string, never an error: the result is embedded directly into
// the model's function-response channel and the model is expected to recover
// conversationally from any failure payload.
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mustafameh/portfolio/internal/content"
	"github.com/mustafameh/portfolio/internal/log"
	"github.com/mustafameh/portfolio/internal/mail"
)

// SendMessageName is the single side-effecting tool.
const SendMessageName = "send_message"

// Canned results substituted by the orchestrator without invoking a handler.
const (
	// RateLimitedResult replaces a send_message call once the per-IP send
	// budget is spent, so the email provider is never contacted.
	RateLimitedResult = `{"success": false, "error": "Message limit reached. Please try again later."}`

	// UnknownToolResult is fed back for names the registry does not know.
	UnknownToolResult = `{"error": "Unknown tool."}`

	// NoDataResult replaces an empty handler result.
	NoDataResult = `{"error": "No data found."}`
)

// Args are the string-typed arguments of one tool call.
type Args map[string]string

// Turn is one prior conversation entry passed along to send_message so the
// notification email can embed a short transcript.
type Turn struct {
	Role    string
	Content string
}

// Invocation carries per-call context beyond the arguments.
type Invocation struct {
	Conversation []Turn
}

// Handler executes one tool call and returns its JSON result.
type Handler func(ctx context.Context, args Args, inv Invocation) string

// Registry maps tool names to handlers.
type Registry struct {
	handlers map[string]Handler
	logger   log.Logger
}

// New builds the registry over the given content and mailer and cross-checks
// it against the declared tool names: every declared tool must have a
// handler and every handler must be declared.
func New(c *content.Content, mailer mail.Mailer, declared []string, logger log.Logger) (*Registry, error) {
	reads := &reader{content: c}
	sender := &sender{content: c, mailer: mailer, logger: logger}

	r := &Registry{
		logger: logger,
		handlers: map[string]Handler{
			"get_profile":     reads.profile,
			"get_experience":  reads.experience,
			"get_projects":    reads.projects,
			"get_skills":      reads.skills,
			"get_education":   reads.education,
			"get_publication": reads.publication,
			"get_contact":     reads.contact,
			SendMessageName:   sender.send,
		},
	}

	declaredSet := make(map[string]struct{}, len(declared))
	for _, name := range declared {
		if _, ok := r.handlers[name]; !ok {
			return nil, fmt.Errorf("tool %q is declared but has no handler", name)
		}
		declaredSet[name] = struct{}{}
	}
	for name := range r.handlers {
		if _, ok := declaredSet[name]; !ok {
			return nil, fmt.Errorf("tool %q is implemented but not declared", name)
		}
	}

	return r, nil
}

// IsValid reports whether name is a known tool.
func (r *Registry) IsValid(name string) bool {
	_, ok := r.handlers[name]
	return ok
}

// Execute runs the named tool. The second return is false for unknown names;
// known tools always produce a non-empty JSON string.
func (r *Registry) Execute(ctx context.Context, name string, args Args, inv Invocation) (string, bool) {
	handler, ok := r.handlers[name]
	if !ok {
		return "", false
	}
	result := handler(ctx, args, inv)
	if result == "" {
		return NoDataResult, true
	}
	return result, true
}

// mustJSON marshals v, falling back to the generic no-data payload. The
// content types marshal cleanly, so the fallback is unreachable in practice.
func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return NoDataResult
	}
	return string(b)
}
