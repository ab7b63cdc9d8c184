package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"google.golang.org/genai"

	"github.com/mustafameh/portfolio/internal/chat"
	"github.com/mustafameh/portfolio/internal/config"
	"github.com/mustafameh/portfolio/internal/content"
	"github.com/mustafameh/portfolio/internal/log"
	"github.com/mustafameh/portfolio/internal/mail"
	"github.com/mustafameh/portfolio/internal/ratelimit"
	"github.com/mustafameh/portfolio/internal/stream"
	"github.com/mustafameh/portfolio/internal/tools"
)

// fakeSession always answers with a fixed text.
type fakeSession struct {
	text string
}

func (s *fakeSession) SendMessage(context.Context, ...genai.Part) (*genai.GenerateContentResponse, error) {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: s.text}}},
		}},
	}, nil
}

type fakeClient struct {
	available bool
	text      string
}

func (c *fakeClient) Available() bool { return c.available }

func (c *fakeClient) StartChat(context.Context, *genai.GenerateContentConfig, []*genai.Content) (chat.Session, error) {
	return &fakeSession{text: c.text}, nil
}

type nopMailer struct{}

func (nopMailer) Send(context.Context, mail.Message) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		Model: config.ModelConfig{Name: "gemini-2.5-flash", Temperature: 0.7, MaxOutputTokens: 1024, TopP: 0.95},
		Limits: config.LimitsConfig{
			MaxMessageLength:   500,
			MaxHistoryLength:   10,
			MaxReactIterations: 5,
			RateLimitPerMinute: 10,
		},
		SystemPrompt: "You are a portfolio assistant.",
		Tools: []config.ToolDef{
			{Name: "get_profile"}, {Name: "get_experience"}, {Name: "get_projects"},
			{Name: "get_skills"}, {Name: "get_education"}, {Name: "get_publication"},
			{Name: "get_contact"}, {Name: "send_message"},
		},
	}
}

type serverOptions struct {
	client         chat.Client
	requestLimiter *ratelimit.Store
	globalLimiter  *ratelimit.Store
	corsOrigins    []string
	trustProxy     bool
}

func newTestServer(t *testing.T, opts serverOptions) *Server {
	t.Helper()

	cfg := testConfig()
	if opts.client == nil {
		opts.client = &fakeClient{available: true, text: "hello from the assistant"}
	}
	if opts.requestLimiter == nil {
		opts.requestLimiter = ratelimit.New(time.Minute, 10)
	}
	if opts.globalLimiter == nil {
		opts.globalLimiter = ratelimit.New(time.Hour, 50)
	}

	registry, err := tools.New(content.Default(), nopMailer{}, cfg.ToolNames(), log.NewNop())
	if err != nil {
		t.Fatalf("tools.New() error = %v", err)
	}
	orchestrator := chat.New(cfg, opts.client, registry, ratelimit.New(time.Hour, 3), log.NewNop())

	srv, err := NewServer(ServerConfig{
		Logger:         log.NewNop(),
		Config:         cfg,
		Orchestrator:   orchestrator,
		Content:        content.Default(),
		RequestLimiter: opts.requestLimiter,
		GlobalLimiter:  opts.globalLimiter,
		CORSOrigins:    opts.corsOrigins,
		TrustProxy:     opts.trustProxy,
	})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	return srv
}

func postChat(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	r.RemoteAddr = "10.0.0.1:12345"
	srv.Handler().ServeHTTP(w, r)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("error body is not valid JSON: %v (%q)", err, w.Body.String())
	}
	return resp.Error
}

func TestChat_StreamsEvents(t *testing.T) {
	srv := newTestServer(t, serverOptions{})

	w := postChat(t, srv, `{"message":"hi"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}
	if got := w.Header().Get("Content-Type"); got != "text/event-stream" {
		t.Errorf("Content-Type = %q, want text/event-stream", got)
	}

	var dec stream.Decoder
	events := dec.Feed(w.Body.Bytes())

	if len(events) != 2 {
		t.Fatalf("decoded %d events, want text and done: %q", len(events), w.Body.String())
	}
	if events[0].Type != stream.TypeText || events[0].Content != "hello from the assistant" {
		t.Errorf("events[0] = %v, want the assistant text", events[0])
	}
	if events[1].Type != stream.TypeDone {
		t.Errorf("events[1] = %v, want done", events[1])
	}
}

func TestChat_PerIPRateLimit(t *testing.T) {
	srv := newTestServer(t, serverOptions{requestLimiter: ratelimit.New(time.Minute, 1)})

	if w := postChat(t, srv, `{"message":"hi"}`); w.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", w.Code)
	}

	w := postChat(t, srv, `{"message":"hi"}`)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", w.Code)
	}
	if got := errorMessage(t, w); got != "Too many requests. Please wait a moment." {
		t.Errorf("error = %q, want the per-IP limit message", got)
	}
}

func TestChat_GlobalBudgetExhausted(t *testing.T) {
	global := ratelimit.New(time.Hour, 1)
	global.Allow(ratelimit.GlobalKey)
	srv := newTestServer(t, serverOptions{globalLimiter: global})

	w := postChat(t, srv, `{"message":"hi"}`)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
	if got := errorMessage(t, w); got != "The assistant is currently busy. Please try again later." {
		t.Errorf("error = %q, want the global budget message", got)
	}
}

func TestChat_BodyTooLarge(t *testing.T) {
	srv := newTestServer(t, serverOptions{})

	body := `{"message":"` + strings.Repeat("a", chat.MaxBodyBytes) + `"}`
	w := postChat(t, srv, body)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", w.Code)
	}
	if got := errorMessage(t, w); got != "Request too large." {
		t.Errorf("error = %q, want %q", got, "Request too large.")
	}
}

func TestChat_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantStatus int
	}{
		{"invalid json", `{"message"`, "Invalid JSON.", http.StatusBadRequest},
		{"missing message", `{}`, "Message is required.", http.StatusBadRequest},
		{"too long", `{"message":"` + strings.Repeat("a", 501) + `"}`, "Message too long (max 500 chars).", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, serverOptions{})

			w := postChat(t, srv, tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if got := errorMessage(t, w); got != tt.want {
				t.Errorf("error = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChat_UnavailableWithoutCredential(t *testing.T) {
	srv := newTestServer(t, serverOptions{client: &fakeClient{available: false}})

	w := postChat(t, srv, `{"message":"hi"}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	if got := errorMessage(t, w); got != "Chat is temporarily unavailable." {
		t.Errorf("error = %q, want the unavailable message", got)
	}
}

func TestChat_ClientConfig(t *testing.T) {
	srv := newTestServer(t, serverOptions{})

	w := getPath(t, srv, "/api/chat/config")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var got struct {
		Greeting         string `json:"greeting"`
		MaxMessageLength int    `json:"max_message_length"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}
	if got.MaxMessageLength != 500 {
		t.Errorf("max_message_length = %d, want 500", got.MaxMessageLength)
	}
	if strings.Contains(w.Body.String(), "system_prompt") {
		t.Error("client config leaked the system prompt")
	}
}

func TestChat_LimitersRunBeforeValidation(t *testing.T) {
	srv := newTestServer(t, serverOptions{requestLimiter: ratelimit.New(time.Minute, 1)})

	// Burn the budget with a request that would otherwise fail validation:
	// denial must win over the validation error.
	postChat(t, srv, `{}`)

	w := postChat(t, srv, `{}`)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429 before validation", w.Code)
	}
}
