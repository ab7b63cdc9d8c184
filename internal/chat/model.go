package chat

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"
)

// apiKeyEnv is read at request time so a rotated key takes effect without a
// restart. The key is never echoed to the client.
const apiKeyEnv = "GEMINI_API_KEY"

// ErrNoCredential indicates the model API key is absent or a placeholder.
// Surfaced to clients as a temporary-unavailability response, never a crash.
var ErrNoCredential = errors.New("model credential is not configured")

// Session is one model conversation: subsequent SendMessage calls share
// history.
type Session interface {
	SendMessage(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Client opens model sessions. The seam exists so orchestrator tests can run
// against a scripted model instead of the network.
type Client interface {
	// Available reports whether a model credential is present without
	// contacting the provider.
	Available() bool

	// StartChat opens a session seeded with generation config and history.
	StartChat(ctx context.Context, cfg *genai.GenerateContentConfig, history []*genai.Content) (Session, error)
}

// GeminiClient is the production Client backed by the Gemini API.
type GeminiClient struct {
	model string
}

// NewGeminiClient creates a client for the given model name.
func NewGeminiClient(model string) *GeminiClient {
	return &GeminiClient{model: model}
}

// Available reports whether a usable API key is present in the environment.
func (g *GeminiClient) Available() bool {
	return apiKeyFromEnv() != ""
}

// StartChat opens a Gemini chat session.
func (g *GeminiClient) StartChat(ctx context.Context, cfg *genai.GenerateContentConfig, history []*genai.Content) (Session, error) {
	apiKey := apiKeyFromEnv()
	if apiKey == "" {
		return nil, ErrNoCredential
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating model client: %w", err)
	}

	chat, err := client.Chats.Create(ctx, g.model, cfg, history)
	if err != nil {
		return nil, fmt.Errorf("creating model session: %w", err)
	}
	return chat, nil
}

// apiKeyFromEnv resolves the API key, treating common placeholder values as
// absent.
func apiKeyFromEnv() string {
	key := strings.TrimSpace(os.Getenv(apiKeyEnv))
	switch key {
	case "", "your-api-key", "changeme":
		return ""
	}
	return key
}
