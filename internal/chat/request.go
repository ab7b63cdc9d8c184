package chat

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mustafameh/portfolio/internal/config"
)

const (
	// MaxBodyBytes caps the request body. Checked by the HTTP handler
	// against both the declared Content-Length and the decoded length.
	MaxBodyBytes = 100_000

	// maxHistoryEntryChars truncates each retained history entry.
	maxHistoryEntryChars = 500
)

// Message roles accepted from the client.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one prior conversation turn supplied by the client. The server
// keeps no conversation state: the client owns the transcript and the server
// re-validates a bounded copy on every request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is a validated chat request.
type Request struct {
	Message string
	History []Message
}

// RequestError is a terminal validation failure, surfaced as a JSON error
// response before any stream is opened.
type RequestError struct {
	Status  int
	Message string
}

// ParseRequest validates and sanitizes a raw request body. History is
// truncated to the last MaxHistoryLength entries, entries with an unknown
// role or non-string content are dropped, and each retained entry's content
// is truncated to a fixed ceiling. No model state is touched here.
func ParseRequest(body []byte, limits config.LimitsConfig) (*Request, *RequestError) {
	var envelope struct {
		Message json.RawMessage `json:"message"`
		History json.RawMessage `json:"history"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &RequestError{Status: http.StatusBadRequest, Message: "Invalid JSON."}
	}

	var message string
	if len(envelope.Message) == 0 || json.Unmarshal(envelope.Message, &message) != nil || message == "" {
		return nil, &RequestError{Status: http.StatusBadRequest, Message: "Message is required."}
	}

	if len([]rune(message)) > limits.MaxMessageLength {
		return nil, &RequestError{
			Status:  http.StatusBadRequest,
			Message: fmt.Sprintf("Message too long (max %d chars).", limits.MaxMessageLength),
		}
	}

	return &Request{
		Message: message,
		History: sanitizeHistory(envelope.History, limits.MaxHistoryLength),
	}, nil
}

// sanitizeHistory keeps the last max entries of a well-formed history array,
// preserving order. A history that is not an array degrades to empty rather
// than failing the request.
func sanitizeHistory(raw json.RawMessage, max int) []Message {
	var entries []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &entries) != nil {
		return nil
	}

	if len(entries) > max {
		entries = entries[len(entries)-max:]
	}

	var history []Message
	for _, entry := range entries {
		var m struct {
			Role    string          `json:"role"`
			Content json.RawMessage `json:"content"`
		}
		if json.Unmarshal(entry, &m) != nil {
			continue
		}
		if m.Role != RoleUser && m.Role != RoleAssistant {
			continue
		}
		var content string
		if json.Unmarshal(m.Content, &content) != nil {
			continue
		}
		if runes := []rune(content); len(runes) > maxHistoryEntryChars {
			content = string(runes[:maxHistoryEntryChars])
		}
		history = append(history, Message{Role: m.Role, Content: content})
	}
	return history
}
