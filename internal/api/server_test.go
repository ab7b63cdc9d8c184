package api

import (
	"testing"

	"github.com/mustafameh/portfolio/internal/content"
)

func TestNewServer_RequiresDependencies(t *testing.T) {
	if _, err := NewServer(ServerConfig{}); err == nil {
		t.Error("NewServer(empty) error = nil, want error")
	}

	if _, err := NewServer(ServerConfig{Config: testConfig(), Content: content.Default()}); err == nil {
		t.Error("NewServer(no orchestrator) error = nil, want error")
	}
}
