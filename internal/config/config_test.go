package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"google.golang.org/genai"
)

const minimalYAML = `
model:
  name: gemini-2.5-flash
system_prompt: "You are a portfolio assistant."
tools:
  - name: get_profile
    description: Returns the profile.
    friendly_label: "Looking up profile..."
    parameters: []
  - name: send_message
    description: Sends a message.
    friendly_label: "Sending your message..."
    parameters:
      - name: message
        type: string
        description: The message text.
        required: true
      - name: sender_name
        type: string
        description: Optional name.
        required: false
`

// writeConfigFile drops a config file into a temp working directory and
// resets the cache so each test reads fresh.
func writeConfigFile(t *testing.T, yaml string) {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "chatbot.config.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	t.Chdir(dir)

	cacheMu.Lock()
	cached = nil
	cacheMu.Unlock()
}

func validConfig() *Config {
	return &Config{
		Model: ModelConfig{
			Name:            "gemini-2.5-flash",
			Temperature:     0.7,
			MaxOutputTokens: 1024,
			TopP:            0.95,
		},
		Limits: LimitsConfig{
			MaxMessageLength:   500,
			MaxHistoryLength:   10,
			MaxReactIterations: 5,
			RateLimitPerMinute: 10,
		},
		SystemPrompt: "You are a portfolio assistant.",
		Tools: []ToolDef{
			{Name: "get_profile", Description: "Returns the profile.", FriendlyLabel: "Looking up profile..."},
		},
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	writeConfigFile(t, minimalYAML)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.Limits.MaxMessageLength; got != 500 {
		t.Errorf("Limits.MaxMessageLength = %d, want default 500", got)
	}
	if got := cfg.Limits.MaxReactIterations; got != 5 {
		t.Errorf("Limits.MaxReactIterations = %d, want default 5", got)
	}
	if got := cfg.Model.TopP; got != 0.95 {
		t.Errorf("Model.TopP = %v, want default 0.95", got)
	}
	if cfg.IsProduction() {
		t.Error("IsProduction() = true, want false by default")
	}
}

func TestLoad_CachesAcrossCalls(t *testing.T) {
	writeConfigFile(t, minimalYAML)

	first, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	second, err := Load()
	if err != nil {
		t.Fatalf("Load() second call error = %v", err)
	}
	if first != second {
		t.Error("Load() returned a new snapshot, want the cached one")
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	t.Chdir(t.TempDir())
	cacheMu.Lock()
	cached = nil
	cacheMu.Unlock()

	if _, err := Load(); err == nil {
		t.Error("Load() error = nil, want error for a missing config file")
	}
}

func TestReload_BlockedInProduction(t *testing.T) {
	writeConfigFile(t, minimalYAML+"\nserver:\n  env: production\n")

	if _, err := Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := Reload(); !errors.Is(err, ErrProductionReload) {
		t.Errorf("Reload() error = %v, want ErrProductionReload", err)
	}
}

func TestConfig_EnvOverridesAddr(t *testing.T) {
	t.Setenv("PORTFOLIO_ADDR", "0.0.0.0:9999")
	writeConfigFile(t, minimalYAML)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := cfg.Server.Addr; got != "0.0.0.0:9999" {
		t.Errorf("Server.Addr = %q, want env override %q", got, "0.0.0.0:9999")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid", func(*Config) {}, nil},
		{"missing model name", func(c *Config) { c.Model.Name = "" }, ErrMissingModelName},
		{"temperature too high", func(c *Config) { c.Model.Temperature = 2.5 }, ErrInvalidTemperature},
		{"top_p negative", func(c *Config) { c.Model.TopP = -0.1 }, ErrInvalidTopP},
		{"zero max tokens", func(c *Config) { c.Model.MaxOutputTokens = 0 }, ErrInvalidMaxTokens},
		{"zero iterations", func(c *Config) { c.Limits.MaxReactIterations = 0 }, ErrInvalidLimits},
		{"missing prompt", func(c *Config) { c.SystemPrompt = "" }, ErrMissingSystemPrompt},
		{"no tools", func(c *Config) { c.Tools = nil }, ErrNoTools},
		{"duplicate tool", func(c *Config) {
			c.Tools = append(c.Tools, c.Tools[0])
		}, ErrInvalidTool},
		{"unnamed parameter", func(c *Config) {
			c.Tools[0].Parameters = []ToolParameter{{Type: "string"}}
		}, ErrInvalidTool},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFriendlyLabel(t *testing.T) {
	cfg := validConfig()

	if got := cfg.FriendlyLabel("get_profile"); got != "Looking up profile..." {
		t.Errorf("FriendlyLabel(get_profile) = %q, want declared label", got)
	}
	if got := cfg.FriendlyLabel("never_declared"); got != "Thinking..." {
		t.Errorf("FriendlyLabel(never_declared) = %q, want %q", got, "Thinking...")
	}
}

func TestFunctionDeclarations(t *testing.T) {
	writeConfigFile(t, minimalYAML)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	decls := cfg.FunctionDeclarations()
	if len(decls) != 2 {
		t.Fatalf("FunctionDeclarations() returned %d, want 2", len(decls))
	}

	if decls[0].Name != "get_profile" {
		t.Errorf("decls[0].Name = %q, want get_profile", decls[0].Name)
	}
	if decls[0].Parameters != nil {
		t.Error("parameterless tool got a schema, want none")
	}

	send := decls[1]
	if send.Parameters == nil {
		t.Fatal("send_message has no schema, want an object schema")
	}
	if send.Parameters.Type != genai.TypeObject {
		t.Errorf("schema type = %v, want %v", send.Parameters.Type, genai.TypeObject)
	}
	if got := send.Parameters.Properties["message"]; got == nil || got.Type != genai.TypeString {
		t.Errorf("message property = %+v, want a string schema", got)
	}
	if len(send.Parameters.Required) != 1 || send.Parameters.Required[0] != "message" {
		t.Errorf("required = %v, want [message]", send.Parameters.Required)
	}
}
