// Package config loads the assistant's declarative configuration from
// chatbot.config.yaml: model parameters, persona, abuse limits, the system
// prompt, and the tool schemas that drive both the model-facing function
// declarations and the registry's startup cross-check.
//
// Configuration sources (highest to lowest priority):
//  1. Environment variables (runtime override)
//  2. chatbot.config.yaml in the working directory
//  3. Default values
//
// The configuration is loaded once and cached for the life of the process.
// A missing or malformed file is a startup error, not a per-request one.
package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

// Sentinel errors for configuration validation.
var (
	// ErrMissingModelName indicates the model name is empty.
	ErrMissingModelName = errors.New("missing model name")

	// ErrInvalidTemperature indicates the temperature is out of range.
	ErrInvalidTemperature = errors.New("invalid temperature")

	// ErrInvalidTopP indicates top_p is out of range.
	ErrInvalidTopP = errors.New("invalid top_p")

	// ErrInvalidMaxTokens indicates max_output_tokens is not positive.
	ErrInvalidMaxTokens = errors.New("invalid max output tokens")

	// ErrInvalidLimits indicates one of the abuse limits is not positive.
	ErrInvalidLimits = errors.New("invalid limits")

	// ErrMissingSystemPrompt indicates the system prompt is empty.
	ErrMissingSystemPrompt = errors.New("missing system prompt")

	// ErrNoTools indicates no tools are declared.
	ErrNoTools = errors.New("no tools declared")

	// ErrInvalidTool indicates a declared tool is malformed.
	ErrInvalidTool = errors.New("invalid tool declaration")

	// ErrProductionReload indicates Reload was called in production.
	ErrProductionReload = errors.New("configuration reload is disabled in production")
)

// defaultFriendlyLabel is shown while an undeclared tool runs.
const defaultFriendlyLabel = "Thinking..."

// ModelConfig carries Gemini generation parameters.
type ModelConfig struct {
	Name            string  `mapstructure:"name"`
	Temperature     float32 `mapstructure:"temperature"`
	MaxOutputTokens int32   `mapstructure:"max_output_tokens"`
	TopP            float32 `mapstructure:"top_p"`
}

// PersonaConfig names the assistant and its opening line.
type PersonaConfig struct {
	Name     string `mapstructure:"name"`
	Greeting string `mapstructure:"greeting"`
}

// LimitsConfig carries per-request abuse limits.
type LimitsConfig struct {
	MaxMessageLength   int `mapstructure:"max_message_length"`
	MaxHistoryLength   int `mapstructure:"max_history_length"`
	MaxReactIterations int `mapstructure:"max_react_iterations"`
	RateLimitPerMinute int `mapstructure:"rate_limit_per_minute"`
}

// ToolParameter is one declared parameter of a tool. All parameters are
// string-typed on the wire.
type ToolParameter struct {
	Name        string `mapstructure:"name"`
	Type        string `mapstructure:"type"`
	Description string `mapstructure:"description"`
	Required    bool   `mapstructure:"required"`
}

// ToolDef declares a callable tool: its model-facing schema and the
// human-facing label shown while it runs.
type ToolDef struct {
	Name          string          `mapstructure:"name"`
	Description   string          `mapstructure:"description"`
	FriendlyLabel string          `mapstructure:"friendly_label"`
	Parameters    []ToolParameter `mapstructure:"parameters"`
}

// ServerConfig carries HTTP server settings (env-overridable).
type ServerConfig struct {
	Addr        string   `mapstructure:"addr"`
	Env         string   `mapstructure:"env"`
	CORSOrigins []string `mapstructure:"cors_origins"`
	TrustProxy  bool     `mapstructure:"trust_proxy"`
}

// Config is the immutable configuration snapshot used process-wide.
type Config struct {
	Model        ModelConfig   `mapstructure:"model"`
	Persona      PersonaConfig `mapstructure:"persona"`
	Limits       LimitsConfig  `mapstructure:"limits"`
	SystemPrompt string        `mapstructure:"system_prompt"`
	Tools        []ToolDef     `mapstructure:"tools"`
	Server       ServerConfig  `mapstructure:"server"`
}

var (
	cacheMu sync.Mutex
	cached  *Config
)

// Load returns the process-wide configuration, reading chatbot.config.yaml on
// first call and the cache afterwards. A missing or malformed file fails hard.
func Load() (*Config, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached != nil {
		return cached, nil
	}

	cfg, err := read()
	if err != nil {
		return nil, err
	}

	cached = cfg
	return cached, nil
}

// Reload discards the cache and re-reads the file. Disabled in production so
// the snapshot stays immutable where it matters.
func Reload() (*Config, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached != nil && cached.IsProduction() {
		return nil, ErrProductionReload
	}

	cfg, err := read()
	if err != nil {
		return nil, err
	}

	cached = cfg
	return cached, nil
}

func read() (*Config, error) {
	v := viper.New()
	v.SetConfigName("chatbot.config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	setDefaults(v)
	bindEnvVariables(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading chatbot.config.yaml: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets defaults for everything the file may omit.
func setDefaults(v *viper.Viper) {
	v.SetDefault("model.name", "gemini-2.5-flash")
	v.SetDefault("model.temperature", 0.7)
	v.SetDefault("model.max_output_tokens", 1024)
	v.SetDefault("model.top_p", 0.95)

	v.SetDefault("limits.max_message_length", 500)
	v.SetDefault("limits.max_history_length", 10)
	v.SetDefault("limits.max_react_iterations", 5)
	v.SetDefault("limits.rate_limit_per_minute", 10)

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("server.cors_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.trust_proxy", false)
}

// bindEnvVariables binds runtime overrides explicitly. API keys are NOT bound
// here: they are read from the environment at request time so a rotated key
// takes effect without a restart.
func bindEnvVariables(v *viper.Viper) {
	mustBind := func(key, envVar string) {
		if err := v.BindEnv(key, envVar); err != nil {
			panic(fmt.Sprintf("BUG: failed to bind %q to %q: %v", key, envVar, err))
		}
	}

	mustBind("server.addr", "PORTFOLIO_ADDR")
	mustBind("server.env", "PORTFOLIO_ENV")
	mustBind("server.cors_origins", "PORTFOLIO_CORS_ORIGINS")
	mustBind("server.trust_proxy", "PORTFOLIO_TRUST_PROXY")
}

// Validate checks the configuration ranges, fail-fast at startup.
func (c *Config) Validate() error {
	if c.Model.Name == "" {
		return ErrMissingModelName
	}
	if c.Model.Temperature < 0 || c.Model.Temperature > 2 {
		return fmt.Errorf("%w: %v (want 0..2)", ErrInvalidTemperature, c.Model.Temperature)
	}
	if c.Model.TopP < 0 || c.Model.TopP > 1 {
		return fmt.Errorf("%w: %v (want 0..1)", ErrInvalidTopP, c.Model.TopP)
	}
	if c.Model.MaxOutputTokens <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxTokens, c.Model.MaxOutputTokens)
	}

	if c.Limits.MaxMessageLength <= 0 || c.Limits.MaxHistoryLength <= 0 ||
		c.Limits.MaxReactIterations <= 0 || c.Limits.RateLimitPerMinute <= 0 {
		return fmt.Errorf("%w: all limits must be positive", ErrInvalidLimits)
	}

	if c.SystemPrompt == "" {
		return ErrMissingSystemPrompt
	}

	if len(c.Tools) == 0 {
		return ErrNoTools
	}
	seen := make(map[string]struct{}, len(c.Tools))
	for _, t := range c.Tools {
		if t.Name == "" {
			return fmt.Errorf("%w: empty tool name", ErrInvalidTool)
		}
		if _, dup := seen[t.Name]; dup {
			return fmt.Errorf("%w: duplicate tool %q", ErrInvalidTool, t.Name)
		}
		seen[t.Name] = struct{}{}
		for _, p := range t.Parameters {
			if p.Name == "" {
				return fmt.Errorf("%w: tool %q has a parameter without a name", ErrInvalidTool, t.Name)
			}
		}
	}

	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// FriendlyLabel returns the human-facing status label for a tool, falling
// back to a generic label for undeclared names.
func (c *Config) FriendlyLabel(toolName string) string {
	for _, t := range c.Tools {
		if t.Name == toolName {
			return t.FriendlyLabel
		}
	}
	return defaultFriendlyLabel
}

// ToolNames returns the declared tool names in declaration order.
func (c *Config) ToolNames() []string {
	names := make([]string, len(c.Tools))
	for i, t := range c.Tools {
		names[i] = t.Name
	}
	return names
}
