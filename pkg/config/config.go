package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Provider identifies the upstream completion service.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderClaude Provider = "claude"
)

// Conservative fixed defaults for the remote call.
const (
	DefaultMaxTokens = 1500
	DefaultTimeout   = 60 * time.Second
)

const (
	defaultOpenAIModel = "gpt-4o-mini"
	defaultClaudeModel = "claude-sonnet-4-20250514"
)

// Config carries everything one analysis run needs to reach the completion
// service. It is assembled once in the CLI layer and passed down explicitly;
// nothing below the CLI reads the process environment.
type Config struct {
	Provider  Provider
	Model     string
	APIKey    string
	Endpoint  string // empty means the provider's public endpoint
	MaxTokens int
	Timeout   time.Duration
}

// Options are the raw CLI inputs Load resolves against the environment.
type Options struct {
	Provider  string
	Model     string
	Endpoint  string
	MaxTokens int
	Timeout   time.Duration
}

// Load resolves Options into a Config. Flag values take precedence over
// environment variables, which take precedence over provider defaults. A
// .env file in the working directory is loaded first. The credential is
// validated here so a missing key fails before any network call.
func Load(opts Options) (Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	provider := strings.ToLower(opts.Provider)
	if provider == "" {
		provider = strings.ToLower(os.Getenv("LLM_PROVIDER"))
	}
	if provider == "" {
		provider = string(ProviderOpenAI)
	}

	cfg := Config{
		Endpoint:  opts.Endpoint,
		MaxTokens: opts.MaxTokens,
		Timeout:   opts.Timeout,
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	switch Provider(provider) {
	case ProviderOpenAI:
		cfg.Provider = ProviderOpenAI
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		model := opts.Model
		if model == "" {
			model = os.Getenv("OPENAI_MODEL")
		}
		if model == "" {
			model = defaultOpenAIModel
		}
		cfg.Model = model

	case ProviderClaude:
		cfg.Provider = ProviderClaude
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		model := opts.Model
		if model == "" {
			model = os.Getenv("CLAUDE_MODEL")
		}
		if model == "" {
			model = defaultClaudeModel
		}
		cfg.Model = model

	default:
		return Config{}, fmt.Errorf("unsupported provider: %s (supported: openai, claude)", provider)
	}

	if cfg.APIKey == "" {
		return Config{}, &MissingKeyError{EnvVar: KeyEnvVar(cfg.Provider)}
	}
	return cfg, nil
}

// KeyEnvVar returns the environment variable that must hold the credential
// for a provider.
func KeyEnvVar(p Provider) string {
	if p == ProviderClaude {
		return "ANTHROPIC_API_KEY"
	}
	return "OPENAI_API_KEY"
}
