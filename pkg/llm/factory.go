package llm

import (
	"fmt"

	"github.com/loglens/loglens/pkg/config"
)

// New creates the chat client for the configured provider. The credential
// is checked here as well so a Config assembled by hand still fails before
// any request is built.
func New(cfg config.Config) (LLM, error) {
	if cfg.APIKey == "" {
		return nil, &config.MissingKeyError{EnvVar: config.KeyEnvVar(cfg.Provider)}
	}

	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAI(cfg), nil
	case config.ProviderClaude:
		return NewClaude(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
