package llm

import (
	"context"
	"fmt"

	"github.com/S-Anagha/Quizzy/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "cloudflare":
		base, err = NewCloudflareProvider(cfg.Cloudflare)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, cfg.Provider, eventRepo)
	if cfg.Retry.MaxAttempts <= 1 {
		return logged, nil
	}
	return WithRetry(logged, cfg.Retry), nil
}

// NewProviderFromEnv builds a provider from QUIZZY_* variables. When no
// provider is selected explicitly, the standard vendor key variables are
// checked instead.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if cfg.Validate() != nil {
		if discovered, ok := DiscoverConfig(); ok {
			discovered.Retry = cfg.Retry
			cfg = discovered
		}
	}
	return NewProvider(ctx, cfg, eventRepo)
}
