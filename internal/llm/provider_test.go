package llm

import (
	"context"
	"errors"
	"testing"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: `[{"a":1}]`, Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Text: "Sure! Here you go."},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp1.Text != `[{"a":1}]` {
		t.Fatalf("unexpected text %q", resp1.Text)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp2.Text != "Sure! Here you go." {
		t.Fatalf("unexpected text %q", resp2.Text)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_CancelledContext(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "[]"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mock.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "[]"})

	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
		Stop:     []string{"END"},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if got := mock.LastRequest(); got.System != "sys" || got.Stop[0] != "END" {
		t.Fatalf("unexpected recorded request: %+v", got)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{RetryAfter: 0}})

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestContextLabels(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}
	if id := RequestIDFrom(ctx); id != "" {
		t.Fatalf("expected empty request ID, got %q", id)
	}

	ctx = WithRequestID(WithPurpose(ctx, "quiz-gen"), "req-1")
	if p := PurposeFrom(ctx); p != "quiz-gen" {
		t.Fatalf("expected 'quiz-gen', got %q", p)
	}
	if id := RequestIDFrom(ctx); id != "req-1" {
		t.Fatalf("expected 'req-1', got %q", id)
	}
}

func TestConfig_Validate(t *testing.T) {
	retry := DefaultConfig().Retry
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"cloudflare without token", Config{Provider: "cloudflare", Retry: retry}, true},
		{"cloudflare without account", Config{Provider: "cloudflare", Cloudflare: CloudflareConfig{APIKey: "t"}, Retry: retry}, true},
		{"cloudflare with base URL", Config{Provider: "cloudflare", Cloudflare: CloudflareConfig{APIKey: "t", BaseURL: "http://x"}, Retry: retry}, false},
		{"cloudflare complete", Config{Provider: "cloudflare", Cloudflare: CloudflareConfig{APIKey: "t", AccountID: "a"}, Retry: retry}, false},
		{"anthropic without key", Config{Provider: "anthropic", Retry: retry}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}, Retry: retry}, false},
		{"openai without key", Config{Provider: "openai", Retry: retry}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}, Retry: retry}, false},
		{"gemini without key", Config{Provider: "gemini", Retry: retry}, true},
		{"openrouter with key", Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "k"}, Retry: retry}, false},
		{"mock needs no key", Config{Provider: "mock", Retry: retry}, false},
		{"zero attempts", Config{Provider: "mock"}, true},
		{"unknown provider", Config{Provider: "unknown", Retry: retry}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig_NoRetries(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Retry.MaxAttempts != 1 {
		t.Fatalf("expected retries disabled by default, got %d attempts", cfg.Retry.MaxAttempts)
	}
	if cfg.Provider != "cloudflare" {
		t.Fatalf("expected cloudflare default provider, got %q", cfg.Provider)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("QUIZZY_LLM_PROVIDER", "openai")
	t.Setenv("QUIZZY_OPENAI_API_KEY", "sk-env")
	t.Setenv("QUIZZY_OPENAI_MODEL", "gpt-4o")
	t.Setenv("QUIZZY_LLM_MAX_ATTEMPTS", "3")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-env" || cfg.OpenAI.Model != "gpt-4o" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", cfg.Retry.MaxAttempts)
	}
}

func TestDiscoverConfig(t *testing.T) {
	for _, k := range []string{"CLOUDFLARE_API_TOKEN", "CLOUDFLARE_ACCOUNT_ID", "GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no provider discovered")
	}

	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("CLOUDFLARE_API_TOKEN", "cf-token")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "anthropic" {
		t.Fatalf("expected anthropic without a Cloudflare account ID, got %+v", cfg)
	}

	t.Setenv("CLOUDFLARE_ACCOUNT_ID", "acct")
	cfg, ok = DiscoverConfig()
	if !ok || cfg.Provider != "cloudflare" || cfg.Cloudflare.AccountID != "acct" {
		t.Fatalf("expected cloudflare, got %+v", cfg)
	}
}

func TestNewProvider_MockIsLogged(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	p, err := NewProvider(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*LoggingProvider); !ok {
		t.Fatalf("expected *LoggingProvider without retries, got %T", p)
	}

	cfg.Retry.MaxAttempts = 2
	p, err = NewProvider(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*RetryProvider); !ok {
		t.Fatalf("expected *RetryProvider, got %T", p)
	}
}

func TestNewProvider_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	if _, err := NewProvider(context.Background(), cfg, nil); err == nil {
		t.Fatal("expected error for missing key")
	}
}
