package llm

import "fmt"

const cloudflareBaseURL = "https://api.cloudflare.com/client/v4/accounts/%s/ai/v1"

// cloudflareModels maps friendly names to Workers AI model IDs.
var cloudflareModels = map[string]string{
	"llama-3.1-8b":  "@cf/meta/llama-3.1-8b-instruct",
	"llama-3.3-70b": "@cf/meta/llama-3.3-70b-instruct-fp8-fast",
	"mistral-7b":    "@cf/mistral/mistral-7b-instruct-v0.1",
}

// NewCloudflareProvider creates a provider for Cloudflare Workers AI using
// its OpenAI-compatible chat completions endpoint.
func NewCloudflareProvider(cfg CloudflareConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("cloudflare API token is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		if cfg.AccountID == "" {
			return nil, fmt.Errorf("cloudflare account ID is required")
		}
		baseURL = fmt.Sprintf(cloudflareBaseURL, cfg.AccountID)
	}

	return newOpenAICompatible(cfg.APIKey, baseURL, resolveModel(cfg.Model, cloudflareModels))
}
