// Package quizgen turns a topic into a validated quiz by prompting an LLM
// and running its raw output through the quiz extraction pipeline.
package quizgen

import (
	"context"
	"errors"
	"strings"

	"github.com/S-Anagha/Quizzy/internal/llm"
	"github.com/S-Anagha/Quizzy/internal/quiz"
)

// DefaultTopic is used when the caller supplies no usable topic.
const DefaultTopic = "general knowledge"

// Purpose labels quiz generation calls in the LLM event log.
const Purpose = "quiz-gen"

// Generator produces the raw, untrusted text for a quiz on a topic.
type Generator interface {
	// Generate returns the model output exactly as produced. A failed
	// call returns a *quiz.Failure of kind generation_unavailable.
	Generate(ctx context.Context, topic string) (string, error)
}

// NormalizeTopic trims topic and substitutes DefaultTopic when it is empty.
func NormalizeTopic(topic string) string {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return DefaultTopic
	}
	return topic
}

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate makes exactly one provider call. Output is not inspected here.
func (g *LLMGenerator) Generate(ctx context.Context, topic string) (string, error) {
	ctx = llm.WithPurpose(ctx, Purpose)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(NormalizeTopic(topic), g.config.Policy)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
		Stop:        g.config.Stop,
	}
	if g.config.StructuredOutput {
		req.Schema = QuizSchema(g.config.Policy)
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		// A completed response that failed the provider's schema check
		// still goes through extraction so the failure is classified.
		var inv *llm.ErrInvalidResponse
		if errors.As(err, &inv) && inv.Text != "" {
			return inv.Text, nil
		}
		return "", quiz.Unavailable(err)
	}

	return resp.Text, nil
}
