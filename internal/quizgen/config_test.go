package quizgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/S-Anagha/Quizzy/internal/quiz"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, quiz.DefaultPolicy(), cfg.Policy)
	assert.Equal(t, 500, cfg.MaxTokens)
	assert.Equal(t, []string{"END"}, cfg.Stop)
	assert.False(t, cfg.StructuredOutput)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("QUIZZY_EXTRACT_STRATEGY", "balanced")
	t.Setenv("QUIZZY_MAX_TOKENS", "800")
	t.Setenv("QUIZZY_STRUCTURED_OUTPUT", "true")
	t.Setenv("QUIZZY_GENERATE_TIMEOUT", "5s")

	cfg := ConfigFromEnv()
	assert.Equal(t, quiz.StrategyBalanced, cfg.Policy.Strategy)
	assert.Equal(t, 800, cfg.MaxTokens)
	assert.True(t, cfg.StructuredOutput)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestConfigFromEnv_IgnoresGarbage(t *testing.T) {
	t.Setenv("QUIZZY_MAX_TOKENS", "lots")
	t.Setenv("QUIZZY_GENERATE_TIMEOUT", "soon")

	cfg := ConfigFromEnv()
	assert.Equal(t, 500, cfg.MaxTokens)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestQuizSchema_FollowsPolicy(t *testing.T) {
	s := QuizSchema(quiz.Policy{QuestionCount: 3, OptionCount: 2})
	assert.Equal(t, "quiz-set-3x2", s.Name)

	questions := s.Definition["properties"].(map[string]any)["questions"].(map[string]any)
	assert.Equal(t, 3, questions["minItems"])
	assert.Equal(t, 3, questions["maxItems"])
}
