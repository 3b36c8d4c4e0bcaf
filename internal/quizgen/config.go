package quizgen

import (
	"os"
	"strconv"
	"time"

	"github.com/S-Anagha/Quizzy/internal/quiz"
)

// Config controls prompting and the extraction policy.
type Config struct {
	// Policy fixes the quiz shape and the array-location strategy.
	Policy quiz.Policy

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// Stop lists sequences that end generation.
	Stop []string

	// StructuredOutput attaches QuizSchema to the request so providers
	// with native JSON modes constrain the output.
	StructuredOutput bool

	// Timeout bounds the generation call. Zero means no bound beyond the
	// caller's context.
	Timeout time.Duration
}

// DefaultConfig returns the parameters the quiz prompt was tuned for.
func DefaultConfig() Config {
	return Config{
		Policy:      quiz.DefaultPolicy(),
		MaxTokens:   500,
		Temperature: 0.2,
		Stop:        []string{"END"},
		Timeout:     30 * time.Second,
	}
}

// ConfigFromEnv overlays QUIZZY_* environment variables on DefaultConfig.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if s := os.Getenv("QUIZZY_EXTRACT_STRATEGY"); s != "" {
		cfg.Policy.Strategy = quiz.ParseStrategy(s)
	}
	if n, err := strconv.Atoi(os.Getenv("QUIZZY_MAX_TOKENS")); err == nil && n > 0 {
		cfg.MaxTokens = n
	}
	if b, err := strconv.ParseBool(os.Getenv("QUIZZY_STRUCTURED_OUTPUT")); err == nil {
		cfg.StructuredOutput = b
	}
	if d, err := time.ParseDuration(os.Getenv("QUIZZY_GENERATE_TIMEOUT")); err == nil && d >= 0 {
		cfg.Timeout = d
	}

	return cfg
}
