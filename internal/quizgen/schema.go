package quizgen

import (
	"fmt"

	"github.com/S-Anagha/Quizzy/internal/llm"
	"github.com/S-Anagha/Quizzy/internal/quiz"
)

// QuizSchema describes the structured-output shape requested from
// providers that support it. Structured output requires an object root, so
// the questions array is wrapped; extraction still locates the array.
func QuizSchema(p quiz.Policy) *llm.Schema {
	return &llm.Schema{
		Name:        fmt.Sprintf("quiz-set-%dx%d", p.QuestionCount, p.OptionCount),
		Description: "A multiple-choice quiz on a single topic",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type":     "array",
					"minItems": p.QuestionCount,
					"maxItems": p.QuestionCount,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"question": map[string]any{
								"type":        "string",
								"description": "One sentence question about the topic",
							},
							"options": map[string]any{
								"type":        "array",
								"items":       map[string]any{"type": "string"},
								"minItems":    p.OptionCount,
								"maxItems":    p.OptionCount,
								"description": "Distinct answer texts, not letters",
							},
							"correct": map[string]any{
								"type":        "string",
								"description": "Exact text of the correct option",
							},
						},
						"required":             []any{"question", "options", "correct"},
						"additionalProperties": false,
					},
				},
			},
			"required":             []any{"questions"},
			"additionalProperties": false,
		},
	}
}
