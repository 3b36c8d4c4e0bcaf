package quizgen

import (
	"fmt"
	"strings"

	"github.com/S-Anagha/Quizzy/internal/quiz"
)

const systemPrompt = "You return ONLY JSON arrays. Never markdown."

// buildUserMessage renders the output contract for one quiz request.
func buildUserMessage(topic string, p quiz.Policy) string {
	var b strings.Builder

	b.WriteString("You are a STRICT JSON generator.\n\n")

	b.WriteString("OUTPUT RULES (MANDATORY):\n")
	b.WriteString("- Output ONLY valid JSON.\n")
	b.WriteString("- Output ONLY an array. No objects.\n")
	b.WriteString("- NO text before or after the JSON.\n")
	b.WriteString("- NO markdown. NO backticks. NO commentary.\n\n")

	b.WriteString("FORMAT EXAMPLE:\n")
	b.WriteString(formatExample(p.OptionCount))
	b.WriteString("\n\n")

	b.WriteString("QUIZ RULES:\n")
	fmt.Fprintf(&b, "- Generate EXACTLY %d questions.\n", p.QuestionCount)
	fmt.Fprintf(&b, "- Topic must be STRICTLY about: %q.\n", topic)
	b.WriteString("- ONE sentence per question.\n")
	fmt.Fprintf(&b, "- Each question has EXACTLY %d distinct options, all JSON strings.\n", p.OptionCount)
	b.WriteString("- \"correct\" MUST exactly match one of the options.\n")
	b.WriteString("- DO NOT use letters A/B/C as options. Use real answers.\n")
	b.WriteString("- DO NOT truncate your output. DO NOT stop early.\n\n")

	b.WriteString("Return ONLY the JSON array.")
	return b.String()
}

func formatExample(options int) string {
	opts := make([]string, options)
	for i := range opts {
		opts[i] = fmt.Sprintf("%q", string(rune('A'+i)))
	}
	return fmt.Sprintf(`[
  {
    "question": "string",
    "options": [%s],
    "correct": "A"
  }
]`, strings.Join(opts, ","))
}
