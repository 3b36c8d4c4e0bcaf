package quiz

// Question is one multiple-choice quiz question.
type Question struct {
	// Question is the prompt shown to the player. Never empty.
	Question string `json:"question"`

	// Options holds exactly 4 distinct answer texts. Order is significant
	// and is preserved from the model output.
	Options []string `json:"options"`

	// Correct equals exactly one element of Options, byte for byte.
	Correct string `json:"correct"`
}

// Set is the ordered collection of questions produced for one topic.
type Set []Question

// Answers maps a question index to the option text the player chose.
// Missing indices are unanswered.
type Answers map[int]string

// Policy controls the shape a Set must have to pass validation.
type Policy struct {
	// QuestionCount is the exact number of questions required.
	QuestionCount int

	// OptionCount is the exact number of options per question.
	OptionCount int

	// Strategy selects how the JSON array is located in raw text.
	Strategy Strategy
}

// Strategy selects how the array boundaries are located in model output.
type Strategy int

const (
	// StrategyFirstLast slices from the first '[' to the last ']'.
	StrategyFirstLast Strategy = iota

	// StrategyBalanced tries a balanced-bracket scan from each '[' and
	// takes the first candidate that parses, falling back to
	// StrategyFirstLast when none does.
	StrategyBalanced
)

func (s Strategy) String() string {
	switch s {
	case StrategyBalanced:
		return "balanced"
	default:
		return "first-last"
	}
}

// ParseStrategy maps a config value to a Strategy. Unknown values map to
// StrategyFirstLast.
func ParseStrategy(s string) Strategy {
	if s == "balanced" {
		return StrategyBalanced
	}
	return StrategyFirstLast
}

// DefaultPolicy returns the 5 questions x 4 options contract.
func DefaultPolicy() Policy {
	return Policy{
		QuestionCount: 5,
		OptionCount:   4,
		Strategy:      StrategyFirstLast,
	}
}
