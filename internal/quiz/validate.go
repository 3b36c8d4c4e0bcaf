package quiz

import "strings"

// Validator checks one decoded question against the policy.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier, e.g. "option-count".
	Name() string

	// Validate returns nil if question i passes, or a schema violation.
	Validate(i int, q Question, p Policy) *Failure
}

// DefaultValidators returns the per-question checks in the order they
// must run.
func DefaultValidators() []Validator {
	return []Validator{
		OptionCountValidator{},
		DistinctOptionsValidator{},
		CorrectAnswerValidator{},
	}
}

// validate enforces the Set-level rules, then decodes and checks each
// question in index order. The first failure wins.
func (e *Extractor) validate(parsed any) (Set, *Failure) {
	items, ok := parsed.([]any)
	if !ok {
		return nil, violation("not an array")
	}
	if len(items) != e.policy.QuestionCount {
		return nil, violation("wrong question count: got %d, want %d", len(items), e.policy.QuestionCount)
	}

	set := make(Set, 0, len(items))
	for i, item := range items {
		q, f := decodeQuestion(i, item)
		if f != nil {
			return nil, f
		}
		for _, v := range e.validators {
			if f := v.Validate(i, q, e.policy); f != nil {
				return nil, f
			}
		}
		set = append(set, q)
	}
	return set, nil
}

// decodeQuestion checks field presence and types. Whitespace-only text
// is treated as missing.
func decodeQuestion(i int, item any) (Question, *Failure) {
	obj, ok := item.(map[string]any)
	if !ok {
		return Question{}, violation("question %d: not an object", i)
	}

	text, ok := obj["question"].(string)
	if !ok || isBlank(text) {
		return Question{}, invalidField(i, "question")
	}

	rawOpts, ok := obj["options"].([]any)
	if !ok {
		return Question{}, invalidField(i, "options")
	}
	opts := make([]string, len(rawOpts))
	for j, o := range rawOpts {
		s, ok := o.(string)
		if !ok || isBlank(s) {
			return Question{}, invalidField(i, "options")
		}
		opts[j] = s
	}

	correct, ok := obj["correct"].(string)
	if !ok || isBlank(correct) {
		return Question{}, invalidField(i, "correct")
	}

	return Question{Question: text, Options: opts, Correct: correct}, nil
}

func invalidField(i int, name string) *Failure {
	return violation("question %d: missing/invalid field %s", i, name)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// OptionCountValidator requires exactly Policy.OptionCount options.
type OptionCountValidator struct{}

func (OptionCountValidator) Name() string { return "option-count" }

func (OptionCountValidator) Validate(i int, q Question, p Policy) *Failure {
	if len(q.Options) != p.OptionCount {
		return violation("question %d: expected %d options, got %d", i, p.OptionCount, len(q.Options))
	}
	return nil
}

// DistinctOptionsValidator rejects byte-identical options.
type DistinctOptionsValidator struct{}

func (DistinctOptionsValidator) Name() string { return "distinct-options" }

func (DistinctOptionsValidator) Validate(i int, q Question, _ Policy) *Failure {
	seen := make(map[string]struct{}, len(q.Options))
	for _, o := range q.Options {
		if _, dup := seen[o]; dup {
			return violation("question %d: duplicate option", i)
		}
		seen[o] = struct{}{}
	}
	return nil
}

// CorrectAnswerValidator requires Correct to equal one option exactly.
// No case folding or trimming is applied.
type CorrectAnswerValidator struct{}

func (CorrectAnswerValidator) Name() string { return "correct-answer" }

func (CorrectAnswerValidator) Validate(i int, q Question, _ Policy) *Failure {
	for _, o := range q.Options {
		if o == q.Correct {
			return nil
		}
	}
	return violation("question %d: correct answer not among options", i)
}
