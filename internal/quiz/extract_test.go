package quiz

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validArray = `[
  {"question": "What is the capital of France?", "options": ["Paris", "Lyon", "Nice", "Lille"], "correct": "Paris"},
  {"question": "Which planet is known as the red planet?", "options": ["Venus", "Mars", "Jupiter", "Saturn"], "correct": "Mars"},
  {"question": "How many legs does a spider have?", "options": ["6", "8", "10", "12"], "correct": "8"},
  {"question": "What gas do plants absorb?", "options": ["Oxygen", "Nitrogen", "Carbon dioxide", "Helium"], "correct": "Carbon dioxide"},
  {"question": "Who wrote Hamlet?", "options": ["Dickens", "Austen", "Shakespeare", "Tolstoy"], "correct": "Shakespeare"}
]`

func validSet() Set {
	return Set{
		{Question: "What is the capital of France?", Options: []string{"Paris", "Lyon", "Nice", "Lille"}, Correct: "Paris"},
		{Question: "Which planet is known as the red planet?", Options: []string{"Venus", "Mars", "Jupiter", "Saturn"}, Correct: "Mars"},
		{Question: "How many legs does a spider have?", Options: []string{"6", "8", "10", "12"}, Correct: "8"},
		{Question: "What gas do plants absorb?", Options: []string{"Oxygen", "Nitrogen", "Carbon dioxide", "Helium"}, Correct: "Carbon dioxide"},
		{Question: "Who wrote Hamlet?", Options: []string{"Dickens", "Austen", "Shakespeare", "Tolstoy"}, Correct: "Shakespeare"},
	}
}

// arrayWith builds a 5-question array where question idx is replaced by
// the given JSON object text.
func arrayWith(idx int, obj string) string {
	parts := make([]string, 5)
	for i := range parts {
		parts[i] = fmt.Sprintf(`{"question":"Q%d","options":["A","B","C","D"],"correct":"A"}`, i)
	}
	parts[idx] = obj
	return "[" + strings.Join(parts, ",") + "]"
}

func requireFailure(t *testing.T, err error, kind FailureKind) *Failure {
	t.Helper()
	require.Error(t, err)
	f, ok := err.(*Failure)
	require.True(t, ok, "expected *Failure, got %T", err)
	require.Equal(t, kind, f.Kind, "detail: %s", f.Detail)
	return f
}

func TestExtract_CleanArray(t *testing.T) {
	set, err := Extract(validArray)
	require.NoError(t, err)
	assert.Equal(t, validSet(), set)
}

func TestExtract_FencedArray(t *testing.T) {
	set, err := Extract("```json\n" + validArray + "\n```")
	require.NoError(t, err)
	assert.Equal(t, validSet(), set)

	set, err = Extract("```\n" + validArray + "\n```")
	require.NoError(t, err)
	assert.Equal(t, validSet(), set)
}

func TestExtract_SurroundingProse(t *testing.T) {
	set, err := Extract("Sure! Here's your quiz:\n" + validArray + "\nHope that helps!")
	require.NoError(t, err)
	assert.Equal(t, validSet(), set)
}

func TestExtract_PreservesOptionOrder(t *testing.T) {
	raw := arrayWith(2, `{"question":"Order?","options":["D","C","B","A"],"correct":"B"}`)
	set, err := Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "C", "B", "A"}, set[2].Options)
	assert.Equal(t, "Q0", set[0].Question)
	assert.Equal(t, "Q4", set[4].Question)
}

func TestExtract_NoArray(t *testing.T) {
	_, err := Extract("I cannot help with that.")
	f := requireFailure(t, err, KindNoJSONArray)
	assert.Contains(t, f.Detail, "I cannot help with that.")
}

func TestExtract_BracketsOutOfOrder(t *testing.T) {
	_, err := Extract("] nothing here [")
	requireFailure(t, err, KindNoJSONArray)
}

func TestExtract_NoArraySnippetIsBounded(t *testing.T) {
	_, err := Extract(strings.Repeat("é", 500))
	f := requireFailure(t, err, KindNoJSONArray)
	assert.Less(t, len(f.Detail), 300)
	assert.True(t, strings.HasSuffix(f.Detail, "..."))
}

func TestExtract_TruncatedJSON(t *testing.T) {
	_, err := Extract(`[{"question":"Q1","options":["A","B","C","D"],"correct":"A"}`)
	f := requireFailure(t, err, KindMalformedJSON)
	assert.NotNil(t, f.Err)
	assert.Contains(t, f.Detail, "attempted:")
}

func TestExtract_SchemaViolations(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		detail string
	}{
		{
			name:   "wrong count",
			raw:    `[{"question":"Q","options":["A","B","C","D"],"correct":"A"}]`,
			detail: "wrong question count: got 1, want 5",
		},
		{
			name:   "element not object",
			raw:    arrayWith(1, `"just text"`),
			detail: "question 1: not an object",
		},
		{
			name:   "missing question",
			raw:    arrayWith(0, `{"options":["A","B","C","D"],"correct":"A"}`),
			detail: "question 0: missing/invalid field question",
		},
		{
			name:   "whitespace question",
			raw:    arrayWith(3, `{"question":"   ","options":["A","B","C","D"],"correct":"A"}`),
			detail: "question 3: missing/invalid field question",
		},
		{
			name:   "options not array",
			raw:    arrayWith(2, `{"question":"Q","options":"A,B,C,D","correct":"A"}`),
			detail: "question 2: missing/invalid field options",
		},
		{
			name:   "non-string option",
			raw:    arrayWith(2, `{"question":"Q","options":["A",2,"C","D"],"correct":"A"}`),
			detail: "question 2: missing/invalid field options",
		},
		{
			name:   "renamed correct field",
			raw:    arrayWith(4, `{"question":"Q","options":["A","B","C","D"],"answer":"A"}`),
			detail: "question 4: missing/invalid field correct",
		},
		{
			name:   "three options",
			raw:    arrayWith(3, `{"question":"Q","options":["A","B","C"],"correct":"A"}`),
			detail: "question 3: expected 4 options, got 3",
		},
		{
			name:   "duplicate options",
			raw:    arrayWith(1, `{"question":"Q","options":["A","A","B","C"],"correct":"A"}`),
			detail: "question 1: duplicate option",
		},
		{
			name:   "correct not among options",
			raw:    arrayWith(0, `{"question":"Q","options":["A","B","C","D"],"correct":"E"}`),
			detail: "question 0: correct answer not among options",
		},
		{
			name:   "correct differs in case",
			raw:    arrayWith(0, `{"question":"Q","options":["Paris","B","C","D"],"correct":"paris"}`),
			detail: "question 0: correct answer not among options",
		},
		{
			name:   "correct has extra whitespace",
			raw:    arrayWith(0, `{"question":"Q","options":["Paris","B","C","D"],"correct":"Paris "}`),
			detail: "question 0: correct answer not among options",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Extract(tt.raw)
			assert.Nil(t, set)
			f := requireFailure(t, err, KindSchemaViolation)
			assert.Equal(t, tt.detail, f.Detail)
		})
	}
}

func TestExtract_NotAnArray(t *testing.T) {
	// Located spans always start with '[', so exercise the check directly.
	_, f := NewExtractor(DefaultPolicy()).validate(map[string]any{"question": "Q"})
	require.NotNil(t, f)
	assert.Equal(t, "not an array", f.Detail)
}

func TestExtract_FirstFailureWins(t *testing.T) {
	parts := []string{
		`{"question":"Q0","options":["A","B","C","D"],"correct":"A"}`,
		`{"question":"Q1","options":["A","B","C"],"correct":"A"}`,
		`{"question":"Q2","options":["A","A","B","C"],"correct":"A"}`,
		`{"question":"Q3","options":["A","B","C","D"],"correct":"A"}`,
		`{"question":"Q4","options":["A","B","C","D"],"correct":"A"}`,
	}
	_, err := Extract("[" + strings.Join(parts, ",") + "]")
	f := requireFailure(t, err, KindSchemaViolation)
	assert.Equal(t, "question 1: expected 4 options, got 3", f.Detail)
}

func TestExtract_FirstLastSpansUnrelatedBrackets(t *testing.T) {
	raw := "Note [draft]:\n" + validArray
	_, err := Extract(raw)
	requireFailure(t, err, KindMalformedJSON)
}

func TestExtract_BalancedStrategyRecoversFromProseBrackets(t *testing.T) {
	p := DefaultPolicy()
	p.Strategy = StrategyBalanced
	raw := "Note [draft]:\n" + validArray + "\n(see [1])"

	set, err := NewExtractor(p).Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, validSet(), set)
}

func TestExtract_BalancedStrategyIgnoresBracketsInStrings(t *testing.T) {
	p := DefaultPolicy()
	p.Strategy = StrategyBalanced
	raw := arrayWith(0, `{"question":"What does \"]\" close?","options":["[","]","{","}"],"correct":"]"}`)

	set, err := NewExtractor(p).Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, `What does "]" close?`, set[0].Question)
}

func TestExtract_BalancedStrategyFallsBack(t *testing.T) {
	p := DefaultPolicy()
	p.Strategy = StrategyBalanced

	_, err := NewExtractor(p).Extract("no array [here")
	requireFailure(t, err, KindNoJSONArray)
}

func TestExtract_BalancedStrategyOnTruncatedOutput(t *testing.T) {
	p := DefaultPolicy()
	p.Strategy = StrategyBalanced

	// The outer array never closes; the nested options array must not be
	// taken as the quiz.
	_, err := NewExtractor(p).Extract(`[{"question":"Q1","options":["A","B","C","D"],"correct":"A"}`)
	requireFailure(t, err, KindMalformedJSON)
}

func TestBalancedArray(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"plain", `[1,2]`, `[1,2]`, true},
		{"skips invalid prose span", `see [draft] then [1]`, `[1]`, true},
		{"nested arrays are not candidates", `[note ["a","b"] end]`, "", false},
		{"unclosed outer array", `[{"o":["a","b"]}`, "", false},
		{"bracket in string", `["]",1]`, `["]",1]`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := balancedArray(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBalancedArray_LargeInputIsLinear(t *testing.T) {
	// Quadratic rescanning of these inputs would take minutes.
	unclosed := strings.Repeat("[", 1<<20)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, ok := balancedArray(unclosed)
		assert.False(t, ok)

		_, ok = balancedArray(strings.Repeat("[x] ", 1<<18) + "[1]")
		assert.True(t, ok)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("balanced scan did not finish")
	}
}

func TestExtract_CustomPolicy(t *testing.T) {
	p := Policy{QuestionCount: 1, OptionCount: 2}
	set, err := NewExtractor(p).Extract(`[{"question":"Yes?","options":["Yes","No"],"correct":"Yes"}]`)
	require.NoError(t, err)
	assert.Len(t, set, 1)
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, "[1]", StripFences("```json\n[1]\n```"))
	assert.Equal(t, "a  b", StripFences("a ``` b"))
	assert.Equal(t, "plain", StripFences("  plain  "))
}

func TestMatchBracket(t *testing.T) {
	assert.Equal(t, 4, matchBracket(`[[1]]`, 0))
	assert.Equal(t, -1, matchBracket(`[[1]`, 0))
	assert.Equal(t, 6, matchBracket(`["\"]"]`, 0))
}
