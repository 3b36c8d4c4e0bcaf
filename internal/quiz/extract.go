package quiz

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// maxSnippet bounds how much model text is copied into failure details.
const maxSnippet = 200

// Extractor turns raw model output into a validated Set. It holds no
// mutable state and is safe for concurrent use.
type Extractor struct {
	policy     Policy
	validators []Validator
}

// NewExtractor creates an Extractor enforcing policy with the standard
// validator chain.
func NewExtractor(policy Policy) *Extractor {
	return &Extractor{policy: policy, validators: DefaultValidators()}
}

// Policy returns the policy this extractor enforces.
func (e *Extractor) Policy() Policy { return e.policy }

// Extract runs the default 5x4 pipeline over raw.
func Extract(raw string) (Set, error) {
	return NewExtractor(DefaultPolicy()).Extract(raw)
}

// Extract strips fences, locates the JSON array, parses it, and validates
// it. The returned error is always a *Failure. No partially valid Set is
// ever returned.
func (e *Extractor) Extract(raw string) (Set, error) {
	cleaned := StripFences(raw)

	slice, f := locateArray(cleaned, e.policy.Strategy)
	if f != nil {
		return nil, f
	}

	var parsed any
	if err := json.Unmarshal([]byte(slice), &parsed); err != nil {
		return nil, &Failure{
			Kind:   KindMalformedJSON,
			Detail: fmt.Sprintf("%v; attempted: %s", err, snippet(slice)),
			Err:    err,
		}
	}

	set, f := e.validate(parsed)
	if f != nil {
		return nil, f
	}
	return set, nil
}

// StripFences removes every "```json" marker and then every bare "```"
// marker. It is a textual substitution; JSON structure is not consulted.
func StripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

func locateArray(cleaned string, strategy Strategy) (string, *Failure) {
	if strategy == StrategyBalanced {
		if s, ok := balancedArray(cleaned); ok {
			return s, nil
		}
	}
	return firstLastArray(cleaned)
}

// firstLastArray slices from the first '[' to the last ']'. Nested or
// unrelated bracket pairs in surrounding prose are not detected.
func firstLastArray(cleaned string) (string, *Failure) {
	start := strings.IndexByte(cleaned, '[')
	end := strings.LastIndexByte(cleaned, ']')
	if start == -1 || end == -1 || start >= end {
		return "", &Failure{
			Kind:   KindNoJSONArray,
			Detail: fmt.Sprintf("no JSON array in output: %s", snippet(cleaned)),
		}
	}
	return strings.TrimSpace(cleaned[start : end+1]), nil
}

// balancedArray returns the first top-level balanced '[' ... ']' span that
// is valid JSON. Arrays nested in an earlier span are never candidates, and
// an unclosed '[' ends the search. Each byte is scanned at most once, so the
// cost is linear in len(text). Brackets inside JSON strings are ignored.
func balancedArray(text string) (string, bool) {
	for i := 0; i < len(text); i++ {
		if text[i] != '[' {
			continue
		}
		end := matchBracket(text, i)
		if end == -1 {
			return "", false
		}
		candidate := text[i : end+1]
		if json.Valid([]byte(candidate)) {
			return candidate, true
		}
		i = end
	}
	return "", false
}

// matchBracket returns the index of the ']' closing the '[' at start, or
// -1 if the text ends first.
func matchBracket(text string, start int) int {
	depth := 0
	inString := false
	escaped := false
	for j := start; j < len(text); j++ {
		c := text[j]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

// snippet truncates s to maxSnippet bytes without splitting a rune.
func snippet(s string) string {
	if len(s) <= maxSnippet {
		return s
	}
	cut := maxSnippet
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
