package quiz

import (
	"errors"
	"fmt"
)

// FailureKind classifies why a quiz could not be produced.
type FailureKind string

const (
	// KindGenerationUnavailable means the text generation call itself failed.
	KindGenerationUnavailable FailureKind = "generation_unavailable"

	// KindNoJSONArray means no '[' ... ']' span was found in the output.
	KindNoJSONArray FailureKind = "no_json_array"

	// KindMalformedJSON means the located span did not parse as JSON.
	KindMalformedJSON FailureKind = "malformed_json"

	// KindSchemaViolation means the JSON parsed but broke the quiz schema.
	KindSchemaViolation FailureKind = "schema_violation"
)

// User-facing messages. Parser diagnostics never reach end users.
const (
	MessageGenerationFailed = "Quiz generation failed. Please try again in a moment."
	MessageTryAnotherTopic  = "Could not build a quiz for that topic. Try a different topic."
)

// Failure is the terminal error for one quiz request.
type Failure struct {
	Kind FailureKind

	// Detail is the operator-facing diagnostic: snippets, parse errors,
	// or the schema sub-reason.
	Detail string

	// Err is the underlying cause, if any.
	Err error
}

func (f *Failure) Error() string {
	if f.Err != nil && f.Detail == "" {
		return fmt.Sprintf("%s: %v", f.Kind, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Detail)
}

func (f *Failure) Unwrap() error { return f.Err }

// UserMessage collapses the failure kinds into the messages shown to
// players.
func (f *Failure) UserMessage() string {
	if f.Kind == KindGenerationUnavailable {
		return MessageGenerationFailed
	}
	return MessageTryAnotherTopic
}

// Unavailable wraps a text generation error.
func Unavailable(err error) *Failure {
	return &Failure{Kind: KindGenerationUnavailable, Err: err}
}

func violation(format string, args ...any) *Failure {
	return &Failure{Kind: KindSchemaViolation, Detail: fmt.Sprintf(format, args...)}
}

// KindOf returns the FailureKind carried by err, or "" when err is not a
// *Failure.
func KindOf(err error) FailureKind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return ""
}

// Result is the tagged outcome of one generation: exactly one of Set and
// Failure is meaningful.
type Result struct {
	Set     Set
	Failure *Failure
}

// OK reports whether the result carries a validated Set.
func (r Result) OK() bool { return r.Failure == nil }

// ResultOf converts a (Set, error) pair into a Result. Errors that are not
// a *Failure are treated as generation failures.
func ResultOf(set Set, err error) Result {
	if err == nil {
		return Result{Set: set}
	}
	var f *Failure
	if !errors.As(err, &f) {
		f = Unavailable(err)
	}
	return Result{Failure: f}
}
