package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // LLM events only
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	RequestID    string
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	StopReason   string
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// QuizEventData captures the outcome of one quiz generation request.
// FailureKind is empty on success.
type QuizEventData struct {
	RequestID     string
	Topic         string
	Source        string // "http", "cli", "tui"
	Success       bool
	FailureKind   string
	Detail        string
	QuestionCount int
	LatencyMs     int64
}

// QuizEvent is a stored quiz generation event.
type QuizEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	QuizEventData
}

// PurposeUsage aggregates LLM usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// OutcomeCount is the number of quiz generations that ended with a given
// failure kind. Kind is empty for successes.
type OutcomeCount struct {
	Kind  string
	Count int
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendQuizGeneration records the outcome of a quiz request.
	AppendQuizGeneration(ctx context.Context, data QuizEventData) error
}
