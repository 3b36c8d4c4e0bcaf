package quizgen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/S-Anagha/Quizzy/internal/llm"
	"github.com/S-Anagha/Quizzy/internal/quiz"
	"github.com/S-Anagha/Quizzy/internal/store"
)

// Service runs one quiz request end to end: generate, extract, validate,
// and record the outcome.
type Service struct {
	gen       Generator
	extractor *quiz.Extractor
	timeout   time.Duration
	events    store.EventRepo
	source    string
}

// NewService wires a generator to the extraction pipeline. events may be
// nil. source labels recorded events, e.g. "http" or "cli".
func NewService(gen Generator, cfg Config, events store.EventRepo, source string) *Service {
	return &Service{
		gen:       gen,
		extractor: quiz.NewExtractor(cfg.Policy),
		timeout:   cfg.Timeout,
		events:    events,
		source:    source,
	}
}

// Make returns a validated quiz for topic or a *quiz.Failure. The
// generator is called exactly once.
func (s *Service) Make(ctx context.Context, topic string) (quiz.Set, error) {
	topic = NormalizeTopic(topic)
	requestID := uuid.NewString()
	ctx = llm.WithRequestID(ctx, requestID)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	set, err := s.run(ctx, topic)
	s.record(ctx, requestID, topic, set, err, time.Since(start))
	return set, err
}

func (s *Service) run(ctx context.Context, topic string) (quiz.Set, error) {
	raw, err := s.gen.Generate(ctx, topic)
	if err != nil {
		var f *quiz.Failure
		if errors.As(err, &f) {
			return nil, f
		}
		return nil, quiz.Unavailable(err)
	}
	return s.extractor.Extract(raw)
}

func (s *Service) record(ctx context.Context, requestID, topic string, set quiz.Set, err error, elapsed time.Duration) {
	if s.events == nil {
		return
	}

	data := store.QuizEventData{
		RequestID:     requestID,
		Topic:         topic,
		Source:        s.source,
		Success:       err == nil,
		QuestionCount: len(set),
		LatencyMs:     elapsed.Milliseconds(),
	}
	if err != nil {
		data.FailureKind = string(quiz.KindOf(err))
		data.Detail = err.Error()
		var f *quiz.Failure
		if errors.As(err, &f) && f.Detail != "" {
			data.Detail = f.Detail
		}
	}

	if logErr := s.events.AppendQuizGeneration(context.WithoutCancel(ctx), data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log quiz event: %v\n", logErr)
	}
}

// Describe renders err for operators. Failures include their kind and
// full diagnostic detail.
func Describe(err error) string {
	var f *quiz.Failure
	if errors.As(err, &f) {
		return f.Error()
	}
	return fmt.Sprintf("%s: %v", quiz.KindGenerationUnavailable, err)
}
