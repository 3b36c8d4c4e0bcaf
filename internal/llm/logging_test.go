package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/S-Anagha/Quizzy/internal/store"
)

type recordingRepo struct {
	llm  []store.LLMRequestEventData
	fail error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.llm = append(r.llm, data)
	return r.fail
}

func (r *recordingRepo) AppendQuizGeneration(context.Context, store.QuizEventData) error {
	return nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{
		Text:  "[]",
		Usage: Usage{InputTokens: 12, OutputTokens: 3},
	})
	p := WithLogging(mock, "mock", repo)

	ctx := WithRequestID(WithPurpose(context.Background(), "quiz-gen"), "req-42")
	_, err := p.Generate(ctx, Request{
		System:   "sys prompt",
		Messages: []Message{{Role: RoleUser, Content: "topic: volcanoes"}},
		Stop:     []string{"END"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.llm) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.llm))
	}
	ev := repo.llm[0]
	if !ev.Success || ev.Purpose != "quiz-gen" || ev.RequestID != "req-42" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.Provider != "mock" || ev.Model != "mock" {
		t.Fatalf("unexpected provider/model: %q/%q", ev.Provider, ev.Model)
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 3 {
		t.Fatalf("unexpected tokens: %+v", ev)
	}
	if ev.ResponseBody != "[]" {
		t.Fatalf("unexpected response body %q", ev.ResponseBody)
	}
	for _, want := range []string{"[system]", "sys prompt", "[user]", "volcanoes", "[stop: END]"} {
		if !strings.Contains(ev.RequestBody, want) {
			t.Errorf("request body missing %q:\n%s", want, ev.RequestBody)
		}
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := &recordingRepo{}
	p := WithLogging(NewMockProvider(unavailable()), "mock", repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}
	ev := repo.llm[0]
	if ev.Success || ev.ErrorMessage == "" {
		t.Fatalf("expected failed event with message, got %+v", ev)
	}
}

func TestLogging_RepoErrorDoesNotFailRequest(t *testing.T) {
	repo := &recordingRepo{fail: errors.New("disk full")}
	p := WithLogging(NewMockProvider(MockResponse{Text: "[]"}), "mock", repo)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "[]" {
		t.Fatalf("unexpected text %q", resp.Text)
	}
}

func TestLogging_NilRepo(t *testing.T) {
	p := WithLogging(NewMockProvider(MockResponse{Text: "[]"}), "mock", nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
