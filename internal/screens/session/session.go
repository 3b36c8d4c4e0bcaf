// Package session implements the screen that generates a quiz for a topic
// and collects the player's answers.
package session

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/S-Anagha/Quizzy/internal/quiz"
	"github.com/S-Anagha/Quizzy/internal/router"
	"github.com/S-Anagha/Quizzy/internal/ui/components"
	"github.com/S-Anagha/Quizzy/internal/ui/layout"
)

// Maker produces a validated quiz set for a topic.
type Maker interface {
	Make(ctx context.Context, topic string) (quiz.Set, error)
}

// SubmitFunc builds the screen shown after the player submits.
type SubmitFunc func(topic string, set quiz.Set, answers quiz.Answers) router.Screen

type phase int

const (
	phaseLoading phase = iota
	phaseFailed
	phaseAnswering
)

const spinnerInterval = 100 * time.Millisecond

// Screen runs one quiz: generation, then answering.
type Screen struct {
	ctx      context.Context
	maker    Maker
	topic    string
	onSubmit SubmitFunc

	phase   phase
	attempt int
	frame   int
	failure *quiz.Failure

	set     quiz.Set
	answers quiz.Answers
	current int
	choice  components.MultiChoice
}

var _ router.Screen = (*Screen)(nil)

// New creates a session for topic. Generation starts on Init.
func New(ctx context.Context, maker Maker, topic string, onSubmit SubmitFunc) *Screen {
	return &Screen{
		ctx:      ctx,
		maker:    maker,
		topic:    topic,
		onSubmit: onSubmit,
	}
}

// Init starts generation once. Re-showing an answered session keeps it.
func (s *Screen) Init() tea.Cmd {
	if s.phase != phaseLoading || s.attempt > 0 {
		return nil
	}
	return s.start()
}

func (s *Screen) start() tea.Cmd {
	s.phase = phaseLoading
	s.failure = nil
	s.attempt++
	return tea.Batch(s.generate(s.attempt), spinnerTick())
}

func (s *Screen) generate(attempt int) tea.Cmd {
	ctx, maker, topic := s.ctx, s.maker, s.topic
	return func() tea.Msg {
		set, err := maker.Make(ctx, topic)
		return quizReadyMsg{attempt: attempt, Set: set, Err: err}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *Screen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if s.phase != phaseLoading {
			return s, nil
		}
		s.frame++
		return s, spinnerTick()

	case quizReadyMsg:
		if msg.attempt != s.attempt || s.phase != phaseLoading {
			return s, nil
		}
		res := quiz.ResultOf(msg.Set, msg.Err)
		if res.OK() && len(res.Set) == 0 {
			res.Failure = &quiz.Failure{Kind: quiz.KindSchemaViolation, Detail: "empty quiz"}
		}
		if !res.OK() {
			s.phase = phaseFailed
			s.failure = res.Failure
			return s, nil
		}
		s.phase = phaseAnswering
		s.set = res.Set
		s.answers = quiz.Answers{}
		s.show(0)
		return s, nil

	case tea.KeyPressMsg:
		switch s.phase {
		case phaseFailed:
			if k := msg.String(); k == "enter" || k == "r" {
				return s, s.start()
			}
		case phaseAnswering:
			return s.handleAnswerKey(msg)
		}
	}
	return s, nil
}

func (s *Screen) handleAnswerKey(msg tea.KeyPressMsg) (router.Screen, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		s.show(s.current - 1)
		return s, nil
	case "right", "l":
		s.show(s.current + 1)
		return s, nil
	case "s":
		return s, router.Replace(s.onSubmit(s.topic, s.set, s.answers))
	}

	var chosen bool
	s.choice, chosen = s.choice.Update(msg)
	if chosen {
		opt, _ := s.choice.ChosenOption()
		s.answers[s.current] = opt
		if s.current < len(s.set)-1 {
			s.show(s.current + 1)
		}
	}
	return s, nil
}

// show moves to question i, restoring any earlier answer.
func (s *Screen) show(i int) {
	if i < 0 || i >= len(s.set) {
		return
	}
	s.current = i
	chosen := components.NoChoice
	if prev, ok := s.answers[i]; ok {
		for j, o := range s.set[i].Options {
			if o == prev {
				chosen = j
			}
		}
	}
	s.choice = components.NewMultiChoice(s.set[i].Options, chosen)
}

// Answers returns a copy of the answers recorded so far.
func (s *Screen) Answers() quiz.Answers {
	out := make(quiz.Answers, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

func (s *Screen) Title() string { return "Quiz: " + s.topic }

func (s *Screen) Status() string {
	if s.phase != phaseAnswering {
		return ""
	}
	return answeredStatus(len(s.answers), len(s.set))
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseFailed:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Retry"},
			{Key: "Esc", Description: "New topic"},
		}
	case phaseAnswering:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Move"},
			{Key: "Enter/1-4", Description: "Answer"},
			{Key: "←→", Description: "Question"},
			{Key: "s", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Cancel"}}
}
