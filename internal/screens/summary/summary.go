// Package summary implements the results screen shown after a quiz is
// submitted.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/S-Anagha/Quizzy/internal/quiz"
	"github.com/S-Anagha/Quizzy/internal/router"
	"github.com/S-Anagha/Quizzy/internal/ui/components"
	"github.com/S-Anagha/Quizzy/internal/ui/layout"
	"github.com/S-Anagha/Quizzy/internal/ui/theme"
)

// AgainFunc builds a fresh session on the same topic.
type AgainFunc func(topic string) router.Screen

// Screen shows the score, the correct answers and what to do next.
type Screen struct {
	topic  string
	set    quiz.Set
	report quiz.Report
	menu   components.Menu
}

var _ router.Screen = (*Screen)(nil)

// New grades answers against set.
func New(topic string, set quiz.Set, answers quiz.Answers, again AgainFunc) *Screen {
	s := &Screen{
		topic:  topic,
		set:    set,
		report: quiz.GradeReport(set, answers),
	}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "New quiz on " + topic, Action: func() tea.Cmd { return router.Replace(again(topic)) }},
		{Label: "Pick another topic", Action: router.Home},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return s
}

// Report returns the graded result.
func (s *Screen) Report() quiz.Report { return s.report }

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	inner := min(width-12, 70)
	bar := components.ProgressBar{Label: "Score", N: s.report.Score, Total: s.report.Total, Width: inner}

	return layout.Center(theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render(fmt.Sprintf("You scored %d / %d", s.report.Score, s.report.Total)),
		theme.Subtitle.Render(verdict(s.report)),
		"",
		bar.View(),
		"",
		s.review(inner),
		s.menu.View(),
	)), width, height)
}

// review lists each question with the player's answer and, when wrong
// or missing, the correct one.
func (s *Screen) review(width int) string {
	var b strings.Builder
	for i, o := range s.report.Outcomes {
		b.WriteString(theme.Body.Width(width).Render(fmt.Sprintf("%d. %s", i+1, s.set[i].Question)) + "\n")
		switch {
		case o.IsCorrect:
			b.WriteString(theme.Correct.Render("   ✓ "+o.Chosen) + "\n")
		case o.Answered:
			b.WriteString(theme.Incorrect.Render("   ✗ "+o.Chosen) + theme.Muted.Render("  answer: ") + theme.Correct.Render(o.Correct) + "\n")
		default:
			b.WriteString(theme.Muted.Render("   – skipped") + theme.Muted.Render("  answer: ") + theme.Correct.Render(o.Correct) + "\n")
		}
	}
	return b.String()
}

func verdict(r quiz.Report) string {
	switch {
	case r.Total > 0 && r.Score == r.Total:
		return "Perfect score!"
	case r.Score*2 >= r.Total:
		return "Nice work."
	default:
		return "Keep practicing."
	}
}

func (s *Screen) Title() string { return "Results: " + s.topic }

func (s *Screen) Status() string {
	return fmt.Sprintf("%d/%d correct", s.report.Score, s.report.Total)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "New topic"},
	}
}
