package session

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/S-Anagha/Quizzy/internal/ui/components"
	"github.com/S-Anagha/Quizzy/internal/ui/layout"
	"github.com/S-Anagha/Quizzy/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func answeredStatus(n, total int) string {
	return fmt.Sprintf("%d/%d answered", n, total)
}

func (s *Screen) View(width, height int) string {
	var body string
	switch s.phase {
	case phaseLoading:
		body = s.viewLoading()
	case phaseFailed:
		body = s.viewFailed()
	default:
		body = s.viewQuestion(width)
	}
	return layout.Center(theme.Card.Render(body), width, height)
}

func (s *Screen) viewLoading() string {
	spin := lipgloss.NewStyle().Foreground(theme.Accent).Render(spinnerFrames[s.frame%len(spinnerFrames)])
	return spin + " " + theme.Body.Render(fmt.Sprintf("Making a quiz about %q...", s.topic))
}

// viewFailed shows only the player-facing message; diagnostics go to the
// event log.
func (s *Screen) viewFailed() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		theme.ErrorText.Render(s.failure.UserMessage()),
		"",
		theme.Hint.Render("Press Enter to try again or Esc to pick another topic."),
	)
}

func (s *Screen) viewQuestion(width int) string {
	q := s.set[s.current]
	bar := components.ProgressBar{
		Label: fmt.Sprintf("Question %d", s.current+1),
		N:     len(s.answers),
		Total: len(s.set),
		Width: min(width-12, 60),
	}

	footer := theme.Hint.Render("Answer every question, then press s to submit.")
	if len(s.answers) == len(s.set) {
		footer = theme.Correct.Render("All answered! Press s to submit.")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		bar.View(),
		"",
		theme.Body.Bold(true).Width(min(width-12, 70)).Render(q.Question),
		"",
		s.choice.View(),
		footer,
	)
}
