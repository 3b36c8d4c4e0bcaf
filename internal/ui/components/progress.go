package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/S-Anagha/Quizzy/internal/ui/theme"
)

// ProgressBar renders n of total as a horizontal bar.
type ProgressBar struct {
	Label string
	N     int
	Total int
	Width int
}

// View renders the label, the bar and an "n/total" counter.
func (p ProgressBar) View() string {
	var label string
	if p.Label != "" {
		label = theme.Body.Render(p.Label) + "  "
	}
	counter := fmt.Sprintf("  %d/%d", p.N, p.Total)

	barWidth := max(p.Width-lipgloss.Width(label)-len(counter), 4)
	filled := 0
	if p.Total > 0 {
		filled = min(max(barWidth*p.N/p.Total, 0), barWidth)
	}

	return label +
		lipgloss.NewStyle().Background(theme.Primary).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled)) +
		theme.Muted.Render(counter)
}
