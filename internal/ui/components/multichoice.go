package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/S-Anagha/Quizzy/internal/ui/theme"
)

// NoChoice marks a MultiChoice with nothing chosen yet.
const NoChoice = -1

// MultiChoice is a lettered option list. Choosing an option does not
// reveal whether it was right; call Reveal for that.
type MultiChoice struct {
	Options []string
	Cursor  int
	Chosen  int

	revealed bool
	correct  int
}

// NewMultiChoice creates a selector over options. chosen is the index of
// a previous answer, or NoChoice; the cursor starts there when set.
func NewMultiChoice(options []string, chosen int) MultiChoice {
	m := MultiChoice{Options: options, Chosen: NoChoice}
	if chosen >= 0 && chosen < len(options) {
		m.Chosen = chosen
		m.Cursor = chosen
	}
	return m
}

// Label returns the letter shown before option i.
func Label(i int) string {
	return string(rune('A' + i))
}

// Update moves the cursor and records choices. The bool reports whether
// an option was chosen by this message: enter on the cursor, or a digit
// key 1..n.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, bool) {
	if m.revealed {
		return m, false
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, false
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "enter":
		m.Chosen = m.Cursor
		return m, true
	default:
		if len(key) == 1 && key[0] >= '1' && int(key[0]-'1') < len(m.Options) {
			m.Cursor = int(key[0] - '1')
			m.Chosen = m.Cursor
			return m, true
		}
	}
	return m, false
}

// Reveal freezes the selector and highlights correct against the choice.
func (m *MultiChoice) Reveal(correct int) {
	m.revealed = true
	m.correct = correct
}

// ChosenOption returns the chosen option text.
func (m MultiChoice) ChosenOption() (string, bool) {
	if m.Chosen == NoChoice {
		return "", false
	}
	return m.Options[m.Chosen], true
}

// View renders the options one per line.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !m.revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, Label(i), opt)

		switch {
		case m.revealed && i == m.correct:
			line = theme.Correct.Render(line + "  ✓")
		case m.revealed && i == m.Chosen:
			line = theme.Incorrect.Render(line + "  ✗")
		case m.revealed:
			line = theme.Muted.Render(line)
		case i == m.Chosen:
			line = theme.Chosen.Render(line + "  •")
		case i == m.Cursor:
			line = theme.Selected.Render(line)
		default:
			line = theme.Body.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
