package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/S-Anagha/Quizzy/internal/ui/theme"
)

// MenuItem is one entry of a Menu.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

// Menu is a vertical list of actions.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the first item selected.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update handles navigation and runs the selected action on enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.Selected = (m.Selected - 1 + len(m.Items)) % len(m.Items)
	case "down", "j", "tab":
		m.Selected = (m.Selected + 1) % len(m.Items)
	case "enter":
		if a := m.Items[m.Selected].Action; a != nil {
			return m, a()
		}
	}
	return m, nil
}

// View renders the menu.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		if i == m.Selected {
			b.WriteString(theme.Selected.Render("  ▸ "+item.Label) + "\n")
		} else {
			b.WriteString(theme.Body.Render("    "+item.Label) + "\n")
		}
	}
	return b.String()
}
