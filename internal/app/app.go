// Package app wires the quiz screens into a Bubble Tea program.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/S-Anagha/Quizzy/internal/quiz"
	"github.com/S-Anagha/Quizzy/internal/router"
	"github.com/S-Anagha/Quizzy/internal/screens/session"
	"github.com/S-Anagha/Quizzy/internal/screens/summary"
	"github.com/S-Anagha/Quizzy/internal/screens/topic"
	"github.com/S-Anagha/Quizzy/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// New creates an AppModel that starts on the topic screen and makes
// quizzes with maker.
func New(ctx context.Context, maker session.Maker) AppModel {
	var play func(t string) router.Screen
	play = func(t string) router.Screen {
		return session.New(ctx, maker, t, func(t string, set quiz.Set, answers quiz.Answers) router.Screen {
			return summary.New(t, set, answers, play)
		})
	}
	return AppModel{router: router.New(topic.New(play))}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, router.Home()
			}
			return m, nil
		}
	}

	return m, m.router.Update(msg)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if content := m.render(); content != "" {
		v.SetContent(content)
	}
	return v
}

// render draws the whole frame, or "" before the first resize.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	title := ""
	if active := m.router.Active(); active != nil {
		title = active.Title()
	}
	header := layout.RenderHeader(title, m.router.Status(), m.width)

	hints := m.router.KeyHints()
	if hints == nil {
		hints = []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the interactive player and blocks until it exits.
func Run(ctx context.Context, maker session.Maker) error {
	p := tea.NewProgram(New(ctx, maker), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
