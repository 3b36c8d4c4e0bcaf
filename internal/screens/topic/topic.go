// Package topic implements the screen where the player names a quiz topic.
package topic

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/S-Anagha/Quizzy/internal/router"
	"github.com/S-Anagha/Quizzy/internal/ui/components"
	"github.com/S-Anagha/Quizzy/internal/ui/layout"
	"github.com/S-Anagha/Quizzy/internal/ui/theme"
)

// EmptyTopicMessage is shown when enter is pressed on a blank input.
const EmptyTopicMessage = "Please enter a topic!"

const maxTopicLen = 120

// NextFunc builds the screen that plays a quiz on topic.
type NextFunc func(topic string) router.Screen

// Screen asks for a topic and pushes a quiz session for it.
type Screen struct {
	input components.TextInput
	next  NextFunc
}

var _ router.Screen = (*Screen)(nil)

// New creates the topic screen.
func New(next NextFunc) *Screen {
	return &Screen{
		input: components.NewTextInput("e.g. volcanoes, jazz, the Roman empire", maxTopicLen),
		next:  next,
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *Screen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "enter" {
		t := strings.TrimSpace(s.input.Value())
		if t == "" {
			s.input.Err = EmptyTopicMessage
			return s, nil
		}
		return s, router.Push(s.next(t))
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("What should your quiz be about?"),
		theme.Subtitle.Render("Five questions, four options each."),
		"",
		s.input.View(),
	)
	return layout.Center(theme.Card.Render(body), width, height)
}

func (s *Screen) Title() string { return "New Quiz" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Make quiz"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
