// Package theme holds the colors and shared styles of the quiz player.
package theme

import (
	"charm.land/lipgloss/v2"
)

var (
	Primary = lipgloss.Color("#6366F1") // Indigo
	Accent  = lipgloss.Color("#FACC15") // Amber
	Success = lipgloss.Color("#22C55E")
	Error   = lipgloss.Color("#EF4444")
	Text    = lipgloss.Color("#F1F5F9")
	TextDim = lipgloss.Color("#94A3B8")
	BgCard  = lipgloss.Color("#1E1B4B")
	Border  = lipgloss.Color("#3730A3")
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 3)
)

// Answer states.
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Chosen = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Muted = lipgloss.NewStyle().
		Foreground(TextDim)
)
