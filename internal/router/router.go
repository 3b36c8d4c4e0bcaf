// Package router keeps the stack of full-screen views shown by the app.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/S-Anagha/Quizzy/internal/ui/layout"
)

// Screen is one full-screen view.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens with custom footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is implemented by screens that show a status in the
// header, e.g. quiz progress.
type StatusProvider interface {
	Status() string
}

// PushScreenMsg requests the router to push a new screen onto the stack.
type PushScreenMsg struct {
	Screen Screen
}

// ReplaceScreenMsg swaps the top screen for a new one.
type ReplaceScreenMsg struct {
	Screen Screen
}

// PopScreenMsg requests the router to pop the current screen off the stack.
type PopScreenMsg struct{}

// PopToRootMsg unwinds the stack to its first screen.
type PopToRootMsg struct{}

// Push returns a command that pushes s.
func Push(s Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}

// Replace returns a command that replaces the top screen with s.
func Replace(s Screen) tea.Cmd {
	return func() tea.Msg { return ReplaceScreenMsg{Screen: s} }
}

// Pop returns a command that pops the top screen.
func Pop() tea.Cmd {
	return func() tea.Msg { return PopScreenMsg{} }
}

// Home returns a command that returns to the root screen.
func Home() tea.Cmd {
	return func() tea.Msg { return PopToRootMsg{} }
}

// Router manages a stack of screens.
type Router struct {
	stack []Screen
}

// New creates a new Router with the given initial screen.
func New(initial Screen) *Router {
	return &Router{stack: []Screen{initial}}
}

// Active returns the top screen on the stack.
func (r *Router) Active() Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update handles navigation messages and forwards everything else to the
// active screen. Screens that become active again are re-initialized.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		r.stack = append(r.stack, msg.Screen)
		return msg.Screen.Init()
	case ReplaceScreenMsg:
		r.stack[len(r.stack)-1] = msg.Screen
		return msg.Screen.Init()
	case PopScreenMsg:
		if len(r.stack) <= 1 {
			return nil
		}
		r.stack = r.stack[:len(r.stack)-1]
		return r.Active().Init()
	case PopToRootMsg:
		if len(r.stack) <= 1 {
			return nil
		}
		r.stack = r.stack[:1]
		return r.Active().Init()
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}

// KeyHints returns the active screen's hints, or nil.
func (r *Router) KeyHints() []layout.KeyHint {
	if p, ok := r.Active().(KeyHintProvider); ok {
		return p.KeyHints()
	}
	return nil
}

// Status returns the active screen's header status, or "".
func (r *Router) Status() string {
	if p, ok := r.Active().(StatusProvider); ok {
		return p.Status()
	}
	return ""
}
