package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/S-Anagha/Quizzy/internal/ui/layout"
)

type stubScreen struct {
	title string
	inits int
	msgs  []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	s.msgs = append(s.msgs, msg)
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

type hintedScreen struct{ stubScreen }

func (h *hintedScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Go"}}
}

func (h *hintedScreen) Status() string { return "2/5" }

func run(r *Router, cmd tea.Cmd) {
	if cmd != nil {
		r.Update(cmd())
	}
}

func TestPushAndPop(t *testing.T) {
	root := &stubScreen{title: "root"}
	r := New(root)

	next := &stubScreen{title: "next"}
	run(r, Push(next))
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "next", r.Active().Title())
	assert.Equal(t, 1, next.inits)

	run(r, Pop())
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "root", r.View(80, 24))
	assert.Equal(t, 1, root.inits, "root re-initialized when shown again")
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "root"})
	run(r, Pop())
	assert.Equal(t, 1, r.Depth())
}

func TestReplace(t *testing.T) {
	r := New(&stubScreen{title: "root"})
	run(r, Push(&stubScreen{title: "quiz"}))

	summary := &stubScreen{title: "summary"}
	run(r, Replace(summary))
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "summary", r.Active().Title())
	assert.Equal(t, 1, summary.inits)
}

func TestHome(t *testing.T) {
	root := &stubScreen{title: "root"}
	r := New(root)
	run(r, Push(&stubScreen{title: "a"}))
	run(r, Push(&stubScreen{title: "b"}))

	run(r, Home())
	assert.Equal(t, 1, r.Depth())
	assert.Same(t, root, r.Active())
}

func TestUpdateForwardsToActive(t *testing.T) {
	root := &stubScreen{title: "root"}
	r := New(root)
	top := &stubScreen{title: "top"}
	run(r, Push(top))

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Len(t, top.msgs, 1)
	assert.Empty(t, root.msgs)
}

func TestKeyHintsAndStatus(t *testing.T) {
	r := New(&stubScreen{title: "root"})
	assert.Nil(t, r.KeyHints())
	assert.Empty(t, r.Status())

	run(r, Push(&hintedScreen{stubScreen{title: "hinted"}}))
	assert.Equal(t, "Enter", r.KeyHints()[0].Key)
	assert.Equal(t, "2/5", r.Status())
}
