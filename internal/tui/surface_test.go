package tui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/ghostalert/internal/alert"
)

func TestSurface_AddRemove(t *testing.T) {
	s := NewSurface(nil)
	a := alert.New("a")
	b := alert.New("b")

	s.AddChild(a)
	s.AddChild(a)
	s.AddChild(b)
	s.AddChild(nil)

	require.Len(t, s.Children(), 2)
	assert.Same(t, b, s.Frontmost())

	s.RemoveChild(b)
	assert.False(t, s.Contains(b))
	assert.Same(t, a, s.Frontmost())

	s.RemoveChild(b)
	s.RemoveChild(a)
	assert.Nil(t, s.Frontmost())
}

func TestSurface_ProviderRequiresSize(t *testing.T) {
	s := NewSurface(nil)
	provide := s.Provider()

	assert.Nil(t, provide(), "unsized surface is not presentable")

	s.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.True(t, s.Sized())
	assert.Equal(t, alert.Host(s), provide())
}

func TestSurface_ShowAndDetach(t *testing.T) {
	s := NewSurface(nil)
	s.SetSize(80, 24)

	completions := 0
	a := alert.New("Saved",
		alert.WithAnimation(0, 30),
		alert.WithHostProvider(s.Provider()),
		alert.WithCompletion(func() { completions++ }),
	)

	require.NotNil(t, a.Show())
	assert.True(t, s.Contains(a))

	// With a zero-duration animation the exit settles on its first frame.
	cmd := a.Tap()
	require.NotNil(t, cmd)
	s.Update(cmd())

	assert.False(t, s.Contains(a))
	assert.False(t, a.Visible())
	assert.Equal(t, 1, completions)
}

func TestSurface_OverlayWithoutChildren(t *testing.T) {
	s := NewSurface(nil)
	assert.Equal(t, "background", s.Overlay("background"))
}

func TestSurface_OverlayDrawsAlert(t *testing.T) {
	s := NewSurface(nil)
	s.SetSize(40, 12)

	a := alert.NewWithMessage("Saved", "All good", alert.WithPosition(alert.Top))
	a.ShowIn(s)

	bg := strings.TrimRight(strings.Repeat(strings.Repeat(".", 40)+"\n", 12), "\n")
	out := ansi.Strip(s.Overlay(bg))

	assert.Contains(t, out, "Saved")
	assert.Contains(t, out, "All good")
	assert.Contains(t, out, "....", "background remains visible")
}
