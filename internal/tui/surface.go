package tui

import (
	"image/color"
	"slices"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/ghostalert/internal/alert"
)

// Surface is the host alerts attach to inside a Bubble Tea program. It
// tracks the window size and composites attached alerts over the program's
// regular view.
type Surface struct {
	width    int
	height   int
	backdrop color.Color
	children []*alert.Alert
}

// NewSurface creates an empty surface. backdrop is the colour alerts fade
// from; nil uses the alert default.
func NewSurface(backdrop color.Color) *Surface {
	return &Surface{backdrop: backdrop}
}

// AddChild attaches a. Attaching the same alert twice has no effect.
func (s *Surface) AddChild(a *alert.Alert) {
	if a == nil || slices.Contains(s.children, a) {
		return
	}
	s.children = append(s.children, a)
}

// RemoveChild detaches a if present.
func (s *Surface) RemoveChild(a *alert.Alert) {
	s.children = slices.DeleteFunc(s.children, func(c *alert.Alert) bool {
		return c == a
	})
}

// Bounds returns the surface size in cells.
func (s *Surface) Bounds() (int, int) {
	return s.width, s.height
}

// Backdrop returns the colour behind attached alerts.
func (s *Surface) Backdrop() color.Color {
	return s.backdrop
}

// SetSize updates the surface size.
func (s *Surface) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Sized reports whether the surface has a usable size yet.
func (s *Surface) Sized() bool {
	return s.width > 0 && s.height > 0
}

// Children returns the attached alerts, oldest first.
func (s *Surface) Children() []*alert.Alert {
	return slices.Clone(s.children)
}

// Contains reports whether a is attached.
func (s *Surface) Contains(a *alert.Alert) bool {
	return slices.Contains(s.children, a)
}

// Frontmost returns the most recently attached alert, or nil.
func (s *Surface) Frontmost() *alert.Alert {
	if len(s.children) == 0 {
		return nil
	}
	return s.children[len(s.children)-1]
}

// Provider returns a HostProvider that yields this surface once it has been
// sized by the terminal.
func (s *Surface) Provider() alert.HostProvider {
	return func() alert.Host {
		if !s.Sized() {
			return nil
		}
		return s
	}
}

// Update records window size changes and forwards msg to every attached
// alert. Children may detach themselves while handling it.
func (s *Surface) Update(msg tea.Msg) tea.Cmd {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		s.SetSize(size.Width, size.Height)
	}

	var cmds []tea.Cmd
	for _, child := range s.Children() {
		if cmd := child.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Overlay renders attached alerts as layers over background.
func (s *Surface) Overlay(background string) string {
	if len(s.children) == 0 {
		return background
	}

	layers := []*lipgloss.Layer{lipgloss.NewLayer(background)}
	for i, child := range s.children {
		view := child.View()
		if view == "" {
			continue
		}
		frame := child.Frame()
		layer := lipgloss.NewLayer(view)
		layer.X(frame.X).Y(frame.Y).Z(i + 1)
		layers = append(layers, layer)
	}

	compositor := lipgloss.NewCompositor(layers...)
	return compositor.Render()
}
