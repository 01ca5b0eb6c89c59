package tui

import (
	"image/color"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/hay-kot/ghostalert/internal/alert"
)

// Options configures the TUI behavior.
type Options struct {
	Backdrop      color.Color    // colour behind alerts (default Tokyo Night background)
	QuitOnDismiss bool           // exit once the alert has been dismissed
	Logger        zerolog.Logger // lifecycle logging
}

// Model is the Bubble Tea model that presents a single ghost alert.
type Model struct {
	surface *Surface
	alert   *alert.Alert
	keys    KeyMap
	logger  zerolog.Logger

	// pending is true until the first window size arrives; Show has no
	// presentable surface before that.
	pending       bool
	quitOnDismiss bool
	quitting      bool
	dismissals    int
}

// New creates a model that shows a as soon as the terminal reports its size.
func New(a *alert.Alert, opts Options) Model {
	backdrop := opts.Backdrop
	if backdrop == nil {
		backdrop = colorBackground
	}

	surface := NewSurface(backdrop)
	a.SetHostProvider(surface.Provider())

	return Model{
		surface:       surface,
		alert:         a,
		keys:          DefaultKeyMap(),
		logger:        opts.Logger,
		pending:       true,
		quitOnDismiss: opts.QuitOnDismiss,
	}
}

// Surface returns the host alerts are attached to.
func (m Model) Surface() *Surface {
	return m.surface
}

// Dismissals returns how many times the alert has finished hiding.
func (m Model) Dismissals() int {
	return m.dismissals
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cmd := m.surface.Update(msg)
		if m.pending {
			show := m.alert.Show()
			// A zero size is not presentable; wait for the next resize.
			m.pending = !m.alert.Visible()
			return m, tea.Batch(cmd, show)
		}
		return m, cmd

	case alert.DismissedMsg:
		m.dismissals++
		m.logger.Debug().Int("alert", msg.ID).Str("title", msg.Title).Msg("alert dismissed")
		if m.quitOnDismiss {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m, m.surface.Update(msg)
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Dismiss):
		if top := m.surface.Frontmost(); top != nil {
			return m, top.Tap()
		}
	case key.Matches(msg, m.keys.Replay):
		return m, m.alert.Show()
	}
	return m, nil
}

// View renders the TUI.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// render composites attached alerts over the banner and help footer.
func (m Model) render() string {
	w, h := m.surface.Bounds()
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	background := lipgloss.NewStyle().
		Width(w).
		Height(h).
		Render(lipgloss.JoinVertical(lipgloss.Left, bannerStyle.Render(banner), m.helpView()))

	return m.surface.Overlay(background)
}

// helpView renders the key binding footer.
func (m Model) helpView() string {
	parts := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, helpKeyStyle.Render(h.Key)+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}
