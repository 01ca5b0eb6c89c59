// Package alert implements ghost alerts: transient overlays that show a
// title and an optional message, fade in, wait for a timeout or a tap, fade
// out and then report completion.
//
// An Alert is driven entirely from a Bubble Tea Update loop. Its operations
// return tea.Cmds that schedule animation frames and the auto-dismiss timer;
// the resulting messages must be fed back through Update (a Host such as
// tui.Surface does this for its children).
package alert

import (
	"image/color"
	"strings"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"
)

// Default timeouts for the convenience constructors.
const (
	DefaultTimeout        = 4 * time.Second
	DefaultMessageTimeout = 6 * time.Second
)

// Default animation parameters.
const (
	DefaultAnimationDuration = 300 * time.Millisecond
	DefaultFPS               = 30
)

// State is a step of the alert lifecycle.
type State int

const (
	StateHidden State = iota
	StateShowing
	StateVisible
	StateHiding
)

func (s State) String() string {
	switch s {
	case StateShowing:
		return "showing"
	case StateVisible:
		return "visible"
	case StateHiding:
		return "hiding"
	default:
		return "hidden"
	}
}

// DismissedMsg is sent once an alert has finished hiding and left its host.
type DismissedMsg struct {
	ID    int
	Title string
}

// frameMsg advances the running animation of alert id.
type frameMsg struct {
	id  int
	tag int
}

// timeoutMsg fires the auto-dismiss timer of alert id.
type timeoutMsg struct {
	id  int
	tag int
}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Alert is a transient overlay. Exported fields may be changed freely while
// the alert is hidden; they are read again on the next Show or ShowIn.
type Alert struct {
	Title       string
	Message     string
	Position    Position
	Style       Style
	Timeout     time.Duration
	Dismissible bool

	TopContentMargin    int
	BottomContentMargin int

	// Completion is called once after the exit animation and then cleared.
	// It may show the alert again; no DismissedMsg is sent in that case.
	Completion func()

	id           int
	state        State
	host         Host
	hostProvider HostProvider
	logger       zerolog.Logger

	maxWidth int
	layout   Layout

	duration time.Duration
	fps      int
	frame    int // 0..frames, drives fade and slide
	animTag  int

	timerTag     int
	timerPending bool
}

// Option configures an Alert at construction.
type Option func(*Alert)

// WithPosition sets the vertical placement.
func WithPosition(p Position) Option {
	return func(a *Alert) { a.Position = p }
}

// WithStyle sets the colour scheme.
func WithStyle(s Style) Option {
	return func(a *Alert) { a.Style = s }
}

// WithMargins sets the keep-out rows from the host's top and bottom edges.
func WithMargins(top, bottom int) Option {
	return func(a *Alert) {
		a.TopContentMargin = top
		a.BottomContentMargin = bottom
	}
}

// WithCompletion sets the completion callback.
func WithCompletion(fn func()) Option {
	return func(a *Alert) { a.Completion = fn }
}

// WithHostProvider sets the host lookup used by Show.
func WithHostProvider(p HostProvider) Option {
	return func(a *Alert) { a.hostProvider = p }
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Alert) { a.logger = l }
}

// WithAnimation sets the entrance/exit duration and frame rate. A zero
// duration completes each transition on its first frame.
func WithAnimation(d time.Duration, fps int) Option {
	return func(a *Alert) {
		a.duration = d
		a.fps = fps
	}
}

// WithMaxWidth sets the maximum label width in cells.
func WithMaxWidth(w int) Option {
	return func(a *Alert) { a.maxWidth = w }
}

// New creates a title-only alert that dismisses itself after 4 seconds.
func New(title string, opts ...Option) *Alert {
	return NewWithTimeout(title, "", DefaultTimeout, true, opts...)
}

// NewWithMessage creates an alert with a message that dismisses itself after
// 6 seconds.
func NewWithMessage(title, message string, opts ...Option) *Alert {
	return NewWithTimeout(title, message, DefaultMessageTimeout, true, opts...)
}

// NewWithTimeout creates an alert with every behavioural parameter explicit.
// A timeout <= 0 disables auto-dismiss.
func NewWithTimeout(title, message string, timeout time.Duration, dismissible bool, opts ...Option) *Alert {
	a := &Alert{
		Title:       title,
		Message:     message,
		Timeout:     timeout,
		Dismissible: dismissible,
		id:          nextID(),
		logger:      zerolog.Nop(),
		maxWidth:    DefaultMaxWidth,
		duration:    DefaultAnimationDuration,
		fps:         DefaultFPS,
	}

	for _, opt := range opts {
		opt(a)
	}

	a.Relayout()
	return a
}

// ID returns the identifier carried by the alert's messages.
func (a *Alert) ID() int {
	return a.id
}

// State returns the current lifecycle state.
func (a *Alert) State() State {
	return a.state
}

// Visible reports whether the alert is on its host, from the start of the
// entrance animation until the exit animation has finished.
func (a *Alert) Visible() bool {
	return a.state != StateHidden
}

// Layout returns the current label and box metrics.
func (a *Alert) Layout() Layout {
	return a.layout
}

// SetHostProvider replaces the host lookup used by Show.
func (a *Alert) SetHostProvider(p HostProvider) {
	a.hostProvider = p
}

// Relayout recomputes label wrapping and box size from the current title and
// message. It is ignored while the alert is on screen.
func (a *Alert) Relayout() {
	if a.state != StateHidden {
		return
	}
	a.layout = computeLayout(a.Title, a.Message, a.maxWidth)
}

// Show attaches the alert to the host returned by its HostProvider. Without
// a presentable host it does nothing.
func (a *Alert) Show() tea.Cmd {
	if a.state != StateHidden {
		return nil
	}

	var host Host
	if a.hostProvider != nil {
		host = a.hostProvider()
	}
	if host == nil {
		a.logger.Debug().Int("alert", a.id).Msg("no presentable surface, alert not shown")
		return nil
	}

	return a.ShowIn(host)
}

// ShowIn attaches the alert to host and starts the entrance animation. It is
// a no-op unless the alert is hidden.
func (a *Alert) ShowIn(host Host) tea.Cmd {
	if host == nil || a.state != StateHidden {
		return nil
	}

	a.Relayout()
	a.host = host
	host.AddChild(a)

	a.state = StateShowing
	a.frame = 0
	a.animTag++

	a.logger.Debug().
		Int("alert", a.id).
		Str("title", a.Title).
		Str("position", a.Position.String()).
		Dur("timeout", a.Timeout).
		Msg("alert showing")

	return a.nextFrame()
}

// Hide cancels any pending auto-dismiss and starts the exit animation. It is
// a no-op unless the alert is showing or visible.
func (a *Alert) Hide() tea.Cmd {
	if a.state != StateShowing && a.state != StateVisible {
		return nil
	}

	a.cancelTimer()
	a.state = StateHiding
	a.animTag++

	a.logger.Debug().Int("alert", a.id).Msg("alert hiding")
	return a.nextFrame()
}

// Tap dismisses the alert early when it is dismissible.
func (a *Alert) Tap() tea.Cmd {
	if !a.Dismissible {
		return nil
	}
	return a.Hide()
}

// Update handles the alert's animation and timer messages and left clicks
// inside its frame.
func (a *Alert) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case frameMsg:
		if msg.id != a.id || msg.tag != a.animTag {
			return nil
		}
		return a.step()

	case timeoutMsg:
		if msg.id != a.id || msg.tag != a.timerTag || !a.timerPending {
			return nil
		}
		a.timerPending = false
		a.logger.Debug().Int("alert", a.id).Msg("alert timed out")
		return a.Hide()

	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		if mouse.Button != tea.MouseLeft || !a.Frame().Contains(mouse.X, mouse.Y) {
			return nil
		}
		return a.Tap()
	}

	return nil
}

// step advances the running animation by one frame.
func (a *Alert) step() tea.Cmd {
	switch a.state {
	case StateShowing:
		a.frame = min(a.frame+1, a.frames())
		if a.frame < a.frames() {
			return a.nextFrame()
		}
		a.state = StateVisible
		a.logger.Debug().Int("alert", a.id).Msg("alert visible")
		return a.startTimer()

	case StateHiding:
		a.frame = max(a.frame-1, 0)
		if a.frame > 0 {
			return a.nextFrame()
		}
		return a.finish()
	}

	return nil
}

// finish detaches the alert and fires its completion.
func (a *Alert) finish() tea.Cmd {
	host := a.host
	a.host = nil
	if host != nil {
		host.RemoveChild(a)
	}
	a.state = StateHidden
	a.logger.Debug().Int("alert", a.id).Msg("alert hidden")

	done := a.Completion
	a.Completion = nil
	if done != nil {
		done()
	}

	// The completion showed the alert again: drive its new entrance instead
	// of reporting a dismissal.
	if a.state != StateHidden {
		a.logger.Debug().Int("alert", a.id).Msg("alert shown again from completion")
		return a.nextFrame()
	}

	id, title := a.id, a.Title
	return func() tea.Msg {
		return DismissedMsg{ID: id, Title: title}
	}
}

func (a *Alert) frames() int {
	if a.duration <= 0 || a.fps <= 0 {
		return 1
	}
	n := int(a.duration * time.Duration(a.fps) / time.Second)
	return max(n, 1)
}

func (a *Alert) frameInterval() time.Duration {
	if a.fps <= 0 {
		return time.Second / DefaultFPS
	}
	return time.Second / time.Duration(a.fps)
}

func (a *Alert) nextFrame() tea.Cmd {
	id, tag := a.id, a.animTag
	return tea.Tick(a.frameInterval(), func(time.Time) tea.Msg {
		return frameMsg{id: id, tag: tag}
	})
}

func (a *Alert) startTimer() tea.Cmd {
	if a.Timeout <= 0 {
		return nil
	}
	a.timerTag++
	a.timerPending = true

	id, tag := a.id, a.timerTag
	return tea.Tick(a.Timeout, func(time.Time) tea.Msg {
		return timeoutMsg{id: id, tag: tag}
	})
}

// cancelTimer invalidates any scheduled timeout so a late tick is dropped.
func (a *Alert) cancelTimer() {
	if a.timerPending {
		a.timerTag++
		a.timerPending = false
	}
}

// progress is the linear animation position, 0 fully out and 1 fully in.
func (a *Alert) progress() float64 {
	return float64(a.frame) / float64(a.frames())
}

func (a *Alert) appearance() Appearance {
	return Resolve(a.Style, a.Position, a.TopContentMargin, a.BottomContentMargin)
}

func (a *Alert) backdrop() color.Color {
	if b, ok := a.host.(Backdropper); ok {
		if c := b.Backdrop(); c != nil {
			return c
		}
	}
	return defaultBackdrop
}

// Frame returns the alert's rectangle on its host, or an empty Rect when it
// is not attached.
func (a *Alert) Frame() Rect {
	if a.host == nil || a.state == StateHidden {
		return Rect{}
	}
	w, h := a.host.Bounds()
	return a.layout.place(a.appearance(), w, h, easeOut(a.progress()))
}

// View renders the alert at its current animation position.
func (a *Alert) View() string {
	if a.state == StateHidden {
		return ""
	}

	var (
		ap   = a.appearance()
		t    = easeOut(a.progress())
		back = a.backdrop()
		bg   = blend(back, ap.Background, t)
	)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Width(a.layout.ContentWidth).
		Foreground(blend(back, ap.TitleColor, t)).
		Background(bg)

	labels := []string{titleStyle.Render(strings.Join(a.layout.TitleLines, "\n"))}

	if len(a.layout.MessageLines) > 0 {
		messageStyle := lipgloss.NewStyle().
			Align(lipgloss.Center).
			Width(a.layout.ContentWidth).
			Foreground(blend(back, ap.MessageColor, t)).
			Background(bg)
		labels = append(labels, messageStyle.Render(strings.Join(a.layout.MessageLines, "\n")))
	}

	box := lipgloss.NewStyle().
		Padding(paddingY, paddingX).
		Background(bg).
		Border(ap.Corners).
		BorderForeground(blend(back, ap.Border, t)).
		BorderBackground(back)

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, labels...))
}
