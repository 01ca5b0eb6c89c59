package alert

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// Host is a surface an alert attaches to while it is on screen. The alert
// never owns its host; the reference is dropped when the exit animation ends.
type Host interface {
	AddChild(a *Alert)
	RemoveChild(a *Alert)
	Bounds() (width, height int)
}

// Backdropper is implemented by hosts that know the colour behind their
// children. Alerts fade from it and back into it.
type Backdropper interface {
	Backdrop() color.Color
}

// HostProvider returns the host Show should attach to, or nil when nothing
// can present an alert right now.
type HostProvider func() Host

// defaultBackdrop is the Tokyo Night background, used when the host does not
// implement Backdropper.
var defaultBackdrop = lipgloss.Color("#1a1b26")
