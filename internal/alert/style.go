package alert

import (
	"fmt"
	"image/color"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
)

// Position is the vertical placement of an alert within its host.
type Position int

const (
	Bottom Position = iota
	Center
	Top
)

func (p Position) String() string {
	switch p {
	case Center:
		return "center"
	case Top:
		return "top"
	default:
		return "bottom"
	}
}

// ParsePosition converts a config or flag value into a Position.
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bottom":
		return Bottom, nil
	case "center", "centre", "middle":
		return Center, nil
	case "top":
		return Top, nil
	default:
		return Bottom, fmt.Errorf("invalid position %q, must be one of: bottom, center, top", s)
	}
}

// Style is the colour scheme of an alert.
type Style int

const (
	// Default resolves to Dark.
	Default Style = iota
	Light
	Dark
)

func (s Style) String() string {
	switch s {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return "default"
	}
}

// ParseStyle converts a config or flag value into a Style.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return Default, nil
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Default, fmt.Errorf("invalid style %q, must be one of: default, light, dark", s)
	}
}

// Anchor is the host edge an alert is laid out against.
type Anchor int

const (
	AnchorBottom Anchor = iota
	AnchorCenter
	AnchorTop
)

// Appearance is the resolved visual treatment for a style and position.
type Appearance struct {
	Background   color.Color
	Border       color.Color
	TitleColor   color.Color
	MessageColor color.Color
	Corners      lipgloss.Border

	Anchor Anchor
	Margin int
}

// Colour schemes. Dark mirrors the translucent black panel of the original
// ghost alert, Light its white counterpart.
var (
	darkBackground = lipgloss.Color("#16161e")
	darkBorder     = lipgloss.Color("#3b4261")
	darkTitle      = lipgloss.Color("#ffffff")
	darkMessage    = lipgloss.Color("#a9b1d6")

	lightBackground = lipgloss.Color("#f5f5f5")
	lightBorder     = lipgloss.Color("#c0c0c8")
	lightTitle      = lipgloss.Color("#000000")
	lightMessage    = lipgloss.Color("#3b3b45")
)

// Resolve computes colours, corner treatment, anchor edge and margin for the
// given style and position. Center ignores both margins.
func Resolve(style Style, position Position, topMargin, bottomMargin int) Appearance {
	ap := Appearance{Corners: lipgloss.RoundedBorder()}

	switch style {
	case Light:
		ap.Background = lightBackground
		ap.Border = lightBorder
		ap.TitleColor = lightTitle
		ap.MessageColor = lightMessage
	default:
		ap.Background = darkBackground
		ap.Border = darkBorder
		ap.TitleColor = darkTitle
		ap.MessageColor = darkMessage
	}

	switch position {
	case Top:
		ap.Anchor = AnchorTop
		ap.Margin = topMargin
	case Center:
		ap.Anchor = AnchorCenter
	default:
		ap.Anchor = AnchorBottom
		ap.Margin = bottomMargin
	}

	return ap
}
