package alert

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

// Box metrics in terminal cells.
const (
	DefaultMaxWidth = 40

	paddingX  = 2
	paddingY  = 1
	borderW   = 1
	slideRows = 2
)

// Layout holds the wrapped labels and outer box size of an alert.
type Layout struct {
	TitleLines   []string
	MessageLines []string
	ContentWidth int
	Width        int
	Height       int
}

// computeLayout wraps title and message to maxWidth and sizes the box
// around them.
func computeLayout(title, message string, maxWidth int) Layout {
	if maxWidth < 1 {
		maxWidth = DefaultMaxWidth
	}

	l := Layout{TitleLines: wrapLines(title, maxWidth)}
	if message != "" {
		l.MessageLines = wrapLines(message, maxWidth)
	}

	l.ContentWidth = 1
	for _, line := range append(append([]string{}, l.TitleLines...), l.MessageLines...) {
		if w := ansi.StringWidth(line); w > l.ContentWidth {
			l.ContentWidth = w
		}
	}

	l.Width = l.ContentWidth + 2*paddingX + 2*borderW
	l.Height = len(l.TitleLines) + len(l.MessageLines) + 2*paddingY + 2*borderW
	return l
}

func wrapLines(s string, width int) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{""}
	}
	return strings.Split(ansi.Wrap(s, width, ""), "\n")
}

// Rect is a cell rectangle on the host.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// place positions a box of the layout's size inside a host of hostW x hostH.
// visibility (0..1, already eased) slides the box toward its anchor edge.
func (l Layout) place(ap Appearance, hostW, hostH int, visibility float64) Rect {
	r := Rect{Width: l.Width, Height: l.Height}
	r.X = max((hostW-l.Width)/2, 0)

	offset := int(math.Round((1 - visibility) * slideRows))
	switch ap.Anchor {
	case AnchorTop:
		r.Y = ap.Margin - offset
	case AnchorCenter:
		r.Y = (hostH - l.Height) / 2
	default:
		r.Y = hostH - l.Height - ap.Margin + offset
	}

	r.Y = min(r.Y, hostH-l.Height)
	r.Y = max(r.Y, 0)
	return r
}

// easeOut maps linear progress onto a cubic ease-out curve.
func easeOut(p float64) float64 {
	p = math.Max(0, math.Min(1, p))
	return 1 - math.Pow(1-p, 3)
}

// blend mixes from toward to by t in Lab space. Colours that cannot be
// converted fall back to the target.
func blend(from, to color.Color, t float64) color.Color {
	if t >= 1 {
		return to
	}
	a, ok := colorful.MakeColor(from)
	if !ok {
		return to
	}
	b, ok := colorful.MakeColor(to)
	if !ok {
		return to
	}
	return a.BlendLab(b, t).Clamped()
}
