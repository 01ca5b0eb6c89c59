package doctor

import (
	"context"
	"fmt"
)

// SizeFunc reports the terminal size, or an error when the output is not a
// terminal.
type SizeFunc func() (width, height int, err error)

// TerminalCheck verifies there is a terminal large enough to present an
// alert of the given box size.
type TerminalCheck struct {
	size          SizeFunc
	boxW, boxH    int
	verticalSpace int
}

// NewTerminalCheck creates a terminal check for an alert box of boxW x boxH
// cells that also needs margin rows above or below it.
func NewTerminalCheck(size SizeFunc, boxW, boxH, margin int) *TerminalCheck {
	return &TerminalCheck{
		size:          size,
		boxW:          boxW,
		boxH:          boxH,
		verticalSpace: boxH + max(margin, 0),
	}
}

func (c *TerminalCheck) Name() string {
	return "Terminal"
}

func (c *TerminalCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	w, h, err := c.size()
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "Terminal attached",
			Status: StatusFail,
			Detail: "alerts are skipped when stdout is not a terminal",
		})
		return result
	}

	result.Items = append(result.Items, CheckItem{
		Label:  "Terminal attached",
		Status: StatusPass,
		Detail: fmt.Sprintf("%dx%d", w, h),
	})

	switch {
	case w < c.boxW || h < c.boxH:
		result.Items = append(result.Items, CheckItem{
			Label:  "Alert fits",
			Status: StatusWarn,
			Detail: fmt.Sprintf("alert is %dx%d, it will be clipped", c.boxW, c.boxH),
		})
	case h < c.verticalSpace:
		result.Items = append(result.Items, CheckItem{
			Label:  "Alert fits",
			Status: StatusWarn,
			Detail: "margin does not fit, alert will touch the edge",
		})
	default:
		result.Items = append(result.Items, CheckItem{
			Label:  "Alert fits",
			Status: StatusPass,
		})
	}

	return result
}
