package config

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/ghostalert/internal/alert"
)

var hexColorRe = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks that the configuration is valid. All problems are
// reported together as criterio.FieldErrors.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if _, err := alert.ParsePosition(c.Alert.Position); err != nil {
		errs = errs.Append("alert.position", err)
	}
	if _, err := alert.ParseStyle(c.Alert.Style); err != nil {
		errs = errs.Append("alert.style", err)
	}
	if c.Alert.Timeout < 0 {
		errs = errs.Append("alert.timeout", fmt.Errorf("must not be negative"))
	}
	if c.Alert.MessageTimeout < 0 {
		errs = errs.Append("alert.message_timeout", fmt.Errorf("must not be negative"))
	}
	if c.Alert.TopMargin < 0 {
		errs = errs.Append("alert.top_margin", fmt.Errorf("must not be negative"))
	}
	if c.Alert.BottomMargin < 0 {
		errs = errs.Append("alert.bottom_margin", fmt.Errorf("must not be negative"))
	}
	if c.Alert.MaxWidth < 1 {
		errs = errs.Append("alert.max_width", fmt.Errorf("must be at least 1"))
	}
	if c.Animation.Duration < 0 {
		errs = errs.Append("animation.duration", fmt.Errorf("must not be negative"))
	}
	if c.Animation.FPS < 1 || c.Animation.FPS > 120 {
		errs = errs.Append("animation.fps", fmt.Errorf("must be between 1 and 120"))
	}
	if !hexColorRe.MatchString(c.Theme.Backdrop) {
		errs = errs.Append("theme.backdrop", fmt.Errorf("invalid hex color %q", c.Theme.Backdrop))
	}

	return errs.ToError()
}

// Warnings returns non-fatal issues with otherwise valid settings.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	check := func(item string, timeout time.Duration) {
		if timeout > 0 && timeout <= 2*c.Animation.Duration {
			warnings = append(warnings, ValidationWarning{
				Category: "Alert",
				Item:     item,
				Message:  fmt.Sprintf("%s leaves no time on screen after a %s entrance and exit", timeout, c.Animation.Duration),
			})
		}
	}
	check("timeout", c.Alert.Timeout)
	check("message_timeout", c.Alert.MessageTimeout)

	if !c.IsDismissible() {
		var kinds []string
		if c.Alert.Timeout <= 0 {
			kinds = append(kinds, "title-only")
		}
		if c.Alert.MessageTimeout <= 0 {
			kinds = append(kinds, "message")
		}
		if len(kinds) > 0 {
			warnings = append(warnings, ValidationWarning{
				Category: "Alert",
				Item:     "dismissible",
				Message: fmt.Sprintf("%s alerts have no timeout and cannot be dismissed, they stay on screen until the program exits",
					strings.Join(kinds, " and ")),
			})
		}
	}

	return warnings
}
