package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/ghostalert/internal/alert"
	"github.com/hay-kot/ghostalert/internal/core/config"
	"github.com/hay-kot/ghostalert/internal/printer"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "Validate configuration file",
				UsageText: "ghostalert config validate [options]",
				Description: `Validates the configuration file: positions, styles, durations, margins
and colors. A valid file also prints the alert defaults it resolves to.`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

// alertDefaults is the alert configuration after parsing and defaulting.
type alertDefaults struct {
	Position       string `json:"position"`
	Style          string `json:"style"`
	Scheme         string `json:"scheme"`
	Timeout        string `json:"timeout"`
	MessageTimeout string `json:"message_timeout"`
	Dismissible    bool   `json:"dismissible"`
	Margin         int    `json:"margin"`
	Animation      string `json:"animation"`
}

// resolveDefaults describes how alerts will look with cfg. It fails only
// when position or style do not parse, which Validate already reports.
func resolveDefaults(cfg *config.Config) (alertDefaults, bool) {
	position, err := alert.ParsePosition(cfg.Alert.Position)
	if err != nil {
		return alertDefaults{}, false
	}
	style, err := alert.ParseStyle(cfg.Alert.Style)
	if err != nil {
		return alertDefaults{}, false
	}

	scheme := style
	if scheme == alert.Default {
		scheme = alert.Dark
	}

	ap := alert.Resolve(style, position, cfg.Alert.TopMargin, cfg.Alert.BottomMargin)

	return alertDefaults{
		Position:       position.String(),
		Style:          style.String(),
		Scheme:         scheme.String(),
		Timeout:        describeTimeout(cfg.Alert.Timeout),
		MessageTimeout: describeTimeout(cfg.Alert.MessageTimeout),
		Dismissible:    cfg.IsDismissible(),
		Margin:         ap.Margin,
		Animation:      cfg.Animation.Duration.String(),
	}, true
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	if cmd.flags.Config == nil {
		return fmt.Errorf("configuration not loaded")
	}

	err := cmd.flags.Config.Validate()
	warnings := cmd.flags.Config.Warnings()

	if cmd.format == "json" {
		return cmd.outputJSON(c, err, warnings)
	}

	return cmd.outputText(p, err, warnings)
}

func (cmd *ConfigValidateCmd) outputJSON(c *cli.Command, validationErr error, warnings []config.ValidationWarning) error {
	type fieldError struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}

	out := struct {
		Valid    bool                       `json:"valid"`
		Errors   []fieldError               `json:"errors,omitempty"`
		Warnings []config.ValidationWarning `json:"warnings,omitempty"`
		Alert    *alertDefaults             `json:"alert,omitempty"`
	}{
		Valid:    validationErr == nil,
		Warnings: warnings,
	}

	for _, fe := range extractFieldErrors(validationErr) {
		out.Errors = append(out.Errors, fieldError{Field: fe.Field, Message: fe.Err.Error()})
	}

	if validationErr == nil {
		if defaults, ok := resolveDefaults(cmd.flags.Config); ok {
			out.Alert = &defaults
		}
	}

	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// extractFieldErrors extracts field errors from a validation error.
func extractFieldErrors(err error) criterio.FieldErrors {
	if err == nil {
		return nil
	}
	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}
	return criterio.FieldErrors{{Err: err}}
}

func (cmd *ConfigValidateCmd) outputText(p *printer.Printer, validationErr error, warnings []config.ValidationWarning) error {
	fieldErrs := extractFieldErrors(validationErr)

	if len(fieldErrs) > 0 {
		p.Section("Errors")
		for _, fe := range fieldErrs {
			label := fe.Field
			if label == "" {
				label = "validation"
			}
			p.FailItem(label, fe.Err.Error())
		}
		p.Printf("")
	}

	if len(warnings) > 0 {
		p.Section("Warnings")
		for _, warn := range warnings {
			label := warn.Category
			if warn.Item != "" {
				label += " (" + warn.Item + ")"
			}
			p.WarnItem(label, warn.Message)
		}
		p.Printf("")
	}

	if validationErr != nil {
		p.Errorf("%d error(s), %d warning(s)", len(fieldErrs), len(warnings))
		return cli.Exit("", 1)
	}

	if defaults, ok := resolveDefaults(cmd.flags.Config); ok {
		p.Section("Alerts")
		p.Printf("  position     %s (margin %d)", defaults.Position, defaults.Margin)
		p.Printf("  style        %s (%s)", defaults.Style, defaults.Scheme)
		p.Printf("  timeout      %s, %s with a message", defaults.Timeout, defaults.MessageTimeout)
		p.Printf("  dismissible  %t", defaults.Dismissible)
		p.Printf("  animation    %s", defaults.Animation)
		p.Printf("")
	}

	if len(warnings) > 0 {
		p.Successf("Configuration is valid (%d warning(s))", len(warnings))
	} else {
		p.Successf("Configuration is valid")
	}
	return nil
}

func describeTimeout(d time.Duration) string {
	if d <= 0 {
		return "none"
	}
	return d.String()
}
