package commands

import (
	"context"
	"encoding/json"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/ghostalert/internal/alert"
	"github.com/hay-kot/ghostalert/internal/commands/doctor"
	"github.com/hay-kot/ghostalert/internal/core/config"
	"github.com/hay-kot/ghostalert/internal/printer"
)

type DoctorCmd struct {
	flags  *Flags
	format string

	size doctor.SizeFunc
}

func NewDoctorCmd(flags *Flags) *DoctorCmd {
	return &DoctorCmd{
		flags: flags,
		size: func() (int, int, error) {
			return term.GetSize(int(os.Stdout.Fd()))
		},
	}
}

func (cmd *DoctorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "doctor",
		Usage:       "Check that alerts can be shown",
		UsageText:   "ghostalert doctor [options]",
		Description: "Runs diagnostic checks on the configuration and the attached terminal.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DoctorCmd) run(ctx context.Context, c *cli.Command) error {
	checks := []doctor.Check{
		doctor.NewConfigCheck(cmd.flags.Config),
		cmd.terminalCheck(),
	}

	results := doctor.RunAll(ctx, checks)

	if cmd.format == "json" {
		return cmd.outputJSON(c, results)
	}

	return cmd.outputText(ctx, results)
}

// terminalCheck sizes a sample alert with a message using the configured
// width, the largest box the defaults produce.
func (cmd *DoctorCmd) terminalCheck() *doctor.TerminalCheck {
	cfg := cmd.flags.Config
	if cfg == nil {
		d := config.DefaultConfig()
		cfg = &d
	}

	l := sampleLayout(cfg.Alert.MaxWidth)

	// An unparsable position is reported by the config check; size for the
	// larger margin meanwhile.
	margin := max(cfg.Alert.TopMargin, cfg.Alert.BottomMargin)
	if position, err := alert.ParsePosition(cfg.Alert.Position); err == nil {
		margin = alert.Resolve(alert.Default, position, cfg.Alert.TopMargin, cfg.Alert.BottomMargin).Margin
	}

	return doctor.NewTerminalCheck(cmd.size, l.Width, l.Height, margin)
}

func sampleLayout(maxWidth int) alert.Layout {
	sample := alert.NewWithMessage("Ghostalert", "Your changes were saved to disk",
		alert.WithMaxWidth(maxWidth),
	)
	return sample.Layout()
}

func (cmd *DoctorCmd) outputJSON(c *cli.Command, results []doctor.Result) error {
	passed, warned, failed := doctor.Summary(results)

	out := struct {
		Healthy bool            `json:"healthy"`
		Summary summaryJSON     `json:"summary"`
		Checks  []doctor.Result `json:"checks"`
	}{
		Healthy: failed == 0,
		Summary: summaryJSON{Passed: passed, Warned: warned, Failed: failed},
		Checks:  results,
	}

	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

type summaryJSON struct {
	Passed int `json:"passed"`
	Warned int `json:"warned"`
	Failed int `json:"failed"`
}

func (cmd *DoctorCmd) outputText(ctx context.Context, results []doctor.Result) error {
	p := printer.Ctx(ctx)

	for _, result := range results {
		p.Section(result.Name)

		for _, item := range result.Items {
			switch item.Status {
			case doctor.StatusPass:
				p.CheckItem(item.Label, item.Detail)
			case doctor.StatusWarn:
				p.WarnItem(item.Label, item.Detail)
			case doctor.StatusFail:
				p.FailItem(item.Label, item.Detail)
			}
		}

		p.Printf("")
	}

	passed, warned, failed := doctor.Summary(results)
	p.Printf("Summary: %d passed, %d warnings, %d failed", passed, warned, failed)

	if failed > 0 {
		return cli.Exit("", 1)
	}

	return nil
}
