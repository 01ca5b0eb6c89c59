package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/ghostalert/internal/alert"
	"github.com/hay-kot/ghostalert/internal/core/config"
	"github.com/hay-kot/ghostalert/internal/printer"
	"github.com/hay-kot/ghostalert/internal/tui"
)

type ShowCmd struct {
	flags *Flags

	title     string
	message   string
	timeout   time.Duration
	position  string
	style     string
	noDismiss bool
	keep      bool

	// isTerminal reports whether stdout can present the TUI.
	isTerminal func() bool
}

// NewShowCmd creates a new show command
func NewShowCmd(flags *Flags) *ShowCmd {
	return &ShowCmd{
		flags: flags,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
}

// Flags returns the show flags, also registered on the root command so that
// `ghostalert "Saved"` works without the subcommand.
func (cmd *ShowCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "title",
			Aliases:     []string{"t"},
			Usage:       "alert title (or first argument)",
			Destination: &cmd.title,
		},
		&cli.StringFlag{
			Name:        "message",
			Aliases:     []string{"m"},
			Usage:       "alert message (or second argument)",
			Destination: &cmd.message,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "auto-dismiss delay, 0 to wait for a tap (default from config)",
			Destination: &cmd.timeout,
		},
		&cli.StringFlag{
			Name:        "position",
			Usage:       "alert position (bottom, center, top)",
			Destination: &cmd.position,
		},
		&cli.StringFlag{
			Name:        "style",
			Usage:       "alert style (default, light, dark)",
			Destination: &cmd.style,
		},
		&cli.BoolFlag{
			Name:        "no-dismiss",
			Usage:       "ignore taps and dismiss keys",
			Destination: &cmd.noDismiss,
		},
		&cli.BoolFlag{
			Name:        "keep",
			Usage:       "keep running after the alert is dismissed",
			Destination: &cmd.keep,
		},
	}
}

// Register adds the show command to the application.
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Show a ghost alert in the terminal",
		UsageText: "ghostalert show [options] [title] [message]",
		Flags:     cmd.Flags(),
		Action:    cmd.run,
	})
	return app
}

// Run executes the show command. Exported for use as default command.
func (cmd *ShowCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	cfg := cmd.flags.Config
	if cfg == nil {
		return fmt.Errorf("configuration not loaded")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if cmd.title == "" && c.Args().Len() > 0 {
		cmd.title = c.Args().Get(0)
	}
	if cmd.message == "" && c.Args().Len() > 1 {
		cmd.message = c.Args().Get(1)
	}

	a, err := cmd.buildAlert(cfg, c.IsSet("timeout"))
	if err != nil {
		return err
	}

	if !cmd.isTerminal() {
		p.Warnf("no terminal to present %q on, alert not shown", a.Title)
		return nil
	}

	m := tui.New(a, tui.Options{
		Backdrop:      lipgloss.Color(cfg.Theme.Backdrop),
		QuitOnDismiss: !cmd.keep,
		Logger:        log.With().Str("component", "tui").Logger(),
	})

	if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}

// buildAlert creates the alert from config defaults and command flags.
func (cmd *ShowCmd) buildAlert(cfg *config.Config, timeoutSet bool) (*alert.Alert, error) {
	positionName := cfg.Alert.Position
	if cmd.position != "" {
		positionName = cmd.position
	}
	position, err := alert.ParsePosition(positionName)
	if err != nil {
		return nil, err
	}

	styleName := cfg.Alert.Style
	if cmd.style != "" {
		styleName = cmd.style
	}
	style, err := alert.ParseStyle(styleName)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Alert.Timeout
	if cmd.message != "" {
		timeout = cfg.Alert.MessageTimeout
	}
	if timeoutSet {
		timeout = cmd.timeout
	}

	dismissible := cfg.IsDismissible() && !cmd.noDismiss

	return alert.NewWithTimeout(cmd.title, cmd.message, timeout, dismissible,
		alert.WithPosition(position),
		alert.WithStyle(style),
		alert.WithMargins(cfg.Alert.TopMargin, cfg.Alert.BottomMargin),
		alert.WithMaxWidth(cfg.Alert.MaxWidth),
		alert.WithAnimation(cfg.Animation.Duration, cfg.Animation.FPS),
		alert.WithLogger(log.With().Str("component", "alert").Logger()),
	), nil
}
