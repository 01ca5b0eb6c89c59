package commands

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/ghostalert/internal/alert"
	"github.com/hay-kot/ghostalert/internal/core/config"
	"github.com/hay-kot/ghostalert/internal/printer"
)

func defaultConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	return &cfg
}

func TestShowCmd_BuildAlert(t *testing.T) {
	tests := []struct {
		name        string
		cmd         ShowCmd
		timeoutSet  bool
		wantTimeout time.Duration
		wantPos     alert.Position
		wantStyle   alert.Style
		wantDismiss bool
	}{
		{
			name:        "title only uses title timeout",
			cmd:         ShowCmd{title: "Saved"},
			wantTimeout: 4 * time.Second,
			wantPos:     alert.Bottom,
			wantStyle:   alert.Default,
			wantDismiss: true,
		},
		{
			name:        "message uses message timeout",
			cmd:         ShowCmd{title: "Saved", message: "Your changes were saved"},
			wantTimeout: 6 * time.Second,
			wantPos:     alert.Bottom,
			wantStyle:   alert.Default,
			wantDismiss: true,
		},
		{
			name:        "flags override config",
			cmd:         ShowCmd{title: "Saved", timeout: 0, position: "top", style: "light", noDismiss: true},
			timeoutSet:  true,
			wantTimeout: 0,
			wantPos:     alert.Top,
			wantStyle:   alert.Light,
			wantDismiss: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := tt.cmd.buildAlert(defaultConfig(t), tt.timeoutSet)
			require.NoError(t, err)

			assert.Equal(t, tt.wantTimeout, a.Timeout)
			assert.Equal(t, tt.wantPos, a.Position)
			assert.Equal(t, tt.wantStyle, a.Style)
			assert.Equal(t, tt.wantDismiss, a.Dismissible)
			assert.Equal(t, 1, a.TopContentMargin)
			assert.Equal(t, 1, a.BottomContentMargin)
		})
	}
}

func TestShowCmd_BuildAlertInvalidFlag(t *testing.T) {
	cmd := ShowCmd{title: "Saved", position: "sideways"}
	_, err := cmd.buildAlert(defaultConfig(t), false)
	assert.Error(t, err)

	cmd = ShowCmd{title: "Saved", style: "neon"}
	_, err = cmd.buildAlert(defaultConfig(t), false)
	assert.Error(t, err)
}

func TestShowCmd_NoTerminal(t *testing.T) {
	var out bytes.Buffer
	ctx := printer.NewContext(context.Background(), printer.New(&out))

	flags := &Flags{Config: defaultConfig(t)}
	show := NewShowCmd(flags)
	show.isTerminal = func() bool { return false }

	app := show.Register(&cli.Command{Name: "ghostalert"})
	err := app.Run(ctx, []string{"ghostalert", "show", "Saved", "Your changes were saved"})
	require.NoError(t, err)

	assert.Equal(t, "Saved", show.title)
	assert.Equal(t, "Your changes were saved", show.message)
	assert.Contains(t, out.String(), "alert not shown")
}

func TestShowCmd_InvalidConfig(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Alert.Style = "neon"

	show := NewShowCmd(&Flags{Config: cfg})
	show.isTerminal = func() bool { return false }

	app := show.Register(&cli.Command{Name: "ghostalert"})
	err := app.Run(context.Background(), []string{"ghostalert", "show", "Saved"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
