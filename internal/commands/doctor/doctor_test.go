package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/ghostalert/internal/core/config"
)

func TestConfigCheck(t *testing.T) {
	t.Run("nil config fails", func(t *testing.T) {
		res := NewConfigCheck(nil).Run(context.Background())
		require.Len(t, res.Items, 1)
		assert.Equal(t, StatusFail, res.Items[0].Status)
	})

	t.Run("defaults pass", func(t *testing.T) {
		cfg := config.DefaultConfig()
		res := NewConfigCheck(&cfg).Run(context.Background())
		require.Len(t, res.Items, 1)
		assert.Equal(t, StatusPass, res.Items[0].Status)
	})

	t.Run("field errors and warnings", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Alert.Position = "sideways"
		cfg.Alert.Timeout = 0
		no := false
		cfg.Alert.Dismissible = &no

		res := NewConfigCheck(&cfg).Run(context.Background())

		var fails, warns int
		for _, item := range res.Items {
			switch item.Status {
			case StatusFail:
				fails++
				assert.Equal(t, "alert.position", item.Label)
			case StatusWarn:
				warns++
			}
		}
		assert.Equal(t, 1, fails)
		assert.GreaterOrEqual(t, warns, 1)
	})
}

func TestTerminalCheck(t *testing.T) {
	tests := []struct {
		name   string
		size   SizeFunc
		want   []Status
		detail string
	}{
		{
			name: "not a terminal",
			size: func() (int, int, error) { return 0, 0, errors.New("not a tty") },
			want: []Status{StatusFail},
		},
		{
			name: "fits",
			size: func() (int, int, error) { return 80, 24, nil },
			want: []Status{StatusPass, StatusPass},
		},
		{
			name: "too narrow",
			size: func() (int, int, error) { return 20, 24, nil },
			want: []Status{StatusPass, StatusWarn},
		},
		{
			name: "no room for margin",
			size: func() (int, int, error) { return 80, 7, nil },
			want: []Status{StatusPass, StatusWarn},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewTerminalCheck(tt.size, 44, 7, 1).Run(context.Background())

			got := make([]Status, 0, len(res.Items))
			for _, item := range res.Items {
				got = append(got, item.Status)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunAllAndSummary(t *testing.T) {
	cfg := config.DefaultConfig()
	checks := []Check{
		NewConfigCheck(&cfg),
		NewTerminalCheck(func() (int, int, error) { return 20, 24, nil }, 44, 7, 1),
		NewConfigCheck(nil),
	}

	results := RunAll(context.Background(), checks)
	require.Len(t, results, 3)
	assert.Equal(t, "pass", results[0].Items[0].StatusStr)

	passed, warned, failed := Summary(results)
	assert.Equal(t, 2, passed)
	assert.Equal(t, 1, warned)
	assert.Equal(t, 1, failed)
}
