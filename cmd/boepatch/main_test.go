package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func loggerApp() *cli.App {
	return &cli.App{
		Name: "test",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
			},
			&cli.StringFlag{
				Name: "config",
			},
		},
		Before: setupLogger,
		Action: func(c *cli.Context) error {
			return nil
		},
	}
}

func TestSetupLogger(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			t.Run(level, func(t *testing.T) {
				err := loggerApp().Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		for _, level := range []string{"DEBUG", "Info", "WaRn"} {
			t.Run(level, func(t *testing.T) {
				err := loggerApp().Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := loggerApp().Run([]string{"test", "--log-level", "loud"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("log-level flag has alias -l", func(t *testing.T) {
		err := loggerApp().Run([]string{"test", "-l", "debug"})
		require.NoError(t, err)
	})
}

func TestConfigFlagExportsEnv(t *testing.T) {
	t.Setenv("BOEPATCH_CONFIG", "")

	err := loggerApp().Run([]string{"test", "--config", "/tmp/boepatch.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/boepatch.yaml", os.Getenv("BOEPATCH_CONFIG"))
}
