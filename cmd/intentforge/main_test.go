package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestReembedCommandFlags(t *testing.T) {
	app := &cli.App{
		Name: "intentforge",
		Commands: []*cli.Command{
			{
				Name:   "reembed",
				Action: reembedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Required: true,
					},
				},
			},
		},
	}

	t.Run("embedding-model is required", func(t *testing.T) {
		args := []string{"intentforge", "reembed", "--db", "/tmp/test"}
		err := app.Run(args)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "embedding-model")
	})

	t.Run("embedding-host has default value", func(t *testing.T) {
		cmd := app.Commands[0]
		var hostFlag *cli.StringFlag
		for _, flag := range cmd.Flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "embedding-host" {
				hostFlag = f
				break
			}
		}
		require.NotNil(t, hostFlag)
		assert.Equal(t, "http://localhost:11434/v1", hostFlag.Value)
	})
}

func TestSetupLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	newContext := func(level string) *cli.Context {
		app := &cli.App{
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "log-level", Value: level},
			},
		}
		var captured *cli.Context
		app.Action = func(c *cli.Context) error {
			captured = c
			return nil
		}
		require.NoError(t, app.Run([]string{"intentforge"}))
		return captured
	}

	t.Run("valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "Info"} {
			c := newContext(level)
			assert.NoError(t, setupLogger(c), "level %q should be accepted", level)
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		c := newContext("verbose")
		err := setupLogger(c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestSeedFileParsing(t *testing.T) {
	path := t.TempDir() + "/segments.json"
	content := `[
		{"topic_id": "topic-1", "segment_id": "seg-1", "topic": "Gutter Guards", "description": "Gutter protection systems."},
		{"topic_id": "topic-1", "segment_id": "seg-2", "topic": "Roof Repair"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var seeds []seedSegment
	require.NoError(t, json.Unmarshal(data, &seeds))
	require.Len(t, seeds, 2)
	assert.Equal(t, "Gutter Guards", seeds[0].Topic)
	assert.Empty(t, seeds[1].Description)
}
