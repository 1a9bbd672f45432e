package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"gohow/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootWithoutArgsListsUnits(t *testing.T) {
	isolate(t)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"--config", configPath})
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	}()

	require.NoError(t, rootCmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "Sample units:")
	assert.Contains(t, out, "builtin.collections")
	assert.Contains(t, out, "package collections shows the built-in slice and map types")
	assert.Contains(t, out, "syntax.regex")
	assert.Contains(t, out, "Usage:")
}

func TestRunList(t *testing.T) {
	isolate(t)

	out, err := runCaptured(t, runList)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 13)

	// Descriptions start in the same column.
	col := -1
	for _, line := range lines {
		i := strings.Index(line, "  package ")
		require.Positive(t, i, line)
		if col < 0 {
			col = i
		}
		assert.Equal(t, col, i, line)
	}
}

func TestRunList_Markdown(t *testing.T) {
	isolate(t)
	markdown = true

	out, err := runCaptured(t, runList)
	require.NoError(t, err)
	for _, want := range []string{"Sample units", "builtin", "lib.serialization", "syntax.formatting"} {
		assert.Contains(t, out, want)
	}
}

func TestResolveMode(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, config.PagerPlain, resolveMode(config.PagerAuto, &buf))
	for _, mode := range []string{config.PagerTUI, config.PagerExternal, config.PagerPlain} {
		assert.Equal(t, mode, resolveMode(mode, &buf))
	}
}

func TestRunExternal_EmptyCommand(t *testing.T) {
	var buf bytes.Buffer
	err := runExternal(context.Background(), &buf, "  ", "text")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRunExternal_CommandFailure(t *testing.T) {
	var buf bytes.Buffer
	err := runExternal(context.Background(), &buf, "false", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `pager "false"`)
}

func TestRunConfigInit(t *testing.T) {
	isolate(t)

	out, err := runCaptured(t, runConfigInit)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote default config to "+configPath)

	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.DefaultConfig().Pager.Mode, cfg.Pager.Mode)
	assert.Equal(t, config.DefaultConfig().Execution.Timeout, cfg.Execution.Timeout)

	_, err = runCaptured(t, runConfigInit)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	forceInit = true
	_, err = runCaptured(t, runConfigInit)
	assert.NoError(t, err)
}
