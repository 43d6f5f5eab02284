package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/borker-run/internal/config"
	"github.com/vovakirdan/borker-run/internal/registry"
)

func TestPreset(t *testing.T) {
	defer func() { flagDifficulty = "" }()

	flagDifficulty = ""
	p, err := preset()
	require.NoError(t, err)
	assert.Equal(t, config.DifficultyPreset(""), p)

	flagDifficulty = "hard"
	p, err = preset()
	require.NoError(t, err)
	assert.Equal(t, config.DifficultyHard, p)

	flagDifficulty = "nightmare"
	_, err = preset()
	assert.Error(t, err)
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	defer func() { flagLogLevel, flagLogFile = "info", "" }()

	flagLogFile = "-"
	flagLogLevel = "loud"
	_, _, err := newLogger("test")
	assert.Error(t, err)

	flagLogLevel = "debug"
	logger, closer, err := newLogger("test")
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.NoError(t, closer.Close())
}

func TestGameRegistered(t *testing.T) {
	assert.True(t, registry.Exists("borker"))
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"play", "window", "serve", "runs", "progress", "list"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestProgressSubcommands(t *testing.T) {
	var names []string
	for _, c := range progressCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"show", "reset", "profiles"}, names)
	assert.NotNil(t, runsCmd.Flags().Lookup("clear"))
}
