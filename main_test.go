package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patchank/assemblage/game/config"
	"github.com/patchank/assemblage/game/engine"
)

// runApp runs the command line with the given arguments and returns stdout
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	a := &app{logger: logrus.New()}
	cmd := a.command()

	var out bytes.Buffer
	cmd.Writer = &out
	cmd.ErrWriter = io.Discard

	err := cmd.Run(context.Background(), append([]string{AppName}, args...))
	return out.String(), err
}

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName != "assemblage" {
		t.Errorf("Expected app name assemblage, got %s", AppName)
	}
}

func TestRulesetsCommand(t *testing.T) {
	out, err := runApp(t, "--config-dir", "configs", "rulesets")
	require.NoError(t, err)

	assert.Contains(t, out, "short")
	assert.Contains(t, out, "2x6")
	assert.Contains(t, out, "standard")
	assert.Contains(t, out, "4x12")
	assert.Contains(t, out, "standard.json")
}

func TestRulesetsCommand_BuiltInStandard(t *testing.T) {
	out, err := runApp(t, "--config-dir", t.TempDir(), "rulesets")
	require.NoError(t, err)
	assert.Contains(t, out, "built-in")
}

func TestRulesetsCommand_InvalidConfigDir(t *testing.T) {
	_, err := runApp(t, "--config-dir", "/non/existent/path", "rulesets")
	assert.Error(t, err)
}

func TestCatalogCommand(t *testing.T) {
	out, err := runApp(t, "--config-dir", "configs", "catalog")
	require.NoError(t, err)

	assert.Contains(t, out, "48 cards for a 4x12 layout, size bonus 50")
	// Card A in base orientation and a quarter turn
	assert.Contains(t, out, "0 0 0 1")
	assert.Contains(t, out, "1 0 0 0")
	assert.Contains(t, out, "square")

	out, err = runApp(t, "--config-dir", "configs", "catalog", "--ruleset", "short")
	require.NoError(t, err)
	assert.Contains(t, out, "12 cards for a 2x6 layout, size bonus 20")

	_, err = runApp(t, "--config-dir", "configs", "catalog", "--ruleset", "missing")
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	t.Run("shipped rule sets", func(t *testing.T) {
		out, err := runApp(t, "--config-dir", "configs", "validate")
		require.NoError(t, err)
		assert.Contains(t, out, "VALID   "+filepath.Join("configs", "short.json"))
		assert.Contains(t, out, "VALID   "+filepath.Join("configs", "standard.json"))
		assert.NotContains(t, out, "INVALID")
	})

	t.Run("explicit files", func(t *testing.T) {
		dir := t.TempDir()
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{"name": "Bad"}`), 0644))

		out, err := runApp(t, "validate", filepath.Join("configs", "short.json"), bad)
		assert.Error(t, err)
		assert.Contains(t, out, "VALID   "+filepath.Join("configs", "short.json"))
		assert.Contains(t, out, "INVALID "+bad)
	})

	t.Run("config dir from environment", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0644))
		t.Setenv("CONFIG_DIR", dir)

		out, err := runApp(t, "validate")
		assert.Error(t, err)
		assert.Contains(t, out, "broken.json")
	})

	t.Run("nothing to validate", func(t *testing.T) {
		_, err := runApp(t, "--config-dir", t.TempDir(), "validate")
		assert.Error(t, err)
	})
}

func TestSimulateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "final.json")

	out, err := runApp(t, "--config-dir", "configs", "simulate",
		"--ruleset", "short", "--players", "3", "--seed", "7", "--strategy", "random", "--out", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Game finished after 24 moves")
	assert.Contains(t, out, "Winner: p")
	for _, id := range []string{"p1", "p2", "p3"} {
		assert.Contains(t, out, id)
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var state engine.GameState
	require.NoError(t, json.Unmarshal(data, &state))
	assert.Equal(t, engine.PhaseFinished, state.Phase)
	assert.Len(t, state.Scores, 3)
	assert.False(t, state.Layout.HasRemainingCards())
}

func TestSimulateCommand_Deterministic(t *testing.T) {
	args := []string{"--config-dir", "configs", "simulate", "--seed", "3", "--strategy", "greedy"}
	first, err := runApp(t, args...)
	require.NoError(t, err)
	second, err := runApp(t, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSimulateCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown strategy", []string{"simulate", "--strategy", "psychic"}},
		{"too many players", []string{"simulate", "--players", "5"}},
		{"too few players", []string{"simulate", "--players", "1"}},
		{"unknown rule set", []string{"simulate", "--ruleset", "nope"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := runApp(t, append([]string{"--config-dir", "configs"}, test.args...)...)
			assert.Error(t, err)
		})
	}
}

func TestRulesetOutsideConfigDir(t *testing.T) {
	for _, args := range [][]string{
		{"catalog", "--ruleset", "../configs/short"},
		{"simulate", "--ruleset", "../configs/short"},
	} {
		_, err := runApp(t, append([]string{"--config-dir", "configs"}, args...)...)
		assert.ErrorIs(t, err, config.ErrInvalidRuleSetName)
	}
}

func TestLogFormat(t *testing.T) {
	_, err := runApp(t, "--config-dir", "configs", "--log-format", "json", "rulesets")
	assert.NoError(t, err)

	_, err = runApp(t, "--config-dir", "configs", "--log-format", "yaml", "rulesets")
	assert.Error(t, err)
}
