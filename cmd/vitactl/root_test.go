package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with fresh flag state and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	jsonOutput = false
	scoreInput.sleep, scoreInput.water, scoreInput.exercise, scoreInput.streak = 0, 0, 0, 0
	progressInput.badgeType, progressInput.streak, progressInput.exercise, progressInput.water = "", 0, 0, 0

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := run(t, "--help")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	for _, name := range []string{"score", "progress", "leaderboard", "migrate", "index"} {
		assert.Contains(t, out, name)
	}
}

func TestScoreCommand(t *testing.T) {
	out, err := run(t, "score", "--sleep", "7.5", "--water", "2000", "--exercise", "30", "--streak", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Sleep     7.5 h")
	assert.Contains(t, out, "Score     188.0")
}

func TestScoreCommandJSON(t *testing.T) {
	out, err := run(t, "--json", "score", "--sleep", "8", "--water", "2500")
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.InDelta(t, 185.0, body["health_score"], 1e-9)
	assert.Equal(t, float64(8), body["sleep_hours"])
}

func TestScoreCommandRejectsSleepOutOfRange(t *testing.T) {
	_, err := run(t, "score", "--sleep", "25")
	assert.Error(t, err)
}

func TestProgressCommand(t *testing.T) {
	out, err := run(t, "--json", "progress", "--streak", "5", "--exercise", "400", "--water", "2600")
	require.NoError(t, err)

	var body map[string]float64
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.InDelta(t, 71.43, body["EarlyBird"], 0.01)
	assert.InDelta(t, 40.0, body["WorkoutWarrior"], 0.01)
	// hydration target met, progress follows the streak
	assert.InDelta(t, 35.71, body["HydrationHero"], 0.01)
}

func TestProgressCommandSingleType(t *testing.T) {
	out, err := run(t, "progress", "--type", "WorkoutWarrior", "--exercise", "1200")
	require.NoError(t, err)
	assert.Contains(t, out, "WorkoutWarrior")
	assert.Contains(t, out, "100.0%")
	assert.NotContains(t, out, "EarlyBird")
}

func TestProgressCommandUnknownType(t *testing.T) {
	_, err := run(t, "progress", "--type", "NightOwl")
	assert.Error(t, err)
}

func TestBar(t *testing.T) {
	assert.Equal(t, "[##########..........]", bar(50, 20))
	assert.Equal(t, "[....]", bar(-3, 4))
	assert.Equal(t, "[####]", bar(250, 4))
}
