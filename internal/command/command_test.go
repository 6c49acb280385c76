package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAdd(t *testing.T) {
	cmd, err := Parse("/add BTC 0.5")
	require.NoError(t, err)
	assert.Equal(t, KindAdd, cmd.Kind)
	assert.Equal(t, "btc", cmd.Symbol, "symbols are stored lowercase")
	assert.Equal(t, 0.5, cmd.Amount)
	assert.Equal(t, "0.5", cmd.AmountText)
}

func TestParseAddBadAmount(t *testing.T) {
	for _, text := range []string{"/add btc abc", "/add btc", "/add btc Inf", "/add btc NaN", "/add btc -1"} {
		_, err := Parse(text)
		var usage *UsageError
		require.ErrorAs(t, err, &usage, "input %q", text)
		assert.Equal(t, MsgAddUsage, usage.Message)
	}
}

func TestParseSetGoal(t *testing.T) {
	cmd, err := Parse("/setgoal 1000000")
	require.NoError(t, err)
	assert.Equal(t, KindSetGoal, cmd.Kind)
	assert.Equal(t, int64(1000000), cmd.Goal)
}

func TestParseSetGoalBadAmount(t *testing.T) {
	for _, text := range []string{"/setgoal", "/setgoal abc", "/setgoal 1.5"} {
		_, err := Parse(text)
		var usage *UsageError
		require.ErrorAs(t, err, &usage, "input %q", text)
		assert.Equal(t, MsgGoalUsage, usage.Message)
	}
}

func TestParseStatus(t *testing.T) {
	cmd, err := Parse("  /status  ")
	require.NoError(t, err)
	assert.Equal(t, KindStatus, cmd.Kind)
}

func TestParseFallsThroughToHelp(t *testing.T) {
	for _, text := range []string{"", "   ", "hello", "/unknown", "add btc 1", "/ADD btc 1"} {
		cmd, err := Parse(text)
		require.NoError(t, err, "input %q", text)
		assert.Equal(t, KindHelp, cmd.Kind, "input %q", text)
	}
}
