package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewStatsValidation(t *testing.T) {
	_, err := NewStats(0, 10, 10, 10, 10, 10)
	assert.ErrorIs(t, err, ErrStatRange)

	_, err = NewStats(10, 10, 21, 10, 10, 10)
	assert.ErrorIs(t, err, ErrStatRange)

	stats, err := NewStats(12, 14, 8, 10, 16, 9)
	require.NoError(t, err)
	assert.Equal(t, 12, stats.Value(Strength))
	assert.Equal(t, 16, stats.Value(Luck))
}

func TestModifierFor(t *testing.T) {
	stats, err := NewStats(18, 14, 10, 8, 6, 1)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.ModifierFor(Strength))
	assert.Equal(t, 2, stats.ModifierFor(Dexterity))
	assert.Equal(t, 0, stats.ModifierFor(Intelligence))
	assert.Equal(t, -1, stats.ModifierFor(Charisma))
	assert.Equal(t, -2, stats.ModifierFor(Luck))
	assert.Equal(t, -4, stats.ModifierFor(Endurance))
}

func TestStartingStatsAreAverage(t *testing.T) {
	stats := StartingStats()
	for _, st := range []StatType{Strength, Dexterity, Intelligence, Charisma, Luck, Endurance} {
		assert.Equal(t, 10, stats.Value(st), st.String())
		assert.Equal(t, 0, stats.ModifierFor(st), st.String())
	}
}

func TestIncreaseStat(t *testing.T) {
	stats := StartingStats()
	raised, err := stats.IncreaseStat(Luck)
	require.NoError(t, err)
	assert.Equal(t, 11, raised.Value(Luck))
	// the original is unchanged
	assert.Equal(t, 10, stats.Value(Luck))

	capped, err := NewStats(10, 10, 10, 10, MaxStat, 10)
	require.NoError(t, err)
	_, err = capped.IncreaseStat(Luck)
	assert.ErrorIs(t, err, ErrStatRange)
}

func TestIncreaseStatStaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		start := rapid.IntRange(MinStat, MaxStat-1).Draw(t, "start")
		stats, err := NewStats(start, 10, 10, 10, 10, 10)
		require.NoError(t, err)

		raised, err := stats.IncreaseStat(Strength)
		require.NoError(t, err)
		assert.Equal(t, start+1, raised.Value(Strength))
		assert.LessOrEqual(t, raised.Value(Strength), MaxStat)
	})
}
