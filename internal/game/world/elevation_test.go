package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewElevationBounds(t *testing.T) {
	_, err := NewElevation(MinElevation - 1)
	assert.ErrorIs(t, err, ErrElevationRange)
	_, err = NewElevation(MaxElevation + 1)
	assert.ErrorIs(t, err, ErrElevationRange)

	e, err := NewElevation(25)
	require.NoError(t, err)
	assert.Equal(t, Elevation(25), e)
}

func TestElevationCategories(t *testing.T) {
	cases := []struct {
		height int
		want   ElevationCategory
	}{
		{-100, ElevationDeepUnderwater},
		{-21, ElevationDeepUnderwater},
		{-20, ElevationUnderwater},
		{-1, ElevationUnderwater},
		{0, ElevationSeaLevel},
		{1, ElevationLowlands},
		{9, ElevationLowlands},
		{10, ElevationHills},
		{25, ElevationHills},
		{30, ElevationMountains},
		{59, ElevationMountains},
		{60, ElevationHighMountains},
		{100, ElevationHighMountains},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Elevation(tc.height).Category(), "height %d", tc.height)
	}
	// sea level is exactly zero, not the lowland band
	assert.NotEqual(t, Elevation(0).Category(), Elevation(1).Category())
}

func TestElevationUnderwater(t *testing.T) {
	assert.True(t, Elevation(-5).IsUnderwater())
	assert.False(t, Elevation(0).IsUnderwater())
	assert.False(t, Elevation(3).IsUnderwater())
}

func TestMovementDifficultyByDelta(t *testing.T) {
	cases := []struct {
		from, to Elevation
		want     float64
	}{
		{0, 0, 1.0},
		{0, 5, 1.2},
		{10, 4, 1.5},
		{0, 16, 2.0},
		{-20, 40, 3.0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.from.MovementDifficulty(tc.to))
		// symmetric in the delta
		assert.Equal(t, tc.want, tc.to.MovementDifficulty(tc.from))
	}
}
