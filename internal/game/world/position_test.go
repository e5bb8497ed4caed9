package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestPositionAdjacency(t *testing.T) {
	origin := Origin()
	assert.True(t, origin.IsAdjacent(Position{X: 1}))
	assert.True(t, origin.IsAdjacent(Position{Y: -1}))
	assert.True(t, origin.IsAdjacent(Position{Z: 1}))
	assert.False(t, origin.IsAdjacent(origin))
	assert.False(t, origin.IsAdjacent(Position{X: 1, Y: 1}))
	assert.False(t, origin.IsAdjacent(Position{X: 2}))
}

func TestManhattanDistance(t *testing.T) {
	a := Position{X: -2, Y: 3, Z: 1}
	b := Position{X: 4, Y: -1, Z: 1}
	assert.Equal(t, 10, a.ManhattanDistance(b))
	assert.Equal(t, 10, a.ManhattanDistance2D(b))
	assert.Equal(t, 0, a.ManhattanDistance(a))
}

func TestWithinDistance(t *testing.T) {
	center := Position{X: 5, Y: -5, Z: 2}
	within := center.WithinDistance(2)
	for _, p := range within {
		assert.LessOrEqual(t, center.ManhattanDistance2D(p), 2)
		assert.Equal(t, center.Z, p.Z)
	}
	// diamond of radius 2 holds 13 positions
	assert.Len(t, within, 13)
}

func TestManhattanSymmetry(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := Position{
			X: rapid.IntRange(-1000, 1000).Draw(t, "ax"),
			Y: rapid.IntRange(-1000, 1000).Draw(t, "ay"),
			Z: rapid.IntRange(-10, 10).Draw(t, "az"),
		}
		b := Position{
			X: rapid.IntRange(-1000, 1000).Draw(t, "bx"),
			Y: rapid.IntRange(-1000, 1000).Draw(t, "by"),
			Z: rapid.IntRange(-10, 10).Draw(t, "bz"),
		}
		assert.Equal(t, a.ManhattanDistance(b), b.ManhattanDistance(a))
		assert.GreaterOrEqual(t, a.ManhattanDistance(b), 0)
	})
}
