package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Linzell/space-looter-sub000/internal/game/resource"
)

func TestTileMapCachesTiles(t *testing.T) {
	m := NewTileMap(NewGenerator(12345), zaptest.NewLogger(t))
	pos := Position{X: 3, Y: 4}
	first := m.TileAt(pos)
	second := m.TileAt(pos)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, m.TileCount())
}

func TestPopulateChunk(t *testing.T) {
	m := NewTileMap(NewGenerator(12345), zaptest.NewLogger(t))
	generated := m.PopulateChunk(-4, -4, 5, 5, 0)
	assert.Equal(t, 100, generated)
	assert.Equal(t, 100, m.TileCount())

	// repopulating the same area generates nothing new
	assert.Equal(t, 0, m.PopulateChunk(-4, -4, 5, 5, 0))
}

func TestPopulateAround(t *testing.T) {
	m := NewTileMap(NewGenerator(7), zaptest.NewLogger(t))
	center := Position{X: 10, Y: -10, Z: 1}
	m.PopulateAround(center, 3)
	assert.Equal(t, 49, m.TileCount())
	for _, tile := range []Tile{m.TileAt(center), m.TileAt(center.Offset(3, 3, 0))} {
		assert.Equal(t, 1, tile.Position.Z)
	}
}

func TestStatsMostlyPassable(t *testing.T) {
	m := NewTileMap(NewGenerator(12345), zaptest.NewLogger(t))
	m.PopulateChunk(-40, -40, 40, 40, 0)
	stats := m.Stats()

	assert.Equal(t, 81*81, stats.TileCount)
	// ocean is rare (5% of wetlands cells at most), so the world stays
	// overwhelmingly walkable
	assert.Greater(t, stats.PassablePercentage(), 80.0)
	assert.GreaterOrEqual(t, stats.DiversityIndex(), 3)
	assert.GreaterOrEqual(t, stats.BiomeDiversity(), 2)
	assert.NotEmpty(t, stats.String())
}

func TestNodeRegistryLookup(t *testing.T) {
	m := NewTileMap(NewGenerator(2024), zaptest.NewLogger(t))
	m.PopulateChunk(-50, -50, 50, 50, 0)
	nodes := m.Nodes()
	require.NotEmpty(t, nodes)

	got, err := m.Node(nodes[0].ID)
	require.NoError(t, err)
	assert.Same(t, nodes[0], got)
}

func TestNodeHarvestAndRegenerate(t *testing.T) {
	props, ok := Plains.NodePropertiesFor(resource.Food)
	require.True(t, ok)
	node := NewResourceNode(Origin(), props, 100)

	amt, err := node.Harvest(30)
	require.NoError(t, err)
	assert.Equal(t, 30, amt.Units)
	assert.Equal(t, 70, node.Amount)

	// over-harvest yields only what remains
	amt, err = node.Harvest(1000)
	require.NoError(t, err)
	assert.Equal(t, 70, amt.Units)
	assert.True(t, node.IsDepleted())

	_, err = node.Harvest(1)
	assert.ErrorIs(t, err, ErrNodeDepleted)

	// fast regen restores 20% of capacity per tick
	restored := node.Regenerate()
	assert.Equal(t, 20, restored)
	assert.Equal(t, 20, node.Amount)
}

func TestRegenerateNodesAcrossMap(t *testing.T) {
	m := NewTileMap(NewGenerator(2024), zaptest.NewLogger(t))
	m.PopulateChunk(-50, -50, 50, 50, 0)

	var harvested *ResourceNode
	for _, n := range m.Nodes() {
		if n.Properties.Regen != resource.RegenNone {
			harvested = n
			break
		}
	}
	if harvested == nil {
		t.Skip("no regenerating node in sampled region")
	}
	_, err := harvested.Harvest(harvested.Amount)
	require.NoError(t, err)

	assert.Greater(t, m.RegenerateNodes(), 0)
	assert.Greater(t, harvested.Amount, 0)
}
