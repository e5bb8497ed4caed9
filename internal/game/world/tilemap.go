package world

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Tile is one generated cell of the world.
type Tile struct {
	Position  Position
	Biome     BiomeType
	Terrain   TerrainType
	Elevation Elevation
	Node      *ResourceNode
}

// IsPassable reports whether the tile's terrain can be entered.
func (t Tile) IsPassable() bool { return t.Terrain.IsPassable() }

// TileMap caches generated tiles and indexes their resource nodes. Tiles
// are generated lazily on first access and never change afterward, so the
// cache is purely a cost optimization. Safe for concurrent use.
type TileMap struct {
	mu        sync.RWMutex
	generator *Generator
	tiles     map[Position]Tile
	nodes     map[uuid.UUID]*ResourceNode
	logger    *zap.Logger
}

// NewTileMap builds an empty map backed by gen.
func NewTileMap(gen *Generator, logger *zap.Logger) *TileMap {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TileMap{
		generator: gen,
		tiles:     make(map[Position]Tile),
		nodes:     make(map[uuid.UUID]*ResourceNode),
		logger:    logger,
	}
}

// Generator returns the backing generator.
func (m *TileMap) Generator() *Generator { return m.generator }

// TileAt returns the tile at pos, generating and caching it on first
// access.
func (m *TileMap) TileAt(pos Position) Tile {
	m.mu.RLock()
	tile, ok := m.tiles[pos]
	m.mu.RUnlock()
	if ok {
		return tile
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if tile, ok = m.tiles[pos]; ok {
		return tile
	}
	tile = m.generator.GenerateTile(pos)
	m.tiles[pos] = tile
	if tile.Node != nil {
		m.nodes[tile.Node.ID] = tile.Node
		m.logger.Debug("resource node placed",
			zap.String("node", tile.Node.String()),
			zap.String("terrain", tile.Terrain.String()),
		)
	}
	return tile
}

// IsPassable reports whether the tile at pos can be entered.
func (m *TileMap) IsPassable(pos Position) bool {
	return m.TileAt(pos).IsPassable()
}

// MovementCost returns the cost of entering the tile at pos.
func (m *TileMap) MovementCost(pos Position) int {
	return m.TileAt(pos).Terrain.MovementCost()
}

// DangerLevel returns the hazard rating of the tile at pos.
func (m *TileMap) DangerLevel(pos Position) int {
	return m.TileAt(pos).Terrain.DangerLevel()
}

// TerrainAt returns the terrain of the tile at pos.
func (m *TileMap) TerrainAt(pos Position) TerrainType {
	return m.TileAt(pos).Terrain
}

// NodeAt returns the resource node on the tile at pos, or nil.
func (m *TileMap) NodeAt(pos Position) *ResourceNode {
	return m.TileAt(pos).Node
}

// Node looks a node up by ID.
func (m *TileMap) Node(id uuid.UUID) (*ResourceNode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	node, ok := m.nodes[id]
	if !ok {
		return nil, fmt.Errorf("no resource node with id %s", id)
	}
	return node, nil
}

// Nodes returns every node generated so far.
func (m *TileMap) Nodes() []*ResourceNode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	nodes := make([]*ResourceNode, 0, len(m.nodes))
	for _, n := range m.nodes {
		nodes = append(nodes, n)
	}
	return nodes
}

// RegenerateNodes applies one regeneration tick to every generated node
// and returns the total units restored.
func (m *TileMap) RegenerateNodes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.nodes {
		total += n.Regenerate()
	}
	return total
}

// TileCount returns how many tiles have been generated.
func (m *TileMap) TileCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tiles)
}

// PopulateChunk generates every tile in the square [x0,x1] x [y0,y1] on
// plane z and returns the number of newly generated tiles.
func (m *TileMap) PopulateChunk(x0, y0, x1, y1, z int) int {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	before := m.TileCount()
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			m.TileAt(Position{X: x, Y: y, Z: z})
		}
	}
	generated := m.TileCount() - before
	m.logger.Debug("chunk populated",
		zap.Int("x0", x0), zap.Int("y0", y0),
		zap.Int("x1", x1), zap.Int("y1", y1),
		zap.Int("z", z),
		zap.Int("generated", generated),
	)
	return generated
}

// PopulateAround generates the square of tiles within radius of center on
// the same plane.
func (m *TileMap) PopulateAround(center Position, radius int) int {
	if radius < 0 {
		radius = 0
	}
	return m.PopulateChunk(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius, center.Z)
}
