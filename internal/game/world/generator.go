package world

import (
	"github.com/Linzell/space-looter-sub000/internal/game/resource"
)

// DefaultBiomeCellSize is the side length of the square biome cells the
// generator partitions the plane into.
const DefaultBiomeCellSize = 16

// Generator derives terrain deterministically from a world seed. The same
// seed and position always produce the same tile, so generators never need
// to persist what they emit. A Generator is stateless and safe for
// concurrent use.
type Generator struct {
	seed     uint64
	cellSize int
}

// NewGenerator builds a generator for the given seed using the default
// biome cell size.
func NewGenerator(seed uint64) *Generator {
	return NewGeneratorWithCellSize(seed, DefaultBiomeCellSize)
}

// NewGeneratorWithCellSize builds a generator with an explicit biome cell
// size. Sizes below 1 fall back to the default.
func NewGeneratorWithCellSize(seed uint64, cellSize int) *Generator {
	if cellSize < 1 {
		cellSize = DefaultBiomeCellSize
	}
	return &Generator{seed: seed, cellSize: cellSize}
}

// Seed returns the world seed.
func (g *Generator) Seed() uint64 { return g.seed }

// hashPosition folds a position into the seed with wrapping polynomial
// hashing. Negative coordinates wrap through the uint64 conversion, which
// keeps the function total over the whole plane.
func (g *Generator) hashPosition(pos Position) uint64 {
	h := g.seed
	h = h*31 + uint64(int64(pos.X))
	h = h*31 + uint64(int64(pos.Y))
	h = h*31 + uint64(int64(pos.Z))
	return h
}

// hashCell folds a biome cell into the seed. Distinct multipliers keep the
// cell hash decorrelated from the per-tile hash.
func (g *Generator) hashCell(cx, cy int) uint64 {
	h := g.seed
	h = h*73 + uint64(int64(cx))
	h = h*79 + uint64(int64(cy))
	return h
}

// DetermineBiome returns the biome for the cell containing pos. All tiles
// in one cell share a biome, which yields contiguous climatic regions.
func (g *Generator) DetermineBiome(pos Position) BiomeType {
	cx := floorDiv(pos.X, g.cellSize)
	cy := floorDiv(pos.Y, g.cellSize)
	switch band := g.hashCell(cx, cy) % 100; {
	case band <= 35:
		return Temperate
	case band <= 55:
		return Arid
	case band <= 70:
		return Cold
	case band <= 80:
		return Wetlands
	case band <= 90:
		return Underground
	default:
		return Artificial
	}
}

// TerrainAt returns the terrain type for pos, drawn from the biome's
// distribution using the per-tile hash.
func (g *Generator) TerrainAt(pos Position) TerrainType {
	biome := g.DetermineBiome(pos)
	return biome.Config().pick(g.hashPosition(pos))
}

// ElevationAt derives an elevation for pos. Elevation rises with distance
// from the origin plus small hash-driven variation. Out-of-range results
// clamp to sea level.
func (g *Generator) ElevationAt(pos Position) Elevation {
	base := (abs(pos.X) + abs(pos.Y)) / 10
	variation := int(g.hashPosition(pos)%5) - 2
	e := base + variation
	if e < 0 {
		e = 0
	}
	elev, err := NewElevation(e)
	if err != nil {
		return SeaLevel
	}
	return elev
}

// NodeAt decides whether pos hosts a resource node and, if so, which. A
// sparse spatial gate admits roughly one candidate per 21 tiles; the
// candidate resource must be hosted by the tile's terrain or no node is
// placed.
//
// Postcondition: nil when pos hosts no node
func (g *Generator) NodeAt(pos Position) *ResourceNode {
	if (pos.X+pos.Y)%7 != 0 {
		return nil
	}
	h := g.hashPosition(pos)
	if h%3 != 0 {
		return nil
	}

	var rt resource.Type
	switch h % 4 {
	case 0:
		rt = resource.Metal
	case 1:
		rt = resource.Energy
	case 2:
		rt = resource.Food
	default:
		rt = resource.Technology
	}

	terrain := g.TerrainAt(pos)
	props, ok := terrain.NodePropertiesFor(rt)
	if !ok {
		return nil
	}

	capacity := 50 + int(h%100)
	return NewResourceNode(pos, props, capacity)
}

// GenerateTile produces the full tile at pos: biome, terrain, elevation
// and any resource node.
func (g *Generator) GenerateTile(pos Position) Tile {
	return Tile{
		Position:  pos,
		Biome:     g.DetermineBiome(pos),
		Terrain:   g.TerrainAt(pos),
		Elevation: g.ElevationAt(pos),
		Node:      g.NodeAt(pos),
	}
}
