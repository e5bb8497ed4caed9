package world

import (
	"fmt"
	"sort"
	"strings"
)

// GenerationStats summarizes a set of generated tiles. Built by scanning
// the tile cache, so it reflects only what has been generated.
type GenerationStats struct {
	TileCount     int
	PassableCount int
	NodeCount     int
	TerrainCounts map[TerrainType]int
	BiomeCounts   map[BiomeType]int
}

// Stats scans the generated tiles and summarizes them.
func (m *TileMap) Stats() GenerationStats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stats := GenerationStats{
		TerrainCounts: make(map[TerrainType]int),
		BiomeCounts:   make(map[BiomeType]int),
	}
	for _, tile := range m.tiles {
		stats.TileCount++
		if tile.IsPassable() {
			stats.PassableCount++
		}
		if tile.Node != nil {
			stats.NodeCount++
		}
		stats.TerrainCounts[tile.Terrain]++
		stats.BiomeCounts[tile.Biome]++
	}
	return stats
}

// PassablePercentage returns the share of tiles that can be entered, 0-100.
func (s GenerationStats) PassablePercentage() float64 {
	if s.TileCount == 0 {
		return 0
	}
	return float64(s.PassableCount) / float64(s.TileCount) * 100
}

// ResourceDensity returns resource nodes per tile.
func (s GenerationStats) ResourceDensity() float64 {
	if s.TileCount == 0 {
		return 0
	}
	return float64(s.NodeCount) / float64(s.TileCount)
}

// DiversityIndex counts distinct terrain types present.
func (s GenerationStats) DiversityIndex() int {
	return len(s.TerrainCounts)
}

// BiomeDiversity counts distinct biomes present.
func (s GenerationStats) BiomeDiversity() int {
	return len(s.BiomeCounts)
}

// String renders a multi-line report, terrain lines sorted by count
// descending.
func (s GenerationStats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tiles: %d, passable: %.1f%%, nodes: %d (%.3f/tile), terrain diversity: %d\n",
		s.TileCount, s.PassablePercentage(), s.NodeCount, s.ResourceDensity(), s.DiversityIndex())

	type entry struct {
		terrain TerrainType
		count   int
	}
	entries := make([]entry, 0, len(s.TerrainCounts))
	for t, c := range s.TerrainCounts {
		entries = append(entries, entry{t, c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].terrain < entries[j].terrain
	})
	for _, e := range entries {
		fmt.Fprintf(&b, "  %-12s %d\n", e.terrain, e.count)
	}
	return b.String()
}
