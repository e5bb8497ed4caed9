package world

// BiomeType identifies a climatic zone. Biomes span cells of tiles and
// constrain which terrain types the generator may place inside them.
type BiomeType int

const (
	Temperate BiomeType = iota
	Arid
	Cold
	Wetlands
	Underground
	Artificial
)

// BiomeTypes lists every biome in a stable order.
var BiomeTypes = []BiomeType{Temperate, Arid, Cold, Wetlands, Underground, Artificial}

// String returns the biome name.
func (b BiomeType) String() string {
	switch b {
	case Temperate:
		return "Temperate"
	case Arid:
		return "Arid"
	case Cold:
		return "Cold"
	case Wetlands:
		return "Wetlands"
	case Underground:
		return "Underground"
	case Artificial:
		return "Artificial"
	default:
		return "Unknown"
	}
}

// BiomeConfig describes the terrain mix inside a biome. Weights are
// percentages; a weighted draw selects primary, then secondary, then rare.
type BiomeConfig struct {
	Primary         TerrainType
	PrimaryWeight   uint64
	Secondary       TerrainType
	SecondaryWeight uint64
	Rare            TerrainType
	RareWeight      uint64
	hasRare         bool
}

// Config returns the terrain distribution for the biome.
func (b BiomeType) Config() BiomeConfig {
	switch b {
	case Temperate:
		return BiomeConfig{
			Primary: Plains, PrimaryWeight: 60,
			Secondary: Forest, SecondaryWeight: 35,
			Rare: Constructed, RareWeight: 5, hasRare: true,
		}
	case Arid:
		return BiomeConfig{
			Primary: Desert, PrimaryWeight: 70,
			Secondary: Plains, SecondaryWeight: 25,
			Rare: Volcanic, RareWeight: 5, hasRare: true,
		}
	case Cold:
		return BiomeConfig{
			Primary: Tundra, PrimaryWeight: 60,
			Secondary: Mountains, SecondaryWeight: 35,
			Rare: Crystal, RareWeight: 5, hasRare: true,
		}
	case Wetlands:
		return BiomeConfig{
			Primary: Swamp, PrimaryWeight: 65,
			Secondary: Plains, SecondaryWeight: 30,
			Rare: Ocean, RareWeight: 5, hasRare: true,
		}
	case Underground:
		return BiomeConfig{
			Primary: Cave, PrimaryWeight: 70,
			Secondary: Mountains, SecondaryWeight: 20,
			Rare: Crystal, RareWeight: 10, hasRare: true,
		}
	case Artificial:
		return BiomeConfig{
			Primary: Constructed, PrimaryWeight: 50,
			Secondary: Plains, SecondaryWeight: 40,
			Rare: Anomaly, RareWeight: 10, hasRare: true,
		}
	default:
		return BiomeConfig{
			Primary: Plains, PrimaryWeight: 100,
			Secondary: Plains,
		}
	}
}

// pick draws a terrain from the distribution using hash as entropy. The
// draw is over the total weight so distributions need not sum to 100.
func (c BiomeConfig) pick(hash uint64) TerrainType {
	total := c.PrimaryWeight + c.SecondaryWeight
	if c.hasRare {
		total += c.RareWeight
	}
	if total == 0 {
		return c.Primary
	}
	roll := hash % total
	switch {
	case roll < c.PrimaryWeight:
		return c.Primary
	case roll < c.PrimaryWeight+c.SecondaryWeight:
		return c.Secondary
	case c.hasRare:
		return c.Rare
	default:
		return c.Primary
	}
}
