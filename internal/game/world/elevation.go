package world

import "fmt"

// Elevation bounds in abstract units.
const (
	MinElevation = -100
	MaxElevation = 100
	SeaLevel     = 0
)

// ErrElevationRange indicates an elevation outside the supported bounds.
var ErrElevationRange = fmt.Errorf("elevation must be between %d and %d", MinElevation, MaxElevation)

// Elevation is a tile height relative to sea level.
type Elevation int

// NewElevation validates e against the world bounds.
//
// Precondition: e in [MinElevation, MaxElevation]
// Postcondition: returns the elevation, or ErrElevationRange
func NewElevation(e int) (Elevation, error) {
	if e < MinElevation || e > MaxElevation {
		return 0, ErrElevationRange
	}
	return Elevation(e), nil
}

// ElevationCategory buckets elevations for display and gameplay effect.
// Sea level is its own band, distinct from the lowlands just above it.
type ElevationCategory int

const (
	ElevationDeepUnderwater ElevationCategory = iota
	ElevationUnderwater
	ElevationSeaLevel
	ElevationLowlands
	ElevationHills
	ElevationMountains
	ElevationHighMountains
)

// Category returns the elevation band.
func (e Elevation) Category() ElevationCategory {
	switch {
	case e < -20:
		return ElevationDeepUnderwater
	case e < 0:
		return ElevationUnderwater
	case e == 0:
		return ElevationSeaLevel
	case e < 10:
		return ElevationLowlands
	case e < 30:
		return ElevationHills
	case e < 60:
		return ElevationMountains
	default:
		return ElevationHighMountains
	}
}

// IsUnderwater reports whether the tile lies below sea level.
func (e Elevation) IsUnderwater() bool { return e < SeaLevel }

// MovementDifficulty returns the cost multiplier for crossing between two
// elevations, based on the absolute height delta.
func (e Elevation) MovementDifficulty(other Elevation) float64 {
	delta := int(e) - int(other)
	if delta < 0 {
		delta = -delta
	}
	switch {
	case delta == 0:
		return 1.0
	case delta <= 5:
		return 1.2
	case delta <= 15:
		return 1.5
	case delta <= 30:
		return 2.0
	default:
		return 3.0
	}
}

// String returns the band name.
func (c ElevationCategory) String() string {
	switch c {
	case ElevationDeepUnderwater:
		return "Deep Underwater"
	case ElevationUnderwater:
		return "Underwater"
	case ElevationSeaLevel:
		return "Sea Level"
	case ElevationLowlands:
		return "Lowlands"
	case ElevationHills:
		return "Hills"
	case ElevationMountains:
		return "Mountains"
	case ElevationHighMountains:
		return "High Mountains"
	default:
		return "Unknown"
	}
}
