package resource

import "fmt"

// Richness grades how much a node yields per gathering attempt.
type Richness int

// Node richness grades.
const (
	Poor Richness = iota
	Average
	Rich
	Abundant
)

// YieldMultiplier returns the gathering yield scaling for this richness.
func (r Richness) YieldMultiplier() float64 {
	switch r {
	case Poor:
		return 0.5
	case Average:
		return 1.0
	case Rich:
		return 2.0
	case Abundant:
		return 3.0
	default:
		return 1.0
	}
}

// String returns the display name.
func (r Richness) String() string {
	switch r {
	case Poor:
		return "Poor"
	case Average:
		return "Average"
	case Rich:
		return "Rich"
	case Abundant:
		return "Abundant"
	default:
		return "Unknown"
	}
}

// Accessibility grades how hard a node is to gather from.
type Accessibility int

// Node accessibility grades.
const (
	Easy Accessibility = iota
	Moderate
	Hard
	Dangerous
)

// BaseDifficulty returns the base gathering difficulty threshold.
func (a Accessibility) BaseDifficulty() int {
	switch a {
	case Easy:
		return 8
	case Moderate:
		return 12
	case Hard:
		return 15
	case Dangerous:
		return 18
	default:
		return 12
	}
}

// String returns the display name.
func (a Accessibility) String() string {
	switch a {
	case Easy:
		return "Easy"
	case Moderate:
		return "Moderate"
	case Hard:
		return "Hard"
	case Dangerous:
		return "Dangerous"
	default:
		return "Unknown"
	}
}

// RegenRate grades how fast a depleted node recovers.
type RegenRate int

// Node regeneration rates.
const (
	RegenNone RegenRate = iota
	RegenSlow
	RegenModerate
	RegenFast
)

// IntervalMinutes returns the minutes between regeneration ticks, or
// (0, false) when the node never regenerates.
func (r RegenRate) IntervalMinutes() (int, bool) {
	switch r {
	case RegenSlow:
		return 60, true
	case RegenModerate:
		return 30, true
	case RegenFast:
		return 15, true
	default:
		return 0, false
	}
}

// Percentage returns the fraction of capacity restored per tick.
func (r RegenRate) Percentage() float64 {
	switch r {
	case RegenSlow:
		return 0.05
	case RegenModerate:
		return 0.10
	case RegenFast:
		return 0.20
	default:
		return 0.0
	}
}

// String returns the display name.
func (r RegenRate) String() string {
	switch r {
	case RegenNone:
		return "No Regeneration"
	case RegenSlow:
		return "Slow Regeneration"
	case RegenModerate:
		return "Moderate Regeneration"
	case RegenFast:
		return "Fast Regeneration"
	default:
		return "Unknown"
	}
}

// NodeProperties describes a placed resource deposit: what it holds, how
// rich it is, how hard it is to reach, and how it recovers.
type NodeProperties struct {
	Type          Type
	Richness      Richness
	Accessibility Accessibility
	Regen         RegenRate
}

// GatheringDifficulty returns the check threshold for harvesting this node.
// Rarer resources are harder to extract.
func (p NodeProperties) GatheringDifficulty() int {
	return p.Accessibility.BaseDifficulty() + p.Type.Rarity()/2
}

// PotentialYield returns the expected units per successful gathering roll.
func (p NodeProperties) PotentialYield() int {
	return int(float64(p.Type.GatheringRate()) * p.Richness.YieldMultiplier())
}

// String renders the node summary, e.g. "Rich Metal (Moderate)".
func (p NodeProperties) String() string {
	return fmt.Sprintf("%s %s (%s)", p.Richness, p.Type, p.Accessibility)
}
