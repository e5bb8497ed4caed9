// Package reward turns resolved events into resource and experience
// payouts, scaled by roll quality, character level and stats.
package reward

// Tier grades an event roll for payout purposes. The bands mirror the
// movement event categories so a roll lands in the same place on both
// scales.
type Tier int

const (
	CriticalFailure Tier = iota
	Failure
	Neutral
	Success
	GreatSuccess
	CriticalSuccess
)

// Tiers lists every tier in ascending order.
var Tiers = []Tier{CriticalFailure, Failure, Neutral, Success, GreatSuccess, CriticalSuccess}

// TierForRoll maps a modified d20 result to its payout tier. Results
// above 20 remain critical successes; zero and below collapse to
// critical failure.
func TierForRoll(roll int) Tier {
	switch {
	case roll <= 3:
		return CriticalFailure
	case roll <= 7:
		return Failure
	case roll <= 12:
		return Neutral
	case roll <= 16:
		return Success
	case roll <= 19:
		return GreatSuccess
	default:
		return CriticalSuccess
	}
}

// multipliers scales payouts by resource rarity bucket.
type multipliers struct {
	common float64
	rare   float64
	exotic float64
}

func (t Tier) multipliers() multipliers {
	switch t {
	case CriticalFailure:
		return multipliers{0.0, 0.0, 0.0}
	case Failure:
		return multipliers{0.5, 0.1, 0.0}
	case Neutral:
		return multipliers{1.0, 0.3, 0.0}
	case Success:
		return multipliers{1.0, 0.5, 0.1}
	case GreatSuccess:
		return multipliers{1.5, 1.0, 0.3}
	default:
		return multipliers{2.5, 2.0, 1.0}
	}
}

// varianceRange returns the symmetric payout jitter for the tier. Higher
// tiers swing wider.
func (t Tier) varianceRange() float64 {
	switch t {
	case CriticalFailure:
		return 0.1
	case Failure:
		return 0.15
	case Neutral:
		return 0.2
	case Success:
		return 0.25
	case GreatSuccess:
		return 0.35
	default:
		return 0.5
	}
}

// experienceMultiplier scales the event's base experience.
func (t Tier) experienceMultiplier() float64 {
	switch t {
	case CriticalFailure:
		return 0.5
	case Failure:
		return 0.75
	case Neutral:
		return 1.0
	case Success:
		return 1.25
	case GreatSuccess:
		return 1.75
	default:
		return 2.5
	}
}

// description returns the payout headline for the tier.
func (t Tier) description() string {
	switch t {
	case CriticalFailure:
		return "Critical failure!"
	case Failure:
		return "Minor setback."
	case Neutral:
		return "Neutral outcome."
	case Success:
		return "Success!"
	case GreatSuccess:
		return "Great success!"
	default:
		return "Incredible success!"
	}
}

// String returns the display name.
func (t Tier) String() string {
	switch t {
	case CriticalFailure:
		return "Critical Failure"
	case Failure:
		return "Failure"
	case Neutral:
		return "Neutral"
	case Success:
		return "Success"
	case GreatSuccess:
		return "Great Success"
	default:
		return "Critical Success"
	}
}
