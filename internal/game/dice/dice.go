// Package dice provides the typed dice, modifiers, and roll-result types
// that drive every probabilistic outcome in the simulation core.
package dice

import (
	"errors"
	"fmt"
)

// Type identifies a fixed-side die. The value is the number of sides.
type Type int

// All supported die types.
const (
	D4   Type = 4
	D6   Type = 6
	D8   Type = 8
	D10  Type = 10
	D12  Type = 12
	D20  Type = 20
	D100 Type = 100
)

// Types lists every supported die type.
var Types = []Type{D4, D6, D8, D10, D12, D20, D100}

// Valid reports whether t is one of the supported die types.
func (t Type) Valid() bool {
	switch t {
	case D4, D6, D8, D10, D12, D20, D100:
		return true
	default:
		return false
	}
}

// Sides returns the number of faces on the die.
func (t Type) Sides() int { return int(t) }

// MaxValue returns the highest value the die can roll.
func (t Type) MaxValue() int { return int(t) }

// MinValue returns the lowest value the die can roll.
func (t Type) MinValue() int { return 1 }

// IsValidValue reports whether v is a possible result for this die.
func (t Type) IsValidValue(v int) bool {
	return v >= t.MinValue() && v <= t.MaxValue()
}

// Average returns the expected value of a single roll.
func (t Type) Average() float64 {
	return (float64(t.MinValue()) + float64(t.MaxValue())) / 2.0
}

// ProbabilityAtOrAbove returns the chance of rolling target or higher.
//
// Postcondition: return value is in [0.0, 1.0].
func (t Type) ProbabilityAtOrAbove(target int) float64 {
	if target > t.MaxValue() {
		return 0.0
	}
	if target <= t.MinValue() {
		return 1.0
	}
	favorable := t.MaxValue() - target + 1
	return float64(favorable) / float64(t.MaxValue())
}

// String returns the conventional die notation, e.g. "d20".
func (t Type) String() string {
	return fmt.Sprintf("d%d", int(t))
}

// Validation errors for modifier and roll construction.
var (
	ErrModifierRange = errors.New("dice: individual modifiers must be between -10 and +10")
	ErrModifierTotal = errors.New("dice: total modifier must be between -20 and +20")
	ErrDiceCount     = errors.New("dice: count must be between 1 and 10")
	ErrResultCount   = errors.New("dice: number of raw results must match dice count")
	ErrResultValue   = errors.New("dice: raw result outside valid range for die type")
)

// Modifier is a flat adjustment applied to a raw dice sum, broken into its
// four contributing sources. Each component is clamped at construction to
// [-10, 10] and their sum to [-20, 20].
type Modifier struct {
	Stat        int // bonus/penalty from player stats
	Equipment   int // bonus from equipment
	Situational int // bonus/penalty from circumstances
	Luck        int // bonus from luck events or abilities
}

// NewModifier creates a validated Modifier.
//
// Postcondition: every component is in [-10, 10] and the sum in [-20, 20],
// or a non-nil error is returned.
func NewModifier(stat, equipment, situational, luck int) (Modifier, error) {
	m := Modifier{Stat: stat, Equipment: equipment, Situational: situational, Luck: luck}
	if err := m.validate(); err != nil {
		return Modifier{}, err
	}
	return m, nil
}

// ZeroModifier returns a modifier with no effect.
func ZeroModifier() Modifier { return Modifier{} }

// StatModifier returns a modifier carrying only a stat component.
func StatModifier(stat int) (Modifier, error) { return NewModifier(stat, 0, 0, 0) }

// Equipment returns a modifier carrying only an equipment component.
func Equipment(bonus int) (Modifier, error) { return NewModifier(0, bonus, 0, 0) }

// Situational returns a modifier carrying only a situational component.
func Situational(mod int) (Modifier, error) { return NewModifier(0, 0, mod, 0) }

// Luck returns a modifier carrying only a luck component.
func Luck(bonus int) (Modifier, error) { return NewModifier(0, 0, 0, bonus) }

func (m Modifier) validate() error {
	for _, c := range [4]int{m.Stat, m.Equipment, m.Situational, m.Luck} {
		if c < -10 || c > 10 {
			return fmt.Errorf("%w: got %+d", ErrModifierRange, c)
		}
	}
	if t := m.Total(); t < -20 || t > 20 {
		return fmt.Errorf("%w: got %+d", ErrModifierTotal, t)
	}
	return nil
}

// Total returns the combined modifier value.
func (m Modifier) Total() int {
	return m.Stat + m.Equipment + m.Situational + m.Luck
}

// IsZero reports whether the modifier has no effect.
func (m Modifier) IsZero() bool { return m.Total() == 0 }

// Add combines two modifiers component-wise, re-validating the result.
func (m Modifier) Add(other Modifier) (Modifier, error) {
	return NewModifier(
		m.Stat+other.Stat,
		m.Equipment+other.Equipment,
		m.Situational+other.Situational,
		m.Luck+other.Luck,
	)
}

// String returns the signed total, e.g. "+3" or "-2", or "" when zero.
func (m Modifier) String() string {
	t := m.Total()
	if t == 0 {
		return ""
	}
	return fmt.Sprintf("%+d", t)
}

// Roll is a dice-roll specification: how many dice of which type, plus a
// modifier. It carries no rolled values; see RollDice for evaluation.
type Roll struct {
	Count    int
	Type     Type
	Modifier Modifier
}

// NewRoll creates a validated Roll.
//
// Precondition: count in [1, 10]; modifier must pass its own validation.
func NewRoll(count int, t Type, mod Modifier) (Roll, error) {
	if count < 1 || count > 10 {
		return Roll{}, fmt.Errorf("%w: got %d", ErrDiceCount, count)
	}
	if err := mod.validate(); err != nil {
		return Roll{}, err
	}
	return Roll{Count: count, Type: t, Modifier: mod}, nil
}

// Simple creates a Roll with no modifier.
func Simple(count int, t Type) (Roll, error) {
	return NewRoll(count, t, ZeroModifier())
}

// Single creates a one-die Roll with no modifier.
func Single(t Type) (Roll, error) {
	return Simple(1, t)
}

// MinResult returns the lowest achievable final result.
func (r Roll) MinResult() int {
	return r.Count + r.Modifier.Total()
}

// MaxResult returns the highest achievable final result.
func (r Roll) MaxResult() int {
	return r.Count*r.Type.MaxValue() + r.Modifier.Total()
}

// AverageResult returns the expected final result.
func (r Roll) AverageResult() float64 {
	return float64(r.Count)*r.Type.Average() + float64(r.Modifier.Total())
}

// ProbabilityAtLeast estimates the chance of the final result reaching
// target. Exact for a single die; a rough approximation for multiple dice.
func (r Roll) ProbabilityAtLeast(target int) float64 {
	if r.Count == 1 {
		adjusted := target - r.Modifier.Total()
		if adjusted <= 0 {
			return 1.0
		}
		return r.Type.ProbabilityAtOrAbove(adjusted)
	}
	if float64(target) <= r.AverageResult() {
		return 0.5
	}
	return 0.25
}

// CriticalEligible reports whether this roll can produce a critical result.
// Only single-die d20 and d100 rolls qualify.
func (r Roll) CriticalEligible() bool {
	return r.Count == 1 && (r.Type == D20 || r.Type == D100)
}

// CriticalSuccessValue returns the natural roll counting as a critical
// success, or (0, false) when the roll is not critical-eligible.
func (r Roll) CriticalSuccessValue() (int, bool) {
	if !r.CriticalEligible() {
		return 0, false
	}
	return r.Type.MaxValue(), true
}

// String returns the conventional roll notation, e.g. "3d6+2".
func (r Roll) String() string {
	if r.Count == 1 {
		return fmt.Sprintf("%s%s", r.Type, r.Modifier)
	}
	return fmt.Sprintf("%d%s%s", r.Count, r.Type, r.Modifier)
}
