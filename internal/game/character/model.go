// Package character provides the player stat model and the read-only
// player snapshot consumed by the resolvers.
package character

import (
	"errors"
	"fmt"

	"github.com/Linzell/space-looter-sub000/internal/game/world"
)

// Stat bounds for RPG-style attributes.
const (
	MinStat = 1
	MaxStat = 20
)

// ErrStatRange indicates a stat outside the valid [MinStat, MaxStat] range.
var ErrStatRange = errors.New("character: stats must be between 1 and 20")

// StatType identifies one of the six player attributes.
type StatType int

// Player attributes.
const (
	Strength StatType = iota
	Dexterity
	Intelligence
	Charisma
	Luck
	Endurance
)

// String returns the attribute name.
func (s StatType) String() string {
	switch s {
	case Strength:
		return "Strength"
	case Dexterity:
		return "Dexterity"
	case Intelligence:
		return "Intelligence"
	case Charisma:
		return "Charisma"
	case Luck:
		return "Luck"
	case Endurance:
		return "Endurance"
	default:
		return "Unknown"
	}
}

// Stats holds the six player attributes that feed dice modifiers.
type Stats struct {
	Strength     int
	Dexterity    int
	Intelligence int
	Charisma     int
	Luck         int
	Endurance    int
}

// NewStats creates validated Stats.
//
// Precondition: every attribute in [MinStat, MaxStat].
func NewStats(strength, dexterity, intelligence, charisma, luck, endurance int) (Stats, error) {
	s := Stats{
		Strength:     strength,
		Dexterity:    dexterity,
		Intelligence: intelligence,
		Charisma:     charisma,
		Luck:         luck,
		Endurance:    endurance,
	}
	for _, v := range [6]int{strength, dexterity, intelligence, charisma, luck, endurance} {
		if v < MinStat || v > MaxStat {
			return Stats{}, fmt.Errorf("%w: got %d", ErrStatRange, v)
		}
	}
	return s, nil
}

// StartingStats returns the default all-10 attribute block.
func StartingStats() Stats {
	return Stats{
		Strength:     10,
		Dexterity:    10,
		Intelligence: 10,
		Charisma:     10,
		Luck:         10,
		Endurance:    10,
	}
}

// Value returns the raw attribute value for a stat type.
func (s Stats) Value(t StatType) int {
	switch t {
	case Strength:
		return s.Strength
	case Dexterity:
		return s.Dexterity
	case Intelligence:
		return s.Intelligence
	case Charisma:
		return s.Charisma
	case Luck:
		return s.Luck
	case Endurance:
		return s.Endurance
	default:
		return 0
	}
}

// ModifierFor converts an attribute to its dice modifier: (value-10)/2,
// truncated toward zero, giving -4..+5 over the valid stat range.
func (s Stats) ModifierFor(t StatType) int {
	return (s.Value(t) - 10) / 2
}

// IncreaseStat returns a copy of the stats with one attribute raised by a
// point.
//
// Precondition: the attribute is below MaxStat.
func (s Stats) IncreaseStat(t StatType) (Stats, error) {
	if s.Value(t) >= MaxStat {
		return Stats{}, fmt.Errorf("%w: %s already at %d", ErrStatRange, t, MaxStat)
	}
	out := s
	switch t {
	case Strength:
		out.Strength++
	case Dexterity:
		out.Dexterity++
	case Intelligence:
		out.Intelligence++
	case Charisma:
		out.Charisma++
	case Luck:
		out.Luck++
	case Endurance:
		out.Endurance++
	}
	return out, nil
}

// Player is the read-only snapshot of player state that the movement
// resolver consumes. The surrounding application owns the mutable record;
// this core never writes to it.
type Player struct {
	Position       world.Position
	MovementPoints int
	Level          int
	Stats          Stats
}
