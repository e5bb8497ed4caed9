// Package resource defines the resource types, amounts, and collections
// used for rewards, gathering, and node generation.
package resource

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MaxUnits caps any single resource amount.
const MaxUnits = 1_000_000

// Type identifies a kind of gatherable resource.
type Type int

// All resource types.
const (
	Metal Type = iota
	Energy
	Food
	Technology
	ExoticMatter
	Alloys
	Data
	Organics
)

// All returns every resource type in a stable order.
func All() []Type {
	return []Type{Metal, Energy, Food, Technology, ExoticMatter, Alloys, Data, Organics}
}

// Basic returns the common resource types.
func Basic() []Type {
	return []Type{Metal, Energy, Food}
}

// IsBasic reports whether this is a common resource.
func (t Type) IsBasic() bool {
	return t == Metal || t == Energy || t == Food
}

// IsAdvanced reports whether this is a rare or processed resource.
func (t Type) IsAdvanced() bool { return !t.IsBasic() }

// BaseValue returns the per-unit trade value.
func (t Type) BaseValue() int {
	switch t {
	case Metal:
		return 1
	case Energy:
		return 2
	case Food:
		return 1
	case Technology:
		return 10
	case ExoticMatter:
		return 50
	case Alloys:
		return 5
	case Data:
		return 3
	case Organics:
		return 4
	default:
		return 0
	}
}

// Rarity returns the rarity level, 1-10, higher is rarer.
func (t Type) Rarity() int {
	switch t {
	case Metal:
		return 2
	case Energy:
		return 3
	case Food:
		return 1
	case Technology:
		return 6
	case ExoticMatter:
		return 9
	case Alloys:
		return 5
	case Data:
		return 4
	case Organics:
		return 3
	default:
		return 0
	}
}

// GatheringRate returns the typical yield per successful gathering roll.
func (t Type) GatheringRate() int {
	switch t {
	case Metal:
		return 5
	case Energy:
		return 3
	case Food:
		return 4
	case Technology:
		return 1
	case ExoticMatter:
		return 1
	case Alloys:
		return 2
	case Data:
		return 2
	case Organics:
		return 3
	default:
		return 0
	}
}

// String returns the display name.
func (t Type) String() string {
	switch t {
	case Metal:
		return "Metal"
	case Energy:
		return "Energy"
	case Food:
		return "Food"
	case Technology:
		return "Technology"
	case ExoticMatter:
		return "Exotic Matter"
	case Alloys:
		return "Alloys"
	case Data:
		return "Data"
	case Organics:
		return "Organics"
	default:
		return "Unknown"
	}
}

// Amount-related errors.
var (
	ErrAmountRange  = errors.New("resource: amount must be between 0 and 1000000")
	ErrTypeMismatch = errors.New("resource: operation on differing resource types")
	ErrInsufficient = errors.New("resource: insufficient resources")
)

// Amount is a quantity of a single resource type.
type Amount struct {
	Type  Type
	Units int
}

// NewAmount creates a validated Amount.
//
// Precondition: units in [0, MaxUnits].
func NewAmount(t Type, units int) (Amount, error) {
	if units < 0 || units > MaxUnits {
		return Amount{}, fmt.Errorf("%w: got %d", ErrAmountRange, units)
	}
	return Amount{Type: t, Units: units}, nil
}

// IsZero reports whether the amount is empty.
func (a Amount) IsZero() bool { return a.Units == 0 }

// Add combines two amounts of the same resource type.
func (a Amount) Add(other Amount) (Amount, error) {
	if a.Type != other.Type {
		return Amount{}, ErrTypeMismatch
	}
	units := a.Units + other.Units
	if units > MaxUnits {
		units = MaxUnits
	}
	return NewAmount(a.Type, units)
}

// Subtract removes other from a, saturating at zero.
func (a Amount) Subtract(other Amount) (Amount, error) {
	if a.Type != other.Type {
		return Amount{}, ErrTypeMismatch
	}
	units := a.Units - other.Units
	if units < 0 {
		units = 0
	}
	return NewAmount(a.Type, units)
}

// TradeValue returns the total trade value of this amount.
func (a Amount) TradeValue() int {
	return a.Units * a.Type.BaseValue()
}

// String renders the amount, e.g. "12 Metal".
func (a Amount) String() string {
	return fmt.Sprintf("%d %s", a.Units, a.Type)
}

// Collection is a bag of resource amounts keyed by type. The zero value is
// not usable; construct with NewCollection.
type Collection struct {
	amounts map[Type]int
}

// NewCollection returns an empty collection.
func NewCollection() Collection {
	return Collection{amounts: make(map[Type]int)}
}

// Get returns the held units of a resource type, zero when absent.
func (c Collection) Get(t Type) int {
	return c.amounts[t]
}

// Set stores the units for a resource type. Zero removes the entry.
func (c Collection) Set(t Type, units int) {
	if units == 0 {
		delete(c.amounts, t)
		return
	}
	c.amounts[t] = units
}

// AddAmount adds an amount into the collection.
//
// Postcondition: the new total does not exceed MaxUnits.
func (c Collection) AddAmount(a Amount) error {
	total := c.Get(a.Type) + a.Units
	if total > MaxUnits {
		return fmt.Errorf("%w: %d %s", ErrAmountRange, total, a.Type)
	}
	c.Set(a.Type, total)
	return nil
}

// RemoveAmount removes an amount from the collection.
func (c Collection) RemoveAmount(a Amount) error {
	held := c.Get(a.Type)
	if held < a.Units {
		return fmt.Errorf("%w: need %d %s, have %d", ErrInsufficient, a.Units, a.Type, held)
	}
	c.Set(a.Type, held-a.Units)
	return nil
}

// CanAfford reports whether every amount in cost is covered.
func (c Collection) CanAfford(cost Collection) bool {
	for t, units := range cost.amounts {
		if c.Get(t) < units {
			return false
		}
	}
	return true
}

// PayCost removes every amount in cost from the collection.
//
// Precondition: CanAfford(cost); otherwise no resources are removed.
func (c Collection) PayCost(cost Collection) error {
	if !c.CanAfford(cost) {
		return fmt.Errorf("%w: cannot afford cost", ErrInsufficient)
	}
	for t, units := range cost.amounts {
		c.Set(t, c.Get(t)-units)
	}
	return nil
}

// Merge adds every amount from other into the collection.
func (c Collection) Merge(other Collection) error {
	for t, units := range other.amounts {
		a, err := NewAmount(t, units)
		if err != nil {
			return err
		}
		if err := c.AddAmount(a); err != nil {
			return err
		}
	}
	return nil
}

// TotalValue returns the combined trade value of all held resources.
func (c Collection) TotalValue() int {
	total := 0
	for t, units := range c.amounts {
		total += units * t.BaseValue()
	}
	return total
}

// Types returns the resource types with positive amounts, in stable order.
func (c Collection) Types() []Type {
	types := make([]Type, 0, len(c.amounts))
	for t := range c.amounts {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// IsEmpty reports whether the collection holds nothing.
func (c Collection) IsEmpty() bool { return len(c.amounts) == 0 }

// TypeCount returns the number of distinct held resource types.
func (c Collection) TypeCount() int { return len(c.amounts) }

// Missing returns what the collection lacks compared to required.
func (c Collection) Missing(required Collection) Collection {
	missing := NewCollection()
	for t, units := range required.amounts {
		if held := c.Get(t); held < units {
			missing.Set(t, units-held)
		}
	}
	return missing
}

// Clone returns an independent copy of the collection.
func (c Collection) Clone() Collection {
	out := NewCollection()
	for t, units := range c.amounts {
		out.Set(t, units)
	}
	return out
}

// FromPairs builds a collection from (type, units) pairs.
func FromPairs(pairs ...Amount) Collection {
	c := NewCollection()
	for _, p := range pairs {
		c.Set(p.Type, c.Get(p.Type)+p.Units)
	}
	return c
}

// String renders the collection, e.g. "10 Metal, 5 Energy".
func (c Collection) String() string {
	if c.IsEmpty() {
		return "No resources"
	}
	parts := make([]string, 0, len(c.amounts))
	for _, t := range c.Types() {
		parts = append(parts, fmt.Sprintf("%d %s", c.Get(t), t))
	}
	return strings.Join(parts, ", ")
}
