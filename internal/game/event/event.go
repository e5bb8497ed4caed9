// Package event models the random encounters triggered during
// exploration: their types, outcome records, and the category templates
// events are minted from.
package event

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Linzell/space-looter-sub000/internal/game/resource"
	"github.com/Linzell/space-looter-sub000/internal/game/world"
)

// Validation and lifecycle errors.
var (
	ErrTitleLength       = errors.New("event title must be between 1 and 100 characters")
	ErrDescriptionLength = errors.New("event description must be between 1 and 500 characters")
	ErrAlreadyResolved   = errors.New("event is already resolved")
)

// Type classifies what kind of encounter an event is.
type Type int

const (
	ResourceDiscovery Type = iota
	Combat
	Trade
	Hazard
	Mystery
	Malfunction
	Boon
	Narrative
	BaseEvent
)

// Types lists every event type in a stable order.
var Types = []Type{
	ResourceDiscovery, Combat, Trade, Hazard, Mystery,
	Malfunction, Boon, Narrative, BaseEvent,
}

// BaseProbability returns the intrinsic chance of this event type firing,
// before terrain modifiers.
func (t Type) BaseProbability() float64 {
	switch t {
	case ResourceDiscovery:
		return 0.25
	case Combat:
		return 0.15
	case Trade:
		return 0.10
	case Hazard:
		return 0.20
	case Mystery:
		return 0.05
	case Malfunction:
		return 0.10
	case Boon:
		return 0.08
	case Narrative:
		return 0.05
	default:
		return 0.02
	}
}

// IsDangerous reports whether the event type can cost the player
// resources.
func (t Type) IsDangerous() bool {
	switch t {
	case Combat, Hazard, Malfunction:
		return true
	default:
		return false
	}
}

// IsBeneficial reports whether the event type primarily grants resources.
func (t Type) IsBeneficial() bool {
	switch t {
	case ResourceDiscovery, Trade, Boon:
		return true
	default:
		return false
	}
}

// String returns the display name.
func (t Type) String() string {
	switch t {
	case ResourceDiscovery:
		return "Resource Discovery"
	case Combat:
		return "Combat"
	case Trade:
		return "Trade"
	case Hazard:
		return "Hazard"
	case Mystery:
		return "Mystery"
	case Malfunction:
		return "Malfunction"
	case Boon:
		return "Boon"
	case Narrative:
		return "Narrative"
	case BaseEvent:
		return "Base Event"
	default:
		return "Unknown"
	}
}

// OutcomeType classifies how an event resolved.
type OutcomeType int

const (
	OutcomeSuccess OutcomeType = iota
	OutcomeFailure
	OutcomeNeutral
	OutcomeMixed
)

// String returns the display name.
func (o OutcomeType) String() string {
	switch o {
	case OutcomeSuccess:
		return "Success"
	case OutcomeFailure:
		return "Failure"
	case OutcomeNeutral:
		return "Neutral"
	case OutcomeMixed:
		return "Mixed"
	default:
		return "Unknown"
	}
}

// Outcome records what an event resolution produced.
type Outcome struct {
	Type             OutcomeType
	ResourcesGained  resource.Collection
	ResourcesLost    resource.Collection
	ExperienceGained int
	Description      string
}

// SuccessOutcome builds a gain-only outcome.
func SuccessOutcome(gained resource.Collection, exp int, description string) Outcome {
	return Outcome{
		Type:             OutcomeSuccess,
		ResourcesGained:  gained,
		ExperienceGained: exp,
		Description:      description,
	}
}

// FailureOutcome builds a loss-only outcome.
func FailureOutcome(lost resource.Collection, description string) Outcome {
	return Outcome{
		Type:          OutcomeFailure,
		ResourcesLost: lost,
		Description:   description,
	}
}

// NeutralOutcome builds an outcome with no material effect.
func NeutralOutcome(description string) Outcome {
	return Outcome{Type: OutcomeNeutral, Description: description}
}

// Event is one triggered encounter. Events are minted from templates and
// resolved exactly once.
type Event struct {
	ID          uuid.UUID
	Type        Type
	Title       string
	Description string
	Location    *world.Position
	TriggeredAt time.Time
	outcomes    []Outcome
	resolved    bool
}

// New creates an event after validating its text.
//
// Precondition: title 1-100 chars, description 1-500 chars
// Postcondition: unresolved event with a fresh ID, or a validation error
func New(eventType Type, title, description string, location *world.Position) (*Event, error) {
	if len(title) == 0 || len(title) > 100 {
		return nil, ErrTitleLength
	}
	if len(description) == 0 || len(description) > 500 {
		return nil, ErrDescriptionLength
	}
	return &Event{
		ID:          uuid.New(),
		Type:        eventType,
		Title:       title,
		Description: description,
		Location:    location,
		TriggeredAt: time.Now(),
	}, nil
}

// IsResolved reports whether the event has been resolved.
func (e *Event) IsResolved() bool { return e.resolved }

// Outcomes returns the recorded outcomes.
func (e *Event) Outcomes() []Outcome { return e.outcomes }

// Resolve records the outcome and closes the event.
func (e *Event) Resolve(outcome Outcome) error {
	if e.resolved {
		return ErrAlreadyResolved
	}
	e.outcomes = append(e.outcomes, outcome)
	e.resolved = true
	return nil
}

// String describes the event for logs.
func (e *Event) String() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Title)
}
