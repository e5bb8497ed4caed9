package event

import (
	"errors"
	"fmt"
)

// ErrNoTemplates indicates a category with no templates to draw from.
var ErrNoTemplates = errors.New("no event templates for category")

// Category buckets a movement roll into an event severity band.
type Category int

const (
	CriticalFailure Category = iota
	Failure
	Neutral
	Success
	GreatSuccess
	CriticalSuccess
)

// Categories lists every category in ascending severity order.
var Categories = []Category{
	CriticalFailure, Failure, Neutral, Success, GreatSuccess, CriticalSuccess,
}

// CategoryForRoll maps a modified d20 result to its category. Results
// above 20 stay critical successes; zero and below collapse to critical
// failure.
func CategoryForRoll(result int) Category {
	switch {
	case result <= 3:
		return CriticalFailure
	case result <= 7:
		return Failure
	case result <= 12:
		return Neutral
	case result <= 16:
		return Success
	case result <= 19:
		return GreatSuccess
	default:
		return CriticalSuccess
	}
}

// String returns the display name.
func (c Category) String() string {
	switch c {
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
	case CriticalSuccess:
		return "Critical Success"
	default:
		return "Unknown"
	}
}

// Template is a blueprint an Event is minted from.
type Template struct {
	Type        Type
	Title       string
	Description string
}

// TemplateSet holds the templates available per category.
type TemplateSet map[Category][]Template

// Pick selects a template for the category using intn as entropy, where
// intn behaves like rand.Intn.
func (s TemplateSet) Pick(category Category, intn func(n int) int) (Template, error) {
	templates, ok := s[category]
	if !ok || len(templates) == 0 {
		return Template{}, fmt.Errorf("%w: %s", ErrNoTemplates, category)
	}
	return templates[intn(len(templates))], nil
}

// Validate checks every template would produce a valid event.
func (s TemplateSet) Validate() error {
	var violations []error
	for category, templates := range s {
		for i, tpl := range templates {
			if len(tpl.Title) == 0 || len(tpl.Title) > 100 {
				violations = append(violations, fmt.Errorf("%s template %d: %w", category, i, ErrTitleLength))
			}
			if len(tpl.Description) == 0 || len(tpl.Description) > 500 {
				violations = append(violations, fmt.Errorf("%s template %d: %w", category, i, ErrDescriptionLength))
			}
		}
	}
	return errors.Join(violations...)
}

// DefaultTemplates returns the built-in encounter templates.
func DefaultTemplates() TemplateSet {
	return TemplateSet{
		CriticalFailure: {
			{Type: Hazard, Title: "Equipment Malfunction", Description: "Your equipment suffers a critical failure!"},
			{Type: Combat, Title: "Ambush!", Description: "Hostile entities emerge from the shadows!"},
			{Type: Hazard, Title: "Environmental Hazard", Description: "The ground gives way beneath your feet!"},
		},
		Failure: {
			{Type: Hazard, Title: "Minor Setback", Description: "You encounter a minor obstacle that slows your progress."},
			{Type: Malfunction, Title: "Equipment Strain", Description: "Your equipment shows signs of wear and tear."},
			{Type: Combat, Title: "Hostile Encounter", Description: "You spot dangerous creatures in the area."},
		},
		Neutral: {
			{Type: Narrative, Title: "Quiet Exploration", Description: "You move through the area without incident."},
			{Type: Mystery, Title: "Strange Phenomenon", Description: "You notice something unusual but can't quite identify what."},
		},
		Success: {
			{Type: ResourceDiscovery, Title: "Resource Cache", Description: "You discover a small cache of useful resources."},
			{Type: Trade, Title: "Friendly Encounter", Description: "You encounter a friendly trader willing to deal."},
			{Type: Boon, Title: "Favorable Conditions", Description: "The environment provides unexpected advantages."},
		},
		GreatSuccess: {
			{Type: ResourceDiscovery, Title: "Rich Deposit", Description: "You discover a rich vein of valuable resources!"},
			{Type: Boon, Title: "Ancient Technology", Description: "You find remnants of advanced technology!"},
			{Type: Mystery, Title: "Hidden Knowledge", Description: "You uncover secrets that expand your understanding."},
		},
		CriticalSuccess: {
			{Type: ResourceDiscovery, Title: "Jackpot Discovery", Description: "You strike it rich with an incredible resource find!"},
			{Type: Boon, Title: "Legendary Artifact", Description: "You discover a powerful artifact of ancient origin!"},
			{Type: Trade, Title: "Exclusive Opportunity", Description: "A rare trading opportunity presents itself!"},
		},
	}
}
