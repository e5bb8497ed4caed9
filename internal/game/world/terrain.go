package world

import "github.com/Linzell/space-looter-sub000/internal/game/resource"

// TerrainType classifies a tile. The set is closed; every type carries
// fixed gameplay attributes recomputed on demand from position, never
// stored or mutated.
type TerrainType int

// All terrain types.
const (
	Plains TerrainType = iota
	Forest
	Mountains
	Desert
	Tundra
	Swamp
	Ocean
	Volcanic
	Anomaly
	Constructed
	Cave
	Crystal
)

// TerrainTypes lists every terrain type in a stable order.
var TerrainTypes = []TerrainType{
	Plains, Forest, Mountains, Desert, Tundra, Swamp,
	Ocean, Volcanic, Anomaly, Constructed, Cave, Crystal,
}

// MovementCost returns the movement points needed to enter the tile, 1-5.
func (t TerrainType) MovementCost() int {
	switch t {
	case Plains:
		return 1
	case Forest:
		return 2
	case Mountains:
		return 3
	case Desert:
		return 2
	case Tundra:
		return 3
	case Swamp:
		return 4
	case Ocean:
		return 5
	case Volcanic:
		return 4
	case Anomaly:
		return 3
	case Constructed:
		return 1
	case Cave:
		return 2
	case Crystal:
		return 2
	default:
		return 1
	}
}

// DangerLevel returns the hazard rating, 1-10.
func (t TerrainType) DangerLevel() int {
	switch t {
	case Plains:
		return 1
	case Forest:
		return 2
	case Mountains:
		return 4
	case Desert:
		return 3
	case Tundra:
		return 5
	case Swamp:
		return 4
	case Ocean:
		return 7
	case Volcanic:
		return 8
	case Anomaly:
		return 10
	case Constructed:
		return 1
	case Cave:
		return 6
	case Crystal:
		return 3
	default:
		return 1
	}
}

// IsPassable reports whether the terrain can be entered without special
// equipment. Only Ocean is impassable.
func (t TerrainType) IsPassable() bool {
	return t != Ocean
}

// ProvidesCover reports whether the terrain conceals occupants.
func (t TerrainType) ProvidesCover() bool {
	switch t {
	case Forest, Mountains, Cave, Swamp:
		return true
	default:
		return false
	}
}

// IsUnderground reports whether the terrain lies below the surface.
func (t TerrainType) IsUnderground() bool { return t == Cave }

// IsArtificial reports whether the terrain was built rather than formed.
func (t TerrainType) IsArtificial() bool { return t == Constructed }

// MovementModifier returns the d20 adjustment applied when stepping onto
// this terrain, -6..+3.
func (t TerrainType) MovementModifier() int {
	switch t {
	case Plains:
		return 2
	case Forest:
		return 0
	case Mountains:
		return -2
	case Desert:
		return -1
	case Tundra:
		return -3
	case Swamp:
		return -4
	case Ocean:
		return -5
	case Volcanic:
		return -4
	case Anomaly:
		return -6
	case Constructed:
		return 3
	case Cave:
		return -3
	case Crystal:
		return 1
	default:
		return 0
	}
}

// VisibilityModifier scales sight range on this terrain.
func (t TerrainType) VisibilityModifier() float64 {
	switch t {
	case Plains:
		return 1.5
	case Forest:
		return 0.5
	case Mountains:
		return 1.2
	case Desert:
		return 1.3
	case Tundra:
		return 1.1
	case Swamp:
		return 0.6
	case Ocean:
		return 1.0
	case Volcanic:
		return 0.7
	case Anomaly:
		return 0.3
	case Constructed:
		return 1.0
	case Cave:
		return 0.2
	case Crystal:
		return 0.8
	default:
		return 1.0
	}
}

// EventProbabilityModifier scales the chance of events triggering here.
func (t TerrainType) EventProbabilityModifier() float64 {
	switch t {
	case Plains:
		return 0.8
	case Forest:
		return 1.2
	case Mountains:
		return 1.0
	case Desert:
		return 0.9
	case Tundra:
		return 1.1
	case Swamp:
		return 1.4
	case Ocean:
		return 1.3
	case Volcanic:
		return 2.0
	case Anomaly:
		return 3.0
	case Constructed:
		return 0.1
	case Cave:
		return 1.5
	case Crystal:
		return 1.2
	default:
		return 1.0
	}
}

// PrimaryResources returns the resource types this terrain commonly hosts.
func (t TerrainType) PrimaryResources() []resource.Type {
	switch t {
	case Plains:
		return []resource.Type{resource.Food, resource.Organics}
	case Forest:
		return []resource.Type{resource.Food, resource.Organics, resource.Data}
	case Mountains:
		return []resource.Type{resource.Metal, resource.Alloys}
	case Desert:
		return []resource.Type{resource.Metal, resource.Technology}
	case Tundra:
		return []resource.Type{resource.Energy, resource.Data}
	case Swamp:
		return []resource.Type{resource.Organics, resource.Energy}
	case Ocean:
		return []resource.Type{resource.Energy, resource.Organics}
	case Volcanic:
		return []resource.Type{resource.ExoticMatter, resource.Alloys}
	case Anomaly:
		return []resource.Type{resource.ExoticMatter, resource.Technology}
	case Constructed:
		return nil
	case Cave:
		return []resource.Type{resource.Metal, resource.ExoticMatter, resource.Technology}
	case Crystal:
		return []resource.Type{resource.Energy, resource.Technology, resource.ExoticMatter}
	default:
		return nil
	}
}

// SecondaryResources returns the less common resource types for this
// terrain.
func (t TerrainType) SecondaryResources() []resource.Type {
	switch t {
	case Plains:
		return []resource.Type{resource.Metal}
	case Forest:
		return []resource.Type{resource.Energy}
	case Mountains:
		return []resource.Type{resource.ExoticMatter, resource.Technology}
	case Desert:
		return []resource.Type{resource.ExoticMatter}
	case Tundra:
		return []resource.Type{resource.Metal}
	case Swamp:
		return []resource.Type{resource.Data}
	case Ocean:
		return []resource.Type{resource.Technology}
	case Volcanic:
		return []resource.Type{resource.Energy}
	case Anomaly:
		return []resource.Type{resource.Data}
	case Constructed:
		return nil
	case Cave:
		return []resource.Type{resource.Energy, resource.Organics}
	case Crystal:
		return []resource.Type{resource.Data}
	default:
		return nil
	}
}

// hostsResource reports whether rt appears among the terrain's primary or
// secondary resources.
func (t TerrainType) hostsResource(rt resource.Type) (primary, hosted bool) {
	for _, r := range t.PrimaryResources() {
		if r == rt {
			return true, true
		}
	}
	for _, r := range t.SecondaryResources() {
		if r == rt {
			return false, true
		}
	}
	return false, false
}

// NodePropertiesFor derives resource-node properties for a resource on
// this terrain. The terrain rejects resources it does not host, yielding
// (zero, false) — no node is placed.
func (t TerrainType) NodePropertiesFor(rt resource.Type) (resource.NodeProperties, bool) {
	primary, hosted := t.hostsResource(rt)
	if !hosted {
		return resource.NodeProperties{}, false
	}

	richness := resource.Poor
	if primary {
		switch danger := t.DangerLevel(); {
		case danger <= 2:
			richness = resource.Average
		case danger <= 5:
			richness = resource.Rich
		default:
			richness = resource.Abundant
		}
	}

	danger, cost := t.DangerLevel(), t.MovementCost()
	var accessibility resource.Accessibility
	switch {
	case danger <= 2 && cost <= 2:
		accessibility = resource.Easy
	case danger <= 4 && cost <= 3:
		accessibility = resource.Moderate
	case danger <= 6 || cost <= 4:
		accessibility = resource.Hard
	default:
		accessibility = resource.Dangerous
	}

	regen := resource.RegenNone
	switch t {
	case Plains, Forest:
		if rt == resource.Food || rt == resource.Organics {
			regen = resource.RegenFast
		}
	case Ocean, Swamp:
		if rt == resource.Organics || rt == resource.Energy {
			regen = resource.RegenModerate
		} else {
			regen = resource.RegenSlow
		}
	case Crystal:
		if rt == resource.Energy {
			regen = resource.RegenSlow
		}
	}

	return resource.NodeProperties{
		Type:          rt,
		Richness:      richness,
		Accessibility: accessibility,
		Regen:         regen,
	}, true
}

// CompatibleWith reports whether two terrain types naturally occur side by
// side. Used by callers validating hand-authored regions.
func (t TerrainType) CompatibleWith(other TerrainType) bool {
	a, b := t, other
	switch {
	case a == Plains || b == Plains:
		return true
	case (a == Forest && b == Swamp) || (a == Swamp && b == Forest):
		return true
	case (a == Forest && b == Mountains) || (a == Mountains && b == Forest):
		return true
	case (a == Mountains && b == Desert) || (a == Desert && b == Mountains):
		return true
	case (a == Mountains && b == Tundra) || (a == Tundra && b == Mountains):
		return true
	case (a == Mountains && b == Cave) || (a == Cave && b == Mountains):
		return true
	case (a == Desert && b == Tundra) || (a == Tundra && b == Desert):
		return false
	case a == Ocean && b == Ocean:
		return true
	case (a == Ocean && b == Constructed) || (a == Constructed && b == Ocean):
		return true
	case a == Ocean || b == Ocean:
		return false
	case a == Anomaly || b == Anomaly:
		return true
	case (a == Volcanic && b == Mountains) || (a == Mountains && b == Volcanic):
		return true
	case (a == Volcanic && b == Desert) || (a == Desert && b == Volcanic):
		return true
	case a == Volcanic || b == Volcanic:
		return false
	case a == Constructed || b == Constructed:
		return true
	case a == Cave && b == Cave:
		return true
	case (a == Crystal && b == Mountains) || (a == Mountains && b == Crystal):
		return true
	case (a == Crystal && b == Cave) || (a == Cave && b == Crystal):
		return true
	case a == Crystal || b == Crystal:
		return false
	default:
		return true
	}
}

// Description returns the flavor text for the terrain.
func (t TerrainType) Description() string {
	switch t {
	case Plains:
		return "Open grasslands with gentle rolling hills and scattered vegetation"
	case Forest:
		return "Dense woodlands with towering trees and rich biodiversity"
	case Mountains:
		return "Rocky peaks and steep cliffs rich in mineral deposits"
	case Desert:
		return "Vast sandy expanses with hidden treasures beneath"
	case Tundra:
		return "Frozen wastelands with harsh conditions and unique resources"
	case Swamp:
		return "Wetlands teeming with life and mysterious energies"
	case Ocean:
		return "Deep waters requiring special equipment to traverse"
	case Volcanic:
		return "Active volcanic regions with dangerous but valuable materials"
	case Anomaly:
		return "Corrupted landscapes with reality-bending properties"
	case Constructed:
		return "Artificial terrain created for bases and settlements"
	case Cave:
		return "Underground networks hiding rare resources and secrets"
	case Crystal:
		return "Crystalline formations that resonate with energy"
	default:
		return "Unknown terrain"
	}
}

// String returns the terrain name.
func (t TerrainType) String() string {
	switch t {
	case Plains:
		return "Plains"
	case Forest:
		return "Forest"
	case Mountains:
		return "Mountains"
	case Desert:
		return "Desert"
	case Tundra:
		return "Tundra"
	case Swamp:
		return "Swamp"
	case Ocean:
		return "Ocean"
	case Volcanic:
		return "Volcanic"
	case Anomaly:
		return "Anomaly"
	case Constructed:
		return "Constructed"
	case Cave:
		return "Cave"
	case Crystal:
		return "Crystal"
	default:
		return "Unknown"
	}
}
