package world

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Linzell/space-looter-sub000/internal/game/resource"
)

// Harvest errors.
var (
	ErrNodeDepleted   = fmt.Errorf("resource node is depleted")
	ErrHarvestAmount  = fmt.Errorf("harvest amount must be positive")
	ErrNodeOverfilled = fmt.Errorf("node amount cannot exceed capacity")
)

// ResourceNode is a harvestable deposit anchored to a tile. Amount counts
// units currently available; capacity is the regeneration ceiling.
type ResourceNode struct {
	ID         uuid.UUID
	Position   Position
	Properties resource.NodeProperties
	Capacity   int
	Amount     int
}

// NewResourceNode creates a full node at pos.
func NewResourceNode(pos Position, props resource.NodeProperties, capacity int) *ResourceNode {
	if capacity < 1 {
		capacity = 1
	}
	return &ResourceNode{
		ID:         uuid.New(),
		Position:   pos,
		Properties: props,
		Capacity:   capacity,
		Amount:     capacity,
	}
}

// IsDepleted reports whether nothing remains to harvest.
func (n *ResourceNode) IsDepleted() bool { return n.Amount <= 0 }

// Harvest removes up to amount units and returns what was actually taken.
//
// Precondition: amount > 0
// Postcondition: returned units <= amount; node amount reduced by the same
func (n *ResourceNode) Harvest(amount int) (resource.Amount, error) {
	if amount <= 0 {
		return resource.Amount{}, ErrHarvestAmount
	}
	if n.IsDepleted() {
		return resource.Amount{}, ErrNodeDepleted
	}
	taken := amount
	if taken > n.Amount {
		taken = n.Amount
	}
	n.Amount -= taken
	return resource.NewAmount(n.Properties.Type, taken)
}

// Regenerate applies one regeneration tick per the node's regen rate. It
// returns the number of units restored.
func (n *ResourceNode) Regenerate() int {
	pct := n.Properties.Regen.Percentage()
	if pct == 0 || n.Amount >= n.Capacity {
		return 0
	}
	restored := int(float64(n.Capacity) * pct)
	if restored < 1 {
		restored = 1
	}
	if n.Amount+restored > n.Capacity {
		restored = n.Capacity - n.Amount
	}
	n.Amount += restored
	return restored
}

// String describes the node for logs.
func (n *ResourceNode) String() string {
	return fmt.Sprintf("%s node at %s (%d/%d)", n.Properties.Type, n.Position, n.Amount, n.Capacity)
}
