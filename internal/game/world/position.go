// Package world provides the deterministic procedural world model: terrain,
// biomes, elevation, resource nodes, and the seeded generator that produces
// them all from integer coordinates.
package world

import "fmt"

// Position is an integer 3D world coordinate. It doubles as the tile
// coordinate: tiles occupy unit cells.
type Position struct {
	X, Y, Z int
}

// Origin returns the world origin.
func Origin() Position { return Position{} }

// ManhattanDistance2D returns |dx| + |dy|, ignoring the Z axis.
func (p Position) ManhattanDistance2D(other Position) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// ManhattanDistance returns |dx| + |dy| + |dz|.
func (p Position) ManhattanDistance(other Position) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y) + abs(p.Z-other.Z)
}

// IsAdjacent reports whether other is exactly one orthogonal step away.
func (p Position) IsAdjacent(other Position) bool {
	return p.ManhattanDistance(other) == 1
}

// Offset returns the position shifted by the given deltas.
func (p Position) Offset(dx, dy, dz int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}

// WithinDistance enumerates every position whose 2D Manhattan distance from
// p is at most d, on p's Z plane.
//
// Precondition: d >= 0.
func (p Position) WithinDistance(d int) []Position {
	if d < 0 {
		return nil
	}
	out := make([]Position, 0, (2*d+1)*(2*d+1))
	for dx := -d; dx <= d; dx++ {
		for dy := -d; dy <= d; dy++ {
			if abs(dx)+abs(dy) <= d {
				out = append(out, p.Offset(dx, dy, 0))
			}
		}
	}
	return out
}

// String renders the coordinate as "(x, y, z)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// floorDiv divides with floor semantics, so negative coordinates map into
// the correct cell: floorDiv(-1, 16) == -1, not 0.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
