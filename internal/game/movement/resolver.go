// Package movement resolves player steps across the tile map: validating
// the step, rolling for its outcome, and minting any triggered event.
package movement

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Linzell/space-looter-sub000/internal/game/character"
	"github.com/Linzell/space-looter-sub000/internal/game/dice"
	"github.com/Linzell/space-looter-sub000/internal/game/event"
	"github.com/Linzell/space-looter-sub000/internal/game/world"
)

// Movement validation errors.
var (
	ErrNotAdjacent          = errors.New("destination is not adjacent")
	ErrNotPassable          = errors.New("destination terrain is not passable")
	ErrInsufficientMovement = errors.New("not enough movement points")
)

// Map is the tile surface the resolver moves players across. Implemented
// by world.TileMap; declared locally so tests can substitute fixed
// terrain.
type Map interface {
	TerrainAt(pos world.Position) world.TerrainType
	IsPassable(pos world.Position) bool
	MovementCost(pos world.Position) int
	DangerLevel(pos world.Position) int
}

// Source supplies entropy for the movement roll and template pick.
type Source interface {
	Intn(n int) int
}

// movementRoll is the die every step is resolved with.
var movementRoll = dice.Roll{Count: 1, Type: dice.D20, Modifier: dice.ZeroModifier()}

// DiceResult breaks down the movement roll.
type DiceResult struct {
	Roll            dice.Roll
	BaseRoll        int
	LevelModifier   int
	TerrainModifier int
	DangerModifier  int
	TotalModifier   int
	FinalResult     int
}

// String renders the roll for logs, e.g. "14+3=17".
func (d DiceResult) String() string {
	return fmt.Sprintf("%d%+d=%d", d.BaseRoll, d.TotalModifier, d.FinalResult)
}

// Category returns the outcome band the final result lands in.
func (d DiceResult) Category() event.Category {
	return event.CategoryForRoll(d.FinalResult)
}

// Result is a resolved movement step. Event is nil when the step passed
// without incident.
type Result struct {
	From     world.Position
	To       world.Position
	Cost     int
	Dice     DiceResult
	Category event.Category
	Event    *event.Event
}

// Resolver validates and resolves movement attempts.
type Resolver struct {
	tiles     Map
	templates event.TemplateSet
	src       Source
	logger    *zap.Logger
}

// NewResolver builds a resolver over tiles. A nil template set falls back
// to the built-in templates; a nil logger is replaced with a no-op.
func NewResolver(tiles Map, templates event.TemplateSet, src Source, logger *zap.Logger) *Resolver {
	if templates == nil {
		templates = event.DefaultTemplates()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{tiles: tiles, templates: templates, src: src, logger: logger}
}

// AttemptMovement resolves one step for the player. The step must be to
// an adjacent, passable tile the player can afford to enter. The resolver
// does not mutate the player; callers apply the returned cost and event.
//
// Precondition: destination adjacent to player.Position
// Postcondition: Result.Cost is the movement points to deduct; Result.Event
// is nil for uneventful steps
func (r *Resolver) AttemptMovement(player character.Player, to world.Position) (*Result, error) {
	if !player.Position.IsAdjacent(to) {
		return nil, fmt.Errorf("%w: %s to %s", ErrNotAdjacent, player.Position, to)
	}
	if !r.tiles.IsPassable(to) {
		return nil, fmt.Errorf("%w: %s at %s", ErrNotPassable, r.tiles.TerrainAt(to), to)
	}
	cost := r.tiles.MovementCost(to)
	if cost > player.MovementPoints {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrInsufficientMovement, cost, player.MovementPoints)
	}

	diceResult := r.rollMovement(player.Level, to)
	category := diceResult.Category()

	result := &Result{
		From:     player.Position,
		To:       to,
		Cost:     cost,
		Dice:     diceResult,
		Category: category,
	}

	ev, err := r.generateEvent(category, diceResult.FinalResult, to)
	if err != nil {
		return nil, err
	}
	result.Event = ev

	r.logger.Debug("movement resolved",
		zap.String("from", result.From.String()),
		zap.String("to", result.To.String()),
		zap.Int("cost", cost),
		zap.String("dice", diceResult.String()),
		zap.String("category", category.String()),
		zap.Bool("event", ev != nil),
	)
	return result, nil
}

// rollMovement draws the d20 and applies level, terrain and danger
// modifiers. The final result is floored at 1 so a lucky character on bad
// terrain still lands in the critical failure band rather than below it.
func (r *Resolver) rollMovement(level int, to world.Position) DiceResult {
	base := r.src.Intn(movementRoll.Type.Sides()) + 1

	levelMod := level / 5
	if levelMod > 5 {
		levelMod = 5
	}
	terrainMod := r.tiles.TerrainAt(to).MovementModifier()
	dangerMod := -(r.tiles.DangerLevel(to) / 2)

	total := levelMod + terrainMod + dangerMod
	final := base + total
	if final < 1 {
		final = 1
	}
	return DiceResult{
		Roll:            movementRoll,
		BaseRoll:        base,
		LevelModifier:   levelMod,
		TerrainModifier: terrainMod,
		DangerModifier:  dangerMod,
		TotalModifier:   total,
		FinalResult:     final,
	}
}

// generateEvent mints an event for the category, or nil for calm neutral
// results. Neutral rolls of 10 or better pass without incident; 8 and 9
// may still trigger a neutral flavor event.
func (r *Resolver) generateEvent(category event.Category, final int, at world.Position) (*event.Event, error) {
	if category == event.Neutral && final >= 10 {
		return nil, nil
	}
	tpl, err := r.templates.Pick(category, r.src.Intn)
	if err != nil {
		return nil, err
	}
	ev, err := event.New(tpl.Type, tpl.Title, tpl.Description, &at)
	if err != nil {
		return nil, fmt.Errorf("minting event from template %q: %w", tpl.Title, err)
	}
	return ev, nil
}
