package reward

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Linzell/space-looter-sub000/internal/game/character"
	"github.com/Linzell/space-looter-sub000/internal/game/event"
	"github.com/Linzell/space-looter-sub000/internal/game/resource"
)

// ErrNoRewardTable indicates an event type without a payout table.
var ErrNoRewardTable = fmt.Errorf("no reward table for event type")

// Source supplies entropy for payout variance. Satisfied by dice.Source.
type Source interface {
	Float64() float64
}

// Result is a computed payout or penalty.
type Result struct {
	Resources  resource.Collection
	Experience int
	Tier       Tier
	Outcome    event.Outcome
}

// levelScaling grows payouts with character level, capped.
type levelScaling struct {
	base      float64
	increment float64
	max       float64
}

func (s levelScaling) multiplier(level int) float64 {
	if level < 1 {
		level = 1
	}
	m := s.base + float64(level-1)*s.increment
	if m > s.max {
		m = s.max
	}
	return m
}

// Service computes event payouts. Safe for concurrent use; the tables are
// fixed at construction.
type Service struct {
	tables  map[event.Type]map[resource.Type]int
	scaling levelScaling
	src     Source
	logger  *zap.Logger
}

// NewService builds a payout service. A nil logger is replaced with a
// no-op.
func NewService(src Source, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		tables:  baseRewardTables(),
		scaling: levelScaling{base: 1.0, increment: 0.1, max: 5.0},
		src:     src,
		logger:  logger,
	}
}

// baseRewardTables returns the per-event base payout amounts. Dangerous
// event types pay no resources; they exist in the map so lookups succeed.
func baseRewardTables() map[event.Type]map[resource.Type]int {
	return map[event.Type]map[resource.Type]int{
		event.ResourceDiscovery: {
			resource.Metal:      8,
			resource.Energy:     5,
			resource.Technology: 2,
		},
		event.Trade: {
			resource.Metal:  4,
			resource.Energy: 6,
			resource.Food:   5,
			resource.Data:   3,
		},
		event.Boon: {
			resource.Technology:   4,
			resource.ExoticMatter: 1,
			resource.Data:         5,
		},
		event.Mystery: {
			resource.Data:         8,
			resource.Technology:   3,
			resource.ExoticMatter: 1,
		},
		event.Combat: {
			resource.Metal:    3,
			resource.Organics: 4,
			resource.Alloys:   2,
		},
		event.Narrative: {
			resource.Data:   3,
			resource.Energy: 2,
		},
		event.Hazard:      {},
		event.Malfunction: {},
		event.BaseEvent:   {},
	}
}

// forType picks the multiplier for a resource's rarity bucket.
func (m multipliers) forType(t resource.Type) float64 {
	switch t {
	case resource.Technology, resource.Alloys, resource.Data:
		return m.rare
	case resource.ExoticMatter:
		return m.exotic
	default:
		return m.common
	}
}

// statPair returns the stats that boost payouts for an event type.
func statPair(t event.Type) (primary, secondary character.StatType) {
	switch t {
	case event.ResourceDiscovery:
		return character.Intelligence, character.Luck
	case event.Combat:
		return character.Strength, character.Dexterity
	case event.Trade:
		return character.Charisma, character.Intelligence
	case event.Boon:
		return character.Luck, character.Charisma
	case event.Mystery:
		return character.Intelligence, character.Luck
	case event.Narrative:
		return character.Charisma, character.Intelligence
	default:
		return character.Luck, character.Endurance
	}
}

// CalculateEventRewards computes the payout for a resolved event. The
// pipeline applies tier multipliers, level scaling, stat modifiers and
// random variance in that order; each stage floors nonzero payouts at one
// unit so a terrible roll still pays a token amount per table entry.
//
// Precondition: roll is the modified d20 result, 0 or above
// Postcondition: Result.Outcome carries a gain-only outcome
func (s *Service) CalculateEventRewards(eventType event.Type, roll, level int, stats character.Stats) (*Result, error) {
	tier := TierForRoll(roll)

	table, ok := s.tables[eventType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoRewardTable, eventType)
	}

	resources := s.baseResources(table, tier)
	s.applyLevelScaling(resources, level)
	s.applyStatModifiers(resources, eventType, stats)
	s.applyVariance(resources, tier)

	exp := s.experienceReward(eventType, tier, roll, level)
	description := s.outcomeDescription(eventType, tier, resources, exp)

	outcomeType := event.OutcomeSuccess
	switch tier {
	case CriticalFailure, Failure:
		outcomeType = event.OutcomeFailure
	case Neutral:
		outcomeType = event.OutcomeNeutral
	}

	s.logger.Debug("event rewards calculated",
		zap.String("event_type", eventType.String()),
		zap.String("tier", tier.String()),
		zap.Int("roll", roll),
		zap.Int("experience", exp),
		zap.String("resources", resources.String()),
	)

	return &Result{
		Resources:  resources,
		Experience: exp,
		Tier:       tier,
		Outcome: event.Outcome{
			Type:             outcomeType,
			ResourcesGained:  resources,
			ExperienceGained: exp,
			Description:      description,
		},
	}, nil
}

// CalculateEventPenalties computes resource losses for a bad roll on a
// dangerous event. Safe events and decent rolls cost nothing and pay a
// single survival experience point.
func (s *Service) CalculateEventPenalties(eventType event.Type, roll int, held resource.Collection) (*Result, error) {
	tier := TierForRoll(roll)

	if !eventType.IsDangerous() || (tier != CriticalFailure && tier != Failure) {
		return &Result{
			Resources:  resource.NewCollection(),
			Experience: 1,
			Tier:       tier,
			Outcome:    event.NeutralOutcome("No significant impact"),
		}, nil
	}

	lossPct := 0.05
	if tier == CriticalFailure {
		lossPct = 0.15
	}

	lost := resource.NewCollection()
	for _, rt := range resource.All() {
		loss := int(float64(held.Get(rt)) * lossPct)
		if loss > 0 {
			lost.Set(rt, loss)
		}
	}

	description := fmt.Sprintf("%s %s Lost %d%% of resources.",
		eventType, tier.description(), int(lossPct*100))

	s.logger.Debug("event penalties calculated",
		zap.String("event_type", eventType.String()),
		zap.String("tier", tier.String()),
		zap.Int("roll", roll),
		zap.String("lost", lost.String()),
	)

	return &Result{
		Resources:  lost,
		Experience: 1,
		Tier:       tier,
		Outcome: event.Outcome{
			Type:             event.OutcomeFailure,
			ResourcesLost:    lost,
			ExperienceGained: 1,
			Description:      description,
		},
	}, nil
}

func (s *Service) baseResources(table map[resource.Type]int, tier Tier) resource.Collection {
	mult := tier.multipliers()
	out := resource.NewCollection()
	for rt, base := range table {
		amount := float64(base) * mult.forType(rt)
		if amount < 1.0 {
			amount = 1.0
		}
		out.Set(rt, int(amount))
	}
	return out
}

func (s *Service) applyLevelScaling(c resource.Collection, level int) {
	factor := s.scaling.multiplier(level)
	for _, rt := range resource.All() {
		cur := c.Get(rt)
		if cur == 0 {
			continue
		}
		scaled := int(float64(cur) * factor)
		if scaled < 1 {
			scaled = 1
		}
		c.Set(rt, scaled)
	}
}

func (s *Service) applyStatModifiers(c resource.Collection, eventType event.Type, stats character.Stats) {
	primary, secondary := statPair(eventType)
	total := 1.0 +
		float64(stats.ModifierFor(primary))*0.05 +
		float64(stats.ModifierFor(secondary))*0.025
	if total < 0.1 {
		total = 0.1
	}
	for _, rt := range resource.All() {
		cur := c.Get(rt)
		if cur == 0 {
			continue
		}
		modified := float64(cur) * total
		if modified < 1.0 {
			modified = 1.0
		}
		c.Set(rt, int(modified))
	}
}

func (s *Service) applyVariance(c resource.Collection, tier Tier) {
	spread := tier.varianceRange()
	for _, rt := range resource.All() {
		cur := c.Get(rt)
		if cur == 0 {
			continue
		}
		variance := (s.src.Float64()*2 - 1) * spread
		varied := float64(cur) * (1.0 + variance)
		if varied < 1.0 {
			varied = 1.0
		}
		c.Set(rt, int(varied))
	}
}

func (s *Service) experienceReward(eventType event.Type, tier Tier, roll, level int) int {
	var base float64
	switch eventType {
	case event.Combat:
		base = 15
	case event.ResourceDiscovery:
		base = 10
	case event.Trade:
		base = 8
	case event.Mystery:
		base = 12
	case event.Hazard:
		base = 10
	case event.Boon:
		base = 8
	case event.Narrative:
		base = 5
	default:
		base = 5
	}

	rollBonus := 1.0
	if roll >= 18 {
		rollBonus = 1.2
	}

	levelFactor := 1.0 + float64(level)*0.05
	if levelFactor > 3.0 {
		levelFactor = 3.0
	}

	exp := int(base * tier.experienceMultiplier() * rollBonus * levelFactor)
	if exp < 1 {
		exp = 1
	}
	return exp
}

func (s *Service) outcomeDescription(eventType event.Type, tier Tier, resources resource.Collection, exp int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (+%d XP)", eventType, tier.description(), exp)
	if !resources.IsEmpty() {
		fmt.Fprintf(&b, " Gained: %s", resources)
	}
	return b.String()
}
