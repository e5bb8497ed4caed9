package reward

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/Linzell/space-looter-sub000/internal/game/character"
	"github.com/Linzell/space-looter-sub000/internal/game/event"
	"github.com/Linzell/space-looter-sub000/internal/game/resource"
)

// midpointSource pins Float64 to 0.5, which zeroes the symmetric variance
// so payouts are exactly the deterministic pipeline output.
type midpointSource struct{}

func (midpointSource) Float64() float64 { return 0.5 }

func newService(t *testing.T) *Service {
	t.Helper()
	return NewService(midpointSource{}, nil)
}

func TestTierForRoll(t *testing.T) {
	cases := []struct {
		roll int
		want Tier
	}{
		{0, CriticalFailure},
		{3, CriticalFailure},
		{4, Failure},
		{7, Failure},
		{8, Neutral},
		{12, Neutral},
		{13, Success},
		{16, Success},
		{17, GreatSuccess},
		{19, GreatSuccess},
		{20, CriticalSuccess},
		{25, CriticalSuccess},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TierForRoll(tc.roll), "roll %d", tc.roll)
	}
}

func TestResourceDiscoveryPayout(t *testing.T) {
	svc := newService(t)
	result, err := svc.CalculateEventRewards(event.ResourceDiscovery, 15, 1, character.StartingStats())
	require.NoError(t, err)

	assert.Equal(t, Success, result.Tier)
	assert.Equal(t, 8, result.Resources.Get(resource.Metal))
	assert.Equal(t, 5, result.Resources.Get(resource.Energy))
	// rare bucket halves technology, floored at one unit
	assert.Equal(t, 1, result.Resources.Get(resource.Technology))
	assert.Equal(t, 13, result.Experience)
	assert.Equal(t, event.OutcomeSuccess, result.Outcome.Type)
	assert.Contains(t, result.Outcome.Description, "+13 XP")
}

func TestCriticalFailureStillPaysTokenAmounts(t *testing.T) {
	svc := newService(t)
	result, err := svc.CalculateEventRewards(event.ResourceDiscovery, 2, 1, character.StartingStats())
	require.NoError(t, err)

	assert.Equal(t, CriticalFailure, result.Tier)
	for _, rt := range result.Resources.Types() {
		assert.Equal(t, 1, result.Resources.Get(rt), rt.String())
	}
	assert.Equal(t, event.OutcomeFailure, result.Outcome.Type)
}

func TestCriticalSuccessPayout(t *testing.T) {
	svc := newService(t)
	result, err := svc.CalculateEventRewards(event.ResourceDiscovery, 20, 1, character.StartingStats())
	require.NoError(t, err)

	assert.Equal(t, CriticalSuccess, result.Tier)
	assert.Equal(t, 20, result.Resources.Get(resource.Metal))
	assert.Equal(t, 12, result.Resources.Get(resource.Energy))
	assert.Equal(t, 4, result.Resources.Get(resource.Technology))
	// 10 base, 2.5 tier, 1.2 high-roll bonus, 1.05 level factor
	assert.Equal(t, 31, result.Experience)
}

func TestLevelScalingCapped(t *testing.T) {
	svc := newService(t)
	stats := character.StartingStats()

	lowLevel, err := svc.CalculateEventRewards(event.ResourceDiscovery, 15, 1, stats)
	require.NoError(t, err)
	midLevel, err := svc.CalculateEventRewards(event.ResourceDiscovery, 15, 11, stats)
	require.NoError(t, err)
	highLevel, err := svc.CalculateEventRewards(event.ResourceDiscovery, 15, 200, stats)
	require.NoError(t, err)

	// level 11 doubles the payout; the cap holds it at five times base
	assert.Equal(t, 16, midLevel.Resources.Get(resource.Metal))
	assert.Equal(t, 40, highLevel.Resources.Get(resource.Metal))
	assert.Greater(t, midLevel.Resources.Get(resource.Metal), lowLevel.Resources.Get(resource.Metal))
}

func TestStatModifiersBoostPayout(t *testing.T) {
	svc := newService(t)
	sharp, err := character.NewStats(10, 10, 14, 10, 12, 10)
	require.NoError(t, err)

	boosted, err := svc.CalculateEventRewards(event.ResourceDiscovery, 15, 1, sharp)
	require.NoError(t, err)
	// +2 intelligence and +1 luck modifiers give a 12.5% bonus
	assert.Equal(t, 9, boosted.Resources.Get(resource.Metal))
}

func TestUnknownEventTypeRejected(t *testing.T) {
	svc := newService(t)
	_, err := svc.CalculateEventRewards(event.Type(99), 15, 1, character.StartingStats())
	assert.ErrorIs(t, err, ErrNoRewardTable)
}

func TestHazardPaysNoResources(t *testing.T) {
	svc := newService(t)
	result, err := svc.CalculateEventRewards(event.Hazard, 15, 1, character.StartingStats())
	require.NoError(t, err)
	assert.True(t, result.Resources.IsEmpty())
	assert.Greater(t, result.Experience, 0)
}

func TestPayoutMonotonicAcrossTiers(t *testing.T) {
	svc := newService(t)
	stats := character.StartingStats()
	rolls := []int{2, 5, 10, 15, 18, 20}

	prevValue := -1
	for _, roll := range rolls {
		result, err := svc.CalculateEventRewards(event.Trade, roll, 1, stats)
		require.NoError(t, err)
		value := result.Resources.TotalValue()
		assert.GreaterOrEqual(t, value, prevValue, "roll %d", roll)
		prevValue = value
	}
}

func TestVarianceStaysInTierBand(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		svc := NewService(fixedFloat{rapid.Float64Range(0, 0.999).Draw(t, "f")}, nil)
		baseline := NewService(midpointSource{}, nil)

		varied, err := svc.CalculateEventRewards(event.ResourceDiscovery, 20, 1, character.StartingStats())
		require.NoError(t, err)
		expected, err := baseline.CalculateEventRewards(event.ResourceDiscovery, 20, 1, character.StartingStats())
		require.NoError(t, err)

		for _, rt := range expected.Resources.Types() {
			base := float64(expected.Resources.Get(rt))
			got := float64(varied.Resources.Get(rt))
			assert.GreaterOrEqual(t, got, 1.0)
			// critical success swings up to half the payout either way
			assert.LessOrEqual(t, got, base*1.5+1)
		}
	})
}

func TestPenaltiesOnlyForDangerousFailures(t *testing.T) {
	svc := newService(t)
	held := resource.NewCollection()
	held.Set(resource.Metal, 100)
	held.Set(resource.Energy, 40)

	critical, err := svc.CalculateEventPenalties(event.Combat, 2, held)
	require.NoError(t, err)
	assert.Equal(t, 15, critical.Resources.Get(resource.Metal))
	assert.Equal(t, 6, critical.Resources.Get(resource.Energy))
	assert.Equal(t, event.OutcomeFailure, critical.Outcome.Type)

	minor, err := svc.CalculateEventPenalties(event.Combat, 5, held)
	require.NoError(t, err)
	assert.Equal(t, 5, minor.Resources.Get(resource.Metal))
	assert.Equal(t, 2, minor.Resources.Get(resource.Energy))

	// a safe event type never costs resources, even on a terrible roll
	benign, err := svc.CalculateEventPenalties(event.Trade, 2, held)
	require.NoError(t, err)
	assert.True(t, benign.Resources.IsEmpty())
	assert.Equal(t, 1, benign.Experience)
	assert.Equal(t, event.OutcomeNeutral, benign.Outcome.Type)

	// a good roll on a dangerous event costs nothing
	survived, err := svc.CalculateEventPenalties(event.Combat, 15, held)
	require.NoError(t, err)
	assert.True(t, survived.Resources.IsEmpty())
}

// fixedFloat pins Float64 to one value.
type fixedFloat struct{ v float64 }

func (f fixedFloat) Float64() float64 { return f.v }
