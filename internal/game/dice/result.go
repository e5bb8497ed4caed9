package dice

import (
	"fmt"
	"strings"
)

// Result holds the full audit trail for a single evaluated roll.
//
// Postcondition: Final == RawTotal + Roll.Modifier.Total().
type Result struct {
	Roll        Roll  // what was rolled
	Raw         []int // individual die results before modifier
	RawTotal    int   // sum of raw dice before modifier
	Final       int   // result after applying the modifier
	CritSuccess bool  // natural maximum on a critical-eligible roll
	CritFailure bool  // natural 1 on a critical-eligible roll
}

// NewResult creates a validated Result from a roll specification and raw
// die values.
//
// Precondition: len(raw) == roll.Count and every value in [1, max] for the
// die type.
func NewResult(roll Roll, raw []int, critSuccess, critFailure bool) (Result, error) {
	if len(raw) != roll.Count {
		return Result{}, fmt.Errorf("%w: want %d, got %d", ErrResultCount, roll.Count, len(raw))
	}
	total := 0
	for _, v := range raw {
		if !roll.Type.IsValidValue(v) {
			return Result{}, fmt.Errorf("%w: %d for %s", ErrResultValue, v, roll.Type)
		}
		total += v
	}
	return Result{
		Roll:        roll,
		Raw:         raw,
		RawTotal:    total,
		Final:       total + roll.Modifier.Total(),
		CritSuccess: critSuccess,
		CritFailure: critFailure,
	}, nil
}

// MeetsDifficulty reports whether the final result reaches the threshold.
func (r Result) MeetsDifficulty(difficulty int) bool {
	return r.Final >= difficulty
}

// Margin returns the amount by which the result beat or missed the
// difficulty. Negative means failure.
func (r Result) Margin(difficulty int) int {
	return r.Final - difficulty
}

// SuccessLevelFor classifies the result against a difficulty threshold.
// Explicit critical flags take precedence over the margin bands.
//
// Postcondition: every integer margin maps to exactly one level.
func (r Result) SuccessLevelFor(difficulty int) SuccessLevel {
	if r.CritFailure {
		return CriticalFailure
	}
	if r.CritSuccess {
		return CriticalSuccess
	}
	switch margin := r.Margin(difficulty); {
	case margin >= 10:
		return ExceptionalSuccess
	case margin >= 5:
		return GoodSuccess
	case margin >= 0:
		return Success
	case margin >= -5:
		return Failure
	default:
		return CriticalFailure
	}
}

// Description returns the final result with its success level against the
// given difficulty, e.g. "17 (Good Success)".
func (r Result) Description(difficulty int) string {
	return fmt.Sprintf("%d (%s)", r.Final, r.SuccessLevelFor(difficulty))
}

// String renders the roll audit, e.g. "15+2=17" or "[3, 5]+1=9".
func (r Result) String() string {
	if len(r.Raw) == 1 {
		if r.Roll.Modifier.IsZero() {
			return fmt.Sprintf("%d", r.Final)
		}
		return fmt.Sprintf("%d%s=%d", r.Raw[0], r.Roll.Modifier, r.Final)
	}
	parts := make([]string, len(r.Raw))
	for i, v := range r.Raw {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("[%s]%s=%d", strings.Join(parts, ", "), r.Roll.Modifier, r.Final)
}

// SuccessLevel grades a roll against a difficulty threshold.
type SuccessLevel int

// Success levels ordered from worst to best.
const (
	CriticalFailure SuccessLevel = iota
	Failure
	Success
	GoodSuccess
	ExceptionalSuccess
	CriticalSuccess
)

// IsSuccess reports whether the level counts as any kind of success.
func (l SuccessLevel) IsSuccess() bool {
	return l >= Success
}

// IsCritical reports whether the level is a critical result in either
// direction.
func (l SuccessLevel) IsCritical() bool {
	return l == CriticalSuccess || l == CriticalFailure
}

// RewardMultiplier returns the reward/consequence scaling for this level.
func (l SuccessLevel) RewardMultiplier() float64 {
	switch l {
	case CriticalFailure:
		return 0.0
	case Failure:
		return 0.25
	case Success:
		return 1.0
	case GoodSuccess:
		return 1.25
	case ExceptionalSuccess:
		return 1.5
	case CriticalSuccess:
		return 2.0
	default:
		return 0.0
	}
}

// String returns the human-readable level name.
func (l SuccessLevel) String() string {
	switch l {
	case CriticalFailure:
		return "Critical Failure"
	case Failure:
		return "Failure"
	case Success:
		return "Success"
	case GoodSuccess:
		return "Good Success"
	case ExceptionalSuccess:
		return "Exceptional Success"
	case CriticalSuccess:
		return "Critical Success"
	default:
		return "Unknown"
	}
}
