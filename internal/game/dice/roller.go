package dice

import "go.uber.org/zap"

// RollDice evaluates a Roll using the given Source and returns a Result.
// Natural criticals are detected only on critical-eligible rolls: a
// single-die d20/d100 showing its maximum is a critical success and a
// natural 1 a critical failure.
//
// Precondition: roll must come from NewRoll; src must be non-nil.
// Postcondition: len(result.Raw) == roll.Count and
// result.Final == sum(result.Raw) + roll.Modifier.Total().
func RollDice(roll Roll, src Source) (Result, error) {
	raw := make([]int, roll.Count)
	for i := range raw {
		raw[i] = src.Intn(roll.Type.Sides()) + 1
	}

	critSuccess := false
	critFailure := false
	if roll.CriticalEligible() {
		critSuccess = raw[0] == roll.Type.MaxValue()
		critFailure = raw[0] == 1
	}

	return NewResult(roll, raw, critSuccess, critFailure)
}

// Roller wraps a Source and logger to provide logged dice rolling.
// All rolls are logged at debug level with the roll spec, die values,
// modifier, and final result.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll
// to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Roll evaluates roll and logs the result at debug level.
//
// Precondition: roll must come from NewRoll.
// Postcondition: result logged; returns Result or error.
func (r *Roller) Roll(roll Roll) (Result, error) {
	result, err := RollDice(roll, r.src)
	if err != nil {
		return Result{}, err
	}
	r.logger.Debug("dice roll",
		zap.String("roll", roll.String()),
		zap.Ints("dice", result.Raw),
		zap.Int("modifier", roll.Modifier.Total()),
		zap.Int("final", result.Final),
		zap.Bool("crit_success", result.CritSuccess),
		zap.Bool("crit_failure", result.CritFailure),
	)
	return result, nil
}
