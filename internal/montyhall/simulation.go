package montyhall

import "math/rand"

// Trial captures one complete play-through evaluated under both strategies.
// Both strategies share the same game, the same initial pick, and the same
// opened door, so the per-trial comparison is paired rather than drawn from
// independent games.
type Trial struct {
	Game   Game
	Pick   Door
	Opened Door

	StayDoor   Door
	SwitchDoor Door

	StayOutcome   Outcome
	SwitchOutcome Outcome
}

// Results returns the paired per-strategy results, Stay first.
func (t Trial) Results() []TrialResult {
	return []TrialResult{
		{Strategy: Stay, Outcome: t.StayOutcome},
		{Strategy: Switch, Outcome: t.SwitchOutcome},
	}
}

// PlayTrial plays one full trial: builds a game, picks a door, opens a goat
// door, then resolves and scores both strategies against the same state.
//
// Randomness is consumed in a fixed order (game, pick, host tie-break when
// the pick hides the car), so trials are reproducible from the generator
// state alone.
func PlayTrial(rng *rand.Rand) (Trial, error) {
	game := NewGame(rng)
	pick := PickDoor(rng)

	opened, err := OpenGoatDoor(rng, game, pick)
	if err != nil {
		return Trial{}, err
	}

	trial := Trial{Game: game, Pick: pick, Opened: opened}

	trial.StayDoor, err = ChangeDoor(Stay, opened, pick)
	if err != nil {
		return Trial{}, err
	}
	trial.SwitchDoor, err = ChangeDoor(Switch, opened, pick)
	if err != nil {
		return Trial{}, err
	}

	trial.StayOutcome, err = DetermineWinner(trial.StayDoor, game)
	if err != nil {
		return Trial{}, err
	}
	trial.SwitchOutcome, err = DetermineWinner(trial.SwitchDoor, game)
	if err != nil {
		return Trial{}, err
	}

	return trial, nil
}

// Request configures a simulation batch.
type Request struct {
	Trials int
	Seed   int64
}

// Result carries every trial in play order plus the aggregate summary.
type Result struct {
	Trials  []Trial
	Summary Summary
}

// Results flattens the batch into per-strategy results, two per trial in
// play order (Stay before Switch within each trial).
func (r Result) Results() []TrialResult {
	results := make([]TrialResult, 0, 2*len(r.Trials))
	for _, trial := range r.Trials {
		results = append(results, trial.Results()...)
	}
	return results
}

// Run simulates a batch of trials.
//
// # Determinism
//
// Run is deterministic with respect to the Seed field on Request. Given the
// same Seed and the same Trials count, Run will always produce the same
// Result.
//
// # Errors
//
// Trials must be positive, otherwise ErrInvalidTrials is returned.
func Run(request Request) (Result, error) {
	if request.Trials < 1 {
		return Result{}, ErrInvalidTrials
	}
	rng := rand.New(rand.NewSource(request.Seed))
	return RunWithRng(rng, request.Trials)
}

// RunWithRng simulates a batch of trials using a provided random source.
// This is useful when you want to control the RNG directly.
func RunWithRng(rng *rand.Rand, trials int) (Result, error) {
	if trials < 1 {
		return Result{}, ErrInvalidTrials
	}

	played := make([]Trial, 0, trials)
	for i := 0; i < trials; i++ {
		trial, err := PlayTrial(rng)
		if err != nil {
			return Result{}, err
		}
		played = append(played, trial)
	}

	return Result{Trials: played, Summary: Summarize(played)}, nil
}
