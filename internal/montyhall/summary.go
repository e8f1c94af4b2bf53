package montyhall

import "math"

// StrategyStats aggregates wins and losses for one strategy across a batch.
// WinRate is rounded to 2 decimal places; LoseRate is derived from the
// rounded win rate so the two always sum to 1.00.
type StrategyStats struct {
	Strategy Strategy
	Wins     int
	Losses   int
	WinRate  float64
	LoseRate float64
}

// Summary holds per-strategy statistics for a batch, ordered Stay then
// Switch.
type Summary struct {
	Trials     int
	Strategies []StrategyStats
}

// Summarize computes per-strategy win and loss counts and proportions for a
// batch of trials. It is pure computation; rendering lives elsewhere.
func Summarize(trials []Trial) Summary {
	wins := make(map[Strategy]int, 2)
	for _, trial := range trials {
		if trial.StayOutcome == Win {
			wins[Stay]++
		}
		if trial.SwitchOutcome == Win {
			wins[Switch]++
		}
	}

	ordered := []Strategy{Stay, Switch}
	stats := make([]StrategyStats, 0, len(ordered))
	for _, strategy := range ordered {
		won := wins[strategy]
		lost := len(trials) - won

		winRate := 0.0
		if len(trials) > 0 {
			winRate = round2(float64(won) / float64(len(trials)))
		}

		stats = append(stats, StrategyStats{
			Strategy: strategy,
			Wins:     won,
			Losses:   lost,
			WinRate:  winRate,
			LoseRate: round2(1 - winRate),
		})
	}

	return Summary{Trials: len(trials), Strategies: stats}
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
