package report_test

import (
	"strings"
	"testing"

	"github.com/louisbranch/montyhall/internal/montyhall"
	"github.com/louisbranch/montyhall/internal/montyhall/report"
)

func fixedSummary() montyhall.Summary {
	return montyhall.Summary{
		Trials: 100,
		Strategies: []montyhall.StrategyStats{
			{Strategy: montyhall.Stay, Wins: 33, Losses: 67, WinRate: 0.33, LoseRate: 0.67},
			{Strategy: montyhall.Switch, Wins: 67, Losses: 33, WinRate: 0.67, LoseRate: 0.33},
		},
	}
}

func TestRender_ContainsStrategiesAndRates(t *testing.T) {
	rendered := report.Render(fixedSummary())

	for _, want := range []string{"STRATEGY", "WIN", "LOSE", "Stay", "Switch", "0.33", "0.67"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("rendered table missing %q:\n%s", want, rendered)
		}
	}
}

func TestRender_OneRowPerStrategy(t *testing.T) {
	rendered := report.Render(fixedSummary())

	if got := strings.Count(rendered, "Stay"); got != 1 {
		t.Errorf("expected one Stay row, found %d", got)
	}
	if got := strings.Count(rendered, "Switch"); got != 1 {
		t.Errorf("expected one Switch row, found %d", got)
	}
}

func TestRender_Deterministic(t *testing.T) {
	first := report.Render(fixedSummary())
	second := report.Render(fixedSummary())
	if first != second {
		t.Fatal("expected identical output for identical summaries")
	}
}
