// Package report renders batch summaries for terminal output. It contains
// no simulation logic; all numbers come in precomputed.
package report

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/louisbranch/montyhall/internal/montyhall"
)

// Render formats a batch summary as a table with one row per strategy and
// the win and lose proportions formatted to 2 decimal places.
func Render(summary montyhall.Summary) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("STRATEGY", "WIN", "LOSE")

	for _, stats := range summary.Strategies {
		t.Row(stats.Strategy.String(), formatRate(stats.WinRate), formatRate(stats.LoseRate))
	}

	return t.Render()
}

func formatRate(rate float64) string {
	return fmt.Sprintf("%.2f", rate)
}
