// Package report prints run summaries to the terminal.
package report

import (
	"io"

	"bestiary_rankings/internal/app"
	"bestiary_rankings/internal/domain/player"

	"github.com/jedib0t/go-pretty/v6/table"
)

// DefaultPreviewRows limits how many leaderboard rows are printed
const DefaultPreviewRows = 10

// PrintLeaderboard writes the first limit entries as a table. A limit of
// zero or less prints every entry.
func PrintLeaderboard(w io.Writer, entries []app.RankingEntry, limit int) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Username", "Level", "Runs", "Rank Points", "Time Sum", "Shell", "Tasks", "Perfect", "BIS", "Outfits"})

	shown := entries
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	for i, entry := range shown {
		row := table.Row{i + 1, entry.Name, entry.Level}
		for _, column := range player.Columns(entry) {
			row = append(row, column)
		}
		t.AppendRow(row)
	}

	if len(shown) < len(entries) {
		t.AppendFooter(table.Row{"", "", "", "", "", "", "", "", "", "shown", len(shown)})
	}
	t.AppendFooter(table.Row{"", "", "", "", "", "", "", "", "", "total", len(entries)})

	t.SetStyle(table.StyleRounded)
	t.Render()
}

// PrintQualification writes the counts of a qualification run
func PrintQualification(w io.Writer, summary *app.QualificationSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Outcome", "Users"})
	t.AppendRows([]table.Row{
		{"pending", summary.Pending},
		{"qualified", len(summary.Qualified)},
		{"below threshold", summary.Dropped},
		{"failed (no profile)", len(summary.Failed)},
		{"unresolved", len(summary.Unresolved)},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
}
