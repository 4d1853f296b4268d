package player

import (
	"sort"
	"strconv"
	"strings"

	"bestiary_rankings/internal/app"
)

// NotAvailable is shown for counters the profile does not report
const NotAvailable = "N/A"

// NewRankingEntry builds a leaderboard row for name from its profile
func NewRankingEntry(name string, profile *app.Profile) app.RankingEntry {
	return app.RankingEntry{
		Name:            name,
		Level:           LevelFromExp(profile.Exp),
		Exp:             profile.Exp,
		PlayCount:       profile.PlayCount,
		RankPoints:      profile.RankPoints,
		Ticks:           profile.Ticks,
		Shell:           profile.Shell,
		Tasks:           profile.Tasks,
		PerfectMonsters: profile.PerfectMonsters,
		BisEquips:       profile.BisEquips,
		OwnedOutfits:    profile.OwnedOutfits,
	}
}

// SortRankings returns a new slice ordered by level descending, then by
// case-insensitive name descending. Entries that compare equal keep their
// input order.
// Pure function: Does not modify input slice
func SortRankings(entries []app.RankingEntry) []app.RankingEntry {
	sorted := make([]app.RankingEntry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Level != sorted[j].Level {
			return sorted[i].Level > sorted[j].Level
		}
		return strings.ToLower(sorted[i].Name) > strings.ToLower(sorted[j].Name)
	})

	return sorted
}

// FormatCount renders v, or fallback when the field was absent
func FormatCount(v *int64, fallback string) string {
	if v == nil {
		return fallback
	}
	return strconv.FormatInt(*v, 10)
}

// Columns returns the counters of a row in display order: play count,
// rank points, ticks, shell, tasks, perfect monsters, BIS equipment,
// outfits.
func Columns(entry app.RankingEntry) []string {
	return []string{
		FormatCount(entry.PlayCount, "0"),
		FormatCount(entry.RankPoints, "0"),
		FormatCount(entry.Ticks, "0"),
		FormatCount(entry.Shell, NotAvailable),
		FormatCount(entry.Tasks, NotAvailable),
		FormatCount(entry.PerfectMonsters, NotAvailable),
		FormatCount(entry.BisEquips, NotAvailable),
		FormatCount(entry.OwnedOutfits, NotAvailable),
	}
}
