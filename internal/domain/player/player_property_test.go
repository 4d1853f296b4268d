package player

import (
	"strings"
	"testing"

	"bestiary_rankings/internal/app"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func genEntry() gopter.Gen {
	return gopter.CombineGens(
		gen.AlphaString(),
		gen.Int64Range(1, 20),
	).Map(func(values []interface{}) app.RankingEntry {
		return app.RankingEntry{Name: values[0].(string), Level: values[1].(int64)}
	})
}

// TestPlayerProperties uses property-based testing to verify level and ordering invariants
func TestPlayerProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("level is at least 1 for non-negative exp", prop.ForAll(
		func(exp int64) bool {
			return LevelFromExp(&exp) >= 1
		},
		gen.Int64Range(0, 1<<40),
	))

	properties.Property("level matches integer division", prop.ForAll(
		func(exp int64) bool {
			return LevelFromExp(&exp) == exp/ExpPerLevel+1
		},
		gen.Int64Range(0, 1<<40),
	))

	properties.Property("level is monotonic in exp", prop.ForAll(
		func(a, b int64) bool {
			if a > b {
				a, b = b, a
			}
			return LevelFromExp(&a) <= LevelFromExp(&b)
		},
		gen.Int64Range(0, 1<<30),
		gen.Int64Range(0, 1<<30),
	))

	properties.Property("sorted rankings are ordered by level then name descending", prop.ForAll(
		func(entries []app.RankingEntry) bool {
			sorted := SortRankings(entries)
			if len(sorted) != len(entries) {
				return false
			}
			for i := 1; i < len(sorted); i++ {
				prev, cur := sorted[i-1], sorted[i]
				if prev.Level < cur.Level {
					return false
				}
				if prev.Level == cur.Level && strings.ToLower(prev.Name) < strings.ToLower(cur.Name) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(genEntry()),
	))

	properties.TestingRun(t)
}
