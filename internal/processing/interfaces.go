package processing

import (
	"context"
	"time"

	"bestiary_rankings/internal/app"
)

// QualifierInterface defines the qualification filter run
type QualifierInterface interface {
	Run(ctx context.Context) (*app.QualificationSummary, error)
}

// LeaderboardBuilderInterface defines the leaderboard run
type LeaderboardBuilderInterface interface {
	Run(ctx context.Context) (*LeaderboardResult, error)
	Build(ctx context.Context, names []string) ([]app.RankingEntry, []string, error)
}

// ErrorLogInterface defines the in-memory error list used by the leaderboard
type ErrorLogInterface interface {
	Add(format string, args ...interface{})
	Messages() []string
	Len() int
	WriteFile(path string) error
}

// Clock returns the current time
type Clock func() time.Time
