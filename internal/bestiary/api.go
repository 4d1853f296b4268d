package bestiary

import (
	"context"

	"bestiary_rankings/internal/app"
)

// ProfileAPI defines the interface for fetching player profiles.
// This separates infrastructure concerns from business logic
type ProfileAPI interface {
	// FetchProfile returns the decoded profile for username. It returns an
	// error wrapping ErrProfileNotFound when the API reports no profile, and
	// a *FetchError once every attempt has failed.
	FetchProfile(ctx context.Context, username string) (*app.Profile, error)

	// API call tracking
	GetAPICallCount() int64
}
