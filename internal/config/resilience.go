package config

import "time"

// Retry configuration constants
const (
	// Qualification filter profile fetches
	QualifyMaxAttempts  = 3
	QualifyRetryDelay   = 500 * time.Millisecond
	QualifyRequestDelay = 100 * time.Millisecond
	QualifyTimeout      = 10 * time.Second

	// Leaderboard profile fetches
	RankingsMaxAttempts  = 3
	RankingsRetryDelay   = 400 * time.Millisecond
	RankingsRequestDelay = 400 * time.Millisecond
	RankingsTimeout      = 10 * time.Second
)

// RetryConfig defines retry and pacing behavior for profile fetches.
// RetryDelay is the fixed wait between failed attempts; RequestDelay is
// the wait after a successful attempt so consecutive requests stay under
// the API rate limit.
type RetryConfig struct {
	MaxAttempts  int
	RetryDelay   time.Duration
	RequestDelay time.Duration
	Timeout      time.Duration
}

// ResilienceConfig contains all retry configurations
type ResilienceConfig struct {
	Qualify  RetryConfig
	Rankings RetryConfig
}

// DefaultResilienceConfig provides the pacing used against the public API
var DefaultResilienceConfig = ResilienceConfig{
	Qualify: RetryConfig{
		MaxAttempts:  QualifyMaxAttempts,
		RetryDelay:   QualifyRetryDelay,
		RequestDelay: QualifyRequestDelay,
		Timeout:      QualifyTimeout,
	},
	Rankings: RetryConfig{
		MaxAttempts:  RankingsMaxAttempts,
		RetryDelay:   RankingsRetryDelay,
		RequestDelay: RankingsRequestDelay,
		Timeout:      RankingsTimeout,
	},
}
