package processing

import (
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// RunTracker counts per-username outcomes over one batch run
type RunTracker struct {
	name      string
	started   time.Time
	processed int64
	outcomes  map[string]int64
	mutex     sync.RWMutex
	now       Clock
}

// RunStats is a snapshot of a RunTracker
type RunStats struct {
	Processed      int64
	Duration       time.Duration
	Outcomes       map[string]int64
	UsersPerMinute float64
}

// NewRunTracker starts tracking a run called name
func NewRunTracker(name string) *RunTracker {
	return newRunTrackerWithClock(name, time.Now)
}

func newRunTrackerWithClock(name string, now Clock) *RunTracker {
	return &RunTracker{
		name:     name,
		started:  now(),
		outcomes: make(map[string]int64),
		now:      now,
	}
}

// Record counts one processed username with the given outcome
func (t *RunTracker) Record(outcome string) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.processed++
	t.outcomes[outcome]++
}

// Stats returns a copy of the current counters
func (t *RunTracker) Stats() RunStats {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	duration := t.now().Sub(t.started)

	outcomes := make(map[string]int64, len(t.outcomes))
	for k, v := range t.outcomes {
		outcomes[k] = v
	}

	stats := RunStats{
		Processed: t.processed,
		Duration:  duration,
		Outcomes:  outcomes,
	}
	if minutes := duration.Minutes(); minutes > 0 {
		stats.UsersPerMinute = float64(t.processed) / minutes
	}
	return stats
}

// LogSummary logs the counters together with the API calls made
func (t *RunTracker) LogSummary(apiCalls int64) {
	stats := t.Stats()

	logEvent := log.Info().
		Str("run", t.name).
		Int64("processed", stats.Processed).
		Int64("api_calls", apiCalls).
		Float64("users_per_minute", stats.UsersPerMinute).
		Dur("duration", stats.Duration)

	keys := make([]string, 0, len(stats.Outcomes))
	for k := range stats.Outcomes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, outcome := range keys {
		logEvent = logEvent.Int64(outcome, stats.Outcomes[outcome])
	}

	logEvent.Msg("Run summary")
}
