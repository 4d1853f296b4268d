package processing

import (
	"context"
	"errors"
	"io/fs"
	"time"

	"bestiary_rankings/internal/app"
	"bestiary_rankings/internal/bestiary"
	"bestiary_rankings/internal/domain/player"
	"bestiary_rankings/internal/userlist"
	"bestiary_rankings/internal/wikitext"

	"github.com/rs/zerolog/log"
)

// LeaderboardResult describes one leaderboard run
type LeaderboardResult struct {
	Path    string
	Entries []app.RankingEntry
	Skipped []string
	Errors  []string
}

// LeaderboardBuilder fetches extended profiles for the qualified players
// and renders them as a ranked table.
type LeaderboardBuilder struct {
	client   bestiary.ProfileAPI
	renderer *wikitext.Renderer
	errors   ErrorLogInterface
	config   *app.Config
	now      Clock
}

// NewLeaderboardBuilder creates a leaderboard builder. Fetch errors are
// collected in errorLog.
func NewLeaderboardBuilder(client bestiary.ProfileAPI, renderer *wikitext.Renderer, errorLog ErrorLogInterface, config *app.Config) *LeaderboardBuilder {
	return &LeaderboardBuilder{
		client:   client,
		renderer: renderer,
		errors:   errorLog,
		config:   config,
		now:      time.Now,
	}
}

// SetClock replaces the clock used for the output timestamp
func (b *LeaderboardBuilder) SetClock(now Clock) {
	b.now = now
}

// Build fetches each name in order and returns the rows sorted for display
// along with the names that were skipped.
func (b *LeaderboardBuilder) Build(ctx context.Context, names []string) ([]app.RankingEntry, []string, error) {
	entries := make([]app.RankingEntry, 0, len(names))
	var skipped []string
	tracker := NewRunTracker("rankings")

	for i, name := range names {
		log.Info().
			Str("username", name).
			Int("index", i+1).
			Int("total", len(names)).
			Msg("Fetching profile data")

		profile, err := b.client.FetchProfile(ctx, name)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, skipped, ctxErr
		}

		switch {
		case errors.Is(err, bestiary.ErrProfileNotFound):
			b.errors.Add("No profile data for '%s'. Skipping this name.", name)
			skipped = append(skipped, name)
			tracker.Record("no_profile")
		case err != nil:
			b.errors.Add("%v. Skipping this name.", err)
			skipped = append(skipped, name)
			tracker.Record("unresolved")
		default:
			entry := player.NewRankingEntry(name, profile)
			log.Debug().Str("username", name).Int64("level", entry.Level).Msg("Collected profile")
			entries = append(entries, entry)
			tracker.Record("ranked")
		}
	}

	tracker.LogSummary(b.client.GetAPICallCount())

	return player.SortRankings(entries), skipped, nil
}

// Run reads the qualified player list, builds the leaderboard and writes
// the table file plus the error log when anything went wrong. A missing
// names file is recorded in the error log and ends the run without output.
func (b *LeaderboardBuilder) Run(ctx context.Context) (*LeaderboardResult, error) {
	result := &LeaderboardResult{}

	names, err := userlist.LoadList(b.config.BestPlayersFile)
	if errors.Is(err, fs.ErrNotExist) {
		b.errors.Add("The names file '%s' was not found. Please ensure it exists.", b.config.BestPlayersFile)
		return b.finish(result)
	}
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		log.Info().Str("file", b.config.BestPlayersFile).Msg("No names found in the names file")
		return b.finish(result)
	}

	log.Info().Int("names", len(names)).Msg("Processing names")

	entries, skipped, err := b.Build(ctx, names)
	if err != nil {
		return nil, err
	}
	result.Entries = entries
	result.Skipped = skipped

	log.Info().
		Int("entries", len(entries)).
		Int("skipped", len(skipped)).
		Msg("Finished fetching data; sorting and writing table")

	path, err := b.renderer.WriteFile(b.config.OutputDir, entries, b.now())
	if err != nil {
		return nil, err
	}
	result.Path = path

	log.Info().Str("file", path).Msg("Rankings table written")

	return b.finish(result)
}

func (b *LeaderboardBuilder) finish(result *LeaderboardResult) (*LeaderboardResult, error) {
	result.Errors = b.errors.Messages()
	if err := b.errors.WriteFile(b.config.ErrorLogFile); err != nil {
		return result, err
	}
	return result, nil
}
