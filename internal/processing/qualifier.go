package processing

import (
	"context"
	"errors"
	"fmt"

	"bestiary_rankings/internal/app"
	"bestiary_rankings/internal/bestiary"
	"bestiary_rankings/internal/domain/player"
	"bestiary_rankings/internal/userlist"

	"github.com/rs/zerolog/log"
)

// Qualifier filters the pending usernames down to those that completed
// enough maps, and retires usernames that have no profile.
type Qualifier struct {
	client bestiary.ProfileAPI
	config *app.Config
}

// NewQualifier creates a qualification filter
func NewQualifier(client bestiary.ProfileAPI, config *app.Config) *Qualifier {
	return &Qualifier{
		client: client,
		config: config,
	}
}

// Evaluation holds the per-outcome results for a batch of usernames
type Evaluation struct {
	Qualified  userlist.Set
	Failed     userlist.Set
	Unresolved userlist.Set
	Dropped    int
}

// Evaluate fetches and classifies each pending username in sorted order.
// Only context cancellation stops the batch early.
func (q *Qualifier) Evaluate(ctx context.Context, pending userlist.Set) (*Evaluation, error) {
	eval := &Evaluation{
		Qualified:  make(userlist.Set),
		Failed:     make(userlist.Set),
		Unresolved: make(userlist.Set),
	}
	tracker := NewRunTracker("qualify")

	for _, username := range pending.Sorted() {
		log.Info().Str("username", username).Msg("Processing")

		profile, err := q.client.FetchProfile(ctx, username)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return eval, ctxErr
		}

		outcome := player.OutcomeUnresolved
		switch {
		case errors.Is(err, bestiary.ErrProfileNotFound):
			outcome = player.Qualify(nil, q.config.MinMaps)
		case err != nil:
			log.Error().Err(err).Str("username", username).Msg("No data retrieved; keeping username pending")
		default:
			outcome = player.Qualify(profile, q.config.MinMaps)
		}

		maps := player.MapsCompleted(profile)
		switch outcome {
		case player.OutcomeFailed:
			log.Warn().Str("username", username).Msg("Profile data is empty; marking as failed")
			eval.Failed.Add(username)
		case player.OutcomeQualified:
			log.Info().Str("username", username).Int64("maps", maps).Msg("Qualified")
			eval.Qualified.Add(username)
		case player.OutcomeBelowThreshold:
			log.Info().
				Str("username", username).
				Int64("maps", maps).
				Int64("min_maps", q.config.MinMaps).
				Msg("Skipping: maps completed below threshold")
			eval.Dropped++
		default:
			if err == nil {
				log.Warn().Str("username", username).Msg("Maps completed is null; keeping username pending")
			}
			eval.Unresolved.Add(username)
		}
		tracker.Record(outcome.String())
	}

	tracker.LogSummary(q.client.GetAPICallCount())
	return eval, nil
}

// Run loads the username files, evaluates every pending username and
// writes the qualified list, the pruned input list and the failed list.
func (q *Qualifier) Run(ctx context.Context) (*app.QualificationSummary, error) {
	failed, err := userlist.LoadSet(q.config.FailedUsersFile)
	if err != nil {
		return nil, err
	}
	all, err := userlist.LoadSet(q.config.DiscordNamesFile)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("known_failed", failed.Len()).
		Int("usernames", all.Len()).
		Msg("Failed users have been read")

	pending := all.Difference(failed)
	summary := &app.QualificationSummary{Pending: pending.Len()}

	if pending.Len() == 0 {
		log.Info().Msg("No users to process; all are previously failed")
		return summary, nil
	}

	eval, err := q.Evaluate(ctx, pending)
	if err != nil {
		return nil, fmt.Errorf("qualification interrupted: %w", err)
	}

	summary.Qualified = eval.Qualified.Sorted()
	summary.Failed = eval.Failed.Sorted()
	summary.Unresolved = eval.Unresolved.Sorted()
	summary.Dropped = eval.Dropped

	if err := userlist.Write(q.config.BestPlayersFile, eval.Qualified); err != nil {
		return summary, err
	}

	if eval.Failed.Len() > 0 {
		log.Info().
			Int("count", eval.Failed.Len()).
			Strs("usernames", summary.Failed).
			Msg("Handling users with empty profile data")

		if err := userlist.Write(q.config.DiscordNamesFile, all.Difference(eval.Failed)); err != nil {
			return summary, err
		}
		if err := userlist.Append(q.config.FailedUsersFile, eval.Failed); err != nil {
			return summary, err
		}
	}

	return summary, nil
}
