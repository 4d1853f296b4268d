package cli

import (
	"os"

	"bestiary_rankings/internal/app"
	"bestiary_rankings/internal/bestiary"
	"bestiary_rankings/internal/processing"
	"bestiary_rankings/internal/report"
	"bestiary_rankings/internal/wikitext"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRankingsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rankings",
		Short: "Renders the wikitext rankings table for the best players list.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}

			errorLog := processing.NewErrorLog()
			client := bestiary.NewClient(cfg.BaseURL, cfg.Resilience.Rankings)
			client.SetAttemptHook(errorLog.AttemptFailed)

			var builder processing.LeaderboardBuilderInterface = processing.NewLeaderboardBuilder(
				client, wikitext.NewRenderer(cfg.ProfileURL), errorLog, cfg)

			log.Info().Msg("Starting data extraction")

			result, err := builder.Run(cmd.Context())
			if err != nil {
				return err
			}

			if result.Path != "" {
				report.PrintLeaderboard(os.Stdout, result.Entries, report.DefaultPreviewRows)
			}

			log.Info().
				Str("file", result.Path).
				Int("entries", len(result.Entries)).
				Int("errors", len(result.Errors)).
				Int64("api_calls", client.GetAPICallCount()).
				Msg("Script finished")
			return nil
		},
	}
}
