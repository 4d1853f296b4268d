package cli

import (
	"os"

	"bestiary_rankings/internal/app"
	"bestiary_rankings/internal/bestiary"
	"bestiary_rankings/internal/processing"
	"bestiary_rankings/internal/report"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newQualifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "qualify",
		Short: "Writes the users from the Discord names list who completed every map.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}

			client := bestiary.NewClient(cfg.BaseURL, cfg.Resilience.Qualify)
			var qualifier processing.QualifierInterface = processing.NewQualifier(client, cfg)

			summary, err := qualifier.Run(cmd.Context())
			if err != nil {
				return err
			}

			report.PrintQualification(os.Stdout, summary)

			log.Info().
				Int64("api_calls", client.GetAPICallCount()).
				Msg("Script execution finished")
			return nil
		},
	}
}
