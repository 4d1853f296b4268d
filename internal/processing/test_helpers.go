package processing

import (
	"path/filepath"

	"bestiary_rankings/internal/app"
)

// newTestConfig returns a config whose files all live in dir
func newTestConfig(dir string) *app.Config {
	cfg := app.DefaultConfig()
	cfg.DiscordNamesFile = filepath.Join(dir, app.DefaultDiscordNamesFile)
	cfg.FailedUsersFile = filepath.Join(dir, app.DefaultFailedUsersFile)
	cfg.BestPlayersFile = filepath.Join(dir, app.DefaultBestPlayersFile)
	cfg.ErrorLogFile = filepath.Join(dir, app.DefaultErrorLogFile)
	cfg.OutputDir = dir
	return cfg
}

func int64Ptr(v int64) *int64 {
	return &v
}
