package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"bestiary_rankings/internal/config"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	DefaultBaseURL          = "https://bestiaryarena.com/api/trpc/serverSide.profilePageData?batch=1&input="
	DefaultProfileURL       = "https://bestiaryarena.com/profile/"
	DefaultDiscordNamesFile = "DiscordNames.txt"
	DefaultFailedUsersFile  = "FailedUsers.txt"
	DefaultBestPlayersFile  = "Bestplayers.txt"
	DefaultErrorLogFile     = "error_log.txt"
	DefaultMinMaps          = 53
)

// Config holds application configuration
type Config struct {
	BaseURL          string
	ProfileURL       string
	DiscordNamesFile string
	FailedUsersFile  string
	BestPlayersFile  string
	ErrorLogFile     string
	OutputDir        string
	MinMaps          int64
	Resilience       config.ResilienceConfig
}

// DefaultConfig returns the configuration used when no overrides are set
func DefaultConfig() *Config {
	return &Config{
		BaseURL:          DefaultBaseURL,
		ProfileURL:       DefaultProfileURL,
		DiscordNamesFile: DefaultDiscordNamesFile,
		FailedUsersFile:  DefaultFailedUsersFile,
		BestPlayersFile:  DefaultBestPlayersFile,
		ErrorLogFile:     DefaultErrorLogFile,
		OutputDir:        ".",
		MinMaps:          DefaultMinMaps,
		Resilience:       config.DefaultResilienceConfig,
	}
}

// logLevels maps LOGLEVEL values to zerolog levels
var logLevels = map[string]zerolog.Level{
	"debug":    zerolog.DebugLevel,
	"info":     zerolog.InfoLevel,
	"warn":     zerolog.WarnLevel,
	"warning":  zerolog.WarnLevel,
	"error":    zerolog.ErrorLevel,
	"fatal":    zerolog.FatalLevel,
	"panic":    zerolog.PanicLevel,
	"disabled": zerolog.Disabled,
}

// ParseLogLevel resolves a LOGLEVEL value. An empty value picks warn in
// production and info otherwise; unknown values fall back to info and
// report ok=false.
func ParseLogLevel(value string, production bool) (level zerolog.Level, ok bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		if production {
			return zerolog.WarnLevel, true
		}
		return zerolog.InfoLevel, true
	}
	if level, ok := logLevels[value]; ok {
		return level, true
	}
	return zerolog.InfoLevel, false
}

// SetupEnvironment loads .env file and configures zerolog output and log level.
func SetupEnvironment() {
	// Load .env file if it exists
	err := godotenv.Load()

	production := os.Getenv("ENV") == "production"
	if production {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	levelStr := os.Getenv("LOGLEVEL")
	level, ok := ParseLogLevel(levelStr, production)
	zerolog.SetGlobalLevel(level)
	if !ok {
		log.Warn().Str("LOGLEVEL", levelStr).Msg("Unknown log level, defaulting to info")
	}

	// wait until now to report on the .env file so we have the chance to set up logging first
	if err == nil {
		log.Debug().Msg("Loaded file and endpoint overrides from .env")
	} else {
		log.Debug().
			Str("keys", "BESTIARY_BASE_URL, DISCORD_NAMES_FILE, FAILED_USERS_FILE, BEST_PLAYERS_FILE, ERROR_LOG_FILE, OUTPUT_DIR, MIN_MAPS").
			Msg("No .env file; using process environment and built-in defaults")
	}
}

// LoadConfig loads configuration from environment variables, falling back
// to the built-in defaults for anything unset.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	overrides := []struct {
		key    string
		target *string
	}{
		{"BESTIARY_BASE_URL", &cfg.BaseURL},
		{"BESTIARY_PROFILE_URL", &cfg.ProfileURL},
		{"DISCORD_NAMES_FILE", &cfg.DiscordNamesFile},
		{"FAILED_USERS_FILE", &cfg.FailedUsersFile},
		{"BEST_PLAYERS_FILE", &cfg.BestPlayersFile},
		{"ERROR_LOG_FILE", &cfg.ErrorLogFile},
		{"OUTPUT_DIR", &cfg.OutputDir},
	}
	for _, o := range overrides {
		if value := strings.TrimSpace(os.Getenv(o.key)); value != "" {
			*o.target = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("MIN_MAPS")); raw != "" {
		minMaps, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || minMaps < 0 {
			return nil, fmt.Errorf("MIN_MAPS must be a non-negative integer, got %q", raw)
		}
		cfg.MinMaps = minMaps
	}

	return cfg, nil
}
