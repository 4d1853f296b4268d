package processing

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrorLogTimeFormat prefixes every recorded message
const ErrorLogTimeFormat = "2006-01-02 15:04:05"

// ErrorLog collects per-name errors for one leaderboard run. Messages are
// also reported through the global logger as they are added.
type ErrorLog struct {
	messages []string
	now      Clock
}

// NewErrorLog creates an empty error log stamped with local time
func NewErrorLog() *ErrorLog {
	return &ErrorLog{now: time.Now}
}

// Add records a formatted message
func (l *ErrorLog) Add(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	log.Error().Msg(message)
	l.messages = append(l.messages, fmt.Sprintf("[%s] %s", l.now().Format(ErrorLogTimeFormat), message))
}

// AttemptFailed records one failed fetch attempt; it matches bestiary.AttemptHook.
func (l *ErrorLog) AttemptFailed(username string, attempt, maxAttempts int, err error) {
	l.Add("Attempt %d/%d: fetch error for '%s': %v", attempt, maxAttempts, username, err)
}

// Messages returns the recorded messages in order
func (l *ErrorLog) Messages() []string {
	return append([]string(nil), l.messages...)
}

// Len returns the number of recorded messages
func (l *ErrorLog) Len() int {
	return len(l.messages)
}

// WriteFile writes all messages to path, one per line. Nothing is written
// when the log is empty.
func (l *ErrorLog) WriteFile(path string) error {
	if len(l.messages) == 0 {
		return nil
	}

	content := strings.Join(l.messages, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write error log %s: %w", path, err)
	}

	log.Info().Str("file", path).Int("errors", len(l.messages)).Msg("Wrote error log")
	return nil
}
