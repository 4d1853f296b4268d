package processing

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bestiary_rankings/internal/app"
	"bestiary_rankings/internal/bestiary"
	"bestiary_rankings/internal/processing/mocks"
	"bestiary_rankings/internal/wikitext"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.October, 14, 18, 30, 0, 0, time.UTC)

func newLeaderboardFixture(t *testing.T) (*LeaderboardBuilder, *mocks.MockProfileClient, *app.Config) {
	t.Helper()
	cfg := newTestConfig(t.TempDir())
	client := mocks.NewMockProfileClient()

	errorLog := NewErrorLog()
	errorLog.now = func() time.Time { return fixedNow }

	builder := NewLeaderboardBuilder(client, wikitext.NewRenderer(cfg.ProfileURL), errorLog, cfg)
	builder.SetClock(func() time.Time { return fixedNow })

	return builder, client, cfg
}

func TestLeaderboardBuild(t *testing.T) {
	builder, client, _ := newLeaderboardFixture(t)

	client.Profiles["b"] = &app.Profile{Exp: int64Ptr(800)}  // level 3
	client.Profiles["a"] = &app.Profile{Exp: int64Ptr(0)}    // level 1
	client.Profiles["c"] = &app.Profile{Exp: int64Ptr(400)}  // level 2
	client.Profiles["D"] = &app.Profile{Exp: int64Ptr(1000)} // level 3
	client.Profiles["nil_exp"] = &app.Profile{}
	client.Errors["ghost"] = bestiary.ErrProfileNotFound
	client.Errors["down"] = &bestiary.FetchError{Username: "down", Attempts: 3, Err: errors.New("connection refused")}

	entries, skipped, err := builder.Build(context.Background(), []string{"b", "a", "ghost", "c", "down", "D", "nil_exp"})
	require.NoError(t, err)

	var order []string
	for _, e := range entries {
		order = append(order, e.Name)
	}
	assert.Equal(t, []string{"D", "b", "c", "nil_exp", "a"}, order)
	assert.EqualValues(t, 1, entries[3].Level)
	assert.Equal(t, []string{"ghost", "down"}, skipped)

	messages := builder.errors.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, "[2026-10-14 18:30:00] No profile data for 'ghost'. Skipping this name.", messages[0])
	assert.Contains(t, messages[1], "all 3 attempts failed for 'down'")
}

func TestLeaderboardRun(t *testing.T) {
	builder, client, cfg := newLeaderboardFixture(t)

	client.Profiles["alice"] = &app.Profile{Exp: int64Ptr(1250), PlayCount: int64Ptr(340), Shell: int64Ptr(7)}
	client.Profiles["bob"] = &app.Profile{Exp: int64Ptr(2000)}
	writeLines(t, cfg.BestPlayersFile, "alice\n\nbob\nalice\n")

	result, err := builder.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(cfg.OutputDir, "Rankings (2026-10-14_183000_UTC).txt"), result.Path)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, "bob", result.Entries[0].Name)
	assert.Equal(t, []string{"alice", "bob"}, client.FetchCalls)
	assert.Empty(t, result.Errors)

	table := readFile(t, result.Path)
	assert.Contains(t, table, "|[https://bestiaryarena.com/profile/bob bob]\n|6\n")
	assert.Contains(t, table, "|[https://bestiaryarena.com/profile/alice alice]\n|4\n|340\n|0\n|0\n|7\n|N/A\n")
	assert.Contains(t, table, "Updated (2026-10-14 18:30:00 UTC+0)")
	assert.Less(t, strings.Index(table, "bob bob"), strings.Index(table, "alice alice"))

	// no errors, no error log
	_, statErr := os.Stat(cfg.ErrorLogFile)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLeaderboardRunWritesErrorLog(t *testing.T) {
	builder, client, cfg := newLeaderboardFixture(t)

	client.Profiles["ok"] = &app.Profile{}
	client.Errors["bad"] = &bestiary.FetchError{Username: "bad", Attempts: 3, Err: errors.New("timeout")}
	writeLines(t, cfg.BestPlayersFile, "ok\nbad\n")

	result, err := builder.Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, result.Entries, 1)
	assert.Equal(t, []string{"bad"}, result.Skipped)
	assert.Contains(t, readFile(t, cfg.ErrorLogFile), "all 3 attempts failed for 'bad': timeout. Skipping this name.")
}

func TestLeaderboardRunMissingNamesFile(t *testing.T) {
	builder, client, cfg := newLeaderboardFixture(t)

	result, err := builder.Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, result.Path)
	assert.Empty(t, client.FetchCalls)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "was not found")
	assert.Contains(t, readFile(t, cfg.ErrorLogFile), "was not found")
}

func TestLeaderboardRunEmptyNamesFile(t *testing.T) {
	builder, client, cfg := newLeaderboardFixture(t)
	writeLines(t, cfg.BestPlayersFile, "\n\n")

	result, err := builder.Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, result.Path)
	assert.Empty(t, client.FetchCalls)
}

func TestLeaderboardRunCancelled(t *testing.T) {
	builder, client, cfg := newLeaderboardFixture(t)
	client.Profiles["a"] = &app.Profile{}
	writeLines(t, cfg.BestPlayersFile, "a\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := builder.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// recordingErrorLog keeps messages without timestamps or files
type recordingErrorLog struct {
	messages     []string
	writtenPaths []string
}

func (r *recordingErrorLog) Add(format string, args ...interface{}) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func (r *recordingErrorLog) Messages() []string { return r.messages }

func (r *recordingErrorLog) Len() int { return len(r.messages) }

func (r *recordingErrorLog) WriteFile(path string) error {
	r.writtenPaths = append(r.writtenPaths, path)
	return nil
}

func TestLeaderboardRunWithCustomErrorLog(t *testing.T) {
	cfg := newTestConfig(t.TempDir())
	client := mocks.NewMockProfileClient()
	client.Errors["ghost"] = bestiary.ErrProfileNotFound
	writeLines(t, cfg.BestPlayersFile, "ghost\n")

	errorLog := &recordingErrorLog{}
	var builder LeaderboardBuilderInterface = NewLeaderboardBuilder(client, wikitext.NewRenderer(cfg.ProfileURL), errorLog, cfg)

	result, err := builder.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"No profile data for 'ghost'. Skipping this name."}, result.Errors)
	assert.Equal(t, []string{cfg.ErrorLogFile}, errorLog.writtenPaths)
}
