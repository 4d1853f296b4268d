package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand(t *testing.T) {
	opts := &Options{}
	root := NewRootCommand(opts)

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.ElementsMatch(t, []string{"qualify", "rankings"}, names)

	require.NoError(t, root.ParseFlags([]string{"--no-pause"}))
	assert.True(t, opts.NoPause)
}

func TestRootRejectsArguments(t *testing.T) {
	root := NewRootCommand(&Options{})
	root.SetArgs([]string{"qualify", "extra"})
	root.SetOut(&bytes.Buffer{})

	assert.Error(t, root.Execute())
}

func TestRankingsCommandWithoutNamesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BEST_PLAYERS_FILE", filepath.Join(dir, "missing.txt"))
	t.Setenv("ERROR_LOG_FILE", filepath.Join(dir, "error_log.txt"))
	t.Setenv("OUTPUT_DIR", dir)
	t.Setenv("MIN_MAPS", "")

	root := NewRootCommand(&Options{})
	root.SetArgs([]string{"rankings"})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(dir, "error_log.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "was not found")
}

func TestQualifyCommandInvalidConfig(t *testing.T) {
	t.Setenv("MIN_MAPS", "lots")

	root := NewRootCommand(&Options{})
	root.SetArgs([]string{"qualify"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MIN_MAPS")
}

func TestWaitForEnter(t *testing.T) {
	var out bytes.Buffer
	WaitForEnter(strings.NewReader("\n"), &out)
	assert.Equal(t, "Press Enter to exit...", out.String())

	// EOF does not block
	WaitForEnter(strings.NewReader(""), &out)
}
