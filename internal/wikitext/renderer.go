// Package wikitext renders the leaderboard as a fandom wiki table.
package wikitext

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"bestiary_rankings/internal/app"
	"bestiary_rankings/internal/domain/player"
)

const (
	// FooterTimeFormat is the UTC timestamp shown under the table; the
	// offset suffix is appended literally.
	FooterTimeFormat = "2006-01-02 15:04:05"
	// FileTimeFormat is the UTC timestamp embedded in output file names
	FileTimeFormat = "2006-01-02_150405_UTC"
)

const header = `This table presents current rankings for all characters who have completed all 53 [[:Category:Maps|maps]], sorted by levels. See documentation [https://github.com/styrserver/BestiaryArenaRankings here].
{| class="sortable fandom-table"
!'''Username'''
!'''Level'''
!<abbr title="Successful runs">[[File:Match-count.png|frameless]]</abbr>
!<abbr title="Rank Points">[[File:Grade.png|frameless]]</abbr>
!<abbr title="Time Sum">[[File:Speed.png|frameless]]</abbr>
!<abbr title="Daily Seashell">[[File:Shell-count.png|frameless]]</abbr>
!<abbr title="Hunting tasks">[[File:Task-count.png|frameless]]</abbr>
!<abbr title="Perfect Creatures">[[File:Enemy.png|frameless]]</abbr>
!<abbr title="BIS Equipment">[[File:Equips.png|frameless]]</abbr>
!<abbr title="Bag Outfits">[[File:Mini-outfitbag.png|frameless]]</abbr>
|-
`

// FileName returns the output file name for a table generated at t
func FileName(t time.Time) string {
	return fmt.Sprintf("Rankings (%s).txt", t.UTC().Format(FileTimeFormat))
}

// FooterTimestamp formats t for the table footer
func FooterTimestamp(t time.Time) string {
	return t.UTC().Format(FooterTimeFormat) + " UTC+0"
}

// Renderer writes leaderboard tables
type Renderer struct {
	profileURL string
}

// NewRenderer creates a renderer that links usernames under profileURL
func NewRenderer(profileURL string) *Renderer {
	return &Renderer{profileURL: profileURL}
}

// Render writes the table for entries, in the given order, to w.
func (r *Renderer) Render(w io.Writer, entries []app.RankingEntry, updated time.Time) error {
	bw := bufio.NewWriter(w)

	if _, err := io.WriteString(bw, header); err != nil {
		return err
	}

	for _, entry := range entries {
		fmt.Fprintf(bw, "|[%s%s %s]\n", r.profileURL, entry.Name, entry.Name)
		fmt.Fprintf(bw, "|%s\n", strconv.FormatInt(entry.Level, 10))
		for _, column := range player.Columns(entry) {
			fmt.Fprintf(bw, "|%s\n", column)
		}
		io.WriteString(bw, "|-\n")
	}

	io.WriteString(bw, "|}\n")
	fmt.Fprintf(bw, "''<small>Updated (%s).</small>''\n", FooterTimestamp(updated))
	io.WriteString(bw, "[[Category:Highscores]]\n")

	return bw.Flush()
}

// WriteFile renders the table into dir under FileName(updated) and returns
// the path written.
func (r *Renderer) WriteFile(dir string, entries []app.RankingEntry, updated time.Time) (string, error) {
	path := filepath.Join(dir, FileName(updated))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := r.Render(file, entries, updated); err != nil {
		file.Close()
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}

	return path, nil
}
