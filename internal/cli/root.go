// Package cli wires the qualification filter and the leaderboard renderer
// into cobra commands.
package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Options holds flags shared by all commands
type Options struct {
	NoPause bool
}

// NewRootCommand builds the command tree
func NewRootCommand(opts *Options) *cobra.Command {
	root := &cobra.Command{
		Use:           "bestiary-rankings",
		Short:         "Filters Bestiary Arena players and renders the highscore table.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&opts.NoPause, "no-pause", false, "exit without waiting for Enter")

	root.AddCommand(newQualifyCommand())
	root.AddCommand(newRankingsCommand())

	return root
}

// WaitForEnter prompts on w and blocks until a line (or EOF) is read from r.
func WaitForEnter(r io.Reader, w io.Writer) {
	fmt.Fprint(w, "Press Enter to exit...")
	_, _ = bufio.NewReader(r).ReadString('\n')
}
