package main

import (
	"context"
	"fmt"
	"os"

	"bestiary_rankings/internal/app"
	"bestiary_rankings/internal/cli"

	"github.com/rs/zerolog/log"
)

func main() {
	app.SetupEnvironment()

	opts := &cli.Options{}
	code := run(opts)

	if !opts.NoPause {
		cli.WaitForEnter(os.Stdin, os.Stdout)
	}
	os.Exit(code)
}

// run executes the selected command and converts errors and panics into
// an exit code.
func run(opts *cli.Options) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Unexpected error: %v\n", r)
			code = 1
		}
	}()

	ctx := context.Background()

	if err := cli.NewRootCommand(opts).ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("Command failed")
		return 1
	}
	return 0
}
