package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/timesince/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// ExitErrors were already reported through the command's output
		// writers; just carry their code.
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		// Anything else came from cobra itself (unknown flags, bad
		// usage) and counts as a command error.
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCommandError)
	}
}
