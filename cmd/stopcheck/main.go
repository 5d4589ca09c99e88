// Package main is the entry point for the stopcheck CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/stopcheck/cmd/stopcheck/commands"
	"github.com/thoreinstein/stopcheck/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		// The command already emitted its diagnostics; only a
		// suggestion, if any, is still worth printing.
		if exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}

	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(errors.ExitUser)
}
