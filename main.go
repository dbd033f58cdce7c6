package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/swimlane/cmd"
	"github.com/thenoetrevino/swimlane/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Commands that already reported their error return a CodedError
		var exitErr *cli.CodedError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
