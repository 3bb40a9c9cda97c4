package main

import (
	"context"
	"os"

	"bithacks/cmd"
	applog "bithacks/internal/log"
	"bithacks/pkg/build"
)

// main is the entry point for the bithacks command line.
//
// Build metadata is checked first. A development build without -ldflags
// still runs with its defaults, so a missing field is only logged.
// The command tree then loads configuration and dispatches the
// subcommand; any error it returns ends the process with status 1.
func main() {
	// Initialize build information including version, commit hash, and build time
	if err := build.Initialize(); err != nil {
		applog.Debugf("build: %v", err)
	}

	if err := cmd.Execute(context.Background()); err != nil {
		applog.Errorf("%v", err)
		os.Exit(1)
	}
}
