// Command counter reduces a directory tree of ELB access-log files
// into a table of (day, client IP, system) counts.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ereichert/counter/internal/app"
	"github.com/ereichert/counter/internal/config"
	"github.com/ereichert/counter/internal/logging"
)

const (
	exitSuccess = 0
	exitFailure = 1
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Parse(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitFailure
	}

	logger, err := logging.New(cfg.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "can not initialize logger:", err)
		return exitFailure
	}
	defer func() { _ = logger.Sync() }()

	if err := app.Run(context.Background(), cfg, logger, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitFailure
	}

	return exitSuccess
}
