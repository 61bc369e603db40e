// Package config resolves the CLI's positional argument and flags,
// overlaying environment variables via viper the way the teacher's
// config.NewConfig binds POSTGRES_*/OUTBOX_* env vars onto an explicit
// struct.
package config

import (
	"errors"
	"runtime"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultReceiveTimeoutMS = 10000

	logLocationArg = "log-location"
	benchmarkFlag  = "benchmark"
	verboseFlag    = "verbose"
	workersFlag    = "workers"
	timeoutFlag    = "timeout-ms"

	workersEnv = "COUNTER_WORKERS"
	timeoutEnv = "COUNTER_TIMEOUT_MS"
)

// ErrMissingLogLocation is returned when the required positional
// argument is absent.
var ErrMissingLogLocation = errors.New("log-location argument is required")

// Config holds everything Runtime Assembly (C7) needs to start a run.
type Config struct {
	LogLocation    string
	Benchmark      bool
	Verbose        bool
	Workers        int
	ReceiveTimeout time.Duration
}

// Parse reads flags out of args (pass os.Args[1:] in production) and
// overlays COUNTER_WORKERS / COUNTER_TIMEOUT_MS from the environment
// via viper, following the teacher's BindEnv pattern.
func Parse(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("counter", pflag.ContinueOnError)
	benchmark := fs.BoolP(benchmarkFlag, "b", false, "time the run and print a summary at the end")
	verbose := fs.BoolP(verboseFlag, "v", false, "enable debug-level diagnostics")
	workers := fs.Int(workersFlag, 0, "number of file-aggregator workers (default: logical CPU count)")
	timeoutMS := fs.Int(timeoutFlag, defaultReceiveTimeoutMS, "worker receive timeout, in milliseconds, before a diagnostic is logged")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() < 1 {
		return nil, ErrMissingLogLocation
	}

	v := viper.New()
	v.SetDefault("workers", *workers)
	v.SetDefault("timeout_ms", *timeoutMS)
	_ = v.BindEnv("workers", workersEnv)
	_ = v.BindEnv("timeout_ms", timeoutEnv)

	resolvedWorkers := v.GetInt("workers")
	if resolvedWorkers <= 0 {
		resolvedWorkers = runtime.NumCPU()
	}

	return &Config{
		LogLocation:    fs.Arg(0),
		Benchmark:      *benchmark,
		Verbose:        *verbose,
		Workers:        resolvedWorkers,
		ReceiveTimeout: time.Duration(v.GetInt("timeout_ms")) * time.Millisecond,
	}, nil
}
