// Package app wires C1-C6 together: Runtime Assembly (C7). It builds
// the worker pool, runs the controller, and emits the final table —
// the only layer in this repo that owns the worker goroutines (through
// an errgroup.Group) and the inbound/outbound channel topology.
package app

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/ereichert/counter/internal/aggregate"
	"github.com/ereichert/counter/internal/config"
	"github.com/ereichert/counter/internal/discovery"
	"github.com/ereichert/counter/internal/metrics"
	"github.com/ereichert/counter/internal/pipeline"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Run executes one full pipeline invocation: discover files, fan them
// out to cfg.Workers file aggregators, merge their results, and write
// the reduced table to stdout. It returns an error only when C1 (path
// discovery) fails; every other failure mode is non-fatal and only
// ever reaches stderr via logger.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger, stdout io.Writer) error {
	runID := uuid.New()
	logger = logger.With(zap.String("run_id", runID.String()))

	start := time.Now()
	run := metrics.NewRun()

	files, err := discovery.List(discovery.DefaultWalker, cfg.LogLocation, logger)
	if err != nil {
		return fmt.Errorf("listing log files under %q: %w", cfg.LogLocation, err)
	}
	logger.Debug("discovered files", zap.Int("count", len(files)))

	global := runPipeline(ctx, cfg, logger, run, files)

	emitRows(stdout, global.Aggregation)

	if cfg.Benchmark {
		emitBenchmarkSummary(stdout, runID, len(files), global, time.Since(start))
	}

	return nil
}

// runPipeline builds the channel topology described in spec.md C7: one
// inbound Report channel shared by every worker, one outbound Work
// channel per worker, cfg.Workers goroutines each owning exactly one of
// those Work channels, and the controller running on the calling
// goroutine. Workers are supervised by an errgroup.Group rather than a
// bare WaitGroup so they and the controller share the group's derived
// context. Every worker goroutine returns nil, so that context is
// cancelled only when ctx itself is.
func runPipeline(ctx context.Context, cfg *config.Config, logger *zap.Logger, run *metrics.Run, files []string) pipeline.GlobalAggregation {
	reports := make(chan pipeline.Report)
	workChans := make([]chan pipeline.Work, cfg.Workers)
	workSenders := make([]chan<- pipeline.Work, cfg.Workers)

	g, gctx := errgroup.WithContext(ctx)
	for id := 0; id < cfg.Workers; id++ {
		workChans[id] = make(chan pipeline.Work)
		workSenders[id] = workChans[id]

		worker := pipeline.NewWorker(id, pipeline.DefaultRecordParser, pipeline.DefaultFileOpener, cfg.ReceiveTimeout, logger, run)

		id := id
		g.Go(func() error {
			worker.Run(gctx, workChans[id], reports)
			return nil
		})
	}

	controller := pipeline.NewController(logger)
	global := controller.Run(gctx, files, reports, workSenders)

	_ = g.Wait()
	return global
}

// emitRows writes one CSV-like line per aggregate entry, sorted for
// reproducible output (spec.md leaves row order unspecified, but a
// deterministic order makes diffing runs possible for anyone piping
// this into a file).
func emitRows(w io.Writer, agg aggregate.Aggregate) {
	keys := lo.Keys(agg)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].SystemName != keys[j].SystemName {
			return keys[i].SystemName < keys[j].SystemName
		}
		if keys[i].Day != keys[j].Day {
			return keys[i].Day.String() < keys[j].Day.String()
		}
		return keys[i].ClientIP.String() < keys[j].ClientIP.String()
	})

	for _, key := range keys {
		fmt.Fprintf(w, "%s,%s,%s,%d\n", key.SystemName, key.Day, key.ClientIP, agg[key])
	}
}

func emitBenchmarkSummary(w io.Writer, runID uuid.UUID, numFiles int, global pipeline.GlobalAggregation, elapsed time.Duration) {
	fmt.Fprintf(
		w,
		"Processed %d files having %d records in %d milliseconds and produced %d aggregates. (run %s)\n",
		numFiles,
		global.NumRawRecords,
		elapsed.Milliseconds(),
		len(global.Aggregation),
		runID,
	)
}
