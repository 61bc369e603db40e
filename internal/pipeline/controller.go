package pipeline

import (
	"context"

	"github.com/ereichert/counter/internal/aggregate"
	"go.uber.org/zap"
)

// Controller dispatches filenames to idle workers and merges their
// final aggregates into one global result. It is the only place in the
// pipeline where data from different workers meets; everything before
// that point is workers acting on state they alone own.
type Controller struct {
	logger *zap.Logger
}

// NewController builds a controller that logs to logger.
func NewController(logger *zap.Logger) *Controller {
	return &Controller{logger: logger}
}

// Run dispatches filenames (consumed as a LIFO stack, matching the
// original implementation's ordering — callers must not rely on this)
// to len(out) workers as they signal readiness on in, and returns once
// every worker has sent its Final report. Order of dispatch never
// affects the returned aggregate's value.
func (c *Controller) Run(ctx context.Context, filenames []string, in <-chan Report, out []chan<- Work) GlobalAggregation {
	stack := append([]string(nil), filenames...)
	remainingWorkers := len(out)

	globalAgg := aggregate.New()
	var globalRawRecords uint64

	for remainingWorkers > 0 {
		select {
		case <-ctx.Done():
			c.logger.Warn("controller stopping: context cancelled", zap.Int("remaining_workers", remainingWorkers))
			return GlobalAggregation{NumRawRecords: globalRawRecords, Aggregation: globalAgg}
		case report, ok := <-in:
			if !ok {
				c.logger.Error("controller's inbound channel disconnected; a worker may be stuck")
				return GlobalAggregation{NumRawRecords: globalRawRecords, Aggregation: globalAgg}
			}

			switch report.Kind {
			case ReportReady:
				if len(stack) > 0 {
					next := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					c.dispatch(ctx, out[report.WorkerID], Work{Kind: WorkFilename, Filename: next})
				} else {
					c.dispatch(ctx, out[report.WorkerID], Work{Kind: WorkDone})
				}
			case ReportFinal:
				globalRawRecords += report.NumRawRecords
				aggregate.Merge(report.Aggregation, globalAgg)
				remainingWorkers--
			}
		}
	}

	return GlobalAggregation{NumRawRecords: globalRawRecords, Aggregation: globalAgg}
}

func (c *Controller) dispatch(ctx context.Context, out chan<- Work, w Work) {
	select {
	case <-ctx.Done():
	case out <- w:
	}
}
