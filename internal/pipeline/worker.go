package pipeline

import (
	"bufio"
	"context"
	"io"
	"strings"
	"time"

	"github.com/ereichert/counter/internal/aggregate"
	"github.com/ereichert/counter/internal/metrics"
	"go.uber.org/zap"
)

// DefaultReceiveTimeout is how long a worker waits for a Work message
// before logging a diagnostic and looping again. Purely for
// observability; it never causes the worker to give up.
const DefaultReceiveTimeout = 10 * time.Second

// Worker is a single file-aggregator: it owns its local aggregate
// outright and only ever hands it off once, in a final Report, when it
// shuts down. No worker ever reads another worker's state.
type Worker struct {
	id      int
	parser  RecordParser
	opener  FileOpener
	timeout time.Duration
	logger  *zap.Logger
	metrics *metrics.Run
}

// NewWorker builds a worker identified by id in [0, N). parser and
// opener are the record-parsing and file-opening collaborators; pass
// DefaultRecordParser and DefaultFileOpener in production. run may be
// nil, in which case no metrics are recorded.
func NewWorker(id int, parser RecordParser, opener FileOpener, timeout time.Duration, logger *zap.Logger, run *metrics.Run) *Worker {
	if timeout <= 0 {
		timeout = DefaultReceiveTimeout
	}
	return &Worker{id: id, parser: parser, opener: opener, timeout: timeout, logger: logger, metrics: run}
}

// Run drives the worker's state machine: send Ready, process filenames
// as they arrive, and send exactly one Final when Done arrives. If in
// is closed or ctx is cancelled first, Run returns without sending
// Final. in must be a channel only this worker reads; out is the shared
// channel back to the controller.
func (w *Worker) Run(ctx context.Context, in <-chan Work, out chan<- Report) {
	local := FileAggregation{Aggregation: aggregate.New()}

	sendReady := func() bool {
		select {
		case <-ctx.Done():
			return false
		case out <- Report{Kind: ReportReady, WorkerID: w.id}:
			return true
		}
	}

	if !sendReady() {
		return
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Warn("worker stopping: context cancelled", zap.Int("worker", w.id))
			return
		case work, ok := <-in:
			if !ok {
				w.logger.Error("worker stopping: inbound channel disconnected", zap.Int("worker", w.id))
				return
			}
			switch work.Kind {
			case WorkFilename:
				w.processFile(work.Filename, &local)
				if !sendReady() {
					return
				}
			case WorkDone:
				select {
				case <-ctx.Done():
				case out <- Report{
					Kind:          ReportFinal,
					WorkerID:      w.id,
					NumRawRecords: local.NumRawRecords,
					Aggregation:   local.Aggregation,
				}:
				}
				return
			}
		case <-time.After(w.timeout):
			w.logger.Debug("worker idle: no work received within timeout", zap.Int("worker", w.id), zap.Duration("timeout", w.timeout))
		}
	}
}

// processFile opens path, reads it line by line, and folds every
// parseable record into local.Aggregation. A file that can't be opened
// is logged and skipped; it contributes nothing to local.NumRawRecords.
// A line that fails to read (not merely fails to parse) is recorded by
// number and reported once, after EOF, rather than aborting the file.
func (w *Worker) processFile(path string, local *FileAggregation) {
	w.logger.Debug("processing file", zap.String("file", path))
	start := time.Now()

	f, err := w.opener.Open(path)
	if err != nil {
		w.logger.Error("failed to open file", zap.String("file", path), zap.Error(err))
		return
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	lineNo := 0
	var badLines []int
	var attempted uint64

	for {
		line, readErr := reader.ReadString('\n')
		if len(line) == 0 && readErr == io.EOF {
			break
		}
		lineNo++

		if readErr != nil && readErr != io.EOF {
			badLines = append(badLines, lineNo)
			local.NumRawRecords++
			attempted++
			continue
		}

		local.NumRawRecords++
		attempted++
		trimmed := strings.TrimRight(line, "\r\n")
		rec, parseErr := w.parser.ParseRecord(trimmed)
		if parseErr != nil {
			w.logger.Debug("discarding unparseable record", zap.String("file", path), zap.String("raw", trimmed))
			if w.metrics != nil {
				w.metrics.AddParseFailures(1)
			}
		} else {
			local.Aggregation.Add(aggregate.DeriveKey(rec))
		}

		if readErr == io.EOF {
			break
		}
	}

	if len(badLines) > 0 {
		w.logger.Warn("unreadable lines in file", zap.String("file", path), zap.Ints("lines", badLines))
	}

	if w.metrics != nil {
		w.metrics.AddLinesAttempted(attempted)
		w.metrics.ObserveFile(time.Since(start))
	}
}
