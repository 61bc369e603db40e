// Package pipeline implements the aggregation controller (C6) and the
// file-aggregator workers (C5) it dispatches work to. The two exchange
// messages over plain Go channels; neither ever touches the other's
// aggregate directly.
package pipeline

import "github.com/ereichert/counter/internal/aggregate"

// WorkKind discriminates the two messages a controller can send a worker.
type WorkKind int

const (
	// WorkFilename asks the worker to process one more file.
	WorkFilename WorkKind = iota
	// WorkDone tells the worker no more files are coming.
	WorkDone
)

// Work is a message sent from the controller to exactly one worker's
// inbound channel.
type Work struct {
	Kind     WorkKind
	Filename string
}

// ReportKind discriminates the two messages a worker can send the
// controller.
type ReportKind int

const (
	// ReportReady signals that the worker has capacity for one more file.
	ReportReady ReportKind = iota
	// ReportFinal transfers ownership of a worker's local aggregate to
	// the controller; it is the last message a worker ever sends.
	ReportFinal
)

// Report is a message sent from a worker to the controller's single
// inbound channel, tagged with the sending worker's id.
type Report struct {
	Kind          ReportKind
	WorkerID      int
	NumRawRecords uint64
	Aggregation   aggregate.Aggregate
}

// FileAggregation is a worker's running local result across every file
// it has processed so far: the number of lines attempted, and the
// aggregate folded from whichever of them parsed. A worker holds
// exactly one for its entire lifetime and hands it off, read-only from
// that point on, inside its Final Report.
type FileAggregation struct {
	NumRawRecords uint64
	Aggregation   aggregate.Aggregate
}

// GlobalAggregation is the controller's result after every worker has
// sent its Final report.
type GlobalAggregation struct {
	NumRawRecords uint64
	Aggregation   aggregate.Aggregate
}
