// Package metrics instruments a single run with Prometheus collectors.
// There is no long-lived scrape endpoint here — this is a batch CLI,
// not a service. The collectors are updated by the workers but are not
// read anywhere: --benchmark's summary line is computed from the file
// list and the controller's GlobalAggregation, not from these counters.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Run holds the collectors for one invocation of the program.
type Run struct {
	registry      *prometheus.Registry
	filesTotal    prometheus.Counter
	linesTotal    prometheus.Counter
	parseFailures prometheus.Counter
	fileDuration  prometheus.Histogram
}

// NewRun builds a fresh set of collectors registered to their own
// registry, so repeated runs in the same process (as in tests) never
// collide on global registration.
func NewRun() *Run {
	registry := prometheus.NewRegistry()

	r := &Run{
		registry: registry,
		filesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "counter_files_processed_total",
			Help: "Number of .log files opened and processed.",
		}),
		linesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "counter_lines_attempted_total",
			Help: "Number of lines attempted across all processed files.",
		}),
		parseFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "counter_parse_failures_total",
			Help: "Number of lines that failed to parse as ELB records.",
		}),
		fileDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "counter_file_duration_seconds",
			Help:    "Wall-clock time spent processing one file.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	registry.MustRegister(r.filesTotal, r.linesTotal, r.parseFailures, r.fileDuration)
	return r
}

// ObserveFile records one file's processing duration and increments
// the file counter.
func (r *Run) ObserveFile(d time.Duration) {
	r.filesTotal.Inc()
	r.fileDuration.Observe(d.Seconds())
}

// AddLinesAttempted increments the attempted-line counter by n.
func (r *Run) AddLinesAttempted(n uint64) {
	r.linesTotal.Add(float64(n))
}

// AddParseFailures increments the parse-failure counter by n.
func (r *Run) AddParseFailures(n uint64) {
	r.parseFailures.Add(float64(n))
}
