// Package metrics defines the Prometheus metrics of the testhub client.
//
// The client is short-lived, so nothing is scraped: the CLI flushes the
// default registry to a node_exporter textfile with WriteTextfile when
// TESTHUB_METRICS_TEXTFILE is set.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "testhub"

// Outcome label values for RequestsTotal.
const (
	OutcomeSuccess    = "success"
	OutcomeValidation = "validation_error"
	OutcomeAPI        = "api_error"
	OutcomeNetwork    = "network_error"
	OutcomeStorage    = "storage_error"
)

// Result label values for ProfileLoadsTotal.
const (
	ProfileStats       = "stats"
	ProfileNoStats     = "no_stats"
	ProfileFetchFailed = "fetch_failed"
	ProfileDiscarded   = "discarded"
	ProfileStatic      = "static"
)

// RequestsTotal counts backend exchanges and their pre-flight rejections.
// Labels:
//   - operation: "register", "login" or "assigned_tests"
//   - outcome: one of the Outcome* constants
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "client",
		Name:      "requests_total",
		Help:      "Total number of backend exchanges attempted by the client, by outcome.",
	},
	[]string{"operation", "outcome"},
)

// RequestDuration measures exchanges that reached the network.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "client",
		Name:      "request_duration_seconds",
		Help:      "Duration of backend exchanges, from request to decoded response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// ProfileLoadsTotal counts profile panel loads.
// Label:
//   - result: one of the Profile* constants
var ProfileLoadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_loads_total",
		Help:      "Total number of profile panel loads, by result.",
	},
	[]string{"result"},
)

// WriteTextfile writes the default registry to path in the text exposition
// format. The write is atomic.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
