// Package metrics exposes prometheus instruments for the ingestion pipeline
// and the HTTP boundary.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the collectors shared by the loader, the service layer
// and the HTTP transport.
type Metrics struct {
	LoadsTotal    prometheus.Counter
	LoadFailures  prometheus.Counter
	MemoHits      prometheus.Counter
	MemoMisses    prometheus.Counter
	RowsParsed    prometheus.Counter
	RowsDropped   prometheus.Counter
	LoadDuration  prometheus.Histogram
	HTTPDurations *prometheus.HistogramVec
}

// New registers all collectors against reg and returns the bundle.
// Pass prometheus.DefaultRegisterer outside of tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		LoadsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "bids_loads_total",
			Help: "Number of bid sheet ingestion runs.",
		}),
		LoadFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "bids_load_failures_total",
			Help: "Number of ingestion runs that failed fatally.",
		}),
		MemoHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "bids_memo_hits_total",
			Help: "Ingestion results served from the content-hash memo.",
		}),
		MemoMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "bids_memo_misses_total",
			Help: "Ingestion runs that recomputed the pipeline.",
		}),
		RowsParsed: factory.NewCounter(prometheus.CounterOpts{
			Name: "bids_rows_parsed_total",
			Help: "Raw rows read from bid sheets.",
		}),
		RowsDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "bids_rows_dropped_total",
			Help: "Rows dropped by the validity filter.",
		}),
		LoadDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "bids_load_duration_seconds",
			Help:    "Wall time of full ingestion runs.",
			Buckets: prometheus.DefBuckets,
		}),
		HTTPDurations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bids_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}
