package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	RowsProcessed   prometheus.Counter
	RowsExcluded    prometheus.Counter
	GroupsFormed    prometheus.Counter
	SingletonGroups prometheus.Counter
	InsertsEmitted  prometheus.Counter
	UpdatesEmitted  prometheus.Counter
	RunDuration     prometheus.Histogram
	ErrorsCount     *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		RowsProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_processed_total",
			Help:      "The total number of booking rows fetched for grouping",
		}),
		RowsExcluded: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_excluded_total",
			Help:      "The total number of rows skipped on extraction failure",
		}),
		GroupsFormed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "groups_formed_total",
			Help:      "The total number of proximity groups formed",
		}),
		SingletonGroups: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "singleton_groups_total",
			Help:      "The total number of size-1 groups left untouched",
		}),
		InsertsEmitted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inserts_emitted_total",
			Help:      "The total number of consolidated rows inserted",
		}),
		UpdatesEmitted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "updates_emitted_total",
			Help:      "The total number of rows marked superseded",
		}),
		RunDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Time taken for one grouping pass",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
