package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus instruments for the booking funnel.
type Metrics struct {
	SearchesTotal      prometheus.Counter
	SelectionsTotal    prometheus.Counter
	ConfirmationsTotal prometheus.Counter
	EmptyResults       *prometheus.CounterVec
	FilterDuration     prometheus.Histogram
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		SearchesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "The total number of search submissions",
		}),
		SelectionsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selections_total",
			Help:      "The total number of flight picks",
		}),
		ConfirmationsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "confirmations_total",
			Help:      "The total number of confirmed bookings",
		}),
		EmptyResults: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "empty_results_total",
			Help:      "Empty candidate lists by reason",
		}, []string{"reason"}),
		FilterDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "filter_duration_seconds",
			Help:      "Time spent in the filter-and-rank pass",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
