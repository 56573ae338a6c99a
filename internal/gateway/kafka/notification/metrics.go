package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PublishRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "notification_publish_retries_total",
			Help: "Total number of notification publish batches that needed a retry",
		},
	)

	PublishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "notification_publish_duration_seconds",
			Help:    "Duration of notification publishing including retries",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"result"},
	)

	PublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_published_total",
			Help: "Total number of match notifications delivered to the broker",
		},
		[]string{"recipient"},
	)
)
