package match

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PairsScoredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_pairs_scored_total",
			Help: "Total number of shipment/trip pairs scored",
		},
		[]string{"direction"},
	)

	PairsAcceptedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_pairs_accepted_total",
			Help: "Total number of scored pairs that passed the acceptance threshold",
		},
		[]string{"direction"},
	)

	MatchScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_score",
			Help:    "Distribution of total match scores",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		},
	)

	ScoringDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "matching_scoring_duration_seconds",
			Help:    "Duration of scoring one listing against all candidates",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"direction"},
	)
)
