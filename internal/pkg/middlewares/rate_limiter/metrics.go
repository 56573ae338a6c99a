package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RateLimitExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "matching",
		Subsystem: "http",
		Name:      "rate_limited_requests_total",
		Help:      "Requests rejected with 429 by the token bucket",
	},
	[]string{"method", "route"},
)
