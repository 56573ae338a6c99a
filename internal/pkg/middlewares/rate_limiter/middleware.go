package rate_limiter

import (
	"net/http"
	"strconv"

	"matching/internal/pkg/middlewares"
	"matching/pkg/logger"
)

const tooManyRequestsBody = `{"error":"Too Many Requests","message":"Rate limit exceeded. Try again later."}`

// limit только для заголовка X-RateLimit-Limit
func Middleware(log handlerLogger, limit int, rlimiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rlimiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := middlewares.RouteTemplate(r)
			log.Warn("rate limit exceeded",
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			)

			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			_, err := w.Write([]byte(tooManyRequestsBody))
			if err != nil {
				log.Error("failed to write rate limit response",
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				)
			}
		})
	}
}
