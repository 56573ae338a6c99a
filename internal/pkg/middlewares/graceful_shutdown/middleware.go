package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

const retryAfterSeconds = "5"

// Middleware после отмены ongoingCtx и выставления флага отвечает 503 с Retry-After.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ongoingCtx.Err() != nil && isShuttingDown.Load() {
				w.Header().Set("Connection", "close")
				w.Header().Set("Retry-After", retryAfterSeconds)
				http.Error(w, "Service is shutting down", http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
