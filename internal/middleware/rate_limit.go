package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/baharkarakas/marina-backend/internal/api/httpx"
)

// RateLimit applies one token bucket to the whole server. rps <= 0 disables it.
func RateLimit(rps int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	limiter := rate.NewLimiter(rate.Limit(rps), rps)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				httpx.WriteError(w, http.StatusTooManyRequests, httpx.APIError{
					Message: "Trop de requêtes",
					Code:    "rate_limited",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
