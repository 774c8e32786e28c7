package middleware

import (
	"net/http"
	"time"

	"health-assessment-service/pkg/response"

	"github.com/go-chi/httprate"
)

// AuthRateLimit caps sign-in and sign-up attempts per client IP. A
// non-positive limit disables it.
func AuthRateLimit(requestsPerMinute int) func(http.Handler) http.Handler {
	if requestsPerMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		requestsPerMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			response.Error(w, http.StatusTooManyRequests, "Too many requests, please slow down", nil)
		}),
	)
}
