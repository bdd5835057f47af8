package middleware

import (
	"net/http"

	"go.uber.org/ratelimit"
)

// RateLimit paces requests to at most rps per second, waiting instead of rejecting.
// Non-positive rps disables the limit.
func RateLimit(rps int) func(next http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	rl := ratelimit.New(rps)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rl.Take()
			next.ServeHTTP(w, r)
		})
	}
}
