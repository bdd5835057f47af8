package middleware

import (
	"net/http"

	"github.com/leonf08/building-metrics.git/internal/services"
)

// IPCheck rejects requests whose X-Real-IP is outside the trusted subnet.
// The metrics API sits behind a proxy that sets the header, so a missing or
// malformed address is a bad request. A nil checker lets every request through.
func IPCheck(ip services.IPChecker) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ip != nil {
				addr := r.Header.Get("X-Real-IP")
				trusted, err := ip.IsTrusted(addr)
				if err != nil {
					http.Error(w, err.Error(), http.StatusBadRequest)
					return
				}

				if !trusted {
					http.Error(w, "untrusted IP", http.StatusForbidden)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
