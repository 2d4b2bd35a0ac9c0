package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/inkpost/inkpost-api/internal/api/shared"
	"github.com/inkpost/inkpost-api/internal/ratelimit"
)

// RateLimit applies the sliding window limiter to the wrapped handler.
// Apply it to the generation route only, so other methods and paths never
// consume a rate-limit slot.
//
// The client key comes from the X-Forwarded-For header when present, else
// the connection's remote address. The header is spoofable; this is a
// best-effort abuse guard, not a security boundary.
func RateLimit(limiter *ratelimit.SlidingWindow) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(clientKey(r)) {
				shared.RespondWithError(w, r, http.StatusTooManyRequests,
					"Too many requests. Please try again later.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientKey derives the rate-limit key for a request.
func clientKey(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// First entry is the originating client when proxies append.
		if first, _, found := strings.Cut(forwarded, ","); found {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(forwarded)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
