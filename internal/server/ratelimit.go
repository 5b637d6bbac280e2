package server

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// clientLimiter hands out one token bucket per client IP. The bucket refills
// at the per-minute budget and allows an initial burst of the same size,
// matching the per-route limits of the original service.
type clientLimiter struct {
	mu      sync.Mutex
	perMin  int
	buckets map[string]*rate.Limiter
}

func newClientLimiter(perMin int) *clientLimiter {
	return &clientLimiter{
		perMin:  perMin,
		buckets: make(map[string]*rate.Limiter),
	}
}

func (l *clientLimiter) allow(client string) bool {
	l.mu.Lock()
	lim, ok := l.buckets[client]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(float64(l.perMin)/60.0), l.perMin)
		l.buckets[client] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}

// limit wraps a handler with a per-client request budget. Rejected requests
// get a 429 JSON body.
func (s *Server) limit(perMin int, next http.Handler) http.Handler {
	limiter := newClientLimiter(perMin)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := clientIP(r)
		if !limiter.allow(client) {
			s.logger.Warn("rate limit exceeded", "client", client, "path", r.URL.Path)
			writeJSON(w, http.StatusTooManyRequests, map[string]any{
				"status":  "error",
				"message": "Rate limit exceeded. Please try again later.",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
