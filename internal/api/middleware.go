package api

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

func (h *Handler) secure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hdr := w.Header()
		hdr.Set("X-Content-Type-Options", "nosniff")
		hdr.Set("X-Frame-Options", "DENY")
		hdr.Set("Referrer-Policy", "no-referrer")
		hdr.Set("Content-Security-Policy", "default-src 'self'")
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.allow(clientAddr(r)) {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// visitorLimiter hands each remote address its own token bucket.
type visitorLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newVisitorLimiter(perMinute int) *visitorLimiter {
	if perMinute <= 0 {
		perMinute = 120
	}
	return &visitorLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    perMinute,
	}
}

func (vl *visitorLimiter) allow(addr string) bool {
	vl.mu.Lock()
	defer vl.mu.Unlock()

	v, ok := vl.visitors[addr]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(vl.limit, vl.burst)}
		vl.visitors[addr] = v
		if len(vl.visitors) > 4096 {
			vl.evictLocked()
		}
	}
	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

// evictLocked drops visitors idle for more than ten minutes.
func (vl *visitorLimiter) evictLocked() {
	cutoff := time.Now().Add(-10 * time.Minute)
	for addr, v := range vl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(vl.visitors, addr)
		}
	}
}
