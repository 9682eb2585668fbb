// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/streama/internal/config"
	"golang.org/x/time/rate"
)

// rateLimiter keeps one token bucket per client key. A bucket holds Limit
// tokens and refills one token every Window/Limit.
type rateLimiter struct {
	mu      sync.Mutex
	clients map[string]*rateClient

	every  rate.Limit
	burst  int
	window time.Duration

	lastSweep time.Time
	now       func() time.Time
}

type rateClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newRateLimiter(cfg config.RateLimit) *rateLimiter {
	limit := max(cfg.Limit, 1)
	window := cfg.Window
	if window <= 0 {
		window = time.Minute
	}

	return &rateLimiter{
		clients: make(map[string]*rateClient),
		every:   rate.Every(window / time.Duration(limit)),
		burst:   limit,
		window:  window,
		now:     time.Now,
	}
}

// allow reports whether key may issue one more request now.
func (l *rateLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	c, ok := l.clients[key]
	if !ok {
		c = &rateClient{limiter: rate.NewLimiter(l.every, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now

	return c.limiter.AllowN(now, 1)
}

// sweep drops clients idle for a whole window at most once per window.
// Their buckets are full again, so dropping them changes no decision.
func (l *rateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.window {
		return
	}
	for key, c := range l.clients {
		if now.Sub(c.lastSeen) >= l.window {
			delete(l.clients, key)
		}
	}
	l.lastSweep = now
}

// withRateLimit answers 429 once a client IP exhausts its bucket.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	retryAfter := strconv.Itoa(int(h.limiter.window.Seconds()))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.allow(clientIP(r)) {
			w.Header().Set("Retry-After", retryAfter)
			h.writeError(w, r, ErrTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP is the host part of the peer address. Forwarding headers are
// not trusted.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
