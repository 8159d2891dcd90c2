package handler

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// SecurityHeaders adds security response headers (CSP, X-Frame-Options, etc.)
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("X-XSS-Protection", "0")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		h.Set("Content-Security-Policy", "default-src 'self'; script-src 'self'; frame-ancestors 'none'")
		h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		next.ServeHTTP(w, r)
	})
}

// RateLimiter provides IP-based admission control using fixed (non-sliding)
// windows: at most maxRequests accepted per window, count reset to 1 when a
// request arrives at or after the window's reset time. Keying by network
// address is spoofable behind shared NAT/proxies; acceptable for a
// low-stakes contact form.
type RateLimiter struct {
	maxRequests       int
	window            time.Duration
	trustedProxyCount int
	now               func() time.Time

	mu      sync.Mutex
	clients map[string]*windowEntry
}

// windowEntry is one client's in-window request count.
type windowEntry struct {
	count     int
	resetTime time.Time
}

// NewRateLimiter creates a fixed-window rate limiter.
// Assumes a single trusted reverse proxy by default.
func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		maxRequests:       maxRequests,
		window:            window,
		trustedProxyCount: 1,
		now:               time.Now,
		clients:           make(map[string]*windowEntry),
	}
	go rl.cleanupLoop()
	return rl
}

// cleanupLoop periodically removes expired entries so the map does not grow
// without bound across distinct client addresses.
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		now := rl.now()
		rl.mu.Lock()
		for ip, entry := range rl.clients {
			if !now.Before(entry.resetTime) {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// Middleware returns an http.Handler that enforces the admission policy
// before the wrapped handler runs.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := rl.clientIP(r)
		now := rl.now()

		rl.mu.Lock()
		entry, ok := rl.clients[ip]
		if !ok || !now.Before(entry.resetTime) {
			rl.clients[ip] = &windowEntry{count: 1, resetTime: now.Add(rl.window)}
			rl.mu.Unlock()
			next.ServeHTTP(w, r)
			return
		}

		if entry.count >= rl.maxRequests {
			retryAfter := retryAfterSeconds(entry.resetTime.Sub(now))
			rl.mu.Unlock()

			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			writeJSON(w, http.StatusTooManyRequests, apiResponse{
				Success:    false,
				Message:    "Too many requests. Please try again later.",
				RetryAfter: retryAfter,
			})
			return
		}

		entry.count++
		rl.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

// retryAfterSeconds converts the remaining window to whole seconds, rounding
// up. A full window maps to exactly the window length, never one past it.
func retryAfterSeconds(d time.Duration) int {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}

// defaultTrustedProxyCount assumes a single trusted reverse proxy (nginx) in
// front of the server. Every consumer of the client identity must share this
// value so admission control and provenance agree on who the client is.
const defaultTrustedProxyCount = 1

// trustedClientIP extracts the real client IP, reading from the rightmost
// trusted proxy position in X-Forwarded-For to prevent spoofing.
func trustedClientIP(r *http.Request, trustedProxyCount int) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" && trustedProxyCount > 0 {
		parts := strings.Split(xff, ",")
		idx := len(parts) - trustedProxyCount
		if idx >= 0 && idx < len(parts) {
			return strings.TrimSpace(parts[idx])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) clientIP(r *http.Request) string {
	return trustedClientIP(r, rl.trustedProxyCount)
}
