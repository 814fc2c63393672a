package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"go-booking/utils"

	"golang.org/x/time/rate"
)

type limit struct {
	rate  rate.Limit
	burst int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per client IP. Paths registered with
// Strict get their own, tighter budget.
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	def       limit
	strict    limit
	paths     map[string]bool
	idleAfter time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter allows rps requests per second with the given burst on
// ordinary paths, and one request every two seconds with a burst of five
// on strict paths.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		visitors:  make(map[string]*visitor),
		def:       limit{rate: rate.Limit(rps), burst: burst},
		strict:    limit{rate: rate.Every(2 * time.Second), burst: 5},
		paths:     make(map[string]bool),
		idleAfter: 10 * time.Minute,
		now:       time.Now,
	}
}

// Strict applies the login budget to the given request paths
func (rl *RateLimiter) Strict(paths ...string) *RateLimiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for _, p := range paths {
		rl.paths[p] = true
	}
	return rl
}

// Middleware rejects requests over budget with 429
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		if !rl.allow(clientIP(r), r.URL.Path) {
			w.Header().Set("Retry-After", "1")
			utils.RespondWithError(w, http.StatusTooManyRequests, "Too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ip, path string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	key, l := "default|"+ip, rl.def
	if rl.paths[path] {
		key, l = "strict|"+ip, rl.strict
	}
	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rate, l.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// sweep drops visitors idle for longer than idleAfter, at most once per idleAfter
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.idleAfter {
		return
	}
	rl.lastSweep = now
	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > rl.idleAfter {
			delete(rl.visitors, key)
		}
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
