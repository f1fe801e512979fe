package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
)

const msgRateLimited = "Too many requests. Please try again later."

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает частоту запросов с одного IP
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	idle     time.Duration
	logger   Logger
}

// NewRateLimiter создает ограничитель: rps запросов в секунду с запасом burst
func NewRateLimiter(rps float64, burst int, logger Logger) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(rps),
		burst:    burst,
		idle:     10 * time.Minute,
		logger:   logger,
	}
}

// Middleware отвечает 429, если лимит клиента исчерпан
func (rl *RateLimiter) Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if !rl.allow(ip, time.Now()) {
				rl.logger.Warn("Rate limit exceeded: ip=%s, path=%s", ip, r.URL.Path)
				handlers.RespondTooManyRequests(w, msgRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Cleanup удаляет клиентов, не появлявшихся дольше idle; возвращает их количество
func (rl *RateLimiter) Cleanup(now time.Time) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) > rl.idle {
			delete(rl.visitors, ip)
			removed++
		}
	}
	return removed
}

func (rl *RateLimiter) allow(ip string, now time.Time) bool {
	rl.mu.Lock()
	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	rl.mu.Unlock()

	return v.limiter.AllowN(now, 1)
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
