package middleware

import (
	"net/http"
	"sync"
	"time"

	"distrohub/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Sliding-window per-IP rate limiting. Two independent limiter maps: a tight
// one for login attempts and a general one for the whole API.

type rateEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

type limiter struct {
	entries map[string]*rateEntry
	mu      sync.Mutex
	limit   int
	window  time.Duration
	message string
}

func newLimiter(limit int, window time.Duration, message string) *limiter {
	return &limiter{
		entries: make(map[string]*rateEntry),
		limit:   limit,
		window:  window,
		message: message,
	}
}

func (l *limiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		l.mu.Lock()
		entry, exists := l.entries[ip]
		if !exists {
			entry = &rateEntry{}
			l.entries[ip] = entry
		}
		l.mu.Unlock()

		entry.mu.Lock()
		defer entry.mu.Unlock()

		now := time.Now()
		if now.After(entry.windowEnd) {
			entry.count = 0
			entry.windowEnd = now.Add(l.window)
		}

		entry.count++
		if entry.count > l.limit {
			c.Header("Retry-After", entry.windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.message))
			return
		}
		c.Next()
	}
}

// purge removes expired entries so IPs that never return don't accumulate.
func (l *limiter) purge(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	purged := 0
	for ip, entry := range l.entries {
		entry.mu.Lock()
		if now.After(entry.windowEnd) {
			delete(l.entries, ip)
			purged++
		}
		entry.mu.Unlock()
	}
	return purged
}

var (
	loginLimiter = newLimiter(20, time.Minute, "Too many login attempts. Try again in a minute.")
	apiLimiter   *limiter
	apiLimiterMu sync.Mutex
)

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return loginLimiter.middleware()
}

// RateLimiter returns the general-purpose API limiter.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	apiLimiterMu.Lock()
	if apiLimiter == nil {
		apiLimiter = newLimiter(limit, window, "Too many requests. Try again shortly.")
	}
	l := apiLimiter
	apiLimiterMu.Unlock()
	return l.middleware()
}

const purgeInterval = 5 * time.Minute

func init() {
	go func() {
		ticker := time.NewTicker(purgeInterval)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()
			purged := loginLimiter.purge(now)
			apiLimiterMu.Lock()
			if apiLimiter != nil {
				purged += apiLimiter.purge(now)
			}
			apiLimiterMu.Unlock()
			if purged > 0 {
				log.Debug().Int("entries_purged", purged).Msg("rate limiter maps purged")
			}
		}
	}()
}
