package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ecoquest/ecoquest/api/utils"
)

// slidingWindow counts hits per key over a rolling window, in memory. Good
// enough for a single instance behind the gateway; a shared store would be
// needed to enforce limits across replicas.
type slidingWindow struct {
	mu     sync.Mutex
	hits   map[string][]time.Time
	limit  int
	window time.Duration
}

func newSlidingWindow(limit int, window time.Duration) *slidingWindow {
	sw := &slidingWindow{
		hits:   make(map[string][]time.Time),
		limit:  limit,
		window: window,
	}
	go sw.prune(window * 2)
	return sw
}

// allow records a hit for key at now and reports whether it stays within
// the limit. Stale hits for the key are trimmed on the way.
func (sw *slidingWindow) allow(key string, now time.Time) bool {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	cutoff := now.Add(-sw.window)
	kept := sw.hits[key][:0]
	for _, t := range sw.hits[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= sw.limit {
		sw.hits[key] = kept
		return false
	}
	sw.hits[key] = append(kept, now)
	return true
}

// prune drops keys whose hits have all aged out, so idle clients do not
// accumulate in the map.
func (sw *slidingWindow) prune(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-sw.window)
		sw.mu.Lock()
		for key, hits := range sw.hits {
			live := 0
			for _, t := range hits {
				if t.After(cutoff) {
					live++
				}
			}
			if live == 0 {
				delete(sw.hits, key)
			}
		}
		sw.mu.Unlock()
	}
}

// RateLimit limits requests per client IP over a rolling window.
func RateLimit(limit int, window time.Duration) fiber.Handler {
	sw := newSlidingWindow(limit, window)

	return func(c *fiber.Ctx) error {
		ip := utils.GetIPAddress(c)

		if !sw.allow(ip, time.Now()) {
			slog.Warn("Rate limit exceeded",
				slog.String("ip", ip),
				slog.String("path", c.Path()),
				slog.String("method", c.Method()),
				slog.Int("limit", limit),
				slog.Duration("window", window))

			return utils.SendError(c, fiber.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED",
				"Too many requests. Please try again later.", nil)
		}

		return c.Next()
	}
}

// APIRateLimit is the default budget for read traffic.
func APIRateLimit() fiber.Handler {
	return RateLimit(100, time.Minute)
}

// SubmitRateLimit covers write-heavy endpoints such as quiz submission
// and quest progress updates.
func SubmitRateLimit() fiber.Handler {
	return RateLimit(30, time.Minute)
}
