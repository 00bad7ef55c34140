package web

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

const sessionCookie = "session_id"

// CorsMiddleware handles CORS headers for cross-origin requests
func CorsMiddleware(c rweb.Context) error {
	c.Response().SetHeader("Access-Control-Allow-Origin", "*")
	c.Response().SetHeader("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	c.Response().SetHeader("Access-Control-Allow-Headers", "Content-Type, X-Body-Encoding, X-Requested-With")

	// Handle preflight OPTIONS requests
	if c.Request().Method() == "OPTIONS" {
		c.SetStatus(http.StatusOK)
		return nil
	}

	return c.Next()
}

// SessionMiddleware tags each visitor with an anonymous session id.
// Nothing is stored against it; it only correlates log lines.
func SessionMiddleware(c rweb.Context) error {
	sessionID, err := c.GetCookie(sessionCookie)
	if err != nil || sessionID == "" {
		sessionID = uuid.New().String()
		if err := c.SetCookie(sessionCookie, sessionID); err != nil {
			logger.LogErr(err, "failed to set session cookie")
		}
	}

	c.Set("session_id", sessionID)
	return c.Next()
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware(c rweb.Context) error {
	c.Response().SetHeader("X-Content-Type-Options", "nosniff")
	c.Response().SetHeader("X-Frame-Options", "DENY")
	c.Response().SetHeader("Referrer-Policy", "strict-origin-when-cross-origin")

	// The page is self-contained: embedded CSS and inline SVG, no scripts
	csp := []string{
		"default-src 'self'",
		"script-src 'none'",
		"style-src 'self'",
		"img-src 'self' data:",
		"form-action 'self'",
	}
	c.Response().SetHeader("Content-Security-Policy", strings.Join(csp, "; "))

	return c.Next()
}

// RateLimitMiddleware implements basic per-client rate limiting.
// Clients are keyed on X-Forwarded-For or X-Real-IP, so it only tells
// visitors apart behind a proxy that sets those headers; without them every
// request shares one bucket. A limit of zero or less disables it.
func RateLimitMiddleware(requestsPerMinute int) rweb.Handler {
	type visitor struct {
		lastSeen time.Time
		count    int
	}

	var mu sync.Mutex
	visitors := make(map[string]*visitor)

	return func(c rweb.Context) error {
		if requestsPerMinute <= 0 {
			return c.Next()
		}

		ip := c.Request().Header("X-Forwarded-For")
		if ip == "" {
			ip = c.Request().Header("X-Real-IP")
		}
		if ip == "" {
			ip = "unknown"
		}

		now := time.Now()
		mu.Lock()
		for addr, v := range visitors {
			if now.Sub(v.lastSeen) > time.Minute {
				delete(visitors, addr)
			}
		}

		limited := false
		v, exists := visitors[ip]
		switch {
		case !exists:
			visitors[ip] = &visitor{lastSeen: now, count: 1}
		case now.Sub(v.lastSeen) < time.Minute:
			v.count++
			limited = v.count > requestsPerMinute
		default:
			v.lastSeen = now
			v.count = 1
		}
		mu.Unlock()

		if limited {
			logger.Info("Rate limit exceeded", "ip", ip)
			c.SetStatus(http.StatusTooManyRequests)
			return nil
		}

		return c.Next()
	}
}

// LoggingMiddleware provides detailed request logging
func LoggingMiddleware(c rweb.Context) error {
	start := time.Now()

	logger.Debug("Request started",
		"method", c.Request().Method(),
		"path", c.Request().Path(),
		"ip", c.Request().Header("X-Forwarded-For"),
	)

	err := c.Next()

	logger.Debug("Request completed",
		"method", c.Request().Method(),
		"path", c.Request().Path(),
		"duration", time.Since(start),
		"error", err,
	)

	return err
}
