package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/app"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/limiter"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/logger"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"golang.org/x/time/rate"
)

const (
	// DefaultBurst burst size per limiter key
	DefaultBurst = 100
)

var (
	limiters    sync.Map
	lastCleanup sync.Map
)

// RateLimitConfig per-handler limiting configuration
type RateLimitConfig struct {
	Limit string
	Burst int
}

// LimitIP limits requests per client IP across all routes.
//
// Supported limit formats:
// - 5 reqs/second:   "5-S"
// - 10 reqs/minute:  "10-M"
// - 1000 reqs/hour:  "1000-H"
// - 2000 reqs/day:   "2000-D"
func LimitIP(limit string) gin.HandlerFunc {
	if app.IsTesting() {
		limit = "1000000-H"
	}

	config := RateLimitConfig{
		Limit: limit,
		Burst: DefaultBurst,
	}

	return createLimiterHandler(func(c *gin.Context) string {
		return limiter.GetKeyIP(c)
	}, config)
}

// LimitPerRoute limits requests per client IP on one route. The checkout
// and callback endpoints carry tighter limits than the catalog.
func LimitPerRoute(limit string) gin.HandlerFunc {
	if app.IsTesting() {
		limit = "1000000-H"
	}

	config := RateLimitConfig{
		Limit: limit,
		Burst: DefaultBurst,
	}

	return createLimiterHandler(func(c *gin.Context) string {
		return limiter.GetKeyRouteWithIP(c)
	}, config)
}

func createLimiterHandler(keyFunc func(*gin.Context) string, config RateLimitConfig) gin.HandlerFunc {
	go cleanupLimiters()

	return func(c *gin.Context) {
		key := keyFunc(c)

		lim, err := getLimiter(key, config)
		if err != nil {
			logger.ErrorString("Limiter", "create", err.Error())
			// degrade open rather than blocking traffic
			c.Next()
			return
		}

		if !lim.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Response{
				Status:  response.Error,
				Message: "Too many requests, please try again later",
			})
			return
		}

		setRateLimitHeaders(c, lim)
		c.Next()
	}
}

func getLimiter(key string, config RateLimitConfig) (*rate.Limiter, error) {
	if lim, exists := limiters.Load(key); exists {
		return lim.(*rate.Limiter), nil
	}

	r, err := limiter.ParseLimit(config.Limit)
	if err != nil {
		return nil, err
	}

	lim := rate.NewLimiter(rate.Limit(r.Rate), config.Burst)
	actual, _ := limiters.LoadOrStore(key, lim)
	return actual.(*rate.Limiter), nil
}

func setRateLimitHeaders(c *gin.Context, lim *rate.Limiter) {
	c.Header("X-RateLimit-Limit", cast.ToString(lim.Limit()))
	c.Header("X-RateLimit-Remaining", cast.ToString(lim.Tokens()))
	c.Header("X-RateLimit-Reset", cast.ToString(time.Now().Add(time.Second).Unix()))
}

// cleanupLimiters drops limiter state not touched for a day
func cleanupLimiters() {
	ticker := time.NewTicker(1 * time.Hour)
	for range ticker.C {
		now := time.Now()
		limiters.Range(func(key, value interface{}) bool {
			lastAccess, _ := lastCleanup.Load(key)
			if lastAccess == nil {
				lastCleanup.Store(key, now)
				return true
			}

			if now.Sub(lastAccess.(time.Time)) > 24*time.Hour {
				limiters.Delete(key)
				lastCleanup.Delete(key)
			}
			return true
		})
	}
}
