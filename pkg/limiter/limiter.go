// Package limiter handles rate limiting
package limiter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/config"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/logger"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/redis"

	"github.com/gin-gonic/gin"
	limiterlib "github.com/ulule/limiter/v3"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// Rate requests per second after unit conversion
type Rate struct {
	Rate float64
}

// ParseLimit parses a limit string.
// Supported formats: "5-S", "10-M", "1000-H", "2000-D".
func ParseLimit(limit string) (*Rate, error) {
	_, err := limiterlib.NewRateFromFormatted(limit)
	if err != nil {
		return nil, fmt.Errorf("invalid limit format: %w", err)
	}

	parts := strings.Split(limit, "-")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid limit format: %s", limit)
	}

	value, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid rate value: %s", parts[0])
	}

	var ratePerSecond float64
	switch strings.ToUpper(parts[1]) {
	case "S":
		ratePerSecond = value
	case "M":
		ratePerSecond = value / 60.0
	case "H":
		ratePerSecond = value / 3600.0
	case "D":
		ratePerSecond = value / 86400.0
	default:
		return nil, fmt.Errorf("invalid time unit: %s", parts[1])
	}

	return &Rate{Rate: ratePerSecond}, nil
}

// GetKeyIP limiter key by client IP
func GetKeyIP(c *gin.Context) string {
	return c.ClientIP()
}

// GetKeyRouteWithIP limiter key by route + client IP, for per-route limits
func GetKeyRouteWithIP(c *gin.Context) string {
	return routeToKeyString(c.FullPath()) + c.ClientIP()
}

// CheckRate checks a request against the Redis backed limiter
func CheckRate(c *gin.Context, key string, formatted string) (limiterlib.Context, error) {
	var context limiterlib.Context
	rate, err := limiterlib.NewRateFromFormatted(formatted)
	if err != nil {
		logger.LogIf(err)
		return context, err
	}

	store, err := sredis.NewStoreWithOptions(redis.Redis.Client, limiterlib.StoreOptions{
		// Prefix keeps the limiter keys tidy in Redis
		Prefix: config.GetString("app.name") + ":limiter",
	})
	if err != nil {
		logger.LogIf(err)
		return context, err
	}

	limiterObj := limiterlib.New(store, rate)

	if c.GetBool("limiter-once") {
		// Peek() reads without counting the request again
		return limiterObj.Peek(c, key)
	}

	// Count the request once even when several route groups apply limits
	c.Set("limiter-once", true)
	return limiterObj.Get(c, key)
}

func routeToKeyString(routeName string) string {
	routeName = strings.ReplaceAll(routeName, "/", "-")
	routeName = strings.ReplaceAll(routeName, ":", "_")
	return routeName
}
