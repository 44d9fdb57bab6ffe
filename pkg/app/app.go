// Package app provides application level helpers
package app

import (
	"time"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/config"
)

// IsLocal reports whether the app runs in the local environment
func IsLocal() bool {
	return config.Get("app.env") == "local"
}

// IsProduction reports whether the app runs in production
func IsProduction() bool {
	return config.Get("app.env") == "production"
}

// IsTesting reports whether the app runs under tests
func IsTesting() bool {
	return config.Get("app.env") == "testing"
}

// TimenowInTimezone current time in the configured timezone
func TimenowInTimezone() time.Time {
	tz, _ := time.LoadLocation(config.GetString("app.timezone"))
	return time.Now().In(tz)
}

// URL prepends the configured base URL to a path, used to build the
// gateway callback URLs.
func URL(path string) string {
	return config.Get("app.url") + path
}
