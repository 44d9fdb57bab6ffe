package config

import (
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/config"
)

func init() {
	config.Add("session", func() map[string]interface{} {
		return map[string]interface{}{
			// Redis key prefix for session fields
			"prefix": config.Env("SESSION_PREFIX", "gadgethub:session"),

			// session lifetime in seconds, also the cookie max age
			"lifetime": config.Env("SESSION_LIFETIME", 7200),
		}
	})
}
