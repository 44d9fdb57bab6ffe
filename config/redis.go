package config

import (
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/config"
)

func init() {
	config.Add("redis", func() map[string]interface{} {
		return map[string]interface{}{
			"host":     config.Env("REDIS_HOST", "127.0.0.1"),
			"port":     config.Env("REDIS_PORT", "6379"),
			"username": config.Env("REDIS_USERNAME", ""),
			"password": config.Env("REDIS_PASSWORD", ""),

			// sessions and rate limiting share the 1 database
			"database": config.Env("REDIS_MAIN_DB", 1),
		}
	})
}
