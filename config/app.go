package config

import "github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/config"

func init() {
	config.Add("app", func() map[string]interface{} {
		return map[string]interface{}{

			// application name
			"name": config.Env("APP_NAME", "GadgetHub"),

			// current environment: local, testing, production
			"env": config.Env("APP_ENV", "production"),

			// debug mode
			"debug": config.Env("APP_DEBUG", false),

			// HTTP listen port
			"port": config.Env("APP_PORT", "3000"),

			// public base URL, used to build the gateway callback URLs
			"url": config.Env("APP_URL", "http://localhost:3000"),

			// timezone used in logs and sale windows
			"timezone": config.Env("TIMEZONE", "Asia/Dhaka"),
		}
	})
}
