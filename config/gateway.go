package config

import (
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/config"
)

func init() {
	config.Add("gateway", func() map[string]interface{} {
		return map[string]interface{}{
			// sandbox toggles the SSLCommerz sandbox endpoints
			"sandbox": config.Env("SSLCZ_SANDBOX", true),

			"store_id":       config.Env("SSLCZ_STORE_ID", ""),
			"store_password": config.Env("SSLCZ_STORE_PASSWORD", ""),

			"currency": config.Env("SSLCZ_CURRENCY", "BDT"),
		}
	})
}
