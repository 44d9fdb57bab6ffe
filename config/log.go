package config

import (
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/config"
)

func init() {
	config.Add("log", func() map[string]interface{} {
		return map[string]interface{}{

			// log level: debug, info, warn, error
			"level": config.Env("LOG_LEVEL", "debug"),

			// log type: single file or daily rotation
			"type": config.Env("LOG_TYPE", "daily"),

			/* ------------------ rolling configuration ------------------ */
			"filename": config.Env("LOG_NAME", "storage/logs/logs.log"),

			// max size per file in MB
			"max_size": config.Env("LOG_MAX_SIZE", 64),

			// max number of kept backups, 0 keeps all
			"max_backup": config.Env("LOG_MAX_BACKUP", 5),

			// max days to keep, 0 keeps forever
			"max_age": config.Env("LOG_MAX_AGE", 30),

			// compress rotated files
			"compress": config.Env("LOG_COMPRESS", false),
		}
	})
}
