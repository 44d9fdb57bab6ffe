// Package bootstrap boots the application components in order
package bootstrap

import (
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/config"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/logger"
)

// SetupLogger initializes the zap logger from the log configuration
func SetupLogger() {
	logger.InitLogger(
		config.GetString("log.filename"),
		config.GetInt("log.max_size"),
		config.GetInt("log.max_backup"),
		config.GetInt("log.max_age"),
		config.GetBool("log.compress"),
		config.GetString("log.type"),
		config.GetString("log.level"),
	)
}
