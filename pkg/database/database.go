// Package database handles the database connection
package database

import (
	"database/sql"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/logger"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB global GORM object
var DB *gorm.DB

// SQLDB underlying sql.DB, used for pool settings
var SQLDB *sql.DB

// Connect opens the database connection
func Connect(dbConfig gorm.Dialector, _logger gormlogger.Interface) {
	var err error
	DB, err = gorm.Open(dbConfig, &gorm.Config{
		Logger: _logger,
	})
	if err != nil {
		logger.ErrorString("Database", "Connect", err.Error())
		panic(err)
	}

	SQLDB, err = DB.DB()
	if err != nil {
		logger.ErrorString("Database", "SQLDB", err.Error())
		panic(err)
	}
}

// AutoMigrate migrates every registered table
func AutoMigrate(tables []interface{}) error {
	return DB.AutoMigrate(tables...)
}
