package bootstrap

import (
	"errors"
	"fmt"
	"time"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/config"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/database"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/database/migrations"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupDB initializes the database connection and the ORM
func SetupDB() {
	var dbConfig gorm.Dialector
	switch config.Get("database.connection") {
	case "postgresql":
		dbConfig = setupPostgreSQL()
	case "sqlite":
		dbConfig = setupSQLite()
	default:
		panic(errors.New("unsupported database connection type"))
	}

	database.Connect(dbConfig, logger.NewGormLogger())

	setupDBPool()

	if err := database.AutoMigrate(migrations.RegisterTables()); err != nil {
		logger.ErrorString("Database", "AutoMigrate", "schema migration failed: "+err.Error())
		return
	}
	logger.InfoString("Database", "AutoMigrate", "schema migration completed")
}

func setupPostgreSQL() gorm.Dialector {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=%s",
		config.Get("database.postgresql.host"),
		config.Get("database.postgresql.port"),
		config.Get("database.postgresql.username"),
		config.Get("database.postgresql.password"),
		config.Get("database.postgresql.database"),
		config.Get("app.timezone"),
	)
	return postgres.New(postgres.Config{
		DSN: dsn,
	})
}

func setupSQLite() gorm.Dialector {
	return sqlite.Open(config.Get("database.sqlite.database"))
}

func setupDBPool() {
	database.SQLDB.SetMaxOpenConns(config.GetInt("database.postgresql.max_open_connections"))
	database.SQLDB.SetMaxIdleConns(config.GetInt("database.postgresql.max_idle_connections"))
	database.SQLDB.SetConnMaxLifetime(time.Duration(config.GetInt("database.postgresql.max_life_seconds")) * time.Second)
}
