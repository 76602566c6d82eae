package database

import (
	"fmt"
	"log/slog"

	"hr-dashboard-api/pkg/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the SQL database selected by driver and runs migrations.
// dsn is a file path for sqlite and a connection string for postgres/mysql.
func Open(driver, dsn string, logLevel logger.LogLevel) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		// glebarez/sqlite is a pure Go implementation (no CGO required)
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", driver, err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	slog.Info("database connected and migrated", "driver", driver)
	return db, nil
}

// Migrate creates or updates the employees and tasks tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Employee{}, &models.Task{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}

// GormLogLevel maps the service log level onto GORM's logger.
func GormLogLevel(level slog.Level) logger.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return logger.Info
	case level >= slog.LevelError:
		return logger.Error
	default:
		return logger.Warn
	}
}
