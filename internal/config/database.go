package config

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// Open returns a gorm handle for the given driver. TranslateError is enabled so
// unique violations surface as gorm.ErrDuplicatedKey on both drivers.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("%q: %w", driver, ErrUnknownDriver)
	}

	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
}

func Connect(ctx context.Context, driver, dsn string) error {
	log := WithContext(ctx)

	db, err := Open(driver, dsn)
	if err != nil {
		log.WithError(err).Error("Failed to open database")
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		log.WithError(err).Error("Database ping failed")
		return err
	}

	DB = db
	log.WithField("driver", driver).Info("Database connected")
	return nil
}
