package db

import (
	"time"

	"github.com/barchasb-io/barchasb/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New opens a postgres-backed gorm handle with pool limits from config.
// Each request borrows a pooled connection for its duration; there is no
// other shared mutable state in the process.
func New(cfg *config.Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{TranslateError: true}
	if cfg.App.Env == "release" {
		gcfg.Logger = logger.Default.LogMode(logger.Silent)
	}

	d, err := gorm.Open(postgres.Open(cfg.Database.DSN), gcfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := d.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Database.MaxOpen > 0 {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpen)
	}
	if cfg.Database.MaxIdle > 0 {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdle)
	}
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	return d, nil
}
