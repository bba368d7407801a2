// Package db opens the service database. The default deployment runs on
// sqlite; the DSN comes from configuration.
package db

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/smallbiznis/qrbill/internal/config"
)

// Open connects to the configured database.
func Open(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	conn, err := gorm.Open(sqlite.Open(cfg.DatabaseDSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	log.Info("database opened", zap.String("dsn", cfg.DatabaseDSN))
	return conn, nil
}

var Module = fx.Module("db",
	fx.Provide(Open),
)
