package database

import (
	"context"
	"fmt"

	"yelpcamp/internal/config"
	"yelpcamp/internal/logger"

	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

// Store is an open connection to one of the supported backends
type Store interface {
	Driver() string
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Open connects to the backend selected by cfg.StoreDriver
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		return ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.StoreTimeout)
	case config.DriverPostgres:
		db, err := Initialize(cfg.DatabaseURL, &Options{LogLevel: gormLogLevel(cfg.LogLevel)})
		if err != nil {
			return nil, err
		}
		return &PostgresStore{DB: db}, nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}

func gormLogLevel(level string) gormlogger.LogLevel {
	switch logger.ParseLevel(level) {
	case logrus.DebugLevel:
		return gormlogger.Info
	case logrus.WarnLevel:
		return gormlogger.Warn
	default:
		return gormlogger.Error
	}
}
