package database

import (
	"github.com/ecstazane/zane-crud2/infrastructure/config"
	"github.com/ecstazane/zane-crud2/infrastructure/logger"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres connection pool. The handle is passed around
// explicitly; nothing in the application reaches for a package-level DB.
func Connect(cfg *config.Config, log *logger.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetPostgresConnectionString()), &gorm.Config{
		Logger: logger.NewGormLogger(log.Log),
	})
	if err != nil {
		return nil, errors.Wrap(err, "opening postgres connection")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "accessing sql.DB handle")
	}

	sqlDB.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, errors.Wrap(err, "pinging postgres")
	}

	return db, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
