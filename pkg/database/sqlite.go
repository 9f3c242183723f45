package database

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// MemoryDSN keeps the whole database inside the process
const MemoryDSN = ":memory:"

type Options struct {
	DSN    string
	LogSQL bool
}

// Connect opens the record store. With the default DSN nothing touches disk
// and the store is gone when the process exits.
func Connect(opts Options) (*gorm.DB, error) {
	dsn := opts.DSN
	if dsn == "" {
		dsn = MemoryDSN
	}

	level := logger.Silent
	if opts.LogSQL {
		level = logger.Info
	}
	newLogger := logger.New(
		log.StandardLogger(),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        dsn,
	}, &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "sqlite handle")
	}
	// An in-memory database lives and dies with its connection, so the pool
	// is pinned to a single connection that is never recycled.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	log.WithField("dsn", dsn).Debug("record store opened")
	return db, nil
}
