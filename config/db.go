package config

import (
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens the backing store. The default is an embedded SQLite file
// (cfg.DBPath); setting MYSQL_DSN switches to a MySQL server instead, with the
// same schema. The returned handle is meant to be opened once at startup and
// passed explicitly to every store.
func NewDB(cfg *Config) (*gorm.DB, error) {
	logMode := logger.Info
	if cfg.GormLog == "off" {
		logMode = logger.Silent
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // Use log.Logger for Printf support
		logger.Config{
			SlowThreshold: time.Second, // Slow SQL threshold
			LogLevel:      logMode,     // Log level
			Colorful:      true,        // Enable color
		},
	)

	// Error translation stays off on purpose: the catalog needs the raw
	// driver message to tell which unique column a duplicate insert hit.
	gormCfg := &gorm.Config{
		Logger: gormLogger,
	}

	var db *gorm.DB
	var err error
	if cfg.MySQLDSN != "" {
		db, err = gorm.Open(mysql.Open(cfg.MySQLDSN), gormCfg)
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.DBPath), gormCfg)
	}
	if err != nil {
		return nil, err
	}
	if cfg.MySQLDSN == "" {
		db.Exec("PRAGMA busy_timeout=5000")
	}
	return db, nil
}
