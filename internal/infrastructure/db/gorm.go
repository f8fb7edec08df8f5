package db

import (
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AhsanAsc/Social-Support-App/internal/domain/application"
	"github.com/AhsanAsc/Social-Support-App/internal/domain/document"
	"github.com/AhsanAsc/Social-Support-App/internal/domain/evaluation"
)

// OpenGorm opens the sqlite database at path (":memory:" works for tests).
func OpenGorm(path string) (*gorm.DB, error) {
	return OpenGormWithDialector(sqlite.Open(path))
}

func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// sqlite serializes writers; a single open connection avoids
	// SQLITE_BUSY under concurrent parse_all workers.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}

// Migrate creates or updates the schema for every aggregate.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&application.Application{},
		&document.Document{},
		&document.Chunk{},
		&evaluation.Evaluation{},
	)
}
