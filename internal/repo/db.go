// Package repo implements the data persistence layer for ingested messages,
// backed by GORM. This file contains database bootstrapping helpers for
// SQLite (pure Go driver), schema migration, and the readiness probe.
package repo

import (
	"context"
	"os"
	"path/filepath"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/tbourn/go-message-ingest/internal/domain"
)

// OpenSQLite opens (or creates) a SQLite database and applies PRAGMAs.
func OpenSQLite(path string) (*gorm.DB, error) {
	// Fail early if parent directory does not exist (instead of sqlite "out of memory (14)" on Windows).
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// PRAGMAs
	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA foreign_keys=ON;")
	db.Exec("PRAGMA busy_timeout=5000;")

	// Pool
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	return db, nil
}

// AutoMigrate creates or updates the messages schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Message{})
}

// Ready reports whether the store is reachable and the messages table exists.
// Any connection or query failure reads as "not ready" rather than an error;
// the readiness endpoint only needs the boolean.
func Ready(ctx context.Context, db *gorm.DB) bool {
	if db == nil {
		return false
	}
	var name string
	err := db.WithContext(ctx).
		Raw("SELECT name FROM sqlite_master WHERE type='table' AND name='messages'").
		Scan(&name).Error
	return err == nil && name == "messages"
}
