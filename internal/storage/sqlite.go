package storage

import (
	"errors"
	"fmt"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// kvEntry models one persisted key/value pair.
type kvEntry struct {
	Key              string `gorm:"column:key;primaryKey;size:190;not null"`
	Value            string `gorm:"column:value;type:text;not null"`
	UpdatedAtSeconds int64  `gorm:"column:updated_at_s;not null"`
}

// TableName provides the explicit table binding for GORM.
func (kvEntry) TableName() string {
	return "kv_entries"
}

// SQLiteKV persists key/value pairs in a single SQLite table.
type SQLiteKV struct {
	db    *gorm.DB
	clock func() time.Time
}

// OpenSQLite establishes a SQLite connection, migrates the schema, and
// returns a KV store over it.
func OpenSQLite(path string, logger *zap.Logger) (*SQLiteKV, error) {
	if path == "" {
		return nil, fmt.Errorf("storage: database path is required")
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, err
	}

	if logger != nil {
		logger.Info("store initialized", zap.String("path", path))
	}

	return &SQLiteKV{db: db, clock: time.Now}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteKV) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get returns the value stored under key.
func (s *SQLiteKV) Get(key string) (string, bool, error) {
	var entry kvEntry
	err := s.db.Where("key = ?", key).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *SQLiteKV) Set(key, value string) error {
	entry := kvEntry{
		Key:              key,
		Value:            value,
		UpdatedAtSeconds: s.clock().UTC().Unix(),
	}
	return s.db.Save(&entry).Error
}

// Delete removes key.
func (s *SQLiteKV) Delete(key string) error {
	return s.db.Where("key = ?", key).Delete(&kvEntry{}).Error
}
