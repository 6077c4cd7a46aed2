package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Entry is a single key-value row.
type Entry struct {
	Name  string `gorm:"primaryKey"`
	Value string `gorm:"not null"`
}

// SQLStore keeps entries in a SQLite table via gorm.
type SQLStore struct {
	db *gorm.DB
}

// NewSQLStore opens (creating if needed) the SQLite database at path and
// migrates the entries table. Use ":memory:" for a throwaway database.
func NewSQLStore(path string) (*SQLStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if path == ":memory:" {
		// Each connection to :memory: is a separate database.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access database: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return NewSQLStoreFromDB(db)
}

// NewSQLStoreFromDB wraps an existing connection and migrates the schema.
func NewSQLStoreFromDB(db *gorm.DB) (*SQLStore, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &SQLStore{db: db}, nil
}

// Get returns the stored value for key.
func (s *SQLStore) Get(key string) (string, bool, error) {
	var e Entry
	err := s.db.Where("name = ?", key).Take(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return e.Value, true, nil
}

// Set upserts key.
func (s *SQLStore) Set(key, value string) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Entry{Name: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Delete removes key if present.
func (s *SQLStore) Delete(key string) error {
	if err := s.db.Where("name = ?", key).Delete(&Entry{}).Error; err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying connection.
func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
