// Package storage is the record store: durable key -> JSON-array-of-records
// buckets kept in a single local sqlite file. Every mutation reads the full
// bucket, rewrites the full bucket, and nothing indexes inside a bucket.
// A process-level mutex serializes read-modify-write cycles; a second
// process writing the same file can still lose updates.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Bucket keys. The set is fixed; repositories each own exactly one.
const (
	BucketCustomers        = "spa_customers"
	BucketPackages         = "spa_packages"
	BucketCustomerPackages = "spa_customer_packages"
	BucketSessions         = "spa_sessions"
	BucketSales            = "spa_sales"
	BucketSettings         = "spa_settings"
	BucketReminderLogs     = "spa_reminder_logs"
)

var Buckets = []string{
	BucketCustomers,
	BucketPackages,
	BucketCustomerPackages,
	BucketSessions,
	BucketSales,
	BucketSettings,
	BucketReminderLogs,
}

type bucketRow struct {
	Key  string `gorm:"primaryKey;column:key"`
	Data string `gorm:"column:data"`
}

func (bucketRow) TableName() string { return "buckets" }

// Store is handed to every repository explicitly; there is no package-level
// instance.
type Store struct {
	db *gorm.DB
	mu *sync.Mutex // nil inside a transaction, where the outer lock is held
}

// Open connects to (or creates) the sqlite file at path and prepares the
// bucket table.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&bucketRow{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db, mu: &sync.Mutex{}}, nil
}

func (s *Store) lock() func() {
	if s.mu == nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// Read returns the stored JSON array for a bucket. An absent bucket, a
// failed read, or malformed content all fail open to an empty array; the
// problem is only reported on the log.
func (s *Store) Read(bucket string) []byte {
	unlock := s.lock()
	defer unlock()
	return s.read(bucket)
}

func (s *Store) read(bucket string) []byte {
	var row bucketRow
	if err := s.db.First(&row, "key = ?", bucket).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("storage: error reading bucket %s: %v", bucket, err)
		}
		return []byte("[]")
	}

	if !json.Valid([]byte(row.Data)) {
		log.Printf("storage: malformed content in bucket %s, treating as empty", bucket)
		return []byte("[]")
	}

	return []byte(row.Data)
}

// Write replaces the full content of a bucket in one statement and reports
// whether it persisted.
func (s *Store) Write(bucket string, data []byte) bool {
	unlock := s.lock()
	defer unlock()
	return s.write(bucket, data)
}

func (s *Store) write(bucket string, data []byte) bool {
	row := bucketRow{Key: bucket, Data: string(data)}
	err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
	if err != nil {
		log.Printf("storage: error writing bucket %s: %v", bucket, err)
		return false
	}
	return true
}

// Clear removes a bucket. Clearing an absent bucket is not an error.
func (s *Store) Clear(bucket string) bool {
	unlock := s.lock()
	defer unlock()

	if err := s.db.Delete(&bucketRow{}, "key = ?", bucket).Error; err != nil {
		log.Printf("storage: error clearing bucket %s: %v", bucket, err)
		return false
	}
	return true
}

// ClearAll removes every known bucket.
func (s *Store) ClearAll() bool {
	unlock := s.lock()
	defer unlock()

	if err := s.db.Delete(&bucketRow{}, "key IN ?", Buckets).Error; err != nil {
		log.Printf("storage: error clearing buckets: %v", err)
		return false
	}
	return true
}

// Transaction runs fn against a store bound to a database transaction and
// holds the process lock for the whole cycle, so a multi-bucket update
// (session status plus package counters, or package plus sale) commits or
// rolls back as one unit.
func (s *Store) Transaction(fn func(tx *Store) error) error {
	unlock := s.lock()
	defer unlock()

	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
