package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fajara33/rd-company/internal/config"
	"github.com/fajara33/rd-company/internal/domain/entity"
	"github.com/fajara33/rd-company/internal/domain/enum"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Collection keys inside the key-value store. These are the reference wire
// keys; existing stored data is read back under the same names.
const (
	KeyStock        = "rd_stok"
	KeyTransactions = "rd_transaksi"
	KeyAttendance   = "rd_absensi"
)

// KVRecord is a single named collection: the value is a JSON-serialized
// array of the collection's records.
type KVRecord struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string `gorm:"type:text;not null"`
}

// TableName returns the table name for the KVRecord model
func (KVRecord) TableName() string {
	return "kv_records"
}

// NewSQLiteDB opens (creating if needed) the local store file.
func NewSQLiteDB(cfg *config.StoreConfig) (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	log.Printf("Successfully opened local store at %s", cfg.Path)
	return db, nil
}

// AutoMigrate runs GORM auto-migration for the key-value table.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&KVRecord{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// seedStock is the fixed example inventory written on first use. The ids
// match the reference seed so pre-existing installations line up.
var seedStock = []entity.StockItem{
	{ID: "1", Name: "Kemeja Putih", Category: enum.CategoryClothing, Price: 150000, Quantity: 10},
	{ID: "2", Name: "Tas Selempang", Category: enum.CategoryBags, Price: 75000, Quantity: 5},
	{ID: "3", Name: "Kalung Emas (Imitasi)", Category: enum.CategoryAccessories, Price: 50000, Quantity: 20},
	{ID: "4", Name: "Pulsa 10k", Category: enum.CategoryPhoneCounter, Price: 12000, Quantity: 100},
	{ID: "5", Name: "Kuota Data 5GB", Category: enum.CategoryPhoneCounter, Price: 35000, Quantity: 50},
}

// Seed lazily initializes the three collections. It is idempotent: a key
// already present is left untouched, so a second run never duplicates or
// resets existing data.
func Seed(db *gorm.DB) error {
	log.Println("Seeding store collections...")

	if err := seedCollection(db, KeyStock, seedStock); err != nil {
		return err
	}
	if err := seedCollection(db, KeyTransactions, []entity.Transaction{}); err != nil {
		return err
	}
	if err := seedCollection(db, KeyAttendance, []entity.Attendance{}); err != nil {
		return err
	}

	return nil
}

func seedCollection(db *gorm.DB, key string, value any) error {
	var existing KVRecord
	err := db.First(&existing, "key = ?", key).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check collection %q: %w", key, err)
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode seed for %q: %w", key, err)
	}
	if err := db.Create(&KVRecord{Key: key, Value: string(raw)}).Error; err != nil {
		return fmt.Errorf("failed to seed collection %q: %w", key, err)
	}
	return nil
}
