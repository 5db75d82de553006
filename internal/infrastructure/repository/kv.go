package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/fajara33/rd-company/internal/infrastructure/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// storeMu serializes mutations. Every write reads the whole collection,
// mutates it in memory and writes it back, which is only safe with a single
// active writer; the lock upholds that assumption under concurrent requests.
var storeMu sync.Mutex

// kvStore reads and writes whole collections as JSON arrays under their
// wire keys.
type kvStore struct {
	db *gorm.DB
}

// load unmarshals the collection at key into out. An absent key leaves out
// at its zero value (empty collection).
func (s kvStore) load(ctx context.Context, key string, out any) error {
	var rec database.KVRecord
	err := s.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(rec.Value), out); err != nil {
		return fmt.Errorf("corrupt collection %q: %w", key, err)
	}
	return nil
}

// save replaces the collection at key.
func (s kvStore) save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode collection %q: %w", key, err)
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&database.KVRecord{Key: key, Value: string(raw)}).Error
}
