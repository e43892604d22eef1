// Package store implements the keyed persistence layer backing sessions,
// preferences, treatment-plan history, custom reminders, and chat
// transcripts. Every logical key maps to one StoreRecord row holding a
// versioned JSON blob; array-valued keys are read-modify-written as a unit
// with last-writer-wins semantics and no locking (two concurrent writers can
// race and lose an update, which is accepted for a single-user tool).
package store

import (
	"encoding/json"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hgapps/medicare-api/model"
)

// Logical key layout. Session, preferences, active plan, registered users
// and custom reminders are global; history and chat transcripts are
// namespaced per userKey (email or "guest").
const (
	KeyCurrentSession  = "current-session"
	KeyLanguage        = "language-preference"
	KeyTheme           = "theme-preference"
	KeyRegisteredUsers = "registered-users"
	KeyActivePlan      = "active-plan"
	KeyCustomReminders = "custom-reminders"

	historyPrefix    = "history:"
	transcriptPrefix = "chat-transcript:"
)

// HistoryKey returns the per-user history record key.
func HistoryKey(userKey string) string { return historyPrefix + userKey }

// TranscriptKey returns the per-user chat transcript record key.
func TranscriptKey(userKey string) string { return transcriptPrefix + userKey }

// Store provides typed access to the keyed records.
type Store struct {
	db *gorm.DB
}

// New creates a Store over the given database connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the backing table.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&model.StoreRecord{})
}

// read unmarshals the record at key into dst. A missing record, a corrupt
// blob, or an unknown schema version all leave dst untouched and return
// false; callers fall back to their empty default. Read failures are never
// surfaced as errors.
func (s *Store) read(key string, dst interface{}) bool {
	var rec model.StoreRecord
	if err := s.db.First(&rec, "`key` = ?", key).Error; err != nil {
		return false
	}
	if rec.Version != model.StoreRecordVersion {
		return false
	}
	if err := json.Unmarshal(rec.Value, dst); err != nil {
		return false
	}
	return true
}

// write marshals value and upserts the record at key.
func (s *Store) write(key string, value interface{}) error {
	blob, err := json.Marshal(value)
	if err != nil {
		return err
	}
	rec := model.StoreRecord{
		Key:     key,
		Version: model.StoreRecordVersion,
		Value:   blob,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&rec).Error
}

// delete removes the record at key. Deleting an absent key is a no-op.
func (s *Store) delete(key string) error {
	return s.db.Delete(&model.StoreRecord{}, "`key` = ?", key).Error
}
