package model

import (
	"time"

	"gorm.io/datatypes"
)

// StoreRecordVersion is the current schema version written with every
// record. Records carrying an unknown version are treated as corrupt and
// read as the type's empty default.
const StoreRecordVersion = 1

// StoreRecord is one keyed persistence slot. The whole payload for a key
// lives in a single JSON blob; array-valued keys (history, reminders, chat)
// are read-modify-written as a unit with last-writer-wins semantics.
type StoreRecord struct {
	Key       string         `json:"key" gorm:"primaryKey;size:191"`
	Version   int            `json:"version" gorm:"not null;default:1"`
	Value     datatypes.JSON `json:"value" gorm:"type:json"`
	UpdatedAt time.Time      `json:"updated_at"`
}
