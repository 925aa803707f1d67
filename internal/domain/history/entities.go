package history

import (
	"encoding/json"
	"errors"
	"time"
)

var ErrNotFound = errors.New("history entry not found")

// Entry is one append-only audit record for a request transition.
// Entries are immutable: a correction is a new entry whose metadata
// carries a "corrects" key with the corrected entry's history_id.
type Entry struct {
	ID        uint64 `gorm:"primaryKey;column:id" json:"-"`
	HistoryID string `gorm:"size:32;uniqueIndex:ux_history_history_id" json:"history_id"`
	RequestID uint64 `gorm:"not null;index:idx_history_request" json:"-"`
	// ActorID is nil for system-initiated entries.
	ActorID   *string         `gorm:"size:32" json:"actor_id,omitempty"`
	Action    string          `gorm:"size:64;not null" json:"action"`
	Metadata  json.RawMessage `gorm:"type:json" json:"metadata,omitempty"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Entry) TableName() string { return "request_history" }

// NewMetadata marshals a metadata map; callers keep keys flat and
// JSON-friendly so the timeline UI can render them directly.
func NewMetadata(m map[string]any) json.RawMessage {
	if len(m) == 0 {
		return nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	return b
}
