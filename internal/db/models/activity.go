package models

import "time"

// ActivityLog is the append-only audit trail. Entries are written as a
// best-effort side effect of admin mutations and are only ever read back
// for display or cleared in bulk.
type ActivityLog struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Action    string    `gorm:"size:100;not null" json:"action"`
	Details   string    `gorm:"size:1024" json:"details"`
	CreatedAt time.Time `json:"timestamp"`
}
