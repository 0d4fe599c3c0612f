// Package activity provides the append-only audit trail.
package activity

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/db/models"
	"github.com/jobvista/jobvista/internal/uniuri"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// Record appends one audit entry. The write is best-effort: audit failures
// are logged and swallowed, they must never fail the primary mutation.
func Record(db *gorm.DB, action, details string) {
	if db == nil {
		log.Error().Str("action", action).Msg("activity log skipped: nil db")
		return
	}

	entry := models.ActivityLog{
		ID:      uniuri.New(),
		Action:  action,
		Details: details,
	}

	if result := db.Create(&entry); result.Error != nil {
		log.Error().Err(result.Error).Str("action", action).Msg("failed to write activity log")
	}
}

// GetAll retrieves the audit trail, newest first.
func GetAll(db *gorm.DB) ([]models.ActivityLog, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var entries []models.ActivityLog
	if result := db.Order("created_at DESC").Find(&entries); result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}

// Clear removes all audit entries and returns the number removed.
// The clear itself is recorded as a fresh entry afterwards.
func Clear(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Where("1 = 1").Delete(&models.ActivityLog{})
	if result.Error != nil {
		return 0, result.Error
	}

	Record(db, "Activity Log Cleared", "all entries removed")

	return result.RowsAffected, nil
}
