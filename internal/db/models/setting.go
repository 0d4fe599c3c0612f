// Package models contains database model definitions.
package models

import "gorm.io/datatypes"

// Setting represents one named configuration object stored in the database.
// The value is an opaque JSON document; typed access goes through the
// settings repository.
type Setting struct {
	ID    uint64         `gorm:"primaryKey"`
	Name  string         `gorm:"unique"`
	Value datatypes.JSON `gorm:"type:json"`
}
