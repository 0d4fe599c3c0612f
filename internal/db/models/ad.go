package models

import "time"

// SponsoredAd is a paid placement. Clicks is a monotonic counter which is
// only ever incremented through the public click-track endpoint.
type SponsoredAd struct {
	ID             string    `gorm:"primaryKey;size:32" json:"id"`
	ImageURL       string    `gorm:"size:2048;not null" json:"imageUrl"`
	DestinationURL string    `gorm:"size:2048;not null" json:"destinationUrl"`
	Placement      string    `gorm:"size:100" json:"placement"`
	Status         string    `gorm:"size:20;default:'active'" json:"status"`
	Clicks         int64     `json:"clicks"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
