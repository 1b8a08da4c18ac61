package model

import (
	"time"
)

// LocationModel is the GORM-specific struct for the 'locations' table.
// EventID is the primary key so a location relayed twice is stored once.
type LocationModel struct {
	EventID     string    `gorm:"type:char(64);primaryKey"`
	Author      string    `gorm:"type:char(64);not null;index:idx_locations_on_author_device,priority:1"`
	DTag        string    `gorm:"type:varchar(255);not null;index:idx_locations_on_author_device,priority:2"`
	Geohash     string    `gorm:"type:varchar(12);not null"`
	Latitude    float64   `gorm:"type:decimal(10,8);not null"`
	Longitude   float64   `gorm:"type:decimal(11,8);not null"`
	Accuracy    *float64  `gorm:"type:double precision"`
	Visibility  string    `gorm:"type:varchar(16);not null"`
	Kind        int       `gorm:"not null"`
	PublishedAt time.Time `gorm:"not null;index:idx_locations_on_author_device,priority:3,sort:desc"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
