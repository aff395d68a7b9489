package models

import (
	"time"
)

// Trigger is a factor tracked against episode occurrence (stress, weather,
// certain foods). CorrelationScore is a 0-1 association strength computed
// outside this service and written back through the API.
type Trigger struct {
	ID               uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           string     `gorm:"type:char(36);not null;index" json:"userId"`
	Name             string     `gorm:"size:255;not null" json:"name"`
	Category         string     `gorm:"size:255;not null" json:"category"`
	CorrelationScore *float64   `json:"correlationScore"`
	Frequency        int        `gorm:"not null;default:0" json:"frequency"`
	LastOccurrence   *time.Time `json:"lastOccurrence"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// TableName overrides the table name for Trigger
func (Trigger) TableName() string {
	return "triggers"
}
