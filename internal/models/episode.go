package models

import (
	"time"
)

// Episode is a single recorded migraine occurrence. EndTime stays nil while
// the episode is ongoing; Intensity is on a 1-10 scale.
type Episode struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string     `gorm:"type:char(36);not null;index:idx_episodes_user_start,priority:1" json:"userId"`
	StartTime   time.Time  `gorm:"not null;index:idx_episodes_user_start,priority:2" json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Intensity   int        `gorm:"not null" json:"intensity"`
	Symptoms    StringList `json:"symptoms"`
	Triggers    StringList `json:"triggers"`
	Notes       string     `gorm:"type:text" json:"notes"`
	IsEmergency bool       `gorm:"not null;default:false" json:"isEmergency"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// TableName overrides the table name for Episode
func (Episode) TableName() string {
	return "migraine_episodes"
}
