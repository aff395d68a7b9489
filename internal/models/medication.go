package models

import (
	"time"
)

// Medication is a drug a user takes or has taken. Medications are never
// hard-deleted; IsActive=false retires them while keeping log history intact.
type Medication struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string     `gorm:"type:char(36);not null;index" json:"userId"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Dosage      string     `gorm:"size:255;not null" json:"dosage"`
	Frequency   string     `gorm:"size:255;not null" json:"frequency"`
	SideEffects StringList `json:"sideEffects"`
	IsActive    bool       `gorm:"not null;default:true" json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// MedicationLog records one intake. Medication and episode references are
// optional so ad-hoc doses and doses outside an episode can still be logged.
type MedicationLog struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        string    `gorm:"type:char(36);not null;index" json:"userId"`
	MedicationID  *uint     `gorm:"index" json:"medicationId"`
	EpisodeID     *uint     `json:"episodeId"`
	TakenAt       time.Time `gorm:"not null" json:"takenAt"`
	Effectiveness *int      `json:"effectiveness"`
	Notes         string    `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`

	Medication *Medication `gorm:"foreignKey:MedicationID" json:"-"`
	Episode    *Episode    `gorm:"foreignKey:EpisodeID" json:"-"`
}

// TableName overrides the table name for Medication
func (Medication) TableName() string {
	return "medications"
}

// TableName overrides the table name for MedicationLog
func (MedicationLog) TableName() string {
	return "medication_logs"
}
