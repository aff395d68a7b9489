package models

import (
	"time"
)

// LogType classifies a medical log entry
type LogType string

const (
	LogTypeAssessment       LogType = "assessment"
	LogTypeVitals           LogType = "vitals"
	LogTypeSymptoms         LogType = "symptoms"
	LogTypeMedicationEffect LogType = "medication_effect"
	LogTypeTreatment        LogType = "treatment"
)

// ValidLogType reports whether t is one of the known log types
func ValidLogType(t string) bool {
	switch LogType(t) {
	case LogTypeAssessment, LogTypeVitals, LogTypeSymptoms, LogTypeMedicationEffect, LogTypeTreatment:
		return true
	}
	return false
}

// MedicalLog is a structured clinical note, distinct from an episode record.
// Scale fields (Severity, MedicationResponse, FunctionalImpact) are 1-10.
// VitalSigns holds the recorded blood pressure / heart rate / temperature
// object verbatim.
type MedicalLog struct {
	ID                   uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID               string     `gorm:"type:char(36);not null;index" json:"userId"`
	EpisodeID            *uint      `gorm:"index" json:"episodeId"`
	LogType              string     `gorm:"size:64;not null;index" json:"logType"`
	Severity             *int       `json:"severity"`
	VitalSigns           JSON       `json:"vitalSigns"`
	Symptoms             StringList `json:"symptoms"`
	PainLocation         string     `gorm:"size:255" json:"painLocation"`
	PainQuality          string     `gorm:"size:255" json:"painQuality"`
	AssociatedSymptoms   StringList `json:"associatedSymptoms"`
	Triggers             StringList `json:"triggers"`
	MedicationResponse   *int       `json:"medicationResponse"`
	FunctionalImpact     *int       `json:"functionalImpact"`
	EnvironmentalFactors StringList `json:"environmentalFactors"`
	Notes                string     `gorm:"type:text" json:"notes"`
	Timestamp            time.Time  `gorm:"not null" json:"timestamp"`
	CreatedAt            time.Time  `json:"createdAt"`

	Episode *Episode `gorm:"foreignKey:EpisodeID" json:"-"`
}

// TableName overrides the table name for MedicalLog
func (MedicalLog) TableName() string {
	return "medical_logs"
}
