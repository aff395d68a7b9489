package models

import (
	"time"
)

// MedicalReport is an immutable snapshot of aggregated tracking data over a
// date range. ReportData holds the generated payload verbatim; once a report
// row exists it is never updated.
type MedicalReport struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string    `gorm:"type:char(36);not null;index" json:"userId"`
	ReportType  string    `gorm:"size:64;not null" json:"reportType"`
	StartDate   time.Time `gorm:"type:date;not null" json:"startDate"`
	EndDate     time.Time `gorm:"type:date;not null" json:"endDate"`
	ReportData  JSON      `gorm:"not null" json:"reportData"`
	GeneratedAt time.Time `gorm:"not null" json:"generatedAt"`
}

// TableName overrides the table name for MedicalReport
func (MedicalReport) TableName() string {
	return "medical_reports"
}
