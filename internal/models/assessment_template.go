package models

import (
	"time"
)

// AssessmentTemplate is a user-defined questionnaire applied before, during
// or after an episode. Questions is the ordered question list as submitted.
type AssessmentTemplate struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       string    `gorm:"type:char(36);not null;index" json:"userId"`
	TemplateName string    `gorm:"size:255;not null" json:"templateName"`
	TemplateType string    `gorm:"size:64;not null" json:"templateType"`
	Questions    JSON      `gorm:"not null" json:"questions"`
	IsActive     bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TableName overrides the table name for AssessmentTemplate
func (AssessmentTemplate) TableName() string {
	return "assessment_templates"
}
