package storage

import (
	"errors"
	"fmt"

	"github.com/techneurology/neurorelief/internal/models"
	"gorm.io/gorm"
)

// CreateAssessmentTemplate inserts a new template
func (s *Store) CreateAssessmentTemplate(template *models.AssessmentTemplate) (*models.AssessmentTemplate, error) {
	if err := s.db.Create(template).Error; err != nil {
		return nil, fmt.Errorf("create assessment template: %w", err)
	}
	return template, nil
}

// GetAssessmentTemplates returns the user's active templates, newest first
func (s *Store) GetAssessmentTemplates(userID string) ([]models.AssessmentTemplate, error) {
	var templates []models.AssessmentTemplate
	if err := s.db.Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("list assessment templates: %w", err)
	}
	return templates, nil
}

// UpdateAssessmentTemplate applies the given column updates to a template
// owned by userID and returns the updated row.
func (s *Store) UpdateAssessmentTemplate(userID string, id uint, updates map[string]interface{}) (*models.AssessmentTemplate, error) {
	var template models.AssessmentTemplate
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find assessment template: %w", err)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&template).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("update assessment template: %w", err)
		}
	}
	return &template, nil
}

// DeleteAssessmentTemplate removes a template owned by userID
func (s *Store) DeleteAssessmentTemplate(userID string, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.AssessmentTemplate{})
	if res.Error != nil {
		return fmt.Errorf("delete assessment template: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
