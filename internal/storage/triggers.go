package storage

import (
	"errors"
	"fmt"

	"github.com/techneurology/neurorelief/internal/models"
	"gorm.io/gorm"
)

// CreateTrigger inserts a new trigger
func (s *Store) CreateTrigger(trigger *models.Trigger) (*models.Trigger, error) {
	if err := s.db.Create(trigger).Error; err != nil {
		return nil, fmt.Errorf("create trigger: %w", err)
	}
	return trigger, nil
}

// GetTriggers returns the user's triggers ordered by correlation score,
// strongest association first.
func (s *Store) GetTriggers(userID string) ([]models.Trigger, error) {
	var triggers []models.Trigger
	if err := s.db.Where("user_id = ?", userID).
		Order("correlation_score DESC").
		Find(&triggers).Error; err != nil {
		return nil, fmt.Errorf("list triggers: %w", err)
	}
	return triggers, nil
}

// UpdateTriggerCorrelation writes an externally computed correlation score
// onto a trigger owned by userID.
func (s *Store) UpdateTriggerCorrelation(userID string, id uint, score float64) (*models.Trigger, error) {
	var trigger models.Trigger
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&trigger).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find trigger: %w", err)
	}

	if err := s.db.Model(&trigger).Update("correlation_score", score).Error; err != nil {
		return nil, fmt.Errorf("update trigger correlation: %w", err)
	}
	return &trigger, nil
}
