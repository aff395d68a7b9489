package storage

import (
	"errors"
	"fmt"

	"github.com/techneurology/neurorelief/internal/models"
	"gorm.io/gorm"
)

// CreateMedication inserts a new medication
func (s *Store) CreateMedication(medication *models.Medication) (*models.Medication, error) {
	if err := s.db.Create(medication).Error; err != nil {
		return nil, fmt.Errorf("create medication: %w", err)
	}
	return medication, nil
}

// GetMedications returns the user's active medications, newest first.
// Deactivated medications stay in the table for log history but are not
// listed.
func (s *Store) GetMedications(userID string) ([]models.Medication, error) {
	var medications []models.Medication
	if err := s.db.Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&medications).Error; err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}
	return medications, nil
}

// UpdateMedication applies the given column updates to a medication owned by
// userID and returns the updated row. Setting is_active=false retires it.
func (s *Store) UpdateMedication(userID string, id uint, updates map[string]interface{}) (*models.Medication, error) {
	var medication models.Medication
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&medication).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find medication: %w", err)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&medication).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("update medication: %w", err)
		}
	}
	return &medication, nil
}
