package storage

import (
	"errors"
	"fmt"

	"github.com/techneurology/neurorelief/internal/models"
	"gorm.io/gorm"
)

// CreateMedicalLog inserts a new medical log entry
func (s *Store) CreateMedicalLog(log *models.MedicalLog) (*models.MedicalLog, error) {
	if err := s.db.Create(log).Error; err != nil {
		return nil, fmt.Errorf("create medical log: %w", err)
	}
	return log, nil
}

// GetMedicalLogs returns the user's medical logs, most recent first
func (s *Store) GetMedicalLogs(userID string, limit int) ([]models.MedicalLog, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	var logs []models.MedicalLog
	if err := s.db.Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list medical logs: %w", err)
	}
	return logs, nil
}

// GetMedicalLogsByEpisode returns the user's medical logs attached to one
// episode, most recent first.
func (s *Store) GetMedicalLogsByEpisode(userID string, episodeID uint) ([]models.MedicalLog, error) {
	var logs []models.MedicalLog
	if err := s.db.Where("user_id = ? AND episode_id = ?", userID, episodeID).
		Order("timestamp DESC").
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list medical logs by episode: %w", err)
	}
	return logs, nil
}

// GetMedicalLogsByType returns the user's medical logs of one log type,
// most recent first.
func (s *Store) GetMedicalLogsByType(userID string, logType string) ([]models.MedicalLog, error) {
	var logs []models.MedicalLog
	if err := s.db.Where("user_id = ? AND log_type = ?", userID, logType).
		Order("timestamp DESC").
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list medical logs by type: %w", err)
	}
	return logs, nil
}

// UpdateMedicalLog applies the given column updates to a log owned by userID
// and returns the updated row.
func (s *Store) UpdateMedicalLog(userID string, id uint, updates map[string]interface{}) (*models.MedicalLog, error) {
	var log models.MedicalLog
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find medical log: %w", err)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&log).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("update medical log: %w", err)
		}
	}
	return &log, nil
}

// DeleteMedicalLog removes a log owned by userID
func (s *Store) DeleteMedicalLog(userID string, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.MedicalLog{})
	if res.Error != nil {
		return fmt.Errorf("delete medical log: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
