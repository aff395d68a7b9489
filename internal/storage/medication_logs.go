package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/techneurology/neurorelief/internal/models"
)

// CreateMedicationLog inserts a new intake record
func (s *Store) CreateMedicationLog(log *models.MedicationLog) (*models.MedicationLog, error) {
	if err := s.db.Create(log).Error; err != nil {
		return nil, fmt.Errorf("create medication log: %w", err)
	}
	return log, nil
}

// GetMedicationLogs returns the user's intake records, most recent first
func (s *Store) GetMedicationLogs(userID string, limit int) ([]models.MedicationLog, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	var logs []models.MedicationLog
	if err := s.db.Where("user_id = ?", userID).
		Order("taken_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list medication logs: %w", err)
	}
	return logs, nil
}

// GetMedicationLogsByDateRange returns the user's intake records taken
// inside [start, end], most recent first.
func (s *Store) GetMedicationLogsByDateRange(userID string, start, end time.Time) ([]models.MedicationLog, error) {
	var logs []models.MedicationLog
	if err := s.db.Where("user_id = ? AND taken_at >= ? AND taken_at <= ?", userID, start, end).
		Order("taken_at DESC").
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list medication logs by range: %w", err)
	}
	return logs, nil
}

// CountMedicationLogsSince counts the user's intakes at or after since
func (s *Store) CountMedicationLogsSince(userID string, since time.Time) (int64, error) {
	var n int64
	if err := s.db.Model(&models.MedicationLog{}).
		Where("user_id = ? AND taken_at >= ?", userID, since).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count medication logs: %w", err)
	}
	return n, nil
}

// MedicationEffectiveness returns the mean effectiveness across the user's
// logs for one medication. Logs without an effectiveness rating are ignored
// by AVG; the result is 0 when no rated logs exist.
func (s *Store) MedicationEffectiveness(userID string, medicationID uint) (float64, error) {
	var avg sql.NullFloat64
	if err := s.db.Model(&models.MedicationLog{}).
		Select("AVG(effectiveness)").
		Where("user_id = ? AND medication_id = ?", userID, medicationID).
		Scan(&avg).Error; err != nil {
		return 0, fmt.Errorf("medication effectiveness: %w", err)
	}

	if !avg.Valid {
		return 0, nil
	}
	return avg.Float64, nil
}
