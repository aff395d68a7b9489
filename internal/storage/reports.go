package storage

import (
	"fmt"

	"github.com/techneurology/neurorelief/internal/models"
)

// CreateMedicalReport persists a generated report as a single insert. Reports
// are immutable: no update or delete surface exists for them.
func (s *Store) CreateMedicalReport(report *models.MedicalReport) (*models.MedicalReport, error) {
	if err := s.db.Create(report).Error; err != nil {
		return nil, fmt.Errorf("create medical report: %w", err)
	}
	return report, nil
}

// GetMedicalReports returns the user's reports, newest generation first
func (s *Store) GetMedicalReports(userID string) ([]models.MedicalReport, error) {
	var reports []models.MedicalReport
	if err := s.db.Where("user_id = ?", userID).
		Order("generated_at DESC").
		Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("list medical reports: %w", err)
	}
	return reports, nil
}
