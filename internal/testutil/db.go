// Package testutil provides shared helpers for package tests: a CGo-free
// in-memory database and container orchestration for end-to-end runs.
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/techneurology/neurorelief/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenTestDB opens a private in-memory SQLite database with the full schema
// migrated. Each call gets its own database so tests stay independent.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Episode{},
		&models.Medication{},
		&models.MedicationLog{},
		&models.Trigger{},
		&models.MedicalLog{},
		&models.MedicalReport{},
		&models.AssessmentTemplate{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}
