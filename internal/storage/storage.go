// Package storage owns all database access. Every query for a user-scoped
// entity filters by the owning user id here, never in the callers.
package storage

import (
	"errors"
	"fmt"

	"github.com/techneurology/neurorelief/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a requested row does not exist or is owned by
// a different user.
var ErrNotFound = errors.New("not found")

// Store wraps the database handle. It is constructed once per process and
// injected into handlers and services.
type Store struct {
	db *gorm.DB
}

// New constructs a Store
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// GetUser returns the user row for id
func (s *Store) GetUser(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// UpsertUser inserts the user row or refreshes the profile fields when the
// id already exists.
func (s *Store) UpsertUser(user *models.User) (*models.User, error) {
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "first_name", "last_name", "profile_image_url", "updated_at"}),
	}).Create(user).Error; err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}

	if err := s.db.Where("id = ?", user.ID).First(user).Error; err != nil {
		return nil, fmt.Errorf("reload user: %w", err)
	}
	return user, nil
}
