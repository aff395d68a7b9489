package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/techneurology/neurorelief/internal/models"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// defaultListLimit caps list queries when the caller does not pass a limit
const defaultListLimit = 50

// CreateEpisode inserts a new episode
func (s *Store) CreateEpisode(episode *models.Episode) (*models.Episode, error) {
	if err := s.db.Create(episode).Error; err != nil {
		return nil, fmt.Errorf("create episode: %w", err)
	}
	return episode, nil
}

// GetEpisode returns a single episode owned by userID
func (s *Store) GetEpisode(userID string, id uint) (*models.Episode, error) {
	var episode models.Episode
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&episode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get episode: %w", err)
	}
	return &episode, nil
}

// GetEpisodes returns the user's episodes, most recent start first
func (s *Store) GetEpisodes(userID string, limit int) ([]models.Episode, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	var episodes []models.Episode
	if err := s.db.Where("user_id = ?", userID).
		Order("start_time DESC").
		Limit(limit).
		Find(&episodes).Error; err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	return episodes, nil
}

// GetEpisodesByDateRange returns the user's episodes whose start time falls
// inside [start, end], most recent first.
func (s *Store) GetEpisodesByDateRange(userID string, start, end time.Time) ([]models.Episode, error) {
	query := s.db.Where("user_id = ? AND start_time >= ? AND start_time <= ?", userID, start, end)

	// MariaDB occasionally picks the primary key for this scan
	if s.db.Dialector.Name() == "mysql" {
		query = query.Clauses(hints.UseIndex("idx_episodes_user_start"))
	}

	var episodes []models.Episode
	if err := query.Order("start_time DESC").Find(&episodes).Error; err != nil {
		return nil, fmt.Errorf("list episodes by range: %w", err)
	}
	return episodes, nil
}

// CountEpisodesSince counts the user's episodes starting at or after since
func (s *Store) CountEpisodesSince(userID string, since time.Time) (int64, error) {
	var n int64
	if err := s.db.Model(&models.Episode{}).
		Where("user_id = ? AND start_time >= ?", userID, since).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count episodes: %w", err)
	}
	return n, nil
}

// UpdateEpisode applies the given column updates to an episode owned by
// userID and returns the updated row.
func (s *Store) UpdateEpisode(userID string, id uint, updates map[string]interface{}) (*models.Episode, error) {
	episode, err := s.GetEpisode(userID, id)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.db.Model(episode).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("update episode: %w", err)
		}
	}
	return episode, nil
}
