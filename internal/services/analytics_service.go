// analytics_service.go
//
// NeuroRelief migraine tracking API service
// Copyright (c) 2026 TechNeurology
//
// This file is part of neurorelief.
// neurorelief is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// neurorelief is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with neurorelief.
// If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"math"
	"time"

	"github.com/techneurology/neurorelief/internal/storage"
)

// DayIntensity is one bar of the weekly chart
type DayIntensity struct {
	Day       string `json:"day"`
	Intensity int    `json:"intensity"`
}

// WeeklyStats summarizes the trailing 7 days of a user's tracking data
type WeeklyStats struct {
	EpisodeCount    int            `json:"episodeCount"`
	AvgDuration     float64        `json:"avgDuration"`
	MedicationCount int            `json:"medicationCount"`
	WeeklyData      []DayIntensity `json:"weeklyData"`
}

// AnalyticsService computes dashboard aggregates from stored tracking data.
// The clock is a field so tests can pin "today".
type AnalyticsService struct {
	store *storage.Store
	now   func() time.Time
}

// NewAnalytics returns an AnalyticsService backed by store
func NewAnalytics(store *storage.Store) *AnalyticsService {
	return &AnalyticsService{store: store, now: time.Now}
}

// WeeklyStats computes the trailing-7-day aggregates for one user.
// The window is inclusive and ends now.
func (a *AnalyticsService) WeeklyStats(userID string) (*WeeklyStats, error) {
	now := a.now()
	weekAgo := now.AddDate(0, 0, -7)

	episodeCount, err := a.store.CountEpisodesSince(userID, weekAgo)
	if err != nil {
		return nil, err
	}
	medicationCount, err := a.store.CountMedicationLogsSince(userID, weekAgo)
	if err != nil {
		return nil, err
	}
	episodes, err := a.store.GetEpisodesByDateRange(userID, weekAgo, now)
	if err != nil {
		return nil, err
	}

	// Average duration over the week's completed episodes. Episodes still
	// open (no end time) are excluded from numerator and denominator.
	var hours float64
	var completed int
	for _, ep := range episodes {
		if ep.EndTime == nil {
			continue
		}
		hours += ep.EndTime.Sub(ep.StartTime).Hours()
		completed++
	}
	avgDuration := 0.0
	if completed > 0 {
		avgDuration = math.Round(hours/float64(completed)*10) / 10
	}

	// One entry per calendar day, oldest first, today last. Intensity is
	// the day's maximum so overlapping episodes don't inflate the bar.
	weeklyData := make([]DayIntensity, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)

		maxIntensity := 0
		for _, ep := range episodes {
			if !sameDate(ep.StartTime, day) {
				continue
			}
			if ep.Intensity > maxIntensity {
				maxIntensity = ep.Intensity
			}
		}

		label := day.Format("Mon")
		if i == 0 {
			label = "Today"
		}
		weeklyData = append(weeklyData, DayIntensity{Day: label, Intensity: maxIntensity})
	}

	return &WeeklyStats{
		EpisodeCount:    int(episodeCount),
		AvgDuration:     avgDuration,
		MedicationCount: int(medicationCount),
		WeeklyData:      weeklyData,
	}, nil
}

// MedicationEffectiveness returns the mean effectiveness rating for one
// medication scaled to 0-100 for display.
func (a *AnalyticsService) MedicationEffectiveness(userID string, medicationID uint) (int, error) {
	mean, err := a.store.MedicationEffectiveness(userID, medicationID)
	if err != nil {
		return 0, err
	}
	return int(math.Round(mean * 10)), nil
}

// sameDate reports whether two instants fall on the same local calendar day
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
