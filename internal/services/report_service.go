// report_service.go
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
	"encoding/json"
	"fmt"
	"time"

	"github.com/techneurology/neurorelief/internal/models"
	"github.com/techneurology/neurorelief/internal/schemas"
	"github.com/techneurology/neurorelief/internal/storage"
)

const (
	reportCompany = "TechNeurology"
	reportProduct = "NeuroRelief"
)

// ReportDateRange echoes the requested range inside the report header
type ReportDateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ReportHeader identifies the product and the report parameters
type ReportHeader struct {
	Company     string          `json:"company"`
	Product     string          `json:"product"`
	ReportType  string          `json:"reportType"`
	DateRange   ReportDateRange `json:"dateRange"`
	GeneratedAt string          `json:"generatedAt"`
}

// ReportSummary is the aggregate block at the top of a report
type ReportSummary struct {
	TotalEpisodes      int      `json:"totalEpisodes"`
	AvgIntensity       float64  `json:"avgIntensity"`
	TotalMedications   int      `json:"totalMedications"`
	MostCommonTriggers []string `json:"mostCommonTriggers"`
}

// ReportEpisode is one in-range episode in the detail section
type ReportEpisode struct {
	Date      time.Time `json:"date"`
	Intensity int       `json:"intensity"`
	Duration  *float64  `json:"duration"`
	Symptoms  []string  `json:"symptoms"`
	Triggers  []string  `json:"triggers"`
}

// ReportMedication is one in-range intake in the detail section
type ReportMedication struct {
	Date          time.Time `json:"date"`
	Medication    *uint     `json:"medication"`
	Effectiveness *int      `json:"effectiveness"`
}

// ReportTrigger is one of the user's triggers in the detail section
type ReportTrigger struct {
	Name        string   `json:"name"`
	Correlation *float64 `json:"correlation"`
	Frequency   int      `json:"frequency"`
}

// ReportPayload is the full generated report body. It is marshaled once and
// stored verbatim as the report row's data column.
type ReportPayload struct {
	Header      ReportHeader       `json:"header"`
	Summary     ReportSummary      `json:"summary"`
	Episodes    []ReportEpisode    `json:"episodes"`
	Medications []ReportMedication `json:"medications"`
	Triggers    []ReportTrigger    `json:"triggers"`
}

// ReportService assembles and persists clinical summary reports
type ReportService struct {
	store *storage.Store
	now   func() time.Time
}

// NewReports returns a ReportService backed by store
func NewReports(store *storage.Store) *ReportService {
	return &ReportService{store: store, now: time.Now}
}

// Generate builds the report payload for the requested range and persists it
// as a single insert. The returned report is immutable.
func (r *ReportService) Generate(userID string, req *schemas.ReportRequest) (*models.MedicalReport, error) {
	episodes, err := r.store.GetEpisodesByDateRange(userID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	medLogs, err := r.store.GetMedicationLogsByDateRange(userID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	// Trigger details are deliberately not range-filtered. The trigger list
	// is the user's whole catalog ordered by correlation.
	triggers, err := r.store.GetTriggers(userID)
	if err != nil {
		return nil, err
	}

	generatedAt := r.now()

	payload := ReportPayload{
		Header: ReportHeader{
			Company:    reportCompany,
			Product:    reportProduct,
			ReportType: req.ReportType,
			DateRange: ReportDateRange{
				StartDate: req.StartDate.Format("2006-01-02"),
				EndDate:   req.EndDate.Format("2006-01-02"),
			},
			GeneratedAt: generatedAt.UTC().Format(time.RFC3339),
		},
		Summary: ReportSummary{
			TotalEpisodes:      len(episodes),
			AvgIntensity:       avgIntensity(episodes),
			TotalMedications:   len(medLogs),
			MostCommonTriggers: topTriggerNames(triggers, 3),
		},
		Episodes:    make([]ReportEpisode, 0, len(episodes)),
		Medications: make([]ReportMedication, 0, len(medLogs)),
		Triggers:    make([]ReportTrigger, 0, len(triggers)),
	}

	for _, ep := range episodes {
		payload.Episodes = append(payload.Episodes, ReportEpisode{
			Date:      ep.StartTime,
			Intensity: ep.Intensity,
			Duration:  episodeDuration(ep),
			Symptoms:  ep.Symptoms,
			Triggers:  ep.Triggers,
		})
	}
	for _, entry := range medLogs {
		payload.Medications = append(payload.Medications, ReportMedication{
			Date:          entry.TakenAt,
			Medication:    entry.MedicationID,
			Effectiveness: entry.Effectiveness,
		})
	}
	for _, t := range triggers {
		payload.Triggers = append(payload.Triggers, ReportTrigger{
			Name:        t.Name,
			Correlation: t.CorrelationScore,
			Frequency:   t.Frequency,
		})
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal report payload: %w", err)
	}

	report := &models.MedicalReport{
		UserID:      userID,
		ReportType:  req.ReportType,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		ReportData:  models.NewJSON(raw),
		GeneratedAt: generatedAt,
	}
	return r.store.CreateMedicalReport(report)
}

// avgIntensity averages intensity over the range's episodes, 0 when empty
func avgIntensity(episodes []models.Episode) float64 {
	if len(episodes) == 0 {
		return 0
	}
	sum := 0
	for _, ep := range episodes {
		sum += ep.Intensity
	}
	return float64(sum) / float64(len(episodes))
}

// episodeDuration returns the episode length in hours, nil while still open
func episodeDuration(ep models.Episode) *float64 {
	if ep.EndTime == nil {
		return nil
	}
	hours := ep.EndTime.Sub(ep.StartTime).Hours()
	return &hours
}

func topTriggerNames(triggers []models.Trigger, n int) []string {
	names := make([]string, 0, n)
	for _, t := range triggers {
		if len(names) == n {
			break
		}
		names = append(names, t.Name)
	}
	return names
}
