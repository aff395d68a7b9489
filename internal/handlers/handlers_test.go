// handlers_test.go
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

package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/techneurology/neurorelief/internal/models"
	"github.com/techneurology/neurorelief/internal/services"
	"github.com/techneurology/neurorelief/internal/storage"
	"github.com/techneurology/neurorelief/internal/testutil"
	"github.com/techneurology/neurorelief/internal/utils"
)

// newTestApp wires the full route table against an in-memory database, with
// a stub in place of the session middleware so requests arrive already
// authenticated as the returned user.
func newTestApp(t *testing.T) (*fiber.App, *storage.Store, *services.SessionUser) {
	t.Helper()

	store := storage.New(testutil.OpenTestDB(t))
	analytics := services.NewAnalytics(store)
	reports := services.NewReports(store)

	session := &services.SessionUser{
		ID:         uuid.New().String(),
		Email:      "casey@example.com",
		GivenName:  "Casey",
		FamilyName: "Reyes",
	}
	if _, err := store.UpsertUser(&models.User{ID: session.ID, Email: session.Email}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	app := fiber.New()
	api := app.Group("/api")
	api.Use(func(c *fiber.Ctx) error {
		c.Locals("sessionUser", session)
		return c.Next()
	})

	authHandler := &AuthHandler{Store: store}
	episodeHandler := &EpisodeHandler{Store: store}
	medicationHandler := &MedicationHandler{Store: store, Analytics: analytics}
	medicationLogHandler := &MedicationLogHandler{Store: store}
	triggerHandler := &TriggerHandler{Store: store}
	analyticsHandler := &AnalyticsHandler{Analytics: analytics}
	reportHandler := &ReportHandler{Store: store, Reports: reports}
	medicalLogHandler := &MedicalLogHandler{Store: store}
	templateHandler := &AssessmentTemplateHandler{Store: store}

	api.Get("/auth/user", authHandler.GetCurrentUser)
	api.Post("/episodes", episodeHandler.CreateEpisode)
	api.Get("/episodes", episodeHandler.GetEpisodes)
	api.Patch("/episodes/:id", episodeHandler.UpdateEpisode)
	api.Post("/medications", medicationHandler.CreateMedication)
	api.Get("/medications", medicationHandler.GetMedications)
	api.Patch("/medications/:id", medicationHandler.UpdateMedication)
	api.Get("/medications/:id/effectiveness", medicationHandler.GetMedicationEffectiveness)
	api.Post("/medication-logs", medicationLogHandler.CreateMedicationLog)
	api.Get("/medication-logs", medicationLogHandler.GetMedicationLogs)
	api.Post("/triggers", triggerHandler.CreateTrigger)
	api.Get("/triggers", triggerHandler.GetTriggers)
	api.Patch("/triggers/:id/correlation", triggerHandler.UpdateTriggerCorrelation)
	api.Get("/analytics/weekly", analyticsHandler.GetWeeklyStats)
	api.Post("/reports/generate", reportHandler.GenerateReport)
	api.Get("/reports", reportHandler.GetReports)
	api.Post("/medical-logs", medicalLogHandler.CreateMedicalLog)
	api.Get("/medical-logs", medicalLogHandler.GetMedicalLogs)
	api.Get("/medical-logs/episode/:episodeId", medicalLogHandler.GetMedicalLogsByEpisode)
	api.Get("/medical-logs/type/:logType", medicalLogHandler.GetMedicalLogsByType)
	api.Patch("/medical-logs/:id", medicalLogHandler.UpdateMedicalLog)
	api.Delete("/medical-logs/:id", medicalLogHandler.DeleteMedicalLog)
	api.Post("/assessment-templates", templateHandler.CreateAssessmentTemplate)
	api.Get("/assessment-templates", templateHandler.GetAssessmentTemplates)
	api.Patch("/assessment-templates/:id", templateHandler.UpdateAssessmentTemplate)
	api.Delete("/assessment-templates/:id", templateHandler.DeleteAssessmentTemplate)

	return app, store, session
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return res
}

func decodeInto(t *testing.T, res *http.Response, dst interface{}) {
	t.Helper()
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		t.Fatalf("decode body %s: %v", raw, err)
	}
}

func wantStatus(t *testing.T, res *http.Response, code int) {
	t.Helper()
	if res.StatusCode != code {
		raw, _ := io.ReadAll(res.Body)
		t.Fatalf("status = %d, want %d (body %s)", res.StatusCode, code, raw)
	}
}

func TestGetCurrentUserRefreshesProfile(t *testing.T) {
	app, store, session := newTestApp(t)

	res := doJSON(t, app, http.MethodGet, "/api/auth/user", "")
	wantStatus(t, res, http.StatusOK)

	var user models.User
	decodeInto(t, res, &user)
	if user.ID != session.ID || user.Email != session.Email {
		t.Fatalf("user = %+v, want id %s email %s", user, session.ID, session.Email)
	}
	if user.FirstName != "Casey" {
		t.Fatalf("FirstName = %q, want session given name applied", user.FirstName)
	}

	stored, err := store.GetUser(session.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if stored.FirstName != "Casey" || stored.LastName != "Reyes" {
		t.Fatalf("stored profile = %+v, want refreshed names", stored)
	}
}

func TestCreateAndListEpisodes(t *testing.T) {
	app, _, session := newTestApp(t)

	res := doJSON(t, app, http.MethodPost, "/api/episodes",
		`{"intensity":"8","symptoms":"Aura","notes":"started after a run"}`)
	wantStatus(t, res, http.StatusCreated)

	var episode models.Episode
	decodeInto(t, res, &episode)
	if episode.UserID != session.ID {
		t.Fatalf("UserID = %q, want session user", episode.UserID)
	}
	if episode.Intensity != 8 {
		t.Fatalf("Intensity = %d, want 8", episode.Intensity)
	}
	if len(episode.Symptoms) != 1 || episode.Symptoms[0] != "Aura" {
		t.Fatalf("Symptoms = %v, want [Aura]", episode.Symptoms)
	}

	res = doJSON(t, app, http.MethodGet, "/api/episodes", "")
	wantStatus(t, res, http.StatusOK)

	var episodes []models.Episode
	decodeInto(t, res, &episodes)
	if len(episodes) != 1 || episodes[0].ID != episode.ID {
		t.Fatalf("episodes = %v, want the created one", episodes)
	}
}

func TestCreateEpisodeValidation(t *testing.T) {
	app, _, _ := newTestApp(t)

	res := doJSON(t, app, http.MethodPost, "/api/episodes", `{"notes":"no intensity"}`)
	wantStatus(t, res, http.StatusBadRequest)

	var body utils.ErrorMessage
	decodeInto(t, res, &body)
	if body.Message != "intensity is required" {
		t.Fatalf("message = %q, want intensity is required", body.Message)
	}

	res = doJSON(t, app, http.MethodPost, "/api/episodes", `{"intensity":5,`)
	wantStatus(t, res, http.StatusBadRequest)

	decodeInto(t, res, &body)
	if body.Message != "request body is not valid JSON" {
		t.Fatalf("message = %q, want body parse error", body.Message)
	}
}

func TestUpdateEpisodeEndsEpisode(t *testing.T) {
	app, _, _ := newTestApp(t)

	res := doJSON(t, app, http.MethodPost, "/api/episodes",
		`{"intensity":6,"startTime":"2026-08-28T09:00:00Z"}`)
	wantStatus(t, res, http.StatusCreated)

	var episode models.Episode
	decodeInto(t, res, &episode)

	res = doJSON(t, app, http.MethodPatch, "/api/episodes/"+itoa(episode.ID),
		`{"endTime":"2026-08-28T11:30:00Z"}`)
	wantStatus(t, res, http.StatusOK)

	var updated models.Episode
	decodeInto(t, res, &updated)
	if updated.EndTime == nil {
		t.Fatal("EndTime still nil after update")
	}

	res = doJSON(t, app, http.MethodPatch, "/api/episodes/"+itoa(episode.ID),
		`{"endTime":"2026-08-28T08:00:00Z"}`)
	wantStatus(t, res, http.StatusBadRequest)
}

func TestUpdateEpisodeNotFound(t *testing.T) {
	app, _, _ := newTestApp(t)

	res := doJSON(t, app, http.MethodPatch, "/api/episodes/9999", `{"intensity":4}`)
	wantStatus(t, res, http.StatusNotFound)

	var body utils.ErrorMessage
	decodeInto(t, res, &body)
	if body.Message != "Episode not found" {
		t.Fatalf("message = %q, want Episode not found", body.Message)
	}
}

func TestMedicationEffectivenessEndpoint(t *testing.T) {
	app, store, session := newTestApp(t)

	medication, err := store.CreateMedication(&models.Medication{
		UserID: session.ID, Name: "Sumatriptan", Dosage: "50mg", Frequency: "as needed", IsActive: true,
	})
	if err != nil {
		t.Fatalf("seed medication: %v", err)
	}
	for _, rating := range []int{4, 8, 6} {
		r := rating
		_, err := store.CreateMedicationLog(&models.MedicationLog{
			UserID: session.ID, MedicationID: &medication.ID, TakenAt: time.Now(), Effectiveness: &r,
		})
		if err != nil {
			t.Fatalf("seed log: %v", err)
		}
	}

	res := doJSON(t, app, http.MethodGet, "/api/medications/"+itoa(medication.ID)+"/effectiveness", "")
	wantStatus(t, res, http.StatusOK)

	var body struct {
		Effectiveness int `json:"effectiveness"`
	}
	decodeInto(t, res, &body)
	if body.Effectiveness != 60 {
		t.Fatalf("effectiveness = %d, want 60", body.Effectiveness)
	}
}

func TestWeeklyStatsEndpoint(t *testing.T) {
	app, store, session := newTestApp(t)

	_, err := store.CreateEpisode(&models.Episode{
		UserID: session.ID, StartTime: time.Now(), Intensity: 7,
	})
	if err != nil {
		t.Fatalf("seed episode: %v", err)
	}

	res := doJSON(t, app, http.MethodGet, "/api/analytics/weekly", "")
	wantStatus(t, res, http.StatusOK)

	var stats services.WeeklyStats
	decodeInto(t, res, &stats)
	if stats.EpisodeCount != 1 {
		t.Fatalf("EpisodeCount = %d, want 1", stats.EpisodeCount)
	}
	if len(stats.WeeklyData) != 7 {
		t.Fatalf("WeeklyData has %d entries, want 7", len(stats.WeeklyData))
	}
	today := stats.WeeklyData[6]
	if today.Day != "Today" || today.Intensity != 7 {
		t.Fatalf("today entry = %+v, want Today at intensity 7", today)
	}
}

func TestMedicalLogLifecycle(t *testing.T) {
	app, _, _ := newTestApp(t)

	res := doJSON(t, app, http.MethodPost, "/api/medical-logs",
		`{"logType":"symptoms","symptoms":["Nausea","Aura"],"severity":6}`)
	wantStatus(t, res, http.StatusCreated)

	var entry models.MedicalLog
	decodeInto(t, res, &entry)

	res = doJSON(t, app, http.MethodGet, "/api/medical-logs/type/symptoms", "")
	wantStatus(t, res, http.StatusOK)

	var entries []models.MedicalLog
	decodeInto(t, res, &entries)
	if len(entries) != 1 {
		t.Fatalf("got %d symptom logs, want 1", len(entries))
	}
	if len(entries[0].Symptoms) != 2 || entries[0].Symptoms[0] != "Nausea" {
		t.Fatalf("Symptoms = %v, want order preserved", entries[0].Symptoms)
	}

	res = doJSON(t, app, http.MethodDelete, "/api/medical-logs/"+itoa(entry.ID), "")
	wantStatus(t, res, http.StatusOK)

	var body map[string]string
	decodeInto(t, res, &body)
	if body["message"] != "Medical log deleted successfully" {
		t.Fatalf("message = %q, want deletion confirmation", body["message"])
	}

	res = doJSON(t, app, http.MethodDelete, "/api/medical-logs/"+itoa(entry.ID), "")
	wantStatus(t, res, http.StatusNotFound)
}

func TestTriggerCorrelationEndpoint(t *testing.T) {
	app, _, _ := newTestApp(t)

	res := doJSON(t, app, http.MethodPost, "/api/triggers", `{"name":"Stress"}`)
	wantStatus(t, res, http.StatusCreated)

	var trigger models.Trigger
	decodeInto(t, res, &trigger)

	res = doJSON(t, app, http.MethodPatch, "/api/triggers/"+itoa(trigger.ID)+"/correlation",
		`{"correlationScore":0.9}`)
	wantStatus(t, res, http.StatusOK)

	var updated models.Trigger
	decodeInto(t, res, &updated)
	if updated.CorrelationScore == nil || *updated.CorrelationScore != 0.9 {
		t.Fatalf("CorrelationScore = %v, want 0.9", updated.CorrelationScore)
	}

	res = doJSON(t, app, http.MethodPatch, "/api/triggers/"+itoa(trigger.ID)+"/correlation",
		`{"correlationScore":1.5}`)
	wantStatus(t, res, http.StatusBadRequest)
}

func TestGenerateReportEndpoint(t *testing.T) {
	app, _, _ := newTestApp(t)

	res := doJSON(t, app, http.MethodPost, "/api/reports/generate",
		`{"startDate":"2026-08-01","endDate":"2026-08-27","reportType":"monthly"}`)
	wantStatus(t, res, http.StatusOK)

	var report models.MedicalReport
	decodeInto(t, res, &report)
	if report.ReportType != "monthly" {
		t.Fatalf("ReportType = %q, want monthly", report.ReportType)
	}

	res = doJSON(t, app, http.MethodGet, "/api/reports", "")
	wantStatus(t, res, http.StatusOK)

	var reports []models.MedicalReport
	decodeInto(t, res, &reports)
	if len(reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(reports))
	}

	res = doJSON(t, app, http.MethodPost, "/api/reports/generate", `{"startDate":"2026-08-01"}`)
	wantStatus(t, res, http.StatusBadRequest)
}

func TestAssessmentTemplateEndpoints(t *testing.T) {
	app, _, _ := newTestApp(t)

	res := doJSON(t, app, http.MethodPost, "/api/assessment-templates",
		`{"templateName":"Daily check-in","templateType":"daily","questions":[{"q":"Pain level?"}]}`)
	wantStatus(t, res, http.StatusCreated)

	var template models.AssessmentTemplate
	decodeInto(t, res, &template)

	res = doJSON(t, app, http.MethodPatch, "/api/assessment-templates/"+itoa(template.ID),
		`{"isActive":false}`)
	wantStatus(t, res, http.StatusOK)

	var updated models.AssessmentTemplate
	decodeInto(t, res, &updated)
	if updated.IsActive {
		t.Fatal("template still active after update")
	}

	res = doJSON(t, app, http.MethodDelete, "/api/assessment-templates/"+itoa(template.ID), "")
	wantStatus(t, res, http.StatusOK)

	res = doJSON(t, app, http.MethodGet, "/api/assessment-templates", "")
	wantStatus(t, res, http.StatusOK)

	var templates []models.AssessmentTemplate
	decodeInto(t, res, &templates)
	if len(templates) != 0 {
		t.Fatalf("got %d templates after delete, want 0", len(templates))
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
