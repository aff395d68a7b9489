package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/techneurology/neurorelief/internal/models"
	"github.com/techneurology/neurorelief/internal/testutil"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(testutil.OpenTestDB(t))
}

func seedUser(t *testing.T, s *Store) *models.User {
	t.Helper()
	user, err := s.UpsertUser(&models.User{
		ID:    uuid.New().String(),
		Email: uuid.New().String() + "@example.com",
	})
	if err != nil {
		t.Fatalf("UpsertUser: %v", err)
	}
	return user
}

func seedEpisode(t *testing.T, s *Store, userID string, start time.Time, intensity int) *models.Episode {
	t.Helper()
	episode, err := s.CreateEpisode(&models.Episode{
		UserID:    userID,
		StartTime: start,
		Intensity: intensity,
	})
	if err != nil {
		t.Fatalf("CreateEpisode: %v", err)
	}
	return episode
}

func TestUpsertUserRefreshesProfile(t *testing.T) {
	s := newTestStore(t)
	id := uuid.New().String()

	first, err := s.UpsertUser(&models.User{ID: id, Email: "a@example.com", FirstName: "Ada"})
	if err != nil {
		t.Fatalf("UpsertUser insert: %v", err)
	}
	if first.FirstName != "Ada" {
		t.Fatalf("FirstName = %q, want Ada", first.FirstName)
	}

	second, err := s.UpsertUser(&models.User{ID: id, Email: "b@example.com", FirstName: "Beatrice"})
	if err != nil {
		t.Fatalf("UpsertUser update: %v", err)
	}
	if second.Email != "b@example.com" || second.FirstName != "Beatrice" {
		t.Fatalf("profile not refreshed: %+v", second)
	}

	var count int64
	s.db.Model(&models.User{}).Where("id = ?", id).Count(&count)
	if count != 1 {
		t.Fatalf("user rows = %d, want 1", count)
	}
}

func TestGetUserNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.GetUser(uuid.New().String()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestEpisodesNeverCrossUsers(t *testing.T) {
	s := newTestStore(t)
	alice := seedUser(t, s)
	bob := seedUser(t, s)

	mine := seedEpisode(t, s, alice.ID, time.Now(), 5)
	seedEpisode(t, s, bob.ID, time.Now(), 9)

	episodes, err := s.GetEpisodes(alice.ID, 0)
	if err != nil {
		t.Fatalf("GetEpisodes: %v", err)
	}
	if len(episodes) != 1 || episodes[0].ID != mine.ID {
		t.Fatalf("expected only alice's episode, got %+v", episodes)
	}

	if _, err := s.GetEpisode(bob.ID, mine.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-user fetch err = %v, want ErrNotFound", err)
	}
	if _, err := s.UpdateEpisode(bob.ID, mine.ID, map[string]interface{}{"intensity": 1}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-user update err = %v, want ErrNotFound", err)
	}
}

func TestGetEpisodesOrderAndLimit(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	seedEpisode(t, s, user.ID, base, 3)
	seedEpisode(t, s, user.ID, base.Add(48*time.Hour), 5)
	seedEpisode(t, s, user.ID, base.Add(24*time.Hour), 4)

	episodes, err := s.GetEpisodes(user.ID, 2)
	if err != nil {
		t.Fatalf("GetEpisodes: %v", err)
	}
	if len(episodes) != 2 {
		t.Fatalf("len = %d, want 2", len(episodes))
	}
	if !episodes[0].StartTime.After(episodes[1].StartTime) {
		t.Fatalf("episodes not ordered most recent first: %v, %v", episodes[0].StartTime, episodes[1].StartTime)
	}
}

func TestGetEpisodesByDateRangeInclusive(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s)

	start := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC)

	onStart := seedEpisode(t, s, user.ID, start, 4)
	onEnd := seedEpisode(t, s, user.ID, end, 6)
	seedEpisode(t, s, user.ID, end.Add(time.Minute), 8)

	episodes, err := s.GetEpisodesByDateRange(user.ID, start, end)
	if err != nil {
		t.Fatalf("GetEpisodesByDateRange: %v", err)
	}
	if len(episodes) != 2 {
		t.Fatalf("len = %d, want 2 (bounds inclusive)", len(episodes))
	}
	ids := map[uint]bool{episodes[0].ID: true, episodes[1].ID: true}
	if !ids[onStart.ID] || !ids[onEnd.ID] {
		t.Fatalf("range returned wrong episodes: %+v", episodes)
	}
}

func TestUpdateEpisodeSetsEndTime(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s)
	start := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	episode := seedEpisode(t, s, user.ID, start, 7)

	end := start.Add(2 * time.Hour)
	updated, err := s.UpdateEpisode(user.ID, episode.ID, map[string]interface{}{"end_time": end})
	if err != nil {
		t.Fatalf("UpdateEpisode: %v", err)
	}
	if updated.EndTime == nil || !updated.EndTime.Equal(end) {
		t.Fatalf("EndTime = %v, want %v", updated.EndTime, end)
	}
}

func TestGetMedicationsListsActiveOnly(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s)

	active, err := s.CreateMedication(&models.Medication{
		UserID: user.ID, Name: "Sumatriptan", Dosage: "50mg", Frequency: "as needed", IsActive: true,
	})
	if err != nil {
		t.Fatalf("CreateMedication: %v", err)
	}
	retired, err := s.CreateMedication(&models.Medication{
		UserID: user.ID, Name: "Ibuprofen", Dosage: "400mg", Frequency: "as needed", IsActive: true,
	})
	if err != nil {
		t.Fatalf("CreateMedication: %v", err)
	}
	if _, err := s.UpdateMedication(user.ID, retired.ID, map[string]interface{}{"is_active": false}); err != nil {
		t.Fatalf("UpdateMedication: %v", err)
	}

	medications, err := s.GetMedications(user.ID)
	if err != nil {
		t.Fatalf("GetMedications: %v", err)
	}
	if len(medications) != 1 || medications[0].ID != active.ID {
		t.Fatalf("expected only the active medication, got %+v", medications)
	}
}

func TestMedicationEffectivenessMean(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s)
	medication, err := s.CreateMedication(&models.Medication{
		UserID: user.ID, Name: "Rizatriptan", Dosage: "10mg", Frequency: "as needed", IsActive: true,
	})
	if err != nil {
		t.Fatalf("CreateMedication: %v", err)
	}

	for _, rating := range []int{4, 8, 6} {
		r := rating
		if _, err := s.CreateMedicationLog(&models.MedicationLog{
			UserID: user.ID, MedicationID: &medication.ID, TakenAt: time.Now(), Effectiveness: &r,
		}); err != nil {
			t.Fatalf("CreateMedicationLog: %v", err)
		}
	}
	// Unrated intake must not drag the average down
	if _, err := s.CreateMedicationLog(&models.MedicationLog{
		UserID: user.ID, MedicationID: &medication.ID, TakenAt: time.Now(),
	}); err != nil {
		t.Fatalf("CreateMedicationLog: %v", err)
	}

	mean, err := s.MedicationEffectiveness(user.ID, medication.ID)
	if err != nil {
		t.Fatalf("MedicationEffectiveness: %v", err)
	}
	if mean != 6 {
		t.Fatalf("mean = %v, want 6", mean)
	}
}

func TestMedicationEffectivenessNoLogs(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s)

	mean, err := s.MedicationEffectiveness(user.ID, 42)
	if err != nil {
		t.Fatalf("MedicationEffectiveness: %v", err)
	}
	if mean != 0 {
		t.Fatalf("mean = %v, want 0 when no logs exist", mean)
	}
}

func TestMedicalLogSymptomsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s)
	episode := seedEpisode(t, s, user.ID, time.Now(), 6)

	created, err := s.CreateMedicalLog(&models.MedicalLog{
		UserID:    user.ID,
		EpisodeID: &episode.ID,
		LogType:   string(models.LogTypeSymptoms),
		Symptoms:  models.StringList{"Nausea", "Aura"},
		Timestamp: time.Now(),
	})
	if err != nil {
		t.Fatalf("CreateMedicalLog: %v", err)
	}

	logs, err := s.GetMedicalLogsByEpisode(user.ID, episode.ID)
	if err != nil {
		t.Fatalf("GetMedicalLogsByEpisode: %v", err)
	}
	if len(logs) != 1 || logs[0].ID != created.ID {
		t.Fatalf("expected the created log, got %+v", logs)
	}
	got := logs[0].Symptoms
	if len(got) != 2 || got[0] != "Nausea" || got[1] != "Aura" {
		t.Fatalf("symptoms = %v, want [Nausea Aura] with order preserved", got)
	}
}

func TestDeleteMedicalLogScoped(t *testing.T) {
	s := newTestStore(t)
	alice := seedUser(t, s)
	bob := seedUser(t, s)

	created, err := s.CreateMedicalLog(&models.MedicalLog{
		UserID:    alice.ID,
		LogType:   string(models.LogTypeAssessment),
		Timestamp: time.Now(),
	})
	if err != nil {
		t.Fatalf("CreateMedicalLog: %v", err)
	}

	if err := s.DeleteMedicalLog(bob.ID, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-user delete err = %v, want ErrNotFound", err)
	}
	if err := s.DeleteMedicalLog(alice.ID, created.ID); err != nil {
		t.Fatalf("DeleteMedicalLog: %v", err)
	}
	if err := s.DeleteMedicalLog(alice.ID, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestTriggersOrderedByCorrelation(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s)

	weak := 0.2
	strong := 0.9
	if _, err := s.CreateTrigger(&models.Trigger{UserID: user.ID, Name: "Weather", CorrelationScore: &weak}); err != nil {
		t.Fatalf("CreateTrigger: %v", err)
	}
	if _, err := s.CreateTrigger(&models.Trigger{UserID: user.ID, Name: "Stress", CorrelationScore: &strong}); err != nil {
		t.Fatalf("CreateTrigger: %v", err)
	}

	triggers, err := s.GetTriggers(user.ID)
	if err != nil {
		t.Fatalf("GetTriggers: %v", err)
	}
	if len(triggers) != 2 || triggers[0].Name != "Stress" {
		t.Fatalf("triggers not ordered strongest first: %+v", triggers)
	}
}

func TestUpdateTriggerCorrelation(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s)

	trigger, err := s.CreateTrigger(&models.Trigger{UserID: user.ID, Name: "Caffeine"})
	if err != nil {
		t.Fatalf("CreateTrigger: %v", err)
	}

	updated, err := s.UpdateTriggerCorrelation(user.ID, trigger.ID, 0.75)
	if err != nil {
		t.Fatalf("UpdateTriggerCorrelation: %v", err)
	}
	if updated.CorrelationScore == nil || *updated.CorrelationScore != 0.75 {
		t.Fatalf("CorrelationScore = %v, want 0.75", updated.CorrelationScore)
	}

	if _, err := s.UpdateTriggerCorrelation(uuid.New().String(), trigger.ID, 0.5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-user err = %v, want ErrNotFound", err)
	}
}

func TestAssessmentTemplateLifecycle(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s)

	template, err := s.CreateAssessmentTemplate(&models.AssessmentTemplate{
		UserID:       user.ID,
		TemplateName: "Daily check-in",
		TemplateType: "daily",
		Questions:    models.NewJSON([]byte(`[{"q":"Pain level?"}]`)),
		IsActive:     true,
	})
	if err != nil {
		t.Fatalf("CreateAssessmentTemplate: %v", err)
	}

	if _, err := s.UpdateAssessmentTemplate(user.ID, template.ID, map[string]interface{}{"template_name": "Morning check-in"}); err != nil {
		t.Fatalf("UpdateAssessmentTemplate: %v", err)
	}

	templates, err := s.GetAssessmentTemplates(user.ID)
	if err != nil {
		t.Fatalf("GetAssessmentTemplates: %v", err)
	}
	if len(templates) != 1 || templates[0].TemplateName != "Morning check-in" {
		t.Fatalf("templates = %+v", templates)
	}

	if err := s.DeleteAssessmentTemplate(user.ID, template.ID); err != nil {
		t.Fatalf("DeleteAssessmentTemplate: %v", err)
	}
	if err := s.DeleteAssessmentTemplate(user.ID, template.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}
