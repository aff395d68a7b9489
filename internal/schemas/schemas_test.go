package schemas

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/techneurology/neurorelief/internal/types"
)

func strPtr(s string) *string { return &s }

func flexInt(t *testing.T, raw string) *types.FlexInt {
	t.Helper()
	var f types.FlexInt
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		t.Fatalf("unmarshal FlexInt %q: %v", raw, err)
	}
	return &f
}

func TestEpisodeCreateRequiresIntensity(t *testing.T) {
	in := EpisodeInput{}
	if _, err := in.ValidateCreate("u1", time.Now()); err == nil {
		t.Fatal("expected validation error for missing intensity")
	}
}

func TestEpisodeCreateIntensityRange(t *testing.T) {
	for _, raw := range []string{"0", "11"} {
		in := EpisodeInput{Intensity: flexInt(t, raw)}
		_, err := in.ValidateCreate("u1", time.Now())
		var vErr *types.ValidationError
		if err == nil || !errors.As(err, &vErr) {
			t.Fatalf("intensity %s: err = %v, want ValidationError", raw, err)
		}
	}
}

func TestEpisodeCreateDefaultsStartToNow(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	in := EpisodeInput{Intensity: flexInt(t, "5")}

	episode, err := in.ValidateCreate("u1", now)
	if err != nil {
		t.Fatalf("ValidateCreate: %v", err)
	}
	if !episode.StartTime.Equal(now) {
		t.Fatalf("StartTime = %v, want %v", episode.StartTime, now)
	}
	if episode.UserID != "u1" {
		t.Fatalf("UserID = %q, want u1", episode.UserID)
	}
}

func TestEpisodeCreateAcceptsStringScaleAndSingleLabel(t *testing.T) {
	var in EpisodeInput
	body := `{"intensity":"7","symptoms":"Nausea","startTime":"2026-08-28T09:00:00Z"}`
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	episode, err := in.ValidateCreate("u1", time.Now())
	if err != nil {
		t.Fatalf("ValidateCreate: %v", err)
	}
	if episode.Intensity != 7 {
		t.Fatalf("Intensity = %d, want 7", episode.Intensity)
	}
	if len(episode.Symptoms) != 1 || episode.Symptoms[0] != "Nausea" {
		t.Fatalf("Symptoms = %v, want [Nausea]", episode.Symptoms)
	}
}

func TestEpisodeCreateRejectsEndBeforeStart(t *testing.T) {
	in := EpisodeInput{
		Intensity: flexInt(t, "5"),
		StartTime: strPtr("2026-08-28T10:00:00Z"),
		EndTime:   strPtr("2026-08-28T09:00:00Z"),
	}
	if _, err := in.ValidateCreate("u1", time.Now()); err == nil {
		t.Fatal("expected validation error for endTime before startTime")
	}
}

func TestEpisodeUpdateChecksEndAgainstStoredStart(t *testing.T) {
	start := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	existing, err := (&EpisodeInput{
		Intensity: flexInt(t, "5"),
		StartTime: strPtr(start.Format(time.RFC3339)),
	}).ValidateCreate("u1", time.Now())
	if err != nil {
		t.Fatalf("seed episode: %v", err)
	}

	bad := EpisodeInput{EndTime: strPtr("2026-08-28T09:00:00Z")}
	if _, err := bad.ValidateUpdate(existing); err == nil {
		t.Fatal("expected validation error for end before stored start")
	}

	good := EpisodeInput{EndTime: strPtr("2026-08-28T12:00:00Z")}
	updates, err := good.ValidateUpdate(existing)
	if err != nil {
		t.Fatalf("ValidateUpdate: %v", err)
	}
	if _, ok := updates["end_time"]; !ok {
		t.Fatalf("updates = %v, want end_time set", updates)
	}
}

func TestEpisodeUpdateClearsEndTime(t *testing.T) {
	end := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	existing, err := (&EpisodeInput{
		Intensity: flexInt(t, "5"),
		StartTime: strPtr("2026-08-28T10:00:00Z"),
		EndTime:   strPtr(end.Format(time.RFC3339)),
	}).ValidateCreate("u1", time.Now())
	if err != nil {
		t.Fatalf("seed episode: %v", err)
	}

	in := EpisodeInput{EndTime: strPtr("")}
	updates, err := in.ValidateUpdate(existing)
	if err != nil {
		t.Fatalf("ValidateUpdate: %v", err)
	}
	if v, ok := updates["end_time"]; !ok || v != nil {
		t.Fatalf("updates[end_time] = %v, want explicit nil", v)
	}
}

func TestTimestampLayouts(t *testing.T) {
	for _, raw := range []string{
		"2026-08-28T09:30:00Z",
		"2026-08-28T09:30:00",
		"2026-08-28T09:30",
		"2026-08-28",
	} {
		if _, err := parseTimestamp("startTime", raw); err != nil {
			t.Fatalf("parseTimestamp(%q): %v", raw, err)
		}
	}
	if _, err := parseTimestamp("startTime", "yesterday"); err == nil {
		t.Fatal("expected error for unparseable timestamp")
	}
}

func TestMedicationCreateRequiresFields(t *testing.T) {
	in := MedicationInput{Name: strPtr("Sumatriptan")}
	if _, err := in.ValidateCreate("u1"); err == nil {
		t.Fatal("expected validation error for missing dosage")
	}

	full := MedicationInput{
		Name:      strPtr("Sumatriptan"),
		Dosage:    strPtr("50mg"),
		Frequency: strPtr("as needed"),
	}
	medication, err := full.ValidateCreate("u1")
	if err != nil {
		t.Fatalf("ValidateCreate: %v", err)
	}
	if !medication.IsActive {
		t.Fatal("new medications should default to active")
	}
}

func TestMedicationLogEffectivenessRange(t *testing.T) {
	in := MedicationLogInput{Effectiveness: flexInt(t, "12")}
	if _, err := in.ValidateCreate("u1", time.Now()); err == nil {
		t.Fatal("expected validation error for effectiveness out of range")
	}
}

func TestMedicationLogDefaultsTakenAt(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	in := MedicationLogInput{MedicationID: flexInt(t, "3")}

	entry, err := in.ValidateCreate("u1", now)
	if err != nil {
		t.Fatalf("ValidateCreate: %v", err)
	}
	if !entry.TakenAt.Equal(now) {
		t.Fatalf("TakenAt = %v, want %v", entry.TakenAt, now)
	}
	if entry.MedicationID == nil || *entry.MedicationID != 3 {
		t.Fatalf("MedicationID = %v, want 3", entry.MedicationID)
	}
}

func TestMedicationLogRejectsNonPositiveIDs(t *testing.T) {
	for _, raw := range []string{"-3", "0"} {
		in := MedicationLogInput{MedicationID: flexInt(t, raw)}
		if _, err := in.ValidateCreate("u1", time.Now()); err == nil {
			t.Fatalf("expected validation error for medicationId %s", raw)
		}

		in = MedicationLogInput{EpisodeID: flexInt(t, raw)}
		if _, err := in.ValidateCreate("u1", time.Now()); err == nil {
			t.Fatalf("expected validation error for episodeId %s", raw)
		}
	}
}

func TestMedicalLogRejectsNonPositiveEpisodeID(t *testing.T) {
	in := MedicalLogInput{LogType: strPtr("symptoms"), EpisodeID: flexInt(t, "-7")}
	if _, err := in.ValidateCreate("u1", time.Now()); err == nil {
		t.Fatal("expected validation error for negative episodeId on create")
	}

	upd := MedicalLogInput{EpisodeID: flexInt(t, "0")}
	if _, err := upd.ValidateUpdate(); err == nil {
		t.Fatal("expected validation error for zero episodeId on update")
	}
}

func TestCorrelationInputBounds(t *testing.T) {
	for _, score := range []float64{-0.1, 1.1} {
		sc := score
		in := CorrelationInput{CorrelationScore: &sc}
		if _, err := in.Validate(); err == nil {
			t.Fatalf("expected validation error for score %v", score)
		}
	}

	sc := 0.5
	in := CorrelationInput{CorrelationScore: &sc}
	got, err := in.Validate()
	if err != nil || got != 0.5 {
		t.Fatalf("Validate = %v, %v; want 0.5, nil", got, err)
	}
}

func TestMedicalLogCreateValidatesType(t *testing.T) {
	in := MedicalLogInput{LogType: strPtr("diary")}
	if _, err := in.ValidateCreate("u1", time.Now()); err == nil {
		t.Fatal("expected validation error for unknown log type")
	}
}

func TestMedicalLogCreateEncodesVitals(t *testing.T) {
	var in MedicalLogInput
	body := `{"logType":"vitals","vitalSigns":{"bloodPressure":"120/80","heartRate":"72","temperature":36.8}}`
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	entry, err := in.ValidateCreate("u1", time.Now())
	if err != nil {
		t.Fatalf("ValidateCreate: %v", err)
	}

	var vitals VitalSignsInput
	if err := json.Unmarshal(entry.VitalSigns.JSON, &vitals); err != nil {
		t.Fatalf("decode stored vitals: %v", err)
	}
	if vitals.BloodPressure != "120/80" {
		t.Fatalf("BloodPressure = %q, want 120/80", vitals.BloodPressure)
	}
	if vitals.HeartRate == nil || vitals.HeartRate.Int() != 72 {
		t.Fatalf("HeartRate = %v, want 72", vitals.HeartRate)
	}
}

func TestReportInputDates(t *testing.T) {
	in := GenerateReportInput{
		StartDate: strPtr("2026-08-01"),
		EndDate:   strPtr("2026-08-27"),
	}
	req, err := in.Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if req.ReportType != "custom" {
		t.Fatalf("ReportType = %q, want custom default", req.ReportType)
	}

	bad := GenerateReportInput{StartDate: strPtr("August 1st"), EndDate: strPtr("2026-08-27")}
	if _, err := bad.Validate(); err == nil {
		t.Fatal("expected validation error for unparseable date")
	}

	inverted := GenerateReportInput{StartDate: strPtr("2026-08-27"), EndDate: strPtr("2026-08-01")}
	if _, err := inverted.Validate(); err == nil {
		t.Fatal("expected validation error for endDate before startDate")
	}
}

func TestAssessmentTemplateRequiresQuestions(t *testing.T) {
	in := AssessmentTemplateInput{
		TemplateName: strPtr("Daily check-in"),
		TemplateType: strPtr("daily"),
	}
	if _, err := in.ValidateCreate("u1"); err == nil {
		t.Fatal("expected validation error for missing questions")
	}

	in.Questions = json.RawMessage(`[{"q":"Pain level?"}]`)
	template, err := in.ValidateCreate("u1")
	if err != nil {
		t.Fatalf("ValidateCreate: %v", err)
	}
	if !template.IsActive {
		t.Fatal("new templates should default to active")
	}
}
