package schemas

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/techneurology/neurorelief/internal/models"
	"github.com/techneurology/neurorelief/internal/types"
)

// VitalSignsInput is the structured blood pressure / heart rate / temperature
// block attached to vitals-type medical logs.
type VitalSignsInput struct {
	BloodPressure string         `json:"bloodPressure,omitempty"`
	HeartRate     *types.FlexInt `json:"heartRate,omitempty"`
	Temperature   *float64       `json:"temperature,omitempty"`
}

// MedicalLogInput is the request payload for creating or updating a clinical
// log entry.
type MedicalLogInput struct {
	EpisodeID            *types.FlexInt          `json:"episodeId"`
	LogType              *string                 `json:"logType"`
	Severity             *types.FlexInt          `json:"severity"`
	VitalSigns           *VitalSignsInput        `json:"vitalSigns"`
	Symptoms             *types.FlexList[string] `json:"symptoms"`
	PainLocation         *string                 `json:"painLocation"`
	PainQuality          *string                 `json:"painQuality"`
	AssociatedSymptoms   *types.FlexList[string] `json:"associatedSymptoms"`
	Triggers             *types.FlexList[string] `json:"triggers"`
	EnvironmentalFactors *types.FlexList[string] `json:"environmentalFactors"`
	MedicationResponse   *types.FlexInt          `json:"medicationResponse"`
	FunctionalImpact     *types.FlexInt          `json:"functionalImpact"`
	Notes                *string                 `json:"notes"`
	Timestamp            *string                 `json:"timestamp"`
}

// ValidateCreate checks the payload and builds the medical log to insert.
// Timestamp defaults to now when omitted.
func (in *MedicalLogInput) ValidateCreate(userID string, now time.Time) (*models.MedicalLog, error) {
	entry := &models.MedicalLog{
		UserID:    userID,
		Timestamp: now,
	}

	if in.LogType == nil || *in.LogType == "" {
		return nil, types.Validationf("logType is required")
	}
	if !models.ValidLogType(*in.LogType) {
		return nil, types.Validationf("logType %q is not a known log type", *in.LogType)
	}
	entry.LogType = *in.LogType

	if in.Timestamp != nil && *in.Timestamp != "" {
		t, err := parseTimestamp("timestamp", *in.Timestamp)
		if err != nil {
			return nil, err
		}
		entry.Timestamp = t
	}

	if err := in.apply(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ValidateUpdate returns the column updates for the present fields.
func (in *MedicalLogInput) ValidateUpdate() (map[string]interface{}, error) {
	updates := make(map[string]interface{})

	if in.LogType != nil {
		if !models.ValidLogType(*in.LogType) {
			return nil, types.Validationf("logType %q is not a known log type", *in.LogType)
		}
		updates["log_type"] = *in.LogType
	}
	if in.Timestamp != nil && *in.Timestamp != "" {
		t, err := parseTimestamp("timestamp", *in.Timestamp)
		if err != nil {
			return nil, err
		}
		updates["timestamp"] = t
	}
	if in.EpisodeID != nil {
		if in.EpisodeID.Int() <= 0 {
			return nil, types.Validationf("episodeId must be a positive integer")
		}
		updates["episode_id"] = uint(in.EpisodeID.Int())
	}
	if in.Severity != nil {
		if !validScale(in.Severity.Int()) {
			return nil, types.Validationf("severity must be between 1 and 10")
		}
		updates["severity"] = in.Severity.Int()
	}
	if in.VitalSigns != nil {
		raw, err := marshalVitals(in.VitalSigns)
		if err != nil {
			return nil, err
		}
		updates["vital_signs"] = raw
	}
	if in.Symptoms != nil {
		updates["symptoms"] = models.StringList(in.Symptoms.Slice())
	}
	if in.PainLocation != nil {
		updates["pain_location"] = strings.TrimSpace(*in.PainLocation)
	}
	if in.PainQuality != nil {
		updates["pain_quality"] = strings.TrimSpace(*in.PainQuality)
	}
	if in.AssociatedSymptoms != nil {
		updates["associated_symptoms"] = models.StringList(in.AssociatedSymptoms.Slice())
	}
	if in.Triggers != nil {
		updates["triggers"] = models.StringList(in.Triggers.Slice())
	}
	if in.EnvironmentalFactors != nil {
		updates["environmental_factors"] = models.StringList(in.EnvironmentalFactors.Slice())
	}
	if in.MedicationResponse != nil {
		if !validScale(in.MedicationResponse.Int()) {
			return nil, types.Validationf("medicationResponse must be between 1 and 10")
		}
		updates["medication_response"] = in.MedicationResponse.Int()
	}
	if in.FunctionalImpact != nil {
		if !validScale(in.FunctionalImpact.Int()) {
			return nil, types.Validationf("functionalImpact must be between 1 and 10")
		}
		updates["functional_impact"] = in.FunctionalImpact.Int()
	}
	if in.Notes != nil {
		updates["notes"] = strings.TrimSpace(*in.Notes)
	}

	return updates, nil
}

func (in *MedicalLogInput) apply(entry *models.MedicalLog) error {
	if in.EpisodeID != nil {
		if in.EpisodeID.Int() <= 0 {
			return types.Validationf("episodeId must be a positive integer")
		}
		id := uint(in.EpisodeID.Int())
		entry.EpisodeID = &id
	}
	if in.Severity != nil {
		if !validScale(in.Severity.Int()) {
			return types.Validationf("severity must be between 1 and 10")
		}
		v := in.Severity.Int()
		entry.Severity = &v
	}
	if in.VitalSigns != nil {
		raw, err := marshalVitals(in.VitalSigns)
		if err != nil {
			return err
		}
		entry.VitalSigns = raw
	}
	if in.Symptoms != nil {
		entry.Symptoms = models.StringList(in.Symptoms.Slice())
	}
	if in.PainLocation != nil {
		entry.PainLocation = strings.TrimSpace(*in.PainLocation)
	}
	if in.PainQuality != nil {
		entry.PainQuality = strings.TrimSpace(*in.PainQuality)
	}
	if in.AssociatedSymptoms != nil {
		entry.AssociatedSymptoms = models.StringList(in.AssociatedSymptoms.Slice())
	}
	if in.Triggers != nil {
		entry.Triggers = models.StringList(in.Triggers.Slice())
	}
	if in.EnvironmentalFactors != nil {
		entry.EnvironmentalFactors = models.StringList(in.EnvironmentalFactors.Slice())
	}
	if in.MedicationResponse != nil {
		if !validScale(in.MedicationResponse.Int()) {
			return types.Validationf("medicationResponse must be between 1 and 10")
		}
		v := in.MedicationResponse.Int()
		entry.MedicationResponse = &v
	}
	if in.FunctionalImpact != nil {
		if !validScale(in.FunctionalImpact.Int()) {
			return types.Validationf("functionalImpact must be between 1 and 10")
		}
		v := in.FunctionalImpact.Int()
		entry.FunctionalImpact = &v
	}
	if in.Notes != nil {
		entry.Notes = strings.TrimSpace(*in.Notes)
	}
	return nil
}

func marshalVitals(v *VitalSignsInput) (models.JSON, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return models.JSON{}, types.Validationf("vitalSigns could not be encoded")
	}
	return models.NewJSON(raw), nil
}
