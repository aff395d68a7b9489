package schemas

import (
	"strings"
	"time"

	"github.com/techneurology/neurorelief/internal/models"
	"github.com/techneurology/neurorelief/internal/types"
)

// MedicationLogInput is the request payload for recording a medication dose.
type MedicationLogInput struct {
	MedicationID  *types.FlexInt `json:"medicationId"`
	EpisodeID     *types.FlexInt `json:"episodeId"`
	TakenAt       *string        `json:"takenAt"`
	Effectiveness *types.FlexInt `json:"effectiveness"`
	Notes         *string        `json:"notes"`
}

// ValidateCreate checks the payload and builds the log entry to insert.
// TakenAt defaults to now when omitted.
func (in *MedicationLogInput) ValidateCreate(userID string, now time.Time) (*models.MedicationLog, error) {
	entry := &models.MedicationLog{
		UserID:  userID,
		TakenAt: now,
	}

	if in.TakenAt != nil && *in.TakenAt != "" {
		t, err := parseTimestamp("takenAt", *in.TakenAt)
		if err != nil {
			return nil, err
		}
		entry.TakenAt = t
	}

	if in.MedicationID != nil {
		if in.MedicationID.Int() <= 0 {
			return nil, types.Validationf("medicationId must be a positive integer")
		}
		id := uint(in.MedicationID.Int())
		entry.MedicationID = &id
	}
	if in.EpisodeID != nil {
		if in.EpisodeID.Int() <= 0 {
			return nil, types.Validationf("episodeId must be a positive integer")
		}
		id := uint(in.EpisodeID.Int())
		entry.EpisodeID = &id
	}

	if in.Effectiveness != nil {
		if !validScale(in.Effectiveness.Int()) {
			return nil, types.Validationf("effectiveness must be between 1 and 10")
		}
		v := in.Effectiveness.Int()
		entry.Effectiveness = &v
	}

	if in.Notes != nil {
		entry.Notes = strings.TrimSpace(*in.Notes)
	}

	return entry, nil
}
