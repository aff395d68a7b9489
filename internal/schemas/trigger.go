package schemas

import (
	"strings"

	"github.com/techneurology/neurorelief/internal/models"
	"github.com/techneurology/neurorelief/internal/types"
)

// TriggerInput is the request payload for recording a trigger.
type TriggerInput struct {
	Name             *string        `json:"name"`
	Category         *string        `json:"category"`
	CorrelationScore *float64       `json:"correlationScore"`
	Frequency        *types.FlexInt `json:"frequency"`
	LastOccurrence   *string        `json:"lastOccurrence"`
}

// ValidateCreate checks the payload and builds the trigger to insert.
func (in *TriggerInput) ValidateCreate(userID string) (*models.Trigger, error) {
	trigger := &models.Trigger{
		UserID: userID,
	}

	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return nil, types.Validationf("name is required")
	}
	trigger.Name = strings.TrimSpace(*in.Name)

	if in.Category != nil {
		trigger.Category = strings.TrimSpace(*in.Category)
	}
	if in.CorrelationScore != nil {
		if err := validCorrelation(*in.CorrelationScore); err != nil {
			return nil, err
		}
		trigger.CorrelationScore = in.CorrelationScore
	}
	if in.Frequency != nil {
		if in.Frequency.Int() < 0 {
			return nil, types.Validationf("frequency must not be negative")
		}
		trigger.Frequency = in.Frequency.Int()
	}
	if in.LastOccurrence != nil && *in.LastOccurrence != "" {
		t, err := parseTimestamp("lastOccurrence", *in.LastOccurrence)
		if err != nil {
			return nil, err
		}
		trigger.LastOccurrence = &t
	}

	return trigger, nil
}

// CorrelationInput carries a recomputed correlation score for one trigger.
type CorrelationInput struct {
	CorrelationScore *float64 `json:"correlationScore"`
}

// Validate returns the score or a validation error.
func (in *CorrelationInput) Validate() (float64, error) {
	if in.CorrelationScore == nil {
		return 0, types.Validationf("correlationScore is required")
	}
	if err := validCorrelation(*in.CorrelationScore); err != nil {
		return 0, err
	}
	return *in.CorrelationScore, nil
}

func validCorrelation(score float64) error {
	if score < 0 || score > 1 {
		return types.Validationf("correlationScore must be between 0 and 1")
	}
	return nil
}
