package schemas

import (
	"strings"

	"github.com/techneurology/neurorelief/internal/models"
	"github.com/techneurology/neurorelief/internal/types"
)

// MedicationInput is the request payload for creating or updating a
// medication.
type MedicationInput struct {
	Name        *string                 `json:"name"`
	Dosage      *string                 `json:"dosage"`
	Frequency   *string                 `json:"frequency"`
	SideEffects *types.FlexList[string] `json:"sideEffects"`
	IsActive    *bool                   `json:"isActive"`
}

// ValidateCreate checks the payload and builds the medication to insert.
func (in *MedicationInput) ValidateCreate(userID string) (*models.Medication, error) {
	medication := &models.Medication{
		UserID:   userID,
		IsActive: true,
	}

	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return nil, types.Validationf("name is required")
	}
	medication.Name = strings.TrimSpace(*in.Name)

	if in.Dosage == nil || strings.TrimSpace(*in.Dosage) == "" {
		return nil, types.Validationf("dosage is required")
	}
	medication.Dosage = strings.TrimSpace(*in.Dosage)

	if in.Frequency == nil || strings.TrimSpace(*in.Frequency) == "" {
		return nil, types.Validationf("frequency is required")
	}
	medication.Frequency = strings.TrimSpace(*in.Frequency)

	if in.SideEffects != nil {
		medication.SideEffects = models.StringList(in.SideEffects.Slice())
	}
	if in.IsActive != nil {
		medication.IsActive = *in.IsActive
	}

	return medication, nil
}

// ValidateUpdate returns the column updates for the present fields.
func (in *MedicationInput) ValidateUpdate() (map[string]interface{}, error) {
	updates := make(map[string]interface{})

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, types.Validationf("name must not be empty")
		}
		updates["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Dosage != nil {
		if strings.TrimSpace(*in.Dosage) == "" {
			return nil, types.Validationf("dosage must not be empty")
		}
		updates["dosage"] = strings.TrimSpace(*in.Dosage)
	}
	if in.Frequency != nil {
		if strings.TrimSpace(*in.Frequency) == "" {
			return nil, types.Validationf("frequency must not be empty")
		}
		updates["frequency"] = strings.TrimSpace(*in.Frequency)
	}
	if in.SideEffects != nil {
		updates["side_effects"] = models.StringList(in.SideEffects.Slice())
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}

	return updates, nil
}
