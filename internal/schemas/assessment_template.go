package schemas

import (
	"encoding/json"
	"strings"

	"github.com/techneurology/neurorelief/internal/models"
	"github.com/techneurology/neurorelief/internal/types"
)

// AssessmentTemplateInput is the request payload for creating or updating a
// structured assessment template. Questions is kept as raw JSON; the question
// schema is owned by the client.
type AssessmentTemplateInput struct {
	TemplateName *string         `json:"templateName"`
	TemplateType *string         `json:"templateType"`
	Questions    json.RawMessage `json:"questions"`
	IsActive     *bool           `json:"isActive"`
}

// ValidateCreate checks the payload and builds the template to insert.
func (in *AssessmentTemplateInput) ValidateCreate(userID string) (*models.AssessmentTemplate, error) {
	template := &models.AssessmentTemplate{
		UserID:   userID,
		IsActive: true,
	}

	if in.TemplateName == nil || strings.TrimSpace(*in.TemplateName) == "" {
		return nil, types.Validationf("templateName is required")
	}
	template.TemplateName = strings.TrimSpace(*in.TemplateName)

	if in.TemplateType == nil || strings.TrimSpace(*in.TemplateType) == "" {
		return nil, types.Validationf("templateType is required")
	}
	template.TemplateType = strings.TrimSpace(*in.TemplateType)

	if len(in.Questions) == 0 || string(in.Questions) == "null" {
		return nil, types.Validationf("questions is required")
	}
	if !json.Valid(in.Questions) {
		return nil, types.Validationf("questions must be valid JSON")
	}
	template.Questions = models.NewJSON(in.Questions)

	if in.IsActive != nil {
		template.IsActive = *in.IsActive
	}

	return template, nil
}

// ValidateUpdate returns the column updates for the present fields.
func (in *AssessmentTemplateInput) ValidateUpdate() (map[string]interface{}, error) {
	updates := make(map[string]interface{})

	if in.TemplateName != nil {
		if strings.TrimSpace(*in.TemplateName) == "" {
			return nil, types.Validationf("templateName must not be empty")
		}
		updates["template_name"] = strings.TrimSpace(*in.TemplateName)
	}
	if in.TemplateType != nil {
		if strings.TrimSpace(*in.TemplateType) == "" {
			return nil, types.Validationf("templateType must not be empty")
		}
		updates["template_type"] = strings.TrimSpace(*in.TemplateType)
	}
	if len(in.Questions) > 0 && string(in.Questions) != "null" {
		if !json.Valid(in.Questions) {
			return nil, types.Validationf("questions must be valid JSON")
		}
		updates["questions"] = models.NewJSON(in.Questions)
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}

	return updates, nil
}
