package schemas

import (
	"strings"
	"time"

	"github.com/techneurology/neurorelief/internal/models"
	"github.com/techneurology/neurorelief/internal/types"
)

// EpisodeInput is the request payload for creating or updating an episode.
// Pointer fields distinguish "absent" from "zero" so the same shape serves
// partial updates.
type EpisodeInput struct {
	StartTime   *string                 `json:"startTime"`
	EndTime     *string                 `json:"endTime"`
	Intensity   *types.FlexInt          `json:"intensity"`
	Symptoms    *types.FlexList[string] `json:"symptoms"`
	Triggers    *types.FlexList[string] `json:"triggers"`
	Notes       *string                 `json:"notes"`
	IsEmergency *bool                   `json:"isEmergency"`
}

// ValidateCreate checks the payload and builds the episode to insert.
// StartTime defaults to now when omitted.
func (in *EpisodeInput) ValidateCreate(userID string, now time.Time) (*models.Episode, error) {
	episode := &models.Episode{
		UserID:    userID,
		StartTime: now,
	}

	if in.StartTime != nil && *in.StartTime != "" {
		t, err := parseTimestamp("startTime", *in.StartTime)
		if err != nil {
			return nil, err
		}
		episode.StartTime = t
	}

	if in.Intensity == nil {
		return nil, types.Validationf("intensity is required")
	}
	if !validScale(in.Intensity.Int()) {
		return nil, types.Validationf("intensity must be between 1 and 10")
	}
	episode.Intensity = in.Intensity.Int()

	if in.EndTime != nil && *in.EndTime != "" {
		t, err := parseTimestamp("endTime", *in.EndTime)
		if err != nil {
			return nil, err
		}
		if t.Before(episode.StartTime) {
			return nil, types.Validationf("endTime must not be before startTime")
		}
		episode.EndTime = &t
	}

	if in.Symptoms != nil {
		episode.Symptoms = models.StringList(in.Symptoms.Slice())
	}
	if in.Triggers != nil {
		episode.Triggers = models.StringList(in.Triggers.Slice())
	}
	if in.Notes != nil {
		episode.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.IsEmergency != nil {
		episode.IsEmergency = *in.IsEmergency
	}

	return episode, nil
}

// ValidateUpdate checks the present fields against the stored episode and
// returns the column updates to apply.
func (in *EpisodeInput) ValidateUpdate(existing *models.Episode) (map[string]interface{}, error) {
	updates := make(map[string]interface{})

	startTime := existing.StartTime
	if in.StartTime != nil {
		if *in.StartTime == "" {
			return nil, types.Validationf("startTime must not be empty")
		}
		t, err := parseTimestamp("startTime", *in.StartTime)
		if err != nil {
			return nil, err
		}
		startTime = t
		updates["start_time"] = t
	}

	endTime := existing.EndTime
	if in.EndTime != nil {
		if *in.EndTime == "" {
			endTime = nil
			updates["end_time"] = nil
		} else {
			t, err := parseTimestamp("endTime", *in.EndTime)
			if err != nil {
				return nil, err
			}
			endTime = &t
			updates["end_time"] = t
		}
	}

	if endTime != nil && endTime.Before(startTime) {
		return nil, types.Validationf("endTime must not be before startTime")
	}

	if in.Intensity != nil {
		if !validScale(in.Intensity.Int()) {
			return nil, types.Validationf("intensity must be between 1 and 10")
		}
		updates["intensity"] = in.Intensity.Int()
	}
	if in.Symptoms != nil {
		updates["symptoms"] = models.StringList(in.Symptoms.Slice())
	}
	if in.Triggers != nil {
		updates["triggers"] = models.StringList(in.Triggers.Slice())
	}
	if in.Notes != nil {
		updates["notes"] = strings.TrimSpace(*in.Notes)
	}
	if in.IsEmergency != nil {
		updates["is_emergency"] = *in.IsEmergency
	}

	return updates, nil
}
