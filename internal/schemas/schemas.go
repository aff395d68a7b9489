// Package schemas defines the validated request payload for each entity.
// Every input type is shared between the create and update paths: create
// validation produces a complete model, update validation produces the set
// of column updates for the fields actually present in the request.
package schemas

import (
	"time"

	"github.com/techneurology/neurorelief/internal/types"
)

// timeLayouts are accepted for timestamp fields, most specific first
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

const dateLayout = "2006-01-02"

func parseTimestamp(field, value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, types.Validationf("%s must be a valid timestamp", field)
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, types.Validationf("%s must be a date in YYYY-MM-DD form", field)
	}
	return t, nil
}

func validScale(v int) bool {
	return v >= 1 && v <= 10
}
