package schemas

import (
	"time"

	"github.com/techneurology/neurorelief/internal/types"
)

// GenerateReportInput is the request payload for generating a clinical
// summary report over a date range.
type GenerateReportInput struct {
	StartDate  *string `json:"startDate"`
	EndDate    *string `json:"endDate"`
	ReportType *string `json:"reportType"`
}

// ReportRequest is the validated form of GenerateReportInput.
type ReportRequest struct {
	StartDate  time.Time
	EndDate    time.Time
	ReportType string
}

// Validate parses the dates and applies the reportType default.
func (in *GenerateReportInput) Validate() (*ReportRequest, error) {
	if in.StartDate == nil || *in.StartDate == "" {
		return nil, types.Validationf("startDate is required")
	}
	if in.EndDate == nil || *in.EndDate == "" {
		return nil, types.Validationf("endDate is required")
	}

	start, err := parseDate("startDate", *in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("endDate", *in.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, types.Validationf("endDate must not be before startDate")
	}

	req := &ReportRequest{
		StartDate:  start,
		EndDate:    end,
		ReportType: "custom",
	}
	if in.ReportType != nil && *in.ReportType != "" {
		req.ReportType = *in.ReportType
	}
	return req, nil
}
