package dto

import (
	"frontdesk/internal/domains/report/model"
	"frontdesk/shared/constant"
	"time"
)

type StartShiftRequest struct {
	Worker int64 `json:"worker" validate:"required,gt=0"`
	JTitle int64 `json:"jtitle" validate:"required,gt=0"`
}

func (r StartShiftRequest) ToPayload() map[string]any {
	return map[string]any{
		"worker": r.Worker,
		"jtitle": r.JTitle,
	}
}

// FinishShiftRequest closes a shift. Without a finish time the backend stamps the current time.
type FinishShiftRequest struct {
	Finish *time.Time `json:"finish"`
}

func (r FinishShiftRequest) ToPayload() map[string]any {
	payload := map[string]any{}
	if r.Finish != nil {
		payload["finish"] = r.Finish.UTC().Format(constant.DateTimeFormat)
	}

	return payload
}

type ReportResponse struct {
	model.Report
	Duration string `json:"duration"`
	Minutes  int64  `json:"duration_minutes"`
}

func ToReportResponse(report model.Report) ReportResponse {
	return ReportResponse{
		Report:   report,
		Duration: report.DurationLabel(),
		Minutes:  int64(report.Duration().Minutes()),
	}
}

type TimesheetResponse struct {
	Total     int              `json:"total"`
	Active    []ReportResponse `json:"active"`
	Completed []ReportResponse `json:"completed"`
}

func ToTimesheetResponse(reports []model.Report) TimesheetResponse {
	active, completed := model.Split(reports)

	res := TimesheetResponse{
		Total:     len(reports),
		Active:    make([]ReportResponse, 0, len(active)),
		Completed: make([]ReportResponse, 0, len(completed)),
	}

	for _, report := range active {
		res.Active = append(res.Active, ToReportResponse(report))
	}

	for _, report := range completed {
		res.Completed = append(res.Completed, ToReportResponse(report))
	}

	return res
}

type ArchiveResponse struct {
	URL    string               `json:"url"`
	Report model.PaymentsReport `json:"report"`
}
