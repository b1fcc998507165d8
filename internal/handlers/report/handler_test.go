package report_test

import (
	"context"
	"errors"
	"frontdesk/infras/backend"
	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/report/mocks"
	"frontdesk/internal/domains/report/model"
	"frontdesk/internal/domains/report/model/dto"
	"frontdesk/internal/handlers/report"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	service *mocks.MockReportService
	router  chi.Router
}

func setup(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockReportService(ctrl)

	handler := report.New(service, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return fixture{service: service, router: router}
}

func (f fixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req = req.WithContext(backend.ContextWithSession(req.Context(), backend.NewSession("token")))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func TestGetTimesheet(t *testing.T) {
	f := setup(t)

	f.service.EXPECT().Timesheet(gomock.Any(), backend.NewSession("token")).Return(dto.TimesheetResponse{Total: 2}, nil)

	rec := f.do(http.MethodGet, "/reports/timesheet", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":2`)
}

func TestStartShift(t *testing.T) {
	t.Run("shift is opened", func(t *testing.T) {
		f := setup(t)

		f.service.EXPECT().StartShift(gomock.Any(), gomock.Any(), dto.StartShiftRequest{Worker: 4, JTitle: 2}).
			Return(dto.ReportResponse{Report: model.Report{ID: 10}}, nil)

		rec := f.do(http.MethodPost, "/reports/shifts", `{"worker":4,"jtitle":2}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("missing worker never reaches the service", func(t *testing.T) {
		f := setup(t)

		rec := f.do(http.MethodPost, "/reports/shifts", `{"jtitle":2}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "worker is required")
	})
}

func TestFinishShift(t *testing.T) {
	t.Run("empty body finishes now", func(t *testing.T) {
		f := setup(t)

		f.service.EXPECT().FinishShift(gomock.Any(), gomock.Any(), int64(10), dto.FinishShiftRequest{}).
			Return(dto.ReportResponse{Report: model.Report{ID: 10}}, nil)

		rec := f.do(http.MethodPost, "/reports/shifts/10/finish", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("explicit finish time", func(t *testing.T) {
		f := setup(t)

		f.service.EXPECT().FinishShift(gomock.Any(), gomock.Any(), int64(10), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ backend.Session, _ int64, req dto.FinishShiftRequest) (dto.ReportResponse, error) {
				require.NotNil(t, req.Finish)
				assert.Equal(t, 18, req.Finish.UTC().Hour())

				return dto.ReportResponse{}, nil
			})

		rec := f.do(http.MethodPost, "/reports/shifts/10/finish", `{"finish":"2026-03-01T18:00:00Z"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		f := setup(t)

		rec := f.do(http.MethodPost, "/reports/shifts/10/finish", `{"finish":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetPayments(t *testing.T) {
	t.Run("range and grouping are forwarded", func(t *testing.T) {
		f := setup(t)

		f.service.EXPECT().Payments(gomock.Any(), gomock.Any(), gomock.Any(), model.GroupByWorker).
			DoAndReturn(func(_ context.Context, _ backend.Session, period gDto.DateRange, _ model.GroupBy) (model.PaymentsReport, error) {
				assert.Equal(t, "2026-03-01", period.From.Format(time.DateOnly))
				assert.Equal(t, "2026-03-07", period.To.Format(time.DateOnly))

				return model.PaymentsReport{Count: 3}, nil
			})

		rec := f.do(http.MethodGet, "/reports/payments?date_from=2026-03-01&date_to=2026-03-07&group_by=worker", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	tests := []struct {
		name    string
		target  string
		wantMsg string
	}{
		{
			name:    "malformed date_from",
			target:  "/reports/payments?date_from=March",
			wantMsg: "date_from must be a date in YYYY-MM-DD format",
		},
		{
			name:    "malformed date_to",
			target:  "/reports/payments?date_to=2026-02-30",
			wantMsg: "date_to must be a date in YYYY-MM-DD format",
		},
		{
			name:    "reversed range",
			target:  "/reports/payments?date_from=2026-03-07&date_to=2026-03-01",
			wantMsg: "date_to must not be before date_from",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)

			rec := f.do(http.MethodGet, tt.target, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
		})
	}

	t.Run("unknown grouping is rejected by the service", func(t *testing.T) {
		f := setup(t)

		f.service.EXPECT().Payments(gomock.Any(), gomock.Any(), gomock.Any(), model.GroupBy("month")).
			Return(model.PaymentsReport{}, failure.BadRequestFromString("group_by must be date or worker"))

		rec := f.do(http.MethodGet, "/reports/payments?group_by=month", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "group_by must be date or worker")
	})
}

func TestArchivePayments(t *testing.T) {
	t.Run("archive is created", func(t *testing.T) {
		f := setup(t)

		f.service.EXPECT().Archive(gomock.Any(), gomock.Any(), gomock.Any(), model.GroupBy("")).
			Return(dto.ArchiveResponse{URL: "https://files.example/reports/x.json"}, nil)

		rec := f.do(http.MethodPost, "/reports/payments/archive", "")

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "https://files.example/reports/x.json")
	})

	t.Run("storage not configured", func(t *testing.T) {
		f := setup(t)

		f.service.EXPECT().Archive(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(dto.ArchiveResponse{}, failure.Unavailable(errors.New("off"), "report archive storage is not configured"))

		rec := f.do(http.MethodPost, "/reports/payments/archive", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
