package report

import (
	"errors"
	"frontdesk/infras/backend"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/report/model"
	"frontdesk/internal/domains/report/model/dto"
	"frontdesk/internal/domains/report/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/timesheet", handler.GetTimesheet)
		routerGroup.Post("/shifts", handler.StartShift)
		routerGroup.Post("/shifts/{id}/finish", handler.FinishShift)
		routerGroup.Get("/payments", handler.GetPayments)
		routerGroup.Post("/payments/archive", handler.ArchivePayments)
	})
}

// GetTimesheet lists running and finished shifts.
// @Summary Timesheet
// @Tags Report
// @Produce json
// @Success 200 {object} response.Data[dto.TimesheetResponse]
// @Failure 502 {object} response.Error
// @Router /v1/reports/timesheet [get]
// @Security BearerAuth
func (handler *Handler) GetTimesheet(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTimesheet")
	defer scope.End()

	res, err := handler.service.Timesheet(ctx, backend.SessionFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get timesheet")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// StartShift opens a shift for a worker.
// @Summary Start a shift
// @Tags Report
// @Accept json
// @Produce json
// @Param request body dto.StartShiftRequest true "Worker and job title"
// @Success 201 {object} response.Data[dto.ReportResponse]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/reports/shifts [post]
// @Security BearerAuth
func (handler *Handler) StartShift(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartShift")
	defer scope.End()

	req := dto.StartShiftRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.StartShift(ctx, backend.SessionFromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start shift")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// FinishShift closes a shift, now or at the given time.
// @Summary Finish a shift
// @Tags Report
// @Accept json
// @Produce json
// @Param id path int true "Report ID"
// @Param request body dto.FinishShiftRequest false "Finish time"
// @Success 200 {object} response.Data[dto.ReportResponse]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/reports/shifts/{id}/finish [post]
// @Security BearerAuth
func (handler *Handler) FinishShift(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FinishShift")
	defer scope.End()

	id, err := shared.PathID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.FinishShiftRequest{}
	if err := validator.Validate(request.Body, &req); err != nil && !errors.Is(err, io.EOF) {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.FinishShift(ctx, backend.SessionFromContext(ctx), id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("reportID", id).Msg("failed to finish shift")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetPayments totals shift payments over a date range.
// @Summary Payments report
// @Tags Report
// @Produce json
// @Param date_from query string false "First day (YYYY-MM-DD), defaults to today"
// @Param date_to query string false "Last day (YYYY-MM-DD), defaults to today"
// @Param group_by query string false "date or worker" Enums(date, worker)
// @Success 200 {object} response.Data[model.PaymentsReport]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/reports/payments [get]
// @Security BearerAuth
func (handler *Handler) GetPayments(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayments")
	defer scope.End()

	period := gDto.DateRange{}
	if err := period.FromRequest(request); err != nil {
		response.WithError(writer, err)

		return
	}

	groupBy := model.GroupBy(request.URL.Query().Get(constant.RequestParamGroupBy))

	res, err := handler.service.Payments(ctx, backend.SessionFromContext(ctx), period, groupBy)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("period", period.String()).Msg("failed to get payments report")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ArchivePayments stores the payments report in object storage.
// @Summary Archive payments report
// @Tags Report
// @Produce json
// @Param date_from query string false "First day (YYYY-MM-DD), defaults to today"
// @Param date_to query string false "Last day (YYYY-MM-DD), defaults to today"
// @Param group_by query string false "date or worker" Enums(date, worker)
// @Success 201 {object} response.Data[dto.ArchiveResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/payments/archive [post]
// @Security BearerAuth
func (handler *Handler) ArchivePayments(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ArchivePayments")
	defer scope.End()

	period := gDto.DateRange{}
	if err := period.FromRequest(request); err != nil {
		response.WithError(writer, err)

		return
	}

	groupBy := model.GroupBy(request.URL.Query().Get(constant.RequestParamGroupBy))

	res, err := handler.service.Archive(ctx, backend.SessionFromContext(ctx), period, groupBy)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("period", period.String()).Msg("failed to archive payments report")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}
