package booking

import (
	"frontdesk/infras/backend"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Post("/group", handler.CreateGroup)
		routerGroup.Get("/", handler.GetBoard)
		routerGroup.Patch("/{id}/status", handler.ChangeStatus)
	})
}

// CreateBooking creates a booking and returns its backend id.
// @Summary Create a booking
// @Description Creates a booking. The agent defaults to the booking card's agent, and the id is recovered from recent bookings when the backend does not echo it.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.CreateBookingResponse]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, backend.SessionFromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking " + strconv.FormatInt(res.ID, 10) + " created via " + string(res.IDTier))

	response.WithJSON(writer, http.StatusCreated, res)
}

// CreateGroup books several rooms for the same stay.
// @Summary Create a group booking
// @Description Pairs rooms and guests by position and creates one booking per pair. Each booking succeeds or fails on its own.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateGroupRequest true "Group Booking Request"
// @Success 201 {object} response.Data[dto.CreateGroupResponse] "Every booking created"
// @Success 207 {object} response.Data[dto.CreateGroupResponse] "Some bookings failed"
// @Failure 400 {object} response.Error
// @Router /v1/bookings/group [post]
// @Security BearerAuth
func (handler *Handler) CreateGroup(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGroup")
	defer scope.End()

	req := dto.CreateGroupRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CreateGroup(ctx, backend.SessionFromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create group booking")

		response.WithError(writer, err)

		return
	}

	code := http.StatusCreated
	if res.Failed > 0 {
		code = http.StatusMultiStatus
	}

	response.WithJSON(writer, code, res)
}

// GetBoard returns upcoming bookings grouped by check-in date.
// @Summary Booking board
// @Tags Booking
// @Produce json
// @Param date query string false "Earliest check-in date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.BoardResponse]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBoard(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBoard")
	defer scope.End()

	from, err := gDto.DateFromRequest(request, constant.RequestParamDate)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.List(ctx, backend.SessionFromContext(ctx), from)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load booking board")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ChangeStatus moves a booking to booked, checked in or checked out.
// @Summary Change booking status
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body dto.ChangeStatusRequest true "New status"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) ChangeStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangeStatus")
	defer scope.End()

	id, err := shared.PathID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.ChangeStatusRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.ChangeStatus(ctx, backend.SessionFromContext(ctx), id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("bookingID", id).Msg("failed to change booking status")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Booking status updated successfully")
}
