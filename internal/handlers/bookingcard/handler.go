package bookingcard

import (
	"frontdesk/infras/backend"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/bookingcard/model/dto"
	"frontdesk/internal/domains/bookingcard/service"
	paymentDto "frontdesk/internal/domains/payment/model/dto"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.BookingCard
	otel    otel.Otel
}

func New(service service.BookingCard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/booking-cards", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.ListCards)
		routerGroup.Post("/", handler.CreateCard)
		routerGroup.Get("/{id}", handler.GetCard)
		routerGroup.Put("/{id}", handler.UpdateCard)
		routerGroup.Delete("/{id}", handler.DeleteCard)
		routerGroup.Post("/{id}/check-out", handler.CheckOut)
		routerGroup.Get("/{id}/payments", handler.GetPayments)
		routerGroup.Post("/{id}/payments", handler.RecordPayment)
	})
}

// ListCards returns every booking card with its reconciliation.
// @Summary List booking cards
// @Description List booking cards with payment status, optionally filtered by guest name or card id.
// @Tags BookingCard
// @Produce json
// @Param search query string false "Guest name or card id fragment"
// @Success 200 {object} response.Data[dto.ListCardsResponse]
// @Failure 502 {object} response.Error
// @Router /v1/booking-cards [get]
// @Security BearerAuth
func (handler *Handler) ListCards(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListCards")
	defer scope.End()

	res, err := handler.service.List(ctx, backend.SessionFromContext(ctx), request.URL.Query().Get(constant.RequestParamSearch))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list booking cards")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateCard creates a booking card and propagates its agent to the bookings.
// @Summary Create a booking card
// @Description Validates the card, creates it and copies the card agent onto every attached booking.
// @Tags BookingCard
// @Accept json
// @Produce json
// @Param request body dto.SaveCardRequest true "Booking card"
// @Success 201 {object} response.Data[dto.SaveCardResponse]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/booking-cards [post]
// @Security BearerAuth
func (handler *Handler) CreateCard(writer http.ResponseWriter, request *http.Request) {
	handler.save(writer, request, nil)
}

// UpdateCard replaces a booking card and propagates its agent to the bookings.
// @Summary Update a booking card
// @Tags BookingCard
// @Accept json
// @Produce json
// @Param id path int true "Booking card ID"
// @Param request body dto.SaveCardRequest true "Booking card"
// @Success 200 {object} response.Data[dto.SaveCardResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/booking-cards/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateCard(writer http.ResponseWriter, request *http.Request) {
	id, err := shared.PathID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	handler.save(writer, request, &id)
}

func (handler *Handler) save(writer http.ResponseWriter, request *http.Request, id *int64) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveCard")
	defer scope.End()

	req := dto.SaveCardRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode booking card")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Save(ctx, backend.SessionFromContext(ctx), id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save booking card")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking card " + strconv.FormatInt(res.Card.ID, 10) + " saved")

	code := http.StatusOK
	if res.Created {
		code = http.StatusCreated
	}

	response.WithJSON(writer, code, res)
}

// GetCard returns a booking card with its payments.
// @Summary Get a booking card
// @Tags BookingCard
// @Produce json
// @Param id path int true "Booking card ID"
// @Success 200 {object} response.Data[dto.CardDetailResponse]
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/booking-cards/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCard(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCard")
	defer scope.End()

	id, err := shared.PathID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Get(ctx, backend.SessionFromContext(ctx), id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("cardID", id).Msg("failed to get booking card")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteCard removes a booking card.
// @Summary Delete a booking card
// @Tags BookingCard
// @Produce json
// @Param id path int true "Booking card ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/booking-cards/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCard(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCard")
	defer scope.End()

	id, err := shared.PathID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	if err := handler.service.Delete(ctx, backend.SessionFromContext(ctx), id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("cardID", id).Msg("failed to delete booking card")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Booking card deleted successfully")
}

// CheckOut marks every booking of the card as checked out.
// @Summary Check out all bookings of a card
// @Tags BookingCard
// @Produce json
// @Param id path int true "Booking card ID"
// @Success 200 {object} response.Data[dto.CheckOutResponse]
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/booking-cards/{id}/check-out [post]
// @Security BearerAuth
func (handler *Handler) CheckOut(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer scope.End()

	id, err := shared.PathID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CheckOutAll(ctx, backend.SessionFromContext(ctx), id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("cardID", id).Ints64("checkedOut", res.CheckedOut).Msg("failed to check out booking card")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetPayments returns the card's payments of every kind and its reconciliation.
// @Summary Get booking card payments
// @Tags BookingCard
// @Produce json
// @Param id path int true "Booking card ID"
// @Success 200 {object} response.Data[paymentDto.CardPaymentsResponse]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/booking-cards/{id}/payments [get]
// @Security BearerAuth
func (handler *Handler) GetPayments(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayments")
	defer scope.End()

	id, err := shared.PathID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Payments(ctx, backend.SessionFromContext(ctx), id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("cardID", id).Msg("failed to get booking card payments")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// RecordPayment records a card, cash or bank payment against the card.
// @Summary Record a payment
// @Tags BookingCard
// @Accept json
// @Produce json
// @Param id path int true "Booking card ID"
// @Param request body paymentDto.RecordPaymentRequest true "Payment"
// @Success 201 {object} response.Data[paymentDto.RecordPaymentResponse]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/booking-cards/{id}/payments [post]
// @Security BearerAuth
func (handler *Handler) RecordPayment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordPayment")
	defer scope.End()

	id, err := shared.PathID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := paymentDto.RecordPaymentRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate payment")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.RecordPayment(ctx, backend.SessionFromContext(ctx), id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("cardID", id).Str("kind", string(req.Kind)).Msg("failed to record payment")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}
