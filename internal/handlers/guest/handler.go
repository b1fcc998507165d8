package guest

import (
	"frontdesk/infras/backend"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/guest/model"
	"frontdesk/internal/domains/guest/model/dto"
	"frontdesk/internal/domains/guest/service"
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
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.ListGuests)
		routerGroup.Post("/", handler.CreateGuest)
		routerGroup.Put("/{id}", handler.UpdateGuest)
		routerGroup.Delete("/{id}", handler.DeleteGuest)
		routerGroup.Post("/{id}/blacklist", handler.AddToBlacklist)
		routerGroup.Delete("/{id}/blacklist", handler.RemoveFromBlacklist)
	})

	router.Route("/nationalities", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.ListNationalities)
		routerGroup.Post("/", handler.CreateNationality)
	})
}

// ListGuests returns guests with blacklist stats.
// @Summary List guests
// @Description Lists guests, optionally only blacklisted ones, filtered by name, phone or email.
// @Tags Guest
// @Produce json
// @Param search query string false "Name, phone or email fragment"
// @Param blacklisted query boolean false "Only blacklisted guests"
// @Success 200 {object} response.Data[dto.ListGuestsResponse]
// @Failure 502 {object} response.Error
// @Router /v1/guests [get]
// @Security BearerAuth
func (handler *Handler) ListGuests(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListGuests")
	defer scope.End()

	query := request.URL.Query()
	blacklisted, _ := strconv.ParseBool(query.Get(constant.RequestParamBlacklisted))

	res, err := handler.service.List(ctx, backend.SessionFromContext(ctx), dto.ListGuestsFilter{
		Search:          query.Get(constant.RequestParamSearch),
		BlacklistedOnly: blacklisted,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list guests")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateGuest registers a guest.
// @Summary Create a guest
// @Tags Guest
// @Accept json
// @Produce json
// @Param request body dto.SaveGuestRequest true "Guest"
// @Success 201 {object} response.Data[model.Guest]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/guests [post]
// @Security BearerAuth
func (handler *Handler) CreateGuest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGuest")
	defer scope.End()

	req := dto.SaveGuestRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	var guest model.Guest

	guest, err := handler.service.Create(ctx, backend.SessionFromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create guest")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, guest)
}

// UpdateGuest replaces a guest's details.
// @Summary Update a guest
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path int true "Guest ID"
// @Param request body dto.SaveGuestRequest true "Guest"
// @Success 200 {object} response.Data[model.Guest]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/guests/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateGuest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuest")
	defer scope.End()

	id, err := shared.PathID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.SaveGuestRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	guest, err := handler.service.Update(ctx, backend.SessionFromContext(ctx), id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("guestID", id).Msg("failed to update guest")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, guest)
}

// DeleteGuest removes a guest.
// @Summary Delete a guest
// @Tags Guest
// @Produce json
// @Param id path int true "Guest ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/guests/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteGuest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGuest")
	defer scope.End()

	id, err := shared.PathID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	if err := handler.service.Delete(ctx, backend.SessionFromContext(ctx), id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("guestID", id).Msg("failed to delete guest")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Guest deleted successfully")
}

// AddToBlacklist bars a guest from booking.
// @Summary Blacklist a guest
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path int true "Guest ID"
// @Param request body dto.BlacklistRequest true "Reason"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/guests/{id}/blacklist [post]
// @Security BearerAuth
func (handler *Handler) AddToBlacklist(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddToBlacklist")
	defer scope.End()

	id, err := shared.PathID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.BlacklistRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Blacklist(ctx, backend.SessionFromContext(ctx), id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("guestID", id).Msg("failed to blacklist guest")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Guest added to the blacklist")
}

// RemoveFromBlacklist lets a blacklisted guest book again.
// @Summary Remove a guest from the blacklist
// @Tags Guest
// @Produce json
// @Param id path int true "Guest ID"
// @Success 200 {object} response.Message
// @Failure 502 {object} response.Error
// @Router /v1/guests/{id}/blacklist [delete]
// @Security BearerAuth
func (handler *Handler) RemoveFromBlacklist(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveFromBlacklist")
	defer scope.End()

	id, err := shared.PathID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	if err := handler.service.Unblacklist(ctx, backend.SessionFromContext(ctx), id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("guestID", id).Msg("failed to remove guest from the blacklist")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Guest removed from the blacklist")
}

// ListNationalities returns every nationality, the hotel's home nationality first.
// @Summary List nationalities
// @Tags Guest
// @Produce json
// @Success 200 {object} response.Data[dto.ListNationalitiesResponse]
// @Failure 502 {object} response.Error
// @Router /v1/nationalities [get]
// @Security BearerAuth
func (handler *Handler) ListNationalities(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListNationalities")
	defer scope.End()

	res, err := handler.service.Nationalities(ctx, backend.SessionFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list nationalities")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateNationality adds a nationality to pick from.
// @Summary Create a nationality
// @Tags Guest
// @Accept json
// @Produce json
// @Param request body dto.CreateNationalityRequest true "Nationality"
// @Success 201 {object} response.Data[model.Nationality]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/nationalities [post]
// @Security BearerAuth
func (handler *Handler) CreateNationality(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateNationality")
	defer scope.End()

	req := dto.CreateNationalityRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	var nationality model.Nationality

	nationality, err := handler.service.CreateNationality(ctx, backend.SessionFromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create nationality")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, nationality)
}
