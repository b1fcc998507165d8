package agent

import (
	"frontdesk/infras/backend"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/agent/model"
	"frontdesk/internal/domains/agent/model/dto"
	"frontdesk/internal/domains/agent/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Agent
	otel    otel.Otel
}

func New(service service.Agent, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/agents", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.ListAgents)
		routerGroup.Post("/", handler.CreateAgent)
		routerGroup.Put("/{id}", handler.UpdateAgent)
		routerGroup.Delete("/{id}", handler.DeleteAgent)
	})
}

// ListAgents returns agents with activity stats.
// @Summary List agents
// @Description Lists agents filtered by title, tax id or phone.
// @Tags Agent
// @Produce json
// @Param search query string false "Title, tax id or phone fragment"
// @Success 200 {object} response.Data[dto.ListAgentsResponse]
// @Failure 502 {object} response.Error
// @Router /v1/agents [get]
// @Security BearerAuth
func (handler *Handler) ListAgents(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListAgents")
	defer scope.End()

	res, err := handler.service.List(ctx, backend.SessionFromContext(ctx), request.URL.Query().Get(constant.RequestParamSearch))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list agents")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateAgent registers an agent.
// @Summary Create an agent
// @Tags Agent
// @Accept json
// @Produce json
// @Param request body dto.SaveAgentRequest true "Agent"
// @Success 201 {object} response.Data[model.Agent]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/agents [post]
// @Security BearerAuth
func (handler *Handler) CreateAgent(writer http.ResponseWriter, request *http.Request) {
	handler.save(writer, request, nil)
}

// UpdateAgent replaces an agent's details.
// @Summary Update an agent
// @Tags Agent
// @Accept json
// @Produce json
// @Param id path int true "Agent ID"
// @Param request body dto.SaveAgentRequest true "Agent"
// @Success 200 {object} response.Data[model.Agent]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/agents/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateAgent(writer http.ResponseWriter, request *http.Request) {
	id, err := shared.PathID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	handler.save(writer, request, &id)
}

func (handler *Handler) save(writer http.ResponseWriter, request *http.Request, id *int64) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveAgent")
	defer scope.End()

	req := dto.SaveAgentRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode agent")

		response.WithError(writer, err)

		return
	}

	var (
		agent model.Agent
		err   error
	)

	session := backend.SessionFromContext(ctx)
	code := http.StatusCreated

	if id == nil {
		agent, err = handler.service.Create(ctx, session, req)
	} else {
		agent, err = handler.service.Update(ctx, session, *id, req)
		code = http.StatusOK
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save agent")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, code, agent)
}

// DeleteAgent removes an agent.
// @Summary Delete an agent
// @Tags Agent
// @Produce json
// @Param id path int true "Agent ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/agents/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAgent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAgent")
	defer scope.End()

	id, err := shared.PathID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	if err := handler.service.Delete(ctx, backend.SessionFromContext(ctx), id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("agentID", id).Msg("failed to delete agent")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Agent deleted successfully")
}
