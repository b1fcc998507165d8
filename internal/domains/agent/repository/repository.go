package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/backend"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/agent/model"
	"frontdesk/shared/constant"
	"net/url"
	"strconv"
)

type Agent interface {
	ListAll(ctx context.Context, session backend.Session) ([]model.Agent, error)
	Create(ctx context.Context, session backend.Session, payload map[string]any) (model.Agent, error)
	Update(ctx context.Context, session backend.Session, id int64, payload map[string]any) (model.Agent, error)
	Delete(ctx context.Context, session backend.Session, id int64) error
}

type repositoryImpl struct {
	client   backend.Client
	pageSize int
	otel     otel.Otel
}

func New(client backend.Client, cfg *config.Config, otel otel.Otel) Agent {
	return &repositoryImpl{
		client:   client,
		pageSize: cfg.Backend.PageSize,
		otel:     otel,
	}
}

func agentPath(id int64) string {
	return model.PathAgents + strconv.FormatInt(id, 10) + "/"
}

func (r *repositoryImpl) ListAll(ctx context.Context, session backend.Session) (agents []model.Agent, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".agent.ListAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := url.Values{}
	if r.pageSize > 0 {
		query.Set(constant.BackendParamPageSize, strconv.Itoa(r.pageSize))
	}

	agents, err = backend.ListAll[model.Agent](ctx, r.client, session, model.PathAgents, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	return agents, nil
}

func (r *repositoryImpl) Create(ctx context.Context, session backend.Session, payload map[string]any) (agent model.Agent, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".agent.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	resp, err := r.client.Post(ctx, session, model.PathAgents, payload)
	if err != nil {
		return agent, fmt.Errorf("failed to create agent: %w", err)
	}

	return backend.Decode[model.Agent](resp)
}

func (r *repositoryImpl) Update(ctx context.Context, session backend.Session, id int64, payload map[string]any) (agent model.Agent, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".agent.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelAgentIDAttrKey, id)

	resp, err := r.client.Put(ctx, session, agentPath(id), payload)
	if err != nil {
		return agent, fmt.Errorf("failed to update agent %d: %w", id, err)
	}

	return backend.Decode[model.Agent](resp)
}

func (r *repositoryImpl) Delete(ctx context.Context, session backend.Session, id int64) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".agent.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelAgentIDAttrKey, id)

	if _, err = r.client.Delete(ctx, session, agentPath(id)); err != nil {
		return fmt.Errorf("failed to delete agent %d: %w", id, err)
	}

	return nil
}
