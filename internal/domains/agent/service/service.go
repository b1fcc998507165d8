package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Agent=MockAgentService

import (
	"context"
	"frontdesk/infras/backend"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/agent/model"
	"frontdesk/internal/domains/agent/model/dto"
	"frontdesk/internal/domains/agent/repository"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
	"strings"
)

type Agent interface {
	List(ctx context.Context, session backend.Session, search string) (dto.ListAgentsResponse, error)
	Create(ctx context.Context, session backend.Session, req dto.SaveAgentRequest) (model.Agent, error)
	Update(ctx context.Context, session backend.Session, id int64, req dto.SaveAgentRequest) (model.Agent, error)
	Delete(ctx context.Context, session backend.Session, id int64) error
}

type serviceImpl struct {
	repo repository.Agent
	otel otel.Otel
}

func New(repo repository.Agent, otel otel.Otel) Agent {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// List returns the agents matching search, with stats over every agent.
func (s *serviceImpl) List(ctx context.Context, session backend.Session, search string) (res dto.ListAgentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".agent.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	all, err := s.repo.ListAll(ctx, session)
	if err != nil {
		return res, err
	}

	res.Agents = make([]model.Agent, 0, len(all))
	for _, agent := range all {
		if agent.Matches(search) {
			res.Agents = append(res.Agents, agent)
		}
	}

	res.Stats = model.CountByActivity(all)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, session backend.Session, req dto.SaveAgentRequest) (agent model.Agent, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".agent.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validateAgent(&req); err != nil {
		return agent, err
	}

	return s.repo.Create(ctx, session, req.ToPayload())
}

func (s *serviceImpl) Update(ctx context.Context, session backend.Session, id int64, req dto.SaveAgentRequest) (agent model.Agent, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".agent.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelAgentIDAttrKey, id)

	if err = validateAgent(&req); err != nil {
		return agent, err
	}

	return s.repo.Update(ctx, session, id, req.ToPayload())
}

func validateAgent(req *dto.SaveAgentRequest) error {
	if err := validator.ValidateStruct(req); err != nil {
		return err
	}

	if strings.TrimSpace(req.FullTitle) == "" {
		return failure.BadRequestFromString("full_title must not be blank")
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, session backend.Session, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".agent.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelAgentIDAttrKey, id)

	return s.repo.Delete(ctx, session, id)
}
