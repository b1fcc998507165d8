package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/backend"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/report/model"
	"frontdesk/shared/constant"
	"net/url"
	"strconv"
)

type Report interface {
	ListAll(ctx context.Context, session backend.Session) ([]model.Report, error)
	Create(ctx context.Context, session backend.Session, payload map[string]any) (model.Report, error)
	Finish(ctx context.Context, session backend.Session, id int64, payload map[string]any) (model.Report, error)
}

type repositoryImpl struct {
	client   backend.Client
	pageSize int
	otel     otel.Otel
}

func New(client backend.Client, cfg *config.Config, otel otel.Otel) Report {
	return &repositoryImpl{
		client:   client,
		pageSize: cfg.Backend.PageSize,
		otel:     otel,
	}
}

func (r *repositoryImpl) ListAll(ctx context.Context, session backend.Session) (reports []model.Report, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.ListAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := url.Values{}
	if r.pageSize > 0 {
		query.Set(constant.BackendParamPageSize, strconv.Itoa(r.pageSize))
	}

	reports, err = backend.ListAll[model.Report](ctx, r.client, session, model.PathReports, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	return reports, nil
}

func (r *repositoryImpl) Create(ctx context.Context, session backend.Session, payload map[string]any) (report model.Report, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	resp, err := r.client.Post(ctx, session, model.PathReports, payload)
	if err != nil {
		return report, fmt.Errorf("failed to start shift: %w", err)
	}

	if resp.Empty() {
		return report, nil
	}

	return backend.Decode[model.Report](resp)
}

// Finish closes the shift. Some deployments answer the action with an empty body.
func (r *repositoryImpl) Finish(ctx context.Context, session backend.Session, id int64, payload map[string]any) (report model.Report, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.Finish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	resp, err := r.client.Post(ctx, session, model.FinishPath(id), payload)
	if err != nil {
		return report, fmt.Errorf("failed to finish shift %d: %w", id, err)
	}

	if resp.Empty() {
		return model.Report{ID: id}, nil
	}

	return backend.Decode[model.Report](resp)
}
