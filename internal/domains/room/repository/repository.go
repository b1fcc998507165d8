package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/backend"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/room/model"
	"frontdesk/shared/constant"
	"net/url"
	"strconv"
)

type Room interface {
	ListAll(ctx context.Context, session backend.Session) ([]model.Room, error)
}

type repositoryImpl struct {
	client   backend.Client
	pageSize int
	otel     otel.Otel
}

func New(client backend.Client, cfg *config.Config, otel otel.Otel) Room {
	return &repositoryImpl{
		client:   client,
		pageSize: cfg.Backend.PageSize,
		otel:     otel,
	}
}

// ListAll walks every page of the room list.
func (r *repositoryImpl) ListAll(ctx context.Context, session backend.Session) (rooms []model.Room, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.ListAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := url.Values{}
	if r.pageSize > 0 {
		query.Set(constant.BackendParamPageSize, strconv.Itoa(r.pageSize))
	}

	rooms, err = backend.ListAll[model.Room](ctx, r.client, session, model.PathRooms, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	return rooms, nil
}
