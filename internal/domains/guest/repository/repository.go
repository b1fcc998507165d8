package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/backend"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/guest/model"
	"frontdesk/shared/constant"
	"net/url"
	"strconv"
)

type Guest interface {
	ListAll(ctx context.Context, session backend.Session, blacklistedOnly bool) ([]model.Guest, error)
	Create(ctx context.Context, session backend.Session, payload map[string]any) (model.Guest, error)
	Update(ctx context.Context, session backend.Session, id int64, payload map[string]any) (model.Guest, error)
	Delete(ctx context.Context, session backend.Session, id int64) error
	AddToBlacklist(ctx context.Context, session backend.Session, id int64, reason string) error
	RemoveFromBlacklist(ctx context.Context, session backend.Session, id int64) error
	ListNationalities(ctx context.Context, session backend.Session) ([]model.Nationality, error)
	CreateNationality(ctx context.Context, session backend.Session, payload map[string]any) (model.Nationality, error)
}

type repositoryImpl struct {
	client   backend.Client
	pageSize int
	otel     otel.Otel
}

func New(client backend.Client, cfg *config.Config, otel otel.Otel) Guest {
	return &repositoryImpl{
		client:   client,
		pageSize: cfg.Backend.PageSize,
		otel:     otel,
	}
}

func guestPath(id int64) string {
	return model.PathGuests + strconv.FormatInt(id, 10) + "/"
}

func (r *repositoryImpl) pageQuery() url.Values {
	query := url.Values{}
	if r.pageSize > 0 {
		query.Set(constant.BackendParamPageSize, strconv.Itoa(r.pageSize))
	}

	return query
}

// ListAll walks every page of the guest list, only blacklisted guests when asked to.
func (r *repositoryImpl) ListAll(ctx context.Context, session backend.Session, blacklistedOnly bool) (guests []model.Guest, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.ListAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := r.pageQuery()
	if blacklistedOnly {
		query.Set(constant.BackendParamBlacklisted, strconv.FormatBool(true))
	}

	guests, err = backend.ListAll[model.Guest](ctx, r.client, session, model.PathGuests, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}

	return guests, nil
}

func (r *repositoryImpl) Create(ctx context.Context, session backend.Session, payload map[string]any) (guest model.Guest, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	resp, err := r.client.Post(ctx, session, model.PathGuests, payload)
	if err != nil {
		return guest, fmt.Errorf("failed to create guest: %w", err)
	}

	return backend.Decode[model.Guest](resp)
}

func (r *repositoryImpl) Update(ctx context.Context, session backend.Session, id int64, payload map[string]any) (guest model.Guest, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelGuestIDAttrKey, id)

	resp, err := r.client.Put(ctx, session, guestPath(id), payload)
	if err != nil {
		return guest, fmt.Errorf("failed to update guest %d: %w", id, err)
	}

	return backend.Decode[model.Guest](resp)
}

func (r *repositoryImpl) Delete(ctx context.Context, session backend.Session, id int64) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelGuestIDAttrKey, id)

	if _, err = r.client.Delete(ctx, session, guestPath(id)); err != nil {
		return fmt.Errorf("failed to delete guest %d: %w", id, err)
	}

	return nil
}

func (r *repositoryImpl) AddToBlacklist(ctx context.Context, session backend.Session, id int64, reason string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.AddToBlacklist")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelGuestIDAttrKey, id)

	if _, err = r.client.Post(ctx, session, guestPath(id)+"add_to_blacklist/", map[string]any{"reason": reason}); err != nil {
		return fmt.Errorf("failed to blacklist guest %d: %w", id, err)
	}

	return nil
}

func (r *repositoryImpl) RemoveFromBlacklist(ctx context.Context, session backend.Session, id int64) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.RemoveFromBlacklist")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelGuestIDAttrKey, id)

	if _, err = r.client.Post(ctx, session, guestPath(id)+"remove_from_blacklist/", nil); err != nil {
		return fmt.Errorf("failed to remove guest %d from the blacklist: %w", id, err)
	}

	return nil
}

func (r *repositoryImpl) ListNationalities(ctx context.Context, session backend.Session) (nationalities []model.Nationality, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.ListNationalities")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	nationalities, err = backend.ListAll[model.Nationality](ctx, r.client, session, model.PathNationalities, r.pageQuery())
	if err != nil {
		return nil, fmt.Errorf("failed to list nationalities: %w", err)
	}

	return nationalities, nil
}

func (r *repositoryImpl) CreateNationality(ctx context.Context, session backend.Session, payload map[string]any) (nationality model.Nationality, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.CreateNationality")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	resp, err := r.client.Post(ctx, session, model.PathNationalities, payload)
	if err != nil {
		return nationality, fmt.Errorf("failed to create nationality: %w", err)
	}

	return backend.Decode[model.Nationality](resp)
}
