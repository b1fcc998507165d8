package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"frontdesk/infras/backend"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/bookingcard/model"
	"frontdesk/internal/domains/bookingcard/model/dto"
	"frontdesk/shared/constant"
	"strconv"
)

type BookingCard interface {
	Create(ctx context.Context, session backend.Session, payload dto.SavePayload) (model.Card, error)
	Update(ctx context.Context, session backend.Session, id int64, payload dto.SavePayload) (model.Card, error)
	Get(ctx context.Context, session backend.Session, id int64) (model.Card, error)
	ListAll(ctx context.Context, session backend.Session) ([]model.Card, error)
	Delete(ctx context.Context, session backend.Session, id int64) error
}

type repositoryImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) BookingCard {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func cardPath(id int64) string {
	return model.PathBookingCards + strconv.FormatInt(id, 10) + "/"
}

func (r *repositoryImpl) Create(ctx context.Context, session backend.Session, payload dto.SavePayload) (card model.Card, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".bookingcard.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	resp, err := r.client.Post(ctx, session, model.PathBookingCards, payload)
	if err != nil {
		return card, fmt.Errorf("failed to create booking card: %w", err)
	}

	return backend.Decode[model.Card](resp)
}

func (r *repositoryImpl) Update(ctx context.Context, session backend.Session, id int64, payload dto.SavePayload) (card model.Card, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".bookingcard.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelCardIDAttributeKey, id)

	resp, err := r.client.Put(ctx, session, cardPath(id), payload)
	if err != nil {
		return card, fmt.Errorf("failed to update booking card %d: %w", id, err)
	}

	return backend.Decode[model.Card](resp)
}

func (r *repositoryImpl) Get(ctx context.Context, session backend.Session, id int64) (card model.Card, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".bookingcard.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelCardIDAttributeKey, id)

	resp, err := r.client.Get(ctx, session, cardPath(id), nil)
	if err != nil {
		return card, fmt.Errorf("failed to get booking card %d: %w", id, err)
	}

	return backend.Decode[model.Card](resp)
}

func (r *repositoryImpl) ListAll(ctx context.Context, session backend.Session) (cards []model.Card, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".bookingcard.ListAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cards, err = backend.ListAll[model.Card](ctx, r.client, session, model.PathBookingCards, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list booking cards: %w", err)
	}

	return cards, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, session backend.Session, id int64) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".bookingcard.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelCardIDAttributeKey, id)

	if _, err = r.client.Delete(ctx, session, cardPath(id)); err != nil {
		return fmt.Errorf("failed to delete booking card %d: %w", id, err)
	}

	return nil
}
