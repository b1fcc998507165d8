package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"frontdesk/infras/backend"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared/constant"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, session backend.Session, payload map[string]any) (model.Booking, error)
	Get(ctx context.Context, session backend.Session, id int64) (model.Booking, error)
	ListRecent(ctx context.Context, session backend.Session, limit int) ([]model.Booking, error)
	ListAll(ctx context.Context, session backend.Session) ([]model.Booking, error)
	Patch(ctx context.Context, session backend.Session, id int64, fields map[string]any) error
}

type repositoryImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Booking {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func bookingPath(id int64) string {
	return model.PathBookings + strconv.FormatInt(id, 10) + "/"
}

// Create posts a booking. The returned booking is whatever the backend echoed, which may lack
// an identifier.
func (r *repositoryImpl) Create(ctx context.Context, session backend.Session, payload map[string]any) (booking model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	resp, err := r.client.Post(ctx, session, model.PathBookings, payload)
	if err != nil {
		return booking, fmt.Errorf("failed to create booking: %w", err)
	}

	if resp.Empty() {
		return booking, nil
	}

	if decodeErr := resp.Decode(&booking); decodeErr != nil {
		log.Warn().Err(decodeErr).Msg("undecodable booking echo, treating it as missing")

		return model.Booking{}, nil
	}

	return booking, nil
}

func (r *repositoryImpl) Get(ctx context.Context, session backend.Session, id int64) (booking model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelBookingIDAttrKey, id)

	resp, err := r.client.Get(ctx, session, bookingPath(id), nil)
	if err != nil {
		return booking, fmt.Errorf("failed to get booking %d: %w", id, err)
	}

	return backend.Decode[model.Booking](resp)
}

// ListRecent returns up to limit bookings, newest first.
func (r *repositoryImpl) ListRecent(ctx context.Context, session backend.Session, limit int) (bookings []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ListRecent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := url.Values{}
	query.Set(constant.BackendParamPageSize, strconv.Itoa(limit))
	query.Set(constant.BackendParamOrdering, constant.BackendOrderingNewest)

	bookings, err = backend.List[model.Booking](ctx, r.client, session, model.PathBookings, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent bookings: %w", err)
	}

	return bookings, nil
}

func (r *repositoryImpl) ListAll(ctx context.Context, session backend.Session) (bookings []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ListAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err = backend.ListAll[model.Booking](ctx, r.client, session, model.PathBookings, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, nil
}

func (r *repositoryImpl) Patch(ctx context.Context, session backend.Session, id int64, fields map[string]any) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Patch")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelBookingIDAttrKey, id)

	if _, err = r.client.Patch(ctx, session, bookingPath(id), fields); err != nil {
		return fmt.Errorf("failed to update booking %d: %w", id, err)
	}

	return nil
}
