package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"frontdesk/config"
	"frontdesk/infras/backend"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/repository"
	"frontdesk/shared/constant"
	"frontdesk/shared/event"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	defaultRecoveryPageSize = 10
	defaultGroupConcurrency = 4
)

type Booking interface {
	Create(ctx context.Context, session backend.Session, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	CreateGroup(ctx context.Context, session backend.Session, req dto.CreateGroupRequest) (dto.CreateGroupResponse, error)
	List(ctx context.Context, session backend.Session, from *time.Time) (dto.BoardResponse, error)
	ChangeStatus(ctx context.Context, session backend.Session, id int64, req dto.ChangeStatusRequest) error
}

type serviceImpl struct {
	repo      repository.Booking
	cfg       *config.Config
	otel      otel.Otel
	publisher event.Publisher
}

func New(repo repository.Booking, cfg *config.Config, otel otel.Otel, publisher event.Publisher) Booking {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		otel:      otel,
		publisher: publisher,
	}
}

// Create books a room and returns the new booking's identifier. When the backend does not echo
// the identifier, the most recent bookings are searched for an exact match of what was submitted.
func (s *serviceImpl) Create(ctx context.Context, session backend.Session, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if req.CheckOut < req.CheckIn {
		return res, failure.BadRequestFromString("check_out must not be before check_in")
	}

	agent := model.ResolveAgent(req.Agent, req.CardAgent)

	var createdBy *int64
	if session.HasUser() {
		createdBy = &session.UserID
	}

	created, err := s.repo.Create(ctx, session, req.ToPayload(agent.AgentID, createdBy))
	if err != nil {
		log.Error().Err(err).Int64("room", req.Room).Int64("guest", req.Guest).Msg("failed to create booking")

		return res, err
	}

	resolution := model.ResolveBookingID(created.EchoedID(), nil, req.Key())
	booking := created

	if resolution.Tier == model.IDTierNone {
		resolution, err = s.recoverID(ctx, session, req.Key())
		if err != nil {
			return res, err
		}

		booking = *resolution.Booking
	}

	booking.ID = resolution.ID

	scope.SetAttributes(map[string]any{
		constant.OtelBookingIDAttrKey:  resolution.ID,
		constant.OtelResolutionAttrKey: string(resolution.Tier),
	})

	log.Info().
		Int64("bookingID", resolution.ID).
		Str("idTier", string(resolution.Tier)).
		Str("agentTier", string(agent.Tier)).
		Msg("booking created")

	s.publisher.Publish(ctx, event.BookingCreated, strconv.FormatInt(resolution.ID, 10), booking)

	return dto.CreateBookingResponse{
		ID:        resolution.ID,
		IDTier:    resolution.Tier,
		AgentTier: agent.Tier,
		Booking:   booking,
	}, nil
}

func (s *serviceImpl) recoverID(ctx context.Context, session backend.Session, key model.Key) (model.IDResolution, error) {
	limit := s.cfg.Backend.RecoveryPageSize
	if limit <= 0 {
		limit = defaultRecoveryPageSize
	}

	candidates, err := s.repo.ListRecent(ctx, session, limit)
	if err != nil {
		log.Error().Err(err).Interface("key", key).Msg("booking id recovery lookup failed")

		return model.IDResolution{}, failure.Gateway(model.ErrBookingLookupFailed, model.ErrBookingLookupFailed.Error()+": "+err.Error())
	}

	resolution := model.ResolveBookingID(nil, candidates, key)
	if resolution.Tier == model.IDTierNone {
		log.Error().Interface("key", key).Int("candidates", len(candidates)).Msg("no recent booking matches the created one")

		return resolution, failure.Gateway(model.ErrBookingIDUnrecoverable, model.ErrBookingIDUnrecoverable.Error())
	}

	return resolution, nil
}

// CreateGroup books several rooms at once. Each booking succeeds or fails on its own.
func (s *serviceImpl) CreateGroup(ctx context.Context, session backend.Session, req dto.CreateGroupRequest) (res dto.CreateGroupResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CreateGroup")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if req.CheckOut < req.CheckIn {
		return res, failure.BadRequestFromString("check_out must not be before check_in")
	}

	items := req.Items()
	res.Items = make([]dto.GroupItemResult, len(items))

	var (
		mu sync.Mutex
		g  errgroup.Group
	)

	g.SetLimit(defaultGroupConcurrency)

	for i, item := range items {
		g.Go(func() error {
			result := dto.GroupItemResult{Room: item.Room, Guest: item.Guest}

			created, createErr := s.Create(ctx, session, item)
			if createErr != nil {
				result.Error = createErr.Error()
			} else {
				result.ID = &created.ID
			}

			mu.Lock()
			res.Items[i] = result
			mu.Unlock()

			return nil
		})
	}

	_ = g.Wait()

	for _, item := range res.Items {
		if item.ID != nil {
			res.Created++
		} else {
			res.Failed++
		}
	}

	return res, nil
}

// List returns the booking board: bookings checking in on or after from, grouped by date.
func (s *serviceImpl) List(ctx context.Context, session backend.Session, from *time.Time) (res dto.BoardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.repo.ListAll(ctx, session)
	if err != nil {
		return res, err
	}

	if from != nil {
		res.From = from.Format(constant.DateFormat)
	}

	res.Days = model.GroupByCheckIn(bookings, res.From)

	for _, day := range res.Days {
		res.Total += len(day.Bookings)
	}

	return res, nil
}

func (s *serviceImpl) ChangeStatus(ctx context.Context, session backend.Session, id int64, req dto.ChangeStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ChangeStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	if !req.Status.Valid() {
		return failure.BadRequestFromString("unknown booking status")
	}

	scope.SetAttribute(constant.OtelBookingIDAttrKey, id)

	return s.repo.Patch(ctx, session, id, map[string]any{"status": req.Status})
}
