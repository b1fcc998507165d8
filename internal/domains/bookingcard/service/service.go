package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=BookingCard=MockBookingCardService

import (
	"context"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/backend"
	"frontdesk/infras/otel"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepository "frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/bookingcard/model"
	"frontdesk/internal/domains/bookingcard/model/dto"
	"frontdesk/internal/domains/bookingcard/repository"
	paymentModel "frontdesk/internal/domains/payment/model"
	paymentDto "frontdesk/internal/domains/payment/model/dto"
	paymentService "frontdesk/internal/domains/payment/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/event"
	"frontdesk/shared/failure"
	"strconv"

	"github.com/rs/zerolog/log"
)

type BookingCard interface {
	Save(ctx context.Context, session backend.Session, id *int64, req dto.SaveCardRequest) (dto.SaveCardResponse, error)
	Get(ctx context.Context, session backend.Session, id int64) (dto.CardDetailResponse, error)
	List(ctx context.Context, session backend.Session, search string) (dto.ListCardsResponse, error)
	Delete(ctx context.Context, session backend.Session, id int64) error
	CheckOutAll(ctx context.Context, session backend.Session, id int64) (dto.CheckOutResponse, error)
	Payments(ctx context.Context, session backend.Session, id int64) (paymentDto.CardPaymentsResponse, error)
	RecordPayment(ctx context.Context, session backend.Session, id int64, req paymentDto.RecordPaymentRequest) (paymentDto.RecordPaymentResponse, error)
}

type serviceImpl struct {
	repo      repository.BookingCard
	bookings  bookingRepository.Booking
	payments  paymentService.Payment
	cfg       *config.Config
	otel      otel.Otel
	publisher event.Publisher
}

func New(
	repo repository.BookingCard,
	bookings bookingRepository.Booking,
	payments paymentService.Payment,
	cfg *config.Config,
	otel otel.Otel,
	publisher event.Publisher,
) BookingCard {
	return &serviceImpl{
		repo:      repo,
		bookings:  bookings,
		payments:  payments,
		cfg:       cfg,
		otel:      otel,
		publisher: publisher,
	}
}

// Save creates the card when id is nil and replaces it otherwise. The request is validated in
// full before the backend is contacted. A card-level agent is then copied onto every submitted
// booking, one booking at a time; those updates never fail the save.
func (s *serviceImpl) Save(ctx context.Context, session backend.Session, id *int64, req dto.SaveCardRequest) (res dto.SaveCardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".bookingcard.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	normalized, err := req.Normalize()
	if err != nil {
		return res, err
	}

	if normalized.QuantitiesDropped {
		log.Warn().Msg("goods/services quantities above one are not stored by the backend, only identifiers are sent")
	}

	var card model.Card

	if id == nil {
		card, err = s.repo.Create(ctx, session, normalized.Payload)
	} else {
		if *id <= 0 {
			return res, failure.BadRequestFromString("booking card id must be a positive integer")
		}

		card, err = s.repo.Update(ctx, session, *id, normalized.Payload)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to save booking card")

		return res, err
	}

	scope.SetAttribute(constant.OtelCardIDAttributeKey, card.ID)

	res = dto.SaveCardResponse{
		Card:              card,
		Created:           id == nil,
		QuantitiesDropped: normalized.QuantitiesDropped,
		Propagation: dto.Propagation{
			AgentID: normalized.Agent,
			Updated: []int64{},
			Failed:  []dto.PropagationFailure{},
		},
	}

	if normalized.Agent != nil {
		res.Propagation = s.propagateAgent(ctx, session, *normalized.Agent, normalized.Payload.Bookings)
	}

	s.publisher.Publish(ctx, event.BookingCardSaved, strconv.FormatInt(card.ID, 10), card)

	return res, nil
}

func (s *serviceImpl) propagateAgent(ctx context.Context, session backend.Session, agent int64, bookingIDs []int64) dto.Propagation {
	result := dto.Propagation{
		AgentID:   &agent,
		Attempted: len(bookingIDs),
		Updated:   []int64{},
		Failed:    []dto.PropagationFailure{},
	}

	for _, bookingID := range bookingIDs {
		if err := s.bookings.Patch(ctx, session, bookingID, map[string]any{"agent": agent}); err != nil {
			log.Warn().
				Err(err).
				Int64("bookingID", bookingID).
				Int64("agentID", agent).
				Msg("partial propagation: booking keeps its previous agent")

			result.Failed = append(result.Failed, dto.PropagationFailure{BookingID: bookingID, Error: err.Error()})

			continue
		}

		result.Updated = append(result.Updated, bookingID)
	}

	return result
}

// Get returns the card with its payments and reconciliation.
func (s *serviceImpl) Get(ctx context.Context, session backend.Session, id int64) (res dto.CardDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".bookingcard.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelCardIDAttributeKey, id)

	card, err := s.repo.Get(ctx, session, id)
	if err != nil {
		return res, err
	}

	payments, err := s.payments.Collect(ctx, session, card.ID)
	if err != nil {
		return res, err
	}

	return dto.CardDetailResponse{
		Card:           card,
		Agent:          card.CardAgent(),
		Payments:       payments,
		Reconciliation: paymentModel.Reconcile(payments, card.TotalAmount),
	}, nil
}

// List returns the cards matching search, each reconciled against its payments.
func (s *serviceImpl) List(ctx context.Context, session backend.Session, search string) (res dto.ListCardsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".bookingcard.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	all, err := s.repo.ListAll(ctx, session)
	if err != nil {
		return res, err
	}

	cards := make([]model.Card, 0, len(all))
	ids := make([]int64, 0, len(all))

	for _, card := range all {
		if card.Matches(search) {
			cards = append(cards, card)
			ids = append(ids, card.ID)
		}
	}

	payments, err := s.payments.CollectMany(ctx, session, ids)
	if err != nil {
		return res, err
	}

	res.Cards = make([]dto.CardSummary, 0, len(cards))
	for _, card := range cards {
		res.Cards = append(res.Cards, dto.CardSummary{
			Card:           card,
			Reconciliation: paymentModel.Reconcile(payments[card.ID], card.TotalAmount),
		})
	}

	res.Stats = model.CountByStatus(all)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, session backend.Session, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".bookingcard.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelCardIDAttributeKey, id)

	return s.repo.Delete(ctx, session, id)
}

// CheckOutAll marks every booking of the card as checked out, in order. The first failure stops
// the run; bookings already updated stay checked out.
func (s *serviceImpl) CheckOutAll(ctx context.Context, session backend.Session, id int64) (res dto.CheckOutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".bookingcard.CheckOutAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelCardIDAttributeKey, id)

	card, err := s.repo.Get(ctx, session, id)
	if err != nil {
		return res, err
	}

	res = dto.CheckOutResponse{CardID: card.ID, CheckedOut: []int64{}}

	for _, bookingID := range card.BookingIDs() {
		err = s.bookings.Patch(ctx, session, bookingID, map[string]any{"status": bookingModel.StatusCheckedOut})
		if err != nil {
			log.Error().Err(err).Int64("cardID", id).Int64("bookingID", bookingID).Msg("failed to check out booking")

			return res, failure.Wrap(err, fmt.Sprintf("checked out %d of %d bookings", len(res.CheckedOut), len(card.BookingIDs())))
		}

		res.CheckedOut = append(res.CheckedOut, bookingID)
	}

	s.publisher.Publish(ctx, event.CardsCheckedOut, strconv.FormatInt(card.ID, 10), res)

	return res, nil
}

// Payments returns the card's payments reconciled against its total.
func (s *serviceImpl) Payments(ctx context.Context, session backend.Session, id int64) (res paymentDto.CardPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".bookingcard.Payments")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	card, err := s.repo.Get(ctx, session, id)
	if err != nil {
		return res, err
	}

	return s.payments.Summary(ctx, session, card.ID, card.TotalAmount)
}

// RecordPayment records a payment against the card, defaulting its agent from the card.
func (s *serviceImpl) RecordPayment(ctx context.Context, session backend.Session, id int64, req paymentDto.RecordPaymentRequest) (res paymentDto.RecordPaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".bookingcard.RecordPayment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	card, err := s.repo.Get(ctx, session, id)
	if err != nil {
		return res, err
	}

	return s.payments.Record(ctx, session, paymentModel.CardRef{
		ID:                card.ID,
		TotalAmount:       card.TotalAmount,
		Agent:             card.Agent,
		FirstBookingAgent: card.FirstBookingAgent(),
	}, req)
}
