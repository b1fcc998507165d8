package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Payment=MockPaymentService

import (
	"context"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/backend"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/payment/model"
	"frontdesk/internal/domains/payment/model/dto"
	"frontdesk/internal/domains/payment/repository"
	"frontdesk/shared/constant"
	"frontdesk/shared/event"
	"frontdesk/shared/failure"
	"frontdesk/shared/money"
	"frontdesk/shared/validator"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const defaultMaxConcurrentReads = 4

type Payment interface {
	Collect(ctx context.Context, session backend.Session, cardID int64) (model.CardPayments, error)
	CollectMany(ctx context.Context, session backend.Session, cardIDs []int64) (map[int64]model.CardPayments, error)
	Summary(ctx context.Context, session backend.Session, cardID int64, total money.Amount) (dto.CardPaymentsResponse, error)
	Record(ctx context.Context, session backend.Session, card model.CardRef, req dto.RecordPaymentRequest) (dto.RecordPaymentResponse, error)
}

type serviceImpl struct {
	repo      repository.Payment
	cfg       *config.Config
	otel      otel.Otel
	publisher event.Publisher
}

func New(repo repository.Payment, cfg *config.Config, otel otel.Otel, publisher event.Publisher) Payment {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		otel:      otel,
		publisher: publisher,
	}
}

// Collect reads the card's payments of every kind concurrently. A kind that fails to load is
// logged and reported as empty, so the result is always complete in shape.
func (s *serviceImpl) Collect(ctx context.Context, session backend.Session, cardID int64) (payments model.CardPayments, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Collect")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if cardID <= 0 {
		return payments, failure.BadRequestFromString("booking card id must be a positive integer")
	}

	scope.SetAttribute(constant.OtelCardIDAttributeKey, cardID)

	var (
		mu sync.Mutex
		g  errgroup.Group
	)

	payments = model.EmptyCardPayments()

	for _, kind := range model.Kinds {
		g.Go(func() error {
			list, listErr := s.repo.List(ctx, session, kind, cardID)
			if listErr != nil {
				log.Warn().
					Err(listErr).
					Int64("cardID", cardID).
					Str("kind", string(kind)).
					Msg("degraded read: payments of this kind treated as empty")

				scope.AddEvent("degraded." + string(kind))

				list = []model.Payment{}
			}

			mu.Lock()
			payments.Set(kind, list)
			mu.Unlock()

			return nil
		})
	}

	_ = g.Wait()

	return payments, nil
}

// CollectMany collects payments for several cards with bounded concurrency.
func (s *serviceImpl) CollectMany(ctx context.Context, session backend.Session, cardIDs []int64) (result map[int64]model.CardPayments, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.CollectMany")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	limit := s.cfg.Backend.MaxConcurrentReads
	if limit <= 0 {
		limit = defaultMaxConcurrentReads
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)

	g.SetLimit(limit)

	result = make(map[int64]model.CardPayments, len(cardIDs))

	for _, cardID := range cardIDs {
		g.Go(func() error {
			payments, collectErr := s.Collect(ctx, session, cardID)
			if collectErr != nil {
				return fmt.Errorf("card %d: %w", cardID, collectErr)
			}

			mu.Lock()
			result[cardID] = payments
			mu.Unlock()

			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// Summary collects the card's payments and reconciles them with total.
func (s *serviceImpl) Summary(ctx context.Context, session backend.Session, cardID int64, total money.Amount) (res dto.CardPaymentsResponse, err error) {
	payments, err := s.Collect(ctx, session, cardID)
	if err != nil {
		return res, err
	}

	return dto.CardPaymentsResponse{
		CardID:         cardID,
		Payments:       payments,
		Reconciliation: model.Reconcile(payments, total),
	}, nil
}

// Record creates a payment against the card and returns the card's updated reconciliation.
func (s *serviceImpl) Record(ctx context.Context, session backend.Session, card model.CardRef, req dto.RecordPaymentRequest) (res dto.RecordPaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Record")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if !req.Amount.IsPositive() {
		return res, failure.BadRequestFromString("amount must be greater than zero")
	}

	payer := model.ResolvePayer(req.Agent, card.Agent, card.FirstBookingAgent)
	if payer.AgentID == nil {
		return res, failure.BadRequestFromString("agent is required: pick one on the payment, the card or its bookings")
	}

	scope.SetAttributes(map[string]any{
		constant.OtelCardIDAttributeKey: card.ID,
		constant.OtelPaymentKindAttrKey: string(req.Kind),
		constant.OtelResolutionAttrKey:  string(payer.Tier),
	})

	receivedBy := req.ReceivedBy
	if receivedBy == nil && session.HasUser() {
		receivedBy = &session.UserID
	}

	payment, err := s.repo.Create(ctx, session, req.Kind, req.ToPayload(card.ID, payer.AgentID, receivedBy))
	if err != nil {
		log.Error().Err(err).Int64("cardID", card.ID).Str("kind", string(req.Kind)).Msg("failed to record payment")

		return res, err
	}

	s.publisher.Publish(ctx, event.PaymentRecorded, strconv.FormatInt(card.ID, 10), payment)

	payments, err := s.Collect(ctx, session, card.ID)
	if err != nil {
		return res, err
	}

	return dto.RecordPaymentResponse{
		Payment:        payment,
		PayerTier:      payer.Tier,
		Reconciliation: model.Reconcile(payments, card.TotalAmount),
	}, nil
}
