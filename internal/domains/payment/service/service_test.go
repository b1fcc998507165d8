package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/backend"
	"frontdesk/infras/otel/mocks"
	paymentMocks "frontdesk/internal/domains/payment/mocks"
	"frontdesk/internal/domains/payment/model"
	"frontdesk/internal/domains/payment/model/dto"
	"frontdesk/internal/domains/payment/service"
	eventMocks "frontdesk/shared/event/mocks"
	"frontdesk/shared/failure"
	"frontdesk/shared/money"
)

var session = backend.Session{Token: "token", UserID: 5}

func newService(t *testing.T) (service.Payment, *paymentMocks.MockPayment, *eventMocks.MockPublisher) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)

	cfg := &config.Config{}
	cfg.Backend.MaxConcurrentReads = 2

	return service.New(mockRepo, cfg, mocks.NewOtel(), mockPublisher), mockRepo, mockPublisher
}

func payments(kind model.Kind, amounts ...string) []model.Payment {
	list := make([]model.Payment, 0, len(amounts))
	for i, amount := range amounts {
		list = append(list, model.Payment{ID: int64(i + 1), Amount: money.MustParse(amount), Kind: kind})
	}

	return list
}

func TestPaymentService_Collect(t *testing.T) {
	tests := []struct {
		name      string
		cardID    int64
		setupMock func(repo *paymentMocks.MockPayment)
		wantCard  int
		wantCash  int
		wantBank  int
		wantErr   bool
	}{
		{
			name:   "all kinds succeed",
			cardID: 7,
			setupMock: func(repo *paymentMocks.MockPayment) {
				repo.EXPECT().List(gomock.Any(), session, model.KindCard, int64(7)).Return(payments(model.KindCard, "100"), nil)
				repo.EXPECT().List(gomock.Any(), session, model.KindCash, int64(7)).Return(payments(model.KindCash, "50", "25"), nil)
				repo.EXPECT().List(gomock.Any(), session, model.KindBank, int64(7)).Return(payments(model.KindBank, "10"), nil)
			},
			wantCard: 1,
			wantCash: 2,
			wantBank: 1,
		},
		{
			name:   "failing kind degrades to empty",
			cardID: 7,
			setupMock: func(repo *paymentMocks.MockPayment) {
				repo.EXPECT().List(gomock.Any(), session, model.KindCard, int64(7)).Return(payments(model.KindCard, "100"), nil)
				repo.EXPECT().List(gomock.Any(), session, model.KindCash, int64(7)).Return(payments(model.KindCash, "50"), nil)
				repo.EXPECT().List(gomock.Any(), session, model.KindBank, int64(7)).
					Return(nil, failure.Upstream(http.StatusInternalServerError, "boom", errors.New("boom")))
			},
			wantCard: 1,
			wantCash: 1,
			wantBank: 0,
		},
		{
			name:   "every kind failing still succeeds",
			cardID: 7,
			setupMock: func(repo *paymentMocks.MockPayment) {
				repo.EXPECT().List(gomock.Any(), session, gomock.Any(), int64(7)).Return(nil, errors.New("timeout")).Times(3)
			},
		},
		{
			name:      "invalid card id makes no call",
			cardID:    0,
			setupMock: func(_ *paymentMocks.MockPayment) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			got, err := svc.Collect(context.Background(), session, tt.cardID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Len(t, got.Card, tt.wantCard)
			assert.Len(t, got.Cash, tt.wantCash)
			assert.Len(t, got.Bank, tt.wantBank)
			assert.NotNil(t, got.Bank)
		})
	}
}

func TestPaymentService_CollectMany(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().List(gomock.Any(), session, gomock.Any(), int64(1)).Return(payments(model.KindCash, "10"), nil).Times(3)
	repo.EXPECT().List(gomock.Any(), session, gomock.Any(), int64(2)).Return([]model.Payment{}, nil).Times(3)
	repo.EXPECT().List(gomock.Any(), session, gomock.Any(), int64(3)).Return(nil, errors.New("down")).Times(3)

	got, err := svc.CollectMany(context.Background(), session, []int64{1, 2, 3})

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "30.00", model.TotalPaid(got[1]).Display())
	assert.True(t, model.TotalPaid(got[2]).IsZero())
	assert.True(t, model.TotalPaid(got[3]).IsZero())
}

func TestPaymentService_Summary(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().List(gomock.Any(), session, model.KindCard, int64(4)).Return(payments(model.KindCard, "500"), nil)
	repo.EXPECT().List(gomock.Any(), session, model.KindCash, int64(4)).Return(payments(model.KindCash, "500"), nil)
	repo.EXPECT().List(gomock.Any(), session, model.KindBank, int64(4)).Return(nil, errors.New("down"))

	got, err := svc.Summary(context.Background(), session, 4, money.MustParse("1000"))

	require.NoError(t, err)
	assert.Equal(t, int64(4), got.CardID)
	assert.True(t, got.Reconciliation.IsFullyPaid)
	assert.Equal(t, "0.00", got.Reconciliation.Outstanding.Display())
}

func TestPaymentService_Record(t *testing.T) {
	agent := int64(11)
	bookingAgent := int64(12)
	worker := int64(21)

	card := model.CardRef{ID: 9, TotalAmount: money.MustParse("300"), FirstBookingAgent: &bookingAgent}

	tests := []struct {
		name      string
		card      model.CardRef
		req       dto.RecordPaymentRequest
		setupMock func(repo *paymentMocks.MockPayment, publisher *eventMocks.MockPublisher)
		wantTier  model.PayerTier
		wantCode  int
	}{
		{
			name: "cash payment falls back to the booking agent",
			card: card,
			req:  dto.RecordPaymentRequest{Kind: model.KindCash, Amount: money.MustParse("300"), ChequeID: "A-1"},
			setupMock: func(repo *paymentMocks.MockPayment, publisher *eventMocks.MockPublisher) {
				repo.EXPECT().Create(gomock.Any(), session, model.KindCash, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ backend.Session, _ model.Kind, payload map[string]any) (model.Payment, error) {
						assert.Equal(t, &bookingAgent, payload["agent"])
						assert.Equal(t, int64(9), payload["booking_card"])
						assert.Equal(t, "A-1", payload["cheque_id"])
						assert.Equal(t, &session.UserID, payload["received_by"])

						return model.Payment{ID: 1, Amount: money.MustParse("300"), Kind: model.KindCash}, nil
					})
				publisher.EXPECT().Publish(gomock.Any(), "payment.recorded", "9", gomock.Any())
				repo.EXPECT().List(gomock.Any(), session, model.KindCash, int64(9)).Return(payments(model.KindCash, "300"), nil)
				repo.EXPECT().List(gomock.Any(), session, model.KindCard, int64(9)).Return([]model.Payment{}, nil)
				repo.EXPECT().List(gomock.Any(), session, model.KindBank, int64(9)).Return([]model.Payment{}, nil)
			},
			wantTier: model.PayerTierBooking,
		},
		{
			name: "cash payment keeps the worker who received it",
			card: card,
			req:  dto.RecordPaymentRequest{Kind: model.KindCash, Amount: money.MustParse("50"), ReceivedBy: &worker},
			setupMock: func(repo *paymentMocks.MockPayment, publisher *eventMocks.MockPublisher) {
				repo.EXPECT().Create(gomock.Any(), session, model.KindCash, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ backend.Session, _ model.Kind, payload map[string]any) (model.Payment, error) {
						assert.Equal(t, &worker, payload["received_by"])

						return model.Payment{ID: 3, Kind: model.KindCash}, nil
					})
				publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
				repo.EXPECT().List(gomock.Any(), session, gomock.Any(), int64(9)).Return([]model.Payment{}, nil).Times(3)
			},
			wantTier: model.PayerTierBooking,
		},
		{
			name: "bank payment with explicit agent",
			card: card,
			req: dto.RecordPaymentRequest{
				Kind: model.KindBank, Amount: money.MustParse("10"), Agent: &agent,
				ReferenceNumber: "R-5", BankName: "Kaspi",
			},
			setupMock: func(repo *paymentMocks.MockPayment, publisher *eventMocks.MockPublisher) {
				repo.EXPECT().Create(gomock.Any(), session, model.KindBank, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ backend.Session, _ model.Kind, payload map[string]any) (model.Payment, error) {
						assert.Equal(t, &agent, payload["agent"])
						assert.Equal(t, "R-5", payload["reference_number"])
						assert.NotContains(t, payload, "cheque_id")

						return model.Payment{ID: 2}, nil
					})
				publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
				repo.EXPECT().List(gomock.Any(), session, gomock.Any(), int64(9)).Return([]model.Payment{}, nil).Times(3)
			},
			wantTier: model.PayerTierPayment,
		},
		{
			name:      "non-positive amount is rejected",
			card:      card,
			req:       dto.RecordPaymentRequest{Kind: model.KindCard, Amount: money.Zero},
			setupMock: func(_ *paymentMocks.MockPayment, _ *eventMocks.MockPublisher) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "unknown kind is rejected",
			card:      card,
			req:       dto.RecordPaymentRequest{Kind: "crypto", Amount: money.MustParse("1")},
			setupMock: func(_ *paymentMocks.MockPayment, _ *eventMocks.MockPublisher) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "no agent anywhere",
			card:      model.CardRef{ID: 9},
			req:       dto.RecordPaymentRequest{Kind: model.KindCard, Amount: money.MustParse("1")},
			setupMock: func(_ *paymentMocks.MockPayment, _ *eventMocks.MockPublisher) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "backend rejection is surfaced",
			card: card,
			req:  dto.RecordPaymentRequest{Kind: model.KindCard, Amount: money.MustParse("1")},
			setupMock: func(repo *paymentMocks.MockPayment, _ *eventMocks.MockPublisher) {
				repo.EXPECT().Create(gomock.Any(), session, model.KindCard, gomock.Any()).
					Return(model.Payment{}, failure.Upstream(http.StatusBadRequest, "amount: Ensure this value is greater than 0.", nil))
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, publisher := newService(t)
			tt.setupMock(repo, publisher)

			got, err := svc.Record(context.Background(), session, tt.card, tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTier, got.PayerTier)
		})
	}

	t.Run("recorded payment settles the card", func(t *testing.T) {
		svc, repo, publisher := newService(t)
		tests[0].setupMock(repo, publisher)

		got, err := svc.Record(context.Background(), session, card, tests[0].req)

		require.NoError(t, err)
		assert.True(t, got.Reconciliation.IsFullyPaid)
	})
}
