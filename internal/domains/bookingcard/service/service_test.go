package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/backend"
	"frontdesk/infras/otel/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	bookingModel "frontdesk/internal/domains/booking/model"
	cardMocks "frontdesk/internal/domains/bookingcard/mocks"
	"frontdesk/internal/domains/bookingcard/model"
	"frontdesk/internal/domains/bookingcard/model/dto"
	"frontdesk/internal/domains/bookingcard/service"
	paymentMocks "frontdesk/internal/domains/payment/mocks"
	paymentModel "frontdesk/internal/domains/payment/model"
	paymentDto "frontdesk/internal/domains/payment/model/dto"
	eventMocks "frontdesk/shared/event/mocks"
	"frontdesk/shared/failure"
	"frontdesk/shared/money"
)

var session = backend.Session{Token: "token", UserID: 1}

type fixture struct {
	svc       service.BookingCard
	cards     *cardMocks.MockBookingCard
	bookings  *bookingMocks.MockBooking
	payments  *paymentMocks.MockPaymentService
	publisher *eventMocks.MockPublisher
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		cards:     cardMocks.NewMockBookingCard(ctrl),
		bookings:  bookingMocks.NewMockBooking(ctrl),
		payments:  paymentMocks.NewMockPaymentService(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
	}

	f.svc = service.New(f.cards, f.bookings, f.payments, &config.Config{}, mocks.NewOtel(), f.publisher)

	return f
}

func request(t *testing.T, body string) dto.SaveCardRequest {
	t.Helper()

	var req dto.SaveCardRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	return req
}

func TestBookingCardService_Save_InvalidMakesNoCalls(t *testing.T) {
	bodies := []string{
		`{"bookings": [1, 2]}`,
		`{"primary_guest": 4, "bookings": ["None", "", null]}`,
		`{"primary_guest": 4, "bookings": []}`,
	}

	for _, body := range bodies {
		f := newFixture(t)

		_, err := f.svc.Save(context.Background(), session, nil, request(t, body))

		require.Error(t, err, body)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	}
}

func TestBookingCardService_Save_CreateAndPropagate(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.cards.EXPECT().Create(gomock.Any(), session, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ backend.Session, payload dto.SavePayload) (model.Card, error) {
				assert.Equal(t, int64(4), payload.PrimaryGuest)
				assert.Equal(t, []int64{10, 11, 12}, payload.Bookings)

				return model.Card{ID: 77, Bookings: model.RefList{10, 11, 12}}, nil
			}),
		f.bookings.EXPECT().Patch(gomock.Any(), session, int64(10), map[string]any{"agent": int64(6)}).Return(nil),
		f.bookings.EXPECT().Patch(gomock.Any(), session, int64(11), map[string]any{"agent": int64(6)}).
			Return(failure.Upstream(http.StatusInternalServerError, "boom", nil)),
		f.bookings.EXPECT().Patch(gomock.Any(), session, int64(12), map[string]any{"agent": int64(6)}).Return(nil),
	)
	f.publisher.EXPECT().Publish(gomock.Any(), "booking_card.saved", "77", gomock.Any())

	got, err := f.svc.Save(context.Background(), session, nil, request(t, `{
		"primary_guest": 4,
		"agent": "6",
		"bookings": [10, "11", "12"]
	}`))

	require.NoError(t, err)
	assert.True(t, got.Created)
	assert.Equal(t, int64(77), got.Card.ID)
	assert.Equal(t, 3, got.Propagation.Attempted)
	assert.Equal(t, []int64{10, 12}, got.Propagation.Updated)
	require.Len(t, got.Propagation.Failed, 1)
	assert.Equal(t, int64(11), got.Propagation.Failed[0].BookingID)
}

func TestBookingCardService_Save_UpdateWithoutAgent(t *testing.T) {
	f := newFixture(t)
	id := int64(5)

	f.cards.EXPECT().Update(gomock.Any(), session, id, gomock.Any()).Return(model.Card{ID: 5}, nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), "5", gomock.Any())

	got, err := f.svc.Save(context.Background(), session, &id, request(t, `{
		"primary_guest": 4,
		"agent": "",
		"bookings": [10],
		"goods": {"3": 2}
	}`))

	require.NoError(t, err)
	assert.False(t, got.Created)
	assert.Zero(t, got.Propagation.Attempted)
	assert.True(t, got.QuantitiesDropped)
}

func TestBookingCardService_Save_BackendRejection(t *testing.T) {
	f := newFixture(t)

	f.cards.EXPECT().Create(gomock.Any(), session, gomock.Any()).
		Return(model.Card{}, failure.Upstream(http.StatusBadRequest, "primary_guest: Invalid pk \"4\" - object does not exist.", nil))

	_, err := f.svc.Save(context.Background(), session, nil, request(t, `{"primary_guest": 4, "agent": 6, "bookings": [10]}`))

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Contains(t, err.Error(), "primary_guest")
}

func TestBookingCardService_Get(t *testing.T) {
	f := newFixture(t)
	agent := int64(3)

	card := model.Card{
		ID:           8,
		TotalAmount:  money.MustParse("1000"),
		BookingsList: []bookingModel.Booking{{ID: 1, Agent: &agent}},
	}

	f.cards.EXPECT().Get(gomock.Any(), session, int64(8)).Return(card, nil)
	f.payments.EXPECT().Collect(gomock.Any(), session, int64(8)).Return(paymentModel.CardPayments{
		Cash: []paymentModel.Payment{{Amount: money.MustParse("400")}},
	}, nil)

	got, err := f.svc.Get(context.Background(), session, 8)

	require.NoError(t, err)
	assert.Equal(t, &agent, got.Agent)
	assert.Equal(t, "600.00", got.Reconciliation.Outstanding.Display())
	assert.False(t, got.Reconciliation.IsFullyPaid)
}

func TestBookingCardService_List(t *testing.T) {
	f := newFixture(t)

	f.cards.EXPECT().ListAll(gomock.Any(), session).Return([]model.Card{
		{ID: 1, PrimaryGuestName: "Dana", Status: model.StatusActive, TotalAmount: money.MustParse("100")},
		{ID: 2, PrimaryGuestName: "Arman", Status: model.StatusCompleted, TotalAmount: money.MustParse("100")},
	}, nil)
	f.payments.EXPECT().CollectMany(gomock.Any(), session, []int64{1}).Return(map[int64]paymentModel.CardPayments{
		1: {Card: []paymentModel.Payment{{Amount: money.MustParse("100")}}},
	}, nil)

	got, err := f.svc.List(context.Background(), session, "dan")

	require.NoError(t, err)
	require.Len(t, got.Cards, 1)
	assert.True(t, got.Cards[0].Reconciliation.IsFullyPaid)
	assert.Equal(t, model.Stats{Total: 2, Active: 1, Completed: 1}, got.Stats)
}

func TestBookingCardService_CheckOutAll(t *testing.T) {
	t.Run("every booking checked out in order", func(t *testing.T) {
		f := newFixture(t)

		f.cards.EXPECT().Get(gomock.Any(), session, int64(3)).Return(model.Card{ID: 3, Bookings: model.RefList{7, 8}}, nil)
		gomock.InOrder(
			f.bookings.EXPECT().Patch(gomock.Any(), session, int64(7), map[string]any{"status": bookingModel.StatusCheckedOut}).Return(nil),
			f.bookings.EXPECT().Patch(gomock.Any(), session, int64(8), map[string]any{"status": bookingModel.StatusCheckedOut}).Return(nil),
		)
		f.publisher.EXPECT().Publish(gomock.Any(), "booking_card.checked_out", "3", gomock.Any())

		got, err := f.svc.CheckOutAll(context.Background(), session, 3)

		require.NoError(t, err)
		assert.Equal(t, []int64{7, 8}, got.CheckedOut)
	})

	t.Run("first failure stops the run", func(t *testing.T) {
		f := newFixture(t)

		f.cards.EXPECT().Get(gomock.Any(), session, int64(3)).Return(model.Card{ID: 3, Bookings: model.RefList{7, 8, 9}}, nil)
		f.bookings.EXPECT().Patch(gomock.Any(), session, int64(7), gomock.Any()).Return(nil)
		f.bookings.EXPECT().Patch(gomock.Any(), session, int64(8), gomock.Any()).Return(errors.New("down"))

		got, err := f.svc.CheckOutAll(context.Background(), session, 3)

		require.Error(t, err)
		assert.Equal(t, []int64{7}, got.CheckedOut)
	})
}

func TestBookingCardService_RecordPayment(t *testing.T) {
	f := newFixture(t)
	agent := int64(12)

	f.cards.EXPECT().Get(gomock.Any(), session, int64(4)).Return(model.Card{
		ID:           4,
		TotalAmount:  money.MustParse("50"),
		BookingsList: []bookingModel.Booking{{ID: 1, Agent: &agent}},
	}, nil)
	f.payments.EXPECT().Record(gomock.Any(), session, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ backend.Session, card paymentModel.CardRef, _ paymentDto.RecordPaymentRequest) (paymentDto.RecordPaymentResponse, error) {
			assert.Equal(t, int64(4), card.ID)
			assert.Nil(t, card.Agent)
			assert.Equal(t, &agent, card.FirstBookingAgent)

			return paymentDto.RecordPaymentResponse{PayerTier: paymentModel.PayerTierBooking}, nil
		})

	got, err := f.svc.RecordPayment(context.Background(), session, 4, paymentDto.RecordPaymentRequest{Kind: paymentModel.KindCash, Amount: money.MustParse("50")})

	require.NoError(t, err)
	assert.Equal(t, paymentModel.PayerTierBooking, got.PayerTier)
}

func TestBookingCardService_Payments(t *testing.T) {
	f := newFixture(t)

	f.cards.EXPECT().Get(gomock.Any(), session, int64(4)).Return(model.Card{ID: 4, TotalAmount: money.MustParse("50")}, nil)
	f.payments.EXPECT().Summary(gomock.Any(), session, int64(4), money.MustParse("50")).
		Return(paymentDto.CardPaymentsResponse{CardID: 4}, nil)

	got, err := f.svc.Payments(context.Background(), session, 4)

	require.NoError(t, err)
	assert.Equal(t, int64(4), got.CardID)
}
