package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/backend"
	"frontdesk/infras/otel/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	eventMocks "frontdesk/shared/event/mocks"
	"frontdesk/shared/failure"
)

var session = backend.Session{Token: "token", UserID: 2}

func newService(t *testing.T) (service.Booking, *bookingMocks.MockBooking, *eventMocks.MockPublisher) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)

	cfg := &config.Config{}
	cfg.Backend.RecoveryPageSize = 10

	return service.New(mockRepo, cfg, mocks.NewOtel(), mockPublisher), mockRepo, mockPublisher
}

func validRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		Guest:    1,
		Room:     2,
		CheckIn:  "2024-05-01",
		CheckOut: "2024-05-03",
	}
}

func TestBookingService_Create(t *testing.T) {
	cardAgent := int64(9)

	tests := []struct {
		name      string
		req       func() dto.CreateBookingRequest
		setupMock func(repo *bookingMocks.MockBooking, publisher *eventMocks.MockPublisher)
		wantID    int64
		wantTier  model.IDTier
		wantAgent model.AgentTier
		wantErr   error
		wantCode  int
	}{
		{
			name: "echoed id",
			req: func() dto.CreateBookingRequest {
				req := validRequest()
				req.CardAgent = &cardAgent

				return req
			},
			setupMock: func(repo *bookingMocks.MockBooking, publisher *eventMocks.MockPublisher) {
				repo.EXPECT().Create(gomock.Any(), session, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ backend.Session, payload map[string]any) (model.Booking, error) {
						assert.Equal(t, &cardAgent, payload["agent"])
						assert.Equal(t, model.StatusBooked, payload["status"])
						assert.Equal(t, int64(2), payload["created_by"])

						return model.Booking{ID: 55, Guest: 1, Room: 2}, nil
					})
				publisher.EXPECT().Publish(gomock.Any(), "booking.created", "55", gomock.Any())
			},
			wantID:    55,
			wantTier:  model.IDTierEcho,
			wantAgent: model.AgentTierCard,
		},
		{
			name: "empty echo recovered by lookup",
			req:  validRequest,
			setupMock: func(repo *bookingMocks.MockBooking, publisher *eventMocks.MockPublisher) {
				repo.EXPECT().Create(gomock.Any(), session, gomock.Any()).Return(model.Booking{}, nil)
				repo.EXPECT().ListRecent(gomock.Any(), session, 10).Return([]model.Booking{
					{ID: 61, Guest: 1, Room: 3, CheckIn: "2024-05-01", CheckOut: "2024-05-03"},
					{ID: 60, Guest: 1, Room: 2, CheckIn: "2024-05-01", CheckOut: "2024-05-03"},
				}, nil)
				publisher.EXPECT().Publish(gomock.Any(), "booking.created", "60", gomock.Any())
			},
			wantID:    60,
			wantTier:  model.IDTierLookup,
			wantAgent: model.AgentTierNone,
		},
		{
			name: "empty echo with no match fails distinctly",
			req:  validRequest,
			setupMock: func(repo *bookingMocks.MockBooking, _ *eventMocks.MockPublisher) {
				repo.EXPECT().Create(gomock.Any(), session, gomock.Any()).Return(model.Booking{}, nil)
				repo.EXPECT().ListRecent(gomock.Any(), session, 10).Return([]model.Booking{
					{ID: 61, Guest: 1, Room: 3, CheckIn: "2024-05-01", CheckOut: "2024-05-03"},
				}, nil)
			},
			wantErr:  model.ErrBookingIDUnrecoverable,
			wantCode: http.StatusBadGateway,
		},
		{
			name: "lookup failure is distinct from no match",
			req:  validRequest,
			setupMock: func(repo *bookingMocks.MockBooking, _ *eventMocks.MockPublisher) {
				repo.EXPECT().Create(gomock.Any(), session, gomock.Any()).Return(model.Booking{}, nil)
				repo.EXPECT().ListRecent(gomock.Any(), session, 10).Return(nil, errors.New("timeout"))
			},
			wantErr:  model.ErrBookingLookupFailed,
			wantCode: http.StatusBadGateway,
		},
		{
			name: "rejected create is fatal",
			req:  validRequest,
			setupMock: func(repo *bookingMocks.MockBooking, _ *eventMocks.MockPublisher) {
				repo.EXPECT().Create(gomock.Any(), session, gomock.Any()).
					Return(model.Booking{}, failure.Upstream(http.StatusBadRequest, "room: Room is occupied.", nil))
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "missing guest makes no call",
			req: func() dto.CreateBookingRequest {
				req := validRequest()
				req.Guest = 0

				return req
			},
			setupMock: func(_ *bookingMocks.MockBooking, _ *eventMocks.MockPublisher) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "malformed date makes no call",
			req: func() dto.CreateBookingRequest {
				req := validRequest()
				req.CheckIn = "01.05.2024"

				return req
			},
			setupMock: func(_ *bookingMocks.MockBooking, _ *eventMocks.MockPublisher) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "check out before check in",
			req: func() dto.CreateBookingRequest {
				req := validRequest()
				req.CheckOut = "2024-04-30"

				return req
			},
			setupMock: func(_ *bookingMocks.MockBooking, _ *eventMocks.MockPublisher) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, publisher := newService(t)
			tt.setupMock(repo, publisher)

			got, err := svc.Create(context.Background(), session, tt.req())

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
			assert.Equal(t, tt.wantID, got.Booking.ID)
			assert.Equal(t, tt.wantTier, got.IDTier)
			assert.Equal(t, tt.wantAgent, got.AgentTier)
		})
	}
}

func TestBookingService_CreateGroup(t *testing.T) {
	svc, repo, publisher := newService(t)

	repo.EXPECT().Create(gomock.Any(), session, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ backend.Session, payload map[string]any) (model.Booking, error) {
			if payload["room"] == int64(12) {
				return model.Booking{}, failure.Upstream(http.StatusBadRequest, "room: occupied", nil)
			}

			return model.Booking{ID: payload["room"].(int64) * 10}, nil
		}).Times(2)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

	got, err := svc.CreateGroup(context.Background(), session, dto.CreateGroupRequest{
		Rooms:    []int64{11, 12, 13},
		Guests:   []int64{1, 2},
		CheckIn:  "2024-05-01",
		CheckOut: "2024-05-02",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, got.Created)
	assert.Equal(t, 1, got.Failed)
	require.Len(t, got.Items, 2)
	assert.Equal(t, int64(110), *got.Items[0].ID)
	assert.Equal(t, "room: occupied", got.Items[1].Error)
}

func TestBookingService_List(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().ListAll(gomock.Any(), session).Return([]model.Booking{
		{ID: 1, CheckIn: "2024-05-02"},
		{ID: 2, CheckIn: "2024-04-01"},
		{ID: 3, CheckIn: "2024-05-02"},
	}, nil)

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	got, err := svc.List(context.Background(), session, &from)

	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", got.From)
	assert.Equal(t, 2, got.Total)
	require.Len(t, got.Days, 1)
	assert.Equal(t, "2024-05-02", got.Days[0].Date)
}

func TestBookingService_ChangeStatus(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().Patch(gomock.Any(), session, int64(4), map[string]any{"status": model.StatusCheckedIn}).Return(nil)

	require.NoError(t, svc.ChangeStatus(context.Background(), session, 4, dto.ChangeStatusRequest{Status: model.StatusCheckedIn}))

	err := svc.ChangeStatus(context.Background(), session, 4, dto.ChangeStatusRequest{Status: 7})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
