package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/backend"
	"frontdesk/infras/otel/mocks"
	roomMocks "frontdesk/internal/domains/room/mocks"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/service"
	"frontdesk/shared"
	cacheMocks "frontdesk/shared/cache/mocks"
)

var (
	session  = backend.Session{Token: "token"}
	cacheKey = "room:catalog:http://backend:" + shared.Fingerprint("token")
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Backend.BaseURL = "http://backend"
	cfg.Cache.TTL = 60

	return cfg
}

func TestRoomService_List(t *testing.T) {
	t.Run("cache miss loads from backend and stores the catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := roomMocks.NewMockRoom(ctrl)
		cache := cacheMocks.NewMockRedisCache(ctrl)
		saved := make(chan struct{})

		cache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(errors.New("miss"))
		repo.EXPECT().ListAll(gomock.Any(), session).Return([]model.Room{
			{ID: 2, Number: json.RawMessage(`"202"`)},
			{ID: 1, Number: json.RawMessage(`101`), RoomTypeDisplay: "Lux"},
		}, nil)
		cache.EXPECT().Save(gomock.Any(), cacheKey, gomock.Any(), 60).
			DoAndReturn(func(context.Context, string, any, int) error {
				close(saved)

				return nil
			})

		got, err := service.New(repo, newConfig(), cache, mocks.NewOtel()).List(context.Background(), session, false)

		require.NoError(t, err)
		assert.Equal(t, 2, got.Total)
		assert.Equal(t, "101", got.Rooms[0].Number)
		assert.Equal(t, "Lux", got.Rooms[0].RoomType)
		assert.Equal(t, "Standard", got.Rooms[1].RoomType)

		select {
		case <-saved:
		case <-time.After(time.Second):
			t.Fatal("catalog was not cached")
		}
	})

	t.Run("sorting the result does not touch the copy being cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := roomMocks.NewMockRoom(ctrl)
		cache := cacheMocks.NewMockRedisCache(ctrl)
		saved := make(chan []model.Room, 1)

		catalog := make([]model.Room, 0, 200)
		for i := 200; i > 0; i-- {
			catalog = append(catalog, model.Room{ID: int64(i), Number: json.RawMessage(fmt.Sprintf(`"%d"`, i))})
		}

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		repo.EXPECT().ListAll(gomock.Any(), session).Return(catalog, nil)
		cache.EXPECT().Save(gomock.Any(), cacheKey, gomock.Any(), 60).
			DoAndReturn(func(_ context.Context, _ string, value any, _ int) error {
				encoded, ok := value.(string)
				require.True(t, ok)

				var stored []model.Room
				require.NoError(t, json.Unmarshal([]byte(encoded), &stored))
				saved <- stored

				return nil
			})

		got, err := service.New(repo, newConfig(), cache, mocks.NewOtel()).List(context.Background(), session, false)

		require.NoError(t, err)
		assert.Equal(t, "1", got.Rooms[0].Number)

		select {
		case stored := <-saved:
			require.Len(t, stored, 200)
			assert.Equal(t, int64(200), stored[0].ID)
			assert.Equal(t, int64(1), stored[199].ID)
		case <-time.After(time.Second):
			t.Fatal("catalog was not cached")
		}
	})

	t.Run("cache hit skips the backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := roomMocks.NewMockRoom(ctrl)
		cache := cacheMocks.NewMockRedisCache(ctrl)

		cache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*(value.(*[]model.Room)) = []model.Room{{ID: 7, Number: json.RawMessage(`7`)}}

				return nil
			})

		got, err := service.New(repo, newConfig(), cache, mocks.NewOtel()).List(context.Background(), session, false)

		require.NoError(t, err)
		require.Len(t, got.Rooms, 1)
		assert.Equal(t, int64(7), got.Rooms[0].ID)
	})

	t.Run("anonymous session always reaches the backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := roomMocks.NewMockRoom(ctrl)
		cache := cacheMocks.NewMockRedisCache(ctrl)

		repo.EXPECT().ListAll(gomock.Any(), backend.Session{}).
			Return(nil, errors.New("authentication credentials were not provided"))

		_, err := service.New(repo, newConfig(), cache, mocks.NewOtel()).List(context.Background(), backend.Session{}, false)

		require.Error(t, err)
	})

	t.Run("tokens do not share a cached catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := roomMocks.NewMockRoom(ctrl)
		cache := cacheMocks.NewMockRedisCache(ctrl)
		other := backend.Session{Token: "other"}

		cache.EXPECT().Get(gomock.Any(), "room:catalog:http://backend:"+shared.Fingerprint("other"), gomock.Any()).
			Return(errors.New("miss"))
		repo.EXPECT().ListAll(gomock.Any(), other).Return(nil, errors.New("unauthorized"))

		_, err := service.New(repo, newConfig(), cache, mocks.NewOtel()).List(context.Background(), other, false)

		require.Error(t, err)
	})

	t.Run("refresh clears every cached copy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := roomMocks.NewMockRoom(ctrl)
		cache := cacheMocks.NewMockRedisCache(ctrl)
		saved := make(chan struct{})

		cache.EXPECT().Clear(gomock.Any(), "room:catalog:http://backend:").Return(errors.New("redis down"))
		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
		repo.EXPECT().ListAll(gomock.Any(), session).Return([]model.Room{}, nil)
		cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, string, any, int) error {
				close(saved)

				return errors.New("redis down")
			})

		got, err := service.New(repo, newConfig(), cache, mocks.NewOtel()).List(context.Background(), session, true)

		require.NoError(t, err)
		assert.Zero(t, got.Total)
		<-saved
	})

	t.Run("backend failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := roomMocks.NewMockRoom(ctrl)
		cache := cacheMocks.NewMockRedisCache(ctrl)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		repo.EXPECT().ListAll(gomock.Any(), session).Return(nil, errors.New("unreachable"))

		_, err := service.New(repo, newConfig(), cache, mocks.NewOtel()).List(context.Background(), session, false)

		require.Error(t, err)
	})
}
