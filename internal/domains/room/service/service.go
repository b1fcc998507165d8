package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"frontdesk/config"
	"frontdesk/infras/backend"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"

	"github.com/rs/zerolog/log"
)

const cacheRoomCatalog = "room:catalog"

type Room interface {
	List(ctx context.Context, session backend.Session, refresh bool) (dto.ListRoomsResponse, error)
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// List returns the room catalog. Copies are cached per bearer token so the backend has authorized
// every caller at least once; an anonymous session always goes to the backend. refresh drops every
// cached copy of the catalog first.
func (s *serviceImpl) List(ctx context.Context, session backend.Session, refresh bool) (res dto.ListRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if refresh {
		prefix := shared.BuildCacheKey(cacheRoomCatalog, s.cfg.Backend.BaseURL, constant.Empty)
		if err := s.cache.Clear(ctx, prefix); err != nil {
			log.Warn().Err(err).Str("cachePrefix", prefix).Msg("failed to drop cached room catalog")
		}
	}

	var rooms []model.Room

	if session.Token == constant.Empty {
		rooms, err = s.repo.ListAll(ctx, session)
	} else {
		key := shared.BuildCacheKey(cacheRoomCatalog, s.cfg.Backend.BaseURL, shared.Fingerprint(session.Token))
		rooms, err = cache.Remember(ctx, s.cache, key, s.cfg.Cache.TTL, func(ctx context.Context) ([]model.Room, error) {
			return s.repo.ListAll(ctx, session)
		})
	}

	if err != nil {
		log.Error().Err(err).Str("session", session.String()).Msg("failed to load room catalog")

		return res, err
	}

	model.SortByNumber(rooms)

	return dto.ToListRoomsResponse(rooms), nil
}
