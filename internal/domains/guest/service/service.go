package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Guest=MockGuestService

import (
	"context"
	"frontdesk/config"
	"frontdesk/infras/backend"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/guest/model"
	"frontdesk/internal/domains/guest/model/dto"
	"frontdesk/internal/domains/guest/repository"
	"frontdesk/shared/constant"
	"frontdesk/shared/event"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

type Guest interface {
	List(ctx context.Context, session backend.Session, filter dto.ListGuestsFilter) (dto.ListGuestsResponse, error)
	Create(ctx context.Context, session backend.Session, req dto.SaveGuestRequest) (model.Guest, error)
	Update(ctx context.Context, session backend.Session, id int64, req dto.SaveGuestRequest) (model.Guest, error)
	Delete(ctx context.Context, session backend.Session, id int64) error
	Blacklist(ctx context.Context, session backend.Session, id int64, req dto.BlacklistRequest) error
	Unblacklist(ctx context.Context, session backend.Session, id int64) error
	Nationalities(ctx context.Context, session backend.Session) (dto.ListNationalitiesResponse, error)
	CreateNationality(ctx context.Context, session backend.Session, req dto.CreateNationalityRequest) (model.Nationality, error)
}

type serviceImpl struct {
	repo      repository.Guest
	cfg       *config.Config
	otel      otel.Otel
	publisher event.Publisher
}

func New(repo repository.Guest, cfg *config.Config, otel otel.Otel, publisher event.Publisher) Guest {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		otel:      otel,
		publisher: publisher,
	}
}

// List returns the guests matching the filter. Stats count every fetched guest, before the search
// narrows the list.
func (s *serviceImpl) List(ctx context.Context, session backend.Session, filter dto.ListGuestsFilter) (res dto.ListGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	all, err := s.repo.ListAll(ctx, session, filter.BlacklistedOnly)
	if err != nil {
		return res, err
	}

	res.Guests = make([]model.Guest, 0, len(all))
	for _, guest := range all {
		if guest.Matches(filter.Search) {
			res.Guests = append(res.Guests, guest)
		}
	}

	res.Stats = model.CountByStanding(all)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, session backend.Session, req dto.SaveGuestRequest) (guest model.Guest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validateGuest(&req); err != nil {
		return guest, err
	}

	return s.repo.Create(ctx, session, req.ToPayload())
}

func (s *serviceImpl) Update(ctx context.Context, session backend.Session, id int64, req dto.SaveGuestRequest) (guest model.Guest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelGuestIDAttrKey, id)

	if err = validateGuest(&req); err != nil {
		return guest, err
	}

	return s.repo.Update(ctx, session, id, req.ToPayload())
}

func validateGuest(req *dto.SaveGuestRequest) error {
	if err := validator.ValidateStruct(req); err != nil {
		return err
	}

	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return failure.BadRequestFromString("first_name and last_name must not be blank")
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, session backend.Session, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelGuestIDAttrKey, id)

	return s.repo.Delete(ctx, session, id)
}

// Blacklist bars a guest from booking. A reason is mandatory.
func (s *serviceImpl) Blacklist(ctx context.Context, session backend.Session, id int64, req dto.BlacklistRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Blacklist")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelGuestIDAttrKey, id)

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return failure.BadRequestFromString("reason is required")
	}

	if err = s.repo.AddToBlacklist(ctx, session, id, reason); err != nil {
		return err
	}

	log.Info().Int64("guestID", id).Str("session", session.String()).Msg("guest blacklisted")

	s.publisher.Publish(ctx, event.GuestBlacklisted, strconv.FormatInt(id, 10), map[string]any{
		"guest":  id,
		"reason": reason,
	})

	return nil
}

func (s *serviceImpl) Unblacklist(ctx context.Context, session backend.Session, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Unblacklist")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelGuestIDAttrKey, id)

	return s.repo.RemoveFromBlacklist(ctx, session, id)
}

// Nationalities lists every nationality, the hotel's home nationality first.
func (s *serviceImpl) Nationalities(ctx context.Context, session backend.Session) (res dto.ListNationalitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Nationalities")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	nationalities, err := s.repo.ListNationalities(ctx, session)
	if err != nil {
		return res, err
	}

	model.SortNationalities(nationalities, s.cfg.App.HomeNationality)

	return dto.ListNationalitiesResponse{Nationalities: nationalities}, nil
}

func (s *serviceImpl) CreateNationality(ctx context.Context, session backend.Session, req dto.CreateNationalityRequest) (nationality model.Nationality, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.CreateNationality")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return nationality, err
	}

	name := strings.TrimSpace(req.Nationality)
	if name == "" {
		return nationality, failure.BadRequestFromString("nationality is required")
	}

	return s.repo.CreateNationality(ctx, session, map[string]any{
		"nationality": name,
		"code":        strings.TrimSpace(req.Code),
	})
}
