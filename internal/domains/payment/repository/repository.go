package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"frontdesk/infras/backend"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/payment/model"
	"frontdesk/shared/constant"
	"net/url"
	"strconv"
)

type Payment interface {
	List(ctx context.Context, session backend.Session, kind model.Kind, cardID int64) ([]model.Payment, error)
	Create(ctx context.Context, session backend.Session, kind model.Kind, payload map[string]any) (model.Payment, error)
}

type repositoryImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Payment {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) List(ctx context.Context, session backend.Session, kind model.Kind, cardID int64) (payments []model.Payment, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payment.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		constant.OtelPaymentKindAttrKey: string(kind),
		constant.OtelCardIDAttributeKey: cardID,
	})

	query := url.Values{}
	query.Set(constant.BackendParamBookingCard, strconv.FormatInt(cardID, 10))

	payments, err = backend.List[model.Payment](ctx, r.client, session, kind.Path(), query)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s payments: %w", kind, err)
	}

	for i := range payments {
		payments[i].Kind = kind
	}

	return payments, nil
}

func (r *repositoryImpl) Create(ctx context.Context, session backend.Session, kind model.Kind, payload map[string]any) (payment model.Payment, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payment.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelPaymentKindAttrKey, string(kind))

	resp, err := r.client.Post(ctx, session, kind.Path(), payload)
	if err != nil {
		return payment, fmt.Errorf("failed to create %s payment: %w", kind, err)
	}

	if payment, err = backend.Decode[model.Payment](resp); err != nil {
		return payment, err
	}

	payment.Kind = kind

	return payment, nil
}
