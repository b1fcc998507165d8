package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	PaymentRecorded  = "payment.recorded"
	BookingCardSaved = "booking_card.saved"
	BookingCreated   = "booking.created"
	CardsCheckedOut  = "booking_card.checked_out"
	GuestBlacklisted = "guest.blacklisted"
)

// Event is the envelope written to the events topic.
type Event struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// Publisher emits domain events. Publishing never fails the operation that triggered it.
type Publisher interface {
	Publish(ctx context.Context, eventType, key string, payload any)
}

type publisherImpl struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

func New(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		topic:  cfg.Kafka.Topic,
		otel:   otel,
	}
}

// Publish sends the event in the background, detached from the request's cancellation. The
// payload is encoded before returning so the caller keeps ownership of it.
func (p *publisherImpl) Publish(ctx context.Context, eventType, key string, payload any) {
	if !p.client.Enabled() {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Warn().Err(err).Str("event", eventType).Str("key", key).Msg("failed to encode event payload")

		return
	}

	evt := Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: timezone.Now(),
		Payload:    data,
	}

	go func() {
		ctx, scope := p.otel.NewScope(context.WithoutCancel(ctx), constant.OtelEventScopeName, constant.OtelEventScopeName+"."+eventType)
		defer scope.End()

		err := p.client.SendMessages(ctx, p.topic, kafka.Message{Key: key, Value: evt})
		if err != nil {
			scope.TraceError(err)
			log.Warn().Err(err).Str("event", eventType).Str("key", key).Msg("failed to publish event")
		}
	}()
}
