package notification

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=./mocks/publisher_mock.go -package=mocks

import (
	"context"

	"studyroom/config"
	"studyroom/infras/kafka"
	"studyroom/infras/otel"
	"studyroom/shared/constant"

	"github.com/rs/zerolog/log"
)

// Publisher hands confirmation events off without blocking the booking request.
// Failures are logged and never reach the caller.
type Publisher interface {
	BookingConfirmed(ctx context.Context, event BookingConfirmed)
}

type kafkaPublisher struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

// NewPublisher writes events to Kafka when brokers are configured and otherwise
// delivers them in process through the consumer.
func NewPublisher(cfg *config.Config, client kafka.Client, consumer *Consumer, otel otel.Otel) Publisher {
	if len(cfg.Kafka.Brokers) == 0 {
		log.Warn().Msg("No Kafka brokers configured, confirmation mails are sent in process")

		return &inlinePublisher{consumer: consumer}
	}

	return &kafkaPublisher{
		client: client,
		topic:  cfg.Kafka.Topics.BookingConfirmed,
		otel:   otel,
	}
}

func (p *kafkaPublisher) BookingConfirmed(ctx context.Context, event BookingConfirmed) {
	go func() {
		c, scope := p.otel.NewScope(context.WithoutCancel(ctx), constant.OtelEventScopeName, constant.OtelEventScopeName+".BookingConfirmed")
		defer scope.End()

		scope.SetAttribute("booking.id", event.BookingID)

		err := p.client.SendMessages(c, p.topic, kafka.Message{Key: event.BookingID, Value: event})
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("booking_id", event.BookingID).Str("topic", p.topic).Msg("failed to publish booking confirmation")
		}
	}()
}

type inlinePublisher struct {
	consumer *Consumer
}

func (p *inlinePublisher) BookingConfirmed(ctx context.Context, event BookingConfirmed) {
	go p.consumer.Deliver(context.WithoutCancel(ctx), event)
}
