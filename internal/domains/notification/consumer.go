package notification

import (
	"context"
	"errors"
	"time"

	"studyroom/config"
	"studyroom/infras/kafka"
	"studyroom/infras/mailer"
	"studyroom/infras/metrics"
	"studyroom/infras/otel"
	"studyroom/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"golang.org/x/time/rate"
)

// Consumer turns confirmation events into mails, at most RatePerMinute a minute.
type Consumer struct {
	client  kafka.Client
	mailer  mailer.Mailer
	limiter *rate.Limiter
	metrics metrics.Recorder
	otel    otel.Otel
	group   string
	topic   string
}

func NewConsumer(cfg *config.Config, client kafka.Client, mail mailer.Mailer, recorder metrics.Recorder, otel otel.Otel) *Consumer {
	perMinute := cfg.External.SMTP.RatePerMinute
	if perMinute <= 0 {
		perMinute = 1
	}

	return &Consumer{
		client:  client,
		mailer:  mail,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
		metrics: recorder,
		otel:    otel,
		group:   cfg.Kafka.ConsumerGroup,
		topic:   cfg.Kafka.Topics.BookingConfirmed,
	}
}

// Run consumes the confirmation topic until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	log.Info().Str("topic", c.topic).Str("group", c.group).Msg("Notifier consuming booking confirmations")

	return c.client.Consume(ctx, c.group, c.topic, c.Handle) //nolint:wrapcheck
}

// Handle decodes one message and mails it. Undecodable messages are dropped; nothing is retried.
func (c *Consumer) Handle(ctx context.Context, message kafkaGo.Message) error {
	event, err := kafka.Decode[BookingConfirmed](message)
	if err != nil {
		log.Error().Err(err).Int64("offset", message.Offset).Msg("dropping malformed booking confirmation")
		c.metrics.NotificationDelivered(metrics.ResultSkipped)

		return nil
	}

	c.Deliver(ctx, event)

	return nil
}

// Deliver sends the confirmation mail for event and records the result.
func (c *Consumer) Deliver(ctx context.Context, event BookingConfirmed) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Deliver")
	defer scope.End()

	scope.SetAttribute("booking.id", event.BookingID)

	if err := c.limiter.Wait(ctx); err != nil {
		log.Warn().Err(err).Str("booking_id", event.BookingID).Msg("confirmation mail abandoned")
		c.metrics.NotificationDelivered(metrics.ResultSkipped)

		return
	}

	err := c.mailer.Send(ctx, event.Mail())

	switch {
	case errors.Is(err, mailer.ErrNotConfigured):
		log.Warn().Str("booking_id", event.BookingID).Msg("confirmation mail skipped, smtp is not configured")
		c.metrics.NotificationDelivered(metrics.ResultSkipped)
	case err != nil:
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", event.BookingID).Msg("failed to send confirmation mail")
		c.metrics.NotificationDelivered(metrics.ResultFailed)
	default:
		log.Info().Str("booking_id", event.BookingID).Msg("confirmation mail sent")
		c.metrics.NotificationDelivered(metrics.ResultSent)
	}
}
