package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"studyroom/config"
	"studyroom/di"
	"studyroom/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitServiceLogger(cfg, "notifier")

	if len(cfg.Kafka.Brokers) == 0 {
		log.Fatal().Msg("KAFKA_BROKERS is required to run the notifier")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := di.InitializeNotifier()

	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("Notifier stopped")
	}

	log.Info().Msg("Notifier shut down")
}
