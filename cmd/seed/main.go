package main

import (
	"context"
	"os"

	"studyroom/config"
	"studyroom/di"
	"studyroom/helper"
	"studyroom/shared/logger"

	"github.com/rs/zerolog/log"
)

const defaultSeedFile = "seed.toml"

func main() {
	logger.InitLogger()

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	path := defaultSeedFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	file, err := helper.LoadSeedFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}

	if err := di.InitializeSeeder().Seed(context.Background(), file); err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("Seeding failed")
	}

	log.Info().Str("file", path).Msg("Seeding completed")
}
