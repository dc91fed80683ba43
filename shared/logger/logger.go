package logger

import (
	"io"
	"os"
	"time"

	"studyroom/config"
	"studyroom/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs the global console logger at trace level until SetLogLevel narrows it.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(consoleWriter(os.Stdout))
	log.Trace().Msg("Zerolog initialized.")
}

// InitServiceLogger is InitLogger for a named process; production emits plain JSON.
func InitServiceLogger(cfg *config.Config, service string) {
	InitLogger()

	var out io.Writer = consoleWriter(os.Stdout)
	if cfg.Server.Env == constant.ServerEnvProduction {
		out = os.Stdout
	}

	log.Logger = zerolog.New(out).With().Timestamp().Str("service", service).Logger()

	SetLogLevel(cfg)
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}

func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
}
