package logger

import (
	"io"
	"os"
	"slices"
	"time"

	"lodge/config"
	"lodge/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// consoleEnvs keep the human readable writer; everything else logs JSON for the collector.
var consoleEnvs = []string{constant.Empty, constant.ServerEnvLocal, constant.ServerEnvDevelopment, constant.ServerEnvTest}

func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	log.Logger = log.Output(output)
	log.Trace().Msg("Zerolog initialized.")
}

// Configure applies the environment's output format, tags every line with the app name and sets the level.
func Configure(config *config.Config) {
	log.Logger = New(config, os.Stdout)

	SetLogLevel(config)
}

// New builds the logger Configure installs, writing to out.
func New(config *config.Config, out io.Writer) zerolog.Logger {
	var writer io.Writer = out

	if slices.Contains(consoleEnvs, config.Server.Env) {
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: out != os.Stdout}
	} else {
		zerolog.TimeFieldFormat = time.RFC3339Nano
	}

	return zerolog.New(writer).With().Timestamp().Str("app", config.App.Name).Logger()
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil || config.Server.LogLevel == "" {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
