package logger

import (
	"os"
	"time"

	"hoteldesk/config"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger sets up zerolog on stderr so log lines never interleave
// with menu output on stdout.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	log.Logger = log.Output(output)
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.App.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	}

	zerolog.SetGlobalLevel(level)
}
