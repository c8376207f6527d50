package logger

import (
	"io"
	"os"
	"rentdesk/config"
	"rentdesk/shared/constant"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultLevel = zerolog.InfoLevel

// InitLogger installs a human-readable console logger so boot messages are
// visible before the configuration is read.
func InitLogger() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

// Configure applies SERVER_LOG_LEVEL and switches to JSON lines tagged with
// the service name outside development.
func Configure(cfg *config.Config) {
	configure(cfg, os.Stdout)
}

func configure(cfg *config.Config, out io.Writer) {
	if cfg.Server.Env != "" && cfg.Server.Env != constant.ServerEnvDevelopment {
		log.Logger = zerolog.New(out).With().Timestamp().Str("service", cfg.App.Name).Logger()
	}

	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || cfg.Server.LogLevel == "" {
		level = defaultLevel
	}

	zerolog.SetGlobalLevel(level)

	if err != nil {
		log.Warn().Str("given", cfg.Server.LogLevel).Stringer("level", level).Msg("Unknown log level")
	}
}

// ErrorWithStack logs err with the stack trace of the caller.
func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}
