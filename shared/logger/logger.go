package logger

import (
	"bookit/config"
	"bookit/shared/constant"
	"context"
	"io"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger writes human readable output in development and JSON lines everywhere else.
func InitLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var output io.Writer = os.Stdout
	if cfg == nil || cfg.Server.Env == constant.Empty || cfg.Server.Env == constant.ServerEnvDevelopment {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	logCtx := log.Output(output).With()
	if cfg != nil && cfg.App.Name != constant.Empty {
		logCtx = logCtx.Str("app", cfg.App.Name)
	}

	log.Logger = logCtx.Logger()
	log.Trace().Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// Ctx returns the global logger annotated with the request id carried by ctx.
func Ctx(ctx context.Context) *zerolog.Logger {
	reqID := middleware.GetReqID(ctx)
	if reqID == constant.Empty {
		return &log.Logger
	}

	l := log.With().Str("request_id", reqID).Logger()

	return &l
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
