package logger

import (
	"io"
	"os"

	"golang.org/x/exp/slog"

	"vindecoder/internal/config"
	"vindecoder/internal/utils/logger/handlers/slogpretty"
)

var output io.Writer = os.Stderr

// New создает логгер в зависимости от окружения
func New(env string) *slog.Logger {
	return NewWithLevel(env, "")
}

// NewWithLevel как New, но уровень берется из level (debug, info, warn, error).
// Пустой или нераспознанный level оставляет уровень окружения.
func NewWithLevel(env, level string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal, "":
		log = setupPrettySlog(parseLevel(level, slog.LevelDebug))
	case config.EnvDev:
		log = slog.New(
			slog.NewJSONHandler(output, &slog.HandlerOptions{Level: parseLevel(level, slog.LevelDebug)}),
		)
	case config.EnvProd:
		log = slog.New(
			slog.NewJSONHandler(output, &slog.HandlerOptions{Level: parseLevel(level, slog.LevelInfo)}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(output, &slog.HandlerOptions{Level: parseLevel(level, slog.LevelInfo)}),
		)
	}

	return log
}

func parseLevel(level string, fallback slog.Level) slog.Level {
	if level == "" {
		return fallback
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fallback
	}
	return l
}

// Discard возвращает логгер, который ничего не пишет
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupPrettySlog(level slog.Level) *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: level,
		},
	}

	handler := opts.NewPrettyHandler(output)

	return slog.New(handler)
}
