package client

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"vindecoder/internal/config"
	"vindecoder/internal/domain/history"
	"vindecoder/internal/infrastructure/storage/postgres"
	"vindecoder/internal/infrastructure/storage/redis"
)

// OpenStorage открывает хранилище истории, выбранное в конфигурации
func OpenStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (history.Repository, error) {
	switch cfg.HistoryBackend {
	case config.BackendSQLite, "":
		return NewSQLiteStorage(cfg.DataPath)
	case config.BackendPostgres:
		storage, err := postgres.New(ctx, cfg.DatabaseURI)
		if err != nil {
			return nil, fmt.Errorf("ошибка подключения к postgres: %w", err)
		}
		return postgres.NewHistoryRepository(storage, log), nil
	case config.BackendRedis:
		rdb, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("ошибка подключения к redis: %w", err)
		}
		return redis.NewHistoryRepository(rdb), nil
	case config.BackendMemory:
		return NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("неизвестное хранилище истории: %q", cfg.HistoryBackend)
	}
}
