package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"vindecoder/internal/domain/history"
)

// HistoryRepository хранит историю одной строкой JSON под ключом history.Key
type HistoryRepository struct {
	client *redis.Client
}

func NewHistoryRepository(client *redis.Client) *HistoryRepository {
	return &HistoryRepository{client: client}
}

func (r *HistoryRepository) Load(ctx context.Context) ([]history.Entry, error) {
	data, err := r.client.Get(ctx, history.Key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, history.ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var entries []history.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return entries, nil
}

func (r *HistoryRepository) Save(ctx context.Context, entries []history.Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	// без TTL: история не устаревает
	if err := r.client.Set(ctx, history.Key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *HistoryRepository) Close() error {
	return r.client.Close()
}
