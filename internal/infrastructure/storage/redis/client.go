package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewClient подключается к redis и проверяет соединение
func NewClient(ctx context.Context, addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	// задаём таймаут на подключение
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
