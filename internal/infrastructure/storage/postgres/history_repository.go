package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/exp/slog"

	"vindecoder/internal/domain/history"
)

// querier - часть pgxpool.Pool, которой пользуется репозиторий
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type HistoryRepository struct {
	storage *Storage
	db      querier
	log     *slog.Logger
}

func NewHistoryRepository(storage *Storage, log *slog.Logger) *HistoryRepository {
	return &HistoryRepository{
		storage: storage,
		db:      storage.Pool(),
		log:     log.With(slog.String("component", "history_repository_pg")),
	}
}

func (r *HistoryRepository) Load(ctx context.Context) ([]history.Entry, error) {
	var raw []byte
	err := r.db.QueryRow(ctx,
		`SELECT value FROM kv_store WHERE key = $1`, history.Key,
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, history.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select history: %w", err)
	}

	var entries []history.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return entries, nil
}

func (r *HistoryRepository) Save(ctx context.Context, entries []history.Entry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, history.Key, raw)
	if err != nil {
		return fmt.Errorf("upsert history: %w", err)
	}

	r.log.Debug("history saved", "entries", len(entries))
	return nil
}

func (r *HistoryRepository) Close() error {
	if r.storage == nil {
		return nil
	}
	return r.storage.Close()
}
