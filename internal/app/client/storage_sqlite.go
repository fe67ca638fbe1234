package client

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"vindecoder/internal/domain/history"
	"vindecoder/internal/infrastructure/migration"
)

// SQLiteStorage хранит историю в локальном файле SQLite (таблица kv_store)
type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	// Создаем таблицы
	if err := migration.NewMigration(migration.DialectSQLite, migration.SQLiteURL(path), nil).Up(); err != nil {
		return nil, fmt.Errorf("ошибка миграции базы данных: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка подключения к базе данных: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

func (s *SQLiteStorage) Load(ctx context.Context) ([]history.Entry, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv_store WHERE key = ?", history.Key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, history.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения истории: %w", err)
	}

	var entries []history.Entry
	if err := json.Unmarshal([]byte(value), &entries); err != nil {
		return nil, fmt.Errorf("ошибка парсинга истории: %w", err)
	}

	return entries, nil
}

func (s *SQLiteStorage) Save(ctx context.Context, entries []history.Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("ошибка сериализации истории: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, history.Key, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("ошибка сохранения истории: %w", err)
	}

	return nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
