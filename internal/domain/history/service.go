package history

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Load(ctx context.Context) error
	Add(ctx context.Context, vin string, now time.Time) []Entry
	List() []Entry
	Get(index int) (Entry, error)
}

// Service держит историю в памяти и сохраняет ее в Repository.
// Ошибки хранилища не прерывают работу: история продолжает жить в памяти.
type Service struct {
	repo    Repository
	log     *slog.Logger
	mu      sync.RWMutex
	entries []Entry
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		log:     log.With(slog.String("component", "history")),
		entries: []Entry{},
	}
}

// Load загружает историю из хранилища
func (s *Service) Load(ctx context.Context) error {
	entries, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.log.Debug("history is empty")
			return nil
		}
		s.log.Warn("Не удалось загрузить историю, начинаем с пустой", "error", err)
		return fmt.Errorf("ошибка загрузки истории: %w", err)
	}

	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()

	s.log.Debug("history loaded", "entries", len(entries))
	return nil
}

// Add добавляет поиск в начало истории и сохраняет весь список
func (s *Service) Add(ctx context.Context, vin string, now time.Time) []Entry {
	s.mu.Lock()
	s.entries = Prepend(s.entries, Entry{VIN: vin, Timestamp: now.UnixMilli()})
	snapshot := s.copyLocked()
	s.mu.Unlock()

	if err := s.repo.Save(ctx, snapshot); err != nil {
		s.log.Warn("Не удалось сохранить историю, изменения только в памяти", "error", err)
	}

	return snapshot
}

// List возвращает копию истории, новые записи первыми
func (s *Service) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLocked()
}

// Get возвращает запись по позиции в списке
func (s *Service) Get(index int) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index < 0 || index >= len(s.entries) {
		return Entry{}, fmt.Errorf("%w: index %d", ErrEntryNotFound, index)
	}
	return s.entries[index], nil
}

func (s *Service) copyLocked() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
