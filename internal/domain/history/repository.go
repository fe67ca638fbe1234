package history

import "context"

// Repository хранит список истории целиком под одним ключом
type Repository interface {
	// Load возвращает ErrNotFound, если история еще не сохранялась
	Load(ctx context.Context) ([]Entry, error)
	// Save заменяет сохраненный список
	Save(ctx context.Context, entries []Entry) error
	Close() error
}
