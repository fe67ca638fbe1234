package scan

import "context"

// Source - источник распознанных штрихкодов (камера + библиотека распознавания).
// Канал, возвращаемый Start, закрывается источником после Stop или по окончании данных.
type Source interface {
	Start(ctx context.Context) (<-chan string, error)
	// Stop освобождает устройство захвата; повторный вызов безопасен
	Stop() error
}
