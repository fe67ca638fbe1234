package scan

import (
	"context"

	"vindecoder/internal/domain/vin"
)

const (
	// WindowSize - сколько последних валидных чтений помнит фильтр
	WindowSize = 5
	// Threshold - сколько одинаковых чтений подряд нужно для принятия VIN
	Threshold = 3
)

// Filter отсеивает ложные чтения штрихкода: VIN принимается только после
// Threshold одинаковых валидных чтений подряд.
type Filter struct {
	window   []string
	observer Observer
}

func NewFilter(observer Observer) *Filter {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Filter{
		window:   make([]string, 0, WindowSize+1),
		observer: observer,
	}
}

// Push обрабатывает одно чтение и возвращает принятый VIN, если консенсус достигнут
func (f *Filter) Push(code string) (string, bool) {
	if !vin.IsValid(code) {
		f.observer.Rejected(code)
		return "", false
	}
	f.observer.Read(code)

	f.window = append(f.window, code)
	if len(f.window) >= Threshold && f.lastEqual(code) {
		f.Reset()
		f.observer.Accepted(code)
		return code, true
	}

	if len(f.window) > WindowSize {
		f.window = append(f.window[:0], f.window[len(f.window)-WindowSize:]...)
	}
	return "", false
}

// Run читает кандидатов из канала до принятия VIN, закрытия канала или отмены ctx
func (f *Filter) Run(ctx context.Context, codes <-chan string) (string, error) {
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case code, ok := <-codes:
			if !ok {
				return "", ErrNoResult
			}
			if accepted, done := f.Push(code); done {
				return accepted, nil
			}
		}
	}
}

// Reset очищает окно
func (f *Filter) Reset() {
	f.window = f.window[:0]
}

// Window возвращает копию текущего окна
func (f *Filter) Window() []string {
	out := make([]string, len(f.window))
	copy(out, f.window)
	return out
}

func (f *Filter) lastEqual(code string) bool {
	for _, c := range f.window[len(f.window)-Threshold:] {
		if c != code {
			return false
		}
	}
	return true
}
