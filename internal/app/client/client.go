package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"vindecoder/internal/config"
	"vindecoder/internal/domain/history"
	"vindecoder/internal/domain/scan"
	"vindecoder/internal/domain/vehicle"
	"vindecoder/internal/domain/vin"
	"vindecoder/internal/metrics"
)

// ErrBusy - декодирование уже выполняется
var ErrBusy = errors.New("decode already in progress")

// App - единственный владелец состояния приложения.
// Состояние меняется только через Decode, SelectHistory и Scan.
type App struct {
	config  *config.Config
	log     *slog.Logger
	decoder vehicle.Decoder
	history *history.Service
	storage history.Repository
	scanner *scan.Scanner
	metrics *metrics.Metrics
	now     func() time.Time

	mu    sync.RWMutex
	state AppState
}

// AppState - снимок состояния для отображения
type AppState struct {
	VIN     string          `json:"vin,omitempty"`
	Record  vehicle.Record  `json:"record,omitempty"`
	Error   string          `json:"error,omitempty"`
	Loading bool            `json:"loading"`
	History []history.Entry `json:"history"`
}

// Option настраивает App при создании
type Option func(*App)

// WithDecoder подменяет клиент сервиса декодирования
func WithDecoder(d vehicle.Decoder) Option {
	return func(a *App) { a.decoder = d }
}

// WithStorage подменяет хранилище истории
func WithStorage(r history.Repository) Option {
	return func(a *App) { a.storage = r }
}

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

func New(ctx context.Context, cfg *config.Config, log *slog.Logger, opts ...Option) (*App, error) {
	app := &App{
		config:  cfg,
		log:     log,
		metrics: metrics.New(),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.decoder == nil {
		app.decoder = NewDecodeClient(cfg, log, nil)
	}

	if app.storage == nil {
		storage, err := OpenStorage(ctx, cfg, log)
		if err != nil {
			log.Warn("Не удалось инициализировать хранилище истории, используем память",
				"backend", cfg.HistoryBackend, "error", err)
			storage = NewMemoryStorage()
		}
		app.storage = storage
	}

	app.history = history.NewService(app.storage, log)
	if err := app.history.Load(ctx); err != nil {
		log.Warn("История недоступна", "error", err)
	}
	app.scanner = scan.NewScanner(log, app.metrics)

	app.state.History = app.history.List()
	app.metrics.SetHistorySize(len(app.state.History))

	return app, nil
}

// Decode проверяет VIN, запрашивает сервис и обновляет состояние.
// Пока запрос выполняется, повторный вызов возвращает ErrBusy.
func (a *App) Decode(ctx context.Context, input string) (vehicle.Record, error) {
	code := vin.Normalize(input)
	if err := vin.Validate(code); err != nil {
		a.metrics.ObserveDecode(metrics.OutcomeInvalid, 0)
		return nil, err
	}

	a.mu.Lock()
	if a.state.Loading {
		a.mu.Unlock()
		a.metrics.ObserveDecode(metrics.OutcomeBusy, 0)
		return nil, ErrBusy
	}
	a.state.Loading = true
	a.state.Error = ""
	a.mu.Unlock()

	started := time.Now()
	rec, err := a.decoder.Decode(ctx, code)
	elapsed := time.Since(started).Seconds()

	if err != nil {
		outcome := metrics.OutcomeTransport
		if errors.Is(err, vehicle.ErrDecodeFailed) {
			outcome = metrics.OutcomeDecodeFail
		}
		a.metrics.ObserveDecode(outcome, elapsed)
		a.log.Warn("Ошибка декодирования VIN", "vin", code, "error", err)

		a.mu.Lock()
		a.state.Loading = false
		a.state.Error = vehicle.UserMessage(err)
		if errors.Is(err, vehicle.ErrDecodeFailed) {
			a.state.VIN = ""
			a.state.Record = nil
		}
		a.mu.Unlock()
		return nil, err
	}

	a.metrics.ObserveDecode(metrics.OutcomeSuccess, elapsed)
	entries := a.history.Add(ctx, code, a.now())
	a.metrics.SetHistorySize(len(entries))

	a.mu.Lock()
	a.state.Loading = false
	a.state.VIN = code
	a.state.Record = rec
	a.state.History = entries
	a.mu.Unlock()

	a.log.Info("VIN декодирован", "vin", code, "attributes", len(rec))
	return rec, nil
}

// SelectHistory повторно декодирует VIN из истории
func (a *App) SelectHistory(ctx context.Context, index int) (vehicle.Record, error) {
	entry, err := a.history.Get(index)
	if err != nil {
		return nil, err
	}
	return a.Decode(ctx, entry.VIN)
}

// Scan запускает сканирование и декодирует принятый VIN
func (a *App) Scan(ctx context.Context, src scan.Source) (string, vehicle.Record, error) {
	code, err := a.scanner.Scan(ctx, src)
	if err != nil {
		if errors.Is(err, scan.ErrCameraInit) {
			a.mu.Lock()
			a.state.Error = scan.UserMessage(err)
			a.mu.Unlock()
		}
		return "", nil, fmt.Errorf("ошибка сканирования: %w", err)
	}

	rec, err := a.Decode(ctx, code)
	return code, rec, err
}

// StopScan прерывает активное сканирование
func (a *App) StopScan() {
	a.scanner.Stop()
}

// State возвращает копию текущего состояния
func (a *App) State() AppState {
	a.mu.RLock()
	defer a.mu.RUnlock()

	s := a.state
	if a.state.Record != nil {
		s.Record = make(vehicle.Record, len(a.state.Record))
		for k, v := range a.state.Record {
			s.Record[k] = v
		}
	}
	s.History = make([]history.Entry, len(a.state.History))
	copy(s.History, a.state.History)
	return s
}

// History возвращает историю поиска, новые записи первыми
func (a *App) History() []history.Entry {
	return a.history.List()
}

// Metrics возвращает счетчики приложения
func (a *App) Metrics() *metrics.Metrics {
	return a.metrics
}

// Logger возвращает логгер приложения
func (a *App) Logger() *slog.Logger {
	return a.log
}

// Config возвращает конфигурацию приложения
func (a *App) Config() *config.Config {
	return a.config
}

// Close освобождает сканер и хранилище
func (a *App) Close() error {
	a.scanner.Stop()
	if err := a.storage.Close(); err != nil {
		return fmt.Errorf("ошибка закрытия хранилища: %w", err)
	}
	return nil
}

type ctxKey struct{}

// WithApp кладет App в контекст команды
func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, ctxKey{}, app)
}

// FromContext достает App из контекста команды
func FromContext(ctx context.Context) (*App, bool) {
	app, ok := ctx.Value(ctxKey{}).(*App)
	return app, ok && app != nil
}
