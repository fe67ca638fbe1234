package scan

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

// Состояния устройства захвата
const (
	StateIdle     = "idle"
	StateStarting = "starting"
	StateScanning = "scanning"
)

// События жизненного цикла сессии
const (
	EventStart   = "start"
	EventReady   = "ready"
	EventRelease = "release"
)

// Scanner владеет устройством захвата: одновременно активна не более одной сессии.
// Устройство освобождается при принятии VIN, при отмене ctx, при ошибке и при Stop.
type Scanner struct {
	fsm      *fsm.FSM
	log      *slog.Logger
	observer Observer

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewScanner(log *slog.Logger, observer Observer) *Scanner {
	s := &Scanner{
		log:      log.With(slog.String("component", "scanner")),
		observer: observer,
	}

	s.fsm = fsm.NewFSM(
		StateIdle,
		fsm.Events{
			{Name: EventStart, Src: []string{StateIdle}, Dst: StateStarting},
			{Name: EventReady, Src: []string{StateStarting}, Dst: StateScanning},
			{Name: EventRelease, Src: []string{StateStarting, StateScanning}, Dst: StateIdle},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				s.log.Debug("scanner state changed", "from", e.Src, "to", e.Dst)
			},
		},
	)

	return s
}

// State возвращает текущее состояние устройства захвата
func (s *Scanner) State() string {
	return s.fsm.Current()
}

// Active проверяет, идет ли сейчас сессия
func (s *Scanner) Active() bool {
	return s.fsm.Current() != StateIdle
}

// Scan запускает сессию сканирования и блокируется до принятия VIN
func (s *Scanner) Scan(ctx context.Context, src Source) (string, error) {
	if err := s.fsm.Event(ctx, EventStart); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSessionActive, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	sess := &session{
		id:  uuid.NewString(),
		src: src,
	}
	sess.log = s.log.With(slog.String("session", sess.id))

	defer func() {
		cancel()
		sess.stop()
		s.mu.Lock()
		s.cancel = nil
		s.mu.Unlock()
		if err := s.fsm.Event(context.Background(), EventRelease); err != nil {
			s.log.Error("Ошибка освобождения сканера", "error", err)
		}
	}()

	codes, err := src.Start(ctx)
	if err != nil {
		sess.log.Warn("camera start failed", "error", err)
		return "", fmt.Errorf("%w: %v", ErrCameraInit, err)
	}

	if err := s.fsm.Event(ctx, EventReady); err != nil {
		return "", fmt.Errorf("ошибка перехода в режим сканирования: %w", err)
	}
	sess.log.Info("Сканирование запущено")

	var accepted string
	done := make(chan struct{})
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(done)
		code, err := NewFilter(s.observer).Run(gctx, codes)
		if err != nil {
			return err
		}
		accepted = code
		return nil
	})

	g.Go(func() error {
		select {
		case <-done:
		case <-gctx.Done():
		}
		_ = sess.stop()
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, ErrNoResult) {
			// источник завершился сам: например, распознаватель не смог открыть камеру
			if failing, ok := src.(interface{ Err() error }); ok && failing.Err() != nil {
				return "", fmt.Errorf("%w: %v", ErrCameraInit, failing.Err())
			}
		}
		if errors.Is(err, context.Canceled) {
			sess.log.Info("Сканирование остановлено")
		}
		return "", err
	}

	sess.log.Info("VIN распознан", "vin", accepted)
	return accepted, nil
}

// Stop прерывает активную сессию, если она есть
func (s *Scanner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
}

type session struct {
	id   string
	src  Source
	log  *slog.Logger
	once sync.Once
	err  error
}

func (s *session) stop() error {
	s.once.Do(func() {
		s.err = s.src.Stop()
		if s.err != nil {
			s.log.Warn("Ошибка остановки источника", "error", s.err)
		}
		s.log.Debug("capture source released")
	})
	return s.err
}
