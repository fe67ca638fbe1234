package scanner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"golang.org/x/exp/slog"
)

// CommandSource запускает внешний распознаватель штрихкодов (по умолчанию zbarcam)
// и читает коды из его stdout. Stop завершает процесс и освобождает камеру.
type CommandSource struct {
	command []string
	buffer  int
	log     *slog.Logger

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	done    chan struct{}
	quit    chan struct{}
	once    sync.Once
	err     error
	stderr  bytes.Buffer
}

func NewCommandSource(command []string, buffer int, log *slog.Logger) *CommandSource {
	if buffer <= 0 {
		buffer = 1
	}
	return &CommandSource{
		command: command,
		buffer:  buffer,
		log:     log.With(slog.String("component", "capture_command")),
		done:    make(chan struct{}),
		quit:    make(chan struct{}),
	}
}

func (s *CommandSource) Start(ctx context.Context) (<-chan string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil, errAlreadyStarted
	}
	if len(s.command) == 0 {
		return nil, errors.New("scanner command is empty")
	}

	cctx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(cctx, s.command[0], s.command[1:]...)
	cmd.Stderr = &s.stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("start %s: %w", s.command[0], err)
	}

	s.started = true
	s.cancel = cancel
	s.log.Debug("capture process started", "pid", cmd.Process.Pid, "command", strings.Join(s.command, " "))

	out := make(chan string, s.buffer)
	go func() {
		defer close(s.done)
		defer close(out)

		readErr := pump(cctx, stdout, out, s.quit)
		waitErr := cmd.Wait()

		s.mu.Lock()
		defer s.mu.Unlock()
		switch {
		case cctx.Err() != nil:
			// процесс остановлен нами
		case waitErr != nil:
			s.err = fmt.Errorf("%w: %s", waitErr, strings.TrimSpace(s.stderr.String()))
		case readErr != nil:
			s.err = readErr
		}
	}()

	return out, nil
}

// Stop завершает процесс распознавателя и ждет его выхода
func (s *CommandSource) Stop() error {
	s.once.Do(func() {
		close(s.quit)

		s.mu.Lock()
		cancel, started := s.cancel, s.started
		s.mu.Unlock()

		if !started {
			return
		}
		cancel()
		<-s.done
		s.log.Debug("capture process stopped")
	})
	return nil
}

// Err возвращает ошибку процесса, если он завершился сам с ошибкой
func (s *CommandSource) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
