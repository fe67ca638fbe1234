package scanner

import (
	"bufio"
	"context"
	"errors"
	"io"
	"sync"
)

var errAlreadyStarted = errors.New("source already started")

// ReaderSource читает распознанные коды построчно из io.Reader
// (stdin, файл, вывод внешнего распознавателя).
type ReaderSource struct {
	r      io.Reader
	buffer int

	mu      sync.Mutex
	started bool
	once    sync.Once
	quit    chan struct{}
	err     error
}

func NewReaderSource(r io.Reader, buffer int) *ReaderSource {
	if buffer <= 0 {
		buffer = 1
	}
	return &ReaderSource{
		r:      r,
		buffer: buffer,
		quit:   make(chan struct{}),
	}
}

func (s *ReaderSource) Start(ctx context.Context) (<-chan string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return nil, errAlreadyStarted
	}
	s.started = true

	out := make(chan string, s.buffer)
	go func() {
		defer close(out)
		err := pump(ctx, s.r, out, s.quit)
		if s.stopped() {
			// чтение прервано закрытием r в Stop
			err = nil
		}
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
	}()
	return out, nil
}

// Stop останавливает чтение. Если r реализует io.Closer, он закрывается,
// чтобы разблокировать ожидающий Read.
func (s *ReaderSource) Stop() error {
	var err error
	s.once.Do(func() {
		close(s.quit)
		if c, ok := s.r.(io.Closer); ok {
			err = c.Close()
		}
	})
	return err
}

func (s *ReaderSource) stopped() bool {
	select {
	case <-s.quit:
		return true
	default:
		return false
	}
}

// Err возвращает ошибку чтения, если поток оборвался
func (s *ReaderSource) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// pump переносит коды из r в out до конца данных, Stop или отмены ctx
func pump(ctx context.Context, r io.Reader, out chan<- string, quit <-chan struct{}) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		code := ParseCode(sc.Text())
		if code == "" {
			continue
		}
		select {
		case out <- code:
		case <-quit:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
	return sc.Err()
}
