package scanner

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vindecoder/internal/domain/scan"
	"vindecoder/internal/utils/logger"
)

const testVIN = "1HGCM82633A123456"

func collect(t *testing.T, ch <-chan string) []string {
	t.Helper()
	var out []string
	timeout := time.After(2 * time.Second)
	for {
		select {
		case c, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, c)
		case <-timeout:
			t.Fatal("channel was not closed")
		}
	}
}

func TestParseCode(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{line: testVIN, want: testVIN},
		{line: "CODE-39:" + testVIN, want: testVIN},
		{line: "  CODE-128:" + testVIN + "\r", want: testVIN},
		{line: "", want: ""},
		{line: "weird data: with colon", want: "weird data: with colon"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCode(tt.line))
		})
	}
}

func TestReaderSource(t *testing.T) {
	src := NewReaderSource(strings.NewReader("CODE-39:"+testVIN+"\n\n"+testVIN+"\n"), 4)

	ch, err := src.Start(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{testVIN, testVIN}, collect(t, ch))
	assert.NoError(t, src.Err())
	assert.NoError(t, src.Stop())
	assert.NoError(t, src.Stop())

	_, err = src.Start(context.Background())
	assert.Error(t, err)
}

func TestReaderSource_StopUnblocksProducer(t *testing.T) {
	pr, pw := io.Pipe()
	src := NewReaderSource(pr, 1)

	ch, err := src.Start(context.Background())
	require.NoError(t, err)

	go func() {
		for i := 0; i < 10; i++ {
			if _, err := pw.Write([]byte(testVIN + "\n")); err != nil {
				return
			}
		}
	}()

	<-ch
	require.NoError(t, src.Stop())
	_ = pw.Close()

	collect(t, ch)
}

func TestReaderSource_StopUnblocksRead(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	src := NewReaderSource(pr, 1)

	ch, err := src.Start(context.Background())
	require.NoError(t, err)

	// ничего не пишем: горутина висит в Read
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, src.Stop())

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel was not closed after Stop")
	}
	assert.NoError(t, src.Err())
}

func TestReaderSource_WithScanner(t *testing.T) {
	input := strings.Join([]string{testVIN, testVIN, "2T1BURHE0JC043822", testVIN, testVIN, testVIN}, "\n")
	src := NewReaderSource(strings.NewReader(input), 2)

	got, err := scan.NewScanner(logger.Discard(), nil).Scan(context.Background(), src)

	require.NoError(t, err)
	assert.Equal(t, testVIN, got)
}

func TestCommandSource(t *testing.T) {
	src := NewCommandSource([]string{"sh", "-c", "printf 'CODE-39:" + testVIN + "\\n" + testVIN + "\\n'"}, 4, logger.Discard())

	ch, err := src.Start(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{testVIN, testVIN}, collect(t, ch))
	assert.NoError(t, src.Err())
	assert.NoError(t, src.Stop())
}

func TestCommandSource_StartFailure(t *testing.T) {
	src := NewCommandSource([]string{"/nonexistent/zbarcam"}, 1, logger.Discard())

	_, err := src.Start(context.Background())
	assert.Error(t, err)
	assert.NoError(t, src.Stop())

	_, err = NewCommandSource(nil, 1, logger.Discard()).Start(context.Background())
	assert.Error(t, err)
}

func TestCommandSource_ProcessFailureIsCameraInit(t *testing.T) {
	src := NewCommandSource([]string{"sh", "-c", "echo 'no video device' >&2; exit 3"}, 1, logger.Discard())

	_, err := scan.NewScanner(logger.Discard(), nil).Scan(context.Background(), src)

	assert.ErrorIs(t, err, scan.ErrCameraInit)
	assert.Contains(t, err.Error(), "no video device")
	assert.Equal(t, scan.MessageCameraInit, scan.UserMessage(err))
}

func TestCommandSource_StopKillsProcess(t *testing.T) {
	src := NewCommandSource([]string{"sh", "-c", "while true; do echo " + testVIN + "-X; sleep 0.01; done"}, 1, logger.Discard())

	ch, err := src.Start(context.Background())
	require.NoError(t, err)
	<-ch

	stopped := make(chan struct{})
	go func() {
		_ = src.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("stop did not return")
	}
	collect(t, ch)
	assert.False(t, errors.Is(src.Err(), context.Canceled))
}
