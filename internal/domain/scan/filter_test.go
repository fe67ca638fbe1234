package scan

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	vinA = "1HGCM82633A123451"
	vinX = "2T1BURHE0JC043822"
)

type countingObserver struct {
	read, rejected, accepted int
}

func (o *countingObserver) Read(string)     { o.read++ }
func (o *countingObserver) Rejected(string) { o.rejected++ }
func (o *countingObserver) Accepted(string) { o.accepted++ }

func TestFilter_Push(t *testing.T) {
	tests := []struct {
		name       string
		reads      []string
		wantAccept []string
	}{
		{
			name:       "three in a row after interruption",
			reads:      []string{vinA, vinA, vinX, vinA, vinA, vinA},
			wantAccept: []string{vinA},
		},
		{
			name:       "single different read never accepted",
			reads:      []string{vinX},
			wantAccept: nil,
		},
		{
			name:       "two in a row is not enough",
			reads:      []string{vinA, vinA, vinX, vinA, vinA},
			wantAccept: nil,
		},
		{
			name:       "invalid reads are ignored and do not break the run",
			reads:      []string{vinA, "GARBAGE", vinA, "1HGCM82633A12345I", vinA},
			wantAccept: []string{vinA},
		},
		{
			name:       "window resets after acceptance",
			reads:      []string{vinA, vinA, vinA, vinA, vinA},
			wantAccept: []string{vinA},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilter(nil)
			var accepted []string
			for _, r := range tt.reads {
				if code, ok := f.Push(r); ok {
					accepted = append(accepted, code)
				}
			}
			assert.Equal(t, tt.wantAccept, accepted)
		})
	}
}

func TestFilter_WindowBounded(t *testing.T) {
	f := NewFilter(nil)
	for i := 0; i < 10; i++ {
		if i%2 == 0 {
			f.Push(vinA)
		} else {
			f.Push(vinX)
		}
	}
	assert.Len(t, f.Window(), WindowSize)
}

func TestFilter_Observer(t *testing.T) {
	obs := &countingObserver{}
	f := NewFilter(obs)

	f.Push("SHORT")
	f.Push(vinA)
	f.Push(vinA)
	f.Push(vinA)

	assert.Equal(t, 1, obs.rejected)
	assert.Equal(t, 3, obs.read)
	assert.Equal(t, 1, obs.accepted)
	assert.Empty(t, f.Window())
}

func TestFilter_Run(t *testing.T) {
	codes := make(chan string, 8)
	for _, c := range []string{vinA, vinA, vinX, vinA, vinA, vinA} {
		codes <- c
	}

	got, err := NewFilter(nil).Run(context.Background(), codes)
	require.NoError(t, err)
	assert.Equal(t, vinA, got)
}

func TestFilter_Run_ChannelClosed(t *testing.T) {
	codes := make(chan string, 2)
	codes <- vinX
	close(codes)

	_, err := NewFilter(nil).Run(context.Background(), codes)
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestFilter_Run_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := NewFilter(nil).Run(ctx, make(chan string))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
