package sync

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollerRunInvokesTickOnEachInterval(t *testing.T) {
	ticks := make(chan struct{}, 10)
	poller := NewPoller(10*time.Millisecond, func(ctx context.Context) {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		poller.Run(ctx)
		close(done)
	}()

	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatal("expected at least one tick")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestPollerEmitDropsWhenChannelFull(t *testing.T) {
	poller := NewPoller(time.Second, func(context.Context) {})
	poller.events = make(chan RemoteChangeEvent, 1)

	poller.emit(RemoteChangeEvent{Wid: "a"})
	poller.emit(RemoteChangeEvent{Wid: "b"})

	first := <-poller.Events()
	assert.Equal(t, "a", first.Wid)

	select {
	case <-poller.Events():
		t.Fatal("second event should have been dropped")
	default:
	}
}

func TestNewPollerDefaultsInterval(t *testing.T) {
	poller := NewPoller(0, func(context.Context) {})
	require.Equal(t, defaultPollInterval, poller.interval)
}
