package sync

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// defaultPollInterval is used when the engine is not configured with an
// explicit one.
const defaultPollInterval = 10 * time.Second

// RemoteChangeEvent is emitted when a poller tick observes a monitored
// workflow's updatedAt has moved since the last known value.
type RemoteChangeEvent struct {
	Wid string
}

// Poller periodically enumerates the remote and emits a RemoteChangeEvent
// for every monitored workflow whose updatedAt has moved. updatedAt is a
// cheap prefilter; the engine re-fingerprints before treating it as an
// actionable change.
type Poller struct {
	interval time.Duration
	events   chan RemoteChangeEvent
	tick     func(ctx context.Context)
	logger   *zap.SugaredLogger
}

// NewPoller creates a poller with the given interval. tick is invoked
// once per interval and is responsible for calling enumerate and
// emitting events via Events().
func NewPoller(interval time.Duration, tick func(ctx context.Context)) *Poller {
	if interval <= 0 {
		interval = defaultPollInterval
	}

	zapLogger, _ := zap.NewProduction()

	return &Poller{
		interval: interval,
		events:   make(chan RemoteChangeEvent, 100),
		tick:     tick,
		logger:   zapLogger.Sugar().Named("sync-poller"),
	}
}

// Events returns the channel of remote change events.
func (p *Poller) Events() <-chan RemoteChangeEvent {
	return p.events
}

// emit publishes a remote change event, dropping it if the channel is
// saturated rather than blocking the poll loop.
func (p *Poller) emit(event RemoteChangeEvent) {
	select {
	case p.events <- event:
	default:
		p.logger.Warnw("remote event channel full, dropping event", "wid", event.Wid)
	}
}

// Run blocks, invoking tick on every interval, until ctx is cancelled.
// Ticks do not overlap: if a tick is still running when the next one is
// due, the next one waits rather than running concurrently.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	defer close(p.events)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}
