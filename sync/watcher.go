package sync

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounceWindow is the quiescence period a filename must sit idle for
// before a local change event is emitted. Editors produce bursts of
// write events on save; this both deduplicates the burst and waits for
// the write to finish.
const debounceWindow = 1 * time.Second

// LocalChangeEvent is emitted once per debounced filesystem write.
type LocalChangeEvent struct {
	Path     string
	Filename string
}

// Watcher subscribes to *.json modifications under a single directory
// and debounces them per filename before emitting LocalChangeEvent.
type Watcher struct {
	dir     string
	fsw     *fsnotify.Watcher
	events  chan LocalChangeEvent
	logger  *zap.SugaredLogger
	mu      sync.Mutex
	pending map[string]*time.Timer
	doneCh  chan struct{}
}

// NewWatcher creates a watcher rooted at dir. The directory must already
// exist.
func NewWatcher(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		_ = fsw.Close()
		return nil, err
	}

	if err := fsw.Add(absDir); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	zapLogger, _ := zap.NewProduction()

	return &Watcher{
		dir:     absDir,
		fsw:     fsw,
		events:  make(chan LocalChangeEvent, 100),
		logger:  zapLogger.Sugar().Named("sync-watcher"),
		pending: make(map[string]*time.Timer),
		doneCh:  make(chan struct{}),
	}, nil
}

// Events returns the channel of debounced local change events.
func (w *Watcher) Events() <-chan LocalChangeEvent {
	return w.events
}

// Start begins watching in the background. It returns once the event
// loop goroutine has been launched.
func (w *Watcher) Start(ctx context.Context) {
	go w.eventLoop(ctx)
}

// Stop releases the underlying fsnotify watcher and waits for the event
// loop to exit.
func (w *Watcher) Stop() error {
	err := w.fsw.Close()
	<-w.doneCh
	return err
}

func (w *Watcher) eventLoop(ctx context.Context) {
	defer close(w.doneCh)
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("watcher stopped: context cancelled")
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(ctx, event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warnw("filesystem watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if !strings.HasSuffix(event.Name, ".json") {
		return
	}

	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}

	filename := filepath.Base(event.Name)

	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, pending := w.pending[filename]; pending {
		timer.Reset(debounceWindow)
		return
	}

	w.pending[filename] = time.AfterFunc(debounceWindow, func() {
		w.mu.Lock()
		delete(w.pending, filename)
		w.mu.Unlock()

		select {
		case w.events <- LocalChangeEvent{Path: event.Name, Filename: filename}:
		case <-ctx.Done():
		default:
			w.logger.Warnw("local event channel full, dropping event", "filename", filename)
		}
	})
}
