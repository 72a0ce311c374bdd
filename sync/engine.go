package sync

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/edenreich/n8n-sync/localstore"
	"github.com/edenreich/n8n-sync/n8n"
	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrRemoteGone is returned, and surfaced as a logged error rather than
// a silent prune, when a monitored workflow no longer exists on the
// remote. The SyncState is left in place until the workflow is
// explicitly unregistered.
var ErrRemoteGone = errors.New("remote workflow no longer exists")

// ErrWorkflowNotFound indicates a name-based lookup matched nothing.
var ErrWorkflowNotFound = errors.New("workflow not found")

// ErrAmbiguousWorkflow indicates a name-based lookup matched more than
// one remote workflow.
var ErrAmbiguousWorkflow = errors.New("workflow name is ambiguous")

// localStore is the subset of localstore.Store the engine depends on,
// kept as an interface so tests can substitute an in-memory fake.
type localStore interface {
	Dir() string
	List() ([]localstore.Record, error)
	Read(filename string) (*n8n.Workflow, error)
	Write(body n8n.Workflow, filename string) (string, error)
	ExtractWid(filename string) (string, bool)
	CanonicalFilename(name, wid string) string
}

var _ localStore = (*localstore.Store)(nil)

// Status is a point-in-time summary of the engine, modeled on the
// status report a long-running sync manager exposes to its CLI.
type Status struct {
	Running            bool
	WorkflowsMonitored int
	Conflicts          int
	Syncing            int
	Workflows          map[string]State
}

// Engine is the central scheduler: it owns the wid -> SyncState map, the
// change sources, and the conflict resolver, and decides for every
// change event whether to propagate, flag a conflict, or drop it as an
// echo of its own writes.
type Engine struct {
	mu     sync.RWMutex
	states map[string]*State

	remote   n8n.ClientInterface
	local    localStore
	resolver Resolver
	logger   *zap.SugaredLogger

	pollInterval time.Duration

	watcher *Watcher
	poller  *Poller

	runMu   sync.Mutex
	running bool
	cancel  context.CancelFunc
	eg      *errgroup.Group
}

// NewEngine builds an Engine. resolver may be nil, in which case
// PreferRemoteResolver is used (the conservative default: never silently
// overwrite what the operator sees on the remote UI).
func NewEngine(remote n8n.ClientInterface, local localStore, resolver Resolver, pollInterval time.Duration) *Engine {
	if resolver == nil {
		resolver = PreferRemoteResolver{}
	}
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	zapLogger, _ := zap.NewProduction()

	return &Engine{
		states:       make(map[string]*State),
		remote:       remote,
		local:        local,
		resolver:     resolver,
		pollInterval: pollInterval,
		logger:       zapLogger.Sugar().Named("sync-engine"),
	}
}

// AddWorkflow registers a workflow for monitoring, either directly by
// wid or by resolving name via a case-insensitive substring match
// against the current remote enumeration. If resolution finds no unique
// match, no SyncState is created and the registration is reported as
// pending via the returned error.
func (e *Engine) AddWorkflow(ctx context.Context, identifier string, byWid bool) error {
	wid := identifier

	if !byWid {
		resolved, err := e.resolveByName(ctx, identifier)
		if err != nil {
			return err
		}
		wid = resolved
	}

	return e.initState(ctx, wid)
}

func (e *Engine) resolveByName(ctx context.Context, name string) (string, error) {
	list, err := e.remote.GetWorkflows()
	if err != nil {
		return "", fmt.Errorf("failed to enumerate remote workflows: %w", err)
	}

	if list == nil || list.Data == nil {
		return "", ErrWorkflowNotFound
	}

	needle := strings.ToLower(name)
	var matches []n8n.Workflow
	for _, wf := range *list.Data {
		if strings.Contains(strings.ToLower(wf.Name), needle) {
			matches = append(matches, wf)
		}
	}

	switch len(matches) {
	case 0:
		return "", ErrWorkflowNotFound
	case 1:
		if matches[0].Id == nil {
			return "", ErrWorkflowNotFound
		}
		return *matches[0].Id, nil
	default:
		return "", fmt.Errorf("%w: %d workflows match %q", ErrAmbiguousWorkflow, len(matches), name)
	}
}

// initState computes the startup SyncState for wid: fetch the remote
// workflow, set remoteHash/remoteUpdated, and if a local file exists for
// this wid, compute localHash and set localUpdated from its mtime.
func (e *Engine) initState(ctx context.Context, wid string) error {
	_ = ctx

	workflow, err := e.remote.GetWorkflow(wid)
	if err != nil {
		return fmt.Errorf("failed to fetch remote workflow %q: %w", wid, err)
	}
	if workflow == nil {
		return fmt.Errorf("%w: %s", ErrRemoteGone, wid)
	}

	remoteHash, err := n8n.Fingerprint(*workflow)
	if err != nil {
		return fmt.Errorf("failed to fingerprint remote workflow %q: %w", wid, err)
	}

	state := &State{
		Wid:        wid,
		Name:       workflow.Name,
		RemoteHash: remoteHash,
	}
	if workflow.UpdatedAt != nil {
		t := *workflow.UpdatedAt
		state.RemoteUpdated = &t
	} else {
		now := time.Now()
		state.RemoteUpdated = &now
	}

	records, err := e.local.List()
	if err != nil {
		return fmt.Errorf("failed to list local workflows: %w", err)
	}

	for _, record := range records {
		if record.Wid != wid {
			continue
		}

		localHash, err := n8n.Fingerprint(record.Body)
		if err != nil {
			return fmt.Errorf("failed to fingerprint local workflow %q: %w", record.Filename, err)
		}

		state.LocalHash = localHash
		modTime := record.ModTime
		state.LocalUpdated = &modTime
		break
	}

	e.mu.Lock()
	e.states[wid] = state
	e.mu.Unlock()

	return nil
}

// RemoveWorkflow unregisters wid. Subsequent events for it are dropped.
func (e *Engine) RemoveWorkflow(wid string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.states, wid)
}

// Status returns a snapshot of every monitored workflow.
func (e *Engine) Status() Status {
	e.mu.RLock()
	defer e.mu.RUnlock()

	status := Status{
		Running:            e.isRunning(),
		WorkflowsMonitored: len(e.states),
		Workflows:          make(map[string]State, len(e.states)),
	}

	for wid, state := range e.states {
		status.Workflows[wid] = state.snapshot()
		if state.Conflict {
			status.Conflicts++
		}
		if state.Syncing {
			status.Syncing++
		}
	}

	return status
}

func (e *Engine) isRunning() bool {
	e.runMu.Lock()
	defer e.runMu.Unlock()
	return e.running
}

// Start launches the filesystem watcher, remote poller, and both event
// consumers, and blocks until ctx is cancelled or a worker returns a
// fatal error. The poller and both consumers run on their own goroutines
// under an errgroup; the watcher runs its own event-loop goroutine on the
// errgroup's context.
func (e *Engine) Start(ctx context.Context) error {
	e.runMu.Lock()
	if e.running {
		e.runMu.Unlock()
		return fmt.Errorf("sync engine is already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	watcher, err := NewWatcher(e.local.Dir())
	if err != nil {
		cancel()
		e.runMu.Unlock()
		return fmt.Errorf("failed to start filesystem watcher: %w", err)
	}

	e.watcher = watcher
	e.poller = NewPoller(e.pollInterval, e.pollTick)
	e.cancel = cancel
	e.running = true
	e.runMu.Unlock()

	eg, egCtx := errgroup.WithContext(runCtx)
	e.eg = eg

	e.watcher.Start(egCtx)

	eg.Go(func() error {
		e.poller.Run(egCtx)
		return nil
	})
	eg.Go(func() error {
		e.consumeLocal(egCtx)
		return nil
	})
	eg.Go(func() error {
		e.consumeRemote(egCtx)
		return nil
	})

	err = eg.Wait()

	e.runMu.Lock()
	e.running = false
	e.runMu.Unlock()

	return err
}

// Stop cancels the engine's context and closes the filesystem watcher,
// waiting only for the watcher's event loop to exit. It does not wait for
// the poller or the event consumers; they return at their next check of
// the context, and Start returns once they have. A propagation already in
// flight is not interrupted.
func (e *Engine) Stop() error {
	e.runMu.Lock()
	if !e.running || e.cancel == nil {
		e.runMu.Unlock()
		return nil
	}
	cancel := e.cancel
	watcher := e.watcher
	e.runMu.Unlock()

	cancel()

	var err error
	if watcher != nil {
		err = watcher.Stop()
	}

	return err
}

func (e *Engine) pollTick(ctx context.Context) {
	list, err := e.remote.GetWorkflows()
	if err != nil {
		e.logger.Warnw("poll tick failed to enumerate remote workflows", "error", err)
		return
	}
	if list == nil || list.Data == nil {
		return
	}

	var tickErrs error
	for _, wf := range *list.Data {
		if wf.Id == nil {
			continue
		}

		e.mu.RLock()
		state, monitored := e.states[*wf.Id]
		e.mu.RUnlock()
		if !monitored {
			continue
		}

		if wf.UpdatedAt == nil {
			continue
		}
		if state.RemoteUpdated != nil && !wf.UpdatedAt.After(*state.RemoteUpdated) {
			continue
		}

		select {
		case <-ctx.Done():
			return
		default:
		}

		full, err := e.remote.GetWorkflow(*wf.Id)
		if err != nil {
			tickErrs = multierr.Append(tickErrs, fmt.Errorf("fetch %s: %w", *wf.Id, err))
			continue
		}
		if full == nil {
			continue
		}

		newHash, err := n8n.Fingerprint(*full)
		if err != nil {
			tickErrs = multierr.Append(tickErrs, fmt.Errorf("fingerprint %s: %w", *wf.Id, err))
			continue
		}

		if newHash == state.RemoteHash {
			continue
		}

		e.poller.emit(RemoteChangeEvent{Wid: *wf.Id})
	}

	if tickErrs != nil {
		e.logger.Warnw("poll tick finished with errors", "error", tickErrs)
	}
}

func (e *Engine) consumeLocal(ctx context.Context) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	var pending []LocalChangeEvent

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-e.watcher.Events():
			if !ok {
				return
			}
			pending = append(pending, event)
		case <-ticker.C:
			for _, event := range pending {
				e.handleLocalEvent(ctx, event)
			}
			pending = nil
		}
	}
}

func (e *Engine) consumeRemote(ctx context.Context) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	var pending []RemoteChangeEvent

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-e.poller.Events():
			if !ok {
				return
			}
			pending = append(pending, event)
		case <-ticker.C:
			for _, event := range pending {
				e.handleRemoteEvent(ctx, event)
			}
			pending = nil
		}
	}
}

func (e *Engine) handleLocalEvent(ctx context.Context, event LocalChangeEvent) {
	wid, ok := e.local.ExtractWid(event.Filename)
	if !ok {
		return
	}

	e.mu.Lock()
	state, monitored := e.states[wid]
	if !monitored {
		e.mu.Unlock()
		return
	}
	if state.Syncing {
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()

	workflow, err := e.local.Read(event.Filename)
	if err != nil {
		e.logger.Warnw("failed to read changed local file", "filename", event.Filename, "error", err)
		return
	}
	if workflow == nil {
		return
	}

	newHash, err := n8n.Fingerprint(*workflow)
	if err != nil {
		e.logger.Warnw("failed to fingerprint local workflow", "filename", event.Filename, "error", err)
		return
	}

	e.mu.Lock()
	if newHash == state.LocalHash {
		e.mu.Unlock()
		return
	}
	state.LocalHash = newHash
	now := time.Now()
	state.LocalUpdated = &now
	conflict := state.hasConflict()
	if conflict {
		state.Conflict = true
	}
	e.mu.Unlock()

	corrID := uuid.NewString()

	if conflict {
		e.resolveConflict(ctx, state, corrID)
		return
	}

	if err := e.propagateLocalToRemote(ctx, state, *workflow); err != nil {
		e.logger.Errorw("local->remote propagation failed", "correlation_id", corrID, "wid", state.Wid, "error", err)
	}
}

func (e *Engine) handleRemoteEvent(ctx context.Context, event RemoteChangeEvent) {
	e.mu.Lock()
	state, monitored := e.states[event.Wid]
	if !monitored {
		e.mu.Unlock()
		return
	}
	if state.Syncing {
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()

	workflow, err := e.remote.GetWorkflow(event.Wid)
	if err != nil {
		e.logger.Warnw("failed to fetch changed remote workflow", "wid", event.Wid, "error", err)
		return
	}
	if workflow == nil {
		e.logger.Errorw("monitored workflow no longer exists remotely", "wid", event.Wid, "error", ErrRemoteGone)
		return
	}

	newHash, err := n8n.Fingerprint(*workflow)
	if err != nil {
		e.logger.Warnw("failed to fingerprint remote workflow", "wid", event.Wid, "error", err)
		return
	}

	e.mu.Lock()
	state.RemoteHash = newHash
	if workflow.UpdatedAt != nil {
		t := *workflow.UpdatedAt
		state.RemoteUpdated = &t
	} else {
		now := time.Now()
		state.RemoteUpdated = &now
	}
	conflict := state.hasConflict()
	if conflict {
		state.Conflict = true
	}
	e.mu.Unlock()

	corrID := uuid.NewString()

	if conflict {
		e.resolveConflict(ctx, state, corrID)
		return
	}

	if err := e.propagateRemoteToLocal(ctx, state, *workflow); err != nil {
		e.logger.Errorw("remote->local propagation failed", "correlation_id", corrID, "wid", state.Wid, "error", err)
	}
}

func (e *Engine) resolveConflict(ctx context.Context, state *State, corrID string) {
	strategy := e.resolver.Resolve(state.snapshot())

	switch strategy {
	case StrategyLocal:
		workflow, err := e.local.Read(e.local.CanonicalFilename(state.Name, state.Wid))
		if err != nil || workflow == nil {
			e.logger.Warnw("conflict resolution chose local but local copy is unreadable", "correlation_id", corrID, "wid", state.Wid, "error", err)
			return
		}
		if err := e.propagateLocalToRemote(ctx, state, *workflow); err != nil {
			e.logger.Errorw("conflict resolution propagation failed", "correlation_id", corrID, "wid", state.Wid, "error", err)
		}
	case StrategyRemote:
		workflow, err := e.remote.GetWorkflow(state.Wid)
		if err != nil || workflow == nil {
			e.logger.Warnw("conflict resolution chose remote but remote copy is unreadable", "correlation_id", corrID, "wid", state.Wid, "error", err)
			return
		}
		if err := e.propagateRemoteToLocal(ctx, state, *workflow); err != nil {
			e.logger.Errorw("conflict resolution propagation failed", "correlation_id", corrID, "wid", state.Wid, "error", err)
		}
	case StrategySkip:
		e.logger.Infow("conflict resolution skipped, conflict remains", "correlation_id", corrID, "wid", state.Wid)
	}
}

// propagateLocalToRemote pushes the local body to the remote, guarded by
// the syncing flag. It is used both from the ordinary local-event path
// and from conflict resolution.
func (e *Engine) propagateLocalToRemote(ctx context.Context, state *State, body n8n.Workflow) error {
	_ = ctx

	e.mu.Lock()
	state.Syncing = true
	hadRemote := state.RemoteHash != ""
	e.mu.Unlock()

	sanitized := n8n.Sanitize(body)

	var updated *n8n.Workflow
	var err error
	if hadRemote {
		updated, err = e.remote.UpdateWorkflow(state.Wid, &sanitized)
	} else {
		updated, err = e.remote.CreateWorkflow(&sanitized)
	}

	e.mu.Lock()
	defer func() {
		state.Syncing = false
		e.mu.Unlock()
	}()

	if err != nil {
		return fmt.Errorf("failed to push workflow %q to remote: %w", state.Wid, err)
	}
	if updated == nil {
		return fmt.Errorf("remote returned no workflow after push for %q", state.Wid)
	}

	if updated.Id != nil {
		state.Wid = *updated.Id
	}

	now := time.Now()
	state.LastSync = &now
	state.Conflict = false
	state.RemoteHash = state.LocalHash
	if updated.UpdatedAt != nil {
		t := *updated.UpdatedAt
		state.RemoteUpdated = &t
	} else {
		state.RemoteUpdated = &now
	}

	return nil
}

// propagateRemoteToLocal writes the full, un-sanitized remote body to
// the canonical file, guarded by the syncing flag. The resulting write
// will trigger a local watcher event; by the time the debounce window
// elapses, localHash already matches, so the local-event handler drops
// it as an echo.
func (e *Engine) propagateRemoteToLocal(ctx context.Context, state *State, body n8n.Workflow) error {
	_ = ctx

	e.mu.Lock()
	state.Syncing = true
	e.mu.Unlock()

	newHash, err := n8n.Fingerprint(body)

	e.mu.Lock()
	defer func() {
		state.Syncing = false
		e.mu.Unlock()
	}()

	if err != nil {
		return fmt.Errorf("failed to fingerprint remote body for %q: %w", state.Wid, err)
	}

	filename := e.local.CanonicalFilename(body.Name, state.Wid)
	if _, err := e.local.Write(body, filename); err != nil {
		return fmt.Errorf("failed to write workflow %q to disk: %w", state.Wid, err)
	}

	now := time.Now()
	state.LocalHash = newHash
	state.LocalUpdated = &now
	state.LastSync = &now
	state.Conflict = false

	return nil
}
