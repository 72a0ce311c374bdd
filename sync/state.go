// Package sync implements the bidirectional synchronization engine: it
// watches a local workflow directory and polls a remote n8n instance,
// detects which side changed, and propagates the change to the other
// side while recognizing and dropping the echo of its own writes.
package sync

import "time"

// State is the per-workflow record the engine maintains while a workflow
// is under management. At most one State exists per Wid at any time.
//
// LocalUpdated is taken from the local file's mtime, which is not
// clock-synchronized with the server's own updatedAt behind RemoteUpdated.
// PreferNewestResolver compares the two directly, so a meaningfully
// clock-skewed host can misorder a conflict near in time; this is a known
// limitation, not a bug to fix here.
type State struct {
	Wid  string
	Name string

	LocalHash  string
	RemoteHash string

	LocalUpdated  *time.Time
	RemoteUpdated *time.Time

	// Syncing is true while a propagation is in flight for this
	// workflow. While true, incoming change events for it are dropped.
	Syncing bool

	// Conflict is true while both sides have diverged and a resolver
	// decision is pending.
	Conflict bool

	LastSync *time.Time
}

// hasConflict reports whether both sides have been observed at least
// once and their fingerprints disagree. This is the maximally
// conservative test: any concurrent divergence is a conflict.
func (s *State) hasConflict() bool {
	return s.LocalHash != "" && s.RemoteHash != "" &&
		s.LocalUpdated != nil && s.RemoteUpdated != nil &&
		s.LocalHash != s.RemoteHash
}

// snapshot returns a copy of the state safe to hand to a resolver or a
// status report without holding the engine's lock.
func (s *State) snapshot() State {
	return *s
}
