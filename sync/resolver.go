package sync

// Strategy is the outcome of a conflict resolution decision.
type Strategy int

const (
	// StrategyLocal propagates local -> remote, overwriting remote.
	StrategyLocal Strategy = iota
	// StrategyRemote propagates remote -> local, overwriting local.
	StrategyRemote
	// StrategySkip leaves the conflict flag set; the next change on
	// either side re-enters the resolver.
	StrategySkip
)

// Resolver decides, for a workflow in conflict, which side wins.
// Modeling it as an interface with one method rather than a mutable
// callback slot keeps prefer-* strategies pure and testable, and keeps
// ask a single, swappable implementation.
type Resolver interface {
	Resolve(state State) Strategy
}

// PreferLocalResolver always keeps the local copy.
type PreferLocalResolver struct{}

func (PreferLocalResolver) Resolve(State) Strategy { return StrategyLocal }

// PreferRemoteResolver always keeps the remote copy.
type PreferRemoteResolver struct{}

func (PreferRemoteResolver) Resolve(State) Strategy { return StrategyRemote }

// PreferNewestResolver keeps whichever side was updated more recently.
// Ties, or either timestamp being unset, fall back to prefer-remote.
type PreferNewestResolver struct{}

func (PreferNewestResolver) Resolve(state State) Strategy {
	if state.LocalUpdated != nil && state.RemoteUpdated != nil && state.LocalUpdated.After(*state.RemoteUpdated) {
		return StrategyLocal
	}
	return StrategyRemote
}

// AskFunc is consulted synchronously by AskResolver; it returns the
// operator's chosen strategy for the given state, or StrategySkip.
type AskFunc func(state State) Strategy

// AskResolver defers every decision to an operator callback, typically
// one that blocks on terminal input. A nil Ask always skips.
type AskResolver struct {
	Ask AskFunc
}

func (r AskResolver) Resolve(state State) Strategy {
	if r.Ask == nil {
		return StrategySkip
	}
	return r.Ask(state)
}
