// Package search provides tunable options, problem descriptions and error
// definitions for the state-space search engines.
package search

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for search execution.
var (
	// ErrNoStart is returned when a Problem has no start state.
	ErrNoStart = errors.New("search: no start state")

	// ErrNilExpand is returned when the expansion function is nil.
	ErrNilExpand = errors.New("search: expand function is nil")

	// ErrNilKey is returned when the dedup key function is nil.
	ErrNilKey = errors.New("search: key function is nil")

	// ErrNilValue is returned when an Optimization has no Value function.
	ErrNilValue = errors.New("search: value function is nil")

	// ErrNilGoal is returned when BFS or BestFirst is run without a goal predicate.
	ErrNilGoal = errors.New("search: goal predicate is nil")

	// ErrNegativeCost is returned when a Step carries a negative cost.
	ErrNegativeCost = errors.New("search: negative step cost")

	// ErrGoalUnreachable is returned when the frontier empties before any goal state.
	ErrGoalUnreachable = errors.New("search: goal unreachable")

	// ErrExpansionLimit is returned when more states were expanded than allowed.
	ErrExpansionLimit = errors.New("search: expansion limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Step is one legal move proposed by an expansion function: the next state
// and the incremental cost of getting there. BFS ignores Cost.
type Step[S any] struct {
	State S
	Cost  int64
}

// Problem describes a shortest-path style search.
//
// Starts    – one or more initial states (multi-source when >1).
// Expand    – legal next states from a state; an empty result is a dead end.
// Goal      – reports whether a state terminates the search.
// Key       – the dedup key; states with equal keys are expanded once.
// Heuristic – optional admissible estimate of the remaining cost (A*).
type Problem[S any, K comparable] struct {
	Starts    []S
	Expand    func(S) []Step[S]
	Goal      func(S) bool
	Key       func(S) K
	Heuristic func(S) int64
}

// Result holds the outcome of BFS or BestFirst.
//   - State: the goal state that ended the search.
//   - Cost: number of steps (BFS) or accumulated cost (BestFirst).
//   - Expanded: number of states expanded before the goal was dequeued.
//   - Path: start → goal states, only when WithPath() was requested.
type Result[S any] struct {
	State    S
	Cost     int64
	Expanded int
	Path     []S
}

// Optimization describes a maximisation over all states reachable from Start.
//
//   - Expand: successor states; accumulated data lives inside the state.
//   - Value: the value credited if the search stopped at this state.
//   - Bound: optimistic upper bound on the best Value reachable from the
//     state, itself included. Nil disables pruning.
//   - Key: optional dominance key. A state whose Value does not exceed the
//     best Value already seen for its key is skipped.
//   - Observe: optional callback for every accepted state.
type Optimization[S any, K comparable] struct {
	Start   S
	Expand  func(S) []S
	Value   func(S) int64
	Bound   func(S) int64
	Key     func(S) K
	Observe func(S)
}

// Best holds the outcome of Maximize.
type Best[S any] struct {
	State    S
	Value    int64
	Expanded int
	Pruned   int
}

// Option configures engine behavior via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when the engine is invoked.
type Option func(*Options)

// Options holds parameters and callbacks shared by all engines.
type Options struct {
	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit once
	// more states than this have been expanded. 0 means no limit.
	MaxExpansions int

	// Prune enables the branch-and-bound cutoff in Maximize.
	Prune bool

	// RecordPath keeps parent links so Result.Path can be rebuilt.
	RecordPath bool

	// OnExpand is called for each expanded state with its depth or cost.
	OnExpand func(cost int64)

	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no expansion limit
//   - pruning enabled
//   - no path recording
//   - no-op OnExpand hook
//   - background context
func DefaultOptions() Options {
	return Options{
		MaxExpansions: 0,
		Prune:         true,
		RecordPath:    false,
		OnExpand:      func(int64) {},
		Ctx:           context.Background(),
	}
}

// WithContext sets a custom context for cancellation. The context is
// checked before every expansion and its error returned unwrapped.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions caps the number of expanded states.
//
//	n > 0: limit to n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithoutPruning disables the Maximize bound cutoff.
func WithoutPruning() Option {
	return func(o *Options) {
		o.Prune = false
	}
}

// WithPath records parent links so the start → goal path is returned.
func WithPath() Option {
	return func(o *Options) {
		o.RecordPath = true
	}
}

// WithOnExpand registers a callback invoked for each expanded state.
func WithOnExpand(fn func(cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// interrupted reports the context error, if the search was cancelled.
func (o Options) interrupted() error {
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
		return nil
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

func validateProblem[S any, K comparable](p Problem[S, K], needGoal bool) error {
	switch {
	case len(p.Starts) == 0:
		return ErrNoStart
	case p.Expand == nil:
		return ErrNilExpand
	case p.Key == nil:
		return ErrNilKey
	case needGoal && p.Goal == nil:
		return ErrNilGoal
	}

	return nil
}

// node is an arena entry: a state and the arena index of its parent (-1 for roots).
type node[S any] struct {
	state  S
	parent int
}

// pathTo rebuilds the start → arena[idx] path by following parent indices.
func pathTo[S any](arena []node[S], idx int) []S {
	var path []S
	for at := idx; at >= 0; at = arena[at].parent {
		path = append(path, arena[at].state)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
