// Package search is a generic state-space search engine with pluggable
// expansion, goal, dedup-key and cost functions.
//
// What
//
//   - BFS: FIFO frontier, returns the minimal number of steps from any start
//     state to the first state satisfying Goal.
//   - BestFirst: priority frontier ordered by cost (+ optional admissible
//     Heuristic), i.e. Dijkstra or A*. Returns the minimal accumulated cost.
//   - Distances: exhaustive BFS, returns the step distance of every
//     reachable dedup key.
//   - Maximize: depth-first branch-and-bound over an Optimization, returns
//     the maximum Value seen over all explored states.
//
// Dedup keys
//
//	The caller decides what "the same place in the search" means by
//	supplying Key. A key that includes time (or time modulo an obstacle
//	period) lets the engine revisit the same position at a different
//	moment, which is what time-varying obstacles need. Each key is
//	expanded at most once by BFS/BestFirst. Maximize keeps the best value
//	per key and skips only states dominated by an earlier one.
//
// Tie-breaking
//
//	BestFirst breaks priority ties by insertion order (FIFO). Only the
//	cost of the answer is canonical, not the particular path among
//	equal-cost alternatives.
//
// Pruning
//
//	Maximize discards a state when Bound(state) <= incumbent, where Bound
//	must be an optimistic estimate of the best final value reachable from
//	that state. A sound bound never changes the result; WithoutPruning
//	exists so tests can verify that differentially.
//
// Complexity (N = distinct keys reached, E = moves generated)
//
//   - BFS / Distances: O(N + E) time, O(N) memory.
//   - BestFirst: O((N + E) log E) time, O(N + E) memory (lazy decrease-key).
//   - Maximize: exponential in the worst case; practical speed comes from the bound.
//
// Errors
//
//   - ErrNoStart          no start state supplied.
//   - ErrNilExpand        Expand is nil.
//   - ErrNilKey           Key is nil where one is required.
//   - ErrNilValue         Optimization.Value is nil.
//   - ErrNegativeCost     a Step reported a negative cost to BestFirst.
//   - ErrGoalUnreachable  the frontier emptied without reaching a goal.
//   - ErrExpansionLimit   WithMaxExpansions was exceeded.
//   - ErrOptionViolation  an invalid Option was supplied.
//
// Usage
//
//	res, err := search.BFS(search.Problem[geom.Point2, geom.Point2]{
//	    Starts: []geom.Point2{start},
//	    Expand: moves,
//	    Goal:   func(p geom.Point2) bool { return p == end },
//	    Key:    func(p geom.Point2) geom.Point2 { return p },
//	})
package search
