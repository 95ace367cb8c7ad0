package search

import (
	"container/heap"
	"fmt"
)

// BestFirst runs a priority-ordered search (Dijkstra, or A* when
// p.Heuristic is set) and returns the minimal accumulated cost to a state
// satisfying p.Goal.
//
// The frontier is ordered by cost + Heuristic(state); ties are broken by
// insertion order. A key is closed the first time it is dequeued, so with a
// consistent heuristic (e.g. Manhattan distance for unit moves) the first
// dequeued goal is optimal.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. p.Starts non-empty (ErrNoStart), p.Expand, p.Key, p.Goal non-nil.
//  3. Every Step cost must be >= 0 (ErrNegativeCost, detected lazily).
//
// Complexity:
//
//   - Time:  O((N + E) log E)
//   - Space: O(N + E)
func BestFirst[S any, K comparable](p Problem[S, K], opts ...Option) (Result[S], error) {
	var zero Result[S]
	o, err := buildOptions(opts)
	if err != nil {
		return zero, err
	}
	if err = validateProblem(p, true); err != nil {
		return zero, err
	}

	r := &runner[S, K]{
		p:      p,
		opts:   o,
		best:   make(map[K]int64),
		closed: make(map[K]bool),
	}
	r.init()

	return r.process()
}

// runner holds the mutable state for a single BestFirst execution.
type runner[S any, K comparable] struct {
	p      Problem[S, K]
	opts   Options
	arena  []node[S]
	best   map[K]int64 // best known cost at push time
	closed map[K]bool  // keys already expanded
	pq     statePQ
	seq    uint64
	count  int
}

// init pushes every start state with cost 0.
func (r *runner[S, K]) init() {
	heap.Init(&r.pq)
	for _, s := range r.p.Starts {
		k := r.p.Key(s)
		if _, ok := r.best[k]; ok {
			continue
		}
		r.best[k] = 0
		r.push(s, 0, -1)
	}
}

// push appends s to the arena and the heap with its priority.
func (r *runner[S, K]) push(s S, cost int64, parent int) {
	prio := cost
	if r.p.Heuristic != nil {
		prio += r.p.Heuristic(s)
	}
	if !r.opts.RecordPath {
		parent = -1
	}
	r.arena = append(r.arena, node[S]{state: s, parent: parent})
	heap.Push(&r.pq, &stateItem{idx: len(r.arena) - 1, cost: cost, prio: prio, seq: r.seq})
	r.seq++
}

// process pops states in priority order until a goal is dequeued.
// Stale heap entries (keys already closed) are skipped.
func (r *runner[S, K]) process() (Result[S], error) {
	var zero Result[S]
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*stateItem)
		s := r.arena[item.idx].state
		k := r.p.Key(s)
		if r.closed[k] {
			continue
		}
		r.closed[k] = true

		if r.p.Goal(s) {
			res := Result[S]{State: s, Cost: item.cost, Expanded: r.count}
			if r.opts.RecordPath {
				res.Path = pathTo(r.arena, item.idx)
			}

			return res, nil
		}

		if err := r.opts.interrupted(); err != nil {
			return zero, err
		}
		r.count++
		if r.opts.MaxExpansions > 0 && r.count > r.opts.MaxExpansions {
			return zero, fmt.Errorf("%w: %d", ErrExpansionLimit, r.opts.MaxExpansions)
		}
		r.opts.OnExpand(item.cost)

		if err := r.relax(item); err != nil {
			return zero, err
		}
	}

	return zero, fmt.Errorf("%w after %d expansions", ErrGoalUnreachable, r.count)
}

// relax pushes every successor whose cost improves on the best known cost for its key.
func (r *runner[S, K]) relax(item *stateItem) error {
	for _, st := range r.p.Expand(r.arena[item.idx].state) {
		if st.Cost < 0 {
			return fmt.Errorf("%w: %d", ErrNegativeCost, st.Cost)
		}
		k := r.p.Key(st.State)
		if r.closed[k] {
			continue
		}
		nc := item.cost + st.Cost
		if old, ok := r.best[k]; ok && old <= nc {
			continue
		}
		r.best[k] = nc
		r.push(st.State, nc, item.idx)
	}

	return nil
}

// stateItem is a heap entry: arena index, accumulated cost, priority and
// insertion sequence for FIFO tie-breaking.
type stateItem struct {
	idx  int
	cost int64
	prio int64
	seq  uint64
}

// statePQ is a min-heap of *stateItem ordered by (prio, seq).
type statePQ []*stateItem

func (pq statePQ) Len() int { return len(pq) }

func (pq statePQ) Less(i, j int) bool {
	if pq[i].prio != pq[j].prio {
		return pq[i].prio < pq[j].prio
	}

	return pq[i].seq < pq[j].seq
}

func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
