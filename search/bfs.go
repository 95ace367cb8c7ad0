package search

import "fmt"

// queueItem pairs an arena index with its BFS depth.
type queueItem struct {
	idx   int
	depth int64
}

// walker encapsulates mutable BFS state for one invocation.
type walker[S any, K comparable] struct {
	p       Problem[S, K]
	opts    Options
	arena   []node[S]
	queue   []queueItem
	head    int
	visited map[K]int64
	count   int
}

// BFS runs breadth-first search from p.Starts and returns the minimal
// number of steps to a state satisfying p.Goal. Step costs are ignored.
// Returns ErrNoStart, ErrNilExpand, ErrNilKey or ErrNilGoal for invalid
// problems, ErrOptionViolation for bad options, ErrExpansionLimit when the
// cap is hit, and ErrGoalUnreachable if the frontier empties.
func BFS[S any, K comparable](p Problem[S, K], opts ...Option) (Result[S], error) {
	var zero Result[S]
	o, err := buildOptions(opts)
	if err != nil {
		return zero, err
	}
	if err = validateProblem(p, true); err != nil {
		return zero, err
	}

	w := newWalker(p, o)
	for w.head < len(w.queue) {
		item := w.dequeue()
		s := w.arena[item.idx].state
		if p.Goal(s) {
			res := Result[S]{State: s, Cost: item.depth, Expanded: w.count}
			if o.RecordPath {
				res.Path = pathTo(w.arena, item.idx)
			}

			return res, nil
		}
		if err = w.enqueueNeighbors(item); err != nil {
			return zero, err
		}
	}

	return zero, fmt.Errorf("%w after %d expansions", ErrGoalUnreachable, w.count)
}

// Distances explores every state reachable from p.Starts breadth-first and
// returns the step distance of each dedup key. p.Goal is ignored.
func Distances[S any, K comparable](p Problem[S, K], opts ...Option) (map[K]int64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validateProblem(p, false); err != nil {
		return nil, err
	}

	w := newWalker(p, o)
	for w.head < len(w.queue) {
		if err = w.enqueueNeighbors(w.dequeue()); err != nil {
			return nil, err
		}
	}

	return w.visited, nil
}

func newWalker[S any, K comparable](p Problem[S, K], o Options) *walker[S, K] {
	w := &walker[S, K]{
		p:       p,
		opts:    o,
		visited: make(map[K]int64),
	}
	// Seed queue with start states (no parent)
	for _, s := range p.Starts {
		w.enqueue(s, 0, -1)
	}

	return w
}

// enqueue marks s visited at depth d and appends it to the queue, unless
// its key was already seen.
func (w *walker[S, K]) enqueue(s S, d int64, parent int) {
	k := w.p.Key(s)
	if _, seen := w.visited[k]; seen {
		return
	}
	w.visited[k] = d
	parentIdx := -1
	if w.opts.RecordPath {
		parentIdx = parent
	}
	w.arena = append(w.arena, node[S]{state: s, parent: parentIdx})
	w.queue = append(w.queue, queueItem{idx: len(w.arena) - 1, depth: d})
}

// dequeue pops the first item.
func (w *walker[S, K]) dequeue() queueItem {
	item := w.queue[w.head]
	w.head++

	return item
}

// enqueueNeighbors expands the state behind item and enqueues each unseen successor.
func (w *walker[S, K]) enqueueNeighbors(item queueItem) error {
	if err := w.opts.interrupted(); err != nil {
		return err
	}
	w.count++
	if w.opts.MaxExpansions > 0 && w.count > w.opts.MaxExpansions {
		return fmt.Errorf("%w: %d", ErrExpansionLimit, w.opts.MaxExpansions)
	}
	w.opts.OnExpand(item.depth)
	for _, st := range w.p.Expand(w.arena[item.idx].state) {
		w.enqueue(st.State, item.depth+1, item.idx)
	}

	return nil
}
