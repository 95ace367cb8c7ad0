package search

import "fmt"

// Maximize explores every state reachable from o.Start depth-first and
// returns the state with the largest o.Value.
//
// Rationale:
//  1. Search order is depth-first so a good incumbent is found early and
//     the bound starts cutting quickly.
//  2. A state is pruned when Bound(state) <= incumbent: even if every
//     remaining step produced the maximum increment it could not win.
//     Bound must be optimistic; it may be loose.
//  3. With Key set, a state is dominated (and skipped) when an earlier
//     state with the same key reached at least the same Value.
//  4. WithoutPruning() disables step 2 only, for differential testing.
//
// Errors: ErrNilExpand, ErrNilValue, ErrOptionViolation, ErrExpansionLimit,
// or the context error when cancelled through WithContext.
func Maximize[S any, K comparable](o Optimization[S, K], opts ...Option) (Best[S], error) {
	var zero Best[S]
	cfg, err := buildOptions(opts)
	if err != nil {
		return zero, err
	}
	if o.Expand == nil {
		return zero, ErrNilExpand
	}
	if o.Value == nil {
		return zero, ErrNilValue
	}

	e := &bbEngine[S, K]{
		o:        o,
		cfg:      cfg,
		useBound: cfg.Prune && o.Bound != nil,
		best:     Best[S]{State: o.Start, Value: o.Value(o.Start)},
	}
	if o.Key != nil {
		e.seen = make(map[K]int64)
	}
	if err = e.run(); err != nil {
		return zero, err
	}

	return e.best, nil
}

// bbEngine holds the explicit DFS stack and the incumbent for one Maximize call.
type bbEngine[S any, K comparable] struct {
	o        Optimization[S, K]
	cfg      Options
	useBound bool
	seen     map[K]int64
	stack    []S
	best     Best[S]
}

func (e *bbEngine[S, K]) run() error {
	e.stack = append(e.stack, e.o.Start)
	for len(e.stack) > 0 {
		n := len(e.stack) - 1
		s := e.stack[n]
		e.stack = e.stack[:n]

		if e.useBound && e.o.Bound(s) <= e.best.Value {
			e.best.Pruned++
			continue
		}

		v := e.o.Value(s)
		if e.seen != nil {
			k := e.o.Key(s)
			if prev, ok := e.seen[k]; ok && prev >= v {
				continue
			}
			e.seen[k] = v
		}
		if v > e.best.Value {
			e.best.State, e.best.Value = s, v
		}
		if e.o.Observe != nil {
			e.o.Observe(s)
		}

		if err := e.cfg.interrupted(); err != nil {
			return err
		}
		e.best.Expanded++
		if e.cfg.MaxExpansions > 0 && e.best.Expanded > e.cfg.MaxExpansions {
			return fmt.Errorf("%w: %d", ErrExpansionLimit, e.cfg.MaxExpansions)
		}
		e.cfg.OnExpand(v)

		next := e.o.Expand(s)
		// push in reverse so the first successor is explored first
		for i := len(next) - 1; i >= 0; i-- {
			e.stack = append(e.stack, next[i])
		}
	}

	return nil
}
