// Package day21 evaluates and solves a tree of arithmetic jobs.
package day21

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/statespace/puzzle"
)

const (
	rootName  = "root"
	humanName = "humn"
)

// ErrUnsolvable is returned when the human value cannot be isolated:
// it appears on both sides, not at all, or behind a division by zero.
var ErrUnsolvable = errors.New("day21: cannot isolate humn")

// Day returns the registry entry for day 21.
func Day() puzzle.Day {
	return puzzle.Day{
		Number: 21,
		Title:  "Monkey Math",
		Sample: sample,
		Want:   puzzle.Solution{Part1: "152", Part2: "301"},
		Solve:  Solve,
	}
}

// Tree is an arena of jobs. A leaf shouts Value; an inner job applies Op to
// the results of Left and Right, which are arena indices.
type Tree struct {
	Jobs  []Job
	index map[string]int
}

// Job is one monkey.
type Job struct {
	Name        string
	Op          byte // 0 for a number
	Value       int64
	Left, Right int
}

// Parse reads "name: 5" and "name: aaaa + bbbb" lines.
func Parse(input string) (*Tree, error) {
	t := &Tree{index: make(map[string]int)}
	type pending struct{ lhs, rhs string }
	var refs []pending
	for _, line := range puzzle.Lines(input) {
		name, body, ok := strings.Cut(line, ": ")
		if !ok {
			return nil, puzzle.Malformed("day21: %q", line)
		}
		if _, dup := t.index[name]; dup {
			return nil, puzzle.Malformed("day21: duplicate job %q", name)
		}
		j := Job{Name: name, Left: -1, Right: -1}
		var ref pending
		if f := strings.Fields(body); len(f) == 3 && len(f[1]) == 1 && strings.ContainsAny(f[1], "+-*/") {
			j.Op = f[1][0]
			ref = pending{f[0], f[2]}
		} else {
			v, err := strconv.ParseInt(body, 10, 64)
			if err != nil {
				return nil, puzzle.Malformed("day21: %q", line)
			}
			j.Value = v
		}
		t.index[name] = len(t.Jobs)
		t.Jobs = append(t.Jobs, j)
		refs = append(refs, ref)
	}

	for i, r := range refs {
		if t.Jobs[i].Op == 0 {
			continue
		}
		l, okL := t.index[r.lhs]
		rr, okR := t.index[r.rhs]
		if !okL || !okR {
			return nil, puzzle.Malformed("day21: %s refers to unknown job", t.Jobs[i].Name)
		}
		t.Jobs[i].Left, t.Jobs[i].Right = l, rr
	}
	if _, ok := t.index[rootName]; !ok {
		return nil, puzzle.Malformed("day21: no root job")
	}

	return t, nil
}

// Lookup returns the arena index of a named job.
func (t *Tree) Lookup(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Eval returns the value of every job, indexed like the arena.
func (t *Tree) Eval() ([]int64, error) {
	e := evaluator{t: t, vals: make([]int64, len(t.Jobs)), state: make([]uint8, len(t.Jobs))}
	for i := range t.Jobs {
		if _, err := e.eval(i); err != nil {
			return nil, err
		}
	}

	return e.vals, nil
}

type evaluator struct {
	t     *Tree
	vals  []int64
	state []uint8 // 0 new, 1 in progress, 2 done
}

func (e *evaluator) eval(i int) (int64, error) {
	switch e.state[i] {
	case 1:
		return 0, puzzle.Malformed("day21: cycle through %s", e.t.Jobs[i].Name)
	case 2:
		return e.vals[i], nil
	}
	j := e.t.Jobs[i]
	if j.Op == 0 {
		e.vals[i], e.state[i] = j.Value, 2
		return j.Value, nil
	}

	e.state[i] = 1
	l, err := e.eval(j.Left)
	if err != nil {
		return 0, err
	}
	r, err := e.eval(j.Right)
	if err != nil {
		return 0, err
	}
	v, err := apply(j.Op, l, r)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", j.Name, err)
	}
	e.vals[i], e.state[i] = v, 2

	return v, nil
}

var errDivZero = errors.New("division by zero")

func apply(op byte, l, r int64) (int64, error) {
	switch op {
	case '+':
		return l + r, nil
	case '-':
		return l - r, nil
	case '*':
		return l * r, nil
	}
	if r == 0 {
		return 0, errDivZero
	}

	return l / r, nil
}

// Human finds the value humn must shout so both operands of root are equal.
// The path from root to humn is walked top-down, inverting one operation
// per level against the value of the sibling subtree.
func (t *Tree) Human() (int64, error) {
	vals, err := t.Eval()
	if err != nil {
		return 0, err
	}
	human, ok := t.index[humanName]
	if !ok {
		return 0, fmt.Errorf("%w: no %s job", ErrUnsolvable, humanName)
	}
	dep := t.dependsOn(human)

	root := t.Jobs[t.index[rootName]]
	if root.Op == 0 {
		return 0, fmt.Errorf("%w: root is a number", ErrUnsolvable)
	}
	var at int
	var want int64
	switch {
	case dep[root.Left] && dep[root.Right]:
		return 0, fmt.Errorf("%w: on both sides", ErrUnsolvable)
	case dep[root.Left]:
		at, want = root.Left, vals[root.Right]
	case dep[root.Right]:
		at, want = root.Right, vals[root.Left]
	default:
		return 0, fmt.Errorf("%w: root does not depend on it", ErrUnsolvable)
	}

	for at != human {
		j := t.Jobs[at]
		if dep[j.Left] == dep[j.Right] {
			return 0, fmt.Errorf("%w: at %s", ErrUnsolvable, j.Name)
		}
		if dep[j.Left] {
			want, err = solveLeft(j.Op, want, vals[j.Right])
			at = j.Left
		} else {
			want, err = solveRight(j.Op, want, vals[j.Left])
			at = j.Right
		}
		if err != nil {
			return 0, fmt.Errorf("%w: at %s: %v", ErrUnsolvable, j.Name, err)
		}
	}

	return want, nil
}

// solveLeft returns x such that x op r == want.
func solveLeft(op byte, want, r int64) (int64, error) {
	switch op {
	case '+':
		return want - r, nil
	case '-':
		return want + r, nil
	case '*':
		return apply('/', want, r)
	}

	return want * r, nil
}

// solveRight returns x such that l op x == want.
func solveRight(op byte, want, l int64) (int64, error) {
	switch op {
	case '+':
		return want - l, nil
	case '-':
		return l - want, nil
	case '*':
		return apply('/', want, l)
	}

	return apply('/', l, want)
}

// dependsOn marks every job whose value depends on target.
func (t *Tree) dependsOn(target int) []bool {
	dep := make([]bool, len(t.Jobs))
	done := make([]bool, len(t.Jobs))
	var visit func(i int) bool
	visit = func(i int) bool {
		if done[i] {
			return dep[i]
		}
		done[i] = true
		j := t.Jobs[i]
		d := i == target
		if j.Op != 0 {
			// both sides are visited so every entry is filled in
			l, r := visit(j.Left), visit(j.Right)
			d = d || l || r
		}
		dep[i] = d
		return d
	}
	for i := range t.Jobs {
		visit(i)
	}

	return dep
}

// Solve evaluates root, then solves for humn.
func Solve(input string, _ puzzle.Params) (puzzle.Solution, error) {
	t, err := Parse(input)
	if err != nil {
		return puzzle.Solution{}, err
	}
	vals, err := t.Eval()
	if err != nil {
		return puzzle.Solution{}, err
	}
	part2, err := t.Human()
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.Ints(vals[t.index[rootName]], part2), nil
}

const sample = `root: pppw + sjmn
dbpl: 5
cczh: sllz + lgvd
zczc: 2
ptdq: humn - dvpt
dvpt: 3
lfqf: 4
humn: 5
ljgn: 2
sjmn: drzm * dbpl
sllz: 4
pppw: cczh / lfqf
lgvd: ljgn * ptdq
drzm: hmdt - zczc
hmdt: 32
`
