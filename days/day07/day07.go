// Package day07 rebuilds a directory tree from a shell transcript and sums
// directory sizes.
package day07

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/statespace/puzzle"
)

const (
	smallLimit = 100_000
	diskSize   = 70_000_000
	needFree   = 30_000_000
)

// Day returns the registry entry for day 7.
func Day() puzzle.Day {
	return puzzle.Day{
		Number: 7,
		Title:  "No Space Left On Device",
		Sample: sample,
		Want:   puzzle.Solution{Part1: "95437", Part2: "24933642"},
		Solve:  Solve,
	}
}

// Tree is an arena of directories; index 0 is the root.
type Tree struct {
	dirs []dir
}

type dir struct {
	name     string
	parent   int // -1 for the root
	children []int
	files    int64
}

// Parse replays the transcript. "cd" into an unknown name creates it.
func Parse(input string) (*Tree, error) {
	t := &Tree{dirs: []dir{{name: "/", parent: -1}}}
	cwd := 0
	for _, line := range puzzle.Lines(input) {
		switch {
		case line == "$ ls", strings.HasPrefix(line, "dir "):
			// listings are implied by the file lines that follow
		case strings.HasPrefix(line, "$ cd "):
			next, err := t.cd(cwd, strings.TrimPrefix(line, "$ cd "))
			if err != nil {
				return nil, err
			}
			cwd = next
		default:
			size, _, ok := strings.Cut(line, " ")
			n, err := strconv.ParseInt(size, 10, 64)
			if !ok || err != nil {
				return nil, puzzle.Malformed("day07: %q", line)
			}
			t.dirs[cwd].files += n
		}
	}

	return t, nil
}

func (t *Tree) cd(cwd int, name string) (int, error) {
	switch name {
	case "/":
		return 0, nil
	case "..":
		if p := t.dirs[cwd].parent; p >= 0 {
			return p, nil
		}
		return 0, puzzle.Malformed("day07: cd .. above root")
	}
	for _, c := range t.dirs[cwd].children {
		if t.dirs[c].name == name {
			return c, nil
		}
	}
	t.dirs = append(t.dirs, dir{name: name, parent: cwd})
	idx := len(t.dirs) - 1
	t.dirs[cwd].children = append(t.dirs[cwd].children, idx)

	return idx, nil
}

// Sizes returns the total size of every directory, indexed like the arena.
// Children always follow their parent in the arena, so one reverse pass
// folds each subtree into its parent.
func (t *Tree) Sizes() []int64 {
	sizes := make([]int64, len(t.dirs))
	for i := len(t.dirs) - 1; i >= 0; i-- {
		sizes[i] += t.dirs[i].files
		if p := t.dirs[i].parent; p >= 0 {
			sizes[p] += sizes[i]
		}
	}

	return sizes
}

// Solve sums the directories of at most 100000 and finds the smallest
// directory whose removal frees enough space for the update.
func Solve(input string, _ puzzle.Params) (puzzle.Solution, error) {
	t, err := Parse(input)
	if err != nil {
		return puzzle.Solution{}, err
	}
	sizes := t.Sizes()

	var small int64
	for _, s := range sizes {
		if s <= smallLimit {
			small += s
		}
	}

	must := needFree - (diskSize - sizes[0])
	best := sizes[0]
	for _, s := range sizes {
		if s >= must && s < best {
			best = s
		}
	}
	slog.Debug("day07", "dirs", len(sizes), "used", sizes[0], "must_free", must)

	return puzzle.Ints(small, best), nil
}

const sample = `$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k
`
