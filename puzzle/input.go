package puzzle

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// LoadInput reads a puzzle input file. A missing or empty file is ErrNoInput.
func LoadInput(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrNoInput, path, err)
	}
	if info.IsDir() || info.Size() == 0 {
		return "", fmt.Errorf("%w: %s is empty or a directory", ErrNoInput, path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("puzzle: read %s: %w", path, err)
	}

	return string(b), nil
}

// Lines splits input into lines, dropping a trailing newline and any CR.
func Lines(input string) []string {
	input = strings.TrimRight(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
	if input == "" {
		return nil
	}

	return strings.Split(input, "\n")
}

// Blocks splits input on blank lines.
func Blocks(input string) [][]string {
	var (
		out [][]string
		cur []string
	)
	for _, l := range Lines(input) {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}

	return out
}

var intRx = regexp.MustCompile(`-?\d+`)

// ExtractInts returns every (optionally negative) integer in s, in order.
func ExtractInts(s string) ([]int, error) {
	m := intRx.FindAllString(s, -1)
	out := make([]int, 0, len(m))
	for _, f := range m {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, Malformed("%q: %v", s, err)
		}
		out = append(out, v)
	}

	return out, nil
}
