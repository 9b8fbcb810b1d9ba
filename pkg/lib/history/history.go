// Package history keeps the session's command lines in a bounded ring and
// resolves the "!!" and "!<n>" recall forms.
package history

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// MaxLineLen caps accepted lines. Recall expansion can therefore never
	// produce a line longer than the reader accepts.
	MaxLineLen = 2048

	DefaultCapacity = 20
)

var (
	ErrLineTooLong = errors.New("line exceeds the maximum length")
	ErrEmpty       = errors.New("history is empty")
)

// Entry is one numbered history line.
type Entry struct {
	N    int
	Line string
}

// Ring is a fixed-capacity command history. Entries keep absolute numbers, so
// "!7" still names the same line after older entries are evicted.
type Ring struct {
	lines    []string
	first    int // absolute number of lines[0]; numbering starts at 1
	capacity int
}

// New returns an empty ring holding at most capacity lines.
func New(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring{first: 1, capacity: capacity}
}

// Add appends one line, evicting the oldest when full. Overlong lines are
// rejected, never truncated.
func (r *Ring) Add(line string) error {
	if len(line) > MaxLineLen {
		return ErrLineTooLong
	}
	if len(r.lines) == r.capacity {
		r.lines = r.lines[1:]
		r.first++
	}
	r.lines = append(r.lines, line)
	return nil
}

// Last returns the most recent line.
func (r *Ring) Last() (string, error) {
	if len(r.lines) == 0 {
		return "", ErrEmpty
	}
	return r.lines[len(r.lines)-1], nil
}

// Get returns the line with absolute number n.
func (r *Ring) Get(n int) (string, error) {
	idx := n - r.first
	if idx < 0 || idx >= len(r.lines) {
		return "", fmt.Errorf("no history entry %d", n)
	}
	return r.lines[idx], nil
}

// Entries returns the retained lines, oldest first, with their numbers.
func (r *Ring) Entries() []Entry {
	out := make([]Entry, len(r.lines))
	for i, line := range r.lines {
		out[i] = Entry{N: r.first + i, Line: line}
	}
	return out
}

// Expand resolves a recall line: "!!" is the most recent entry, "!<n>" the
// entry numbered n. Any other line passes through unchanged. The second
// return reports whether an expansion happened.
func (r *Ring) Expand(line string) (string, bool, error) {
	if !strings.HasPrefix(line, "!") {
		return line, false, nil
	}
	if line == "!!" {
		last, err := r.Last()
		if err != nil {
			return "", false, err
		}
		return last, true, nil
	}
	n, err := strconv.Atoi(line[1:])
	if err != nil {
		return "", false, fmt.Errorf("unrecognized history recall %q", line)
	}
	recalled, err := r.Get(n)
	if err != nil {
		return "", false, err
	}
	return recalled, true, nil
}
