// Package jobs tracks launched processes: a pid-keyed table with
// deterministic listing order, refreshed by non-blocking status polls.
package jobs

import (
	"io"
	"log"

	"github.com/TomNouri3/ESPL/pkg/lib"
)

var logger = log.New(io.Discard, "", log.LstdFlags)

// EnableLogging directs job lifecycle logging to w. The shell's debug mode
// points it at stderr.
func EnableLogging(w io.Writer) {
	logger.SetOutput(w)
}

// Entry is one tracked process.
type Entry struct {
	PID    int
	RunID  string // correlates log lines across pid reuse
	Cmd    *lib.CmdLine
	Status lib.Status
}

// Table holds the tracked jobs. Iteration order is most recently launched
// first. It is owned by the single control thread; no locking.
type Table struct {
	entries map[int]*Entry
	order   []int // pids, newest first
}

// NewTable returns an empty job table.
func NewTable() *Table {
	return &Table{entries: make(map[int]*Entry)}
}

// Record inserts a new Running entry for pid. An existing entry with the
// same pid (possible only once the old process was reaped and the pid
// recycled) is displaced.
func (t *Table) Record(pid int, cmd *lib.CmdLine) *Entry {
	if _, ok := t.entries[pid]; ok {
		t.remove(pid)
	}
	e := &Entry{PID: pid, RunID: lib.NewID(), Cmd: cmd, Status: lib.StatusRunning}
	t.entries[pid] = e
	t.order = append([]int{pid}, t.order...)
	logger.Printf("record pid=%d run=%s cmd=%q", pid, e.RunID, cmd.String())
	return e
}

// Get returns the entry for pid, or nil when untracked.
func (t *Table) Get(pid int) *Entry {
	return t.entries[pid]
}

// Len returns the number of tracked entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns the tracked entries in listing order.
func (t *Table) Entries() []*Entry {
	out := make([]*Entry, 0, len(t.order))
	for _, pid := range t.order {
		out = append(out, t.entries[pid])
	}
	return out
}

func (t *Table) remove(pid int) {
	delete(t.entries, pid)
	for i, p := range t.order {
		if p == pid {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

func (e *Entry) transition(next lib.Status) {
	if e.Status == next {
		return
	}
	logger.Printf("pid=%d run=%s status %s -> %s", e.PID, e.RunID, e.Status, next)
	e.Status = next
}
