package jobs

import (
	"fmt"
	"io"

	"github.com/TomNouri3/ESPL/pkg/lib"
)

// ListAndPrune refreshes the table, writes one line per tracked job to w,
// then drops every entry that was observed Terminated. Termination detection
// and removal are deliberately decoupled: an entry shows up as Terminated in
// exactly one listing before it disappears.
func (t *Table) ListAndPrune(w io.Writer) {
	t.Refresh()

	fmt.Fprintf(w, "%-8s %-20s %s\n", "PID", "COMMAND", "STATUS")
	for _, e := range t.Entries() {
		fmt.Fprintf(w, "%-8d %-20s %s\n", e.PID, e.Cmd.Name(), e.Status)
	}

	for _, e := range t.Entries() {
		if e.Status == lib.StatusTerminated {
			logger.Printf("prune pid=%d run=%s", e.PID, e.RunID)
			t.remove(e.PID)
		}
	}
}
