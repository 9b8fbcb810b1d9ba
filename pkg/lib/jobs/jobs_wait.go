package jobs

import (
	"fmt"

	"github.com/TomNouri3/ESPL/pkg/lib"
	"golang.org/x/sys/unix"
)

// WaitFor blocks until pid reaches a terminal state and marks its entry
// Terminated. A stopped process does not satisfy the wait: a suspended
// foreground command keeps the caller blocked until it is continued and
// exits, or is killed.
func (t *Table) WaitFor(pid int) error {
	for {
		var ws unix.WaitStatus
		_, err := unix.Wait4(pid, &ws, 0, nil)
		if err == unix.EINTR {
			continue
		}
		e := t.entries[pid]
		if err == unix.ECHILD {
			// Someone already reaped it; the terminal state stands.
			if e != nil {
				e.transition(lib.StatusTerminated)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("wait for pid %d: %w", pid, err)
		}
		if ws.Exited() || ws.Signaled() {
			if e != nil {
				e.transition(lib.StatusTerminated)
			}
			return nil
		}
	}
}
