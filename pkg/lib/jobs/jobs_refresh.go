package jobs

import (
	"github.com/TomNouri3/ESPL/pkg/lib"
	"golang.org/x/sys/unix"
)

// Refresh polls every tracked entry without blocking and applies the
// observed transition. An entry that reports no pending event keeps its
// current status, so a Suspended job stays Suspended across polls.
func (t *Table) Refresh() {
	for _, pid := range t.order {
		e := t.entries[pid]
		if e.Status == lib.StatusTerminated {
			// Already reaped; the pid may belong to someone else now.
			continue
		}

		var ws unix.WaitStatus
		wpid, err := unix.Wait4(e.PID, &ws, unix.WNOHANG|unix.WUNTRACED|unix.WCONTINUED, nil)
		switch {
		case err == unix.ECHILD:
			// Reaped elsewhere (a blocking wait); nothing left to observe.
			e.transition(lib.StatusTerminated)
		case err != nil:
			logger.Printf("refresh pid=%d run=%s: wait4: %v", e.PID, e.RunID, err)
		case wpid == 0:
			// No state change pending.
		default:
			e.applyWaitStatus(ws)
		}
	}
}

// applyWaitStatus maps an OS wait status onto the tracked status.
func (e *Entry) applyWaitStatus(ws unix.WaitStatus) {
	switch {
	case ws.Exited() || ws.Signaled():
		e.transition(lib.StatusTerminated)
	case ws.Stopped():
		e.transition(lib.StatusSuspended)
	case ws.Continued():
		e.transition(lib.StatusRunning)
	}
}
