package launcher

import (
	"fmt"
	"os"

	"github.com/TomNouri3/ESPL/pkg/lib"
)

func (l *Launcher) runSingle(c *lib.CmdLine) error {
	stdin, stdout := l.Stdin, l.Stdout
	var opened []*os.File
	closeOpened := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	if c.InputRedirect != "" {
		f, err := os.Open(c.InputRedirect)
		if err != nil {
			return fmt.Errorf("input redirection: %w", err)
		}
		opened = append(opened, f)
		stdin = f
	}
	if c.OutputRedirect != "" {
		f, err := os.OpenFile(c.OutputRedirect, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			closeOpened()
			return fmt.Errorf("output redirection: %w", err)
		}
		opened = append(opened, f)
		stdout = f
	}

	cmd := buildCmd(c.Args, stdin, stdout, l.Stderr)
	if err := cmd.Start(); err != nil {
		closeOpened()
		return fmt.Errorf("%s: %w", c.Name(), err)
	}
	// The child holds duplicates now; the parent's copies must go so a
	// redirect target sees EOF once the child is done.
	closeOpened()

	entry := l.Table.Record(cmd.Process.Pid, c)
	logger.Printf("started pid=%d run=%s blocking=%v", entry.PID, entry.RunID, c.Blocking)

	if !c.Blocking {
		return nil
	}
	return l.Table.WaitFor(entry.PID)
}
