package launcher

import (
	"fmt"
	"os"

	"github.com/TomNouri3/ESPL/pkg/lib"
)

// runPipeline starts both stages connected by one pipe and waits for both to
// terminate. Stage 1 may redirect its input and stage 2 its output; the two
// pipe-facing sides are rejected before anything is started.
func (l *Launcher) runPipeline(first *lib.CmdLine) error {
	second := first.Next

	if first.OutputRedirect != "" {
		return ErrPipeOutputRedirect
	}
	if second.InputRedirect != "" {
		return ErrPipeInputRedirect
	}

	stdin, stdout := l.Stdin, l.Stdout
	var opened []*os.File
	closeOpened := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	if first.InputRedirect != "" {
		f, err := os.Open(first.InputRedirect)
		if err != nil {
			return fmt.Errorf("input redirection: %w", err)
		}
		opened = append(opened, f)
		stdin = f
	}
	if second.OutputRedirect != "" {
		f, err := os.OpenFile(second.OutputRedirect, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			closeOpened()
			return fmt.Errorf("output redirection: %w", err)
		}
		opened = append(opened, f)
		stdout = f
	}

	r, w, err := os.Pipe()
	if err != nil {
		closeOpened()
		return fmt.Errorf("pipe: %w", err)
	}

	stage1 := buildCmd(first.Args, stdin, w, l.Stderr)
	stage2 := buildCmd(second.Args, r, stdout, l.Stderr)

	if err := stage1.Start(); err != nil {
		r.Close()
		w.Close()
		closeOpened()
		return fmt.Errorf("%s: %w", first.Name(), err)
	}
	// Stage 1 owns its duplicate of the write end; drop the parent's so the
	// reader sees EOF when stage 1 exits.
	w.Close()

	e1 := l.Table.Record(stage1.Process.Pid, first)

	err2 := stage2.Start()
	r.Close()
	closeOpened()
	if err2 != nil {
		// Stage 1 is already live; its pipe reader is gone, so reap it
		// before reporting the failure.
		_ = l.Table.WaitFor(e1.PID)
		return fmt.Errorf("%s: %w", second.Name(), err2)
	}

	e2 := l.Table.Record(stage2.Process.Pid, second)
	logger.Printf("pipeline started pid=%d run=%s | pid=%d run=%s",
		e1.PID, e1.RunID, e2.PID, e2.RunID)

	if err := l.Table.WaitFor(e1.PID); err != nil {
		return err
	}
	return l.Table.WaitFor(e2.PID)
}
