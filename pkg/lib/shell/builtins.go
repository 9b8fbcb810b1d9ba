package shell

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/TomNouri3/ESPL/pkg/lib"
	"golang.org/x/sys/unix"
)

// builtinFunc handles one dispatcher verb. Errors are reported by the loop;
// the session always survives them.
type builtinFunc func(*Session, *lib.CmdLine) error

// The verb set intercepted before the launcher. Note that "sleep" is the
// suspend verb here and shadows /bin/sleep.
var builtins = map[string]builtinFunc{
	"cd":      builtinCd,
	"alarm":   builtinAlarm,
	"blast":   builtinBlast,
	"sleep":   builtinSleep,
	"procs":   builtinProcs,
	"history": builtinHistory,
}

func builtinCd(s *Session, c *lib.CmdLine) error {
	if len(c.Args) < 2 {
		return errors.New("cd: missing argument")
	}
	if err := os.Chdir(c.Args[1]); err != nil {
		return fmt.Errorf("cd: %w", err)
	}
	return nil
}

// targetPID parses the pid argument of a signal verb.
func targetPID(c *lib.CmdLine) (int, error) {
	if len(c.Args) < 2 {
		return 0, fmt.Errorf("%s: missing process id", c.Name())
	}
	pid, err := strconv.Atoi(c.Args[1])
	if err != nil {
		return 0, fmt.Errorf("%s: invalid process id %q", c.Name(), c.Args[1])
	}
	return pid, nil
}

func builtinAlarm(s *Session, c *lib.CmdLine) error {
	pid, err := targetPID(c)
	if err != nil {
		return err
	}
	if err := unix.Kill(pid, unix.SIGCONT); err != nil {
		return fmt.Errorf("alarm: %w", err)
	}
	fmt.Fprintf(s.Out, "Process %d continued\n", pid)
	return nil
}

func builtinBlast(s *Session, c *lib.CmdLine) error {
	pid, err := targetPID(c)
	if err != nil {
		return err
	}
	if err := unix.Kill(pid, unix.SIGKILL); err != nil {
		return fmt.Errorf("blast: %w", err)
	}
	fmt.Fprintf(s.Out, "Process %d killed\n", pid)
	return nil
}

func builtinSleep(s *Session, c *lib.CmdLine) error {
	pid, err := targetPID(c)
	if err != nil {
		return err
	}
	if err := unix.Kill(pid, unix.SIGSTOP); err != nil {
		return fmt.Errorf("sleep: %w", err)
	}
	fmt.Fprintf(s.Out, "Process %d suspended\n", pid)
	return nil
}

func builtinProcs(s *Session, _ *lib.CmdLine) error {
	s.Table.ListAndPrune(s.Out)
	return nil
}

func builtinHistory(s *Session, _ *lib.CmdLine) error {
	for _, e := range s.History.Entries() {
		fmt.Fprintf(s.Out, "%4d  %s\n", e.N, e.Line)
	}
	return nil
}
