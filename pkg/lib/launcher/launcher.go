// Package launcher starts external processes from command records: a single
// command with optional redirection, or two commands joined by one pipe.
// Every started process is recorded in the job table before the launcher
// returns.
package launcher

import (
	"errors"
	"io"
	"log"
	"os"
	"os/exec"
	"syscall"

	"github.com/TomNouri3/ESPL/pkg/lib"
	"github.com/TomNouri3/ESPL/pkg/lib/jobs"
)

var logger = log.New(io.Discard, "", log.LstdFlags)

// EnableLogging directs launch logging to w. The shell's debug mode points
// it at stderr.
func EnableLogging(w io.Writer) {
	logger.SetOutput(w)
}

// Pipe-side redirection conflicts, rejected before any process is started.
var (
	ErrPipeOutputRedirect = errors.New("output redirection is not allowed on the left side of a pipe")
	ErrPipeInputRedirect  = errors.New("input redirection is not allowed on the right side of a pipe")
)

// Launcher starts processes and records them in the job table. The stream
// fields default to the shell's own standard streams and are the fallback
// when a command requests no redirection.
type Launcher struct {
	Table  *jobs.Table
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File
}

// New returns a Launcher wired to the process's standard streams.
func New(table *jobs.Table) *Launcher {
	return &Launcher{Table: table, Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run launches cmd. A blocking single command does not return until its
// entry shows Terminated; a pipeline is always awaited to completion
// regardless of the blocking flag. Errors abort only the current command,
// never the session.
func (l *Launcher) Run(cmd *lib.CmdLine) error {
	if cmd.Next != nil {
		return l.runPipeline(cmd)
	}
	return l.runSingle(cmd)
}

// buildCmd assembles an exec.Cmd on the given standard streams. Every job
// runs in its own process group so terminal signals aimed at the shell do
// not reach tracked jobs.
func buildCmd(args []string, stdin, stdout, stderr *os.File) *exec.Cmd {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	return cmd
}
