// Package shell drives the interactive read-eval loop and dispatches the
// built-in job-control verbs ahead of the launcher.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/TomNouri3/ESPL/pkg/lib"
	"github.com/TomNouri3/ESPL/pkg/lib/history"
	"github.com/TomNouri3/ESPL/pkg/lib/jobs"
	"github.com/TomNouri3/ESPL/pkg/lib/launcher"
	"github.com/TomNouri3/ESPL/pkg/lib/parser"
)

// Session owns one shell run: the job table, the launcher, the history ring
// and the streams of the read-eval loop. All state dies with the session;
// jobs still running at exit are abandoned, not reaped.
type Session struct {
	Table    *jobs.Table
	Launcher *launcher.Launcher
	History  *history.Ring

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// NewSession wires a Session to the process's standard streams.
func NewSession() *Session {
	table := jobs.NewTable()
	return &Session{
		Table:    table,
		Launcher: launcher.New(table),
		History:  history.New(history.DefaultCapacity),
		In:       os.Stdin,
		Out:      os.Stdout,
		Err:      os.Stderr,
	}
}

// Run reads lines until "quit" or EOF. Every error is reported as a single
// diagnostic line and the loop continues.
func (s *Session) Run() error {
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT)
	defer signal.Stop(sigc)

	reader := bufio.NewReader(s.In)
	for {
		s.printPrompt()

		// An interrupt aimed at the shell just redraws the prompt; launched
		// jobs live in their own process groups and are unaffected.
		select {
		case <-sigc:
			fmt.Fprintln(s.Out)
			continue
		default:
		}

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimRight(line, "\n")
		if len(line) > history.MaxLineLen {
			fmt.Fprintf(s.Err, "line too long (max %d bytes)\n", history.MaxLineLen)
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		expanded, recalled, err := s.History.Expand(trimmed)
		if err != nil {
			fmt.Fprintln(s.Err, err)
			continue
		}
		if recalled {
			fmt.Fprintln(s.Out, expanded)
		}

		if expanded == "quit" {
			return nil
		}

		// Both typed and recalled lines are bounded, so Add cannot fail here.
		_ = s.History.Add(expanded)

		cmd, err := parser.Parse(expanded)
		if err != nil {
			fmt.Fprintln(s.Err, err)
			continue
		}
		if cmd == nil {
			continue
		}

		if err := s.Execute(cmd); err != nil {
			fmt.Fprintln(s.Err, err)
		}
	}
}

// Execute dispatches one command record: built-in verbs first, matched
// case-sensitively on the first argument, everything else to the launcher.
func (s *Session) Execute(cmd *lib.CmdLine) error {
	if fn, ok := builtins[cmd.Name()]; ok {
		return fn(s, cmd)
	}
	return s.Launcher.Run(cmd)
}

func (s *Session) printPrompt() {
	wd, err := os.Getwd()
	if err != nil {
		wd = "?"
	}
	fmt.Fprintf(s.Out, "%s> ", wd)
}
