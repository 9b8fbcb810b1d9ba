// Package parser turns one input line into a linked CmdLine record.
//
// Supported syntax: whitespace-separated words, "<" and ">" redirection
// targets (either as separate tokens or attached, e.g. ">out.txt"), at most
// one "|" linking two stages, and a trailing "&" marking the line
// non-blocking. The rest of the shell consumes records and never
// re-tokenizes.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/TomNouri3/ESPL/pkg/lib"
)

var (
	ErrTooManyStages = errors.New("pipelines are limited to two commands")
	ErrEmptyStage    = errors.New("empty command on one side of a pipe")
)

// Parse builds a CmdLine chain from one input line. A blank line yields
// (nil, nil).
func Parse(line string) (*lib.CmdLine, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, nil
	}

	blocking := true
	if strings.HasSuffix(trimmed, "&") {
		blocking = false
		trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, "&"))
		if trimmed == "" {
			return nil, errors.New("missing command before &")
		}
	}

	stages := strings.Split(trimmed, "|")
	if len(stages) > 2 {
		return nil, ErrTooManyStages
	}

	var first, prev *lib.CmdLine
	for _, stage := range stages {
		cmd, err := parseStage(stage)
		if err != nil {
			return nil, err
		}
		if first == nil {
			first = cmd
		} else {
			prev.Next = cmd
		}
		prev = cmd
	}

	first.Blocking = blocking
	if first.Next != nil {
		first.Next.Blocking = blocking
	}
	return first, nil
}

func parseStage(stage string) (*lib.CmdLine, error) {
	tokens := strings.Fields(stage)
	if len(tokens) == 0 {
		return nil, ErrEmptyStage
	}

	cmd := &lib.CmdLine{}
	for i := 0; i < len(tokens); i++ {
		switch tok := tokens[i]; {
		case tok == "<":
			if i+1 >= len(tokens) {
				return nil, errors.New("missing input redirection target")
			}
			cmd.InputRedirect = tokens[i+1]
			i++
		case tok == ">":
			if i+1 >= len(tokens) {
				return nil, errors.New("missing output redirection target")
			}
			cmd.OutputRedirect = tokens[i+1]
			i++
		case len(tok) > 1 && strings.HasPrefix(tok, "<"):
			cmd.InputRedirect = tok[1:]
		case len(tok) > 1 && strings.HasPrefix(tok, ">"):
			cmd.OutputRedirect = tok[1:]
		default:
			cmd.Args = append(cmd.Args, tok)
		}
	}
	if len(cmd.Args) == 0 {
		return nil, fmt.Errorf("no program name in %q", strings.TrimSpace(stage))
	}
	return cmd, nil
}
