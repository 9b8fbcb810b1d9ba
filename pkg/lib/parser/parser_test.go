package parser

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseSingleCommands(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		args     []string
		in, out  string
		blocking bool
	}{
		{"plain", "echo hi", []string{"echo", "hi"}, "", "", true},
		{"background", "find / -name x &", []string{"find", "/", "-name", "x"}, "", "", false},
		{"redirects spaced", "cat < in.txt > out.txt", []string{"cat"}, "in.txt", "out.txt", true},
		{"redirects attached", "grep foo <in.txt >out.txt", []string{"grep", "foo"}, "in.txt", "out.txt", true},
		{"background with spaces", "wc -l   &", []string{"wc", "-l"}, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := Parse(tt.line)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.line, err)
			}
			if cmd.Next != nil {
				t.Fatalf("expected no pipeline for %q", tt.line)
			}
			if !reflect.DeepEqual(cmd.Args, tt.args) {
				t.Errorf("args = %v, want %v", cmd.Args, tt.args)
			}
			if cmd.InputRedirect != tt.in {
				t.Errorf("input redirect = %q, want %q", cmd.InputRedirect, tt.in)
			}
			if cmd.OutputRedirect != tt.out {
				t.Errorf("output redirect = %q, want %q", cmd.OutputRedirect, tt.out)
			}
			if cmd.Blocking != tt.blocking {
				t.Errorf("blocking = %v, want %v", cmd.Blocking, tt.blocking)
			}
		})
	}
}

func TestParsePipeline(t *testing.T) {
	cmd, err := Parse("ls -l | tail -n 2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cmd.Next == nil {
		t.Fatal("expected a second pipeline stage")
	}
	if !reflect.DeepEqual(cmd.Args, []string{"ls", "-l"}) {
		t.Errorf("stage 1 args = %v", cmd.Args)
	}
	if !reflect.DeepEqual(cmd.Next.Args, []string{"tail", "-n", "2"}) {
		t.Errorf("stage 2 args = %v", cmd.Next.Args)
	}
	if cmd.Next.Next != nil {
		t.Error("expected exactly two stages")
	}
	if !cmd.Blocking || !cmd.Next.Blocking {
		t.Error("pipeline stages should be marked blocking")
	}
}

func TestParseBlankLine(t *testing.T) {
	cmd, err := Parse("   \t ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd != nil {
		t.Fatalf("expected nil record, got %v", cmd)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error // nil means any error is acceptable
	}{
		{"three stages", "a | b | c", ErrTooManyStages},
		{"empty stage", "ls |", ErrEmptyStage},
		{"empty first stage", "| wc", ErrEmptyStage},
		{"only redirect", ">out.txt", nil},
		{"dangling redirect", "cat <", nil},
		{"lone ampersand", "&", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.line)
			if err == nil {
				t.Fatalf("Parse(%q): expected error", tt.line)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.line, err, tt.want)
			}
		})
	}
}
