package history

import (
	"errors"
	"strings"
	"testing"
)

func TestAddAndNumbering(t *testing.T) {
	r := New(5)
	for _, line := range []string{"echo one", "echo two", "echo three"} {
		if err := r.Add(line); err != nil {
			t.Fatalf("Add(%q): %v", line, err)
		}
	}

	entries := r.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].N != 1 || entries[0].Line != "echo one" {
		t.Errorf("first entry = %+v", entries[0])
	}
	if entries[2].N != 3 || entries[2].Line != "echo three" {
		t.Errorf("last entry = %+v", entries[2])
	}
}

func TestEvictionKeepsAbsoluteNumbers(t *testing.T) {
	r := New(3)
	lines := []string{"a", "b", "c", "d", "e"}
	for _, line := range lines {
		if err := r.Add(line); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	entries := r.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 retained entries, got %d", len(entries))
	}
	if entries[0].N != 3 || entries[0].Line != "c" {
		t.Errorf("oldest retained = %+v, want {3 c}", entries[0])
	}

	if _, err := r.Get(1); err == nil {
		t.Error("expected evicted entry 1 to be unavailable")
	}
	got, err := r.Get(5)
	if err != nil || got != "e" {
		t.Errorf("Get(5) = %q, %v", got, err)
	}
}

func TestRejectsOverlongLine(t *testing.T) {
	r := New(3)
	err := r.Add(strings.Repeat("x", MaxLineLen+1))
	if !errors.Is(err, ErrLineTooLong) {
		t.Fatalf("expected ErrLineTooLong, got %v", err)
	}
	if len(r.Entries()) != 0 {
		t.Error("rejected line must not be stored")
	}

	if err := r.Add(strings.Repeat("x", MaxLineLen)); err != nil {
		t.Errorf("line at the limit should be accepted: %v", err)
	}
}

func TestExpand(t *testing.T) {
	r := New(5)
	r.Add("echo one")
	r.Add("echo two")

	got, recalled, err := r.Expand("!!")
	if err != nil || !recalled || got != "echo two" {
		t.Errorf("Expand(!!) = %q, %v, %v", got, recalled, err)
	}

	got, recalled, err = r.Expand("!1")
	if err != nil || !recalled || got != "echo one" {
		t.Errorf("Expand(!1) = %q, %v, %v", got, recalled, err)
	}

	got, recalled, err = r.Expand("ls")
	if err != nil || recalled || got != "ls" {
		t.Errorf("Expand(ls) = %q, %v, %v", got, recalled, err)
	}

	if _, _, err := r.Expand("!9"); err == nil {
		t.Error("expected error for unknown entry")
	}
	if _, _, err := r.Expand("!abc"); err == nil {
		t.Error("expected error for malformed recall")
	}
}

func TestExpandEmptyHistory(t *testing.T) {
	r := New(5)
	if _, _, err := r.Expand("!!"); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}
