// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package ioboundary_test

import (
	"strings"
	"testing"

	"github.com/gnusto-if/gnusto/internal/ioboundary"
)

func TestTerminalReadLineReturnsEachLine(t *testing.T) {
	term := ioboundary.NewTerminal(strings.NewReader("look\ntake lamp\n"), &strings.Builder{})

	line, ok := term.ReadLine()
	if !ok || line != "look" {
		t.Fatalf("ReadLine() = %q, %v; want %q, true", line, ok, "look")
	}
	line, ok = term.ReadLine()
	if !ok || line != "take lamp" {
		t.Fatalf("ReadLine() = %q, %v; want %q, true", line, ok, "take lamp")
	}
	if _, ok := term.ReadLine(); ok {
		t.Fatal("expected false at end of input")
	}
}

func TestTerminalFlushWritesBufferedOutput(t *testing.T) {
	var out strings.Builder
	term := ioboundary.NewTerminal(strings.NewReader(""), &out)

	term.Print("Taken.")
	term.Print(" ")
	term.Print("It is dark.")
	if out.Len() != 0 {
		t.Fatal("expected no output before Flush")
	}
	term.Flush()
	if out.String() != "Taken. It is dark." {
		t.Errorf("out = %q, want the buffered text", out.String())
	}
	term.Flush()
	if out.String() != "Taken. It is dark." {
		t.Errorf("a second Flush with nothing buffered should not duplicate output, got %q", out.String())
	}
}

func TestMockReturnsCannedLinesThenFalse(t *testing.T) {
	m := &ioboundary.Mock{Lines: []string{"look", "inventory"}}

	if line, ok := m.ReadLine(); !ok || line != "look" {
		t.Fatalf("ReadLine() = %q, %v", line, ok)
	}
	if line, ok := m.ReadLine(); !ok || line != "inventory" {
		t.Fatalf("ReadLine() = %q, %v", line, ok)
	}
	if _, ok := m.ReadLine(); ok {
		t.Fatal("expected false once lines are exhausted")
	}
}

func TestMockRecordsFlushedBlocks(t *testing.T) {
	m := &ioboundary.Mock{}
	m.Print("Taken.")
	m.Flush()
	m.Print("Dropped.")
	m.Flush()

	if len(m.Flushed) != 2 || m.Flushed[0] != "Taken." || m.Flushed[1] != "Dropped." {
		t.Errorf("Flushed = %v, want two separate blocks", m.Flushed)
	}
}
