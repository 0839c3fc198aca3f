// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"strings"
	"testing"

	"github.com/gnusto-if/gnusto/internal/engine"
	"github.com/gnusto-if/gnusto/internal/ioboundary"
)

func TestDemoBlueprintBuildsCleanly(t *testing.T) {
	if _, err := newDemoBlueprint().Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}
}

func TestDemoPlaythroughOpensChestAndTakesTreasure(t *testing.T) {
	e, err := engine.New(newDemoBlueprint())
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	mock := &ioboundary.Mock{Lines: []string{
		"take lamp",
		"take key",
		"turn on lamp",
		"north",
		"unlock chest with key",
		"open chest",
		"take treasure",
		"quit",
	}}
	if err := e.Run(mock); err != nil {
		t.Fatalf("Run: %v", err)
	}

	joined := strings.Join(mock.Flushed, "\n")
	for _, want := range []string{"Taken.", "Unlocked.", "Opened.", "Goodbye"} {
		if !strings.Contains(joined, want) {
			t.Errorf("output %q missing expected text %q", joined, want)
		}
	}
}

func TestDemoRingHandlerStartsAndClearsFuse(t *testing.T) {
	e, err := engine.New(newDemoBlueprint())
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	mock := &ioboundary.Mock{Lines: []string{"ring", "wait", "wait", "quit"}}
	if err := e.Run(mock); err != nil {
		t.Fatalf("Run: %v", err)
	}

	joined := strings.Join(mock.Flushed, "\n")
	if !strings.Contains(joined, "dull clang") {
		t.Errorf("output %q missing the ring message", joined)
	}
	if !strings.Contains(joined, "echo fades") {
		t.Errorf("output %q missing the fuse's fired message", joined)
	}
}
