// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package messenger_test

import (
	"strings"
	"testing"

	"github.com/gnusto-if/gnusto/internal/messenger"
)

func TestTextReturnsDefaultForBuiltinKey(t *testing.T) {
	m := messenger.New()
	if got := m.Text("", messenger.Taken); got != "Taken." {
		t.Errorf("Text(Taken) = %q, want %q", got, "Taken.")
	}
}

func TestTextFormatsArguments(t *testing.T) {
	m := messenger.New()
	got := m.Text("", messenger.UnknownWord, "xyzzy")
	if !strings.Contains(got, "xyzzy") {
		t.Errorf("Text(UnknownWord) = %q, want it to mention the word", got)
	}
}

func TestLoadOverridesReplacesBaseKey(t *testing.T) {
	m := messenger.New()
	if err := m.LoadOverrides(strings.NewReader("taken: \"Got it.\"\n")); err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}
	if got := m.Text("", messenger.Taken); got != "Got it." {
		t.Errorf("Text(Taken) after override = %q, want %q", got, "Got it.")
	}
}

func TestTextPrefersNamespacedVariant(t *testing.T) {
	m := messenger.New()
	if err := m.LoadOverrides(strings.NewReader("take.taken: \"You snag it.\"\n")); err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}
	if got := m.Text("take", messenger.Taken); got != "You snag it." {
		t.Errorf("Text(take, Taken) = %q, want namespaced override", got)
	}
	if got := m.Text("drop", messenger.Taken); got != "Taken." {
		t.Errorf("Text(drop, Taken) = %q, want base default unaffected", got)
	}
}

func TestTextFallsBackForUnknownKey(t *testing.T) {
	m := messenger.New()
	got := m.Text("", messenger.Key("notARealKey"))
	if !strings.Contains(got, "notARealKey") {
		t.Errorf("Text(unknown) = %q, want it to name the missing key", got)
	}
}
