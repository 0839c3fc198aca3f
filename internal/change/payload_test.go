// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package change_test

import (
	"testing"

	"github.com/gnusto-if/gnusto/internal/change"
)

type fuseCountdownPayload struct {
	WarningsGiven int `json:"warnings_given"`
}

func TestPayloadDecodeRoundTrip(t *testing.T) {
	p, err := change.NewPayload("fuse_countdown", fuseCountdownPayload{WarningsGiven: 2})
	if err != nil {
		t.Fatalf("NewPayload: %v", err)
	}
	var got fuseCountdownPayload
	ok, err := p.Decode("fuse_countdown", &got)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !ok {
		t.Fatalf("Decode reported false for matching tag")
	}
	if got.WarningsGiven != 2 {
		t.Errorf("WarningsGiven = %d, want 2", got.WarningsGiven)
	}
}

func TestPayloadDecodeWrongTagReturnsAbsent(t *testing.T) {
	p, err := change.NewPayload("fuse_countdown", fuseCountdownPayload{WarningsGiven: 1})
	if err != nil {
		t.Fatalf("NewPayload: %v", err)
	}
	var got fuseCountdownPayload
	ok, err := p.Decode("something_else", &got)
	if err != nil {
		t.Fatalf("Decode should not error on tag mismatch, got %v", err)
	}
	if ok {
		t.Errorf("Decode should report false for mismatched tag")
	}
}

func TestZeroPayloadIsZero(t *testing.T) {
	var p change.Payload
	if !p.IsZero() {
		t.Errorf("zero-value Payload should report IsZero")
	}
}
