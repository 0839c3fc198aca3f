// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package dispatch

import (
	"github.com/gnusto-if/gnusto/internal/change"
	"github.com/gnusto-if/gnusto/internal/worldstore"

	"github.com/gnusto-if/gnusto/cerrs"
)

// ActionResult is a handler's process() output: an optional message,
// a batch of world-store changes (not yet applied — the pipeline
// applies them under validation after process returns), and a batch
// of side effects to translate into further changes (spec.md §4.6).
type ActionResult struct {
	Message    string
	HasMessage bool

	Changes     []worldstore.PendingChange
	SideEffects []change.SideEffect

	// Yield marks the sentinel "I declined, continue with default
	// handling" result. A Yield result carries no message, changes, or
	// side effects and never short-circuits later hooks or handlers.
	Yield bool
}

// Yielded is the ActionResult::yield sentinel.
var Yielded = ActionResult{Yield: true}

// NewActionResult builds a non-yield ActionResult, asserting at least
// one of message, changes, or side effects is non-empty.
func NewActionResult(message string, changes []worldstore.PendingChange, effects []change.SideEffect) (ActionResult, error) {
	if message == "" && len(changes) == 0 && len(effects) == 0 {
		return ActionResult{}, cerrs.ErrEmptyActionResult
	}
	return ActionResult{Message: message, HasMessage: message != "", Changes: changes, SideEffects: effects}, nil
}

// IsEmpty reports whether result carries no message, changes, or side
// effects — the shape NewActionResult refuses to construct, kept
// here so callers built by hand (tests, hooks) can check the same
// invariant without an error path.
func (r ActionResult) IsEmpty() bool {
	return !r.HasMessage && len(r.Changes) == 0 && len(r.SideEffects) == 0
}
