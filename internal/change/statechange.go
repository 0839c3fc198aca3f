// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package change

import (
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/statevalue"
)

// StateChange is a single, validated, logged mutation of the world
// store. OldValue is the pre-mutation value the engine observed at
// apply time — the change log is self-describing, so readers never
// need to replay history to know what a change undid. HasOldValue is
// false only for attributes with no prior value (e.g. the first
// globalSet of a given global).
type StateChange struct {
	Turn        int
	Target      ids.EntityID
	Attribute   AttributeKey
	OldValue    statevalue.StateValue
	HasOldValue bool
	NewValue    statevalue.StateValue

	// Payload carries a fuse/daemon's typed payload for the admin
	// AttributeKinds (addActiveFuse, updateDaemonState, ...). StateValue
	// has no shape for an opaque blob, so it travels alongside instead
	// of being squeezed into NewValue.
	Payload Payload
}

// New builds a StateChange for the engine to validate and apply. The
// caller (the state-change engine's Apply, never a handler directly)
// fills in OldValue/HasOldValue from the pre-mutation snapshot.
func New(turn int, target ids.EntityID, attr AttributeKey, newValue statevalue.StateValue) StateChange {
	return StateChange{Turn: turn, Target: target, Attribute: attr, NewValue: newValue}
}

// WithPayload attaches a fuse/daemon payload to the change.
func (c StateChange) WithPayload(p Payload) StateChange {
	c.Payload = p
	return c
}

// WithOldValue returns a copy of the change with its observed
// pre-mutation value recorded.
func (c StateChange) WithOldValue(old statevalue.StateValue) StateChange {
	c.OldValue = old
	c.HasOldValue = true
	return c
}
