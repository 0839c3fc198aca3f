// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package change defines the vocabulary the state-change engine moves
// through: AttributeKey (the closed set of mutable entity properties),
// StateChange (a single validated, logged mutation), SideEffect (a
// higher-level intent a handler emits that the turn pipeline
// translates into concrete StateChanges against the fuse/daemon maps),
// and Payload, the type-tagged blob fuses and daemons carry.
//
// This package sits below the world store so both the store and the
// action-handler packages that produce StateChanges can depend on it
// without a cycle.
package change
