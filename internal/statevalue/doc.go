// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package statevalue implements StateValue, the closed sum type that
// every attribute read or mutation in the engine moves through: bools,
// ints, strings, item/location ids and sets, location exit maps, and
// parent-entity references. Exactly the shapes spec.md §3 enumerates
// are legal; Kind is a closed enum so a switch over it can be checked
// for exhaustiveness by code review the way the teacher's enum
// packages (direction, results) are — there is no "any" escape hatch.
package statevalue
