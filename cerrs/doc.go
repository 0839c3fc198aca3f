// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package cerrs defines constant error types using a custom Error string type.
// It centralizes sentinel errors shared across the engine's packages —
// world store lookups, state-change validation, fuse scheduling, and
// snapshot handling. The Error type supports comparison via errors.Is().
package cerrs
