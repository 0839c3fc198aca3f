// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package ioboundary isolates the engine's one suspension point that
// talks to the outside world (spec.md §5): reading one input line per
// turn and printing output buffered for the duration of a turn.
package ioboundary
