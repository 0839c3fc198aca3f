// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package ioboundary

// IOBoundary is the engine's only window onto the outside world. The
// turn pipeline reads exactly one line per turn through ReadLine and
// buffers everything handlers/hooks/the time system produce via
// Print, flushing it as one block with Flush (spec.md §4.10 step 4).
type IOBoundary interface {
	// ReadLine blocks for one line of player input. ok is false at
	// end of input (EOF), signalling the pipeline to stop.
	ReadLine() (line string, ok bool)
	// Print buffers text to be shown after the current turn's
	// processing completes.
	Print(s string)
	// Flush writes everything buffered since the last Flush.
	Flush()
}
