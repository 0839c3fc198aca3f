// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package metrics is the engine's optional instrumentation seam: a
// small Recorder of turn-pipeline counters registered against a host-
// supplied *prometheus.Registry. With a nil Registry (the default) the
// counters still count but are exported nowhere, and a nil *Recorder
// makes every method a no-op, so the engine never becomes a networked
// surface on its own (spec.md's Non-goals exclude networking, not
// instrumentation).
package metrics
