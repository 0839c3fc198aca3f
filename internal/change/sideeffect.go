// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package change

import (
	"fmt"

	"github.com/gnusto-if/gnusto/internal/ids"
)

// SideEffectKind_e is the closed enum of higher-level intents a
// handler may emit alongside its StateChanges. The turn pipeline
// translates each into concrete StateChanges against the fuse/daemon
// maps; handlers never touch those maps directly.
type SideEffectKind_e int

const (
	SideEffectUnknown SideEffectKind_e = iota
	StartFuse
	StopFuse
	RunDaemon
	StopDaemon
	ScheduleEvent
)

var sideEffectKindNames = map[SideEffectKind_e]string{
	SideEffectUnknown: "unknown",
	StartFuse:         "start_fuse",
	StopFuse:          "stop_fuse",
	RunDaemon:         "run_daemon",
	StopDaemon:        "stop_daemon",
	ScheduleEvent:     "schedule_event",
}

func (k SideEffectKind_e) String() string {
	if s, ok := sideEffectKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("SideEffectKind(%d)", int(k))
}

// SideEffect is a single intent emitted by a handler's process step.
// Only the fields relevant to Kind are populated.
type SideEffect struct {
	Kind SideEffectKind_e

	FuseID   ids.FuseID   // StartFuse, StopFuse
	Turns    int          // StartFuse; must be >= 1
	DaemonID ids.DaemonID // RunDaemon, StopDaemon
	Label    string       // ScheduleEvent
	Payload  Payload      // StartFuse, ScheduleEvent
}

// NewStartFuse schedules fuseID to fire after turns more ticks,
// carrying payload for the fuse function to inspect when it fires.
// This constructor does not check turns; worldstore.Store.Translate
// rejects a value below 1 with cerrs.ErrInvalidFuseTurns.
func NewStartFuse(fuseID ids.FuseID, turns int, payload Payload) SideEffect {
	return SideEffect{Kind: StartFuse, FuseID: fuseID, Turns: turns, Payload: payload}
}

// NewStopFuse cancels a previously started fuse before it fires.
func NewStopFuse(fuseID ids.FuseID) SideEffect {
	return SideEffect{Kind: StopFuse, FuseID: fuseID}
}

// NewRunDaemon activates a daemon so the time system invokes it, going
// forward, on every tick whose turn number is a multiple of the
// frequency the daemon was registered with.
func NewRunDaemon(daemonID ids.DaemonID) SideEffect {
	return SideEffect{Kind: RunDaemon, DaemonID: daemonID}
}

// NewStopDaemon deactivates a running daemon.
func NewStopDaemon(daemonID ids.DaemonID) SideEffect {
	return SideEffect{Kind: StopDaemon, DaemonID: daemonID}
}

// NewScheduleEvent defers an arbitrary labeled event for the pipeline
// to dispatch after the current batch of changes is applied. Used by
// handlers that need to react after their own mutations have
// committed (e.g. "check win condition once the score is updated").
func NewScheduleEvent(label string, payload Payload) SideEffect {
	return SideEffect{Kind: ScheduleEvent, Label: label, Payload: payload}
}
