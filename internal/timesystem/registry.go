// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package timesystem

import (
	"github.com/gnusto-if/gnusto/internal/dispatch"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/worldstore"
)

// FuseFunc is invoked when a scheduled fuse reaches zero turns
// remaining. It receives the fuse's own payload and may return an
// ActionResult carrying changes/side effects to apply, same as an
// action handler's Process.
type FuseFunc func(view dispatch.EngineView, id ids.FuseID, state worldstore.FuseState) (*dispatch.ActionResult, error)

// DaemonFunc is invoked whenever its daemon is due. It receives the
// daemon's current execution bookkeeping and payload.
type DaemonFunc func(view dispatch.EngineView, id ids.DaemonID, state worldstore.DaemonState) (*dispatch.ActionResult, error)

type daemonEntry struct {
	fn        DaemonFunc
	frequency int
}

// Registry maps fuse/daemon ids (as named by a blueprint, spec.md
// §6.2) to the functions the time system invokes for them, and a
// daemon's fixed invocation frequency. It also tracks consecutive
// failures so Tick can remove a fuse/daemon that throws twice in a
// row (spec.md §7).
type Registry struct {
	fuses   map[ids.FuseID]FuseFunc
	daemons map[ids.DaemonID]daemonEntry

	fuseFailures   map[ids.FuseID]int
	daemonFailures map[ids.DaemonID]int
}

// NewRegistry builds an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		fuses:          make(map[ids.FuseID]FuseFunc),
		daemons:        make(map[ids.DaemonID]daemonEntry),
		fuseFailures:   make(map[ids.FuseID]int),
		daemonFailures: make(map[ids.DaemonID]int),
	}
}

// RegisterFuse associates id with the function invoked when it fires.
func (r *Registry) RegisterFuse(id ids.FuseID, fn FuseFunc) {
	r.fuses[id] = fn
}

// RegisterDaemon associates id with the function invoked when it is
// due, and the turn frequency at which it is due.
func (r *Registry) RegisterDaemon(id ids.DaemonID, frequency int, fn DaemonFunc) {
	r.daemons[id] = daemonEntry{fn: fn, frequency: frequency}
}

func (r *Registry) fuseFunc(id ids.FuseID) (FuseFunc, bool) {
	fn, ok := r.fuses[id]
	return fn, ok
}

func (r *Registry) daemonFunc(id ids.DaemonID) (daemonEntry, bool) {
	e, ok := r.daemons[id]
	return e, ok
}
