// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package timesystem

import (
	"fmt"

	"github.com/gnusto-if/gnusto/internal/change"
	"github.com/gnusto-if/gnusto/internal/dispatch"
	"github.com/gnusto-if/gnusto/internal/enginelog"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/statevalue"
	"github.com/gnusto-if/gnusto/internal/worldstore"
)

// maxConsecutiveFailures is spec.md §7's "removed if it throws twice
// consecutively."
const maxConsecutiveFailures = 2

// TickResult collects everything the turn pipeline needs to surface
// to the player after one Tick: every message a fired fuse or due
// daemon produced, in firing order, the StateChanges actually
// applied, and counts of how many fuses/daemons actually fired (for
// metrics, not for gameplay).
type TickResult struct {
	Messages     []string
	Applied      []change.StateChange
	FusesFired   int
	DaemonsFired int
}

// Tick runs the time system for one completed turn (spec.md §4.8):
// every active fuse ticks down and fires at zero; every active daemon
// whose frequency divides turn is invoked. Fuses are processed in the
// order they were started before any daemon runs.
func (r *Registry) Tick(turn int, store *worldstore.Store, view dispatch.EngineView, logger *enginelog.Logger) (TickResult, error) {
	var out TickResult

	for _, id := range store.ActiveFuseIDs() {
		f, ok := store.Fuse(id)
		if !ok {
			continue // removed earlier this tick by another fuse's side effect
		}
		remaining := f.Turns - 1
		if remaining > 0 {
			if _, err := store.Apply(turn, ids.FuseEntity(id), change.UpdateFuseTurns(id), statevalue.Int(remaining), change.Payload{}); err != nil {
				return out, fmt.Errorf("timesystem: fuse %q: %w", id, err)
			}
			continue
		}

		fn, ok := r.fuseFunc(id)
		if !ok {
			return out, fmt.Errorf("timesystem: fuse %q: no function registered", id)
		}
		result, err := fn(view, id, f)
		if err != nil {
			r.fuseFailures[id]++
			logger.FuseFailed(turn, string(id), r.fuseFailures[id], err)
			if r.fuseFailures[id] >= maxConsecutiveFailures {
				if _, rerr := store.Apply(turn, ids.FuseEntity(id), change.RemoveActiveFuse(id), statevalue.Int(0), change.Payload{}); rerr != nil {
					return out, fmt.Errorf("timesystem: fuse %q: removing after failure: %w", id, rerr)
				}
				logger.FuseRemoved(turn, string(id))
				delete(r.fuseFailures, id)
				continue
			}
			if _, werr := store.Apply(turn, ids.FuseEntity(id), change.UpdateFuseTurns(id), statevalue.Int(0), change.Payload{}); werr != nil {
				return out, fmt.Errorf("timesystem: fuse %q: %w", id, werr)
			}
			continue
		}

		r.fuseFailures[id] = 0
		out.FusesFired++
		if result != nil {
			applied, msg, aerr := applyActionResult(store, turn, result)
			if aerr != nil {
				return out, fmt.Errorf("timesystem: fuse %q: applying result: %w", id, aerr)
			}
			out.Applied = append(out.Applied, applied...)
			if msg != "" {
				out.Messages = append(out.Messages, msg)
			}
		}
		if _, err := store.Apply(turn, ids.FuseEntity(id), change.RemoveActiveFuse(id), statevalue.Int(0), change.Payload{}); err != nil {
			return out, fmt.Errorf("timesystem: fuse %q: removing after fire: %w", id, err)
		}
	}

	for _, id := range store.ActiveDaemonIDs() {
		entry, ok := r.daemonFunc(id)
		if !ok {
			return out, fmt.Errorf("timesystem: daemon %q: no function registered", id)
		}
		if entry.frequency <= 0 || turn%entry.frequency != 0 {
			continue
		}
		d, ok := store.Daemon(id)
		if !ok {
			continue // removed earlier this tick
		}

		result, err := entry.fn(view, id, d)
		if err != nil {
			r.daemonFailures[id]++
			logger.DaemonFailed(turn, string(id), r.daemonFailures[id], err)
			if r.daemonFailures[id] >= maxConsecutiveFailures {
				if _, rerr := store.Apply(turn, ids.DaemonEntity(id), change.RemoveActiveDaemon(id), statevalue.Int(0), change.Payload{}); rerr != nil {
					return out, fmt.Errorf("timesystem: daemon %q: removing after failure: %w", id, rerr)
				}
				logger.DaemonRemoved(turn, string(id))
				delete(r.daemonFailures, id)
			}
			continue
		}
		r.daemonFailures[id] = 0
		out.DaemonsFired++

		payload := d.Payload
		if result != nil {
			applied, msg, aerr := applyActionResult(store, turn, result)
			if aerr != nil {
				return out, fmt.Errorf("timesystem: daemon %q: applying result: %w", id, aerr)
			}
			out.Applied = append(out.Applied, applied...)
			if msg != "" {
				out.Messages = append(out.Messages, msg)
			}
		}
		if _, err := store.Apply(turn, ids.DaemonEntity(id), change.UpdateDaemonState(id), statevalue.Int(d.ExecutionCount+1), payload); err != nil {
			return out, fmt.Errorf("timesystem: daemon %q: updating state: %w", id, err)
		}
	}

	return out, nil
}

// applyActionResult applies a fired fuse/daemon's changes and
// recursively translates its side effects into further changes,
// exactly as the turn pipeline does for a handler's ActionResult
// (spec.md §4.3). Yielded results are a no-op here: a fuse/daemon
// function has nothing further to defer to.
func applyActionResult(store *worldstore.Store, turn int, result *dispatch.ActionResult) ([]change.StateChange, string, error) {
	if result.Yield {
		return nil, "", nil
	}
	applied, err := store.ApplyAll(turn, result.Changes)
	if err != nil {
		return applied, "", err
	}
	for _, se := range result.SideEffects {
		pending, err := store.Translate(se)
		if err != nil {
			return applied, "", err
		}
		more, err := store.ApplyAll(turn, pending)
		if err != nil {
			return applied, "", err
		}
		applied = append(applied, more...)
	}
	msg := ""
	if result.HasMessage {
		msg = result.Message
	}
	return applied, msg, nil
}
