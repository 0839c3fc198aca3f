// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package worldstore

import (
	"fmt"

	"github.com/gnusto-if/gnusto/cerrs"
	"github.com/gnusto-if/gnusto/internal/change"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/statevalue"
)

// Fuse/daemon admin mutations are structural (they add/remove map
// entries rather than overwrite a StateValue slot), so they bypass
// resolveCurrent/mutate and are handled here directly. Each still
// produces a change.StateChange appended to the log, satisfying the
// same "every mutation is logged" invariant as attribute overlays.

func (s *Store) applyAddActiveFuse(turn int, attr change.AttributeKey, payload change.Payload) (change.StateChange, error) {
	if attr.InitialTurns < 1 {
		return change.StateChange{}, fmt.Errorf("worldstore: %w", cerrs.ErrInvalidFuseTurns)
	}
	if _, ok := s.fuses[attr.FuseID]; ok {
		return change.StateChange{}, fmt.Errorf("worldstore: fuse %q: %w", attr.FuseID, cerrs.ErrFuseAlreadyActive)
	}
	s.fuses[attr.FuseID] = FuseState{Turns: attr.InitialTurns, Payload: payload}
	s.fuseOrder = append(s.fuseOrder, attr.FuseID)
	rec := change.StateChange{
		Turn:      turn,
		Target:    ids.FuseEntity(attr.FuseID),
		Attribute: attr,
		NewValue:  statevalue.Int(attr.InitialTurns),
		Payload:   payload,
	}
	s.changeLog = append(s.changeLog, rec)
	return rec, nil
}

func (s *Store) applyUpdateFuseTurns(turn int, attr change.AttributeKey, newValue statevalue.StateValue) (change.StateChange, error) {
	f, ok := s.fuses[attr.FuseID]
	if !ok {
		return change.StateChange{}, fmt.Errorf("worldstore: fuse %q: %w", attr.FuseID, cerrs.ErrNotFound)
	}
	old := statevalue.Int(f.Turns)
	f.Turns = newValue.IntVal
	s.fuses[attr.FuseID] = f
	rec := change.StateChange{
		Turn: turn, Target: ids.FuseEntity(attr.FuseID), Attribute: attr,
		OldValue: old, HasOldValue: true, NewValue: newValue,
	}
	s.changeLog = append(s.changeLog, rec)
	return rec, nil
}

func (s *Store) applyRemoveActiveFuse(turn int, attr change.AttributeKey) (change.StateChange, error) {
	f, ok := s.fuses[attr.FuseID]
	if !ok {
		return change.StateChange{}, fmt.Errorf("worldstore: fuse %q: %w", attr.FuseID, cerrs.ErrNotFound)
	}
	delete(s.fuses, attr.FuseID)
	s.fuseOrder = removeFuseID(s.fuseOrder, attr.FuseID)
	rec := change.StateChange{
		Turn: turn, Target: ids.FuseEntity(attr.FuseID), Attribute: attr,
		OldValue: statevalue.Int(f.Turns), HasOldValue: true, Payload: f.Payload,
	}
	s.changeLog = append(s.changeLog, rec)
	return rec, nil
}

func removeFuseID(order []ids.FuseID, id ids.FuseID) []ids.FuseID {
	for i, f := range order {
		if f == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}

func removeDaemonID(order []ids.DaemonID, id ids.DaemonID) []ids.DaemonID {
	for i, d := range order {
		if d == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}

func (s *Store) applyAddActiveDaemon(turn int, attr change.AttributeKey, payload change.Payload) (change.StateChange, error) {
	if _, ok := s.daemons[attr.DaemonID]; ok {
		return change.StateChange{}, fmt.Errorf("worldstore: daemon %q already active", attr.DaemonID)
	}
	s.daemons[attr.DaemonID] = DaemonState{Payload: payload}
	s.daemonOrder = append(s.daemonOrder, attr.DaemonID)
	rec := change.StateChange{
		Turn: turn, Target: ids.DaemonEntity(attr.DaemonID), Attribute: attr, Payload: payload,
	}
	s.changeLog = append(s.changeLog, rec)
	return rec, nil
}

func (s *Store) applyUpdateDaemonState(turn int, attr change.AttributeKey, newValue statevalue.StateValue, payload change.Payload) (change.StateChange, error) {
	d, ok := s.daemons[attr.DaemonID]
	if !ok {
		return change.StateChange{}, fmt.Errorf("worldstore: daemon %q: %w", attr.DaemonID, cerrs.ErrNotFound)
	}
	old := statevalue.Int(d.ExecutionCount)
	d.ExecutionCount = newValue.IntVal
	d.LastExecutionTurn = turn
	if !payload.IsZero() {
		d.Payload = payload
	}
	s.daemons[attr.DaemonID] = d
	rec := change.StateChange{
		Turn: turn, Target: ids.DaemonEntity(attr.DaemonID), Attribute: attr,
		OldValue: old, HasOldValue: true, NewValue: newValue, Payload: d.Payload,
	}
	s.changeLog = append(s.changeLog, rec)
	return rec, nil
}

func (s *Store) applyRemoveActiveDaemon(turn int, attr change.AttributeKey) (change.StateChange, error) {
	d, ok := s.daemons[attr.DaemonID]
	if !ok {
		return change.StateChange{}, fmt.Errorf("worldstore: daemon %q: %w", attr.DaemonID, cerrs.ErrNotFound)
	}
	delete(s.daemons, attr.DaemonID)
	s.daemonOrder = removeDaemonID(s.daemonOrder, attr.DaemonID)
	rec := change.StateChange{
		Turn: turn, Target: ids.DaemonEntity(attr.DaemonID), Attribute: attr,
		OldValue: statevalue.Int(d.ExecutionCount), HasOldValue: true, Payload: d.Payload,
	}
	s.changeLog = append(s.changeLog, rec)
	return rec, nil
}
