// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package worldstore

import (
	"github.com/gnusto-if/gnusto/internal/change"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/statevalue"
)

// Snapshot is a deep, self-contained copy of a Store's mutable state.
// Static item/location definitions are never copied — a restored store
// still shares them with the store it was exported from, since they
// are immutable for the life of a blueprint.
type Snapshot struct {
	Overlay   []OverlayEntry
	Children  []ChildrenEntry
	Player    PlayerSnapshot
	Globals     map[ids.GlobalID]statevalue.StateValue
	Fuses       map[ids.FuseID]FuseState
	FuseOrder   []ids.FuseID
	Daemons     map[ids.DaemonID]DaemonState
	DaemonOrder []ids.DaemonID
	ChangeLog   []change.StateChange
}

// OverlayEntry is one (entity, attribute) -> value overlay slot.
type OverlayEntry struct {
	Entity ids.EntityID
	Attr   change.AttributeKey
	Value  statevalue.StateValue
}

// ChildrenEntry is one parent's ordered list of children.
type ChildrenEntry struct {
	Parent ids.ParentRef
	Items  []ids.ItemID
}

// PlayerSnapshot is the player's mutable state.
type PlayerSnapshot struct {
	Location       ids.LocationID
	Score          int
	Moves          int
	InventoryLimit int
	Health         int
	HasHealth      bool
	Pronouns       map[ids.Pronoun]statevalue.StateValue
}

// Snapshot exports a deep copy of the store's mutable state. Static
// definitions are left behind; Restore must be called against a Store
// built from the same (or a compatible) set of statics.
func (s *Store) Snapshot() Snapshot {
	overlay := make([]OverlayEntry, 0, len(s.overlay))
	for k, v := range s.overlay {
		overlay = append(overlay, OverlayEntry{Entity: k.Entity, Attr: k.Attr, Value: v})
	}

	children := make([]ChildrenEntry, 0, len(s.children))
	for parent, items := range s.children {
		cp := make([]ids.ItemID, len(items))
		copy(cp, items)
		children = append(children, ChildrenEntry{Parent: parent, Items: cp})
	}

	globals := make(map[ids.GlobalID]statevalue.StateValue, len(s.globals))
	for k, v := range s.globals {
		globals[k] = v
	}

	fuses := make(map[ids.FuseID]FuseState, len(s.fuses))
	for k, v := range s.fuses {
		fuses[k] = v
	}

	daemons := make(map[ids.DaemonID]DaemonState, len(s.daemons))
	for k, v := range s.daemons {
		daemons[k] = v
	}

	pronouns := make(map[ids.Pronoun]statevalue.StateValue, len(s.player.pronouns))
	for k, v := range s.player.pronouns {
		pronouns[k] = v
	}

	changeLog := make([]change.StateChange, len(s.changeLog))
	copy(changeLog, s.changeLog)

	fuseOrder := make([]ids.FuseID, len(s.fuseOrder))
	copy(fuseOrder, s.fuseOrder)
	daemonOrder := make([]ids.DaemonID, len(s.daemonOrder))
	copy(daemonOrder, s.daemonOrder)

	return Snapshot{
		Overlay:  overlay,
		Children: children,
		Player: PlayerSnapshot{
			Location:       s.player.location,
			Score:          s.player.score,
			Moves:          s.player.moves,
			InventoryLimit: s.player.inventoryLimit,
			Health:         s.player.health,
			HasHealth:      s.player.hasHealth,
			Pronouns:       pronouns,
		},
		Globals:     globals,
		Fuses:       fuses,
		FuseOrder:   fuseOrder,
		Daemons:     daemons,
		DaemonOrder: daemonOrder,
		ChangeLog:   changeLog,
	}
}

// Restore replaces the store's entire mutable state with a deep copy
// of snap. Static definitions are untouched. After Restore, every
// public query must be indistinguishable from a store that had
// actually lived through the history snap was taken from (spec.md §8
// property 10).
func (s *Store) Restore(snap Snapshot) {
	s.overlay = make(map[overlayKey]statevalue.StateValue, len(snap.Overlay))
	for _, e := range snap.Overlay {
		s.overlay[overlayKey{Entity: e.Entity, Attr: e.Attr}] = e.Value
	}

	s.children = make(map[ids.ParentRef][]ids.ItemID, len(snap.Children))
	for _, e := range snap.Children {
		cp := make([]ids.ItemID, len(e.Items))
		copy(cp, e.Items)
		s.children[e.Parent] = cp
	}

	s.globals = make(map[ids.GlobalID]statevalue.StateValue, len(snap.Globals))
	for k, v := range snap.Globals {
		s.globals[k] = v
	}

	s.fuses = make(map[ids.FuseID]FuseState, len(snap.Fuses))
	for k, v := range snap.Fuses {
		s.fuses[k] = v
	}

	s.daemons = make(map[ids.DaemonID]DaemonState, len(snap.Daemons))
	for k, v := range snap.Daemons {
		s.daemons[k] = v
	}

	s.fuseOrder = make([]ids.FuseID, len(snap.FuseOrder))
	copy(s.fuseOrder, snap.FuseOrder)
	s.daemonOrder = make([]ids.DaemonID, len(snap.DaemonOrder))
	copy(s.daemonOrder, snap.DaemonOrder)

	pronouns := make(map[ids.Pronoun]statevalue.StateValue, len(snap.Player.Pronouns))
	for k, v := range snap.Player.Pronouns {
		pronouns[k] = v
	}
	s.player = playerState{
		location:       snap.Player.Location,
		score:          snap.Player.Score,
		moves:          snap.Player.Moves,
		inventoryLimit: snap.Player.InventoryLimit,
		health:         snap.Player.Health,
		hasHealth:      snap.Player.HasHealth,
		pronouns:       pronouns,
	}

	s.changeLog = make([]change.StateChange, len(snap.ChangeLog))
	copy(s.changeLog, snap.ChangeLog)
}
