// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package worldstore

import (
	"fmt"

	"github.com/gnusto-if/gnusto/cerrs"
	"github.com/gnusto-if/gnusto/internal/change"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/statevalue"
)

// overlayKey scopes an overlay entry to one entity and one attribute.
type overlayKey struct {
	Entity ids.EntityID
	Attr   change.AttributeKey
}

// Store is the authoritative, indexed storage of a running game's
// mutable state. It is constructed once from a set of static
// item/location definitions and a player seed; everything else grows
// through Apply/ApplyAll.
type Store struct {
	items     map[ids.ItemID]ItemStatic
	locations map[ids.LocationID]LocationStatic

	overlay  map[overlayKey]statevalue.StateValue
	children map[ids.ParentRef][]ids.ItemID

	player  playerState
	globals map[ids.GlobalID]statevalue.StateValue

	fuses      map[ids.FuseID]FuseState
	fuseOrder  []ids.FuseID
	daemons    map[ids.DaemonID]DaemonState
	daemonOrder []ids.DaemonID

	changeLog []change.StateChange

	validators         map[entityAttrKey]Validator
	attributeFallbacks map[change.AttributeKind_e]Validator
}

type entityAttrKey struct {
	Entity ids.EntityID
	Attr   change.AttributeKey
}

// Validator inspects a proposed mutation before it is applied. It
// receives the current effective value and the proposed new value and
// returns a non-nil error (wrapping cerrs.ErrValidatorRejected, or any
// caller-defined "prerequisite not met" error whose message the
// messenger surfaces) to reject the change.
type Validator func(current, proposed statevalue.StateValue) error

// New constructs a Store from static definitions. Items and locations
// are indexed by id; the parent→children reverse index is built from
// each item's initial parent so ChildrenOf is correct before any
// change is ever applied.
func New(items []ItemStatic, locations []LocationStatic, player PlayerInit) *Store {
	s := &Store{
		items:     make(map[ids.ItemID]ItemStatic, len(items)),
		locations: make(map[ids.LocationID]LocationStatic, len(locations)),

		overlay:  make(map[overlayKey]statevalue.StateValue),
		children: make(map[ids.ParentRef][]ids.ItemID),

		player: playerState{
			location:       player.Location,
			score:          player.Score,
			moves:          player.Moves,
			inventoryLimit: player.InventoryLimit,
			health:         player.Health,
			hasHealth:      player.HasHealth,
			pronouns:       make(map[ids.Pronoun]statevalue.StateValue),
		},
		globals: make(map[ids.GlobalID]statevalue.StateValue),
		fuses:   make(map[ids.FuseID]FuseState),
		daemons: make(map[ids.DaemonID]DaemonState),

		validators:         make(map[entityAttrKey]Validator),
		attributeFallbacks: make(map[change.AttributeKind_e]Validator),
	}
	for _, it := range items {
		s.items[it.ID] = it
		s.children[it.Parent] = append(s.children[it.Parent], it.ID)
	}
	for _, loc := range locations {
		s.locations[loc.ID] = loc
	}
	return s
}

// GetItemStatic returns an item's immutable definition.
func (s *Store) GetItemStatic(id ids.ItemID) (ItemStatic, error) {
	it, ok := s.items[id]
	if !ok {
		return ItemStatic{}, fmt.Errorf("worldstore: item %q: %w", id, cerrs.ErrNotFound)
	}
	return it, nil
}

// GetLocationStatic returns a location's immutable definition.
func (s *Store) GetLocationStatic(id ids.LocationID) (LocationStatic, error) {
	loc, ok := s.locations[id]
	if !ok {
		return LocationStatic{}, fmt.Errorf("worldstore: location %q: %w", id, cerrs.ErrNotFound)
	}
	return loc, nil
}

// HasItem reports whether id names a known item.
func (s *Store) HasItem(id ids.ItemID) bool {
	_, ok := s.items[id]
	return ok
}

// HasLocation reports whether id names a known location.
func (s *Store) HasLocation(id ids.LocationID) bool {
	_, ok := s.locations[id]
	return ok
}

// AllItemIDs returns every known item id; order is not significant.
func (s *Store) AllItemIDs() []ids.ItemID {
	out := make([]ids.ItemID, 0, len(s.items))
	for id := range s.items {
		out = append(out, id)
	}
	return out
}

// AllLocationIDs returns every known location id; order is not
// significant.
func (s *Store) AllLocationIDs() []ids.LocationID {
	out := make([]ids.LocationID, 0, len(s.locations))
	for id := range s.locations {
		out = append(out, id)
	}
	return out
}

// GetOverlay returns the raw overlay entry for (entity, attr), if any.
// Most callers want the resolver's effective-value queries instead;
// this is exposed for the proxy/resolver package layered on top.
func (s *Store) GetOverlay(entity ids.EntityID, attr change.AttributeKey) (statevalue.StateValue, bool) {
	v, ok := s.overlay[overlayKey{Entity: entity, Attr: attr}]
	return v, ok
}

// setOverlay is package-private: only Apply may mutate the overlay.
func (s *Store) setOverlay(entity ids.EntityID, attr change.AttributeKey, v statevalue.StateValue) {
	s.overlay[overlayKey{Entity: entity, Attr: attr}] = v
}

// ChildrenOf returns the ids of items whose current parent is parent,
// in the order they were most recently established as children
// (stable for deterministic descriptions).
func (s *Store) ChildrenOf(parent ids.ParentRef) []ids.ItemID {
	kids := s.children[parent]
	out := make([]ids.ItemID, len(kids))
	copy(out, kids)
	return out
}

// ItemParent returns an item's current effective parent: the overlay
// override if one was ever applied, otherwise the static initial
// parent.
func (s *Store) ItemParent(id ids.ItemID) (ids.ParentRef, error) {
	it, err := s.GetItemStatic(id)
	if err != nil {
		return ids.ParentRef{}, err
	}
	if v, ok := s.GetOverlay(ids.ItemEntity(id), change.ItemParent()); ok {
		return v.ParentEntityVal, nil
	}
	return it.Parent, nil
}

// PlayerLocation returns the player's current location.
func (s *Store) PlayerLocation() ids.LocationID { return s.player.location }

// PlayerScore returns the player's current score.
func (s *Store) PlayerScore() int { return s.player.score }

// PlayerMoves returns the player's current move count.
func (s *Store) PlayerMoves() int { return s.player.moves }

// PlayerInventoryLimit returns the player's current carrying capacity.
func (s *Store) PlayerInventoryLimit() int { return s.player.inventoryLimit }

// PlayerHealth returns the player's current health and whether health
// tracking is enabled for this game.
func (s *Store) PlayerHealth() (int, bool) { return s.player.health, s.player.hasHealth }

// PronounBinding returns what a pronoun currently refers to, if it has
// ever been bound. Stale bindings (referring to an item no longer in
// scope) are returned as-is; callers must tolerate them per spec.
func (s *Store) PronounBinding(p ids.Pronoun) (statevalue.StateValue, bool) {
	v, ok := s.player.pronouns[p]
	return v, ok
}

// Global returns the current value of a global, or absent.
func (s *Store) Global(id ids.GlobalID) statevalue.StateValue {
	return s.globals[id]
}

// Fuse returns an active fuse's state, if it is currently scheduled.
func (s *Store) Fuse(id ids.FuseID) (FuseState, bool) {
	f, ok := s.fuses[id]
	return f, ok
}

// Daemon returns an active daemon's state, if it is currently running.
func (s *Store) Daemon(id ids.DaemonID) (DaemonState, bool) {
	d, ok := s.daemons[id]
	return d, ok
}

// ActiveFuseIDs returns the ids of all currently scheduled fuses, in
// the order they were started — the time system ticks them in this
// order (spec.md §4.8: "order of processing is stable, insertion
// order").
func (s *Store) ActiveFuseIDs() []ids.FuseID {
	out := make([]ids.FuseID, len(s.fuseOrder))
	copy(out, s.fuseOrder)
	return out
}

// ActiveDaemonIDs returns the ids of all currently running daemons,
// in the order they were started.
func (s *Store) ActiveDaemonIDs() []ids.DaemonID {
	out := make([]ids.DaemonID, len(s.daemonOrder))
	copy(out, s.daemonOrder)
	return out
}

// ChangeLog returns the full ordered, append-only log of applied
// changes.
func (s *Store) ChangeLog() []change.StateChange {
	out := make([]change.StateChange, len(s.changeLog))
	copy(out, s.changeLog)
	return out
}

// RegisterValidator installs a validator specific to one entity and
// attribute. It takes precedence over any attribute-only fallback.
func (s *Store) RegisterValidator(entity ids.EntityID, attr change.AttributeKey, fn Validator) {
	s.validators[entityAttrKey{Entity: entity, Attr: attr}] = fn
}

// RegisterAttributeValidator installs a fallback validator applied to
// every entity's mutations of the given attribute kind when no
// entity-specific validator is registered.
func (s *Store) RegisterAttributeValidator(kind change.AttributeKind_e, fn Validator) {
	s.attributeFallbacks[kind] = fn
}
