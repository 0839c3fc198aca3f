// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package proxy

import (
	"github.com/gnusto-if/gnusto/internal/change"
	"github.com/gnusto-if/gnusto/internal/direction"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/statevalue"
)

// IsLit reports whether loc is lit: inherently lit, or any item in the
// location (recursing through containers that are open or transparent,
// and through worn items) is a lit light source, or the player (while
// standing in loc) carries one.
func (r *Resolver) IsLit(loc ids.LocationID) bool {
	if r.Flag(ids.LocationEntity(loc), ids.FlagInherentlyLit) {
		return true
	}
	if r.anyLitLightSource(ids.LocationRef(loc)) {
		return true
	}
	if r.store.PlayerLocation() == loc && r.anyLitLightSource(ids.PlayerRef()) {
		return true
	}
	return false
}

func (r *Resolver) anyLitLightSource(parent ids.ParentRef) bool {
	for _, itemID := range r.store.ChildrenOf(parent) {
		entity := ids.ItemEntity(itemID)
		if r.Flag(entity, ids.FlagLightSource) && r.Flag(entity, ids.FlagLit) {
			return true
		}
		if r.Flag(entity, ids.FlagContainer) &&
			(r.Flag(entity, ids.FlagOpen) || r.Flag(entity, ids.FlagTransparent) || r.Flag(entity, ids.FlagWorn)) {
			if r.anyLitLightSource(ids.ItemRef(itemID)) {
				return true
			}
		}
	}
	return false
}

// IsVisible reports whether item can be seen: every container ancestor
// between it and its terminating location/player is open or
// transparent, and that location is lit.
func (r *Resolver) IsVisible(item ids.ItemID) bool {
	parent, err := r.store.ItemParent(item)
	if err != nil {
		return false
	}
	for {
		switch parent.Kind {
		case ids.ParentPlayer:
			return r.IsLit(r.store.PlayerLocation())
		case ids.ParentLocation:
			return r.IsLit(parent.Location)
		case ids.ParentItem:
			ancestor := ids.ItemEntity(parent.Item)
			if !(r.Flag(ancestor, ids.FlagOpen) || r.Flag(ancestor, ids.FlagTransparent)) {
				return false
			}
			next, err := r.store.ItemParent(parent.Item)
			if err != nil {
				return false
			}
			parent = next
		default:
			return false
		}
	}
}

// IsReachable reports whether item is visible and every container
// ancestor is actually open — a closed transparent display case lets
// you see an item without letting you touch it.
func (r *Resolver) IsReachable(item ids.ItemID) bool {
	if !r.IsVisible(item) {
		return false
	}
	parent, err := r.store.ItemParent(item)
	if err != nil {
		return false
	}
	for {
		switch parent.Kind {
		case ids.ParentPlayer, ids.ParentLocation:
			return true
		case ids.ParentItem:
			if !r.Flag(ids.ItemEntity(parent.Item), ids.FlagOpen) {
				return false
			}
			next, err := r.store.ItemParent(parent.Item)
			if err != nil {
				return false
			}
			parent = next
		default:
			return false
		}
	}
}

// IsProvidingLight reports whether item is a lit light source that is
// currently visible (a lit lamp sealed in an opaque box provides no
// light to the room).
func (r *Resolver) IsProvidingLight(item ids.ItemID) bool {
	entity := ids.ItemEntity(item)
	return r.Flag(entity, ids.FlagLightSource) && r.Flag(entity, ids.FlagLit) && r.IsVisible(item)
}

// CurrentLoad returns the sum of the sizes of container's direct
// children. The engine counts direct children only (see the
// current_load Open Question resolution). Size is read through
// Effective rather than the static table directly, since AttrItemSize
// is a mutable AttributeKey (spec.md §3) that a handler may overlay.
func (r *Resolver) CurrentLoad(container ids.ItemID) int {
	total := 0
	for _, childID := range r.store.ChildrenOf(ids.ItemRef(container)) {
		if v, _, err := r.store.Effective(ids.ItemEntity(childID), change.ItemSize()); err == nil {
			total += v.IntVal
		}
	}
	return total
}

// Contents returns the ids of entities whose parent is parent, in
// stable insertion order.
func (r *Resolver) Contents(parent ids.ParentRef) []ids.ItemID {
	return r.store.ChildrenOf(parent)
}

// ExitEntry pairs a direction with the exit it leads through, so
// Exits can return a stably-ordered slice instead of a map.
type ExitEntry struct {
	Direction direction.Direction_e
	Exit      statevalue.Exit
}

// Exits returns loc's exits ordered by the canonical direction order
// (spec.md §3 Location.exits is "an ordered mapping").
func (r *Resolver) Exits(loc ids.LocationID) []ExitEntry {
	v, _, err := r.store.Effective(ids.LocationEntity(loc), change.LocationExits())
	if err != nil {
		return nil
	}
	var out []ExitEntry
	for _, d := range direction.Directions {
		if e, ok := v.LocationExitsVal[d]; ok {
			out = append(out, ExitEntry{Direction: d, Exit: e})
		}
	}
	return out
}
