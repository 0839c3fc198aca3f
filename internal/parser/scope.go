// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parser

import (
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/proxy"
)

// Scope is the set of items a noun phrase may bind to: the player's
// inventory, the current location's contents, and the contents of any
// open container reachable from those, transitively (spec.md §4.5
// step 4). Universals are not part of Scope since they are not
// backed by an item; the parser consults vocabulary.Universal for
// those directly.
type Scope struct {
	items map[ids.ItemID]bool
	order []ids.ItemID
}

// BuildScope walks the resolver's current world state and returns the
// items currently in scope for the player.
func BuildScope(r *proxy.Resolver) Scope {
	s := Scope{items: make(map[ids.ItemID]bool)}
	for _, id := range r.Player().Inventory() {
		s.add(r, id)
	}
	loc := r.Player().Location()
	for _, id := range r.Location(loc).Contents() {
		s.add(r, id)
	}
	return s
}

func (s *Scope) add(r *proxy.Resolver, id ids.ItemID) {
	if s.items[id] {
		return
	}
	s.items[id] = true
	s.order = append(s.order, id)
	item := r.Item(id)
	if item.HasFlag(ids.FlagContainer) && item.HasFlag(ids.FlagOpen) {
		for _, child := range item.Contents() {
			s.add(r, child)
		}
	}
}

// Has reports whether id is currently in scope.
func (s Scope) Has(id ids.ItemID) bool { return s.items[id] }

// Items returns every in-scope item id, in discovery order
// (inventory first, then location contents, each depth-first through
// open containers).
func (s Scope) Items() []ids.ItemID { return s.order }
