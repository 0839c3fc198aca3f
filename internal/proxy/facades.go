// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package proxy

import (
	"github.com/gnusto-if/gnusto/internal/change"
	"github.com/gnusto-if/gnusto/internal/ids"
)

// ItemProxy is a thin, read-only facade over one item: an id plus a
// reference to the resolver. It never holds a mutable reference to
// the store (spec.md §9 design note on Proxy objects).
type ItemProxy struct {
	id ids.ItemID
	r  *Resolver
}

// Item returns a facade for id. It does not check that id exists;
// querying a nonexistent item's properties returns absent/zero
// values, same as any other unresolvable read.
func (r *Resolver) Item(id ids.ItemID) ItemProxy { return ItemProxy{id: id, r: r} }

func (p ItemProxy) ID() ids.ItemID { return p.id }

func (p ItemProxy) Name() string {
	return p.r.Get(ids.ItemEntity(p.id), change.ItemName()).StringVal
}

func (p ItemProxy) Description() string {
	return p.r.Get(ids.ItemEntity(p.id), change.ItemDescription()).StringVal
}

// Size and Capacity read AttrItemSize/AttrItemCapacity through Get
// rather than the static table directly: both are mutable
// AttributeKeys (spec.md §3), so a handler that overlays either must
// be reflected here.
func (p ItemProxy) Size() int     { return p.r.Get(ids.ItemEntity(p.id), change.ItemSize()).IntVal }
func (p ItemProxy) Capacity() int { return p.r.Get(ids.ItemEntity(p.id), change.ItemCapacity()).IntVal }

func (p ItemProxy) Parent() ids.ParentRef {
	parent, _ := p.r.Store().ItemParent(p.id)
	return parent
}

func (p ItemProxy) HasFlag(flag ids.FlagID) bool {
	return p.r.Flag(ids.ItemEntity(p.id), flag)
}

func (p ItemProxy) IsVisible() bool        { return p.r.IsVisible(p.id) }
func (p ItemProxy) IsReachable() bool      { return p.r.IsReachable(p.id) }
func (p ItemProxy) IsProvidingLight() bool { return p.r.IsProvidingLight(p.id) }
func (p ItemProxy) CurrentLoad() int       { return p.r.CurrentLoad(p.id) }

func (p ItemProxy) Contents() []ids.ItemID {
	return p.r.Contents(ids.ItemRef(p.id))
}

// LocationProxy is a thin, read-only facade over one location.
type LocationProxy struct {
	id ids.LocationID
	r  *Resolver
}

func (r *Resolver) Location(id ids.LocationID) LocationProxy { return LocationProxy{id: id, r: r} }

func (p LocationProxy) ID() ids.LocationID { return p.id }

func (p LocationProxy) Name() string {
	return p.r.Get(ids.LocationEntity(p.id), change.LocationName()).StringVal
}

func (p LocationProxy) Description() string {
	return p.r.Get(ids.LocationEntity(p.id), change.LocationDescription()).StringVal
}

func (p LocationProxy) HasFlag(flag ids.FlagID) bool {
	return p.r.Flag(ids.LocationEntity(p.id), flag)
}

func (p LocationProxy) IsLit() bool { return p.r.IsLit(p.id) }

func (p LocationProxy) Exits() []ExitEntry { return p.r.Exits(p.id) }

func (p LocationProxy) Contents() []ids.ItemID {
	return p.r.Contents(ids.LocationRef(p.id))
}

// PlayerProxy is a thin, read-only facade over the player singleton.
type PlayerProxy struct {
	r *Resolver
}

func (r *Resolver) Player() PlayerProxy { return PlayerProxy{r: r} }

func (p PlayerProxy) Location() ids.LocationID { return p.r.Store().PlayerLocation() }
func (p PlayerProxy) Score() int               { return p.r.Store().PlayerScore() }
func (p PlayerProxy) Moves() int               { return p.r.Store().PlayerMoves() }
func (p PlayerProxy) InventoryLimit() int      { return p.r.Store().PlayerInventoryLimit() }

func (p PlayerProxy) Health() (int, bool) { return p.r.Store().PlayerHealth() }

func (p PlayerProxy) Inventory() []ids.ItemID {
	return p.r.Contents(ids.PlayerRef())
}

func (p PlayerProxy) PronounBinding(pronoun ids.Pronoun) (ids.ItemID, bool) {
	v, ok := p.r.Store().PronounBinding(pronoun)
	if !ok {
		return "", false
	}
	return v.ItemIDVal, true
}
