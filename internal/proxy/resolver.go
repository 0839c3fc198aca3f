// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package proxy

import (
	"github.com/gnusto-if/gnusto/internal/change"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/statevalue"
	"github.com/gnusto-if/gnusto/internal/worldstore"
)

// ComputeHandler is a pure function producing an attribute's value at
// read time from the current store snapshot. Compute handlers must
// not mutate the store; the resolver never gives them a way to.
type ComputeHandler func(store *worldstore.Store) statevalue.StateValue

type handlerKey struct {
	Entity ids.EntityID
	Attr   change.AttributeKey
}

// Resolver presents effective properties for every entity, merging
// registered compute handlers, the world store's overlay, and static
// definitions, in that precedence order (spec.md §4.2).
type Resolver struct {
	store    *worldstore.Store
	handlers map[handlerKey]ComputeHandler
}

// New builds a Resolver over store. Compute handlers are registered
// afterward via RegisterComputeHandler; an empty Resolver behaves
// exactly like reading the store directly.
func New(store *worldstore.Store) *Resolver {
	return &Resolver{store: store, handlers: make(map[handlerKey]ComputeHandler)}
}

// RegisterComputeHandler installs a compute handler for (entity,
// attr), taking precedence over any overlay or static value for that
// slot. Typically called at blueprint-build time, but the registration
// API has no such restriction — a handler may be added mid-game by a
// side effect that wants to make a property behave dynamically from
// here on.
func (r *Resolver) RegisterComputeHandler(entity ids.EntityID, attr change.AttributeKey, fn ComputeHandler) {
	r.handlers[handlerKey{Entity: entity, Attr: attr}] = fn
}

// Get resolves the effective value of (entity, attr): compute handler
// first, then overlay, then static, then absent.
func (r *Resolver) Get(entity ids.EntityID, attr change.AttributeKey) statevalue.StateValue {
	if fn, ok := r.handlers[handlerKey{Entity: entity, Attr: attr}]; ok {
		return fn(r.store)
	}
	v, _, err := r.store.Effective(entity, attr)
	if err != nil {
		return statevalue.StateValue{}
	}
	return v
}

// Flag resolves a single boolean flag on an item or location.
func (r *Resolver) Flag(entity ids.EntityID, flag ids.FlagID) bool {
	return r.Get(entity, change.SetFlag(flag)).BoolVal
}

// Store exposes the underlying store for callers (e.g. action
// handlers) that need direct read access beyond what the resolver's
// rollups cover. It never exposes a mutation path; all writes still
// go through worldstore.Store.Apply.
func (r *Resolver) Store() *worldstore.Store { return r.store }
