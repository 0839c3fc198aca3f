// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package hooks

import (
	"github.com/gnusto-if/gnusto/internal/dispatch"
	"github.com/gnusto-if/gnusto/internal/ids"
)

// HookFunc is one before- or after-hook. It returns (nil, nil) to
// mean "did not handle, continue"; (&dispatch.Yielded, nil) to
// explicitly defer to default handling (equivalent to nil for
// control flow, but distinguishable in logs); or a populated
// *dispatch.ActionResult to replace or augment the default.
type HookFunc func(ctx *dispatch.ActionContext) (*dispatch.ActionResult, error)

// Filter restricts a hook to a subset of verbs ("command intent").
// An empty Verbs list matches every verb.
type Filter struct {
	Verbs []ids.VerbID
}

// Matches reports whether verb satisfies the filter.
func (f Filter) Matches(verb ids.VerbID) bool {
	if len(f.Verbs) == 0 {
		return true
	}
	for _, v := range f.Verbs {
		if v == verb {
			return true
		}
	}
	return false
}

type registration struct {
	filter Filter
	fn     HookFunc
}

// Registry holds before- and after-hooks keyed by entity id, each in
// registration order.
type Registry struct {
	before map[ids.EntityID][]registration
	after  map[ids.EntityID][]registration
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		before: make(map[ids.EntityID][]registration),
		after:  make(map[ids.EntityID][]registration),
	}
}

// RegisterBefore attaches fn as a before-hook on entity, run only for
// commands matching filter.
func (r *Registry) RegisterBefore(entity ids.EntityID, filter Filter, fn HookFunc) {
	r.before[entity] = append(r.before[entity], registration{filter: filter, fn: fn})
}

// RegisterAfter attaches fn as an after-hook on entity.
func (r *Registry) RegisterAfter(entity ids.EntityID, filter Filter, fn HookFunc) {
	r.after[entity] = append(r.after[entity], registration{filter: filter, fn: fn})
}

// HasHandler reports whether entity has any before- or after-hook
// registered at all. The turn pipeline does not consult it: it hands
// every in-scope entity to RunBefore/RunAfter, which skip entities
// with nothing registered.
func (r *Registry) HasHandler(entity ids.EntityID) bool {
	return len(r.before[entity]) > 0 || len(r.after[entity]) > 0
}

// RunBefore invokes the before-hooks on each entity, in the given
// order, stopping at the first hook that returns a non-yield,
// non-nil result (spec.md §4.7): that result short-circuits the
// default handler entirely.
func (r *Registry) RunBefore(ctx *dispatch.ActionContext, entities []ids.EntityID) (*dispatch.ActionResult, error) {
	for _, e := range entities {
		for _, reg := range r.before[e] {
			if !reg.filter.Matches(ctx.Command.Verb) {
				continue
			}
			res, err := reg.fn(ctx)
			if err != nil {
				return nil, err
			}
			if res == nil || res.Yield {
				continue
			}
			return res, nil
		}
	}
	return nil, nil
}

// RunAfter invokes every after-hook on each entity, in the given
// order. Unlike before-hooks, after-hooks never short-circuit — they
// always run once the default handler (or a short-circuiting
// before-hook) has completed — and every non-yield result they
// produce is collected.
func (r *Registry) RunAfter(ctx *dispatch.ActionContext, entities []ids.EntityID) ([]dispatch.ActionResult, error) {
	var results []dispatch.ActionResult
	for _, e := range entities {
		for _, reg := range r.after[e] {
			if !reg.filter.Matches(ctx.Command.Verb) {
				continue
			}
			res, err := reg.fn(ctx)
			if err != nil {
				return results, err
			}
			if res != nil && !res.Yield {
				results = append(results, *res)
			}
		}
	}
	return results, nil
}
