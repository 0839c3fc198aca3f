// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package actions

import (
	"github.com/gnusto-if/gnusto/internal/change"
	"github.com/gnusto-if/gnusto/internal/dispatch"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/messenger"
	"github.com/gnusto-if/gnusto/internal/statevalue"
	"github.com/gnusto-if/gnusto/internal/worldstore"
)

// PutHandler moves an item into an open container named as the
// indirect object ("put lamp in chest").
type PutHandler struct{ dispatch.BaseHandler }

func (PutHandler) SyntaxRules() []dispatch.SyntaxRule {
	return []dispatch.SyntaxRule{
		{Verb: ids.VerbID("put"), RequireDirectObject: true, RequireIndirectObject: true, Preposition: "in"},
		{Verb: ids.VerbID("put"), RequireDirectObject: true, RequireIndirectObject: true, Preposition: "on"},
	}
}

func (PutHandler) Synonyms() []string { return []string{"insert"} }

func (PutHandler) RequiresLight() bool { return true }

func putTargets(ctx *dispatch.ActionContext) (ids.ItemID, ids.ItemID, bool) {
	item, ok := firstItem(ctx.Command.DirectObjects)
	if !ok {
		return "", "", false
	}
	container, ok := firstItem(ctx.Command.IndirectObjects)
	if !ok {
		return "", "", false
	}
	return item, container, true
}

func (PutHandler) Validate(ctx *dispatch.ActionContext) error {
	item, container, ok := putTargets(ctx)
	if !ok {
		return dispatch.NewResponse(dispatch.ItemNotAccessible)
	}
	r := ctx.Engine.Resolver()
	cp := r.Item(container)
	if !cp.IsReachable() {
		return dispatch.NewItemResponse(dispatch.ItemNotAccessible, container)
	}
	switch {
	case cp.HasFlag(ids.FlagSurface):
		// surfaces hold things without an open/closed state
	case cp.HasFlag(ids.FlagContainer):
		if !cp.HasFlag(ids.FlagOpen) {
			return dispatch.NewItemResponse(dispatch.ContainerClosed, container)
		}
	default:
		return dispatch.NewItemResponse(dispatch.ItemNotAccessible, container)
	}
	ip := r.Item(item)
	if !ip.IsReachable() {
		return dispatch.NewItemResponse(dispatch.ItemNotAccessible, item)
	}
	if capacity := cp.Capacity(); capacity > 0 && cp.CurrentLoad()+ip.Size() > capacity {
		return dispatch.NewItemResponse(dispatch.ContainerFull, container)
	}
	return nil
}

func (PutHandler) Process(ctx *dispatch.ActionContext) (dispatch.ActionResult, error) {
	item, container, _ := putTargets(ctx)
	pc := worldstore.PendingChange{
		Target:    ids.ItemEntity(item),
		Attribute: change.ItemParent(),
		NewValue:  statevalue.ParentEntity(ids.ItemRef(container)),
	}
	return dispatch.NewActionResult(ctx.Text(messenger.Done), []worldstore.PendingChange{pc}, nil)
}
