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

// OpenHandler toggles a container or door-like item's open flag on.
type OpenHandler struct{ dispatch.BaseHandler }

func (OpenHandler) SyntaxRules() []dispatch.SyntaxRule {
	return []dispatch.SyntaxRule{{Verb: ids.VerbID("open"), RequireDirectObject: true}}
}

func (OpenHandler) Synonyms() []string { return nil }

func (OpenHandler) RequiresLight() bool { return true }

func (OpenHandler) Validate(ctx *dispatch.ActionContext) error {
	item, ok := firstItem(ctx.Command.DirectObjects)
	if !ok {
		return dispatch.NewResponse(dispatch.ItemNotAccessible)
	}
	r := ctx.Engine.Resolver()
	ip := r.Item(item)
	if !ip.IsReachable() {
		return dispatch.NewItemResponse(dispatch.ItemNotAccessible, item)
	}
	if !ip.HasFlag(ids.FlagOpenable) {
		return dispatch.NewItemResponse(dispatch.ItemNotOpenable, item)
	}
	if ip.HasFlag(ids.FlagLocked) {
		return dispatch.NewItemResponse(dispatch.Locked, item)
	}
	if ip.HasFlag(ids.FlagOpen) {
		return dispatch.NewItemResponse(dispatch.AlreadyOpen, item)
	}
	return nil
}

func (OpenHandler) Process(ctx *dispatch.ActionContext) (dispatch.ActionResult, error) {
	item, _ := firstItem(ctx.Command.DirectObjects)
	pc := worldstore.PendingChange{
		Target:    ids.ItemEntity(item),
		Attribute: change.SetFlag(ids.FlagOpen),
		NewValue:  statevalue.Bool(true),
	}
	return dispatch.NewActionResult(ctx.Text(messenger.Opened), []worldstore.PendingChange{pc}, nil)
}
