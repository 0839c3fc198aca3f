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

// CloseHandler toggles a container or door-like item's open flag off.
type CloseHandler struct{ dispatch.BaseHandler }

func (CloseHandler) SyntaxRules() []dispatch.SyntaxRule {
	return []dispatch.SyntaxRule{{Verb: ids.VerbID("close"), RequireDirectObject: true}}
}

func (CloseHandler) Synonyms() []string { return []string{"shut"} }

func (CloseHandler) RequiresLight() bool { return true }

func (CloseHandler) Validate(ctx *dispatch.ActionContext) error {
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
	if !ip.HasFlag(ids.FlagOpen) {
		return dispatch.NewItemResponse(dispatch.AlreadyClosed, item)
	}
	return nil
}

func (CloseHandler) Process(ctx *dispatch.ActionContext) (dispatch.ActionResult, error) {
	item, _ := firstItem(ctx.Command.DirectObjects)
	pc := worldstore.PendingChange{
		Target:    ids.ItemEntity(item),
		Attribute: change.ClearFlag(ids.FlagOpen),
		NewValue:  statevalue.Bool(false),
	}
	return dispatch.NewActionResult(ctx.Text(messenger.Closed), []worldstore.PendingChange{pc}, nil)
}
