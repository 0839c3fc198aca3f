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

// RemoveHandler takes off a worn item.
type RemoveHandler struct{ dispatch.BaseHandler }

func (RemoveHandler) SyntaxRules() []dispatch.SyntaxRule {
	return []dispatch.SyntaxRule{{Verb: ids.VerbID("remove"), RequireDirectObject: true}}
}

func (RemoveHandler) Synonyms() []string { return []string{"doff"} }

func (RemoveHandler) RequiresLight() bool { return true }

func (RemoveHandler) Validate(ctx *dispatch.ActionContext) error {
	item, ok := firstItem(ctx.Command.DirectObjects)
	if !ok {
		return dispatch.NewResponse(dispatch.ItemNotAccessible)
	}
	ip := ctx.Engine.Resolver().Item(item)
	if !ip.HasFlag(ids.FlagWorn) {
		return dispatch.NewItemResponse(dispatch.NotHeld, item)
	}
	return nil
}

func (RemoveHandler) Process(ctx *dispatch.ActionContext) (dispatch.ActionResult, error) {
	item, _ := firstItem(ctx.Command.DirectObjects)
	pc := worldstore.PendingChange{
		Target:    ids.ItemEntity(item),
		Attribute: change.ClearFlag(ids.FlagWorn),
		NewValue:  statevalue.Bool(false),
	}
	return dispatch.NewActionResult(ctx.Text(messenger.Removed), []worldstore.PendingChange{pc}, nil)
}
