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

// WearHandler puts on a held wearable item.
type WearHandler struct{ dispatch.BaseHandler }

func (WearHandler) SyntaxRules() []dispatch.SyntaxRule {
	return []dispatch.SyntaxRule{{Verb: ids.VerbID("wear"), RequireDirectObject: true}}
}

func (WearHandler) Synonyms() []string { return []string{"don"} }

func (WearHandler) RequiresLight() bool { return true }

func (WearHandler) Validate(ctx *dispatch.ActionContext) error {
	item, ok := firstItem(ctx.Command.DirectObjects)
	if !ok {
		return dispatch.NewResponse(dispatch.ItemNotAccessible)
	}
	ip := ctx.Engine.Resolver().Item(item)
	if ip.Parent().Kind != ids.ParentPlayer {
		return dispatch.NewItemResponse(dispatch.NotHeld, item)
	}
	if !ip.HasFlag(ids.FlagWearable) {
		return dispatch.NewItemResponse(dispatch.NotWearable, item)
	}
	if ip.HasFlag(ids.FlagWorn) {
		return dispatch.NewPrerequisiteNotMet("You're already wearing that.")
	}
	return nil
}

func (WearHandler) Process(ctx *dispatch.ActionContext) (dispatch.ActionResult, error) {
	item, _ := firstItem(ctx.Command.DirectObjects)
	pc := worldstore.PendingChange{
		Target:    ids.ItemEntity(item),
		Attribute: change.SetFlag(ids.FlagWorn),
		NewValue:  statevalue.Bool(true),
	}
	return dispatch.NewActionResult(ctx.Text(messenger.Worn), []worldstore.PendingChange{pc}, nil)
}
