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

// TurnOnHandler lights a light source (spec.md §8 scenario 5: "turn
// on lamp" in a dark room makes it lit).
type TurnOnHandler struct{ dispatch.BaseHandler }

func (TurnOnHandler) SyntaxRules() []dispatch.SyntaxRule {
	return []dispatch.SyntaxRule{{Verb: ids.VerbID("turn"), RequireDirectObject: true, Particle: "on"}}
}

func (TurnOnHandler) Synonyms() []string { return nil }

func (TurnOnHandler) Validate(ctx *dispatch.ActionContext) error {
	item, ok := firstItem(ctx.Command.DirectObjects)
	if !ok {
		return dispatch.NewResponse(dispatch.ItemNotAccessible)
	}
	ip := ctx.Engine.Resolver().Item(item)
	if !ip.IsReachable() {
		return dispatch.NewItemResponse(dispatch.ItemNotAccessible, item)
	}
	if !ip.HasFlag(ids.FlagLightSource) {
		return dispatch.NewPrerequisiteNotMet("You can't turn that on.")
	}
	if ip.HasFlag(ids.FlagLit) {
		return dispatch.NewPrerequisiteNotMet("It's already on.")
	}
	return nil
}

func (TurnOnHandler) Process(ctx *dispatch.ActionContext) (dispatch.ActionResult, error) {
	item, _ := firstItem(ctx.Command.DirectObjects)
	pc := worldstore.PendingChange{
		Target:    ids.ItemEntity(item),
		Attribute: change.SetFlag(ids.FlagLit),
		NewValue:  statevalue.Bool(true),
	}
	return dispatch.NewActionResult(ctx.Text(messenger.Done), []worldstore.PendingChange{pc}, nil)
}

// TurnOffHandler extinguishes a light source.
type TurnOffHandler struct{ dispatch.BaseHandler }

func (TurnOffHandler) SyntaxRules() []dispatch.SyntaxRule {
	return []dispatch.SyntaxRule{{Verb: ids.VerbID("turn"), RequireDirectObject: true, Particle: "off"}}
}

func (TurnOffHandler) Synonyms() []string { return nil }

func (TurnOffHandler) Validate(ctx *dispatch.ActionContext) error {
	item, ok := firstItem(ctx.Command.DirectObjects)
	if !ok {
		return dispatch.NewResponse(dispatch.ItemNotAccessible)
	}
	ip := ctx.Engine.Resolver().Item(item)
	if !ip.HasFlag(ids.FlagLightSource) {
		return dispatch.NewPrerequisiteNotMet("You can't turn that off.")
	}
	if !ip.HasFlag(ids.FlagLit) {
		return dispatch.NewPrerequisiteNotMet("It's already off.")
	}
	return nil
}

func (TurnOffHandler) Process(ctx *dispatch.ActionContext) (dispatch.ActionResult, error) {
	item, _ := firstItem(ctx.Command.DirectObjects)
	pc := worldstore.PendingChange{
		Target:    ids.ItemEntity(item),
		Attribute: change.ClearFlag(ids.FlagLit),
		NewValue:  statevalue.Bool(false),
	}
	return dispatch.NewActionResult(ctx.Text(messenger.Done), []worldstore.PendingChange{pc}, nil)
}
