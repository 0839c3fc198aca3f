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

// LockKeyAttribute names the per-item property a blueprint sets on a
// lockable item to record which held item unlocks it. Its value is a
// statevalue.KindItemID pointing at the matching key.
const LockKeyAttribute = ids.AttributeID("lockKey")

func matchingKey(ctx *dispatch.ActionContext, lockable ids.ItemID) (ids.ItemID, bool) {
	static, err := ctx.Engine.Resolver().Store().GetItemStatic(lockable)
	if err != nil {
		return "", false
	}
	v, ok := static.Properties[LockKeyAttribute]
	if !ok || v.Kind != statevalue.KindItemID {
		return "", false
	}
	return v.ItemIDVal, true
}

// LockHandler locks an openable item with the key named as the
// indirect object ("lock chest with key").
type LockHandler struct{ dispatch.BaseHandler }

func (LockHandler) SyntaxRules() []dispatch.SyntaxRule {
	return []dispatch.SyntaxRule{{Verb: ids.VerbID("lock"), RequireDirectObject: true, RequireIndirectObject: true, Preposition: "with"}}
}

func (LockHandler) Synonyms() []string { return nil }

func (LockHandler) RequiresLight() bool { return true }

func (LockHandler) Validate(ctx *dispatch.ActionContext) error {
	item, key, ok := putTargets(ctx)
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
	if ip.HasFlag(ids.FlagOpen) {
		return dispatch.NewPrerequisiteNotMet("You'll need to close it first.")
	}
	if ip.HasFlag(ids.FlagLocked) {
		return dispatch.NewItemResponse(dispatch.Locked, item)
	}
	if r.Item(key).Parent().Kind != ids.ParentPlayer {
		return dispatch.NewItemResponse(dispatch.NotHeld, key)
	}
	want, ok := matchingKey(ctx, item)
	if !ok || want != key {
		return dispatch.NewItemResponse(dispatch.WrongKey, item)
	}
	return nil
}

func (LockHandler) Process(ctx *dispatch.ActionContext) (dispatch.ActionResult, error) {
	item, _, _ := putTargets(ctx)
	pc := worldstore.PendingChange{
		Target:    ids.ItemEntity(item),
		Attribute: change.SetFlag(ids.FlagLocked),
		NewValue:  statevalue.Bool(true),
	}
	return dispatch.NewActionResult(ctx.Text(messenger.Locked), []worldstore.PendingChange{pc}, nil)
}

// UnlockHandler unlocks an item with the key named as the indirect
// object ("unlock chest with key").
type UnlockHandler struct{ dispatch.BaseHandler }

func (UnlockHandler) SyntaxRules() []dispatch.SyntaxRule {
	return []dispatch.SyntaxRule{{Verb: ids.VerbID("unlock"), RequireDirectObject: true, RequireIndirectObject: true, Preposition: "with"}}
}

func (UnlockHandler) Synonyms() []string { return nil }

func (UnlockHandler) RequiresLight() bool { return true }

func (UnlockHandler) Validate(ctx *dispatch.ActionContext) error {
	item, key, ok := putTargets(ctx)
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
	if !ip.HasFlag(ids.FlagLocked) {
		return dispatch.NewPrerequisiteNotMet("It's already unlocked.")
	}
	if r.Item(key).Parent().Kind != ids.ParentPlayer {
		return dispatch.NewItemResponse(dispatch.NotHeld, key)
	}
	want, ok := matchingKey(ctx, item)
	if !ok || want != key {
		return dispatch.NewItemResponse(dispatch.WrongKey, item)
	}
	return nil
}

func (UnlockHandler) Process(ctx *dispatch.ActionContext) (dispatch.ActionResult, error) {
	item, _, _ := putTargets(ctx)
	pc := worldstore.PendingChange{
		Target:    ids.ItemEntity(item),
		Attribute: change.ClearFlag(ids.FlagLocked),
		NewValue:  statevalue.Bool(false),
	}
	return dispatch.NewActionResult(ctx.Text(messenger.Unlocked), []worldstore.PendingChange{pc}, nil)
}
