// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"github.com/gnusto-if/gnusto/internal/actions"
	"github.com/gnusto-if/gnusto/internal/blueprint"
	"github.com/gnusto-if/gnusto/internal/change"
	"github.com/gnusto-if/gnusto/internal/dispatch"
	"github.com/gnusto-if/gnusto/internal/direction"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/statevalue"
	"github.com/gnusto-if/gnusto/internal/worldstore"
)

// ringHandler answers "ring bell" by starting a two-turn fuse, the
// one piece of demo content this package contributes beyond static
// items and locations (every built-in action is a registered
// internal/actions handler).
type ringHandler struct{ dispatch.BaseHandler }

func (ringHandler) SyntaxRules() []dispatch.SyntaxRule {
	return []dispatch.SyntaxRule{{Verb: ids.VerbID("ring")}}
}

func (ringHandler) Synonyms() []string { return nil }

func (ringHandler) Process(ctx *dispatch.ActionContext) (dispatch.ActionResult, error) {
	return dispatch.NewActionResult(
		"The bell gives a dull clang. Something stirs in the cellar.",
		nil,
		[]change.SideEffect{change.NewStartFuse(ids.FuseID("bellEcho"), 2, change.Payload{})},
	)
}

// newDemoBlueprint builds the two-room clearing-and-cellar game cmd/gnusto
// plays and validates: a lit clearing holding a lamp, a key, and a
// bell, with a locked chest down in a dark cellar that the lamp is
// needed to search and the key is needed to open.
func newDemoBlueprint() *blueprint.Blueprint {
	cfg := blueprint.Default()
	cfg.Title = "Gnusto: The Clearing and the Cellar"
	cfg.Release = "demo-1"
	cfg.Introduction = "A ring of standing stones marks a clearing in the woods. A narrow stair leads down."
	cfg.StartLocation = "clearing"

	bp := blueprint.New(cfg)

	bp.Locations = []worldstore.LocationStatic{
		{
			ID:          ids.LocationID("clearing"),
			Name:        "The Clearing",
			Description: "Tall stones ring a patch of flattened grass. A stair cut into the earth leads down to the north.",
			Flags:       map[ids.FlagID]bool{ids.FlagInherentlyLit: true, ids.FlagOutdoors: true},
			Exits: map[direction.Direction_e]statevalue.Exit{
				direction.North: statevalue.OpenExit(ids.LocationID("cellar")),
			},
		},
		{
			ID:          ids.LocationID("cellar"),
			Name:        "The Cellar",
			Description: "A low, earthen room. Whatever is down here, you'll need your own light to find it.",
			Exits: map[direction.Direction_e]statevalue.Exit{
				direction.South: statevalue.OpenExit(ids.LocationID("clearing")),
			},
		},
	}

	bp.Items = []worldstore.ItemStatic{
		{
			ID:     ids.ItemID("lamp"),
			Name:   "brass lantern",
			Parent: ids.LocationRef(ids.LocationID("clearing")),
			Size:   1,
			Flags:  map[ids.FlagID]bool{ids.FlagTakable: true, ids.FlagLightSource: true},
		},
		{
			ID:     ids.ItemID("key"),
			Name:   "iron key",
			Parent: ids.LocationRef(ids.LocationID("clearing")),
			Size:   1,
			Flags:  map[ids.FlagID]bool{ids.FlagTakable: true},
		},
		{
			ID:     ids.ItemID("bell"),
			Name:   "small bell",
			Parent: ids.LocationRef(ids.LocationID("clearing")),
			Size:   1,
		},
		{
			ID:          ids.ItemID("chest"),
			Name:        "iron-bound chest",
			Description: "A heavy chest, bound in iron straps.",
			Parent:      ids.LocationRef(ids.LocationID("cellar")),
			Size:        10,
			Capacity:    10,
			Flags:       map[ids.FlagID]bool{ids.FlagContainer: true, ids.FlagOpenable: true, ids.FlagLocked: true},
			Properties:  map[ids.AttributeID]statevalue.StateValue{actions.LockKeyAttribute: statevalue.ItemIDValue(ids.ItemID("key"))},
		},
		{
			ID:     ids.ItemID("treasure"),
			Name:   "bag of old coins",
			Parent: ids.ItemRef(ids.ItemID("chest")),
			Size:   1,
			Flags:  map[ids.FlagID]bool{ids.FlagTakable: true},
		},
	}

	bp.RegisterHandler(actions.LookHandler{})
	bp.RegisterHandler(actions.ExamineHandler{})
	bp.RegisterHandler(actions.MovementHandler{})
	bp.RegisterHandler(actions.TakeHandler{})
	bp.RegisterHandler(actions.DropHandler{})
	bp.RegisterHandler(actions.PutHandler{})
	bp.RegisterHandler(actions.OpenHandler{})
	bp.RegisterHandler(actions.CloseHandler{})
	bp.RegisterHandler(actions.LockHandler{})
	bp.RegisterHandler(actions.UnlockHandler{})
	bp.RegisterHandler(actions.WearHandler{})
	bp.RegisterHandler(actions.RemoveHandler{})
	bp.RegisterHandler(actions.TurnOnHandler{})
	bp.RegisterHandler(actions.TurnOffHandler{})
	bp.RegisterHandler(actions.InventoryHandler{})
	bp.RegisterHandler(actions.ScoreHandler{})
	bp.RegisterHandler(actions.WaitHandler{})
	bp.RegisterHandler(actions.QuitHandler{})
	bp.RegisterHandler(actions.SaveHandler{})
	bp.RegisterHandler(actions.RestoreHandler{})
	bp.RegisterHandler(actions.RestartHandler{})
	bp.RegisterHandler(ringHandler{})

	bp.RegisterFuse(ids.FuseID("bellEcho"), func(view dispatch.EngineView, id ids.FuseID, state worldstore.FuseState) (*dispatch.ActionResult, error) {
		result, err := dispatch.NewActionResult("The echo fades. The cellar falls silent again.", nil, nil)
		return &result, err
	})

	return bp
}
