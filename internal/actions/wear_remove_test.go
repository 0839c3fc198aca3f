// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package actions_test

import (
	"testing"

	"github.com/gnusto-if/gnusto/internal/actions"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/parser"
	"github.com/gnusto-if/gnusto/internal/worldstore"
)

func cloakStore(t *testing.T) *worldstore.Store {
	t.Helper()
	cloak := worldstore.ItemStatic{
		ID: ids.ItemID("cloak"), Name: "velvet cloak", Size: 1,
		Parent: ids.PlayerRef(),
		Flags:  map[ids.FlagID]bool{ids.FlagTakable: true, ids.FlagWearable: true},
	}
	room := worldstore.LocationStatic{ID: ids.LocationID("room"), Name: "A Room"}
	return worldstore.New(
		[]worldstore.ItemStatic{cloak},
		[]worldstore.LocationStatic{room},
		worldstore.PlayerInit{Location: ids.LocationID("room"), InventoryLimit: 100},
	)
}

func TestWearHeldWearableSucceeds(t *testing.T) {
	s := cloakStore(t)
	v := newView(s)
	cmd := parser.Command{Verb: ids.VerbID("wear"), DirectObjects: []parser.ObjectRef{parser.ItemRef(ids.ItemID("cloak"))}}
	applyResult(t, s, actions.WearHandler{}, actionCtx(v, cmd))

	if !v.Resolver().Item(ids.ItemID("cloak")).HasFlag(ids.FlagWorn) {
		t.Error("expected the cloak to be worn")
	}
}

func TestWearAlreadyWornFails(t *testing.T) {
	s := cloakStore(t)
	v := newView(s)
	cmd := parser.Command{Verb: ids.VerbID("wear"), DirectObjects: []parser.ObjectRef{parser.ItemRef(ids.ItemID("cloak"))}}
	applyResult(t, s, actions.WearHandler{}, actionCtx(v, cmd))

	h := actions.WearHandler{}
	if err := h.Validate(actionCtx(v, cmd)); err == nil {
		t.Fatal("expected Validate to refuse wearing an already-worn item")
	}
}

func TestRemoveWornCloakSucceeds(t *testing.T) {
	s := cloakStore(t)
	v := newView(s)
	wearCmd := parser.Command{Verb: ids.VerbID("wear"), DirectObjects: []parser.ObjectRef{parser.ItemRef(ids.ItemID("cloak"))}}
	applyResult(t, s, actions.WearHandler{}, actionCtx(v, wearCmd))

	removeCmd := parser.Command{Verb: ids.VerbID("remove"), DirectObjects: []parser.ObjectRef{parser.ItemRef(ids.ItemID("cloak"))}}
	applyResult(t, s, actions.RemoveHandler{}, actionCtx(v, removeCmd))

	if v.Resolver().Item(ids.ItemID("cloak")).HasFlag(ids.FlagWorn) {
		t.Error("expected the cloak to no longer be worn")
	}
}

func TestRemoveNotWornFails(t *testing.T) {
	s := cloakStore(t)
	v := newView(s)
	removeCmd := parser.Command{Verb: ids.VerbID("remove"), DirectObjects: []parser.ObjectRef{parser.ItemRef(ids.ItemID("cloak"))}}
	h := actions.RemoveHandler{}
	if err := h.Validate(actionCtx(v, removeCmd)); err == nil {
		t.Fatal("expected Validate to refuse removing an item that isn't worn")
	}
}
