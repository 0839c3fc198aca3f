// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package worldstore_test

import (
	"errors"
	"testing"

	"github.com/go-test/deep"

	"github.com/gnusto-if/gnusto/cerrs"
	"github.com/gnusto-if/gnusto/internal/change"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/statevalue"
	"github.com/gnusto-if/gnusto/internal/worldstore"
)

func newTestStore() *worldstore.Store {
	lamp := worldstore.ItemStatic{
		ID: ids.ItemID("lamp"), Name: "brass lantern", Size: 1,
		Parent: ids.LocationRef(ids.LocationID("attic")),
		Flags:  map[ids.FlagID]bool{ids.FlagID("takable"): true, ids.FlagID("lightSource"): true},
	}
	chest := worldstore.ItemStatic{
		ID: ids.ItemID("chest"), Name: "wooden chest", Size: 0, Capacity: 10,
		Parent: ids.LocationRef(ids.LocationID("attic")),
		Flags:  map[ids.FlagID]bool{ids.FlagID("container"): true, ids.FlagID("openable"): true},
	}
	attic := worldstore.LocationStatic{
		ID: ids.LocationID("attic"), Name: "The Attic",
		Flags: map[ids.FlagID]bool{ids.FlagID("inherentlyLit"): true},
	}
	return worldstore.New(
		[]worldstore.ItemStatic{lamp, chest},
		[]worldstore.LocationStatic{attic},
		worldstore.PlayerInit{Location: ids.LocationID("attic"), InventoryLimit: 10},
	)
}

func TestChildrenOfReflectsStaticParents(t *testing.T) {
	s := newTestStore()
	kids := s.ChildrenOf(ids.LocationRef(ids.LocationID("attic")))
	if len(kids) != 2 {
		t.Fatalf("expected 2 children, got %d: %v", len(kids), kids)
	}
}

func TestApplyItemParentUpdatesChildrenIndex(t *testing.T) {
	s := newTestStore()
	lampEntity := ids.ItemEntity(ids.ItemID("lamp"))
	_, err := s.Apply(1, lampEntity, change.ItemParent(),
		statevalue.ParentEntity(ids.PlayerRef()), change.Payload{})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	atticKids := s.ChildrenOf(ids.LocationRef(ids.LocationID("attic")))
	for _, id := range atticKids {
		if id == ids.ItemID("lamp") {
			t.Errorf("lamp should no longer be a child of attic")
		}
	}
	playerKids := s.ChildrenOf(ids.PlayerRef())
	if diff := deep.Equal(playerKids, []ids.ItemID{ids.ItemID("lamp")}); diff != nil {
		t.Errorf("player's children mismatch: %v", diff)
	}

	parent, err := s.ItemParent(ids.ItemID("lamp"))
	if err != nil {
		t.Fatalf("ItemParent: %v", err)
	}
	if !parent.Equal(ids.PlayerRef()) {
		t.Errorf("ItemParent = %s, want player", parent)
	}
}

func TestApplyRecordsOldAndNewValue(t *testing.T) {
	s := newTestStore()
	lampEntity := ids.ItemEntity(ids.ItemID("lamp"))
	rec, err := s.Apply(1, lampEntity, change.SetFlag(ids.FlagID("lit")),
		statevalue.Bool(true), change.Payload{})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if rec.HasOldValue && rec.OldValue.BoolVal {
		t.Errorf("expected default-false old value for a never-set flag")
	}
	if !rec.NewValue.BoolVal {
		t.Errorf("expected new value true")
	}

	log := s.ChangeLog()
	if len(log) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(log))
	}
}

func TestValidatorRejectsChange(t *testing.T) {
	s := newTestStore()
	s.RegisterAttributeValidator(change.AttrItemParent, func(current, proposed statevalue.StateValue) error {
		return errors.New("the chest is closed")
	})
	lampEntity := ids.ItemEntity(ids.ItemID("lamp"))
	_, err := s.Apply(1, lampEntity, change.ItemParent(),
		statevalue.ParentEntity(ids.ItemRef(ids.ItemID("chest"))), change.Payload{})
	if err == nil {
		t.Fatalf("expected validator rejection")
	}

	parent, _ := s.ItemParent(ids.ItemID("lamp"))
	if !parent.Equal(ids.LocationRef(ids.LocationID("attic"))) {
		t.Errorf("parent should be unchanged after rejection, got %s", parent)
	}
}

func TestFuseLifecycle(t *testing.T) {
	s := newTestStore()
	fuseID := ids.FuseID("bomb")

	if _, err := s.Apply(1, ids.FuseEntity(fuseID), change.AddActiveFuse(fuseID, 3),
		statevalue.StateValue{}, change.Payload{}); err != nil {
		t.Fatalf("add fuse: %v", err)
	}
	f, ok := s.Fuse(fuseID)
	if !ok || f.Turns != 3 {
		t.Fatalf("fuse state = %+v, ok=%v, want turns=3", f, ok)
	}

	if _, err := s.Apply(1, ids.FuseEntity(fuseID), change.AddActiveFuse(fuseID, 5),
		statevalue.StateValue{}, change.Payload{}); !errors.Is(err, cerrs.ErrFuseAlreadyActive) {
		t.Errorf("expected ErrFuseAlreadyActive, got %v", err)
	}

	if _, err := s.Apply(2, ids.FuseEntity(fuseID), change.UpdateFuseTurns(fuseID),
		statevalue.Int(2), change.Payload{}); err != nil {
		t.Fatalf("update fuse turns: %v", err)
	}
	f, _ = s.Fuse(fuseID)
	if f.Turns != 2 {
		t.Errorf("turns = %d, want 2", f.Turns)
	}

	if _, err := s.Apply(4, ids.FuseEntity(fuseID), change.RemoveActiveFuse(fuseID),
		statevalue.StateValue{}, change.Payload{}); err != nil {
		t.Fatalf("remove fuse: %v", err)
	}
	if _, ok := s.Fuse(fuseID); ok {
		t.Errorf("fuse should be gone after removal")
	}
}

func TestApplyAllStopsOnFirstFailure(t *testing.T) {
	s := newTestStore()
	entries := []worldstore.PendingChange{
		{Target: ids.ItemEntity(ids.ItemID("lamp")), Attribute: change.SetFlag(ids.FlagID("lit")), NewValue: statevalue.Bool(true)},
		{Target: ids.FuseEntity(ids.FuseID("x")), Attribute: change.UpdateFuseTurns(ids.FuseID("x")), NewValue: statevalue.Int(1)},
		{Target: ids.ItemEntity(ids.ItemID("lamp")), Attribute: change.SetFlag(ids.FlagID("touched")), NewValue: statevalue.Bool(true)},
	}
	applied, err := s.ApplyAll(1, entries)
	if err == nil {
		t.Fatalf("expected failure on missing fuse")
	}
	if len(applied) != 1 {
		t.Fatalf("expected 1 successful change before failure, got %d", len(applied))
	}
}

func TestTranslateStartFuse(t *testing.T) {
	s := newTestStore()
	payload, err := change.NewPayload("bomb", map[string]int{"warnings": 0})
	if err != nil {
		t.Fatalf("NewPayload: %v", err)
	}
	pending, err := s.Translate(change.NewStartFuse(ids.FuseID("bomb"), 3, payload))
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if len(pending) != 1 || pending[0].Attribute.Kind != change.AttrAddActiveFuse {
		t.Fatalf("unexpected translation: %+v", pending)
	}
}

func TestTranslateStartFuseRejectsZeroTurns(t *testing.T) {
	s := newTestStore()
	_, err := s.Translate(change.NewStartFuse(ids.FuseID("bomb"), 0, change.Payload{}))
	if !errors.Is(err, cerrs.ErrInvalidFuseTurns) {
		t.Errorf("expected ErrInvalidFuseTurns, got %v", err)
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	s := newTestStore()
	lampEntity := ids.ItemEntity(ids.ItemID("lamp"))
	if _, err := s.Apply(1, lampEntity, change.ItemParent(),
		statevalue.ParentEntity(ids.PlayerRef()), change.Payload{}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if _, err := s.Apply(1, ids.FuseEntity(ids.FuseID("bomb")), change.AddActiveFuse(ids.FuseID("bomb"), 3),
		statevalue.StateValue{}, change.Payload{}); err != nil {
		t.Fatalf("Apply fuse: %v", err)
	}

	snap := s.Snapshot()

	other := newTestStore()
	other.Restore(snap)

	gotParent, err := other.ItemParent(ids.ItemID("lamp"))
	if err != nil {
		t.Fatalf("ItemParent: %v", err)
	}
	if !gotParent.Equal(ids.PlayerRef()) {
		t.Errorf("restored parent = %s, want player", gotParent)
	}
	if f, ok := other.Fuse(ids.FuseID("bomb")); !ok || f.Turns != 3 {
		t.Errorf("restored fuse = %+v, ok=%v", f, ok)
	}
	if diff := deep.Equal(other.ChangeLog(), s.ChangeLog()); diff != nil {
		t.Errorf("change log mismatch after restore: %v", diff)
	}
}
