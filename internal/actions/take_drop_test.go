// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package actions_test

import (
	"strings"
	"testing"

	"github.com/gnusto-if/gnusto/internal/actions"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/parser"
)

func TestTakeLampSucceeds(t *testing.T) {
	s := lampAndChestStore(t)
	v := newView(s)
	cmd := parser.Command{Verb: ids.VerbID("take"), DirectObjects: []parser.ObjectRef{parser.ItemRef(ids.ItemID("lamp"))}}
	ctx := actionCtx(v, cmd)

	h := actions.TakeHandler{}
	if err := h.Validate(ctx); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	result, err := h.Process(ctx)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(result.Changes) != 1 {
		t.Fatalf("expected one change, got %d", len(result.Changes))
	}
	if result.Changes[0].Target != ids.ItemEntity(ids.ItemID("lamp")) {
		t.Errorf("change targets %v, want the lamp", result.Changes[0].Target)
	}
}

func TestTakeFixedHookFails(t *testing.T) {
	s := lampAndChestStore(t)
	v := newView(s)
	cmd := parser.Command{Verb: ids.VerbID("take"), DirectObjects: []parser.ObjectRef{parser.ItemRef(ids.ItemID("hook"))}}
	ctx := actionCtx(v, cmd)

	h := actions.TakeHandler{}
	if err := h.Validate(ctx); err == nil {
		t.Fatal("expected Validate to refuse a fixed item")
	}
}

// TestTakeAllYieldsOneTakenAndOneRefusal realizes spec.md §8 scenario
// 3: "take all" in a room with a takable lamp and a fixed hook takes
// the lamp and reports exactly one refusal for the hook.
func TestTakeAllYieldsOneTakenAndOneRefusal(t *testing.T) {
	s := lampAndChestStore(t)
	v := newView(s)
	cmd := parser.Command{
		Verb: ids.VerbID("take"), IsAll: true,
		DirectObjects: []parser.ObjectRef{parser.ItemRef(ids.ItemID("lamp")), parser.ItemRef(ids.ItemID("hook"))},
	}
	ctx := actionCtx(v, cmd)

	h := actions.TakeHandler{}
	if err := h.Validate(ctx); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	result, err := h.Process(ctx)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(result.Changes) != 1 {
		t.Fatalf("expected one state change (only the lamp succeeds), got %d", len(result.Changes))
	}
	if strings.Count(result.Message, "Taken.") != 1 {
		t.Errorf("expected exactly one %q in %q", "Taken.", result.Message)
	}
	if !strings.Contains(result.Message, "wall hook: You can't take that.") {
		t.Errorf("expected the hook's refusal to be real messenger prose, got %q", result.Message)
	}
	if strings.Contains(result.Message, "itemNotTakable") {
		t.Errorf("refusal text leaked the ActionResponseKind debug string: %q", result.Message)
	}
}

func TestDropHeldLampSucceeds(t *testing.T) {
	s := lampAndChestStore(t)
	v := newView(s)
	takeCmd := parser.Command{Verb: ids.VerbID("take"), DirectObjects: []parser.ObjectRef{parser.ItemRef(ids.ItemID("lamp"))}}
	applyResult(t, s, actions.TakeHandler{}, actionCtx(v, takeCmd))

	dropCmd := parser.Command{Verb: ids.VerbID("drop"), DirectObjects: []parser.ObjectRef{parser.ItemRef(ids.ItemID("lamp"))}}
	ctx := actionCtx(v, dropCmd)
	h := actions.DropHandler{}
	if err := h.Validate(ctx); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	result, err := h.Process(ctx)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(result.Changes) != 1 {
		t.Fatalf("expected one change, got %d", len(result.Changes))
	}
}

func TestDropItemNotHeldFails(t *testing.T) {
	s := lampAndChestStore(t)
	v := newView(s)
	cmd := parser.Command{Verb: ids.VerbID("drop"), DirectObjects: []parser.ObjectRef{parser.ItemRef(ids.ItemID("lamp"))}}
	ctx := actionCtx(v, cmd)
	h := actions.DropHandler{}
	if err := h.Validate(ctx); err == nil {
		t.Fatal("expected Validate to refuse dropping an item not carried")
	}
}
