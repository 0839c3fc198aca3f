// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package actions_test

import (
	"testing"

	"github.com/gnusto-if/gnusto/internal/actions"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/parser"
)

func lockCmd(verb string) parser.Command {
	return parser.Command{
		Verb:            ids.VerbID(verb),
		DirectObjects:   []parser.ObjectRef{parser.ItemRef(ids.ItemID("chest"))},
		IndirectObjects: []parser.ObjectRef{parser.ItemRef(ids.ItemID("key"))},
		Preposition:     "with", HasPreposition: true,
	}
}

func TestLockClosedChestWithMatchingKeySucceeds(t *testing.T) {
	s := lockableChestStore(t)
	v := newView(s)
	applyResult(t, s, actions.LockHandler{}, actionCtx(v, lockCmd("lock")))

	if !v.Resolver().Item(ids.ItemID("chest")).HasFlag(ids.FlagLocked) {
		t.Error("expected the chest to be locked")
	}
}

func TestLockWithWrongKeyFails(t *testing.T) {
	s := lockableChestStore(t)
	wrongKey := parser.Command{
		Verb:            ids.VerbID("lock"),
		DirectObjects:   []parser.ObjectRef{parser.ItemRef(ids.ItemID("chest"))},
		IndirectObjects: []parser.ObjectRef{parser.ItemRef(ids.ItemID("chest"))},
		Preposition:     "with", HasPreposition: true,
	}
	v := newView(s)
	h := actions.LockHandler{}
	if err := h.Validate(actionCtx(v, wrongKey)); err == nil {
		t.Fatal("expected Validate to refuse a non-matching key")
	}
}

func TestUnlockLockedChestWithMatchingKeySucceeds(t *testing.T) {
	s := lockableChestStore(t)
	v := newView(s)
	applyResult(t, s, actions.LockHandler{}, actionCtx(v, lockCmd("lock")))
	applyResult(t, s, actions.UnlockHandler{}, actionCtx(v, lockCmd("unlock")))

	if v.Resolver().Item(ids.ItemID("chest")).HasFlag(ids.FlagLocked) {
		t.Error("expected the chest to be unlocked")
	}
}

func TestOpenLockedChestFails(t *testing.T) {
	s := lockableChestStore(t)
	v := newView(s)
	applyResult(t, s, actions.LockHandler{}, actionCtx(v, lockCmd("lock")))

	openCmd := parser.Command{Verb: ids.VerbID("open"), DirectObjects: []parser.ObjectRef{parser.ItemRef(ids.ItemID("chest"))}}
	h := actions.OpenHandler{}
	if err := h.Validate(actionCtx(v, openCmd)); err == nil {
		t.Fatal("expected Validate to refuse opening a locked chest")
	}
}
