// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package actions_test

import (
	"testing"

	"github.com/gnusto-if/gnusto/internal/actions"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/parser"
)

func openChestCmd() parser.Command {
	return parser.Command{Verb: ids.VerbID("open"), DirectObjects: []parser.ObjectRef{parser.ItemRef(ids.ItemID("chest"))}}
}

func TestOpenClosedChestSucceeds(t *testing.T) {
	s := lampAndChestStore(t)
	v := newView(s)
	ctx := actionCtx(v, openChestCmd())
	applyResult(t, s, actions.OpenHandler{}, ctx)

	if !v.Resolver().Item(ids.ItemID("chest")).HasFlag(ids.FlagOpen) {
		t.Error("expected the chest to be open")
	}
}

func TestOpenAlreadyOpenChestFails(t *testing.T) {
	s := lampAndChestStore(t)
	v := newView(s)
	applyResult(t, s, actions.OpenHandler{}, actionCtx(v, openChestCmd()))

	h := actions.OpenHandler{}
	if err := h.Validate(actionCtx(v, openChestCmd())); err == nil {
		t.Fatal("expected Validate to refuse opening an already-open chest")
	}
}

func TestCloseOpenChestSucceeds(t *testing.T) {
	s := lampAndChestStore(t)
	v := newView(s)
	applyResult(t, s, actions.OpenHandler{}, actionCtx(v, openChestCmd()))

	closeCmd := parser.Command{Verb: ids.VerbID("close"), DirectObjects: []parser.ObjectRef{parser.ItemRef(ids.ItemID("chest"))}}
	applyResult(t, s, actions.CloseHandler{}, actionCtx(v, closeCmd))

	if v.Resolver().Item(ids.ItemID("chest")).HasFlag(ids.FlagOpen) {
		t.Error("expected the chest to be closed")
	}
}

func TestCloseAlreadyClosedChestFails(t *testing.T) {
	s := lampAndChestStore(t)
	v := newView(s)
	closeCmd := parser.Command{Verb: ids.VerbID("close"), DirectObjects: []parser.ObjectRef{parser.ItemRef(ids.ItemID("chest"))}}
	h := actions.CloseHandler{}
	if err := h.Validate(actionCtx(v, closeCmd)); err == nil {
		t.Fatal("expected Validate to refuse closing an already-closed chest")
	}
}
