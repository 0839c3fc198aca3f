// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package timesystem_test

import (
	"errors"
	"testing"

	"github.com/gnusto-if/gnusto/cerrs"
	"github.com/gnusto-if/gnusto/internal/change"
	"github.com/gnusto-if/gnusto/internal/dispatch"
	"github.com/gnusto-if/gnusto/internal/enginelog"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/messenger"
	"github.com/gnusto-if/gnusto/internal/proxy"
	"github.com/gnusto-if/gnusto/internal/rng"
	"github.com/gnusto-if/gnusto/internal/statevalue"
	"github.com/gnusto-if/gnusto/internal/timesystem"
	"github.com/gnusto-if/gnusto/internal/worldstore"
)

type stubView struct {
	turn int
}

func (v stubView) Resolver() *proxy.Resolver       { return nil }
func (v stubView) RNG() *rng.Source                { return rng.NewSeeded(1) }
func (v stubView) Turn() int                       { return v.turn }
func (v stubView) Messenger() *messenger.Messenger { return messenger.New() }
func (v stubView) Snapshot() worldstore.Snapshot   { return worldstore.Snapshot{} }
func (v stubView) Restore(snap worldstore.Snapshot) {}
func (v stubView) SaveSlot(name string) error      { return cerrs.ErrNoSaveStore }
func (v stubView) LoadSlot(name string) error      { return cerrs.ErrNoSaveStore }
func (v stubView) Restart()                        {}

func newStore() *worldstore.Store {
	return worldstore.New(nil, nil, worldstore.PlayerInit{Location: ids.LocationID("start")})
}

func TestTickDecrementsFuseWithoutFiringEarly(t *testing.T) {
	s := newStore()
	if _, err := s.Apply(1, ids.FuseEntity(ids.FuseID("bomb")), change.AddActiveFuse(ids.FuseID("bomb"), 3), statevalue.Int(3), change.Payload{}); err != nil {
		t.Fatalf("AddActiveFuse: %v", err)
	}
	r := timesystem.NewRegistry()
	fired := false
	r.RegisterFuse(ids.FuseID("bomb"), func(view dispatch.EngineView, id ids.FuseID, state worldstore.FuseState) (*dispatch.ActionResult, error) {
		fired = true
		return nil, nil
	})

	if _, err := r.Tick(2, s, stubView{turn: 2}, enginelog.New(false)); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if fired {
		t.Fatal("fuse fired before reaching zero turns")
	}
	f, ok := s.Fuse(ids.FuseID("bomb"))
	if !ok || f.Turns != 2 {
		t.Fatalf("expected 2 turns remaining, got %+v ok=%v", f, ok)
	}
}

func TestTickFiresFuseAtZeroAndRemovesIt(t *testing.T) {
	s := newStore()
	if _, err := s.Apply(1, ids.FuseEntity(ids.FuseID("bomb")), change.AddActiveFuse(ids.FuseID("bomb"), 1), statevalue.Int(1), change.Payload{}); err != nil {
		t.Fatalf("AddActiveFuse: %v", err)
	}
	r := timesystem.NewRegistry()
	r.RegisterFuse(ids.FuseID("bomb"), func(view dispatch.EngineView, id ids.FuseID, state worldstore.FuseState) (*dispatch.ActionResult, error) {
		res, err := dispatch.NewActionResult("it explodes", nil, nil)
		if err != nil {
			return nil, err
		}
		return &res, nil
	})

	got, err := r.Tick(2, s, stubView{turn: 2}, enginelog.New(false))
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if len(got.Messages) != 1 || got.Messages[0] != "it explodes" {
		t.Errorf("expected the fired fuse's message to be surfaced, got %v", got.Messages)
	}
	if _, ok := s.Fuse(ids.FuseID("bomb")); ok {
		t.Error("expected fuse to be removed after firing")
	}
}

func TestTickRemovesFuseAfterTwoConsecutiveFailures(t *testing.T) {
	s := newStore()
	if _, err := s.Apply(1, ids.FuseEntity(ids.FuseID("bomb")), change.AddActiveFuse(ids.FuseID("bomb"), 1), statevalue.Int(1), change.Payload{}); err != nil {
		t.Fatalf("AddActiveFuse: %v", err)
	}
	r := timesystem.NewRegistry()
	calls := 0
	r.RegisterFuse(ids.FuseID("bomb"), func(view dispatch.EngineView, id ids.FuseID, state worldstore.FuseState) (*dispatch.ActionResult, error) {
		calls++
		return nil, errors.New("boom")
	})

	if _, err := r.Tick(2, s, stubView{turn: 2}, enginelog.New(false)); err != nil {
		t.Fatalf("Tick 1: %v", err)
	}
	if _, ok := s.Fuse(ids.FuseID("bomb")); !ok {
		t.Fatal("expected fuse to survive a single failure")
	}
	if _, err := r.Tick(3, s, stubView{turn: 3}, enginelog.New(false)); err != nil {
		t.Fatalf("Tick 2: %v", err)
	}
	if _, ok := s.Fuse(ids.FuseID("bomb")); ok {
		t.Error("expected fuse to be removed after a second consecutive failure")
	}
	if calls != 2 {
		t.Errorf("expected the fuse function to be invoked twice, got %d", calls)
	}
}

func TestTickInvokesDaemonOnlyWhenDue(t *testing.T) {
	s := newStore()
	if _, err := s.Apply(1, ids.DaemonEntity(ids.DaemonID("clock")), change.AddActiveDaemon(ids.DaemonID("clock")), statevalue.StateValue{}, change.Payload{}); err != nil {
		t.Fatalf("AddActiveDaemon: %v", err)
	}
	r := timesystem.NewRegistry()
	calls := 0
	r.RegisterDaemon(ids.DaemonID("clock"), 3, func(view dispatch.EngineView, id ids.DaemonID, state worldstore.DaemonState) (*dispatch.ActionResult, error) {
		calls++
		return nil, nil
	})

	for turn := 1; turn <= 6; turn++ {
		if _, err := r.Tick(turn, s, stubView{turn: turn}, enginelog.New(false)); err != nil {
			t.Fatalf("Tick %d: %v", turn, err)
		}
	}
	if calls != 2 {
		t.Errorf("expected the daemon to fire on turns 3 and 6, got %d calls", calls)
	}
	d, ok := s.Daemon(ids.DaemonID("clock"))
	if !ok || d.ExecutionCount != 2 {
		t.Errorf("expected ExecutionCount 2, got %+v ok=%v", d, ok)
	}
}
