// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package actions_test

import (
	"testing"

	"github.com/gnusto-if/gnusto/cerrs"
	"github.com/gnusto-if/gnusto/internal/actions"
	"github.com/gnusto-if/gnusto/internal/dispatch"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/messenger"
	"github.com/gnusto-if/gnusto/internal/parser"
	"github.com/gnusto-if/gnusto/internal/proxy"
	"github.com/gnusto-if/gnusto/internal/rng"
	"github.com/gnusto-if/gnusto/internal/statevalue"
	"github.com/gnusto-if/gnusto/internal/worldstore"
)

// handler is the subset of dispatch.ActionHandler the test helpers
// below drive; every concrete handler in this package satisfies it.
type handler interface {
	Validate(ctx *dispatch.ActionContext) error
	Process(ctx *dispatch.ActionContext) (dispatch.ActionResult, error)
}

// applyResult runs Validate then Process and applies every resulting
// PendingChange to the store, failing the test on any error. It lets
// a test chain two handlers (e.g. take then drop) without repeating
// the validate/process/apply boilerplate each time.
func applyResult(t *testing.T, s *worldstore.Store, h handler, ctx *dispatch.ActionContext) dispatch.ActionResult {
	t.Helper()
	if err := h.Validate(ctx); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	result, err := h.Process(ctx)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	for _, pc := range result.Changes {
		if _, err := s.Apply(1, pc.Target, pc.Attribute, pc.NewValue, pc.Payload); err != nil {
			t.Fatalf("Apply: %v", err)
		}
	}
	return result
}

// stubView is a minimal dispatch.EngineView backed by a real store and
// resolver, the same shape internal/timesystem's own tests use. Its
// save-store methods report cerrs.ErrNoSaveStore: no test in this
// package configures one, so SaveHandler/RestoreHandler exercise their
// own "unavailable" path here, not a real save round-trip.
type stubView struct {
	resolver *proxy.Resolver
	msgr     *messenger.Messenger
	turn     int
}

func (v stubView) Resolver() *proxy.Resolver        { return v.resolver }
func (v stubView) RNG() *rng.Source                 { return rng.NewSeeded(1) }
func (v stubView) Turn() int                        { return v.turn }
func (v stubView) Messenger() *messenger.Messenger  { return v.msgr }
func (v stubView) Snapshot() worldstore.Snapshot    { return v.resolver.Store().Snapshot() }
func (v stubView) Restore(snap worldstore.Snapshot) { v.resolver.Store().Restore(snap) }
func (v stubView) SaveSlot(name string) error       { return cerrs.ErrNoSaveStore }
func (v stubView) LoadSlot(name string) error       { return cerrs.ErrNoSaveStore }
func (v stubView) Restart()                         {}

func newView(s *worldstore.Store) stubView {
	return stubView{resolver: proxy.New(s), msgr: messenger.New()}
}

func actionCtx(v stubView, cmd parser.Command) *dispatch.ActionContext {
	return &dispatch.ActionContext{Engine: v, Command: cmd}
}

// lampAndChestStore builds a lit room holding a takable lamp (off), an
// openable unlocked chest (closed, capacity 5) on the floor, and a
// fixed hook that cannot be taken (spec.md §8 scenarios 1-4).
func lampAndChestStore(t *testing.T) *worldstore.Store {
	t.Helper()
	lamp := worldstore.ItemStatic{
		ID: ids.ItemID("lamp"), Name: "brass lantern", Size: 1,
		Parent: ids.LocationRef(ids.LocationID("room")),
		Flags:  map[ids.FlagID]bool{ids.FlagTakable: true, ids.FlagLightSource: true},
	}
	hook := worldstore.ItemStatic{
		ID: ids.ItemID("hook"), Name: "wall hook", Size: 0,
		Parent: ids.LocationRef(ids.LocationID("room")),
		Flags:  map[ids.FlagID]bool{},
	}
	chest := worldstore.ItemStatic{
		ID: ids.ItemID("chest"), Name: "wooden chest", Size: 0, Capacity: 5,
		Parent: ids.LocationRef(ids.LocationID("room")),
		Flags:  map[ids.FlagID]bool{ids.FlagContainer: true, ids.FlagOpenable: true},
	}
	room := worldstore.LocationStatic{
		ID: ids.LocationID("room"), Name: "A Room", Description: "A plain room.",
		Flags: map[ids.FlagID]bool{ids.FlagInherentlyLit: true},
	}
	return worldstore.New(
		[]worldstore.ItemStatic{lamp, hook, chest},
		[]worldstore.LocationStatic{room},
		worldstore.PlayerInit{Location: ids.LocationID("room"), InventoryLimit: 100},
	)
}

// lockableChestStore builds a closed, unlocked chest whose matching
// key (a held brass key) is recorded via actions.LockKeyAttribute.
func lockableChestStore(t *testing.T) *worldstore.Store {
	t.Helper()
	key := worldstore.ItemStatic{
		ID: ids.ItemID("key"), Name: "brass key", Size: 0,
		Parent: ids.PlayerRef(),
		Flags:  map[ids.FlagID]bool{ids.FlagTakable: true},
	}
	chest := worldstore.ItemStatic{
		ID: ids.ItemID("chest"), Name: "wooden chest", Size: 0, Capacity: 5,
		Parent: ids.LocationRef(ids.LocationID("room")),
		Flags:  map[ids.FlagID]bool{ids.FlagContainer: true, ids.FlagOpenable: true},
		Properties: map[ids.AttributeID]statevalue.StateValue{
			actions.LockKeyAttribute: statevalue.ItemIDValue(ids.ItemID("key")),
		},
	}
	room := worldstore.LocationStatic{
		ID: ids.LocationID("room"), Name: "A Room", Description: "A plain room.",
		Flags: map[ids.FlagID]bool{ids.FlagInherentlyLit: true},
	}
	return worldstore.New(
		[]worldstore.ItemStatic{key, chest},
		[]worldstore.LocationStatic{room},
		worldstore.PlayerInit{Location: ids.LocationID("room"), InventoryLimit: 100},
	)
}
