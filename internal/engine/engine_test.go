// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package engine_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gnusto-if/gnusto/internal/actions"
	"github.com/gnusto-if/gnusto/internal/blueprint"
	"github.com/gnusto-if/gnusto/internal/change"
	"github.com/gnusto-if/gnusto/internal/dispatch"
	"github.com/gnusto-if/gnusto/internal/engine"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/ioboundary"
	"github.com/gnusto-if/gnusto/internal/store/sqlitestore"
	"github.com/gnusto-if/gnusto/internal/worldstore"
)

// pressButtonHandler is a one-off handler exercising change.NewStartFuse,
// standing in for a game-specific "press button starts a countdown"
// action (spec.md §8 scenario 6).
type pressButtonHandler struct{ dispatch.BaseHandler }

func (pressButtonHandler) SyntaxRules() []dispatch.SyntaxRule {
	return []dispatch.SyntaxRule{{Verb: ids.VerbID("press")}}
}
func (pressButtonHandler) Synonyms() []string { return nil }
func (pressButtonHandler) Process(ctx *dispatch.ActionContext) (dispatch.ActionResult, error) {
	return dispatch.NewActionResult("A bell starts ticking somewhere.",
		nil, []change.SideEffect{change.NewStartFuse(ids.FuseID("bell"), 2, change.Payload{})})
}

// newTestBlueprint builds a lit room holding a takable lamp and a
// one-exit passage to a second room, wired with the handlers a test
// below drives.
func newTestBlueprint(t *testing.T) *blueprint.Blueprint {
	t.Helper()
	cfg := blueprint.Default()
	cfg.Title = "Test Game"
	cfg.StartLocation = "room"

	bp := blueprint.New(cfg)
	bp.Locations = []worldstore.LocationStatic{
		{
			ID: ids.LocationID("room"), Name: "A Room", Description: "A plain room with bare stone walls.",
			Flags: map[ids.FlagID]bool{ids.FlagInherentlyLit: true},
		},
	}
	bp.Items = []worldstore.ItemStatic{
		{
			ID: ids.ItemID("lamp"), Name: "brass lantern", Size: 1,
			Parent: ids.LocationRef(ids.LocationID("room")),
			Flags:  map[ids.FlagID]bool{ids.FlagTakable: true, ids.FlagLightSource: true},
		},
	}
	bp.RegisterHandler(actions.LookHandler{})
	bp.RegisterHandler(actions.TakeHandler{})
	bp.RegisterHandler(actions.DropHandler{})
	bp.RegisterHandler(actions.InventoryHandler{})
	bp.RegisterHandler(actions.QuitHandler{})
	bp.RegisterHandler(actions.WaitHandler{})
	return bp
}

func newEngine(t *testing.T, bp *blueprint.Blueprint) *engine.Engine {
	t.Helper()
	e, err := engine.New(bp)
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	return e
}

// TestRunPrintsIntroAndFirstLocationOnce checks spec.md §4.10 step 1:
// the title/introduction print once, the first location gets its full
// description, and a second turn in the same room prints nothing more
// for the header since the location hasn't changed.
func TestRunPrintsIntroAndFirstLocationOnce(t *testing.T) {
	bp := newTestBlueprint(t)
	e := newEngine(t, bp)
	mock := &ioboundary.Mock{Lines: []string{"inventory", "inventory"}}

	if err := e.Run(mock); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(mock.Flushed) == 0 {
		t.Fatal("expected at least one flushed block")
	}
	if !strings.Contains(mock.Flushed[0], "Test Game") {
		t.Errorf("first flush = %q, want the title", mock.Flushed[0])
	}
	if !strings.Contains(mock.Flushed[0], "A Room") || !strings.Contains(mock.Flushed[0], "bare stone walls") {
		t.Errorf("first flush = %q, want the full room description", mock.Flushed[0])
	}

	for _, block := range mock.Flushed[1:] {
		if strings.Contains(block, "A Room") {
			t.Errorf("unchanged location header reprinted: %q", block)
		}
	}
}

// TestRunAppliesTakeAndBumpsMoves realizes spec.md §8 scenario 1 and
// SPEC_FULL.md §D.2: taking an item prints "Taken." and counts as a
// move, since it carries a real StateChange.
func TestRunAppliesTakeAndBumpsMoves(t *testing.T) {
	bp := newTestBlueprint(t)
	e := newEngine(t, bp)
	mock := &ioboundary.Mock{Lines: []string{"take lamp"}}

	if err := e.Run(mock); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var sawTaken bool
	for _, block := range mock.Flushed {
		if strings.Contains(block, "Taken.") {
			sawTaken = true
		}
	}
	if !sawTaken {
		t.Errorf("expected a Taken. message somewhere in %v", mock.Flushed)
	}
	if got := e.Turn(); got != 1 {
		t.Errorf("Turn() = %d, want 1", got)
	}
	if got := e.Resolver().Player().Moves(); got != 1 {
		t.Errorf("Moves() = %d, want 1", got)
	}
}

// TestRunRefusesDarkRoomForLightGatedHandler realizes spec.md §8
// scenario 5: taking something in an unlit room is refused before the
// handler's own Validate ever runs.
func TestRunRefusesDarkRoomForLightGatedHandler(t *testing.T) {
	cfg := blueprint.Default()
	cfg.StartLocation = "cell"
	bp := blueprint.New(cfg)
	bp.Locations = []worldstore.LocationStatic{{ID: ids.LocationID("cell"), Name: "Dark Cell"}}
	bp.Items = []worldstore.ItemStatic{
		{
			ID: ids.ItemID("rock"), Name: "loose rock", Size: 1,
			Parent: ids.LocationRef(ids.LocationID("cell")),
			Flags:  map[ids.FlagID]bool{ids.FlagTakable: true},
		},
	}
	bp.RegisterHandler(actions.TakeHandler{})
	e := newEngine(t, bp)
	mock := &ioboundary.Mock{Lines: []string{"take rock"}}

	if err := e.Run(mock); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var sawDark bool
	for _, block := range mock.Flushed {
		if strings.Contains(block, "dark") {
			sawDark = true
		}
	}
	if !sawDark {
		t.Errorf("expected a dark-room refusal somewhere in %v", mock.Flushed)
	}
}

// TestRunFiresFuseAcrossTurns realizes spec.md §8 scenario 6: a fuse
// started by one command's SideEffects fires on its own after enough
// subsequent turns, printing its own message without any player
// command naming it directly.
func TestRunFiresFuseAcrossTurns(t *testing.T) {
	bp := newTestBlueprint(t)
	bp.RegisterHandler(pressButtonHandler{})
	bp.RegisterFuse(ids.FuseID("bell"), func(view dispatch.EngineView, id ids.FuseID, state worldstore.FuseState) (*dispatch.ActionResult, error) {
		return &dispatch.ActionResult{Message: "The bell rings!", HasMessage: true}, nil
	})
	e := newEngine(t, bp)
	mock := &ioboundary.Mock{Lines: []string{"press", "wait", "wait"}}

	if err := e.Run(mock); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var sawBell bool
	for _, block := range mock.Flushed {
		if strings.Contains(block, "The bell rings!") {
			sawBell = true
		}
	}
	if !sawBell {
		t.Errorf("expected the fuse to fire within %v", mock.Flushed)
	}
}

// TestRunStopsOnQuit realizes spec.md §4.10 step 6: quit ends the
// loop even though more input lines remain unread.
func TestRunStopsOnQuit(t *testing.T) {
	bp := newTestBlueprint(t)
	e := newEngine(t, bp)
	mock := &ioboundary.Mock{Lines: []string{"quit", "inventory"}}

	if err := e.Run(mock); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var sawGoodbye bool
	for _, block := range mock.Flushed {
		if strings.Contains(block, "Goodbye.") {
			sawGoodbye = true
		}
	}
	if !sawGoodbye {
		t.Errorf("expected Goodbye. somewhere in %v", mock.Flushed)
	}
	if mock.Lines[len(mock.Lines)-1] != "inventory" {
		t.Fatal("test setup error: expected a second line left unread")
	}
}

// blockingBoundary blocks its first ReadLine until release is closed,
// letting a test start a Run and observe it still in flight before a
// second Run is attempted on the same Engine.
type blockingBoundary struct {
	release chan struct{}
}

func (b *blockingBoundary) ReadLine() (string, bool) {
	<-b.release
	return "", false
}
func (b *blockingBoundary) Print(string) {}
func (b *blockingBoundary) Flush()       {}

// TestRunRejectsReentry realizes the cerrs.ErrAlreadyRunning guard: a
// second Run on an Engine already inside Run is rejected rather than
// interleaving with the first.
func TestRunRejectsReentry(t *testing.T) {
	bp := newTestBlueprint(t)
	e := newEngine(t, bp)
	b := &blockingBoundary{release: make(chan struct{})}

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- e.Run(b)
	}()
	time.Sleep(20 * time.Millisecond)

	if err := e.Run(&ioboundary.Mock{}); err == nil {
		t.Fatal("expected the second Run to be rejected while the first is in flight")
	}

	close(b.release)
	if err := <-firstDone; err != nil {
		t.Fatalf("first Run: %v", err)
	}
}

// TestParseErrorIsPrintedAndLoopContinues checks that an unparseable
// line prints the parser's own message and the loop keeps going
// rather than treating it as an end condition.
func TestParseErrorIsPrintedAndLoopContinues(t *testing.T) {
	bp := newTestBlueprint(t)
	e := newEngine(t, bp)
	mock := &ioboundary.Mock{Lines: []string{"xyzzy nonsense", "inventory"}}

	if err := e.Run(mock); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(mock.Flushed) < 3 {
		t.Fatalf("expected intro + two more flushed blocks, got %d: %v", len(mock.Flushed), mock.Flushed)
	}
}

// TestRestartReplaysInitialSnapshot realizes spec.md §4.10 step 5:
// restart puts the store back to the state it had the instant New
// finished building it, undoing everything a prior command did.
func TestRestartReplaysInitialSnapshot(t *testing.T) {
	bp := newTestBlueprint(t)
	bp.RegisterHandler(actions.RestartHandler{})
	e := newEngine(t, bp)
	mock := &ioboundary.Mock{Lines: []string{"take lamp", "restart"}}

	if err := e.Run(mock); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if e.Turn() != 0 {
		t.Errorf("Turn() after restart = %d, want 0", e.Turn())
	}
	if got := e.Resolver().Item(ids.ItemID("lamp")).Parent(); !got.Equal(ids.LocationRef(ids.LocationID("room"))) {
		t.Errorf("expected the lamp back in the room after restart, got %v", got)
	}
}

// TestSaveSlotRoundTripsThroughSqliteStore realizes spec.md §4.10 step
// 5's save/restore pair against the real sqlitestore backend, not just
// the in-memory Snapshot/Restore plumbing.
func TestSaveSlotRoundTripsThroughSqliteStore(t *testing.T) {
	bp := newTestBlueprint(t)
	bp.RegisterHandler(actions.SaveHandler{})
	e := newEngine(t, bp)
	saves, err := sqlitestore.CreateStore(t.TempDir(), context.Background())
	if err != nil {
		t.Fatalf("CreateStore: %v", err)
	}
	defer func() { _ = saves.Close() }()
	e.SetSaveStore(saves)

	mock := &ioboundary.Mock{Lines: []string{"take lamp", "save"}}
	if err := e.Run(mock); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// A second engine, fresh from the same blueprint, loads that slot
	// and should see the lamp already taken.
	e2 := newEngine(t, newTestBlueprint(t))
	e2.SetSaveStore(saves)
	if err := e2.LoadSlot("default"); err != nil {
		t.Fatalf("LoadSlot: %v", err)
	}
	if got := e2.Resolver().Item(ids.ItemID("lamp")).Parent(); !got.Equal(ids.PlayerRef()) {
		t.Errorf("expected the restored state to show the lamp already held, got %v", got)
	}
}
