// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package engine

import (
	"github.com/gnusto-if/gnusto/cerrs"
	"github.com/gnusto-if/gnusto/internal/blueprint"
	"github.com/gnusto-if/gnusto/internal/dispatch"
	"github.com/gnusto-if/gnusto/internal/enginelog"
	"github.com/gnusto-if/gnusto/internal/hooks"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/messenger"
	"github.com/gnusto-if/gnusto/internal/metrics"
	"github.com/gnusto-if/gnusto/internal/parser"
	"github.com/gnusto-if/gnusto/internal/proxy"
	"github.com/gnusto-if/gnusto/internal/rng"
	"github.com/gnusto-if/gnusto/internal/store/sqlitestore"
	"github.com/gnusto-if/gnusto/internal/timesystem"
	"github.com/gnusto-if/gnusto/internal/worldstore"
)

// EventFunc answers a change.ScheduleEvent side effect once the batch
// that scheduled it has committed. label is the SideEffect's own
// Label field.
type EventFunc func(view dispatch.EngineView, label string) (*dispatch.ActionResult, error)

// Engine is a Blueprint built into a running instance: the
// authoritative store, the read-side resolver, every registry the
// blueprint populated, and the turn counter and location-tracking
// state the pipeline needs between calls to Run. It satisfies
// dispatch.EngineView so it can stand in as every handler's
// ctx.Engine without an import cycle back into dispatch.
type Engine struct {
	cfg      *blueprint.Config
	store    *worldstore.Store
	resolver *proxy.Resolver
	handlers *dispatch.Registry
	hooks    *hooks.Registry
	time     *timesystem.Registry
	msgr     *messenger.Messenger
	logger   *enginelog.Logger
	metrics  *metrics.Recorder
	parse    *parser.Parser
	rngSrc   *rng.Source
	saves    *sqlitestore.Store

	// initialSnapshot is the store's state the instant New finished
	// building it, before any command ran. Restart replays it.
	initialSnapshot worldstore.Snapshot

	turn            int
	lastLocation    ids.LocationID
	hasLastLocation bool
	running         bool

	events map[string]EventFunc
}

var _ dispatch.EngineView = (*Engine)(nil)

// New builds an Engine by calling bp.Build() and wiring the resulting
// Runtime together with the blueprint's own registries. The blueprint
// is consumed at this point; later mutation of its registration
// tables has no effect on the returned Engine (spec.md §5: "frozen
// after engine start").
func New(bp *blueprint.Blueprint) (*Engine, error) {
	rt, err := bp.Build()
	if err != nil {
		return nil, err
	}
	src, err := newRNGSource(bp.RNGSeed)
	if err != nil {
		return nil, err
	}
	return &Engine{
		cfg:             bp.Config,
		store:           rt.Store,
		resolver:        rt.Resolver,
		handlers:        bp.Handlers,
		hooks:           bp.Hooks,
		time:            bp.Time,
		msgr:            bp.Messenger,
		logger:          bp.Logger,
		metrics:         bp.Metrics,
		parse:           parser.New(rt.Vocabulary, rt.Store),
		rngSrc:          src,
		initialSnapshot: rt.Store.Snapshot(),
		events:          make(map[string]EventFunc),
	}, nil
}

// newRNGSource seeds deterministically when the blueprint pins a
// non-zero seed, otherwise draws a fresh one from entropy.
func newRNGSource(seed int64) (*rng.Source, error) {
	if seed != 0 {
		return rng.NewSeeded(seed), nil
	}
	return rng.NewFromEntropy()
}

func (e *Engine) Resolver() *proxy.Resolver      { return e.resolver }
func (e *Engine) RNG() *rng.Source                { return e.rngSrc }
func (e *Engine) Turn() int                       { return e.turn }
func (e *Engine) Messenger() *messenger.Messenger { return e.msgr }

// SetSaveStore wires an opened sqlitestore.Store into the engine so
// SaveSlot/LoadSlot have somewhere to persist to. A host that never
// calls this leaves save/restore reporting cerrs.ErrNoSaveStore.
func (e *Engine) SetSaveStore(s *sqlitestore.Store) {
	e.saves = s
}

// Snapshot returns a deep copy of the store's current mutable state.
func (e *Engine) Snapshot() worldstore.Snapshot {
	return e.store.Snapshot()
}

// Restore replaces the store's mutable state wholesale with snap.
func (e *Engine) Restore(snap worldstore.Snapshot) {
	e.store.Restore(snap)
}

// SaveSlot persists the store's current state to the configured save
// store's named slot.
func (e *Engine) SaveSlot(name string) error {
	if e.saves == nil {
		return cerrs.ErrNoSaveStore
	}
	return e.saves.Save(name, e.store.Snapshot(), e.turn)
}

// LoadSlot restores the store's state from the configured save
// store's named slot.
func (e *Engine) LoadSlot(name string) error {
	if e.saves == nil {
		return cerrs.ErrNoSaveStore
	}
	snap, err := e.saves.Load(name)
	if err != nil {
		return err
	}
	e.store.Restore(snap)
	return nil
}

// Restart resets the store to the state it had immediately after
// engine.New, before the first command ran, and clears the turn
// counter and location-tracking state the turn pipeline keeps between
// calls to Run.
func (e *Engine) Restart() {
	e.store.Restore(e.initialSnapshot)
	e.turn = 0
	e.hasLastLocation = false
}

// Config returns the blueprint tunables (title, release, introduction
// text, max score) this engine was built from.
func (e *Engine) Config() *blueprint.Config { return e.cfg }

// RegisterEvent attaches fn as the handler for a change.ScheduleEvent
// side effect carrying this label (spec.md §4.3's "the turn pipeline
// dispatches se.Label directly once the current batch commits"). A
// label with no registered function is silently ignored when it
// fires — a game that emits ScheduleEvent without registering a
// handler for its label has a blueprint bug, not a runtime one worth
// crashing over.
func (e *Engine) RegisterEvent(label string, fn EventFunc) {
	e.events[label] = fn
}
