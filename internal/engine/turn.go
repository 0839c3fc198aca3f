// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package engine

import (
	"fmt"

	"github.com/gnusto-if/gnusto/cerrs"
	"github.com/gnusto-if/gnusto/internal/actions"
	"github.com/gnusto-if/gnusto/internal/change"
	"github.com/gnusto-if/gnusto/internal/dispatch"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/ioboundary"
	"github.com/gnusto-if/gnusto/internal/messenger"
	"github.com/gnusto-if/gnusto/internal/parser"
	"github.com/gnusto-if/gnusto/internal/statevalue"
)

// Run drives the turn pipeline (spec.md §4.10) until the I/O boundary
// reaches end of input or an end condition (quit/victory/death) is
// reached, whichever comes first. Only one Run may be active on an
// Engine at a time.
func (e *Engine) Run(io ioboundary.IOBoundary) error {
	if e.running {
		return cerrs.ErrAlreadyRunning
	}
	e.running = true
	defer func() { e.running = false }()

	e.printIntro(io)
	for {
		e.printLocationHeader(io)
		io.Flush()

		line, ok := io.ReadLine()
		if !ok {
			return nil
		}

		cmds, perr := e.parse.Parse(e.turn, line, parser.BuildScope(e.resolver))
		if perr != nil {
			e.metrics.IncParseErrors()
			io.Print(perr.Error() + "\n")
			io.Flush()
			continue
		}

		stop := false
		for _, cmd := range cmds {
			e.turn++
			if e.runCommand(io, cmd) {
				stop = true
				break
			}
		}
		io.Flush()
		if stop {
			return nil
		}
	}
}

func (e *Engine) printIntro(io ioboundary.IOBoundary) {
	if e.cfg == nil {
		return
	}
	if e.cfg.Title != "" {
		io.Print(e.cfg.Title + "\n")
	}
	if e.cfg.Release != "" {
		io.Print(e.cfg.Release + "\n")
	}
	if e.cfg.Introduction != "" {
		io.Print(e.cfg.Introduction + "\n")
	}
}

// printLocationHeader realizes spec.md §4.10 step 1: a location the
// player has never seen before prints its full look-style
// description and is marked visited; a location already visited
// prints only its brief name. Nothing prints at all if the player's
// location hasn't changed since the header was last shown, since
// re-announcing an unchanged room on every turn would be noise the
// player didn't ask for.
func (e *Engine) printLocationHeader(io ioboundary.IOBoundary) {
	loc := e.resolver.Player().Location()
	if e.hasLastLocation && loc == e.lastLocation {
		return
	}
	e.lastLocation = loc
	e.hasLastLocation = true

	if e.resolver.Location(loc).HasFlag(ids.FlagVisited) {
		io.Print(e.resolver.Location(loc).Name() + "\n")
		return
	}

	ctx := &dispatch.ActionContext{Engine: e, Command: parser.Command{Verb: ids.VerbID("look")}, MessengerNamespace: "look"}
	result, err := actions.LookHandler{}.Process(ctx)
	if err != nil {
		e.metrics.IncActionErrors()
		e.logger.InternalEngineError(e.turn, "look", err)
		return
	}
	io.Print(result.Message + "\n")
	if _, err := e.store.Apply(e.turn, ids.LocationEntity(loc), change.SetFlag(ids.FlagVisited), statevalue.Bool(true), change.Payload{}); err != nil {
		e.metrics.IncActionErrors()
		e.logger.InternalEngineError(e.turn, "markVisited", err)
	}
}

// runCommand dispatches one parsed sub-command through hooks and its
// selected handler, applies every resulting change, ticks time, and
// reports whether the game has reached an end condition.
func (e *Engine) runCommand(io ioboundary.IOBoundary, cmd parser.Command) bool {
	e.metrics.IncTurnsProcessed()
	ctx := &dispatch.ActionContext{Engine: e, Command: cmd, MessengerNamespace: string(cmd.Verb)}

	handler, score := e.handlers.Select(cmd)
	if handler == nil || score <= 0 {
		io.Print(ctx.Text(messenger.DontUnderstand) + "\n")
		return e.checkEndConditions()
	}

	entities := e.scopeEntities()
	nonAdmin := false

	result, err := e.dispatchHandler(ctx, handler, entities)
	if err != nil {
		e.metrics.IncActionErrors()
		e.logger.InternalEngineError(e.turn, handlerName(handler), err)
		io.Print(ctx.Text(messenger.InternalEngineError) + "\n")
		return e.checkEndConditions()
	}
	if e.applyResult(io, ctx, result) {
		nonAdmin = true
	}

	afterResults, err := e.hooks.RunAfter(ctx, afterEntities(entities))
	if err != nil {
		e.metrics.IncActionErrors()
		e.logger.InternalEngineError(e.turn, "afterHook", err)
	}
	for i := range afterResults {
		if e.applyResult(io, ctx, &afterResults[i]) {
			nonAdmin = true
		}
	}

	if nonAdmin {
		e.bumpMoves()
	}

	tick, err := e.time.Tick(e.turn, e.store, e, e.logger)
	if err != nil {
		e.metrics.IncActionErrors()
		e.logger.InternalEngineError(e.turn, "timesystem", err)
	}
	e.metrics.AddFusesFired(tick.FusesFired)
	e.metrics.AddDaemonsFired(tick.DaemonsFired)
	for _, m := range tick.Messages {
		io.Print(m + "\n")
	}

	return e.checkEndConditions()
}

// dispatchHandler runs the before-hook chain, the light gate, and the
// selected handler's validate/process/postProcess lifecycle,
// returning the ActionResult to apply. A before-hook that
// short-circuits skips validate/process/postProcess entirely (spec.md
// §4.7).
func (e *Engine) dispatchHandler(ctx *dispatch.ActionContext, handler dispatch.ActionHandler, entities []ids.EntityID) (*dispatch.ActionResult, error) {
	before, err := e.hooks.RunBefore(ctx, beforeEntities(entities))
	if err != nil {
		return nil, err
	}
	if before != nil {
		return before, nil
	}

	if handler.RequiresLight() {
		loc := e.resolver.Player().Location()
		if !e.resolver.Location(loc).IsLit() {
			return &dispatch.ActionResult{Message: ctx.Text(messenger.RoomIsDark), HasMessage: true}, nil
		}
	}

	if verr := handler.Validate(ctx); verr != nil {
		resp, ok := verr.(*dispatch.ActionResponse)
		if !ok {
			return nil, verr
		}
		return &dispatch.ActionResult{Message: e.responseText(ctx, resp), HasMessage: true}, nil
	}

	result, err := handler.Process(ctx)
	if err != nil {
		return nil, err
	}
	result = handler.PostProcess(ctx, result)
	return &result, nil
}

// responseText resolves a validate-time refusal to player-visible
// text via the response's own Text method, logging the one kind
// (InternalEngineError) that also belongs in the engine log.
func (e *Engine) responseText(ctx *dispatch.ActionContext, resp *dispatch.ActionResponse) string {
	if resp.Kind == dispatch.InternalEngineError {
		e.logger.InternalEngineError(e.turn, "validate", resp)
	}
	return resp.Text(ctx)
}

// applyResult commits one ActionResult's changes, translates and
// applies its side effects, dispatches any scheduled events they
// trigger, and prints its message. It reports whether the result
// counts as a non-administrative turn for move-counting purposes
// (SPEC_FULL.md §D.2): a result carrying at least one change or side
// effect counts, even if applying them fails; a bare message never
// does.
func (e *Engine) applyResult(io ioboundary.IOBoundary, ctx *dispatch.ActionContext, result *dispatch.ActionResult) bool {
	if result == nil || result.Yield {
		return false
	}
	if result.HasMessage && result.Message != "" {
		io.Print(result.Message + "\n")
	}

	nonAdmin := len(result.Changes) > 0 || len(result.SideEffects) > 0

	if _, err := e.store.ApplyAll(e.turn, result.Changes); err != nil {
		e.metrics.IncActionErrors()
		e.logger.InternalEngineError(e.turn, "applyChanges", err)
		return nonAdmin
	}

	for _, se := range result.SideEffects {
		pending, err := e.store.Translate(se)
		if err != nil {
			e.metrics.IncActionErrors()
			e.logger.InternalEngineError(e.turn, "translateSideEffect", err)
			continue
		}
		if _, err := e.store.ApplyAll(e.turn, pending); err != nil {
			e.metrics.IncActionErrors()
			e.logger.InternalEngineError(e.turn, "applySideEffect", err)
			continue
		}
		if se.Kind == change.ScheduleEvent {
			e.dispatchEvent(io, ctx, se.Label)
		}
	}
	return nonAdmin
}

// dispatchEvent runs the registered EventFunc for label, if any, and
// applies whatever ActionResult it returns the same way a handler's
// own result is applied.
func (e *Engine) dispatchEvent(io ioboundary.IOBoundary, ctx *dispatch.ActionContext, label string) {
	fn, ok := e.events[label]
	if !ok {
		return
	}
	result, err := fn(e, label)
	if err != nil {
		e.metrics.IncActionErrors()
		e.logger.InternalEngineError(e.turn, "event:"+label, err)
		return
	}
	e.applyResult(io, ctx, result)
}

// bumpMoves increments player.moves by one StateChange, the turn
// pipeline's own contribution that individual handlers no longer make
// themselves (SPEC_FULL.md §D.2).
func (e *Engine) bumpMoves() {
	moves := e.resolver.Player().Moves() + 1
	if _, err := e.store.Apply(e.turn, ids.PlayerEntity(), change.PlayerMoves(), statevalue.Int(moves), change.Payload{}); err != nil {
		e.metrics.IncActionErrors()
		e.logger.InternalEngineError(e.turn, "bumpMoves", err)
	}
}

// checkEndConditions realizes spec.md §4.10 step 6: quit, victory, or
// death each end the run. The triggering handler or hook already
// printed its own final message as part of its ActionResult (e.g.
// QuitHandler's "Goodbye."); this only stops the loop once one of the
// three globals is set.
func (e *Engine) checkEndConditions() bool {
	return e.store.Global(ids.GlobalQuit).BoolVal ||
		e.store.Global(ids.GlobalVictory).BoolVal ||
		e.store.Global(ids.GlobalDeath).BoolVal
}

// scopeEntities returns the current location's entity id followed by
// every item in the player's scope, in scope order.
func (e *Engine) scopeEntities() []ids.EntityID {
	scope := parser.BuildScope(e.resolver)
	out := make([]ids.EntityID, 0, len(scope.Items())+1)
	out = append(out, ids.LocationEntity(e.resolver.Player().Location()))
	for _, id := range scope.Items() {
		out = append(out, ids.ItemEntity(id))
	}
	return out
}

// beforeEntities visits the current location first, then every item
// in scope (spec.md §4.7 steps 1-2). It does not filter out items
// with no registered hook — hooks.Registry.RunBefore is already a
// no-op for an entity with nothing registered, so there is nothing
// to gain by pre-filtering here.
func beforeEntities(entities []ids.EntityID) []ids.EntityID {
	return entities
}

// afterEntities reverses the order to items-then-location, per
// spec.md §4.7's fixed hook sequence (steps 4 and 5).
func afterEntities(entities []ids.EntityID) []ids.EntityID {
	if len(entities) == 0 {
		return entities
	}
	out := make([]ids.EntityID, 0, len(entities))
	out = append(out, entities[1:]...)
	out = append(out, entities[0])
	return out
}

func handlerName(h dispatch.ActionHandler) string {
	return fmt.Sprintf("%T", h)
}
