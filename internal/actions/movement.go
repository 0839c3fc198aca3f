// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package actions

import (
	"github.com/gnusto-if/gnusto/internal/change"
	"github.com/gnusto-if/gnusto/internal/dispatch"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/parser"
	"github.com/gnusto-if/gnusto/internal/statevalue"
	"github.com/gnusto-if/gnusto/internal/worldstore"
)

// MovementHandler handles parser.VerbGo, the synthetic verb a bare
// direction word (or "go <direction>") parses to.
type MovementHandler struct{ dispatch.BaseHandler }

func (MovementHandler) SyntaxRules() []dispatch.SyntaxRule {
	return []dispatch.SyntaxRule{{Verb: parser.VerbGo}}
}

func (MovementHandler) Synonyms() []string { return nil }

// resolveExit returns the exit the command's direction leads through
// and whether the current location has an exit in that direction at
// all. It does not judge passability: Validate treats a blocked exit,
// and a conditional exit whose guard global is false, as blocked with
// the exit's own message (spec.md §3's third exit shape).
func resolveExit(ctx *dispatch.ActionContext) (statevalue.Exit, bool) {
	if !ctx.Command.HasDirection {
		return statevalue.Exit{}, false
	}
	r := ctx.Engine.Resolver()
	loc := r.Player().Location()
	for _, e := range r.Location(loc).Exits() {
		if e.Direction == ctx.Command.Direction {
			return e.Exit, true
		}
	}
	return statevalue.Exit{}, false
}

func (MovementHandler) Validate(ctx *dispatch.ActionContext) error {
	exit, ok := resolveExit(ctx)
	if !ok {
		return dispatch.NewDirectionBlocked("")
	}
	switch exit.Kind {
	case statevalue.ExitBlocked:
		return dispatch.NewDirectionBlocked(exit.BlockedMessage)
	case statevalue.ExitConditional:
		if !ctx.Engine.Resolver().Store().Global(exit.ConditionGlobal).BoolVal {
			return dispatch.NewDirectionBlocked(exit.BlockedMessage)
		}
	}
	return nil
}

func (MovementHandler) Process(ctx *dispatch.ActionContext) (dispatch.ActionResult, error) {
	exit, _ := resolveExit(ctx)
	changes := []worldstore.PendingChange{
		{
			Target:    ids.PlayerEntity(),
			Attribute: change.PlayerLocation(),
			NewValue:  statevalue.LocationIDValue(exit.Target),
		},
	}
	return dispatch.NewActionResult("", changes, nil)
}
