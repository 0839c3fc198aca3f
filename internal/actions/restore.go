// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package actions

import (
	"errors"

	"github.com/gnusto-if/gnusto/cerrs"
	"github.com/gnusto-if/gnusto/internal/dispatch"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/messenger"
)

// RestoreHandler replaces the running game's state with whatever was
// last saved to the host's save store (spec.md §4.10 step 5).
type RestoreHandler struct{ dispatch.BaseHandler }

func (RestoreHandler) SyntaxRules() []dispatch.SyntaxRule {
	return []dispatch.SyntaxRule{{Verb: ids.VerbID("restore")}}
}

func (RestoreHandler) Synonyms() []string { return nil }

func (RestoreHandler) Process(ctx *dispatch.ActionContext) (dispatch.ActionResult, error) {
	err := ctx.Engine.LoadSlot(defaultSaveSlot)
	switch {
	case err == nil:
		return dispatch.NewActionResult(ctx.Text(messenger.Restored), nil, nil)
	case errors.Is(err, cerrs.ErrNotFound):
		return dispatch.NewActionResult(ctx.Text(messenger.NothingToRestore), nil, nil)
	default:
		return dispatch.NewActionResult(ctx.Text(messenger.SaveUnavailable), nil, nil)
	}
}
