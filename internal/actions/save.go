// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package actions

import (
	"github.com/gnusto-if/gnusto/internal/dispatch"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/messenger"
)

// defaultSaveSlot is the only slot save/restore commands can name:
// command syntax binds direct objects to in-world items and
// universals (spec.md §4.5), never arbitrary free-text filenames.
const defaultSaveSlot = "default"

// SaveHandler persists the running game's state to the host's save
// store (spec.md §4.10 step 5). It has no direct object: there is
// exactly one slot a player command can name.
type SaveHandler struct{ dispatch.BaseHandler }

func (SaveHandler) SyntaxRules() []dispatch.SyntaxRule {
	return []dispatch.SyntaxRule{{Verb: ids.VerbID("save")}}
}

func (SaveHandler) Synonyms() []string { return nil }

func (SaveHandler) Process(ctx *dispatch.ActionContext) (dispatch.ActionResult, error) {
	if err := ctx.Engine.SaveSlot(defaultSaveSlot); err != nil {
		return dispatch.NewActionResult(ctx.Text(messenger.SaveUnavailable), nil, nil)
	}
	return dispatch.NewActionResult(ctx.Text(messenger.Saved), nil, nil)
}
