// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package actions

import (
	"github.com/gnusto-if/gnusto/internal/change"
	"github.com/gnusto-if/gnusto/internal/dispatch"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/statevalue"
	"github.com/gnusto-if/gnusto/internal/worldstore"
)

// QuitHandler sets the well-known quit global the turn pipeline's
// end-condition check looks at (spec.md §4.10 step 6); it does not
// stop the engine itself.
type QuitHandler struct{ dispatch.BaseHandler }

func (QuitHandler) SyntaxRules() []dispatch.SyntaxRule {
	return []dispatch.SyntaxRule{{Verb: ids.VerbID("quit")}}
}

func (QuitHandler) Synonyms() []string { return []string{"q"} }

func (QuitHandler) Process(ctx *dispatch.ActionContext) (dispatch.ActionResult, error) {
	pc := worldstore.PendingChange{
		Target:    ids.GlobalEntity(ids.GlobalQuit),
		Attribute: change.GlobalSet(ids.GlobalQuit),
		NewValue:  statevalue.Bool(true),
	}
	return dispatch.NewActionResult("Goodbye.", []worldstore.PendingChange{pc}, nil)
}
