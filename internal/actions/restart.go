// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package actions

import (
	"github.com/gnusto-if/gnusto/internal/dispatch"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/messenger"
)

// RestartHandler resets the running game back to the state it had the
// instant it started, before the first command ran (spec.md §4.10
// step 5).
type RestartHandler struct{ dispatch.BaseHandler }

func (RestartHandler) SyntaxRules() []dispatch.SyntaxRule {
	return []dispatch.SyntaxRule{{Verb: ids.VerbID("restart")}}
}

func (RestartHandler) Synonyms() []string { return nil }

func (RestartHandler) Process(ctx *dispatch.ActionContext) (dispatch.ActionResult, error) {
	ctx.Engine.Restart()
	return dispatch.NewActionResult(ctx.Text(messenger.Restarted), nil, nil)
}
