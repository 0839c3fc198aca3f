// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package actions

import (
	"github.com/gnusto-if/gnusto/internal/dispatch"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/messenger"
)

// WaitHandler lets a turn elapse with no other effect; the pipeline
// ticks fuses and daemons the same as for any other command (spec.md
// §4.10 step 5: "wait advances time with no command changes").
type WaitHandler struct{ dispatch.BaseHandler }

func (WaitHandler) SyntaxRules() []dispatch.SyntaxRule {
	return []dispatch.SyntaxRule{{Verb: ids.VerbID("wait")}}
}

func (WaitHandler) Synonyms() []string { return []string{"z"} }

func (WaitHandler) Process(ctx *dispatch.ActionContext) (dispatch.ActionResult, error) {
	return dispatch.NewActionResult(ctx.Text(messenger.TimePasses), nil, nil)
}
