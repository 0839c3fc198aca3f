// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package actions

import (
	"fmt"

	"github.com/gnusto-if/gnusto/internal/dispatch"
	"github.com/gnusto-if/gnusto/internal/ids"
)

// ScoreHandler reports the player's current score and move count.
type ScoreHandler struct{ dispatch.BaseHandler }

func (ScoreHandler) SyntaxRules() []dispatch.SyntaxRule {
	return []dispatch.SyntaxRule{{Verb: ids.VerbID("score")}}
}

func (ScoreHandler) Synonyms() []string { return nil }

func (ScoreHandler) Process(ctx *dispatch.ActionContext) (dispatch.ActionResult, error) {
	p := ctx.Engine.Resolver().Player()
	msg := fmt.Sprintf("Your score is %d in %d move(s).", p.Score(), p.Moves())
	return dispatch.NewActionResult(msg, nil, nil)
}
