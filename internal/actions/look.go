// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package actions

import (
	"fmt"
	"strings"

	"github.com/gnusto-if/gnusto/internal/dispatch"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/messenger"
)

// LookHandler redescribes the player's current location. Per
// invariant 9 it never produces a StateChange.
type LookHandler struct{ dispatch.BaseHandler }

func (LookHandler) SyntaxRules() []dispatch.SyntaxRule {
	return []dispatch.SyntaxRule{{Verb: ids.VerbID("look")}}
}

func (LookHandler) Synonyms() []string { return []string{"l"} }

func (LookHandler) Process(ctx *dispatch.ActionContext) (dispatch.ActionResult, error) {
	r := ctx.Engine.Resolver()
	loc := r.Location(r.Player().Location())
	if !loc.IsLit() {
		return dispatch.NewActionResult(ctx.Text(messenger.RoomIsDark), nil, nil)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s", loc.Name(), loc.Description())
	if items := loc.Contents(); len(items) > 0 {
		b.WriteString("\nYou can see:")
		for _, id := range items {
			b.WriteString("\n  " + r.Item(id).Name())
		}
	}
	return dispatch.NewActionResult(b.String(), nil, nil)
}
