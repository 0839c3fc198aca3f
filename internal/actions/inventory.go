// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package actions

import (
	"strings"

	"github.com/gnusto-if/gnusto/internal/dispatch"
	"github.com/gnusto-if/gnusto/internal/ids"
)

// InventoryHandler lists what the player is carrying. Per invariant 9
// it never produces a StateChange.
type InventoryHandler struct{ dispatch.BaseHandler }

func (InventoryHandler) SyntaxRules() []dispatch.SyntaxRule {
	return []dispatch.SyntaxRule{{Verb: ids.VerbID("inventory")}}
}

func (InventoryHandler) Synonyms() []string { return []string{"i", "inv"} }

func (InventoryHandler) Process(ctx *dispatch.ActionContext) (dispatch.ActionResult, error) {
	r := ctx.Engine.Resolver()
	items := r.Player().Inventory()
	if len(items) == 0 {
		return dispatch.NewActionResult("You are carrying nothing.", nil, nil)
	}
	var b strings.Builder
	b.WriteString("You are carrying:")
	for _, id := range items {
		b.WriteString("\n  " + r.Item(id).Name())
	}
	return dispatch.NewActionResult(b.String(), nil, nil)
}
