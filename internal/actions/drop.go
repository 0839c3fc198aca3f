// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package actions

import (
	"fmt"
	"strings"

	"github.com/gnusto-if/gnusto/internal/change"
	"github.com/gnusto-if/gnusto/internal/dispatch"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/messenger"
	"github.com/gnusto-if/gnusto/internal/parser"
	"github.com/gnusto-if/gnusto/internal/statevalue"
	"github.com/gnusto-if/gnusto/internal/worldstore"
)

// DropHandler moves an item out of the player's inventory and into
// the current location.
type DropHandler struct{ dispatch.BaseHandler }

func (DropHandler) SyntaxRules() []dispatch.SyntaxRule {
	return []dispatch.SyntaxRule{{Verb: ids.VerbID("drop"), RequireDirectObject: true, AllowAll: true}}
}

func (DropHandler) Synonyms() []string { return []string{"discard"} }

func (DropHandler) RequiresLight() bool { return true }

func (DropHandler) Validate(ctx *dispatch.ActionContext) error {
	if len(ctx.Command.DirectObjects) != 1 {
		return nil
	}
	item, ok := firstItem(ctx.Command.DirectObjects)
	if !ok {
		return nil
	}
	return validateDropItem(ctx, item)
}

func validateDropItem(ctx *dispatch.ActionContext, item ids.ItemID) error {
	r := ctx.Engine.Resolver()
	if r.Item(item).Parent().Kind != ids.ParentPlayer {
		return dispatch.NewItemResponse(dispatch.NotHeld, item)
	}
	return nil
}

func (DropHandler) Process(ctx *dispatch.ActionContext) (dispatch.ActionResult, error) {
	r := ctx.Engine.Resolver()
	loc := r.Player().Location()
	var changes []worldstore.PendingChange
	var lines []string
	for _, obj := range ctx.Command.DirectObjects {
		if obj.Kind != parser.ObjectItem {
			continue
		}
		item := obj.Item
		if err := validateDropItem(ctx, item); err != nil {
			lines = append(lines, fmt.Sprintf("%s: %s", r.Item(item).Name(), refusalText(ctx, err)))
			continue
		}
		changes = append(changes, worldstore.PendingChange{
			Target:    ids.ItemEntity(item),
			Attribute: change.ItemParent(),
			NewValue:  statevalue.ParentEntity(ids.LocationRef(loc)),
		})
		lines = append(lines, ctx.Text(messenger.Dropped))
	}
	if len(lines) == 0 {
		return dispatch.Yielded, nil
	}
	return dispatch.NewActionResult(strings.Join(lines, "\n"), changes, nil)
}
