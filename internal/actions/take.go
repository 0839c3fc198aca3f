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

// TakeHandler moves an item from wherever it is into the player's
// inventory.
type TakeHandler struct{ dispatch.BaseHandler }

func (TakeHandler) SyntaxRules() []dispatch.SyntaxRule {
	return []dispatch.SyntaxRule{{Verb: ids.VerbID("take"), RequireDirectObject: true, AllowAll: true}}
}

func (TakeHandler) Synonyms() []string { return []string{"get", "grab"} }

func (TakeHandler) RequiresLight() bool { return true }

// Validate only runs the strict single-item check; a "take all"
// command is validated permissively, item by item, in Process, so
// one untakable item in the room doesn't abort the whole command.
func (TakeHandler) Validate(ctx *dispatch.ActionContext) error {
	if len(ctx.Command.DirectObjects) != 1 {
		return nil
	}
	item, ok := firstItem(ctx.Command.DirectObjects)
	if !ok {
		return nil
	}
	return validateTakeItem(ctx, item)
}

func validateTakeItem(ctx *dispatch.ActionContext, item ids.ItemID) error {
	r := ctx.Engine.Resolver()
	ip := r.Item(item)
	if ip.Parent().Kind == ids.ParentPlayer {
		return dispatch.NewPrerequisiteNotMet("You already have that.")
	}
	if !ip.IsReachable() {
		if ip.IsVisible() {
			return dispatch.NewItemResponse(dispatch.ContainerClosed, item)
		}
		return dispatch.NewItemResponse(dispatch.ItemNotAccessible, item)
	}
	if !ip.HasFlag(ids.FlagTakable) {
		return dispatch.NewItemResponse(dispatch.ItemNotTakable, item)
	}
	if limit := r.Player().InventoryLimit(); limit > 0 && playerLoad(r)+ip.Size() > limit {
		return dispatch.NewItemResponse(dispatch.PlayerCannotCarryMore, item)
	}
	return nil
}

func (TakeHandler) Process(ctx *dispatch.ActionContext) (dispatch.ActionResult, error) {
	r := ctx.Engine.Resolver()
	var changes []worldstore.PendingChange
	var lines []string
	for _, obj := range ctx.Command.DirectObjects {
		if obj.Kind != parser.ObjectItem {
			continue
		}
		item := obj.Item
		if err := validateTakeItem(ctx, item); err != nil {
			lines = append(lines, fmt.Sprintf("%s: %s", r.Item(item).Name(), refusalText(ctx, err)))
			continue
		}
		changes = append(changes, worldstore.PendingChange{
			Target:    ids.ItemEntity(item),
			Attribute: change.ItemParent(),
			NewValue:  statevalue.ParentEntity(ids.PlayerRef()),
		})
		lines = append(lines, ctx.Text(messenger.Taken))
	}
	if len(lines) == 0 {
		return dispatch.Yielded, nil
	}
	return dispatch.NewActionResult(strings.Join(lines, "\n"), changes, nil)
}
