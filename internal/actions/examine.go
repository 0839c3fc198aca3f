// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package actions

import (
	"fmt"
	"strings"

	"github.com/gnusto-if/gnusto/internal/dispatch"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/messenger"
)

// ExamineHandler prints an item's long description.
type ExamineHandler struct{ dispatch.BaseHandler }

func (ExamineHandler) SyntaxRules() []dispatch.SyntaxRule {
	return []dispatch.SyntaxRule{{Verb: ids.VerbID("examine"), RequireDirectObject: true}}
}

func (ExamineHandler) Synonyms() []string { return []string{"x", "inspect"} }

func (ExamineHandler) RequiresLight() bool { return true }

func (ExamineHandler) Validate(ctx *dispatch.ActionContext) error {
	item, ok := firstItem(ctx.Command.DirectObjects)
	if !ok {
		return dispatch.NewResponse(dispatch.ItemNotAccessible)
	}
	if !ctx.Engine.Resolver().Item(item).IsVisible() {
		return dispatch.NewItemResponse(dispatch.ItemNotAccessible, item)
	}
	return nil
}

func (ExamineHandler) Process(ctx *dispatch.ActionContext) (dispatch.ActionResult, error) {
	item, _ := firstItem(ctx.Command.DirectObjects)
	ip := ctx.Engine.Resolver().Item(item)

	text := ip.Description()
	if text == "" {
		text = ctx.Text(messenger.NothingSpecial)
	}
	if ip.HasFlag(ids.FlagContainer) {
		var b strings.Builder
		b.WriteString(text)
		if !ip.HasFlag(ids.FlagOpen) && ip.HasFlag(ids.FlagOpenable) {
			b.WriteString("\nIt is closed.")
		} else if contents := ip.Contents(); len(contents) > 0 {
			b.WriteString("\nIt contains:")
			for _, id := range contents {
				fmt.Fprintf(&b, "\n  %s", ctx.Engine.Resolver().Item(id).Name())
			}
		}
		text = b.String()
	}
	return dispatch.NewActionResult(text, nil, nil)
}
