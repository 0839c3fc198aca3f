// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package actions

import (
	"github.com/gnusto-if/gnusto/internal/dispatch"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/parser"
	"github.com/gnusto-if/gnusto/internal/proxy"
)

// firstItem returns the first bound item ObjectRef in refs, if any.
// Verbs that never operate on more than one object (open, close,
// wear, ...) use this; verbs that support "all" (take, drop) walk
// the slice themselves.
func firstItem(refs []parser.ObjectRef) (ids.ItemID, bool) {
	for _, ref := range refs {
		if ref.Kind == parser.ObjectItem {
			return ref.Item, true
		}
	}
	return "", false
}

// playerLoad sums the Size of everything the player is carrying, the
// player-singleton analogue of Resolver.CurrentLoad.
func playerLoad(r *proxy.Resolver) int {
	total := 0
	for _, id := range r.Player().Inventory() {
		total += r.Item(id).Size()
	}
	return total
}

// refusalText resolves a per-item validation failure to player-visible
// prose via ActionResponse.Text, the messenger-backed lookup — never
// err.Error(), which is debug text (spec.md §4.9). A "take all"/"drop
// all" validates items one at a time inside Process instead of through
// the validate-hook path dispatchHandler normally resolves, so it needs
// its own call into the same lookup.
func refusalText(ctx *dispatch.ActionContext, err error) string {
	if resp, ok := err.(*dispatch.ActionResponse); ok {
		return resp.Text(ctx)
	}
	return err.Error()
}
