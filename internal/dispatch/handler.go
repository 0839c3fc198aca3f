// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package dispatch

import (
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/messenger"
	"github.com/gnusto-if/gnusto/internal/parser"
	"github.com/gnusto-if/gnusto/internal/proxy"
	"github.com/gnusto-if/gnusto/internal/rng"
	"github.com/gnusto-if/gnusto/internal/worldstore"
)

// SyntaxRule describes one shape dispatch will try to match a Command
// against: a literal verb (empty means "match generically via the
// handler's declared Synonyms"), and the positional slots spec.md
// §4.5 step 3 names (direct object, indirect object, particle,
// preposition). AllowAll permits, but does not require, the command's
// IsAll flag.
type SyntaxRule struct {
	Verb                  ids.VerbID
	RequireDirectObject   bool
	RequireIndirectObject bool
	Particle              string
	Preposition           string
	AllowAll              bool
}

// EngineView is the minimum read access a handler or hook needs from
// the running engine. It is satisfied by *engine.Engine without this
// package importing it, avoiding an import cycle (engine depends on
// dispatch, not the reverse).
type EngineView interface {
	Resolver() *proxy.Resolver
	RNG() *rng.Source
	Turn() int
	Messenger() *messenger.Messenger

	// Snapshot and Restore back the save/restore/restart handlers
	// (spec.md §4.10 step 5): a deep copy of the store's mutable state,
	// and replacing it wholesale, the same pair worldstore.Store itself
	// exposes for a host's own save system.
	Snapshot() worldstore.Snapshot
	Restore(snap worldstore.Snapshot)

	// SaveSlot and LoadSlot persist/recall a Snapshot through whatever
	// save store the host configured; cerrs.ErrNoSaveStore if it
	// didn't configure one.
	SaveSlot(name string) error
	LoadSlot(name string) error

	// Restart resets the store to the state it had immediately after
	// engine.New, before the first command ran.
	Restart()
}

// ActionContext is passed to every stage of a handler's lifecycle and
// to every event hook (spec.md §4.6, §4.7). Text is a shorthand for
// Engine.Messenger().Text(MessengerNamespace, key, args...), the form
// every handler actually calls.
type ActionContext struct {
	Engine             EngineView
	Command            parser.Command
	MessengerNamespace string
}

// Text resolves a narrative message through the engine's messenger,
// preferring this handler's namespace-specific override.
func (ctx *ActionContext) Text(key messenger.Key, args ...any) string {
	return ctx.Engine.Messenger().Text(ctx.MessengerNamespace, key, args...)
}

// ActionHandler is the contract every handler implements. Validate
// and PostProcess have no-op defaults via BaseHandler — spec.md §9's
// "protocol with default methods" becomes an embeddable base struct,
// Go's idiom for the same thing.
type ActionHandler interface {
	SyntaxRules() []SyntaxRule
	Synonyms() []string
	RequiresLight() bool
	Validate(ctx *ActionContext) error
	Process(ctx *ActionContext) (ActionResult, error)
	PostProcess(ctx *ActionContext, result ActionResult) ActionResult
}

// BaseHandler supplies the default Validate/PostProcess/RequiresLight
// behavior; concrete handlers embed it and override only what they
// need to.
type BaseHandler struct{}

func (BaseHandler) RequiresLight() bool { return false }

func (BaseHandler) Validate(ctx *ActionContext) error { return nil }

func (BaseHandler) PostProcess(ctx *ActionContext, result ActionResult) ActionResult {
	return result
}
