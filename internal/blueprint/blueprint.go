// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package blueprint

import (
	"fmt"

	"github.com/gnusto-if/gnusto/cerrs"
	"github.com/gnusto-if/gnusto/internal/change"
	"github.com/gnusto-if/gnusto/internal/dispatch"
	"github.com/gnusto-if/gnusto/internal/enginelog"
	"github.com/gnusto-if/gnusto/internal/hooks"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/messenger"
	"github.com/gnusto-if/gnusto/internal/metrics"
	"github.com/gnusto-if/gnusto/internal/proxy"
	"github.com/gnusto-if/gnusto/internal/timesystem"
	"github.com/gnusto-if/gnusto/internal/vocabulary"
	"github.com/gnusto-if/gnusto/internal/worldstore"
)

// computeHandlerReg defers a compute-handler registration until Build
// constructs the resolver it attaches to.
type computeHandlerReg struct {
	entity ids.EntityID
	attr   change.AttributeKey
	fn     proxy.ComputeHandler
}

// validatorReg defers an entity-scoped validator registration.
type validatorReg struct {
	entity ids.EntityID
	attr   change.AttributeKey
	fn     worldstore.Validator
}

// attrValidatorReg defers an attribute-kind fallback validator.
type attrValidatorReg struct {
	kind change.AttributeKind_e
	fn   worldstore.Validator
}

// Blueprint is the engine's startup value object (spec.md §6.2): the
// game's static content plus every registration table the engine
// consults at runtime. A Blueprint is built once via New and its
// registration methods, then frozen by a call to Build — after which
// registration tables are never mutated again (spec.md §5's
// shared-resource policy).
type Blueprint struct {
	*Config

	Items     []worldstore.ItemStatic
	Locations []worldstore.LocationStatic

	Handlers *dispatch.Registry
	Hooks    *hooks.Registry
	Time     *timesystem.Registry
	Messenger *messenger.Messenger
	Logger    *enginelog.Logger
	Metrics   *metrics.Recorder

	computeHandlers []computeHandlerReg
	validators      []validatorReg
	attrValidators  []attrValidatorReg
}

// New builds an empty Blueprint over cfg, with every registry
// initialized and a default messenger and logger in place. A game
// calls the Register* methods to populate it before Build.
func New(cfg *Config) *Blueprint {
	if cfg == nil {
		cfg = Default()
	}
	return &Blueprint{
		Config:    cfg,
		Handlers:  dispatch.NewRegistry(),
		Hooks:     hooks.NewRegistry(),
		Time:      timesystem.NewRegistry(),
		Messenger: messenger.New(),
		Logger:    enginelog.New(cfg.DebugFlags.Parser || cfg.DebugFlags.Dispatch || cfg.DebugFlags.TimeSystem),
		Metrics:   metrics.NewRecorder(nil),
	}
}

// SetMetrics replaces the Blueprint's Recorder, typically with one
// built against a *prometheus.Registry the host exposes on a
// /metrics endpoint. Passing nil is valid and makes every subsequent
// Recorder call a no-op.
func (b *Blueprint) SetMetrics(r *metrics.Recorder) {
	b.Metrics = r
}

// RegisterHandler appends h to the action-handler registry.
func (b *Blueprint) RegisterHandler(h dispatch.ActionHandler) {
	b.Handlers.Register(h)
}

// RegisterComputeHandler queues a compute handler to be installed on
// the resolver Build constructs.
func (b *Blueprint) RegisterComputeHandler(entity ids.EntityID, attr change.AttributeKey, fn proxy.ComputeHandler) {
	b.computeHandlers = append(b.computeHandlers, computeHandlerReg{entity: entity, attr: attr, fn: fn})
}

// RegisterValidator queues an entity-scoped validator to be installed
// on the store Build constructs.
func (b *Blueprint) RegisterValidator(entity ids.EntityID, attr change.AttributeKey, fn worldstore.Validator) {
	b.validators = append(b.validators, validatorReg{entity: entity, attr: attr, fn: fn})
}

// RegisterAttributeValidator queues an attribute-kind fallback
// validator.
func (b *Blueprint) RegisterAttributeValidator(kind change.AttributeKind_e, fn worldstore.Validator) {
	b.attrValidators = append(b.attrValidators, attrValidatorReg{kind: kind, fn: fn})
}

// RegisterFuse associates a Fuse id with its firing function.
func (b *Blueprint) RegisterFuse(id ids.FuseID, fn timesystem.FuseFunc) {
	b.Time.RegisterFuse(id, fn)
}

// RegisterDaemon associates a Daemon id with its frequency and
// invocation function.
func (b *Blueprint) RegisterDaemon(id ids.DaemonID, frequency int, fn timesystem.DaemonFunc) {
	b.Time.RegisterDaemon(id, frequency, fn)
}

// Runtime is everything Build assembles from a Blueprint: the
// authoritative store, the read-side resolver layered over it, and
// the lexicon the parser classifies words against.
type Runtime struct {
	Store     *worldstore.Store
	Resolver  *proxy.Resolver
	Vocabulary *vocabulary.Vocabulary
}

// Build constructs a Store seeded with the Blueprint's static content
// and player start, a Resolver over it with every queued compute
// handler installed, and a Vocabulary built from the static content
// and every registered handler's verbs. It is the one place a
// Blueprint's deferred registrations are actually applied.
func (b *Blueprint) Build() (*Runtime, error) {
	if b.StartLocation == "" {
		return nil, fmt.Errorf("blueprint: %w: no start location set", cerrs.ErrBlueprintInvalid)
	}
	player := worldstore.PlayerInit{Location: b.startLocationID()}

	store := worldstore.New(b.Items, b.Locations, player)
	for _, v := range b.validators {
		store.RegisterValidator(v.entity, v.attr, v.fn)
	}
	for _, v := range b.attrValidators {
		store.RegisterAttributeValidator(v.kind, v.fn)
	}

	resolver := proxy.New(store)
	for _, c := range b.computeHandlers {
		resolver.RegisterComputeHandler(c.entity, c.attr, c.fn)
	}

	vocab := vocabulary.Build(b.Items, b.Locations, verbDecls(b.Handlers))

	return &Runtime{Store: store, Resolver: resolver, Vocabulary: vocab}, nil
}

// verbDecls derives the parser's vocabulary.VerbDecl list from every
// registered handler: a handler's canonical verb is the literal verb
// of its first syntax rule that declares one, and its declared
// Synonyms() are extra surface words for that same verb. A handler
// with no literal-verb rule (a pure generic/catch-all handler) has no
// canonical verb of its own and contributes nothing here — its
// synonyms are only reachable through another handler's canonical
// verb matching generically (dispatch.Registry.Select's 100-point
// path).
func verbDecls(reg *dispatch.Registry) []vocabulary.VerbDecl {
	var out []vocabulary.VerbDecl
	for _, h := range reg.Handlers() {
		for _, rule := range h.SyntaxRules() {
			if rule.Verb != "" {
				out = append(out, vocabulary.VerbDecl{ID: rule.Verb, Synonyms: h.Synonyms()})
				break
			}
		}
	}
	return out
}
