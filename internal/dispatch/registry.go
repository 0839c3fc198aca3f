// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package dispatch

import (
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/parser"
)

// Registry holds every registered handler in registration order —
// the order a Blueprint appended them — which is also the tie-break
// of last resort (SPEC_FULL.md §C: "registration order" means
// Blueprint handler-list append order, not map iteration).
type Registry struct {
	handlers []ActionHandler
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry { return &Registry{} }

// Register appends h to the registry. Order of calls is significant.
func (r *Registry) Register(h ActionHandler) { r.handlers = append(r.handlers, h) }

// Handlers returns every registered handler in registration order.
func (r *Registry) Handlers() []ActionHandler { return r.handlers }

type candidate struct {
	handler     ActionHandler
	score       int
	specificity int
	order       int
}

func (c candidate) beats(o candidate) bool {
	if c.score != o.score {
		return c.score > o.score
	}
	if c.specificity != o.specificity {
		return c.specificity > o.specificity
	}
	return c.order < o.order
}

// Select scores every registered handler against cmd (spec.md §4.6)
// and returns the highest-scoring one together with its score. A nil
// handler and score 0 mean no handler scored above 0.
func (r *Registry) Select(cmd parser.Command) (ActionHandler, int) {
	var best *candidate
	for i, h := range r.handlers {
		score, specificity := bestRuleScore(h, cmd)
		if score <= 0 {
			continue
		}
		if len(h.SyntaxRules()) > 0 {
			score += 5
		}
		cand := candidate{handler: h, score: score, specificity: specificity, order: i}
		if best == nil || cand.beats(*best) {
			best = &cand
		}
	}
	if best == nil {
		return nil, 0
	}
	return best.handler, best.score
}

func bestRuleScore(h ActionHandler, cmd parser.Command) (score, specificity int) {
	for _, rule := range h.SyntaxRules() {
		s, spec := scoreRule(h, rule, cmd)
		if s > score || (s == score && spec > specificity) {
			score, specificity = s, spec
		}
	}
	return score, specificity
}

// scoreRule implements the per-rule part of spec.md §4.6's scoring
// table. It returns 0, 0 when the rule does not match cmd's structure
// at all.
func scoreRule(h ActionHandler, rule SyntaxRule, cmd parser.Command) (score, specificity int) {
	literalVerb := rule.Verb != ""
	if literalVerb {
		if rule.Verb != cmd.Verb {
			return 0, 0
		}
	} else if !verbIn(h.Synonyms(), cmd.Verb) {
		return 0, 0
	}

	if rule.RequireDirectObject && len(cmd.DirectObjects) == 0 {
		return 0, 0
	}
	if rule.RequireIndirectObject && len(cmd.IndirectObjects) == 0 {
		return 0, 0
	}
	if rule.Particle != "" && (!cmd.HasParticle || cmd.Particle != rule.Particle) {
		return 0, 0
	}
	if rule.Preposition != "" && (!cmd.HasPreposition || cmd.Preposition != rule.Preposition) {
		return 0, 0
	}

	if literalVerb {
		score = 200
		specificity++
	} else {
		score = 100
	}
	if rule.RequireDirectObject {
		score += 10
	}
	if rule.RequireIndirectObject {
		score += 10
	}
	if rule.Particle != "" {
		score += 20
		specificity++
	}
	if rule.Preposition != "" {
		score += 20
		specificity++
	}
	return score, specificity
}

func verbIn(synonyms []string, verb ids.VerbID) bool {
	for _, s := range synonyms {
		if ids.VerbID(s) == verb {
			return true
		}
	}
	return false
}
