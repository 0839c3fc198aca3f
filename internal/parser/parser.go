// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parser

import (
	"sort"
	"strings"

	"github.com/gnusto-if/gnusto/internal/change"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/lexer"
	"github.com/gnusto-if/gnusto/internal/statevalue"
	"github.com/gnusto-if/gnusto/internal/vocabulary"
	"github.com/gnusto-if/gnusto/internal/worldstore"
)

// articles are pure noise words: they carry no grammatical role and
// are dropped before structuring begins.
var articles = map[string]bool{"the": true, "a": true, "an": true}

// quantifiers flip Command.IsAll but otherwise do not bind to
// anything themselves.
var quantifiers = map[string]bool{"all": true, "any": true}

// particleWords are prepositions that may also attach directly to a
// verb as a particle ("pick up", "put down", "take off"), as opposed
// to introducing an indirect object. A token is only read as a
// particle, not a preposition, when at least one more token follows
// it — a lone trailing particle is ambiguous with a direction and is
// left to the direction check instead.
var particleWords = map[string]bool{"up": true, "down": true, "off": true, "on": true, "in": true, "out": true}

// Parser transforms raw input lines into Commands against a fixed
// Vocabulary. Its pronoun bindings (spec.md §4.5 step 6) are not kept
// parser-side: they are written through store as player state
// (change.AttrPronounBind) so they survive the change log and
// snapshot/restore (spec.md §3, §6.3 invariants 7/10) the same as any
// other state a turn produces.
type Parser struct {
	vocab *vocabulary.Vocabulary
	store *worldstore.Store
}

// New builds a Parser over the given vocabulary, binding its pronoun
// state to store.
func New(vocab *vocabulary.Vocabulary, store *worldstore.Store) *Parser {
	return &Parser{vocab: vocab, store: store}
}

// Parse tokenizes input, splits it into sub-commands on "and", and
// parses each one against scope. turn stamps any pronoun binding this
// parse produces, the same turn number the caller is about to apply
// the resulting commands' own StateChanges under. Returns every
// sub-command's Command in order, or the first ParseError
// encountered.
func (p *Parser) Parse(turn int, input string, scope Scope) ([]Command, *ParseError) {
	lines := lexer.SplitOnAnd(lexer.Tokenize(input))
	if len(lines) == 0 {
		return nil, NewGarbled("empty input")
	}
	cmds := make([]Command, 0, len(lines))
	for _, tokens := range lines {
		cmd, err := p.parseOne(tokens, scope, input, turn)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

func (p *Parser) parseOne(tokens []lexer.Token, scope Scope, raw string, turn int) (Command, *ParseError) {
	tokens, isAll := stripNoise(tokens)
	if len(tokens) == 0 {
		return Command{}, NewGarbled("empty command")
	}

	first := tokens[0]
	verbID, isVerb := p.vocab.VerbID(first.Text)
	if !isVerb {
		if d, ok := p.vocab.Direction(first.Text); ok && len(tokens) == 1 {
			return Command{Verb: VerbGo, Direction: d, HasDirection: true, RawInput: raw}, nil
		}
		if !p.vocab.IsKnown(first.Text) {
			return Command{}, NewUnknownWord(first.Text)
		}
		return Command{}, NewGarbled("expected a verb")
	}

	rest := tokens[1:]
	cmd := Command{Verb: verbID, IsAll: isAll, RawInput: raw}

	if len(rest) == 0 {
		return cmd, nil
	}
	if len(rest) == 1 {
		if d, ok := p.vocab.Direction(rest[0].Text); ok {
			cmd.Direction = d
			cmd.HasDirection = true
			return cmd, nil
		}
	}

	if particleWords[rest[0].Text] && p.vocab.ClassesOf(rest[0].Text).Has(vocabulary.ClassPreposition) && len(rest) >= 2 {
		cmd.Particle = rest[0].Text
		cmd.HasParticle = true
		rest = rest[1:]
	}

	prepIdx := -1
	for i, t := range rest {
		if p.vocab.ClassesOf(t.Text).Has(vocabulary.ClassPreposition) {
			prepIdx = i
			break
		}
	}

	var directTokens, indirectTokens []lexer.Token
	if prepIdx >= 0 {
		directTokens = rest[:prepIdx]
		cmd.Preposition = rest[prepIdx].Text
		cmd.HasPreposition = true
		indirectTokens = rest[prepIdx+1:]
		if len(indirectTokens) == 0 {
			return Command{}, NewGarbled("missing object after preposition " + cmd.Preposition)
		}
	} else {
		directTokens = rest
	}

	directRefs, err := p.bindPhrase(directTokens, scope, isAll)
	if err != nil {
		return Command{}, err
	}
	indirectRefs, err := p.bindPhrase(indirectTokens, scope, false)
	if err != nil {
		return Command{}, err
	}

	cmd.DirectObjects = directRefs
	cmd.IndirectObjects = indirectRefs

	p.remember(turn, directRefs)
	p.remember(turn, indirectRefs)

	return cmd, nil
}

// stripNoise drops articles, reports whether a quantifier ("all"/
// "any") was present, and drops the quantifier token itself — it is
// not a word any item or location carries.
func stripNoise(tokens []lexer.Token) ([]lexer.Token, bool) {
	out := make([]lexer.Token, 0, len(tokens))
	isAll := false
	for _, t := range tokens {
		if articles[t.Text] {
			continue
		}
		if quantifiers[t.Text] {
			isAll = true
			continue
		}
		out = append(out, t)
	}
	return out, isAll
}

// bindPhrase resolves a noun phrase (adjective* noun, a pronoun, or a
// universal referent word) to the entities it names in scope (spec.md
// §4.5 steps 4-6). An empty phrase resolves to nil unless isAll is
// set, in which case it resolves to every item currently in scope.
func (p *Parser) bindPhrase(tokens []lexer.Token, scope Scope, isAll bool) ([]ObjectRef, *ParseError) {
	if len(tokens) == 0 {
		if isAll {
			return itemRefs(scope.Items()), nil
		}
		return nil, nil
	}

	if len(tokens) == 1 {
		if pr, ok := p.vocab.Pronoun(tokens[0].Text); ok {
			refs, ok := p.resolvePronoun(pr, scope)
			if !ok {
				return nil, NewNothingToReferTo(pr)
			}
			return refs, nil
		}
	}

	words := make([]string, 0, len(tokens))
	for _, t := range tokens {
		words = append(words, t.Text)
	}
	for _, w := range words {
		if !p.vocab.IsKnown(w) {
			return nil, NewUnknownWord(w)
		}
	}

	candidates := p.intersectItemWords(words)
	if len(candidates) == 0 {
		if len(words) == 1 {
			if u, ok := p.vocab.Universal(words[0]); ok {
				return []ObjectRef{UniversalRef(u)}, nil
			}
		}
		return nil, NewDontSeeThat(strings.Join(words, " "))
	}

	var inScope []ids.ItemID
	for id := range candidates {
		if scope.Has(id) {
			inScope = append(inScope, id)
		}
	}
	sort.Slice(inScope, func(i, j int) bool { return inScope[i] < inScope[j] })

	switch {
	case len(inScope) == 0:
		return nil, NewDontSeeThat(strings.Join(words, " "))
	case len(inScope) == 1:
		return []ObjectRef{ItemRef(inScope[0])}, nil
	case isAll:
		return itemRefs(inScope), nil
	default:
		return nil, NewBeMoreSpecific(itemRefs(inScope))
	}
}

func (p *Parser) intersectItemWords(words []string) map[ids.ItemID]bool {
	var result map[ids.ItemID]bool
	for _, w := range words {
		set := p.vocab.ItemsNamedBy(w)
		if set == nil {
			continue
		}
		if result == nil {
			result = make(map[ids.ItemID]bool, len(set))
			for id := range set {
				result[id] = true
			}
			continue
		}
		for id := range result {
			if !set[id] {
				delete(result, id)
			}
		}
	}
	return result
}

func itemRefs(items []ids.ItemID) []ObjectRef {
	refs := make([]ObjectRef, len(items))
	for i, id := range items {
		refs[i] = ItemRef(id)
	}
	return refs
}

// resolvePronoun answers spec.md §4.5 step 6: pronouns resolve to the
// most recently bound referent set. "it"/"him"/"her" share a single
// slot since static item data carries no gender; "them" tracks the
// most recent multi-item bind separately. A binding decays only on
// overwrite, never on a timer (SPEC_FULL.md §D.4): an old binding
// whose item has since left scope is retained in memory but resolves
// to NothingToReferTo here rather than being silently dropped.
func (p *Parser) resolvePronoun(pr ids.Pronoun, scope Scope) ([]ObjectRef, bool) {
	v, ok := p.store.PronounBinding(pronounSlot(pr))
	if !ok {
		return nil, false
	}
	var bound []ids.ItemID
	switch v.Kind {
	case statevalue.KindItemID:
		bound = []ids.ItemID{v.ItemIDVal}
	case statevalue.KindItemIDSet:
		bound = v.SortedItemIDs()
	default:
		return nil, false
	}
	var stillInScope []ids.ItemID
	for _, id := range bound {
		if scope.Has(id) {
			stillInScope = append(stillInScope, id)
		}
	}
	if len(stillInScope) == 0 {
		return nil, false
	}
	return itemRefs(stillInScope), true
}

// pronounSlot collapses "it"/"him"/"her" onto the one gender-agnostic
// binding slot static item data carries no gender for; "them" keeps
// its own slot.
func pronounSlot(pr ids.Pronoun) ids.Pronoun {
	if pr == ids.PronounThem {
		return ids.PronounThem
	}
	return ids.PronounIt
}

// remember writes the most recently bound referent set through store
// as a player StateChange, so it is recorded in the change log and
// carried by Snapshot/Restore like any other player state.
func (p *Parser) remember(turn int, refs []ObjectRef) {
	var items []ids.ItemID
	for _, r := range refs {
		if r.Kind == ObjectItem {
			items = append(items, r.Item)
		}
	}
	if len(items) == 0 {
		return
	}
	var slot ids.Pronoun
	var value statevalue.StateValue
	if len(items) == 1 {
		slot = ids.PronounIt
		value = statevalue.ItemIDValue(items[0])
	} else {
		slot = ids.PronounThem
		value = statevalue.ItemIDSet(items...)
	}
	_, _ = p.store.Apply(turn, ids.PlayerEntity(), change.PronounBind(slot), value, change.Payload{})
}
