// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package vocabulary

import (
	"strings"

	"github.com/gnusto-if/gnusto/internal/direction"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/universe"
	"github.com/gnusto-if/gnusto/internal/worldstore"
)

// WordClass_e is a bitmask: a single word may belong to more than one
// class ("light" classifies as verb, noun, and adjective).
type WordClass_e int

const (
	ClassVerb WordClass_e = 1 << iota
	ClassNoun
	ClassAdjective
	ClassPreposition
	ClassDirection
	ClassPronoun
	ClassMeta
	ClassUniversal
)

// Has reports whether the bitmask includes class.
func (c WordClass_e) Has(class WordClass_e) bool { return c&class != 0 }

// prepositions is the fixed set spec.md §4.4 names.
var prepositions = []string{
	"in", "on", "to", "from", "with", "at", "under", "behind", "about", "through", "up", "down", "off",
}

// metaTokens is the fixed set spec.md §4.4 names.
var metaTokens = []string{"all", "any", "the", "a", "an", "and"}

// pronouns is the fixed set spec.md §4.4 names.
var pronounWords = map[string]ids.Pronoun{
	"it":   ids.PronounIt,
	"them": ids.PronounThem,
	"him":  ids.PronounHim,
	"her":  ids.PronounHer,
}

// VerbDecl is a handler-declared verb and its synonyms, as registered
// by the dispatch table at blueprint-build time.
type VerbDecl struct {
	ID       ids.VerbID
	Synonyms []string
}

// Vocabulary is the immutable lexicon built at startup.
type Vocabulary struct {
	classes      map[string]WordClass_e
	verbSynonyms map[string]ids.VerbID
	directions   map[string]direction.Direction_e
	pronouns     map[string]ids.Pronoun
	universals   map[string]universe.Universal_t
	itemWords    map[string]map[ids.ItemID]bool
}

// Build constructs a Vocabulary from the game's static items,
// locations, and handler-declared verbs. An item is named by its id
// and by each whitespace-separated word of its name (both as nouns),
// by its synonyms (nouns), and by its adjectives.
func Build(items []worldstore.ItemStatic, locations []worldstore.LocationStatic, verbs []VerbDecl) *Vocabulary {
	v := &Vocabulary{
		classes:      make(map[string]WordClass_e),
		verbSynonyms: make(map[string]ids.VerbID),
		directions:   make(map[string]direction.Direction_e),
		pronouns:     make(map[string]ids.Pronoun),
		universals:   make(map[string]universe.Universal_t),
		itemWords:    make(map[string]map[ids.ItemID]bool),
	}

	for _, p := range prepositions {
		v.add(p, ClassPreposition)
	}
	for _, m := range metaTokens {
		v.add(m, ClassMeta)
	}
	for word, pronoun := range pronounWords {
		v.add(word, ClassPronoun)
		v.pronouns[word] = pronoun
	}
	for word, d := range direction.StringToEnum {
		if d == direction.Unknown {
			continue
		}
		v.add(word, ClassDirection)
		v.directions[word] = d
	}
	for word, u := range universe.StringToEnum {
		if u == universe.Unknown {
			continue
		}
		v.add(word, ClassUniversal)
		v.universals[word] = u
	}
	for _, decl := range verbs {
		v.add(strings.ToLower(decl.ID.String()), ClassVerb)
		v.verbSynonyms[strings.ToLower(decl.ID.String())] = decl.ID
		for _, syn := range decl.Synonyms {
			word := strings.ToLower(syn)
			v.add(word, ClassVerb)
			v.verbSynonyms[word] = decl.ID
		}
	}
	for _, it := range items {
		v.addItemWord(strings.ToLower(it.ID.String()), ClassNoun, it.ID)
		for _, word := range strings.Fields(strings.ToLower(it.Name)) {
			v.addItemWord(word, ClassNoun, it.ID)
		}
		for _, adj := range it.Adjectives {
			v.addItemWord(strings.ToLower(adj), ClassAdjective, it.ID)
		}
		for _, syn := range it.Synonyms {
			v.addItemWord(strings.ToLower(syn), ClassNoun, it.ID)
		}
	}
	for _, loc := range locations {
		v.add(strings.ToLower(loc.Name), ClassNoun)
	}
	return v
}

func (v *Vocabulary) add(word string, class WordClass_e) {
	v.classes[word] |= class
}

func (v *Vocabulary) addItemWord(word string, class WordClass_e, id ids.ItemID) {
	v.add(word, class)
	if v.itemWords[word] == nil {
		v.itemWords[word] = make(map[ids.ItemID]bool)
	}
	v.itemWords[word][id] = true
}

// ClassesOf returns the (possibly empty) set of roles word plays.
func (v *Vocabulary) ClassesOf(word string) WordClass_e {
	return v.classes[strings.ToLower(word)]
}

// IsKnown reports whether word classifies as anything at all.
func (v *Vocabulary) IsKnown(word string) bool {
	return v.classes[strings.ToLower(word)] != 0
}

// VerbID resolves a verb token (or synonym) to its canonical id.
func (v *Vocabulary) VerbID(word string) (ids.VerbID, bool) {
	id, ok := v.verbSynonyms[strings.ToLower(word)]
	return id, ok
}

// Direction resolves a direction token (or abbreviation).
func (v *Vocabulary) Direction(word string) (direction.Direction_e, bool) {
	d, ok := v.directions[strings.ToLower(word)]
	return d, ok
}

// Pronoun resolves a pronoun token.
func (v *Vocabulary) Pronoun(word string) (ids.Pronoun, bool) {
	p, ok := v.pronouns[strings.ToLower(word)]
	return p, ok
}

// Universal resolves a universal-referent token.
func (v *Vocabulary) Universal(word string) (universe.Universal_t, bool) {
	u, ok := v.universals[strings.ToLower(word)]
	return u, ok
}

// ItemsNamedBy returns every item whose id, name word, adjective, or
// synonym is word. The parser intersects this across a multi-word noun phrase to
// narrow an ambiguous reference.
func (v *Vocabulary) ItemsNamedBy(word string) map[ids.ItemID]bool {
	return v.itemWords[strings.ToLower(word)]
}
