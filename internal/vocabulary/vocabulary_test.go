// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package vocabulary_test

import (
	"testing"

	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/vocabulary"
	"github.com/gnusto-if/gnusto/internal/worldstore"
)

func buildTestVocabulary() *vocabulary.Vocabulary {
	lamp := worldstore.ItemStatic{ID: ids.ItemID("lamp"), Name: "brass lamp", Adjectives: []string{"brass"}}
	room := worldstore.LocationStatic{ID: ids.LocationID("attic"), Name: "attic"}
	verbs := []vocabulary.VerbDecl{
		{ID: ids.VerbID("take"), Synonyms: []string{"get", "grab"}},
		{ID: ids.VerbID("light"), Synonyms: []string{}},
	}
	return vocabulary.Build([]worldstore.ItemStatic{lamp}, []worldstore.LocationStatic{room}, verbs)
}

func TestVerbSynonymResolves(t *testing.T) {
	v := buildTestVocabulary()
	id, ok := v.VerbID("grab")
	if !ok || id != ids.VerbID("take") {
		t.Errorf("VerbID(grab) = %v, %v; want take, true", id, ok)
	}
}

func TestAmbiguousWordHasMultipleClasses(t *testing.T) {
	v := buildTestVocabulary()
	classes := v.ClassesOf("light")
	if !classes.Has(vocabulary.ClassVerb) {
		t.Errorf("light should classify as a verb")
	}
}

func TestItemNounAndAdjectiveResolve(t *testing.T) {
	v := buildTestVocabulary()
	classes := v.ClassesOf("lamp")
	if !classes.Has(vocabulary.ClassNoun) {
		t.Errorf("lamp should classify as a noun")
	}
	if len(v.ItemsNamedBy("lamp")) != 1 {
		t.Errorf("expected exactly one item named by 'lamp'")
	}
	if !v.ClassesOf("brass").Has(vocabulary.ClassAdjective) {
		t.Errorf("brass should classify as an adjective")
	}
}

func TestDirectionAbbreviationResolves(t *testing.T) {
	v := buildTestVocabulary()
	if _, ok := v.Direction("n"); !ok {
		t.Errorf("'n' should resolve as a direction")
	}
}

func TestPrepositionAndMetaTokensClassify(t *testing.T) {
	v := buildTestVocabulary()
	if !v.ClassesOf("in").Has(vocabulary.ClassPreposition) {
		t.Errorf("'in' should classify as a preposition")
	}
	if !v.ClassesOf("all").Has(vocabulary.ClassMeta) {
		t.Errorf("'all' should classify as a meta token")
	}
}

func TestUnknownWordIsNotKnown(t *testing.T) {
	v := buildTestVocabulary()
	if v.IsKnown("xyzzy_unregistered") {
		t.Errorf("an unregistered word should not be known")
	}
}
