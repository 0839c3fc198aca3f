// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package vocabulary builds and queries the lexicon the parser
// classifies tokens against: item ids/name words/adjectives/synonyms, location
// names, directions, handler-declared verbs, a fixed preposition set,
// pronouns, universals, and meta tokens. It is built once at blueprint
// construction and is immutable afterward.
package vocabulary
