// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package ids defines the opaque, string-backed identifiers that flow
// through every layer of the engine: items, locations, fuses, daemons,
// verbs, flags, globals, attributes, pronouns, and universals. Ids are
// created once at blueprint build time and never synthesized at
// runtime; the engine treats them as comparable, hashable values and
// never inspects their contents.
package ids
