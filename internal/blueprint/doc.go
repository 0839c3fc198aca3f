// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package blueprint is the engine's startup configuration object
// (spec.md §6.2): static game content, every registration table the
// running engine consults, and the small set of tunables a game may
// override from a JSON file.
package blueprint
