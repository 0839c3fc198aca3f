// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package hooks implements the before/after event-hook registry
// spec.md §4.7 describes: hooks attached to an entity id, filtered by
// verb, invoked in a fixed order around the selected action handler.
package hooks
