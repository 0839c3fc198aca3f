// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package worldstore

import (
	"github.com/gnusto-if/gnusto/internal/change"
	"github.com/gnusto-if/gnusto/internal/direction"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/statevalue"
)

// ItemStatic is an item's immutable definition as authored in a
// blueprint. Mutable facts about an item (its current parent, flags
// that were toggled, attribute overrides) live in the store's overlay,
// never here.
type ItemStatic struct {
	ID          ids.ItemID
	Name        string
	Adjectives  []string
	Synonyms    []string
	Parent      ids.ParentRef
	Flags       map[ids.FlagID]bool
	Size        int
	Capacity    int // 0 means "not a container" / no capacity limit tracked
	Description string
	Properties  map[ids.AttributeID]statevalue.StateValue
}

// LocationStatic is a location's immutable definition.
type LocationStatic struct {
	ID          ids.LocationID
	Name        string
	Description string
	Exits       map[direction.Direction_e]statevalue.Exit
	Flags       map[ids.FlagID]bool
	Properties  map[ids.AttributeID]statevalue.StateValue
}

// PlayerInit seeds the player's mutable fields at construction time.
type PlayerInit struct {
	Location       ids.LocationID
	Score          int
	Moves          int
	InventoryLimit int
	Health         int
	HasHealth      bool
}

// playerState is the player's mutable state. Unlike items and
// locations the player is a singleton, so its fields are tracked
// directly rather than through the generic overlay.
type playerState struct {
	location       ids.LocationID
	score          int
	moves          int
	inventoryLimit int
	health         int
	hasHealth      bool
	pronouns       map[ids.Pronoun]statevalue.StateValue
}

// FuseState is an active fuse's countdown and typed payload.
type FuseState struct {
	Turns   int
	Payload change.Payload
}

// DaemonState is an active daemon's execution bookkeeping and typed
// payload.
type DaemonState struct {
	ExecutionCount    int
	LastExecutionTurn int
	Payload           change.Payload
}
