// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package messenger is the engine's only source of player-visible
// narrative text (spec.md §4.9): a catalog mapping semantic message
// ids to format strings, replaceable per game via a YAML override
// file. No handler or hook ever hard-codes a string shown to a
// player; they all call through a Messenger.
package messenger
