// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package direction defines the closed set of compass and relative
// directions a location's exits are keyed by, and that the vocabulary
// recognizes as bare movement commands ("north", "n", "up", ...).
package direction
