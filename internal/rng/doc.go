// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package rng provides the engine's single source of randomness: a
// seedable generator so a blueprint run (and its tests) can be
// reproduced bit-for-bit from a recorded seed, with a high-entropy
// fallback for unseeded play.
package rng
