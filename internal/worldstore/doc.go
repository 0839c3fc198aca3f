// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package worldstore is the authoritative, indexed storage of the
// world's mutable state, and the sole writer to it. It combines what
// spec.md describes as two components — the World Store (§4.1) and
// the State-Change Engine (§4.3) — into one package because the
// latter's contract requires overlay mutation to be exclusive to it;
// Go has no cross-package "friend" visibility, so the only way to make
// set_overlay callable only by Apply is to keep both behind the same
// package boundary and leave the setter unexported.
//
// Static item/location definitions are loaded once at construction and
// never change. Everything else — the overlay, the player's mutable
// fields (seeded from PlayerInit), the global bag, active fuses and
// daemons, and the change log — starts empty or seeded and changes
// only through Apply/ApplyAll, or wholesale through Restore.
package worldstore
