// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package proxy implements the property resolver: read-only facades
// over items, locations, and the player that present "effective"
// properties merging registered compute handlers, the world store's
// overlay, and static definitions, plus the rollups (is_lit,
// is_visible, is_reachable, current_load, ...) action handlers rely
// on. Proxies never expose a mutable reference to the underlying
// store; every write still goes through worldstore.Store.Apply.
package proxy
