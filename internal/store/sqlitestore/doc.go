// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package sqlitestore is an optional persistence adapter for a
// worldstore.Snapshot: a single-file sqlite database holding one blob
// per named save slot, adapting the teacher's stores/sqlite CRUD-store
// idiom (CreateStore/OpenStore over database/sql + modernc.org/sqlite)
// to snapshots instead of turn reports. Nothing in the engine depends
// on this package; a host that doesn't need save/restore never imports
// it.
package sqlitestore
