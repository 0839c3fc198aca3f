// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package timesystem implements spec.md §4.8: per-turn fuse countdown
// and daemon frequency scheduling, with type-tagged payloads and
// double-failure removal.
package timesystem
