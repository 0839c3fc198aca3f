// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package engine assembles a blueprint.Blueprint into a running
// Engine and drives the turn pipeline (spec.md §4.10): read a line,
// parse it into sub-commands, dispatch each through hooks and its
// selected handler, apply the resulting changes under validation, tick
// the time system, and print whatever the turn produced. Engine is
// the dispatch.EngineView every handler and hook sees as ctx.Engine.
package engine
