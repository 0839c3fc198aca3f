// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package actions implements the engine's built-in verb handlers
// (spec.md §4.6): one dispatch.ActionHandler per core verb. Each
// handler reads world state through the proxy.Resolver a
// dispatch.EngineView exposes and emits worldstore.PendingChange
// batches for the pipeline to apply under validation; none of them
// touch a worldstore.Store directly.
package actions
