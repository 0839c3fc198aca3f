// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package dispatch scores every registered ActionHandler against a
// parsed Command (spec.md §4.6), selects the best match, and defines
// the handler lifecycle (validate -> process -> postProcess) and the
// ActionResponse error family handlers raise from validate.
package dispatch
