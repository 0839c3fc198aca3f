// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parser

import (
	"github.com/gnusto-if/gnusto/internal/direction"
	"github.com/gnusto-if/gnusto/internal/ids"
)

// VerbGo is the synthetic verb a bare direction word (or abbreviation)
// parses to, e.g. "north" and "go north" both yield this verb with
// HasDirection set.
const VerbGo ids.VerbID = "go"

// Command is the parser's output for one sub-command: a verb plus
// whatever slots the input line's grammar shape filled in (spec.md
// §4.5 step 7).
type Command struct {
	Verb ids.VerbID

	DirectObjects   []ObjectRef
	IndirectObjects []ObjectRef

	Particle       string
	HasParticle    bool
	Preposition    string
	HasPreposition bool

	Direction    direction.Direction_e
	HasDirection bool

	IsAll bool

	RawInput string
}
