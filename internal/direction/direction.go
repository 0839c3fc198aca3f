// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package direction

import (
	"encoding/json"
	"fmt"
)

// Direction_e is an enum for the direction a location's exit leads, or
// that a player types as a bare movement command.
type Direction_e int

const (
	Unknown Direction_e = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	Up
	Down
	In
	Out
)

const (
	NumDirections = int(Out) + 1
)

// Directions is a helper for iterating over the directions.
var Directions = []Direction_e{
	North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest,
	Up, Down, In, Out,
}

// Opposite returns the reverse of a direction, used when a location
// description implies a return path ("the door you came through").
// Up/Down and In/Out are their own natural opposites; Unknown maps to
// itself.
func (d Direction_e) Opposite() Direction_e {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case NorthEast:
		return SouthWest
	case SouthWest:
		return NorthEast
	case NorthWest:
		return SouthEast
	case SouthEast:
		return NorthWest
	case Up:
		return Down
	case Down:
		return Up
	case In:
		return Out
	case Out:
		return In
	default:
		return Unknown
	}
}

// MarshalJSON implements the json.Marshaler interface.
func (d Direction_e) MarshalJSON() ([]byte, error) {
	return json.Marshal(EnumToString[d])
}

// MarshalText implements the encoding.TextMarshaler interface.
// This is needed for marshalling the enum as map keys.
//
// Note that this is called by the json package, unlike the UnmarshalText function.
func (d Direction_e) MarshalText() (text []byte, err error) {
	return []byte(EnumToString[d]), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Direction_e) UnmarshalJSON(data []byte) error {
	var s string
	var ok bool
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	} else if *d, ok = StringToEnum[s]; !ok {
		return fmt.Errorf("invalid Direction %q", s)
	}
	return nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// This is needed for unmarshalling the enum as map keys.
//
// Note that this is never called; it just changes the code path in UnmarshalJSON.
func (d Direction_e) UnmarshalText(text []byte) error {
	panic("!")
}

// String implements the fmt.Stringer interface.
func (d Direction_e) String() string {
	if str, ok := EnumToString[d]; ok {
		return str
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

var (
	// EnumToString is a helper map for marshalling the enum and for
	// printing exit lists in location descriptions.
	EnumToString = map[Direction_e]string{
		Unknown:   "?",
		North:     "north",
		NorthEast: "northeast",
		East:      "east",
		SouthEast: "southeast",
		South:     "south",
		SouthWest: "southwest",
		West:      "west",
		NorthWest: "northwest",
		Up:        "up",
		Down:      "down",
		In:        "in",
		Out:       "out",
	}
	// StringToEnum is a helper map for unmarshalling the enum and for
	// classifying player input tokens during vocabulary lookup.
	StringToEnum = map[string]Direction_e{
		"?":         Unknown,
		"north":     North,
		"n":         North,
		"northeast": NorthEast,
		"ne":        NorthEast,
		"east":      East,
		"e":         East,
		"southeast": SouthEast,
		"se":        SouthEast,
		"south":     South,
		"s":         South,
		"southwest": SouthWest,
		"sw":        SouthWest,
		"west":      West,
		"w":         West,
		"northwest": NorthWest,
		"nw":        NorthWest,
		"up":        Up,
		"u":         Up,
		"down":      Down,
		"d":         Down,
		"in":        In,
		"out":       Out,
	}
)
