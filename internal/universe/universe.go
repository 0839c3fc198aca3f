// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package universe defines the always-present abstract referents a
// parser's scope binder recognizes even though no item backs them
// ("look at sky", "feel the water") — spec.md §4.5 step 4's
// "universals...pre-categorized into groups".
package universe

import (
	"encoding/json"
	"fmt"
)

// Universal_t is the closed enum of abstract referents, following the
// same enum+map idiom as direction.Direction_e.
type Universal_t int

const (
	Unknown Universal_t = iota
	Sky
	Sun
	Ground
	Floor
	Walls
	Ceiling
	Water
	Self
)

// Group_e categorizes universals so a handler can match "any sky
// universal" or "any weather-ish surrounding" without enumerating
// every member by name.
type Group_e int

const (
	GroupUnknown Group_e = iota
	GroupSky
	GroupGround
	GroupWeather
	GroupSelf
)

var groupNames = map[Group_e]string{
	GroupUnknown: "unknown",
	GroupSky:     "sky",
	GroupGround:  "ground",
	GroupWeather: "weather",
	GroupSelf:    "self",
}

func (g Group_e) String() string {
	if s, ok := groupNames[g]; ok {
		return s
	}
	return fmt.Sprintf("Group(%d)", int(g))
}

// GroupOf reports which group a universal belongs to.
func GroupOf(u Universal_t) Group_e {
	switch u {
	case Sky, Sun:
		return GroupSky
	case Ground, Floor:
		return GroupGround
	case Walls, Ceiling, Water:
		return GroupWeather
	case Self:
		return GroupSelf
	default:
		return GroupUnknown
	}
}

// MarshalJSON implements json.Marshaler.
func (u Universal_t) MarshalJSON() ([]byte, error) {
	return json.Marshal(EnumToString[u])
}

// UnmarshalJSON implements json.Unmarshaler.
func (u *Universal_t) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, ok := StringToEnum[s]
	if !ok {
		return fmt.Errorf("invalid Universal %q", s)
	}
	*u = v
	return nil
}

func (u Universal_t) String() string {
	if s, ok := EnumToString[u]; ok {
		return s
	}
	return fmt.Sprintf("Universal(%d)", int(u))
}

var (
	EnumToString = map[Universal_t]string{
		Unknown: "?",
		Sky:     "sky",
		Sun:     "sun",
		Ground:  "ground",
		Floor:   "floor",
		Walls:   "walls",
		Ceiling: "ceiling",
		Water:   "water",
		Self:    "self",
	}
	StringToEnum = map[string]Universal_t{
		"?":       Unknown,
		"sky":     Sky,
		"sun":     Sun,
		"ground":  Ground,
		"floor":   Floor,
		"walls":   Walls,
		"wall":    Walls,
		"ceiling": Ceiling,
		"water":   Water,
		"self":    Self,
		"me":      Self,
		"myself":  Self,
	}
	// All lists every universal for vocabulary construction.
	All = []Universal_t{Sky, Sun, Ground, Floor, Walls, Ceiling, Water, Self}
)
