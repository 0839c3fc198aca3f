// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package statevalue

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/gnusto-if/gnusto/internal/direction"
	"github.com/gnusto-if/gnusto/internal/ids"

	"github.com/gnusto-if/gnusto/cerrs"
)

// Kind_e tags which field of a StateValue is meaningful.
type Kind_e int

const (
	Absent Kind_e = iota
	KindBool
	KindInt
	KindString
	KindItemID
	KindItemIDSet
	KindLocationID
	KindItemPropertySet
	KindLocationPropertySet
	KindLocationExits
	KindParentEntity
	KindStringSet
)

var kindNames = map[Kind_e]string{
	Absent:                  "absent",
	KindBool:                "bool",
	KindInt:                 "int",
	KindString:              "string",
	KindItemID:              "item_id",
	KindItemIDSet:           "item_id_set",
	KindLocationID:          "location_id",
	KindItemPropertySet:     "item_property_set",
	KindLocationPropertySet: "location_property_set",
	KindLocationExits:       "location_exits",
	KindParentEntity:        "parent_entity",
	KindStringSet:           "string_set",
}

func (k Kind_e) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ExitKind_e tags the shape of a single direction's Exit.
type ExitKind_e int

const (
	ExitUnknown ExitKind_e = iota
	ExitOpen
	ExitBlocked
	ExitConditional
)

// Exit describes where (if anywhere) a location's exit in one
// direction leads. An ExitConditional exit resolves to Target when
// the global bag's ConditionGlobal holds a true bool, and otherwise
// behaves like ExitBlocked with BlockedMessage.
type Exit struct {
	Kind            ExitKind_e
	Target          ids.LocationID
	BlockedMessage  string
	ConditionGlobal ids.GlobalID
}

func OpenExit(target ids.LocationID) Exit {
	return Exit{Kind: ExitOpen, Target: target}
}

func BlockedExit(message string) Exit {
	return Exit{Kind: ExitBlocked, BlockedMessage: message}
}

func ConditionalExit(target ids.LocationID, cond ids.GlobalID, blockedMessage string) Exit {
	return Exit{Kind: ExitConditional, Target: target, ConditionGlobal: cond, BlockedMessage: blockedMessage}
}

// StateValue is the closed sum type described in spec.md §3. Only one
// field is meaningful at a time, selected by Kind. Constructors below
// are the only sanctioned way to build a non-absent value so that a
// Kind is never set without its matching payload.
type StateValue struct {
	Kind Kind_e

	BoolVal   bool
	IntVal    int
	StringVal string

	ItemIDVal     ids.ItemID
	ItemIDSetVal  map[ids.ItemID]bool
	LocationIDVal ids.LocationID

	ItemPropertySetVal     map[ids.FlagID]bool
	LocationPropertySetVal map[ids.FlagID]bool

	LocationExitsVal map[direction.Direction_e]Exit

	ParentEntityVal ids.ParentRef

	StringSetVal map[string]bool
}

func Bool(v bool) StateValue     { return StateValue{Kind: KindBool, BoolVal: v} }
func Int(v int) StateValue       { return StateValue{Kind: KindInt, IntVal: v} }
func String(v string) StateValue { return StateValue{Kind: KindString, StringVal: v} }

func ItemIDValue(v ids.ItemID) StateValue { return StateValue{Kind: KindItemID, ItemIDVal: v} }

func ItemIDSet(items ...ids.ItemID) StateValue {
	s := make(map[ids.ItemID]bool, len(items))
	for _, it := range items {
		s[it] = true
	}
	return StateValue{Kind: KindItemIDSet, ItemIDSetVal: s}
}

func LocationIDValue(v ids.LocationID) StateValue {
	return StateValue{Kind: KindLocationID, LocationIDVal: v}
}

func ItemPropertySet(flags ...ids.FlagID) StateValue {
	s := make(map[ids.FlagID]bool, len(flags))
	for _, f := range flags {
		s[f] = true
	}
	return StateValue{Kind: KindItemPropertySet, ItemPropertySetVal: s}
}

func LocationPropertySet(flags ...ids.FlagID) StateValue {
	s := make(map[ids.FlagID]bool, len(flags))
	for _, f := range flags {
		s[f] = true
	}
	return StateValue{Kind: KindLocationPropertySet, LocationPropertySetVal: s}
}

func LocationExits(exits map[direction.Direction_e]Exit) StateValue {
	cp := make(map[direction.Direction_e]Exit, len(exits))
	for d, e := range exits {
		cp[d] = e
	}
	return StateValue{Kind: KindLocationExits, LocationExitsVal: cp}
}

func ParentEntity(p ids.ParentRef) StateValue {
	return StateValue{Kind: KindParentEntity, ParentEntityVal: p}
}

func StringSet(strs ...string) StateValue {
	s := make(map[string]bool, len(strs))
	for _, v := range strs {
		s[v] = true
	}
	return StateValue{Kind: KindStringSet, StringSetVal: s}
}

// IsAbsent reports whether the value carries no data — the engine's
// "absent" sentinel for cross-type queries and missing overlay reads
// (spec.md §3 invariant 8).
func (v StateValue) IsAbsent() bool { return v.Kind == Absent }

// Equal reports deep equality between two StateValues of (presumably)
// the same Kind. Values of differing Kind are never equal, including
// Absent vs. a zero-valued-but-present value of another kind.
func (v StateValue) Equal(o StateValue) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case Absent:
		return true
	case KindBool:
		return v.BoolVal == o.BoolVal
	case KindInt:
		return v.IntVal == o.IntVal
	case KindString:
		return v.StringVal == o.StringVal
	case KindItemID:
		return v.ItemIDVal == o.ItemIDVal
	case KindItemIDSet:
		return equalItemSet(v.ItemIDSetVal, o.ItemIDSetVal)
	case KindLocationID:
		return v.LocationIDVal == o.LocationIDVal
	case KindItemPropertySet:
		return equalFlagSet(v.ItemPropertySetVal, o.ItemPropertySetVal)
	case KindLocationPropertySet:
		return equalFlagSet(v.LocationPropertySetVal, o.LocationPropertySetVal)
	case KindLocationExits:
		return equalExits(v.LocationExitsVal, o.LocationExitsVal)
	case KindParentEntity:
		return v.ParentEntityVal.Equal(o.ParentEntityVal)
	case KindStringSet:
		return equalStringSet(v.StringSetVal, o.StringSetVal)
	default:
		return false
	}
}

func equalItemSet(a, b map[ids.ItemID]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func equalFlagSet(a, b map[ids.FlagID]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func equalStringSet(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func equalExits(a, b map[direction.Direction_e]Exit) bool {
	if len(a) != len(b) {
		return false
	}
	for d, ea := range a {
		eb, ok := b[d]
		if !ok || ea != eb {
			return false
		}
	}
	return true
}

// SortedItemIDs returns the set's members in a stable, sorted order
// for deterministic iteration (contents/children descriptions).
func (v StateValue) SortedItemIDs() []ids.ItemID {
	out := make([]ids.ItemID, 0, len(v.ItemIDSetVal))
	for id := range v.ItemIDSetVal {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// jsonEnvelope is the wire format: a type tag plus a raw payload, so
// restore can type-check a value against what a reader expects before
// decoding it (spec.md §6.3).
type jsonEnvelope struct {
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MarshalJSON implements json.Marshaler, preserving the type tag.
func (v StateValue) MarshalJSON() ([]byte, error) {
	env := jsonEnvelope{Kind: v.Kind.String()}
	var payload any
	switch v.Kind {
	case Absent:
		return json.Marshal(env)
	case KindBool:
		payload = v.BoolVal
	case KindInt:
		payload = v.IntVal
	case KindString:
		payload = v.StringVal
	case KindItemID:
		payload = v.ItemIDVal
	case KindItemIDSet:
		payload = v.SortedItemIDs()
	case KindLocationID:
		payload = v.LocationIDVal
	case KindItemPropertySet:
		payload = sortedFlags(v.ItemPropertySetVal)
	case KindLocationPropertySet:
		payload = sortedFlags(v.LocationPropertySetVal)
	case KindLocationExits:
		payload = v.LocationExitsVal
	case KindParentEntity:
		payload = v.ParentEntityVal
	case KindStringSet:
		payload = sortedStrings(v.StringSetVal)
	default:
		return nil, fmt.Errorf("statevalue: %w: kind %d", cerrs.ErrInvalidStateValue, v.Kind)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	env.Payload = raw
	return json.Marshal(env)
}

// UnmarshalJSON implements json.Unmarshaler, validating the type tag
// before decoding the payload into the matching field.
func (v *StateValue) UnmarshalJSON(data []byte) error {
	var env jsonEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	kind, ok := stringToKind[env.Kind]
	if !ok {
		return fmt.Errorf("statevalue: %w: %q", cerrs.ErrInvalidStateValue, env.Kind)
	}
	*v = StateValue{Kind: kind}
	if kind == Absent {
		return nil
	}
	switch kind {
	case KindBool:
		return json.Unmarshal(env.Payload, &v.BoolVal)
	case KindInt:
		return json.Unmarshal(env.Payload, &v.IntVal)
	case KindString:
		return json.Unmarshal(env.Payload, &v.StringVal)
	case KindItemID:
		return json.Unmarshal(env.Payload, &v.ItemIDVal)
	case KindItemIDSet:
		var items []ids.ItemID
		if err := json.Unmarshal(env.Payload, &items); err != nil {
			return err
		}
		v.ItemIDSetVal = map[ids.ItemID]bool{}
		for _, it := range items {
			v.ItemIDSetVal[it] = true
		}
		return nil
	case KindLocationID:
		return json.Unmarshal(env.Payload, &v.LocationIDVal)
	case KindItemPropertySet:
		var flags []ids.FlagID
		if err := json.Unmarshal(env.Payload, &flags); err != nil {
			return err
		}
		v.ItemPropertySetVal = map[ids.FlagID]bool{}
		for _, f := range flags {
			v.ItemPropertySetVal[f] = true
		}
		return nil
	case KindLocationPropertySet:
		var flags []ids.FlagID
		if err := json.Unmarshal(env.Payload, &flags); err != nil {
			return err
		}
		v.LocationPropertySetVal = map[ids.FlagID]bool{}
		for _, f := range flags {
			v.LocationPropertySetVal[f] = true
		}
		return nil
	case KindLocationExits:
		return json.Unmarshal(env.Payload, &v.LocationExitsVal)
	case KindParentEntity:
		return json.Unmarshal(env.Payload, &v.ParentEntityVal)
	case KindStringSet:
		var strs []string
		if err := json.Unmarshal(env.Payload, &strs); err != nil {
			return err
		}
		v.StringSetVal = map[string]bool{}
		for _, s := range strs {
			v.StringSetVal[s] = true
		}
		return nil
	default:
		return fmt.Errorf("statevalue: %w: kind %d", cerrs.ErrInvalidStateValue, kind)
	}
}

var stringToKind = func() map[string]Kind_e {
	m := make(map[string]Kind_e, len(kindNames))
	for k, s := range kindNames {
		m[s] = k
	}
	return m
}()

func sortedFlags(set map[ids.FlagID]bool) []ids.FlagID {
	out := make([]ids.FlagID, 0, len(set))
	for f := range set {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedStrings(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
