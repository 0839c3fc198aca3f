// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package statevalue_test

import (
	"encoding/json"
	"testing"

	"github.com/go-test/deep"

	"github.com/gnusto-if/gnusto/internal/direction"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/statevalue"
)

func TestRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name string
		v    statevalue.StateValue
	}{
		{"bool", statevalue.Bool(true)},
		{"int", statevalue.Int(42)},
		{"string", statevalue.String("brass lantern")},
		{"item_id", statevalue.ItemIDValue(ids.ItemID("lamp"))},
		{"item_id_set", statevalue.ItemIDSet(ids.ItemID("lamp"), ids.ItemID("chest"))},
		{"location_id", statevalue.LocationIDValue(ids.LocationID("attic"))},
		{"item_property_set", statevalue.ItemPropertySet(ids.FlagID("takable"), ids.FlagID("lightSource"))},
		{"location_property_set", statevalue.LocationPropertySet(ids.FlagID("outdoors"))},
		{"location_exits", statevalue.LocationExits(map[direction.Direction_e]statevalue.Exit{
			direction.North: statevalue.OpenExit(ids.LocationID("hall")),
			direction.Down:  statevalue.BlockedExit("The trapdoor is nailed shut."),
		})},
		{"parent_entity_location", statevalue.ParentEntity(ids.LocationRef(ids.LocationID("attic")))},
		{"parent_entity_nowhere", statevalue.ParentEntity(ids.NowhereRef())},
		{"string_set", statevalue.StringSet("brass", "dented")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.v)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			var got statevalue.StateValue
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !tc.v.Equal(got) {
				t.Errorf("round trip not equal: want %+v, got %+v", tc.v, got)
			}
			if got.Kind != tc.v.Kind {
				t.Errorf("type tag lost: want %s, got %s", tc.v.Kind, got.Kind)
			}
		})
	}
}

func TestAbsentIsNotEqualToZeroValue(t *testing.T) {
	absent := statevalue.StateValue{}
	zeroInt := statevalue.Int(0)
	if diff := deep.Equal(absent.Equal(zeroInt), false); diff != nil {
		t.Errorf("absent should never equal a present zero value: %v", diff)
	}
}

func TestItemIDSetEqualityIgnoresOrder(t *testing.T) {
	a := statevalue.ItemIDSet(ids.ItemID("lamp"), ids.ItemID("chest"))
	b := statevalue.ItemIDSet(ids.ItemID("chest"), ids.ItemID("lamp"))
	if !a.Equal(b) {
		t.Errorf("sets with same members in different insertion order should be equal")
	}
}
