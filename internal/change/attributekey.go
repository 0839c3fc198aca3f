// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package change

import (
	"encoding/json"
	"fmt"

	"github.com/gnusto-if/gnusto/cerrs"
	"github.com/gnusto-if/gnusto/internal/ids"
)

// AttributeKind_e is the closed enum of mutable entity properties a
// StateChange may target.
type AttributeKind_e int

const (
	AttrUnknown AttributeKind_e = iota
	AttrItemParent
	AttrItemName
	AttrItemAdjectives
	AttrItemSynonyms
	AttrItemSize
	AttrItemCapacity
	AttrItemDescription
	AttrLocationDescription
	AttrLocationExits
	AttrLocationName
	AttrItemAttribute
	AttrLocationAttribute
	AttrPlayerScore
	AttrPlayerMoves
	AttrPlayerLocation
	AttrPlayerInventoryLimit
	AttrPlayerHealth
	AttrSetFlag
	AttrClearFlag
	AttrGlobalSet
	AttrPronounBind
	AttrAddActiveFuse
	AttrUpdateFuseTurns
	AttrRemoveActiveFuse
	AttrAddActiveDaemon
	AttrUpdateDaemonState
	AttrRemoveActiveDaemon
)

var attributeKindNames = map[AttributeKind_e]string{
	AttrUnknown:              "unknown",
	AttrItemParent:           "item_parent",
	AttrItemName:             "item_name",
	AttrItemAdjectives:       "item_adjectives",
	AttrItemSynonyms:         "item_synonyms",
	AttrItemSize:             "item_size",
	AttrItemCapacity:         "item_capacity",
	AttrItemDescription:      "item_description",
	AttrLocationDescription:  "location_description",
	AttrLocationExits:        "location_exits",
	AttrLocationName:         "location_name",
	AttrItemAttribute:        "item_attribute",
	AttrLocationAttribute:    "location_attribute",
	AttrPlayerScore:          "player_score",
	AttrPlayerMoves:          "player_moves",
	AttrPlayerLocation:       "player_location",
	AttrPlayerInventoryLimit: "player_inventory_limit",
	AttrPlayerHealth:         "player_health",
	AttrSetFlag:              "set_flag",
	AttrClearFlag:            "clear_flag",
	AttrGlobalSet:            "global_set",
	AttrPronounBind:          "pronoun_bind",
	AttrAddActiveFuse:        "add_active_fuse",
	AttrUpdateFuseTurns:      "update_fuse_turns",
	AttrRemoveActiveFuse:     "remove_active_fuse",
	AttrAddActiveDaemon:      "add_active_daemon",
	AttrUpdateDaemonState:    "update_daemon_state",
	AttrRemoveActiveDaemon:   "remove_active_daemon",
}

func (k AttributeKind_e) String() string {
	if s, ok := attributeKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("AttributeKind(%d)", int(k))
}

// AttributeKey names the specific property a StateChange mutates.
// Kinds that carry a payload (itemAttribute, setFlag, globalSet,
// pronounBind, the fuse/daemon admin kinds) populate the matching
// field; all others leave every payload field zero.
type AttributeKey struct {
	Kind AttributeKind_e

	AttributeID  ids.AttributeID // itemAttribute, locationAttribute
	FlagID       ids.FlagID      // setFlag, clearFlag
	GlobalID     ids.GlobalID    // globalSet
	Pronoun      ids.Pronoun     // pronounBind
	FuseID       ids.FuseID      // addActiveFuse, updateFuseTurns, removeActiveFuse
	DaemonID     ids.DaemonID    // addActiveDaemon, updateDaemonState, removeActiveDaemon
	InitialTurns int             // addActiveFuse
}

func ItemParent() AttributeKey          { return AttributeKey{Kind: AttrItemParent} }
func ItemName() AttributeKey            { return AttributeKey{Kind: AttrItemName} }
func ItemAdjectives() AttributeKey      { return AttributeKey{Kind: AttrItemAdjectives} }
func ItemSynonyms() AttributeKey        { return AttributeKey{Kind: AttrItemSynonyms} }
func ItemSize() AttributeKey            { return AttributeKey{Kind: AttrItemSize} }
func ItemCapacity() AttributeKey        { return AttributeKey{Kind: AttrItemCapacity} }
func ItemDescription() AttributeKey     { return AttributeKey{Kind: AttrItemDescription} }
func LocationDescription() AttributeKey { return AttributeKey{Kind: AttrLocationDescription} }
func LocationExits() AttributeKey       { return AttributeKey{Kind: AttrLocationExits} }
func LocationName() AttributeKey        { return AttributeKey{Kind: AttrLocationName} }
func PlayerScore() AttributeKey         { return AttributeKey{Kind: AttrPlayerScore} }
func PlayerMoves() AttributeKey         { return AttributeKey{Kind: AttrPlayerMoves} }
func PlayerLocation() AttributeKey      { return AttributeKey{Kind: AttrPlayerLocation} }
func PlayerInventoryLimit() AttributeKey {
	return AttributeKey{Kind: AttrPlayerInventoryLimit}
}
func PlayerHealth() AttributeKey { return AttributeKey{Kind: AttrPlayerHealth} }

func ItemAttribute(id ids.AttributeID) AttributeKey {
	return AttributeKey{Kind: AttrItemAttribute, AttributeID: id}
}

func LocationAttribute(id ids.AttributeID) AttributeKey {
	return AttributeKey{Kind: AttrLocationAttribute, AttributeID: id}
}

func SetFlag(id ids.FlagID) AttributeKey {
	return AttributeKey{Kind: AttrSetFlag, FlagID: id}
}

func ClearFlag(id ids.FlagID) AttributeKey {
	return AttributeKey{Kind: AttrClearFlag, FlagID: id}
}

func GlobalSet(id ids.GlobalID) AttributeKey {
	return AttributeKey{Kind: AttrGlobalSet, GlobalID: id}
}

func PronounBind(p ids.Pronoun) AttributeKey {
	return AttributeKey{Kind: AttrPronounBind, Pronoun: p}
}

func AddActiveFuse(id ids.FuseID, initialTurns int) AttributeKey {
	return AttributeKey{Kind: AttrAddActiveFuse, FuseID: id, InitialTurns: initialTurns}
}

func UpdateFuseTurns(id ids.FuseID) AttributeKey {
	return AttributeKey{Kind: AttrUpdateFuseTurns, FuseID: id}
}

func RemoveActiveFuse(id ids.FuseID) AttributeKey {
	return AttributeKey{Kind: AttrRemoveActiveFuse, FuseID: id}
}

func AddActiveDaemon(id ids.DaemonID) AttributeKey {
	return AttributeKey{Kind: AttrAddActiveDaemon, DaemonID: id}
}

func UpdateDaemonState(id ids.DaemonID) AttributeKey {
	return AttributeKey{Kind: AttrUpdateDaemonState, DaemonID: id}
}

func RemoveActiveDaemon(id ids.DaemonID) AttributeKey {
	return AttributeKey{Kind: AttrRemoveActiveDaemon, DaemonID: id}
}

func (k AttributeKey) String() string {
	switch k.Kind {
	case AttrItemAttribute, AttrLocationAttribute:
		return fmt.Sprintf("%s(%s)", k.Kind, k.AttributeID)
	case AttrSetFlag, AttrClearFlag:
		return fmt.Sprintf("%s(%s)", k.Kind, k.FlagID)
	case AttrGlobalSet:
		return fmt.Sprintf("%s(%s)", k.Kind, k.GlobalID)
	case AttrPronounBind:
		return fmt.Sprintf("%s(%s)", k.Kind, k.Pronoun)
	case AttrAddActiveFuse:
		return fmt.Sprintf("%s(%s, %d)", k.Kind, k.FuseID, k.InitialTurns)
	case AttrUpdateFuseTurns, AttrRemoveActiveFuse:
		return fmt.Sprintf("%s(%s)", k.Kind, k.FuseID)
	case AttrAddActiveDaemon, AttrUpdateDaemonState, AttrRemoveActiveDaemon:
		return fmt.Sprintf("%s(%s)", k.Kind, k.DaemonID)
	default:
		return k.Kind.String()
	}
}

// Equal reports whether two AttributeKeys name the same property.
func (k AttributeKey) Equal(o AttributeKey) bool {
	if k.Kind != o.Kind {
		return false
	}
	switch k.Kind {
	case AttrItemAttribute, AttrLocationAttribute:
		return k.AttributeID == o.AttributeID
	case AttrSetFlag, AttrClearFlag:
		return k.FlagID == o.FlagID
	case AttrGlobalSet:
		return k.GlobalID == o.GlobalID
	case AttrPronounBind:
		return k.Pronoun == o.Pronoun
	case AttrAddActiveFuse:
		return k.FuseID == o.FuseID && k.InitialTurns == o.InitialTurns
	case AttrUpdateFuseTurns, AttrRemoveActiveFuse:
		return k.FuseID == o.FuseID
	case AttrAddActiveDaemon, AttrUpdateDaemonState, AttrRemoveActiveDaemon:
		return k.DaemonID == o.DaemonID
	default:
		return true
	}
}

type attributeKeyJSON struct {
	Kind         string          `json:"kind"`
	AttributeID  ids.AttributeID `json:"attribute_id,omitempty"`
	FlagID       ids.FlagID      `json:"flag_id,omitempty"`
	GlobalID     ids.GlobalID    `json:"global_id,omitempty"`
	Pronoun      ids.Pronoun     `json:"pronoun,omitempty"`
	FuseID       ids.FuseID      `json:"fuse_id,omitempty"`
	DaemonID     ids.DaemonID    `json:"daemon_id,omitempty"`
	InitialTurns int             `json:"initial_turns,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (k AttributeKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(attributeKeyJSON{
		Kind:         k.Kind.String(),
		AttributeID:  k.AttributeID,
		FlagID:       k.FlagID,
		GlobalID:     k.GlobalID,
		Pronoun:      k.Pronoun,
		FuseID:       k.FuseID,
		DaemonID:     k.DaemonID,
		InitialTurns: k.InitialTurns,
	})
}

var stringToAttributeKind = func() map[string]AttributeKind_e {
	m := make(map[string]AttributeKind_e, len(attributeKindNames))
	for k, v := range attributeKindNames {
		m[v] = k
	}
	return m
}()

// UnmarshalJSON implements json.Unmarshaler.
func (k *AttributeKey) UnmarshalJSON(data []byte) error {
	var raw attributeKeyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	kind, ok := stringToAttributeKind[raw.Kind]
	if !ok {
		return fmt.Errorf("change: %w: attribute kind %q", cerrs.ErrUnknownAttributeKey, raw.Kind)
	}
	*k = AttributeKey{
		Kind:         kind,
		AttributeID:  raw.AttributeID,
		FlagID:       raw.FlagID,
		GlobalID:     raw.GlobalID,
		Pronoun:      raw.Pronoun,
		FuseID:       raw.FuseID,
		DaemonID:     raw.DaemonID,
		InitialTurns: raw.InitialTurns,
	}
	return nil
}
