// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package worldstore

import (
	"fmt"

	"github.com/gnusto-if/gnusto/cerrs"
	"github.com/gnusto-if/gnusto/internal/change"
	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/statevalue"
)

// canonicalFlagKey normalizes setFlag/clearFlag to a single overlay
// slot per flag id, so "set then clear" and "clear then set" both
// read back the last writer rather than accumulating two entries.
func canonicalFlagKey(id ids.FlagID) change.AttributeKey {
	return change.SetFlag(id)
}

// resolveCurrent returns the effective pre-mutation value for (target,
// attr), whether one exists, and an error if target/attr don't name a
// resolvable entity. Fuse/daemon admin kinds are handled by Apply
// directly and never reach here.
func (s *Store) resolveCurrent(target ids.EntityID, attr change.AttributeKey) (statevalue.StateValue, bool, error) {
	if v, ok := s.GetOverlay(target, normalizedKey(attr)); ok {
		return v, true, nil
	}
	switch attr.Kind {
	case change.AttrItemParent:
		it, err := s.GetItemStatic(target.Item)
		if err != nil {
			return statevalue.StateValue{}, false, err
		}
		return statevalue.ParentEntity(it.Parent), false, nil
	case change.AttrItemName:
		it, err := s.GetItemStatic(target.Item)
		if err != nil {
			return statevalue.StateValue{}, false, err
		}
		return statevalue.String(it.Name), false, nil
	case change.AttrItemAdjectives:
		it, err := s.GetItemStatic(target.Item)
		if err != nil {
			return statevalue.StateValue{}, false, err
		}
		return statevalue.StringSet(it.Adjectives...), false, nil
	case change.AttrItemSynonyms:
		it, err := s.GetItemStatic(target.Item)
		if err != nil {
			return statevalue.StateValue{}, false, err
		}
		return statevalue.StringSet(it.Synonyms...), false, nil
	case change.AttrItemSize:
		it, err := s.GetItemStatic(target.Item)
		if err != nil {
			return statevalue.StateValue{}, false, err
		}
		return statevalue.Int(it.Size), false, nil
	case change.AttrItemCapacity:
		it, err := s.GetItemStatic(target.Item)
		if err != nil {
			return statevalue.StateValue{}, false, err
		}
		return statevalue.Int(it.Capacity), false, nil
	case change.AttrItemDescription:
		it, err := s.GetItemStatic(target.Item)
		if err != nil {
			return statevalue.StateValue{}, false, err
		}
		return statevalue.String(it.Description), false, nil
	case change.AttrLocationDescription:
		loc, err := s.GetLocationStatic(target.Location)
		if err != nil {
			return statevalue.StateValue{}, false, err
		}
		return statevalue.String(loc.Description), false, nil
	case change.AttrLocationExits:
		loc, err := s.GetLocationStatic(target.Location)
		if err != nil {
			return statevalue.StateValue{}, false, err
		}
		return statevalue.LocationExits(loc.Exits), false, nil
	case change.AttrLocationName:
		loc, err := s.GetLocationStatic(target.Location)
		if err != nil {
			return statevalue.StateValue{}, false, err
		}
		return statevalue.String(loc.Name), false, nil
	case change.AttrItemAttribute:
		it, err := s.GetItemStatic(target.Item)
		if err != nil {
			return statevalue.StateValue{}, false, err
		}
		return it.Properties[attr.AttributeID], false, nil
	case change.AttrLocationAttribute:
		loc, err := s.GetLocationStatic(target.Location)
		if err != nil {
			return statevalue.StateValue{}, false, err
		}
		return loc.Properties[attr.AttributeID], false, nil
	case change.AttrPlayerScore:
		return statevalue.Int(s.player.score), false, nil
	case change.AttrPlayerMoves:
		return statevalue.Int(s.player.moves), false, nil
	case change.AttrPlayerLocation:
		return statevalue.LocationIDValue(s.player.location), false, nil
	case change.AttrPlayerInventoryLimit:
		return statevalue.Int(s.player.inventoryLimit), false, nil
	case change.AttrPlayerHealth:
		if !s.player.hasHealth {
			return statevalue.StateValue{}, false, nil
		}
		return statevalue.Int(s.player.health), true, nil
	case change.AttrSetFlag, change.AttrClearFlag:
		switch target.Kind {
		case ids.EntityItem:
			it, err := s.GetItemStatic(target.Item)
			if err != nil {
				return statevalue.StateValue{}, false, err
			}
			return statevalue.Bool(it.Flags[attr.FlagID]), false, nil
		case ids.EntityLocation:
			loc, err := s.GetLocationStatic(target.Location)
			if err != nil {
				return statevalue.StateValue{}, false, err
			}
			return statevalue.Bool(loc.Flags[attr.FlagID]), false, nil
		default:
			return statevalue.StateValue{}, false, fmt.Errorf("worldstore: flags only apply to items and locations, got %s", target)
		}
	case change.AttrGlobalSet:
		v, ok := s.globals[attr.GlobalID]
		return v, ok, nil
	case change.AttrPronounBind:
		v, ok := s.player.pronouns[attr.Pronoun]
		return v, ok, nil
	default:
		return statevalue.StateValue{}, false, fmt.Errorf("worldstore: %w: %s", cerrs.ErrUnknownAttributeKey, attr)
	}
}

// normalizedKey maps an AttributeKey to the overlay slot it actually
// reads/writes, collapsing setFlag/clearFlag of the same flag onto one
// entry.
func normalizedKey(attr change.AttributeKey) change.AttributeKey {
	if attr.Kind == change.AttrSetFlag || attr.Kind == change.AttrClearFlag {
		return canonicalFlagKey(attr.FlagID)
	}
	return attr
}

// Effective is the public read path for resolveCurrent: the overlay-
// then-static value for (target, attr), for any caller (the proxy
// package's compute-handler fallback chain) that needs the store's
// own notion of "effective value" without going through Apply. Unlike
// setOverlay, reading is not restricted to this package.
func (s *Store) Effective(target ids.EntityID, attr change.AttributeKey) (statevalue.StateValue, bool, error) {
	return s.resolveCurrent(target, attr)
}

// runValidator looks up and invokes any validator registered for
// (target, attr), falling back to an attribute-kind-only validator.
// A nil lookup means "no validator installed" — not a rejection.
func (s *Store) runValidator(target ids.EntityID, attr change.AttributeKey, current, proposed statevalue.StateValue) error {
	if fn, ok := s.validators[entityAttrKey{Entity: target, Attr: attr}]; ok {
		return fn(current, proposed)
	}
	if fn, ok := s.attributeFallbacks[attr.Kind]; ok {
		return fn(current, proposed)
	}
	return nil
}

// Apply validates and applies a single mutation, returning the
// recorded StateChange (with OldValue/HasOldValue filled in) on
// success. It is the only path by which the overlay, player fields,
// global bag, or fuse/daemon maps ever change.
func (s *Store) Apply(turn int, target ids.EntityID, attr change.AttributeKey, newValue statevalue.StateValue, payload change.Payload) (change.StateChange, error) {
	switch attr.Kind {
	case change.AttrAddActiveFuse:
		return s.applyAddActiveFuse(turn, attr, payload)
	case change.AttrUpdateFuseTurns:
		return s.applyUpdateFuseTurns(turn, attr, newValue)
	case change.AttrRemoveActiveFuse:
		return s.applyRemoveActiveFuse(turn, attr)
	case change.AttrAddActiveDaemon:
		return s.applyAddActiveDaemon(turn, attr, payload)
	case change.AttrUpdateDaemonState:
		return s.applyUpdateDaemonState(turn, attr, newValue, payload)
	case change.AttrRemoveActiveDaemon:
		return s.applyRemoveActiveDaemon(turn, attr)
	}

	current, hadOld, err := s.resolveCurrent(target, attr)
	if err != nil {
		return change.StateChange{}, err
	}
	if err := s.runValidator(target, attr, current, newValue); err != nil {
		return change.StateChange{}, err
	}

	if attr.Kind == change.AttrItemParent {
		if newValue.Kind != statevalue.KindParentEntity {
			return change.StateChange{}, fmt.Errorf("worldstore: %w: itemParent requires parent_entity", cerrs.ErrInvalidStateValue)
		}
		s.removeChild(current.ParentEntityVal, target.Item)
		s.addChild(newValue.ParentEntityVal, target.Item)
	}

	s.mutate(target, attr, newValue)

	rec := change.StateChange{Turn: turn, Target: target, Attribute: attr, OldValue: current, HasOldValue: hadOld, NewValue: newValue}
	s.changeLog = append(s.changeLog, rec)
	return rec, nil
}

// mutate performs the actual write for every non-structural
// AttributeKind (the fuse/daemon admin kinds are handled by their own
// apply* methods before mutate is ever reached).
func (s *Store) mutate(target ids.EntityID, attr change.AttributeKey, newValue statevalue.StateValue) {
	switch attr.Kind {
	case change.AttrPlayerScore:
		s.player.score = newValue.IntVal
	case change.AttrPlayerMoves:
		s.player.moves = newValue.IntVal
	case change.AttrPlayerLocation:
		s.player.location = newValue.LocationIDVal
	case change.AttrPlayerInventoryLimit:
		s.player.inventoryLimit = newValue.IntVal
	case change.AttrPlayerHealth:
		s.player.health = newValue.IntVal
		s.player.hasHealth = true
	case change.AttrSetFlag:
		s.setOverlay(target, canonicalFlagKey(attr.FlagID), statevalue.Bool(true))
	case change.AttrClearFlag:
		s.setOverlay(target, canonicalFlagKey(attr.FlagID), statevalue.Bool(false))
	case change.AttrGlobalSet:
		s.globals[attr.GlobalID] = newValue
	case change.AttrPronounBind:
		s.player.pronouns[attr.Pronoun] = newValue
	default:
		s.setOverlay(target, attr, newValue)
	}
}

func (s *Store) removeChild(parent ids.ParentRef, child ids.ItemID) {
	kids := s.children[parent]
	for i, id := range kids {
		if id == child {
			s.children[parent] = append(kids[:i:i], kids[i+1:]...)
			return
		}
	}
}

func (s *Store) addChild(parent ids.ParentRef, child ids.ItemID) {
	s.children[parent] = append(s.children[parent], child)
}

// ApplyAll applies changes in order. If one fails, it stops and
// returns the changes that did succeed along with the error — the
// pipeline does not roll back prior successes; handlers are expected
// to validate before returning a batch (spec.md §4.3).
func (s *Store) ApplyAll(turn int, entries []PendingChange) ([]change.StateChange, error) {
	applied := make([]change.StateChange, 0, len(entries))
	for _, e := range entries {
		rec, err := s.Apply(turn, e.Target, e.Attribute, e.NewValue, e.Payload)
		if err != nil {
			return applied, err
		}
		applied = append(applied, rec)
	}
	return applied, nil
}

// PendingChange is a proposed mutation awaiting validation, as
// produced by an action handler's ActionResult or by Translate.
type PendingChange struct {
	Target    ids.EntityID
	Attribute change.AttributeKey
	NewValue  statevalue.StateValue
	Payload   change.Payload
}

// Translate maps a handler-emitted SideEffect to the concrete
// PendingChanges that realize it, per spec.md §4.3's canonical
// mapping. startFuse becomes an addActiveFuse change carrying the
// initial turn count and payload; the others are direct analogues.
func (s *Store) Translate(se change.SideEffect) ([]PendingChange, error) {
	switch se.Kind {
	case change.StartFuse:
		turns := se.Turns
		if turns < 1 {
			return nil, fmt.Errorf("worldstore: %w", cerrs.ErrInvalidFuseTurns)
		}
		return []PendingChange{{
			Target:    ids.FuseEntity(se.FuseID),
			Attribute: change.AddActiveFuse(se.FuseID, turns),
			Payload:   se.Payload,
		}}, nil
	case change.StopFuse:
		return []PendingChange{{
			Target:    ids.FuseEntity(se.FuseID),
			Attribute: change.RemoveActiveFuse(se.FuseID),
		}}, nil
	case change.RunDaemon:
		return []PendingChange{{
			Target:    ids.DaemonEntity(se.DaemonID),
			Attribute: change.AddActiveDaemon(se.DaemonID),
		}}, nil
	case change.StopDaemon:
		return []PendingChange{{
			Target:    ids.DaemonEntity(se.DaemonID),
			Attribute: change.RemoveActiveDaemon(se.DaemonID),
		}}, nil
	case change.ScheduleEvent:
		// Scheduled events carry no world-store mutation of their own;
		// the turn pipeline dispatches se.Label directly once the
		// current batch commits.
		return nil, nil
	default:
		return nil, fmt.Errorf("worldstore: unsupported side effect kind %s", se.Kind)
	}
}
