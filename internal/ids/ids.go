// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package ids

import "fmt"

// ItemID identifies an Item static definition and its overlay.
type ItemID string

func (id ItemID) String() string { return string(id) }

// LocationID identifies a Location static definition and its overlay.
type LocationID string

func (id LocationID) String() string { return string(id) }

// FuseID identifies a registered fuse function and its active state.
type FuseID string

func (id FuseID) String() string { return string(id) }

// DaemonID identifies a registered daemon function and its active state.
type DaemonID string

func (id DaemonID) String() string { return string(id) }

// VerbID identifies a canonical verb token (synonyms resolve to this).
type VerbID string

func (id VerbID) String() string { return string(id) }

// FlagID identifies a boolean capability flag on an item or location.
type FlagID string

func (id FlagID) String() string { return string(id) }

// Well-known flag ids the engine's own rollups (is_lit, is_visible,
// is_reachable, ...) reason about directly. Games may define any
// other FlagID they like; these are the ones the engine itself, not
// just a particular game, gives meaning to.
const (
	FlagTakable       FlagID = "takable"
	FlagContainer     FlagID = "container"
	FlagOpenable      FlagID = "openable"
	FlagOpen          FlagID = "open"
	FlagLocked        FlagID = "locked"
	FlagLightSource   FlagID = "lightSource"
	FlagLit           FlagID = "lit"
	FlagCharacter     FlagID = "character"
	FlagSurface       FlagID = "surface"
	FlagWearable      FlagID = "wearable"
	FlagWorn          FlagID = "worn"
	FlagTouched       FlagID = "touched"
	FlagTransparent   FlagID = "transparent"
	FlagInherentlyLit FlagID = "inherentlyLit"
	FlagVisited       FlagID = "visited"
	FlagOutdoors      FlagID = "outdoors"
)

// GlobalID identifies a key in the global key/value bag.
type GlobalID string

func (id GlobalID) String() string { return string(id) }

// Well-known global ids the turn pipeline's end-condition check
// reasons about directly (spec.md §4.10 step 6): set one to a true
// bool to end the game after the current turn finishes printing.
const (
	GlobalQuit    GlobalID = "quit"
	GlobalVictory GlobalID = "victory"
	GlobalDeath   GlobalID = "death"
)

// AttributeID identifies a game-specific, opaque per-property override
// on an item or location (the `itemAttribute`/`locationAttribute`
// escape hatch in spec.md's AttributeKey).
type AttributeID string

func (id AttributeID) String() string { return string(id) }

// Pronoun identifies a pronoun binding slot (it, them, him, her, ...).
type Pronoun string

const (
	PronounIt   Pronoun = "it"
	PronounThem Pronoun = "them"
	PronounHim  Pronoun = "him"
	PronounHer  Pronoun = "her"
)

func (p Pronoun) String() string { return string(p) }

// UniversalID identifies an always-present abstract referent (sky,
// ground, floor, walls, ceiling, water, sun, ...) that is not backed
// by an Item.
type UniversalID string

func (id UniversalID) String() string { return string(id) }

// EntityKind_e is a closed enum tagging which shape an EntityID holds.
type EntityKind_e int

const (
	EntityUnknown EntityKind_e = iota
	EntityItem
	EntityLocation
	EntityPlayer
	EntityFuse
	EntityDaemon
	EntityGlobal
)

var entityKindNames = map[EntityKind_e]string{
	EntityUnknown:  "unknown",
	EntityItem:     "item",
	EntityLocation: "location",
	EntityPlayer:   "player",
	EntityFuse:     "fuse",
	EntityDaemon:   "daemon",
	EntityGlobal:   "global",
}

func (k EntityKind_e) String() string {
	if s, ok := entityKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("EntityKind(%d)", int(k))
}

// EntityID is a tagged union over the targets a StateChange can name:
// an item, a location, the player singleton, an active fuse, an active
// daemon, or a global-bag key. Exactly one of the *ID fields is
// meaningful, selected by Kind.
type EntityID struct {
	Kind     EntityKind_e
	Item     ItemID
	Location LocationID
	Fuse     FuseID
	Daemon   DaemonID
	Global   GlobalID
}

func ItemEntity(id ItemID) EntityID         { return EntityID{Kind: EntityItem, Item: id} }
func LocationEntity(id LocationID) EntityID { return EntityID{Kind: EntityLocation, Location: id} }
func PlayerEntity() EntityID                { return EntityID{Kind: EntityPlayer} }
func FuseEntity(id FuseID) EntityID         { return EntityID{Kind: EntityFuse, Fuse: id} }
func DaemonEntity(id DaemonID) EntityID     { return EntityID{Kind: EntityDaemon, Daemon: id} }
func GlobalEntity(id GlobalID) EntityID     { return EntityID{Kind: EntityGlobal, Global: id} }

// String renders the entity reference for logging and error messages.
func (e EntityID) String() string {
	switch e.Kind {
	case EntityItem:
		return fmt.Sprintf("item(%s)", e.Item)
	case EntityLocation:
		return fmt.Sprintf("location(%s)", e.Location)
	case EntityPlayer:
		return "player"
	case EntityFuse:
		return fmt.Sprintf("fuse(%s)", e.Fuse)
	case EntityDaemon:
		return fmt.Sprintf("daemon(%s)", e.Daemon)
	case EntityGlobal:
		return fmt.Sprintf("global(%s)", e.Global)
	default:
		return "entity(?)"
	}
}

// ParentKind_e is a closed enum for the four shapes an item's parent
// reference can take (spec.md §3 Item.parent).
type ParentKind_e int

const (
	ParentUnknown ParentKind_e = iota
	ParentNowhere
	ParentLocation
	ParentItem
	ParentPlayer
)

var parentKindNames = map[ParentKind_e]string{
	ParentUnknown:  "unknown",
	ParentNowhere:  "nowhere",
	ParentLocation: "location",
	ParentItem:     "item",
	ParentPlayer:   "player",
}

func (k ParentKind_e) String() string {
	if s, ok := parentKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ParentKind(%d)", int(k))
}

// ParentRef is the tagged union `parent_entity` from spec.md §3: a
// location, a container item, the player, or nowhere. It is the value
// shape stored by StateValue's ParentEntity variant and read by
// WorldStore.children_of.
type ParentRef struct {
	Kind     ParentKind_e
	Location LocationID
	Item     ItemID
}

func NowhereRef() ParentRef                { return ParentRef{Kind: ParentNowhere} }
func LocationRef(id LocationID) ParentRef  { return ParentRef{Kind: ParentLocation, Location: id} }
func ItemRef(id ItemID) ParentRef          { return ParentRef{Kind: ParentItem, Item: id} }
func PlayerRef() ParentRef                 { return ParentRef{Kind: ParentPlayer} }

func (p ParentRef) String() string {
	switch p.Kind {
	case ParentNowhere:
		return "nowhere"
	case ParentLocation:
		return fmt.Sprintf("location(%s)", p.Location)
	case ParentItem:
		return fmt.Sprintf("item(%s)", p.Item)
	case ParentPlayer:
		return "player"
	default:
		return "parent(?)"
	}
}

func (p ParentRef) Equal(o ParentRef) bool {
	if p.Kind != o.Kind {
		return false
	}
	switch p.Kind {
	case ParentLocation:
		return p.Location == o.Location
	case ParentItem:
		return p.Item == o.Item
	default:
		return true
	}
}

// Equal reports whether two EntityID values name the same target.
func (e EntityID) Equal(o EntityID) bool {
	if e.Kind != o.Kind {
		return false
	}
	switch e.Kind {
	case EntityItem:
		return e.Item == o.Item
	case EntityLocation:
		return e.Location == o.Location
	case EntityPlayer:
		return true
	case EntityFuse:
		return e.Fuse == o.Fuse
	case EntityDaemon:
		return e.Daemon == o.Daemon
	case EntityGlobal:
		return e.Global == o.Global
	default:
		return false
	}
}
