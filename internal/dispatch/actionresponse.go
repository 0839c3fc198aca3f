// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package dispatch

import (
	"fmt"

	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/messenger"
)

// ActionResponseKind_e is the closed (but extensible-by-convention)
// set of reasons validate may refuse an action (spec.md §7). "Include,
// but are not limited to" in the prose becomes, in Go, a fixed enum
// plus PrerequisiteNotMet as the escape hatch for anything a specific
// handler needs that isn't one of the named kinds.
type ActionResponseKind_e int

const (
	ResponseUnknown ActionResponseKind_e = iota
	ContainerClosed
	ContainerFull
	DirectionBlocked
	ItemNotAccessible
	ItemNotTakable
	ItemNotOpenable
	AlreadyOpen
	AlreadyClosed
	Locked
	WrongKey
	NotWearable
	NotHeld
	PlayerCannotCarryMore
	RoomIsDark
	PrerequisiteNotMet
	InternalEngineError
)

var actionResponseKindNames = map[ActionResponseKind_e]string{
	ResponseUnknown:       "unknown",
	ContainerClosed:       "containerClosed",
	ContainerFull:         "containerFull",
	DirectionBlocked:      "directionBlocked",
	ItemNotAccessible:     "itemNotAccessible",
	ItemNotTakable:        "itemNotTakable",
	ItemNotOpenable:       "itemNotOpenable",
	AlreadyOpen:           "alreadyOpen",
	AlreadyClosed:         "alreadyClosed",
	Locked:                "locked",
	WrongKey:              "wrongKey",
	NotWearable:           "notWearable",
	NotHeld:               "notHeld",
	PlayerCannotCarryMore: "playerCannotCarryMore",
	RoomIsDark:            "roomIsDark",
	PrerequisiteNotMet:    "prerequisiteNotMet",
	InternalEngineError:   "internalEngineError",
}

func (k ActionResponseKind_e) String() string {
	if s, ok := actionResponseKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ActionResponseKind(%d)", int(k))
}

// ActionResponse is the typed, recoverable refusal a handler's
// validate step raises. The turn pipeline catches it, looks up the
// matching messenger call for Kind, and continues to the next turn
// (spec.md §7 propagation policy) — it never aborts the host process.
type ActionResponse struct {
	Kind ActionResponseKind_e

	// Item is the subject the messenger call should name, when the
	// refusal is about a specific item (e.g. ItemNotTakable).
	Item   ids.ItemID
	HasItem bool

	// Message carries the free-text payload for the three kinds that
	// need one: DirectionBlocked's blocked-exit text, PrerequisiteNotMet
	// and InternalEngineError's handler-supplied explanation.
	Message string
}

func NewItemResponse(kind ActionResponseKind_e, item ids.ItemID) *ActionResponse {
	return &ActionResponse{Kind: kind, Item: item, HasItem: true}
}

func NewResponse(kind ActionResponseKind_e) *ActionResponse {
	return &ActionResponse{Kind: kind}
}

func NewDirectionBlocked(message string) *ActionResponse {
	return &ActionResponse{Kind: DirectionBlocked, Message: message}
}

func NewPrerequisiteNotMet(message string) *ActionResponse {
	return &ActionResponse{Kind: PrerequisiteNotMet, Message: message}
}

func NewInternalEngineError(message string) *ActionResponse {
	return &ActionResponse{Kind: InternalEngineError, Message: message}
}

func (e *ActionResponse) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.HasItem {
		return fmt.Sprintf("%s: %s", e.Kind, e.Item)
	}
	return e.Kind.String()
}

// responseKeys maps every ActionResponseKind whose text is a fixed
// messenger lookup (no per-call Message override) to its Key.
// DirectionBlocked, PrerequisiteNotMet, and InternalEngineError carry
// their own Message and are handled directly in Text.
var responseKeys = map[ActionResponseKind_e]messenger.Key{
	ContainerClosed:       messenger.ContainerClosed,
	ContainerFull:         messenger.ContainerFull,
	ItemNotAccessible:     messenger.ItemNotAccessible,
	ItemNotTakable:        messenger.ItemNotTakable,
	ItemNotOpenable:       messenger.ItemNotOpenable,
	AlreadyOpen:           messenger.AlreadyOpen,
	AlreadyClosed:         messenger.AlreadyClosed,
	Locked:                messenger.Locked,
	WrongKey:              messenger.WrongKey,
	NotWearable:           messenger.NotWearable,
	NotHeld:               messenger.NotHeld,
	PlayerCannotCarryMore: messenger.PlayerCannotCarryMore,
	RoomIsDark:            messenger.RoomIsDark,
}

// Text resolves this response to player-visible text through ctx's
// messenger (spec.md §4.9: "the engine never hard-codes player-visible
// text; all handlers call the messenger"). Error() is debug text for
// logs, not for players — a handler that validates items one at a time
// inside Process (a "take all" that partially succeeds) must call Text,
// not Error, to report a per-item refusal.
func (e *ActionResponse) Text(ctx *ActionContext) string {
	switch e.Kind {
	case DirectionBlocked:
		if e.Message != "" {
			return e.Message
		}
		return ctx.Text(messenger.BlockedDirection)
	case PrerequisiteNotMet:
		if e.Message != "" {
			return e.Message
		}
		return ctx.Text(messenger.PrerequisiteNotMet)
	case InternalEngineError:
		return ctx.Text(messenger.InternalEngineError)
	}
	if key, ok := responseKeys[e.Kind]; ok {
		return ctx.Text(key)
	}
	return e.Error()
}
