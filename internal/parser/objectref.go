// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parser

import (
	"fmt"

	"github.com/gnusto-if/gnusto/internal/ids"
	"github.com/gnusto-if/gnusto/internal/universe"
)

// ObjectKind_e is a closed enum tagging which shape an ObjectRef
// holds (spec.md §4.5 step 7).
type ObjectKind_e int

const (
	ObjectUnknown ObjectKind_e = iota
	ObjectItem
	ObjectUniversal
	ObjectPending
)

var objectKindNames = map[ObjectKind_e]string{
	ObjectUnknown:   "unknown",
	ObjectItem:      "item",
	ObjectUniversal: "universal",
	ObjectPending:   "pending",
}

func (k ObjectKind_e) String() string {
	if s, ok := objectKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ObjectKind(%d)", int(k))
}

// ObjectRef is the tagged union spec.md §4.5 step 7 names: a bound
// item, a bound universal referent, or a raw phrase a disambiguation
// reply has not yet resolved.
type ObjectRef struct {
	Kind      ObjectKind_e
	Item      ids.ItemID
	Universal universe.Universal_t
	Raw       string
}

func ItemRef(id ids.ItemID) ObjectRef { return ObjectRef{Kind: ObjectItem, Item: id} }

func UniversalRef(u universe.Universal_t) ObjectRef {
	return ObjectRef{Kind: ObjectUniversal, Universal: u}
}

func PendingRef(raw string) ObjectRef { return ObjectRef{Kind: ObjectPending, Raw: raw} }

func (o ObjectRef) String() string {
	switch o.Kind {
	case ObjectItem:
		return fmt.Sprintf("item(%s)", o.Item)
	case ObjectUniversal:
		return fmt.Sprintf("universal(%s)", o.Universal)
	case ObjectPending:
		return fmt.Sprintf("pending(%q)", o.Raw)
	default:
		return "object(?)"
	}
}
