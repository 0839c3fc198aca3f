// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package change

import "encoding/json"

// Payload is the type-tagged blob a fuse or daemon carries between
// scheduling and firing. Storage keeps the pair opaque; only the code
// that scheduled the fuse/daemon knows the tag and the shape behind
// it. A retrieval against the wrong tag returns absent rather than
// erroring, per the engine's no-exceptions-for-control-flow rule.
type Payload struct {
	Tag  string
	Data json.RawMessage
}

// NewPayload serializes v and tags it so a later Decode can verify it
// is retrieving the shape it expects.
func NewPayload(tag string, v any) (Payload, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Payload{}, err
	}
	return Payload{Tag: tag, Data: data}, nil
}

// Decode attempts to unmarshal the payload into v, first checking that
// tag matches the payload's recorded tag. Returns false (not an error)
// when the tags don't match, so a caller can tell "never set" and
// "set by someone else" apart from "malformed."
func (p Payload) Decode(tag string, v any) (bool, error) {
	if p.Tag != tag {
		return false, nil
	}
	if err := json.Unmarshal(p.Data, v); err != nil {
		return false, err
	}
	return true, nil
}

// IsZero reports whether the payload carries nothing.
func (p Payload) IsZero() bool {
	return p.Tag == "" && len(p.Data) == 0
}
