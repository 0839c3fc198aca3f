// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parser

import (
	"fmt"
	"strings"

	"github.com/gnusto-if/gnusto/internal/ids"
)

// ParseErrorKind_e is the closed enum of failure shapes spec.md §4.5
// names.
type ParseErrorKind_e int

const (
	ErrKindUnknown ParseErrorKind_e = iota
	ErrUnknownWord
	ErrDontSeeThat
	ErrBeMoreSpecific
	ErrNothingToReferTo
	ErrGarbled
	ErrInternal
)

var parseErrorKindNames = map[ParseErrorKind_e]string{
	ErrKindUnknown:      "unknown",
	ErrUnknownWord:      "unknownWord",
	ErrDontSeeThat:      "dontSeeThat",
	ErrBeMoreSpecific:   "beMoreSpecific",
	ErrNothingToReferTo: "nothingToReferTo",
	ErrGarbled:          "garbled",
	ErrInternal:         "internalError",
}

func (k ParseErrorKind_e) String() string {
	if s, ok := parseErrorKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ParseErrorKind(%d)", int(k))
}

// ParseError is the error the parser returns instead of a Command.
// Exactly one payload field is meaningful, selected by Kind, same
// shape as AttributeKey and StateValue.
type ParseError struct {
	Kind       ParseErrorKind_e
	Word       string
	Phrase     string
	Candidates []ObjectRef
	Pronoun    ids.Pronoun
	Reason     string
}

func NewUnknownWord(word string) *ParseError {
	return &ParseError{Kind: ErrUnknownWord, Word: word}
}

func NewDontSeeThat(phrase string) *ParseError {
	return &ParseError{Kind: ErrDontSeeThat, Phrase: phrase}
}

func NewBeMoreSpecific(candidates []ObjectRef) *ParseError {
	return &ParseError{Kind: ErrBeMoreSpecific, Candidates: candidates}
}

func NewNothingToReferTo(pronoun ids.Pronoun) *ParseError {
	return &ParseError{Kind: ErrNothingToReferTo, Pronoun: pronoun}
}

func NewGarbled(reason string) *ParseError {
	return &ParseError{Kind: ErrGarbled, Reason: reason}
}

func NewInternalError(msg string) *ParseError {
	return &ParseError{Kind: ErrInternal, Reason: msg}
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrUnknownWord:
		return fmt.Sprintf("I don't know the word %q.", e.Word)
	case ErrDontSeeThat:
		return fmt.Sprintf("You don't see any %s here.", e.Phrase)
	case ErrBeMoreSpecific:
		names := make([]string, 0, len(e.Candidates))
		for _, c := range e.Candidates {
			names = append(names, c.String())
		}
		return fmt.Sprintf("Which do you mean: %s?", strings.Join(names, ", "))
	case ErrNothingToReferTo:
		return fmt.Sprintf("I don't know what %q refers to.", e.Pronoun)
	case ErrGarbled:
		return fmt.Sprintf("That sentence isn't one I understand: %s.", e.Reason)
	case ErrInternal:
		return fmt.Sprintf("internal parser error: %s", e.Reason)
	default:
		return "parse error"
	}
}
