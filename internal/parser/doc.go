// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package parser turns one raw input line into a sequence of typed
// Commands, or a ParseError. It tokenizes via lexer, classifies words
// via vocabulary, structures a small fixed grammar, and binds noun
// phrases to concrete entities in the player's current scope.
package parser
