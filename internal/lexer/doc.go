// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package lexer tokenizes a raw input line: split on whitespace,
// lowercase, strip trailing punctuation, then split on "and" into
// the sub-command lines spec.md §4.5 step 1 describes. It knows
// nothing about grammar or vocabulary classification — that is the
// parser package's job.
package lexer
