// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package lexer_test

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/gnusto-if/gnusto/internal/lexer"
)

func TestTokenizeLowercasesAndStripsPunctuation(t *testing.T) {
	got := lexer.Tokenize("Take the LAMP!")
	want := []lexer.Token{{Text: "take"}, {Text: "the"}, {Text: "lamp"}}
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("Tokenize mismatch: %v", diff)
	}
}

func TestSplitOnAndProducesSubCommands(t *testing.T) {
	tokens := lexer.Tokenize("take lamp and open chest")
	subs := lexer.SplitOnAnd(tokens)
	if len(subs) != 2 {
		t.Fatalf("expected 2 sub-commands, got %d", len(subs))
	}
	if diff := deep.Equal(subs[0], []lexer.Token{{Text: "take"}, {Text: "lamp"}}); diff != nil {
		t.Errorf("sub-command 0 mismatch: %v", diff)
	}
	if diff := deep.Equal(subs[1], []lexer.Token{{Text: "open"}, {Text: "chest"}}); diff != nil {
		t.Errorf("sub-command 1 mismatch: %v", diff)
	}
}

func TestSplitOnAndDropsEmptySegments(t *testing.T) {
	tokens := lexer.Tokenize("take lamp and and look")
	subs := lexer.SplitOnAnd(tokens)
	if len(subs) != 2 {
		t.Fatalf("expected 2 sub-commands after dropping the empty segment, got %d", len(subs))
	}
}
