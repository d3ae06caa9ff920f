package syntax_test

import (
	"testing"

	"crest/internal/syntax"
	"crest/internal/testkit"
)

func TestBlankOfEveryKind(t *testing.T) {
	for _, kind := range syntax.Kinds() {
		blank := syntax.MakeBlank(kind)
		if blank.Kind() != kind {
			t.Fatalf("%v: blank reports kind %v", kind, blank.Kind())
		}
		if !blank.IsMissing() {
			t.Fatalf("%v: blank is not missing", kind)
		}
		if blank.Width() != 0 {
			t.Fatalf("%v: blank has width %d", kind, blank.Width())
		}
		if text := blank.Text(); text != "" {
			t.Fatalf("%v: blank contributes text %q", kind, text)
		}
		if err := testkit.CheckTreeInvariants(blank); err != nil {
			t.Fatalf("%v: %v", kind, err)
		}
	}
}

func TestBlankFillsRequiredSlotsOnly(t *testing.T) {
	blank := syntax.MakeBlank(syntax.KindStructDecl)
	shape := syntax.ShapeOf(syntax.KindStructDecl)
	if blank.NumChildren() != len(shape.Slots) {
		t.Fatalf("slot count: got %d, want %d", blank.NumChildren(), len(shape.Slots))
	}
	for i, slot := range shape.Slots {
		child, present := blank.Child(i)
		if slot.Optional {
			if present {
				t.Fatalf("optional slot %s is populated in blank", slot.Name)
			}
			continue
		}
		if !present {
			t.Fatalf("required slot %s is absent in blank", slot.Name)
		}
		if !child.IsMissing() {
			t.Fatalf("required slot %s holds a non-missing child", slot.Name)
		}
	}
}

func TestBlankListIsEmpty(t *testing.T) {
	members := syntax.MakeBlankDeclMembers()
	if members.Len() != 0 {
		t.Fatalf("blank list has %d elements", members.Len())
	}
	if !members.IsMissing() {
		t.Fatal("empty list should report missing")
	}
}

func TestBlankRejectsTokenKind(t *testing.T) {
	expectPanic(t, "MakeBlank on the terminal kind", func() {
		syntax.MakeBlank(syntax.KindToken)
	})
}

func TestMissingTokenHasNoText(t *testing.T) {
	tok := syntax.MakeMissingToken(syntax.Identifier)
	if !tok.IsMissing() {
		t.Fatal("missing token is not missing")
	}
	if tok.RawText() != "" || tok.Width() != 0 {
		t.Fatalf("missing token carries text %q width %d", tok.RawText(), tok.Width())
	}
	if len(tok.LeadingTrivia()) != 0 || len(tok.TrailingTrivia()) != 0 {
		t.Fatal("missing token carries trivia")
	}
}

// A blank node slots anywhere its kind is admitted, so partial trees built
// during recovery always pass the same validation as complete ones.
func TestBlankSlotsIntoParent(t *testing.T) {
	alias := syntax.MakeTypeAliasDecl(
		syntax.MakeTypealiasKeyword(nil, syntax.Spaces(1)),
		syntax.MakeIdentifier("Alias", nil, syntax.Spaces(1)),
		syntax.GenericParameterClause{},
		syntax.MakeEqualToken(nil, syntax.Spaces(1)),
		syntax.MakeBlankTypeIdentifier().AsType(),
	)
	if alias.IsMissing() {
		t.Fatal("alias with real tokens should not be missing")
	}
	if got := alias.Text(); got != "typealias Alias = " {
		t.Fatalf("text: %q", got)
	}
	if err := testkit.CheckTreeInvariants(alias.Node); err != nil {
		t.Fatalf("invariants: %v", err)
	}
}
