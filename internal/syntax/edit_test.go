package syntax_test

import (
	"testing"

	"crest/internal/syntax"
)

func makePointDecl() syntax.StructDecl {
	return syntax.MakeStructDecl(
		syntax.MakeStructKeyword(nil, syntax.Spaces(1)),
		syntax.MakeIdentifier("Point", nil, syntax.Spaces(1)),
		syntax.GenericParameterClause{},
		syntax.GenericWhereClause{},
		syntax.MakeLeftBraceToken(nil, nil),
		syntax.MakeBlankDeclMembers(),
		syntax.MakeRightBraceToken(nil, nil),
	)
}

func TestWithChildSharesSiblings(t *testing.T) {
	decl := makePointDecl()
	renamed := decl.WithIdentifier(syntax.MakeIdentifier("Vector", nil, syntax.Spaces(1)))

	if got := renamed.Text(); got != "struct Vector {}" {
		t.Fatalf("renamed text: %q", got)
	}
	if got := decl.Text(); got != "struct Point {}" {
		t.Fatalf("original mutated: %q", got)
	}

	// Every slot but the replaced one is the same node, not a copy.
	for i := 0; i < decl.NumChildren(); i++ {
		if i == 1 {
			continue
		}
		before, ok1 := decl.Child(i)
		after, ok2 := renamed.Child(i)
		if ok1 != ok2 {
			t.Fatalf("slot %d presence changed", i)
		}
		if ok1 && !before.Same(after) {
			t.Fatalf("slot %d was copied instead of shared", i)
		}
	}
}

func TestWithChildClearsOptionalSlot(t *testing.T) {
	brk := syntax.MakeBreakStmt(
		syntax.MakeBreakKeyword(nil, syntax.Spaces(1)),
		syntax.MakeIdentifier("outer", nil, nil),
	)
	bare := brk.WithChild(1, syntax.Node{})
	if _, ok := (syntax.BreakStmt{Node: bare}).Label(); ok {
		t.Fatal("cleared label still present")
	}
	if got := bare.Text(); got != "break " {
		t.Fatalf("text after clearing: %q", got)
	}
}

func TestWithChildRejectsShapeViolation(t *testing.T) {
	decl := makePointDecl()
	expectPanic(t, "a keyword in the identifier slot", func() {
		decl.WithChild(1, syntax.MakeStructKeyword(nil, nil).Node)
	})
	expectPanic(t, "clearing a required slot", func() {
		decl.WithChild(0, syntax.Node{})
	})
	expectPanic(t, "WithChild on a token", func() {
		decl.StructKeyword().WithChild(0, syntax.Node{})
	})
}

func TestReplaceRebuildsParentChain(t *testing.T) {
	member := syntax.MakeTypeAliasDecl(
		syntax.MakeTypealiasKeyword(syntax.Spaces(1), syntax.Spaces(1)),
		syntax.MakeIdentifier("Element", nil, syntax.Spaces(1)),
		syntax.GenericParameterClause{},
		syntax.MakeEqualToken(nil, syntax.Spaces(1)),
		syntax.MakeSimpleTypeIdentifier("Int", nil, syntax.Spaces(1)).AsType(),
	)
	decl := makePointDecl().WithMembers(
		syntax.MakeDeclMembers([]syntax.Decl{member.AsDecl()}),
	)
	if got := decl.Text(); got != "struct Point { typealias Element = Int }" {
		t.Fatalf("setup text: %q", got)
	}

	// Reach the alias type through parent-bearing accessors, then swap it.
	alias, ok := decl.Members().At(0).AsTypeAliasDecl()
	if !ok {
		t.Fatal("member is not a typealias")
	}
	newRoot := alias.Type().Replace(
		syntax.MakeSimpleTypeIdentifier("UInt64", nil, syntax.Spaces(1)).AsType().Node,
	)
	if got := newRoot.Text(); got != "struct Point { typealias Element = UInt64 }" {
		t.Fatalf("edited text: %q", got)
	}
	if got := decl.Text(); got != "struct Point { typealias Element = Int }" {
		t.Fatalf("original mutated: %q", got)
	}

	// The struct keyword sits outside the rebuilt chain and must be shared.
	edited, ok := newRoot.AsDecl()
	if !ok {
		t.Fatal("edited root lost its kind")
	}
	editedStruct, ok := edited.AsStructDecl()
	if !ok {
		t.Fatal("edited root is not a struct")
	}
	if !decl.StructKeyword().Same(editedStruct.StructKeyword().Node) {
		t.Fatal("unrelated subtree was copied")
	}
}

func TestReplaceOnDetachedNodeReturnsReplacement(t *testing.T) {
	detached := syntax.MakeVoidTupleType()
	swap := syntax.MakeBlankTupleType()
	got := detached.Node.Replace(swap.Node)
	if !got.Same(swap.Node) {
		t.Fatal("detached replace should hand back the replacement")
	}
}
