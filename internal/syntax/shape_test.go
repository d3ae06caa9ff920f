package syntax_test

import (
	"strings"
	"testing"

	"crest/internal/syntax"
	"crest/internal/testkit"
)

func TestEveryLayoutKindHasShape(t *testing.T) {
	for _, kind := range syntax.Kinds() {
		shape := syntax.ShapeOf(kind)
		if len(shape.Slots) == 0 {
			t.Fatalf("%v: shape declares no slots", kind)
		}
		if shape.Variadic && len(shape.Slots) != 1 {
			t.Fatalf("%v: variadic shape must declare exactly one element spec", kind)
		}
		for i, slot := range shape.Slots {
			constraints := 0
			if len(slot.Tokens) > 0 {
				constraints++
			}
			if len(slot.Kinds) > 0 {
				constraints++
			}
			if slot.AnyToken {
				constraints++
			}
			if constraints != 1 {
				t.Fatalf("%v slot %d (%s): exactly one constraint required, found %d",
					kind, i, slot.Name, constraints)
			}
			if slot.Name == "" {
				t.Fatalf("%v slot %d: unnamed", kind, i)
			}
		}
	}
}

func TestShapeOfUnknownKindPanics(t *testing.T) {
	expectPanic(t, "ShapeOf on an unregistered kind", func() {
		syntax.ShapeOf(syntax.Kind(250))
	})
}

// Crossing the low-level layout constructor with a child of the wrong kind
// must fail loudly instead of producing a silently malformed tree.
func TestLayoutConstructorRejectsWrongChildKind(t *testing.T) {
	block := syntax.MakeBlankCodeBlock()
	expectPanic(t, "a statement in a type slot", func() {
		syntax.MakeLayout(syntax.KindOptionalType, []syntax.Node{
			block.Node, // OptionalType slot 0 admits type kinds only
			syntax.MakeQuestionPostfixToken(nil).Node,
		})
	})
}

func TestLayoutConstructorRejectsWrongArity(t *testing.T) {
	expectPanic(t, "two children for a three-slot shape", func() {
		syntax.MakeLayout(syntax.KindCodeBlock, []syntax.Node{
			syntax.MakeLeftBraceToken(nil, nil).Node,
			syntax.MakeRightBraceToken(nil, nil).Node,
		})
	})
}

func TestLayoutConstructorRejectsAbsentRequiredSlot(t *testing.T) {
	expectPanic(t, "absent required slot", func() {
		syntax.MakeLayout(syntax.KindFallthroughStmt, []syntax.Node{{}})
	})
}

func TestCheckLayoutReportsErrors(t *testing.T) {
	err := syntax.CheckLayout(syntax.KindCodeBlock, nil)
	if err == nil || !strings.Contains(err.Error(), "3 slots") {
		t.Fatalf("arity violation not reported: %v", err)
	}

	err = syntax.CheckLayout(syntax.KindStmtList, []syntax.Node{{}})
	if err == nil || !strings.Contains(err.Error(), "absent") {
		t.Fatalf("absent list slot not reported: %v", err)
	}

	err = syntax.CheckLayout(syntax.KindToken, nil)
	if err == nil {
		t.Fatal("KindToken is not a layout kind")
	}

	err = syntax.CheckLayout(syntax.KindBreakStmt, []syntax.Node{
		syntax.MakeBreakKeyword(nil, nil).Node,
		{},
	})
	if err != nil {
		t.Fatalf("optional slot may be absent: %v", err)
	}
}

func TestFactoryBuiltTreesSatisfyInvariants(t *testing.T) {
	decl := syntax.MakeStructDecl(
		syntax.MakeStructKeyword(nil, syntax.Spaces(1)),
		syntax.MakeIdentifier("Point", nil, syntax.Spaces(1)),
		syntax.GenericParameterClause{},
		syntax.GenericWhereClause{},
		syntax.MakeLeftBraceToken(nil, nil),
		syntax.MakeBlankDeclMembers(),
		syntax.MakeRightBraceToken(nil, nil),
	)
	if err := testkit.CheckTreeInvariants(decl.Node); err != nil {
		t.Fatalf("invariants: %v", err)
	}
}
