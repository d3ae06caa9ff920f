package syntax

import "fmt"

// SlotSpec describes one child slot of a layout kind: its accessor name,
// whether it may be legitimately absent, and which kinds a present child may
// have. Exactly one of Tokens, Kinds, or AnyToken constrains the slot.
type SlotSpec struct {
	Name     string
	Optional bool
	Tokens   []TokenKind // allowed terminal kinds, if the slot holds a token
	Kinds    []Kind      // allowed layout kinds, if the slot holds a layout
	AnyToken bool        // any terminal is acceptable (balanced/unknown bags)
}

// accepts reports whether a present child satisfies the slot constraint.
func (s SlotSpec) accepts(c *rawNode) bool {
	if c.isToken() {
		if s.AnyToken {
			return true
		}
		for _, k := range s.Tokens {
			if c.tokKind == k {
				return true
			}
		}
		return false
	}
	for _, k := range s.Kinds {
		if c.kind == k {
			return true
		}
	}
	return false
}

// Shape is the declared child contract of one layout kind. Fixed shapes pin
// the exact slot count; variadic shapes (lists) declare a single element spec
// that applies to every child, and every child must be present.
type Shape struct {
	Slots    []SlotSpec
	Variadic bool
}

// shapes is the process-wide registry. It is initialized here and never
// mutated, so it may be read concurrently without synchronization.
var shapes = map[Kind]Shape{
	KindUnknown: {Variadic: true, Slots: []SlotSpec{
		{Name: "Tokens", AnyToken: true},
	}},

	KindStructDecl: {Slots: []SlotSpec{
		{Name: "StructKeyword", Tokens: []TokenKind{StructKeyword}},
		{Name: "Identifier", Tokens: []TokenKind{Identifier}},
		{Name: "GenericParameterClause", Optional: true, Kinds: []Kind{KindGenericParameterClause}},
		{Name: "GenericWhereClause", Optional: true, Kinds: []Kind{KindGenericWhereClause}},
		{Name: "LeftBrace", Tokens: []TokenKind{LeftBrace}},
		{Name: "Members", Kinds: []Kind{KindDeclMembers}},
		{Name: "RightBrace", Tokens: []TokenKind{RightBrace}},
	}},
	KindTypeAliasDecl: {Slots: []SlotSpec{
		{Name: "TypealiasKeyword", Tokens: []TokenKind{TypealiasKeyword}},
		{Name: "Identifier", Tokens: []TokenKind{Identifier}},
		{Name: "GenericParameterClause", Optional: true, Kinds: []Kind{KindGenericParameterClause}},
		{Name: "Equal", Tokens: []TokenKind{Equal}},
		{Name: "Type", Kinds: typeKinds},
	}},
	KindDeclMembers: {Variadic: true, Slots: []SlotSpec{
		{Name: "Member", Kinds: declKinds},
	}},

	KindCodeBlock: {Slots: []SlotSpec{
		{Name: "LeftBrace", Tokens: []TokenKind{LeftBrace}},
		{Name: "Statements", Kinds: []Kind{KindStmtList}},
		{Name: "RightBrace", Tokens: []TokenKind{RightBrace}},
	}},
	KindFallthroughStmt: {Slots: []SlotSpec{
		{Name: "FallthroughKeyword", Tokens: []TokenKind{FallthroughKeyword}},
	}},
	KindBreakStmt: {Slots: []SlotSpec{
		{Name: "BreakKeyword", Tokens: []TokenKind{BreakKeyword}},
		{Name: "Label", Optional: true, Tokens: []TokenKind{Identifier}},
	}},
	KindStmtList: {Variadic: true, Slots: []SlotSpec{
		{Name: "Statement", Kinds: stmtKinds},
	}},

	KindTypeAttribute: {Slots: []SlotSpec{
		{Name: "AtSign", Tokens: []TokenKind{AtSign}},
		{Name: "Identifier", Tokens: []TokenKind{Identifier}},
		{Name: "LeftParen", Optional: true, Tokens: []TokenKind{LeftParen}},
		{Name: "BalancedTokens", Optional: true, Kinds: []Kind{KindBalancedTokens}},
		{Name: "RightParen", Optional: true, Tokens: []TokenKind{RightParen}},
	}},
	KindTypeAttributeList: {Variadic: true, Slots: []SlotSpec{
		{Name: "Attribute", Kinds: []Kind{KindTypeAttribute}},
	}},
	KindBalancedTokens: {Variadic: true, Slots: []SlotSpec{
		{Name: "Token", AnyToken: true},
	}},

	KindTypeIdentifier: {Slots: []SlotSpec{
		{Name: "Identifier", Tokens: []TokenKind{Identifier}},
		{Name: "GenericArgumentClause", Optional: true, Kinds: []Kind{KindGenericArgumentClause}},
	}},
	KindTupleType: {Slots: []SlotSpec{
		{Name: "LeftParen", Tokens: []TokenKind{LeftParen}},
		{Name: "Elements", Kinds: []Kind{KindTupleTypeElementList}},
		{Name: "RightParen", Tokens: []TokenKind{RightParen}},
	}},
	KindTupleTypeElement: {Slots: []SlotSpec{
		{Name: "Label", Optional: true, Tokens: []TokenKind{Identifier}},
		{Name: "Colon", Optional: true, Tokens: []TokenKind{Colon}},
		{Name: "Type", Kinds: typeKinds},
		{Name: "TrailingComma", Optional: true, Tokens: []TokenKind{Comma}},
	}},
	KindTupleTypeElementList: {Variadic: true, Slots: []SlotSpec{
		{Name: "Element", Kinds: []Kind{KindTupleTypeElement}},
	}},
	KindOptionalType: {Slots: []SlotSpec{
		{Name: "Base", Kinds: typeKinds},
		{Name: "Question", Tokens: []TokenKind{Question}},
	}},
	KindImplicitOptionalType: {Slots: []SlotSpec{
		{Name: "Base", Kinds: typeKinds},
		{Name: "Exclaim", Tokens: []TokenKind{Exclaim}},
	}},
	KindMetatypeType: {Slots: []SlotSpec{
		{Name: "Base", Kinds: typeKinds},
		{Name: "Dot", Tokens: []TokenKind{Dot}},
		{Name: "MetaIdentifier", Tokens: []TokenKind{Identifier}},
	}},
	KindArrayType: {Slots: []SlotSpec{
		{Name: "LeftSquare", Tokens: []TokenKind{LeftSquare}},
		{Name: "Element", Kinds: typeKinds},
		{Name: "RightSquare", Tokens: []TokenKind{RightSquare}},
	}},
	KindDictionaryType: {Slots: []SlotSpec{
		{Name: "LeftSquare", Tokens: []TokenKind{LeftSquare}},
		{Name: "Key", Kinds: typeKinds},
		{Name: "Colon", Tokens: []TokenKind{Colon}},
		{Name: "Value", Kinds: typeKinds},
		{Name: "RightSquare", Tokens: []TokenKind{RightSquare}},
	}},
	KindFunctionTypeArgument: {Slots: []SlotSpec{
		{Name: "ExternalName", Optional: true, Tokens: []TokenKind{Identifier}},
		{Name: "LocalName", Optional: true, Tokens: []TokenKind{Identifier}},
		{Name: "Attributes", Optional: true, Kinds: []Kind{KindTypeAttributeList}},
		{Name: "InoutKeyword", Optional: true, Tokens: []TokenKind{InoutKeyword}},
		{Name: "Colon", Optional: true, Tokens: []TokenKind{Colon}},
		{Name: "Type", Kinds: typeKinds},
	}},
	KindFunctionType: {Slots: []SlotSpec{
		{Name: "Attributes", Optional: true, Kinds: []Kind{KindTypeAttributeList}},
		{Name: "LeftParen", Tokens: []TokenKind{LeftParen}},
		{Name: "Arguments", Kinds: []Kind{KindTypeArgumentList}},
		{Name: "RightParen", Tokens: []TokenKind{RightParen}},
		{Name: "ThrowsOrRethrows", Optional: true, Tokens: []TokenKind{ThrowsKeyword, RethrowsKeyword}},
		{Name: "Arrow", Tokens: []TokenKind{Arrow}},
		{Name: "ReturnType", Kinds: typeKinds},
	}},
	KindTypeArgumentList: {Variadic: true, Slots: []SlotSpec{
		{Name: "Argument", Kinds: []Kind{KindFunctionTypeArgument}},
	}},

	KindGenericParameterClause: {Slots: []SlotSpec{
		{Name: "LeftAngle", Tokens: []TokenKind{LeftAngle}},
		{Name: "Parameters", Kinds: []Kind{KindGenericParameterList}},
		{Name: "RightAngle", Tokens: []TokenKind{RightAngle}},
	}},
	KindGenericParameterList: {Variadic: true, Slots: []SlotSpec{
		{Name: "Parameter", Kinds: []Kind{KindGenericParameter}},
	}},
	KindGenericParameter: {Slots: []SlotSpec{
		{Name: "Name", Tokens: []TokenKind{Identifier}},
		{Name: "Colon", Optional: true, Tokens: []TokenKind{Colon}},
		{Name: "InheritedType", Optional: true, Kinds: typeKinds},
	}},
	KindGenericArgumentClause: {Slots: []SlotSpec{
		{Name: "LeftAngle", Tokens: []TokenKind{LeftAngle}},
		{Name: "Arguments", Kinds: []Kind{KindGenericArgumentList}},
		{Name: "RightAngle", Tokens: []TokenKind{RightAngle}},
	}},
	KindGenericArgumentList: {Variadic: true, Slots: []SlotSpec{
		{Name: "Argument", Kinds: typeKinds},
	}},
	KindGenericWhereClause: {Slots: []SlotSpec{
		{Name: "WhereKeyword", Tokens: []TokenKind{WhereKeyword}},
		{Name: "Requirements", Kinds: []Kind{KindGenericRequirementList}},
	}},
	KindGenericRequirementList: {Variadic: true, Slots: []SlotSpec{
		{Name: "Requirement", Kinds: []Kind{KindSameTypeRequirement}},
	}},
	KindSameTypeRequirement: {Slots: []SlotSpec{
		{Name: "LeftType", Kinds: []Kind{KindTypeIdentifier}},
		{Name: "Equality", Tokens: []TokenKind{EqualEqual}},
		{Name: "RightType", Kinds: typeKinds},
	}},
}

// ShapeOf returns the child contract of a layout kind. The returned value
// shares the registry's slices and must be treated as read-only. Asking for
// an unknown kind or for KindToken is a programming error.
func ShapeOf(kind Kind) Shape {
	shape, ok := shapes[kind]
	if !ok {
		panic(fmt.Sprintf("syntax: no shape registered for %v", kind))
	}
	return shape
}

// checkShape validates a child slice against the registry. This is the
// single validation routine behind both the factory (which panics on its
// error) and external decoders (which surface it).
func checkShape(kind Kind, children []*rawNode) error {
	shape, ok := shapes[kind]
	if !ok {
		return fmt.Errorf("no shape registered for %v", kind)
	}
	if shape.Variadic {
		spec := shape.Slots[0]
		for i, c := range children {
			if c == nil {
				return fmt.Errorf("%v: list slot %d is absent", kind, i)
			}
			if !spec.accepts(c) {
				return fmt.Errorf("%v: child %d (%s) not allowed in %s slot",
					kind, i, describeRaw(c), spec.Name)
			}
		}
		return nil
	}
	if len(children) != len(shape.Slots) {
		return fmt.Errorf("%v: got %d children, shape declares %d slots",
			kind, len(children), len(shape.Slots))
	}
	for i, c := range children {
		spec := shape.Slots[i]
		if c == nil {
			if spec.Optional {
				continue
			}
			return fmt.Errorf("%v: required slot %d (%s) is absent", kind, i, spec.Name)
		}
		if !spec.accepts(c) {
			return fmt.Errorf("%v: child %d (%s) not allowed in %s slot",
				kind, i, describeRaw(c), spec.Name)
		}
	}
	return nil
}

func describeRaw(c *rawNode) string {
	if c.isToken() {
		return "token " + c.tokKind.String()
	}
	return c.kind.String()
}
