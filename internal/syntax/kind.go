package syntax

// Kind represents the category of a tree node. KindToken tags token leaves;
// the remaining kinds are layout nodes whose child slots are governed by the
// shape registry.
type Kind uint8

const (
	// KindToken tags a terminal leaf; its TokenKind carries the category.
	KindToken Kind = iota
	// KindUnknown is a bag of tokens the grammar layer could not place.
	KindUnknown

	// KindStructDecl is a struct declaration.
	KindStructDecl
	// KindTypeAliasDecl is a typealias declaration.
	KindTypeAliasDecl
	// KindDeclMembers is the member list of a declaration body.
	KindDeclMembers

	// KindCodeBlock is a braced statement block.
	KindCodeBlock
	// KindFallthroughStmt is a fallthrough statement.
	KindFallthroughStmt
	// KindBreakStmt is a break statement with an optional label.
	KindBreakStmt
	// KindStmtList is an ordered statement list.
	KindStmtList

	// KindTypeAttribute is a single @attribute on a type.
	KindTypeAttribute
	// KindTypeAttributeList is an ordered list of type attributes.
	KindTypeAttributeList
	// KindBalancedTokens is the raw token payload inside attribute parens.
	KindBalancedTokens

	// KindTypeIdentifier is a (possibly generic) named type reference.
	KindTypeIdentifier
	// KindTupleType is a parenthesized tuple type.
	KindTupleType
	// KindTupleTypeElement is one tuple type element with optional label.
	KindTupleTypeElement
	// KindTupleTypeElementList is the element list of a tuple type.
	KindTupleTypeElementList
	// KindOptionalType is a postfix '?' type.
	KindOptionalType
	// KindImplicitOptionalType is a postfix '!' type.
	KindImplicitOptionalType
	// KindMetatypeType is a '.Type' or '.Protocol' metatype reference.
	KindMetatypeType
	// KindArrayType is a sugared '[Element]' type.
	KindArrayType
	// KindDictionaryType is a sugared '[Key : Value]' type.
	KindDictionaryType
	// KindFunctionTypeArgument is one argument of a function type.
	KindFunctionTypeArgument
	// KindFunctionType is a '(…) -> Result' function type.
	KindFunctionType
	// KindTypeArgumentList is the argument list of a function type.
	KindTypeArgumentList

	// KindGenericParameterClause is an '<…>' parameter clause.
	KindGenericParameterClause
	// KindGenericParameterList is the parameter list inside the clause.
	KindGenericParameterList
	// KindGenericParameter is a single generic parameter.
	KindGenericParameter
	// KindGenericArgumentClause is an '<…>' argument clause.
	KindGenericArgumentClause
	// KindGenericArgumentList is the argument list inside the clause.
	KindGenericArgumentList
	// KindGenericWhereClause is a 'where …' clause.
	KindGenericWhereClause
	// KindGenericRequirementList is the requirement list of a where clause.
	KindGenericRequirementList
	// KindSameTypeRequirement is a 'T == U' requirement.
	KindSameTypeRequirement

	kindCount
)

var kindNames = [...]string{
	KindToken:                  "Token",
	KindUnknown:                "Unknown",
	KindStructDecl:             "StructDecl",
	KindTypeAliasDecl:          "TypeAliasDecl",
	KindDeclMembers:            "DeclMembers",
	KindCodeBlock:              "CodeBlock",
	KindFallthroughStmt:        "FallthroughStmt",
	KindBreakStmt:              "BreakStmt",
	KindStmtList:               "StmtList",
	KindTypeAttribute:          "TypeAttribute",
	KindTypeAttributeList:      "TypeAttributeList",
	KindBalancedTokens:         "BalancedTokens",
	KindTypeIdentifier:         "TypeIdentifier",
	KindTupleType:              "TupleType",
	KindTupleTypeElement:       "TupleTypeElement",
	KindTupleTypeElementList:   "TupleTypeElementList",
	KindOptionalType:           "OptionalType",
	KindImplicitOptionalType:   "ImplicitOptionalType",
	KindMetatypeType:           "MetatypeType",
	KindArrayType:              "ArrayType",
	KindDictionaryType:         "DictionaryType",
	KindFunctionTypeArgument:   "FunctionTypeArgument",
	KindFunctionType:           "FunctionType",
	KindTypeArgumentList:       "TypeArgumentList",
	KindGenericParameterClause: "GenericParameterClause",
	KindGenericParameterList:   "GenericParameterList",
	KindGenericParameter:       "GenericParameter",
	KindGenericArgumentClause:  "GenericArgumentClause",
	KindGenericArgumentList:    "GenericArgumentList",
	KindGenericWhereClause:     "GenericWhereClause",
	KindGenericRequirementList: "GenericRequirementList",
	KindSameTypeRequirement:    "SameTypeRequirement",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// ValidKind reports whether k names a known node kind.
func ValidKind(k Kind) bool {
	return k < kindCount
}

// KindByName resolves a kind from its String() form.
func KindByName(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return KindToken, false
}

// Kinds returns every layout kind in declaration order, KindToken excluded.
func Kinds() []Kind {
	out := make([]Kind, 0, int(kindCount)-1)
	for k := KindUnknown; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// IsTypeKind reports whether k belongs to the type-syntax family.
func IsTypeKind(k Kind) bool {
	switch k {
	case KindTypeIdentifier, KindTupleType, KindOptionalType,
		KindImplicitOptionalType, KindMetatypeType, KindArrayType,
		KindDictionaryType, KindFunctionType, KindUnknown:
		return true
	default:
		return false
	}
}

// IsDeclKind reports whether k belongs to the declaration family.
func IsDeclKind(k Kind) bool {
	switch k {
	case KindStructDecl, KindTypeAliasDecl, KindUnknown:
		return true
	default:
		return false
	}
}

// IsStmtKind reports whether k belongs to the statement family.
func IsStmtKind(k Kind) bool {
	switch k {
	case KindCodeBlock, KindFallthroughStmt, KindBreakStmt, KindUnknown:
		return true
	default:
		return false
	}
}

// typeKinds lists the type family in deterministic blank-choice order.
var typeKinds = []Kind{
	KindTypeIdentifier, KindTupleType, KindOptionalType,
	KindImplicitOptionalType, KindMetatypeType, KindArrayType,
	KindDictionaryType, KindFunctionType, KindUnknown,
}

// declKinds lists the declaration family in deterministic blank-choice order.
var declKinds = []Kind{KindStructDecl, KindTypeAliasDecl, KindUnknown}

// stmtKinds lists the statement family in deterministic blank-choice order.
var stmtKinds = []Kind{KindCodeBlock, KindFallthroughStmt, KindBreakStmt, KindUnknown}
