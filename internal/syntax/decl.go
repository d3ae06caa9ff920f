package syntax

// StructDecl is the typed view of a struct declaration:
//
//	struct Name <Params> where … { members }
type StructDecl struct {
	Node
}

func (d StructDecl) StructKeyword() Token {
	tok, _ := d.child(0).Token()
	return tok
}

func (d StructDecl) Identifier() Token {
	tok, _ := d.child(1).Token()
	return tok
}

func (d StructDecl) GenericParameterClause() (GenericParameterClause, bool) {
	c, ok := d.Child(2)
	if !ok {
		return GenericParameterClause{}, false
	}
	return GenericParameterClause{c}, true
}

func (d StructDecl) GenericWhereClause() (GenericWhereClause, bool) {
	c, ok := d.Child(3)
	if !ok {
		return GenericWhereClause{}, false
	}
	return GenericWhereClause{c}, true
}

func (d StructDecl) LeftBrace() Token {
	tok, _ := d.child(4).Token()
	return tok
}

func (d StructDecl) Members() DeclMembers {
	return DeclMembers{d.child(5)}
}

func (d StructDecl) RightBrace() Token {
	tok, _ := d.child(6).Token()
	return tok
}

// WithIdentifier returns a copy of the declaration with the name replaced;
// every other child is shared with the receiver.
func (d StructDecl) WithIdentifier(tok Token) StructDecl {
	return StructDecl{d.WithChild(1, tok.Node)}
}

// WithMembers returns a copy of the declaration with the member list
// replaced; every other child is shared with the receiver.
func (d StructDecl) WithMembers(members DeclMembers) StructDecl {
	return StructDecl{d.WithChild(5, members.Node)}
}

// MakeStructDecl builds a struct declaration. The generic parameter clause
// and where clause are optional; pass zero views to omit them.
func MakeStructDecl(
	structKeyword Token,
	identifier Token,
	genericParams GenericParameterClause,
	whereClause GenericWhereClause,
	leftBrace Token,
	members DeclMembers,
	rightBrace Token,
) StructDecl {
	return StructDecl{MakeLayout(KindStructDecl, []Node{
		structKeyword.Node,
		identifier.Node,
		genericParams.Node,
		whereClause.Node,
		leftBrace.Node,
		members.Node,
		rightBrace.Node,
	})}
}

// MakeBlankStructDecl builds the all-missing struct declaration placeholder.
func MakeBlankStructDecl() StructDecl {
	return StructDecl{MakeBlank(KindStructDecl)}
}

// TypeAliasDecl is the typed view of a typealias declaration:
//
//	typealias Name <Params> = Type
type TypeAliasDecl struct {
	Node
}

func (d TypeAliasDecl) TypealiasKeyword() Token {
	tok, _ := d.child(0).Token()
	return tok
}

func (d TypeAliasDecl) Identifier() Token {
	tok, _ := d.child(1).Token()
	return tok
}

func (d TypeAliasDecl) GenericParameterClause() (GenericParameterClause, bool) {
	c, ok := d.Child(2)
	if !ok {
		return GenericParameterClause{}, false
	}
	return GenericParameterClause{c}, true
}

func (d TypeAliasDecl) EqualToken() Token {
	tok, _ := d.child(3).Token()
	return tok
}

func (d TypeAliasDecl) Type() Type {
	return Type{d.child(4)}
}

// WithType returns a copy of the alias with the aliased type replaced.
func (d TypeAliasDecl) WithType(ty Type) TypeAliasDecl {
	return TypeAliasDecl{d.WithChild(4, ty.Node)}
}

// MakeTypeAliasDecl builds a typealias declaration. The generic parameter
// clause is optional.
func MakeTypeAliasDecl(
	typealiasKeyword Token,
	identifier Token,
	genericParams GenericParameterClause,
	equal Token,
	ty Type,
) TypeAliasDecl {
	return TypeAliasDecl{MakeLayout(KindTypeAliasDecl, []Node{
		typealiasKeyword.Node,
		identifier.Node,
		genericParams.Node,
		equal.Node,
		ty.Node,
	})}
}

// MakeBlankTypeAliasDecl builds the all-missing typealias placeholder.
func MakeBlankTypeAliasDecl() TypeAliasDecl {
	return TypeAliasDecl{MakeBlank(KindTypeAliasDecl)}
}

// DeclMembers is the typed view of a declaration member list.
type DeclMembers struct {
	Node
}

// Len returns the member count.
func (m DeclMembers) Len() int {
	return m.NumChildren()
}

// At returns the i-th member.
func (m DeclMembers) At(i int) Decl {
	return Decl{m.child(i)}
}

// MakeDeclMembers builds a member list from declarations in source order.
func MakeDeclMembers(members []Decl) DeclMembers {
	children := make([]Node, len(members))
	for i, d := range members {
		children[i] = d.Node
	}
	return DeclMembers{MakeLayout(KindDeclMembers, children)}
}

// MakeBlankDeclMembers builds the empty member list.
func MakeBlankDeclMembers() DeclMembers {
	return DeclMembers{MakeBlank(KindDeclMembers)}
}
