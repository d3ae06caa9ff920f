package syntax

// Category wrappers hold any member of a kind family. They are the currency
// the factory accepts where the grammar says "any type" (or decl, or stmt):
// a concrete view upcasts with its AsType/AsDecl/AsStmt method, and callers
// narrow back with the As<Kind> downcasts below. The zero value is the
// absent sentinel, same as for concrete views.

// Type wraps any node of the type-syntax family.
type Type struct {
	Node
}

// AsType narrows a generic node to the type family.
func (n Node) AsType() (Type, bool) {
	if n.raw == nil || !IsTypeKind(n.raw.kind) {
		return Type{}, false
	}
	return Type{n}, true
}

func (t TypeIdentifier) AsType() Type       { return Type{t.Node} }
func (t TupleType) AsType() Type            { return Type{t.Node} }
func (t OptionalType) AsType() Type         { return Type{t.Node} }
func (t ImplicitOptionalType) AsType() Type { return Type{t.Node} }
func (t MetatypeType) AsType() Type         { return Type{t.Node} }
func (t ArrayType) AsType() Type            { return Type{t.Node} }
func (t DictionaryType) AsType() Type       { return Type{t.Node} }
func (t FunctionType) AsType() Type         { return Type{t.Node} }
func (u Unknown) AsType() Type              { return Type{u.Node} }

func (t Type) AsTypeIdentifier() (TypeIdentifier, bool) {
	if t.raw == nil || t.raw.kind != KindTypeIdentifier {
		return TypeIdentifier{}, false
	}
	return TypeIdentifier{t.Node}, true
}

func (t Type) AsTupleType() (TupleType, bool) {
	if t.raw == nil || t.raw.kind != KindTupleType {
		return TupleType{}, false
	}
	return TupleType{t.Node}, true
}

func (t Type) AsOptionalType() (OptionalType, bool) {
	if t.raw == nil || t.raw.kind != KindOptionalType {
		return OptionalType{}, false
	}
	return OptionalType{t.Node}, true
}

func (t Type) AsImplicitOptionalType() (ImplicitOptionalType, bool) {
	if t.raw == nil || t.raw.kind != KindImplicitOptionalType {
		return ImplicitOptionalType{}, false
	}
	return ImplicitOptionalType{t.Node}, true
}

func (t Type) AsMetatypeType() (MetatypeType, bool) {
	if t.raw == nil || t.raw.kind != KindMetatypeType {
		return MetatypeType{}, false
	}
	return MetatypeType{t.Node}, true
}

func (t Type) AsArrayType() (ArrayType, bool) {
	if t.raw == nil || t.raw.kind != KindArrayType {
		return ArrayType{}, false
	}
	return ArrayType{t.Node}, true
}

func (t Type) AsDictionaryType() (DictionaryType, bool) {
	if t.raw == nil || t.raw.kind != KindDictionaryType {
		return DictionaryType{}, false
	}
	return DictionaryType{t.Node}, true
}

func (t Type) AsFunctionType() (FunctionType, bool) {
	if t.raw == nil || t.raw.kind != KindFunctionType {
		return FunctionType{}, false
	}
	return FunctionType{t.Node}, true
}

// Decl wraps any node of the declaration family.
type Decl struct {
	Node
}

// AsDecl narrows a generic node to the declaration family.
func (n Node) AsDecl() (Decl, bool) {
	if n.raw == nil || !IsDeclKind(n.raw.kind) {
		return Decl{}, false
	}
	return Decl{n}, true
}

func (d StructDecl) AsDecl() Decl    { return Decl{d.Node} }
func (d TypeAliasDecl) AsDecl() Decl { return Decl{d.Node} }
func (u Unknown) AsDecl() Decl       { return Decl{u.Node} }

func (d Decl) AsStructDecl() (StructDecl, bool) {
	if d.raw == nil || d.raw.kind != KindStructDecl {
		return StructDecl{}, false
	}
	return StructDecl{d.Node}, true
}

func (d Decl) AsTypeAliasDecl() (TypeAliasDecl, bool) {
	if d.raw == nil || d.raw.kind != KindTypeAliasDecl {
		return TypeAliasDecl{}, false
	}
	return TypeAliasDecl{d.Node}, true
}

// Stmt wraps any node of the statement family.
type Stmt struct {
	Node
}

// AsStmt narrows a generic node to the statement family.
func (n Node) AsStmt() (Stmt, bool) {
	if n.raw == nil || !IsStmtKind(n.raw.kind) {
		return Stmt{}, false
	}
	return Stmt{n}, true
}

func (b CodeBlock) AsStmt() Stmt       { return Stmt{b.Node} }
func (s FallthroughStmt) AsStmt() Stmt { return Stmt{s.Node} }
func (s BreakStmt) AsStmt() Stmt       { return Stmt{s.Node} }
func (u Unknown) AsStmt() Stmt         { return Stmt{u.Node} }

func (s Stmt) AsCodeBlock() (CodeBlock, bool) {
	if s.raw == nil || s.raw.kind != KindCodeBlock {
		return CodeBlock{}, false
	}
	return CodeBlock{s.Node}, true
}

func (s Stmt) AsFallthroughStmt() (FallthroughStmt, bool) {
	if s.raw == nil || s.raw.kind != KindFallthroughStmt {
		return FallthroughStmt{}, false
	}
	return FallthroughStmt{s.Node}, true
}

func (s Stmt) AsBreakStmt() (BreakStmt, bool) {
	if s.raw == nil || s.raw.kind != KindBreakStmt {
		return BreakStmt{}, false
	}
	return BreakStmt{s.Node}, true
}
