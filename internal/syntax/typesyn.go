package syntax

// TypeAttribute is the typed view of a single @attribute, optionally with a
// parenthesized balanced-token payload.
type TypeAttribute struct {
	Node
}

func (a TypeAttribute) AtSign() Token {
	tok, _ := a.child(0).Token()
	return tok
}

func (a TypeAttribute) Identifier() Token {
	tok, _ := a.child(1).Token()
	return tok
}

func (a TypeAttribute) LeftParen() (Token, bool) {
	c, ok := a.Child(2)
	if !ok {
		return Token{}, false
	}
	return c.Token()
}

func (a TypeAttribute) BalancedTokens() (BalancedTokens, bool) {
	c, ok := a.Child(3)
	if !ok {
		return BalancedTokens{}, false
	}
	return BalancedTokens{c}, true
}

func (a TypeAttribute) RightParen() (Token, bool) {
	c, ok := a.Child(4)
	if !ok {
		return Token{}, false
	}
	return c.Token()
}

// MakeTypeAttribute builds an @attribute. The paren payload is optional;
// pass zero views to build a bare '@name'.
func MakeTypeAttribute(atSign, identifier, leftParen Token, balanced BalancedTokens, rightParen Token) TypeAttribute {
	return TypeAttribute{MakeLayout(KindTypeAttribute, []Node{
		atSign.Node,
		identifier.Node,
		leftParen.Node,
		balanced.Node,
		rightParen.Node,
	})}
}

// MakeBlankTypeAttribute builds the all-missing attribute placeholder.
func MakeBlankTypeAttribute() TypeAttribute {
	return TypeAttribute{MakeBlank(KindTypeAttribute)}
}

// TypeAttributeList is the typed view of an ordered attribute list.
type TypeAttributeList struct {
	Node
}

func (l TypeAttributeList) Len() int {
	return l.NumChildren()
}

func (l TypeAttributeList) At(i int) TypeAttribute {
	return TypeAttribute{l.child(i)}
}

// MakeTypeAttributeList builds an attribute list in source order.
func MakeTypeAttributeList(attrs []TypeAttribute) TypeAttributeList {
	children := make([]Node, len(attrs))
	for i, a := range attrs {
		children[i] = a.Node
	}
	return TypeAttributeList{MakeLayout(KindTypeAttributeList, children)}
}

// MakeBlankTypeAttributeList builds the empty attribute list.
func MakeBlankTypeAttributeList() TypeAttributeList {
	return TypeAttributeList{MakeBlank(KindTypeAttributeList)}
}

// BalancedTokens is the typed view of the raw token run inside attribute
// parens. Any terminal is acceptable; the grammar layer only checks
// delimiter balance.
type BalancedTokens struct {
	Node
}

func (b BalancedTokens) Len() int {
	return b.NumChildren()
}

func (b BalancedTokens) At(i int) Token {
	tok, _ := b.child(i).Token()
	return tok
}

// MakeBalancedTokens collects tokens into a balanced-token run.
func MakeBalancedTokens(tokens []Token) BalancedTokens {
	children := make([]Node, len(tokens))
	for i, t := range tokens {
		children[i] = t.Node
	}
	return BalancedTokens{MakeLayout(KindBalancedTokens, children)}
}

// MakeBlankBalancedTokens builds the empty token run.
func MakeBlankBalancedTokens() BalancedTokens {
	return BalancedTokens{MakeBlank(KindBalancedTokens)}
}

// TypeIdentifier is the typed view of a named type reference, optionally
// generic: 'Name' or 'Name<Args>'.
type TypeIdentifier struct {
	Node
}

func (t TypeIdentifier) Identifier() Token {
	tok, _ := t.child(0).Token()
	return tok
}

func (t TypeIdentifier) GenericArgumentClause() (GenericArgumentClause, bool) {
	c, ok := t.Child(1)
	if !ok {
		return GenericArgumentClause{}, false
	}
	return GenericArgumentClause{c}, true
}

// MakeTypeIdentifier builds a (possibly generic) named type reference. The
// argument clause is optional.
func MakeTypeIdentifier(identifier Token, genericArgs GenericArgumentClause) TypeIdentifier {
	return TypeIdentifier{MakeLayout(KindTypeIdentifier, []Node{
		identifier.Node,
		genericArgs.Node,
	})}
}

// MakeSimpleTypeIdentifier builds a non-generic named type reference from a
// bare name, synthesizing the identifier token.
func MakeSimpleTypeIdentifier(name string, leading, trailing Trivia) TypeIdentifier {
	return MakeTypeIdentifier(MakeIdentifier(name, leading, trailing), GenericArgumentClause{})
}

// MakeAnyTypeIdentifier builds the bare 'Any' type.
func MakeAnyTypeIdentifier() TypeIdentifier {
	return MakeSimpleTypeIdentifier("Any", nil, nil)
}

// MakeSelfTypeIdentifier builds the bare 'Self' type.
func MakeSelfTypeIdentifier() TypeIdentifier {
	return MakeSimpleTypeIdentifier("Self", nil, nil)
}

// MakeBlankTypeIdentifier builds the all-missing type reference placeholder.
func MakeBlankTypeIdentifier() TypeIdentifier {
	return TypeIdentifier{MakeBlank(KindTypeIdentifier)}
}

// TupleType is the typed view of a parenthesized tuple type.
type TupleType struct {
	Node
}

func (t TupleType) LeftParen() Token {
	tok, _ := t.child(0).Token()
	return tok
}

func (t TupleType) Elements() TupleTypeElementList {
	return TupleTypeElementList{t.child(1)}
}

func (t TupleType) RightParen() Token {
	tok, _ := t.child(2).Token()
	return tok
}

// MakeTupleType builds a tuple type.
func MakeTupleType(leftParen Token, elements TupleTypeElementList, rightParen Token) TupleType {
	return TupleType{MakeLayout(KindTupleType, []Node{
		leftParen.Node,
		elements.Node,
		rightParen.Node,
	})}
}

// MakeVoidTupleType builds the bare '()' void type.
func MakeVoidTupleType() TupleType {
	return MakeTupleType(
		MakeLeftParenToken(nil, nil),
		MakeBlankTupleTypeElementList(),
		MakeRightParenToken(nil, nil),
	)
}

// MakeBlankTupleType builds the all-missing tuple type placeholder.
func MakeBlankTupleType() TupleType {
	return TupleType{MakeBlank(KindTupleType)}
}

// TupleTypeElement is the typed view of one tuple type element, optionally
// labeled and optionally carrying its trailing separator.
type TupleTypeElement struct {
	Node
}

func (e TupleTypeElement) Label() (Token, bool) {
	c, ok := e.Child(0)
	if !ok {
		return Token{}, false
	}
	return c.Token()
}

func (e TupleTypeElement) Colon() (Token, bool) {
	c, ok := e.Child(1)
	if !ok {
		return Token{}, false
	}
	return c.Token()
}

func (e TupleTypeElement) Type() Type {
	return Type{e.child(2)}
}

func (e TupleTypeElement) TrailingComma() (Token, bool) {
	c, ok := e.Child(3)
	if !ok {
		return Token{}, false
	}
	return c.Token()
}

// MakeTupleTypeElement builds a tuple type element in full generality: label,
// colon, and trailing comma are all optional.
func MakeTupleTypeElement(label, colon Token, ty Type, trailingComma Token) TupleTypeElement {
	return TupleTypeElement{MakeLayout(KindTupleTypeElement, []Node{
		label.Node,
		colon.Node,
		ty.Node,
		trailingComma.Node,
	})}
}

/// MakeLabeledTupleTypeElement builds a 'Label: Type' element. Equivalent to
// the canonical form with no trailing comma.
func MakeLabeledTupleTypeElement(label, colon Token, ty Type) TupleTypeElement {
	return MakeTupleTypeElement(label, colon, ty, Token{})
}

// MakeTupleTypeElementOf builds an unlabeled element around a type.
// Equivalent to the canonical form with every optional slot absent.
func MakeTupleTypeElementOf(ty Type) TupleTypeElement {
	return MakeTupleTypeElement(Token{}, Token{}, ty, Token{})
}

// MakeBlankTupleTypeElement builds the all-missing element placeholder.
func MakeBlankTupleTypeElement() TupleTypeElement {
	return TupleTypeElement{MakeBlank(KindTupleTypeElement)}
}

// TupleTypeElementList is the typed view of a tuple element list.
type TupleTypeElementList struct {
	Node
}

func (l TupleTypeElementList) Len() int {
	return l.NumChildren()
}

func (l TupleTypeElementList) At(i int) TupleTypeElement {
	return TupleTypeElement{l.child(i)}
}

// MakeTupleTypeElementList builds an element list in source order.
func MakeTupleTypeElementList(elements []TupleTypeElement) TupleTypeElementList {
	children := make([]Node, len(elements))
	for i, e := range elements {
		children[i] = e.Node
	}
	return TupleTypeElementList{MakeLayout(KindTupleTypeElementList, children)}
}

// MakeBlankTupleTypeElementList builds the empty element list.
func MakeBlankTupleTypeElementList() TupleTypeElementList {
	return TupleTypeElementList{MakeBlank(KindTupleTypeElementList)}
}

// OptionalType is the typed view of a postfix '?' type such as 'Int?'.
type OptionalType struct {
	Node
}

func (t OptionalType) Base() Type {
	return Type{t.child(0)}
}

func (t OptionalType) Question() Token {
	tok, _ := t.child(1).Token()
	return tok
}

// MakeOptionalType builds an optional type from a base and its '?' token.
func MakeOptionalType(base Type, question Token) OptionalType {
	return OptionalType{MakeLayout(KindOptionalType, []Node{
		base.Node,
		question.Node,
	})}
}

// MakeOptionalTypeOf sugars the common case: the postfix '?' is synthesized
// with empty leading trivia and the given trailing trivia.
func MakeOptionalTypeOf(base Type, trailing Trivia) OptionalType {
	return MakeOptionalType(base, MakeQuestionPostfixToken(trailing))
}

// MakeBlankOptionalType builds the all-missing optional type placeholder.
func MakeBlankOptionalType() OptionalType {
	return OptionalType{MakeBlank(KindOptionalType)}
}

// ImplicitOptionalType is the typed view of a postfix '!' type such as
// 'Int!'.
type ImplicitOptionalType struct {
	Node
}

func (t ImplicitOptionalType) Base() Type {
	return Type{t.child(0)}
}

func (t ImplicitOptionalType) Exclaim() Token {
	tok, _ := t.child(1).Token()
	return tok
}

// MakeImplicitOptionalType builds an implicitly unwrapped optional type.
func MakeImplicitOptionalType(base Type, exclaim Token) ImplicitOptionalType {
	return ImplicitOptionalType{MakeLayout(KindImplicitOptionalType, []Node{
		base.Node,
		exclaim.Node,
	})}
}

// MakeImplicitOptionalTypeOf sugars the common case with a synthesized '!'.
func MakeImplicitOptionalTypeOf(base Type, trailing Trivia) ImplicitOptionalType {
	return MakeImplicitOptionalType(base, MakeExclaimPostfixToken(trailing))
}

// MakeBlankImplicitOptionalType builds the all-missing placeholder.
func MakeBlankImplicitOptionalType() ImplicitOptionalType {
	return ImplicitOptionalType{MakeBlank(KindImplicitOptionalType)}
}

// MetatypeType is the typed view of 'Base.Type' or 'Base.Protocol'. The meta
// identifier is a terminal here, not a nested type.
type MetatypeType struct {
	Node
}

func (t MetatypeType) Base() Type {
	return Type{t.child(0)}
}

func (t MetatypeType) Dot() Token {
	tok, _ := t.child(1).Token()
	return tok
}

func (t MetatypeType) MetaIdentifier() Token {
	tok, _ := t.child(2).Token()
	return tok
}

// MakeMetatypeType builds a metatype reference.
func MakeMetatypeType(base Type, dot, metaIdentifier Token) MetatypeType {
	return MetatypeType{MakeLayout(KindMetatypeType, []Node{
		base.Node,
		dot.Node,
		metaIdentifier.Node,
	})}
}

// MakeBlankMetatypeType builds the all-missing metatype placeholder.
func MakeBlankMetatypeType() MetatypeType {
	return MetatypeType{MakeBlank(KindMetatypeType)}
}

// ArrayType is the typed view of a sugared '[Element]' type.
type ArrayType struct {
	Node
}

func (t ArrayType) LeftSquare() Token {
	tok, _ := t.child(0).Token()
	return tok
}

func (t ArrayType) Element() Type {
	return Type{t.child(1)}
}

func (t ArrayType) RightSquare() Token {
	tok, _ := t.child(2).Token()
	return tok
}

// MakeArrayType builds a sugared array type.
func MakeArrayType(leftSquare Token, element Type, rightSquare Token) ArrayType {
	return ArrayType{MakeLayout(KindArrayType, []Node{
		leftSquare.Node,
		element.Node,
		rightSquare.Node,
	})}
}

// MakeBlankArrayType builds the all-missing array type placeholder.
func MakeBlankArrayType() ArrayType {
	return ArrayType{MakeBlank(KindArrayType)}
}

// DictionaryType is the typed view of a sugared '[Key : Value]' type.
type DictionaryType struct {
	Node
}

func (t DictionaryType) LeftSquare() Token {
	tok, _ := t.child(0).Token()
	return tok
}

func (t DictionaryType) Key() Type {
	return Type{t.child(1)}
}

func (t DictionaryType) Colon() Token {
	tok, _ := t.child(2).Token()
	return tok
}

func (t DictionaryType) Value() Type {
	return Type{t.child(3)}
}

func (t DictionaryType) RightSquare() Token {
	tok, _ := t.child(4).Token()
	return tok
}

// MakeDictionaryType builds a sugared dictionary type.
func MakeDictionaryType(leftSquare Token, key Type, colon Token, value Type, rightSquare Token) DictionaryType {
	return DictionaryType{MakeLayout(KindDictionaryType, []Node{
		leftSquare.Node,
		key.Node,
		colon.Node,
		value.Node,
		rightSquare.Node,
	})}
}

// MakeBlankDictionaryType builds the all-missing dictionary placeholder.
func MakeBlankDictionaryType() DictionaryType {
	return DictionaryType{MakeBlank(KindDictionaryType)}
}

// FunctionTypeArgument is the typed view of one function type argument in
// full generality: 'external local: @attrs inout Type'.
type FunctionTypeArgument struct {
	Node
}

func (a FunctionTypeArgument) ExternalName() (Token, bool) {
	c, ok := a.Child(0)
	if !ok {
		return Token{}, false
	}
	return c.Token()
}

func (a FunctionTypeArgument) LocalName() (Token, bool) {
	c, ok := a.Child(1)
	if !ok {
		return Token{}, false
	}
	return c.Token()
}

func (a FunctionTypeArgument) Attributes() (TypeAttributeList, bool) {
	c, ok := a.Child(2)
	if !ok {
		return TypeAttributeList{}, false
	}
	return TypeAttributeList{c}, true
}

func (a FunctionTypeArgument) InoutKeyword() (Token, bool) {
	c, ok := a.Child(3)
	if !ok {
		return Token{}, false
	}
	return c.Token()
}

func (a FunctionTypeArgument) Colon() (Token, bool) {
	c, ok := a.Child(4)
	if !ok {
		return Token{}, false
	}
	return c.Token()
}

func (a FunctionTypeArgument) Type() Type {
	return Type{a.child(5)}
}

// MakeFunctionTypeArgument builds a function type argument in full
// generality; every slot but the type itself is optional.
func MakeFunctionTypeArgument(
	externalName Token,
	localName Token,
	attributes TypeAttributeList,
	inoutKeyword Token,
	colon Token,
	ty Type,
) FunctionTypeArgument {
	return FunctionTypeArgument{MakeLayout(KindFunctionTypeArgument, []Node{
		externalName.Node,
		localName.Node,
		attributes.Node,
		inoutKeyword.Node,
		colon.Node,
		ty.Node,
	})}
}

// MakeSimpleFunctionTypeArgument builds a 'name: Type' argument. Equivalent
// to the canonical form with the remaining slots absent.
func MakeSimpleFunctionTypeArgument(localName, colon Token, ty Type) FunctionTypeArgument {
	return MakeFunctionTypeArgument(Token{}, localName, TypeAttributeList{}, Token{}, colon, ty)
}

// MakeFunctionTypeArgumentOf builds a bare positional argument around a
// type. Equivalent to the canonical form with every optional slot absent.
func MakeFunctionTypeArgumentOf(ty Type) FunctionTypeArgument {
	return MakeFunctionTypeArgument(Token{}, Token{}, TypeAttributeList{}, Token{}, Token{}, ty)
}

// MakeBlankFunctionTypeArgument builds the all-missing argument placeholder.
func MakeBlankFunctionTypeArgument() FunctionTypeArgument {
	return FunctionTypeArgument{MakeBlank(KindFunctionTypeArgument)}
}

// FunctionType is the typed view of a function type such as
// '(Int, Int) throws -> Int'.
type FunctionType struct {
	Node
}

func (t FunctionType) Attributes() (TypeAttributeList, bool) {
	c, ok := t.Child(0)
	if !ok {
		return TypeAttributeList{}, false
	}
	return TypeAttributeList{c}, true
}

func (t FunctionType) LeftParen() Token {
	tok, _ := t.child(1).Token()
	return tok
}

func (t FunctionType) Arguments() TypeArgumentList {
	return TypeArgumentList{t.child(2)}
}

func (t FunctionType) RightParen() Token {
	tok, _ := t.child(3).Token()
	return tok
}

func (t FunctionType) ThrowsOrRethrows() (Token, bool) {
	c, ok := t.Child(4)
	if !ok {
		return Token{}, false
	}
	return c.Token()
}

func (t FunctionType) Arrow() Token {
	tok, _ := t.child(5).Token()
	return tok
}

func (t FunctionType) ReturnType() Type {
	return Type{t.child(6)}
}

// MakeFunctionType builds a function type. Attributes and the throws
// specifier are optional.
func MakeFunctionType(
	attributes TypeAttributeList,
	leftParen Token,
	arguments TypeArgumentList,
	rightParen Token,
	throwsOrRethrows Token,
	arrow Token,
	returnType Type,
) FunctionType {
	return FunctionType{MakeLayout(KindFunctionType, []Node{
		attributes.Node,
		leftParen.Node,
		arguments.Node,
		rightParen.Node,
		throwsOrRethrows.Node,
		arrow.Node,
		returnType.Node,
	})}
}

// MakeBlankFunctionType builds the all-missing function type placeholder.
func MakeBlankFunctionType() FunctionType {
	return FunctionType{MakeBlank(KindFunctionType)}
}

// TypeArgumentList is the typed view of a function type's argument list.
type TypeArgumentList struct {
	Node
}

func (l TypeArgumentList) Len() int {
	return l.NumChildren()
}

func (l TypeArgumentList) At(i int) FunctionTypeArgument {
	return FunctionTypeArgument{l.child(i)}
}

// MakeTypeArgumentList builds an argument list in source order.
func MakeTypeArgumentList(args []FunctionTypeArgument) TypeArgumentList {
	children := make([]Node, len(args))
	for i, a := range args {
		children[i] = a.Node
	}
	return TypeArgumentList{MakeLayout(KindTypeArgumentList, children)}
}

// MakeBlankTypeArgumentList builds the empty argument list.
func MakeBlankTypeArgumentList() TypeArgumentList {
	return TypeArgumentList{MakeBlank(KindTypeArgumentList)}
}
