package syntax

// GenericParameterClause is the typed view of a '<T, U: Bound>' parameter
// clause on a declaration.
type GenericParameterClause struct {
	Node
}

func (c GenericParameterClause) LeftAngle() Token {
	tok, _ := c.child(0).Token()
	return tok
}

func (c GenericParameterClause) Parameters() GenericParameterList {
	return GenericParameterList{c.child(1)}
}

func (c GenericParameterClause) RightAngle() Token {
	tok, _ := c.child(2).Token()
	return tok
}

// MakeGenericParameterClause builds a generic parameter clause.
func MakeGenericParameterClause(leftAngle Token, parameters GenericParameterList, rightAngle Token) GenericParameterClause {
	return GenericParameterClause{MakeLayout(KindGenericParameterClause, []Node{
		leftAngle.Node,
		parameters.Node,
		rightAngle.Node,
	})}
}

// MakeBlankGenericParameterClause builds the all-missing clause placeholder.
func MakeBlankGenericParameterClause() GenericParameterClause {
	return GenericParameterClause{MakeBlank(KindGenericParameterClause)}
}

// GenericParameterList is the typed view of the parameter list inside a
// generic parameter clause.
type GenericParameterList struct {
	Node
}

func (l GenericParameterList) Len() int {
	return l.NumChildren()
}

func (l GenericParameterList) At(i int) GenericParameter {
	return GenericParameter{l.child(i)}
}

// MakeGenericParameterList builds a parameter list in source order.
func MakeGenericParameterList(params []GenericParameter) GenericParameterList {
	children := make([]Node, len(params))
	for i, p := range params {
		children[i] = p.Node
	}
	return GenericParameterList{MakeLayout(KindGenericParameterList, children)}
}

// MakeBlankGenericParameterList builds the empty parameter list.
func MakeBlankGenericParameterList() GenericParameterList {
	return GenericParameterList{MakeBlank(KindGenericParameterList)}
}

// GenericParameter is the typed view of one generic parameter, optionally
// bounded: 'T' or 'T: Bound'.
type GenericParameter struct {
	Node
}

func (p GenericParameter) Name() Token {
	tok, _ := p.child(0).Token()
	return tok
}

func (p GenericParameter) Colon() (Token, bool) {
	c, ok := p.Child(1)
	if !ok {
		return Token{}, false
	}
	return c.Token()
}

func (p GenericParameter) InheritedType() (Type, bool) {
	c, ok := p.Child(2)
	if !ok {
		return Type{}, false
	}
	return Type{c}, true
}

// MakeGenericParameter builds a generic parameter. Colon and bound are
// optional and must be supplied together or not at all by the grammar layer.
func MakeGenericParameter(name, colon Token, inherited Type) GenericParameter {
	return GenericParameter{MakeLayout(KindGenericParameter, []Node{
		name.Node,
		colon.Node,
		inherited.Node,
	})}
}

// MakeSimpleGenericParameter builds an unbounded parameter from a bare name,
// synthesizing the identifier token.
func MakeSimpleGenericParameter(name string, leading, trailing Trivia) GenericParameter {
	return MakeGenericParameter(MakeIdentifier(name, leading, trailing), Token{}, Type{})
}

// MakeBlankGenericParameter builds the all-missing parameter placeholder.
func MakeBlankGenericParameter() GenericParameter {
	return GenericParameter{MakeBlank(KindGenericParameter)}
}

// GenericArgumentClause is the typed view of a '<Int, String>' argument
// clause on a type reference.
type GenericArgumentClause struct {
	Node
}

func (c GenericArgumentClause) LeftAngle() Token {
	tok, _ := c.child(0).Token()
	return tok
}

func (c GenericArgumentClause) Arguments() GenericArgumentList {
	return GenericArgumentList{c.child(1)}
}

func (c GenericArgumentClause) RightAngle() Token {
	tok, _ := c.child(2).Token()
	return tok
}

// MakeGenericArgumentClause builds a generic argument clause.
func MakeGenericArgumentClause(leftAngle Token, arguments GenericArgumentList, rightAngle Token) GenericArgumentClause {
	return GenericArgumentClause{MakeLayout(KindGenericArgumentClause, []Node{
		leftAngle.Node,
		arguments.Node,
		rightAngle.Node,
	})}
}

// MakeBlankGenericArgumentClause builds the all-missing clause placeholder.
func MakeBlankGenericArgumentClause() GenericArgumentClause {
	return GenericArgumentClause{MakeBlank(KindGenericArgumentClause)}
}

// GenericArgumentList is the typed view of the type list inside a generic
// argument clause.
type GenericArgumentList struct {
	Node
}

func (l GenericArgumentList) Len() int {
	return l.NumChildren()
}

func (l GenericArgumentList) At(i int) Type {
	return Type{l.child(i)}
}

// MakeGenericArgumentList builds an argument list in source order.
func MakeGenericArgumentList(args []Type) GenericArgumentList {
	children := make([]Node, len(args))
	for i, a := range args {
		children[i] = a.Node
	}
	return GenericArgumentList{MakeLayout(KindGenericArgumentList, children)}
}

// MakeBlankGenericArgumentList builds the empty argument list.
func MakeBlankGenericArgumentList() GenericArgumentList {
	return GenericArgumentList{MakeBlank(KindGenericArgumentList)}
}

// GenericWhereClause is the typed view of a 'where …' clause.
type GenericWhereClause struct {
	Node
}

func (c GenericWhereClause) WhereKeyword() Token {
	tok, _ := c.child(0).Token()
	return tok
}

func (c GenericWhereClause) Requirements() GenericRequirementList {
	return GenericRequirementList{c.child(1)}
}

// MakeGenericWhereClause builds a where clause.
func MakeGenericWhereClause(whereKeyword Token, requirements GenericRequirementList) GenericWhereClause {
	return GenericWhereClause{MakeLayout(KindGenericWhereClause, []Node{
		whereKeyword.Node,
		requirements.Node,
	})}
}

// MakeBlankGenericWhereClause builds the all-missing clause placeholder.
func MakeBlankGenericWhereClause() GenericWhereClause {
	return GenericWhereClause{MakeBlank(KindGenericWhereClause)}
}

// GenericRequirementList is the typed view of the requirement list of a
// where clause.
type GenericRequirementList struct {
	Node
}

func (l GenericRequirementList) Len() int {
	return l.NumChildren()
}

func (l GenericRequirementList) At(i int) SameTypeRequirement {
	return SameTypeRequirement{l.child(i)}
}

// MakeGenericRequirementList builds a requirement list in source order.
func MakeGenericRequirementList(reqs []SameTypeRequirement) GenericRequirementList {
	children := make([]Node, len(reqs))
	for i, r := range reqs {
		children[i] = r.Node
	}
	return GenericRequirementList{MakeLayout(KindGenericRequirementList, children)}
}

// MakeBlankGenericRequirementList builds the empty requirement list.
func MakeBlankGenericRequirementList() GenericRequirementList {
	return GenericRequirementList{MakeBlank(KindGenericRequirementList)}
}

// SameTypeRequirement is the typed view of a 'T.Element == U' requirement.
// Any element may be missing; recovery keeps the shape.
type SameTypeRequirement struct {
	Node
}

func (r SameTypeRequirement) LeftType() TypeIdentifier {
	return TypeIdentifier{r.child(0)}
}

func (r SameTypeRequirement) Equality() Token {
	tok, _ := r.child(1).Token()
	return tok
}

func (r SameTypeRequirement) RightType() Type {
	return Type{r.child(2)}
}

// MakeSameTypeRequirement builds a same-type requirement.
func MakeSameTypeRequirement(left TypeIdentifier, equality Token, right Type) SameTypeRequirement {
	return SameTypeRequirement{MakeLayout(KindSameTypeRequirement, []Node{
		left.Node,
		equality.Node,
		right.Node,
	})}
}

// MakeBlankSameTypeRequirement builds the all-missing requirement
// placeholder.
func MakeBlankSameTypeRequirement() SameTypeRequirement {
	return SameTypeRequirement{MakeBlank(KindSameTypeRequirement)}
}
