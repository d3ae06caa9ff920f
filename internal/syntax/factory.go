package syntax

import "fmt"

// The factory is the only sanctioned construction surface. Shape violations
// here are bugs in the calling grammar layer, not runtime conditions, so
// they panic; malformed *source* is represented with missing nodes instead
// and never fails construction.

// MakeToken builds a non-missing token from scanner output. The kind must be
// a known terminal; kinds with grammar-dictated text must carry exactly that
// text (the canonical constructors make this impossible to get wrong).
func MakeToken(kind TokenKind, text string, leading, trailing Trivia) Token {
	if err := CheckToken(kind, text); err != nil {
		panic("syntax: contract violation: " + err.Error())
	}
	return Token{wrap(newRawToken(kind, text, leading, trailing, false))}
}

// MakeMissingToken builds the placeholder token the grammar layer substitutes
// when required input could not be scanned. Text and trivia are empty; the
// caller decides whether surrounding trivia moves to neighbors.
func MakeMissingToken(kind TokenKind) Token {
	if !ValidTokenKind(kind) {
		panic(fmt.Sprintf("syntax: contract violation: unknown token kind %d", kind))
	}
	return Token{wrap(newRawToken(kind, "", nil, nil, true))}
}

// CheckToken validates a terminal kind/text pair. External decoders use it to
// reject malformed input with an error instead of the factory's panic.
func CheckToken(kind TokenKind, text string) error {
	if !ValidTokenKind(kind) {
		return fmt.Errorf("unknown token kind %d", kind)
	}
	if fixed, ok := kind.FixedText(); ok && text != fixed {
		return fmt.Errorf("%v token must read %q, got %q", kind, fixed, text)
	}
	return nil
}

// CheckLayout validates a would-be child slice against the shape registry
// without constructing anything. Absent slots are zero Nodes.
func CheckLayout(kind Kind, children []Node) error {
	if kind == KindToken {
		return fmt.Errorf("KindToken is not a layout kind")
	}
	if !ValidKind(kind) {
		return fmt.Errorf("unknown kind %d", kind)
	}
	return checkShape(kind, rawChildren(children))
}

// MakeLayout is the low-level validated layout constructor. The typed
// Make<Kind> operations delegate here; calling it with a child slice that
// violates the registry is a contract violation and panics.
func MakeLayout(kind Kind, children []Node) Node {
	if err := CheckLayout(kind, children); err != nil {
		panic("syntax: contract violation: " + err.Error())
	}
	return wrap(newRawLayout(kind, rawChildren(children)))
}

/// MakeBlank builds the fully-missing placeholder for any layout kind:
// required slots hold the blank form of their first allowed kind, optional
// slots stay absent, lists come out empty. The result always satisfies the
// kind's shape and reports IsMissing().
func MakeBlank(kind Kind) Node {
	if kind == KindToken || !ValidKind(kind) {
		panic(fmt.Sprintf("syntax: contract violation: no blank form for kind %d", kind))
	}
	return wrap(blankRaw(kind))
}

func blankRaw(kind Kind) *rawNode {
	shape := shapes[kind]
	if shape.Variadic {
		return newRawLayout(kind, nil)
	}
	children := make([]*rawNode, len(shape.Slots))
	for i, spec := range shape.Slots {
		if spec.Optional {
			continue
		}
		children[i] = blankSlot(spec)
	}
	return newRawLayout(kind, children)
}

// blankSlot picks the deterministic placeholder for a required slot: the
// first allowed terminal as a missing token, or the blank form of the first
// allowed layout kind.
func blankSlot(spec SlotSpec) *rawNode {
	if len(spec.Tokens) > 0 {
		return newRawToken(spec.Tokens[0], "", nil, nil, true)
	}
	if spec.AnyToken {
		return newRawToken(UnknownToken, "", nil, nil, true)
	}
	return blankRaw(spec.Kinds[0])
}

func rawChildren(children []Node) []*rawNode {
	raws := make([]*rawNode, len(children))
	for i, c := range children {
		raws[i] = c.rawOrNil()
	}
	return raws
}

// Unknown is a shape-correct bag of tokens covering source the grammar layer
// could not interpret. It keeps malformed fragments printable.
type Unknown struct {
	Node
}

// Tokens returns the covered tokens in source order.
func (u Unknown) Tokens() []Token {
	out := make([]Token, 0, u.NumChildren())
	for i := 0; i < u.NumChildren(); i++ {
		c := u.child(i)
		tok, _ := c.Token()
		out = append(out, tok)
	}
	return out
}

// MakeUnknown collects scanned tokens into a piece of unknown syntax.
func MakeUnknown(tokens []Token) Unknown {
	children := make([]Node, len(tokens))
	for i, t := range tokens {
		children[i] = t.Node
	}
	return Unknown{MakeLayout(KindUnknown, children)}
}

// MakeBlankUnknown returns the empty unknown bag.
func MakeBlankUnknown() Unknown {
	return Unknown{MakeBlank(KindUnknown)}
}

// AsUnknown narrows a generic node.
func (n Node) AsUnknown() (Unknown, bool) {
	if n.raw == nil || n.raw.kind != KindUnknown {
		return Unknown{}, false
	}
	return Unknown{n}, true
}
