package syntax

import (
	"io"

	"crest/internal/source"
)

// Node is a lightweight view over a shared raw node, optionally carrying the
// context of the parent it was reached through. All data lives in the raw
// node; any number of views may wrap the same one. The zero Node is the
// explicit "absent" value and reports Valid() == false.
type Node struct {
	raw    *rawNode
	parent *Node
	slot   int
}

func wrap(raw *rawNode) Node {
	return Node{raw: raw, slot: -1}
}

// Valid reports whether the view refers to a node at all.
func (n Node) Valid() bool {
	return n.raw != nil
}

// Kind returns the node kind; KindToken for token leaves.
func (n Node) Kind() Kind {
	if n.raw == nil {
		panic("syntax: Kind on absent node")
	}
	return n.raw.kind
}

// IsToken reports whether the node is a terminal leaf.
func (n Node) IsToken() bool {
	return n.raw != nil && n.raw.isToken()
}

// IsMissing reports whether the node is a recovery placeholder: an empty
// token, or a layout all of whose slots are absent or missing.
func (n Node) IsMissing() bool {
	if n.raw == nil {
		panic("syntax: IsMissing on absent node")
	}
	return n.raw.missing
}

// Same reports view identity: both views wrap the same shared raw node,
// parent context ignored.
func (n Node) Same(other Node) bool {
	return n.raw == other.raw
}

// Equal reports deep structural equality of the underlying nodes.
func (n Node) Equal(other Node) bool {
	return n.raw.equal(other.raw)
}

// NumChildren returns the child slot count; zero for tokens.
func (n Node) NumChildren() int {
	if n.raw == nil || n.raw.isToken() {
		return 0
	}
	return len(n.raw.children)
}

// Child returns the view of slot i with parent context attached, or false if
// the slot is absent. Out-of-range i is a programming error.
func (n Node) Child(i int) (Node, bool) {
	if n.raw == nil || n.raw.isToken() {
		panic("syntax: Child on a token or absent node")
	}
	if i < 0 || i >= len(n.raw.children) {
		panic("syntax: child slot out of range")
	}
	c := n.raw.children[i]
	if c == nil {
		return Node{}, false
	}
	parent := n
	return Node{raw: c, parent: &parent, slot: i}, true
}

// child is the accessor backing for typed views: absent slots come back as
// the zero Node rather than a second return value.
func (n Node) child(i int) Node {
	c, ok := n.Child(i)
	if !ok {
		return Node{}
	}
	return c
}

// Parent returns the owning view recorded when this view was reached through
// an accessor, or false for roots and detached views.
func (n Node) Parent() (Node, bool) {
	if n.parent == nil {
		return Node{}, false
	}
	return *n.parent, true
}

// Slot returns the index this view occupies in its parent, or -1.
func (n Node) Slot() int {
	return n.slot
}

// Width returns the reconstructed byte length of the subtree, trivia
// included. Missing tokens contribute nothing.
func (n Node) Width() uint32 {
	if n.raw == nil {
		return 0
	}
	return n.raw.width
}

// Offset returns the byte offset of the subtree relative to the root this
// view was derived from, computed by summing the widths of the preceding
// siblings along the parent chain.
func (n Node) Offset() uint32 {
	if n.parent == nil {
		return 0
	}
	off := n.parent.Offset()
	for i := 0; i < n.slot; i++ {
		if c := n.parent.raw.children[i]; c != nil {
			off += c.width
		}
	}
	return off
}

// Span returns the byte range the subtree occupies relative to its root.
func (n Node) Span() source.Span {
	off := n.Offset()
	return source.Span{Start: off, End: off + n.Width()}
}

// WriteText reconstructs the exact source text of the subtree.
func (n Node) WriteText(w io.Writer) error {
	if n.raw == nil {
		return nil
	}
	return n.raw.writeText(w)
}

// Text returns the reconstructed source text of the subtree.
func (n Node) Text() string {
	if n.raw == nil {
		return ""
	}
	return n.raw.textString()
}

// Token narrows the view to a token leaf.
func (n Node) Token() (Token, bool) {
	if !n.IsToken() {
		return Token{}, false
	}
	return Token{n}, true
}

// Token is the typed view of a terminal leaf.
type Token struct {
	Node
}

// TokenKind returns the terminal category.
func (t Token) TokenKind() TokenKind {
	if t.raw == nil {
		panic("syntax: TokenKind on absent token")
	}
	return t.raw.tokKind
}

// RawText returns the token's own literal text without trivia; empty for
// missing tokens.
func (t Token) RawText() string {
	if t.raw == nil {
		return ""
	}
	return t.raw.text
}

// LeadingTrivia returns the trivia preceding the token text. Read-only.
func (t Token) LeadingTrivia() Trivia {
	return t.raw.leading
}

// TrailingTrivia returns the trivia following the token text. Read-only.
func (t Token) TrailingTrivia() Trivia {
	return t.raw.trailing
}

func (n Node) rawOrNil() *rawNode {
	return n.raw
}
