package syntax

import (
	"io"
	"strings"

	"fortio.org/safecast"
)

// rawNode is the shared, immutable backing storage of the tree. A rawNode is
// either a token leaf (kind == KindToken) or a layout with a fixed child
// slice in which nil marks an absent slot. Raw nodes are built only by the
// factory and are never mutated afterwards, so they may be shared freely
// across trees and goroutines.
type rawNode struct {
	kind    Kind
	missing bool
	width   uint32 // total reconstructed byte length, trivia included

	// token payload, kind == KindToken only
	tokKind  TokenKind
	text     string
	leading  Trivia
	trailing Trivia

	// layout payload
	children []*rawNode
}

func (n *rawNode) isToken() bool {
	return n.kind == KindToken
}

// newRawToken builds a token leaf and caches its width. No validation: the
// factory owns the contract checks.
func newRawToken(kind TokenKind, text string, leading, trailing Trivia, missing bool) *rawNode {
	width := leading.TextLen() + safecast.MustConv[uint32](len(text)) + trailing.TextLen()
	return &rawNode{
		kind:     KindToken,
		missing:  missing,
		width:    width,
		tokKind:  kind,
		text:     text,
		leading:  leading,
		trailing: trailing,
	}
}

// newRawLayout builds a layout node over an already-validated child slice.
// The slice is owned by the new node; callers must not retain it. A layout is
// missing iff every slot is absent or itself missing, which makes an empty
// list node vacuously missing.
func newRawLayout(kind Kind, children []*rawNode) *rawNode {
	missing := true
	var width uint32
	for _, c := range children {
		if c == nil {
			continue
		}
		width += c.width
		if !c.missing {
			missing = false
		}
	}
	return &rawNode{
		kind:     kind,
		missing:  missing,
		width:    width,
		children: children,
	}
}

// writeText reconstructs the exact source text of the subtree: for every
// token in tree order, leading trivia, literal text, trailing trivia. Missing
// tokens contribute nothing, absent slots are skipped.
func (n *rawNode) writeText(w io.Writer) error {
	if n.isToken() {
		if err := n.leading.WriteText(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, n.text); err != nil {
			return err
		}
		return n.trailing.WriteText(w)
	}
	for _, c := range n.children {
		if c == nil {
			continue
		}
		if err := c.writeText(w); err != nil {
			return err
		}
	}
	return nil
}

func (n *rawNode) textString() string {
	var sb strings.Builder
	sb.Grow(int(n.width))
	_ = n.writeText(&sb)
	return sb.String()
}

// equal reports deep structural equality: same kinds, same texts, same
// trivia, same present/absent slot pattern. Identity implies equality.
func (a *rawNode) equal(b *rawNode) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.kind != b.kind || a.missing != b.missing || a.width != b.width {
		return false
	}
	if a.isToken() {
		return a.tokKind == b.tokKind &&
			a.text == b.text &&
			a.leading.Equal(b.leading) &&
			a.trailing.Equal(b.trailing)
	}
	if len(a.children) != len(b.children) {
		return false
	}
	for i, c := range a.children {
		if !c.equal(b.children[i]) {
			return false
		}
	}
	return true
}
