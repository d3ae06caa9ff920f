// Package treewire serializes syntax trees to a msgpack wire form for
// interchange between frontends and tooling. Encoding walks the shared tree;
// decoding re-validates every node against the shape registry, so a
// malformed or stale payload surfaces as an error rather than a tree that
// breaks downstream shape assumptions.
package treewire

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"crest/internal/syntax"
)

// SchemaVersion is bumped whenever the payload layout changes; decoders
// reject anything newer than they understand.
const SchemaVersion uint16 = 1

type payload struct {
	Schema uint16
	Root   *wireNode
}

// wireNode is the serialized form of one raw node. Token leaves carry the
// token fields; layouts carry Children, where a nil entry is an absent slot.
type wireNode struct {
	Kind    uint8
	Missing bool

	Token    uint8
	Text     string
	Leading  []wirePiece
	Trailing []wirePiece

	Children []*wireNode
}

type wirePiece struct {
	Kind uint8
	Text string
}

// Encode writes the subtree rooted at node to w.
func Encode(w io.Writer, node syntax.Node) error {
	if !node.Valid() {
		return fmt.Errorf("treewire: cannot encode an absent node")
	}
	enc := msgpack.NewEncoder(w)
	return enc.Encode(payload{
		Schema: SchemaVersion,
		Root:   encodeNode(node),
	})
}

func encodeNode(n syntax.Node) *wireNode {
	if tok, ok := n.Token(); ok {
		return &wireNode{
			Kind:     uint8(syntax.KindToken),
			Missing:  tok.IsMissing(),
			Token:    uint8(tok.TokenKind()),
			Text:     tok.RawText(),
			Leading:  encodeTrivia(tok.LeadingTrivia()),
			Trailing: encodeTrivia(tok.TrailingTrivia()),
		}
	}
	children := make([]*wireNode, n.NumChildren())
	for i := range children {
		if c, ok := n.Child(i); ok {
			children[i] = encodeNode(c)
		}
	}
	return &wireNode{
		Kind:     uint8(n.Kind()),
		Missing:  n.IsMissing(),
		Children: children,
	}
}

func encodeTrivia(tr syntax.Trivia) []wirePiece {
	if len(tr) == 0 {
		return nil
	}
	out := make([]wirePiece, len(tr))
	for i, p := range tr {
		out[i] = wirePiece{Kind: uint8(p.Kind), Text: p.Text}
	}
	return out
}

// Decode reads one tree from r, rebuilding it through the validated
// construction protocol. Any shape or kind violation in the payload is
// reported as an error; Decode never panics on malformed input.
func Decode(r io.Reader) (syntax.Node, error) {
	dec := msgpack.NewDecoder(r)
	var p payload
	if err := dec.Decode(&p); err != nil {
		return syntax.Node{}, fmt.Errorf("treewire: decode payload: %w", err)
	}
	if p.Schema > SchemaVersion {
		return syntax.Node{}, fmt.Errorf("treewire: payload schema %d is newer than supported %d",
			p.Schema, SchemaVersion)
	}
	if p.Root == nil {
		return syntax.Node{}, fmt.Errorf("treewire: payload has no root node")
	}
	return decodeNode(p.Root)
}

func decodeNode(wn *wireNode) (syntax.Node, error) {
	kind := syntax.Kind(wn.Kind)
	if kind == syntax.KindToken {
		return decodeToken(wn)
	}
	if !syntax.ValidKind(kind) {
		return syntax.Node{}, fmt.Errorf("treewire: unknown node kind %d", wn.Kind)
	}
	children := make([]syntax.Node, len(wn.Children))
	for i, wc := range wn.Children {
		if wc == nil {
			continue
		}
		c, err := decodeNode(wc)
		if err != nil {
			return syntax.Node{}, err
		}
		children[i] = c
	}
	if err := syntax.CheckLayout(kind, children); err != nil {
		return syntax.Node{}, fmt.Errorf("treewire: invalid layout: %w", err)
	}
	return syntax.MakeLayout(kind, children), nil
}

func decodeToken(wn *wireNode) (syntax.Node, error) {
	tokKind := syntax.TokenKind(wn.Token)
	if !syntax.ValidTokenKind(tokKind) {
		return syntax.Node{}, fmt.Errorf("treewire: unknown token kind %d", wn.Token)
	}
	if wn.Missing {
		if wn.Text != "" {
			return syntax.Node{}, fmt.Errorf("treewire: missing %v token carries text %q", tokKind, wn.Text)
		}
		return syntax.MakeMissingToken(tokKind).Node, nil
	}
	leading, err := decodeTrivia(wn.Leading)
	if err != nil {
		return syntax.Node{}, err
	}
	trailing, err := decodeTrivia(wn.Trailing)
	if err != nil {
		return syntax.Node{}, err
	}
	if err := syntax.CheckToken(tokKind, wn.Text); err != nil {
		return syntax.Node{}, fmt.Errorf("treewire: invalid token: %w", err)
	}
	return syntax.MakeToken(tokKind, wn.Text, leading, trailing).Node, nil
}

func decodeTrivia(pieces []wirePiece) (syntax.Trivia, error) {
	if len(pieces) == 0 {
		return nil, nil
	}
	out := make(syntax.Trivia, len(pieces))
	for i, p := range pieces {
		kind := syntax.TriviaKind(p.Kind)
		if !syntax.ValidTriviaKind(kind) {
			return nil, fmt.Errorf("treewire: unknown trivia kind %d", p.Kind)
		}
		out[i] = syntax.Piece{Kind: kind, Text: p.Text}
	}
	return out, nil
}
