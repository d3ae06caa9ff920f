// Package testkit carries invariant checks shared by package tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"crest/internal/syntax"
)

// CheckTreeInvariants walks the subtree rooted at n and verifies the core
// structural guarantees:
//  1. every layout matches its registered shape (arity and per-slot kinds)
//  2. a node reports missing iff all of its slots are absent or missing
//  3. cached widths equal the byte length of the reconstructed text
func CheckTreeInvariants(n syntax.Node) error {
	if !n.Valid() {
		return fmt.Errorf("absent node passed as root")
	}
	return checkNode(n)
}

func checkNode(n syntax.Node) error {
	text := n.Text()
	textLen, err := safecast.Conv[uint32](len(text))
	if err != nil {
		return fmt.Errorf("text length overflow: %w", err)
	}
	if n.Width() != textLen {
		return fmt.Errorf("%v: cached width %d, reconstructed %d bytes",
			n.Kind(), n.Width(), textLen)
	}
	if n.IsToken() {
		tok, _ := n.Token()
		if tok.IsMissing() && tok.RawText() != "" {
			return fmt.Errorf("missing %v token carries text %q", tok.TokenKind(), tok.RawText())
		}
		return nil
	}

	children := make([]syntax.Node, n.NumChildren())
	allMissing := true
	for i := range children {
		c, ok := n.Child(i)
		if !ok {
			continue
		}
		children[i] = c
		if !c.IsMissing() {
			allMissing = false
		}
		if err := checkNode(c); err != nil {
			return err
		}
	}
	if err := syntax.CheckLayout(n.Kind(), children); err != nil {
		return fmt.Errorf("shape violation: %w", err)
	}
	if n.IsMissing() != allMissing {
		return fmt.Errorf("%v: IsMissing=%v but all-slots-missing=%v",
			n.Kind(), n.IsMissing(), allMissing)
	}
	return nil
}
