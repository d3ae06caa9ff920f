package syntax

// Editing never mutates: a "changed" tree is a new parent chain from the
// edit point to the root, with every untouched sibling subtree shared by
// reference with the original. That sharing is what keeps incremental
// re-parses cheap.

// WithChild returns a node of the same kind with slot i replaced by child
// (zero Node clears an optional slot). The result is detached: it carries no
// parent context. A replacement that violates the kind's shape is a contract
// violation and panics.
func (n Node) WithChild(i int, child Node) Node {
	if n.raw == nil || n.raw.isToken() {
		panic("syntax: contract violation: WithChild on a token or absent node")
	}
	if i < 0 || i >= len(n.raw.children) {
		panic("syntax: contract violation: child slot out of range")
	}
	children := make([]*rawNode, len(n.raw.children))
	copy(children, n.raw.children)
	children[i] = child.rawOrNil()
	if err := checkShape(n.raw.kind, children); err != nil {
		panic("syntax: contract violation: " + err.Error())
	}
	return wrap(newRawLayout(n.raw.kind, children))
}

// Replace substitutes this node within the tree it was reached through and
// returns the new root. Only the nodes along the parent chain are rebuilt;
// every sibling subtree stays reference-identical. Calling Replace on a view
// without parent context just returns the replacement.
func (n Node) Replace(with Node) Node {
	if n.parent == nil {
		return with
	}
	rebuilt := n.parent.WithChild(n.slot, with)
	return n.parent.Replace(rebuilt)
}
