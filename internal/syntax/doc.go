// Package syntax defines the full-fidelity syntax tree of the crest frontend
// and its validated construction protocol.
//
// # Model
//
// Trees are two-layered. The raw layer is a kind-tagged, immutable node that
// is either a token leaf (literal text plus leading/trailing trivia) or a
// layout: a fixed child-slot list whose arity and per-slot allowed kinds are
// declared in the shape registry. The view layer (Node and the per-kind
// wrappers) adds parent context and named accessors without duplicating any
// data; many views may share one raw node.
//
// Invariants:
//   - Every byte of the scanned source is recoverable: concatenating
//     leading trivia + text + trailing trivia over all tokens in tree order
//     reproduces the input exactly, malformed fragments included.
//   - A layout node always matches its registered shape; error recovery
//     substitutes missing placeholders instead of bending arity.
//   - Nodes never change after construction. Editing builds a new parent
//     chain and shares every untouched subtree, so concurrent readers need
//     no locking.
//
// # Construction
//
// The Make* functions are the only sanctioned construction surface: typed
// Make<Kind> operations whose parameter lists mirror the declared shapes,
// MakeBlank<Kind> placeholders for error recovery, and canonical token
// constructors that synthesize grammar-dictated literals. Shape violations
// are contract violations (panics), never runtime errors: malformed source
// is represented with missing nodes, which downstream diagnostics interpret.
// MakeLayout and the Check* helpers exist for decoders that rebuild trees
// from untrusted input and need errors instead of panics.
package syntax
