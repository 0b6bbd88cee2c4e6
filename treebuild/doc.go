// Package treebuild implements the tree builder (spec.md §4.5), "the heart
// of the system": a deterministic pushdown-stack walker that consumes a
// token stream of ediseg.Segment values against a grammar.Node tree and
// produces a tree.Tree plus a diagnostic list.
//
// The walker's stack holds frames (group node, child cursor, occurrence
// count of the current child); Build drives the stack exactly as the
// decision procedure in spec.md §4.5 describes, generalized in two
// respects: the optional-child skip rule advances
// on "occurrences satisfy the minimum" rather than literally zero, and a
// single grammar node may declare a wildcard tag "*" that matches any
// segment tag not claimed by a later sibling (used by the envelope
// grammar's opaque transaction-set body).
package treebuild
