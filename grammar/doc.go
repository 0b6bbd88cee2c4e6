// Package grammar is the in-memory representation of a message definition:
// a recursive tree of record groups and segments, each with a cardinality
// range, plus a segment-tag-keyed field schema index and the code-set
// registries those schemas reference.
//
// Grammars are immutable once built and may be shared across parses
// (spec.md §5); the only mutation point is the Catalog's initial load.
package grammar
