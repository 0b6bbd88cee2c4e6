// Package ediseg defines the shared vocabulary used across the EDI core:
// the delimiter set discovered from a document's envelope, the token tree
// produced by the lexer (segments built of fields, composites and
// repetitions), structural locations, and the sentinel/typed errors every
// other package reports through.
//
// Nothing in this package knows about X12 or EDIFACT grammar rules; it only
// describes the shape a document's raw tokens take once split, and the
// addressing scheme ("ISA.6" or "FUNCTIONAL_GROUP/TRANSACTION_SET/CLP.1") used to locate a
// value, a diagnostic, or a grammar node.
package ediseg
