package core

import (
	"github.com/dshills/ediparse/diag"
	"github.com/dshills/ediparse/trace"
	"github.com/dshills/ediparse/tree"
)

// ParseResult is the return value of Engine.Parse (spec.md §4.7).
type ParseResult struct {
	// Success is true iff no diagnostic has severity fatal or error.
	Success bool
	// Data is the parsed tree, or nil if a fatal diagnostic prevented the
	// tree builder from running at all (spec.md invariant: "If any
	// diagnostic has severity fatal, the tree may be partial").
	Data *tree.Tree
	// Diagnostics is every diagnostic raised, ordered by ascending byte
	// offset (spec.md §3 invariant 5).
	Diagnostics []diag.Record
	// MessageCount is the number of transaction sets (X12 ST segments) or
	// messages (EDIFACT UNH segments) found in the document, independent
	// of whether the tree built around them is complete.
	MessageCount int
	// RunID correlates this invocation's diagnostics and trace entries
	// across a batch of documents processed by the same embedding
	// application.
	RunID string
	// Trace holds the tree builder's state-transition entries when the
	// debug option is enabled; nil otherwise.
	Trace []trace.Entry
}

// ValidateResult is the return value of Engine.Validate (spec.md §4.7).
// It shares the core with Parse but forces lenient structural
// continuation so that every structural error in the document surfaces.
type ValidateResult struct {
	// Valid is false whenever any fatal- or error-severity diagnostic was
	// collected, independent of whatever Go error Validate itself returns
	// (a document can be syntactically parseable yet invalid).
	Valid bool
	// ErrorCount is the number of fatal- or error-severity diagnostics.
	ErrorCount int
	Diagnostics []diag.Record
	// Summary is a one-line human-readable rollup, e.g.
	// "3 error(s), 1 warning(s) across 1 transaction set".
	Summary string
	RunID   string
}
