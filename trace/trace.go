// Package trace carries the optional state-transition detail spec.md
// §4.7's debug option asks for, as plain data rather than log output -
// the core never performs logging setup on its own (spec.md lists it as
// an external collaborator's concern), so this package only accumulates
// entries for the caller to render however it likes.
package trace

import "github.com/dshills/ediparse/ediseg"

// Entry is one recorded state transition of the tree builder: which
// segment token was being considered, where the pushdown stack stood, and
// a short human note of what the builder decided to do with it.
type Entry struct {
	Offset  ediseg.Offset
	Line    int
	Segment string
	Path    string
	Note    string
}

// Recorder accumulates Entries during one Build invocation. A nil
// *Recorder is valid and silently discards every Record call, so callers
// that did not request debug tracing pay no cost beyond a nil check.
type Recorder struct {
	entries []Entry
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends e, unless r is nil.
func (r *Recorder) Record(e Entry) {
	if r == nil {
		return
	}
	r.entries = append(r.entries, e)
}

// Entries returns every recorded Entry in recording order. Returns nil if
// r is nil or nothing was recorded.
func (r *Recorder) Entries() []Entry {
	if r == nil {
		return nil
	}
	return r.entries
}
