package diag

import (
	"sort"
	"strings"
)

// Collector accumulates Records during a parse/validate run and produces
// them in the order the public API requires: ascending byte offset, with
// ties broken by ascending path depth (shallowest first) - a mandatory
// field missing deep inside a loop is reported after the structural
// diagnostic the stack unwind raises for the enclosing group at the same
// offset.
type Collector struct {
	records []Record
	// demote lists codes that, under lenient field_validation_mode, are
	// reported as warnings instead of errors. Add applies this itself to
	// every Error-severity record it receives.
	demote map[Code]bool
}

// NewCollector creates an empty Collector. demoted lists codes that should
// be capped at Warning severity rather than reported as Error, used to
// implement field_validation_mode == "lenient".
func NewCollector(demoted ...Code) *Collector {
	c := &Collector{demote: make(map[Code]bool, len(demoted))}
	for _, code := range demoted {
		c.demote[code] = true
	}
	return c
}

// Add appends a record, applying the lenient-mode demotion if configured
// for its code and it is not already a Fatal.
func (c *Collector) Add(r Record) {
	if c.demote[r.code] && r.severity == Error {
		r.severity = Warning
	}
	c.records = append(c.records, r)
}

// HasFatal reports whether any Fatal-severity record has been collected.
func (c *Collector) HasFatal() bool {
	for _, r := range c.records {
		if r.severity == Fatal {
			return true
		}
	}
	return false
}

// Valid reports whether no Fatal or Error severity record has been
// collected - the definition ValidateResult.Valid uses.
func (c *Collector) Valid() bool {
	for _, r := range c.records {
		if r.severity.IsFailure() {
			return false
		}
	}
	return true
}

// Records returns all collected records ordered by ascending byte offset,
// then by ascending path depth (shallowest first) among records at the
// same offset, preserving relative insertion order for any remaining tie.
func (c *Collector) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	sort.SliceStable(out, func(i, j int) bool {
		oi, oj := out[i].location.Offset, out[j].location.Offset
		if oi != oj {
			return oi < oj
		}
		return pathDepth(out[i].location.Path) < pathDepth(out[j].location.Path)
	})
	return out
}

// pathDepth counts the slash-delimited segments in a Location.Path, used
// as the "shallowest first" sort key among diagnostics at the same offset.
func pathDepth(path string) int {
	if path == "" {
		return 0
	}
	return strings.Count(path, "/") + 1
}

// Len returns the number of collected records.
func (c *Collector) Len() int { return len(c.records) }
