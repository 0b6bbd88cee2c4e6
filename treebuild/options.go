package treebuild

import (
	"github.com/dshills/ediparse/diag"
	"github.com/dshills/ediparse/trace"
)

// EmptySegmentHandling selects how the builder treats a segment token whose
// tag is blank (spec.md §4.5's "Empty-segment handling").
type EmptySegmentHandling string

const (
	EmptySegmentSkip  EmptySegmentHandling = "skip"
	EmptySegmentError EmptySegmentHandling = "error"
)

// config holds the tree builder's resolved configuration. Unexported:
// callers build it with functional Options, mirroring the teacher's
// parserConfig/ParserOption idiom.
type config struct {
	continueOnError       bool
	emptySegmentHandling  EmptySegmentHandling
	checkUnknownEntities  bool
	demoteToWarning       []diag.Code
	trace                 *trace.Recorder
}

func defaultConfig() config {
	return config{
		continueOnError:      false,
		emptySegmentHandling: EmptySegmentSkip,
		checkUnknownEntities: true,
	}
}

// Option configures a Builder invocation.
type Option func(*config)

// WithContinueOnError enables spec.md §4.5 step 5's lenient recovery path:
// a missing mandatory child synthesizes a skip and continues instead of
// abandoning the subtree.
func WithContinueOnError(v bool) Option {
	return func(c *config) { c.continueOnError = v }
}

// WithEmptySegmentHandling selects the skip/error policy for segments whose
// tag is blank.
func WithEmptySegmentHandling(h EmptySegmentHandling) Option {
	return func(c *config) { c.emptySegmentHandling = h }
}

// WithCheckUnknownEntities toggles whether an unrecognized segment tag is
// treated as an error (true) or a warning with the segment attached as a
// raw node (false).
func WithCheckUnknownEntities(v bool) Option {
	return func(c *config) { c.checkUnknownEntities = v }
}

// WithDemoteToWarning lists diagnostic codes that should be capped at
// Warning severity, implementing field_validation_mode == "lenient" at the
// collector level.
func WithDemoteToWarning(codes ...diag.Code) Option {
	return func(c *config) { c.demoteToWarning = append(c.demoteToWarning, codes...) }
}

// WithTrace attaches a trace.Recorder that records the builder's
// segment-by-segment decisions, implementing spec.md §4.7's debug option.
// A nil Recorder (the zero value from not calling this Option at all)
// disables tracing entirely at no cost.
func WithTrace(r *trace.Recorder) Option {
	return func(c *config) { c.trace = r }
}
