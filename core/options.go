package core

import (
	"github.com/dshills/ediparse/diag"
	"github.com/dshills/ediparse/treebuild"
)

// Default configuration values, mirroring the DoS-protection defaults the
// teacher's parse package ships (defaultMaxSegments/defaultMaxFieldLength
// in dshills/golevel7's parse/options.go), scaled up for EDI documents
// which tend to run larger than HL7 messages.
const (
	defaultMaxInputSize   = 64 << 20 // 64 MiB
	defaultMaxSegments    = 200000
	defaultMaxFieldLength = 65536
)

// FieldValidationMode selects how field-validation problems that are
// specified as demotable (code-set misses, length violations) are
// reported (spec.md §4.7).
type FieldValidationMode string

const (
	ModeStrict  FieldValidationMode = "strict"
	ModeLenient FieldValidationMode = "lenient"
)

// EmptySegmentHandling re-exports treebuild's policy type so callers
// configure it without importing package treebuild directly.
type EmptySegmentHandling = treebuild.EmptySegmentHandling

const (
	EmptySegmentSkip  = treebuild.EmptySegmentSkip
	EmptySegmentError = treebuild.EmptySegmentError
)

// config holds an Engine call's resolved configuration. Unexported;
// callers build it with functional Options, mirroring the teacher's
// parserConfig/ParserOption idiom.
type config struct {
	charset              string
	fieldValidationMode  FieldValidationMode
	continueOnError      bool
	emptySegmentHandling EmptySegmentHandling
	checkUnknownEntities bool
	trimTrailingSpaces   bool
	debug                bool
	maxInputSize         int
	maxSegments          int
	maxFieldLength       int
}

func defaultConfig() config {
	return config{
		charset:              "utf-8",
		fieldValidationMode:  ModeStrict,
		continueOnError:      false,
		emptySegmentHandling: EmptySegmentSkip,
		checkUnknownEntities: true,
		trimTrailingSpaces:   true,
		debug:                false,
		maxInputSize:         defaultMaxInputSize,
		maxSegments:          defaultMaxSegments,
		maxFieldLength:       defaultMaxFieldLength,
	}
}

// Option configures one Parse or Validate call.
type Option func(*config)

// WithCharset sets the input character encoding. The core does not
// transcode; this records caller intent for diagnostics and for callers
// that decode before calling Parse. Default "utf-8".
func WithCharset(charset string) Option {
	return func(c *config) { c.charset = charset }
}

// WithFieldValidationMode selects strict or lenient field validation
// (spec.md §4.7): in lenient mode, code-set misses and length violations
// demote from error to warning severity.
func WithFieldValidationMode(mode FieldValidationMode) Option {
	return func(c *config) { c.fieldValidationMode = mode }
}

// WithContinueOnError enables §4.5 step 5's lenient recovery path in the
// tree builder: a missing mandatory child synthesizes a skip and
// continues instead of abandoning the subtree.
func WithContinueOnError(v bool) Option {
	return func(c *config) { c.continueOnError = v }
}

// WithEmptySegmentHandling selects the skip/error policy for segments
// whose tag is blank.
func WithEmptySegmentHandling(h EmptySegmentHandling) Option {
	return func(c *config) { c.emptySegmentHandling = h }
}

// WithCheckUnknownEntities toggles whether an unrecognized segment tag is
// an error (true, default) or a warning with the segment attached as a
// raw, uninterpreted node (false).
func WithCheckUnknownEntities(v bool) Option {
	return func(c *config) { c.checkUnknownEntities = v }
}

// WithTrimTrailingSpaces strips trailing ASCII spaces from decoded field
// values. Default true.
func WithTrimTrailingSpaces(v bool) Option {
	return func(c *config) { c.trimTrailingSpaces = v }
}

// WithDebug enables the tree builder's state-transition trace, returned
// on ParseResult.Trace.
func WithDebug(v bool) Option {
	return func(c *config) { c.debug = v }
}

// WithMaxInputSize caps the input size in bytes; exceeding it reports
// E003-INPUT-TOO-LARGE as fatal before lexing begins. Zero disables the
// check. Default 64 MiB.
func WithMaxInputSize(n int) Option {
	return func(c *config) { c.maxInputSize = n }
}

// WithMaxSegments caps the number of segments the lexer will produce
// (DoS protection). A zero or negative n leaves the default limit in
// place.
func WithMaxSegments(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxSegments = n
		}
	}
}

// WithMaxFieldLength caps the byte length of any single decoded field
// value (DoS protection, independent of any grammar's per-field MaxLen).
// A zero or negative n leaves the default limit in place.
func WithMaxFieldLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxFieldLength = n
		}
	}
}

// demotions returns the diag.Code values that field_validation_mode ==
// lenient caps at Warning severity: code-set misses and length
// violations, per spec.md §4.7.
func (c config) demotions() []diag.Code {
	if c.fieldValidationMode != ModeLenient {
		return nil
	}
	return []diag.Code{diag.CodeCodeUnknown, diag.CodeFieldLength}
}
