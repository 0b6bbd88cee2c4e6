package fieldval

import "github.com/dshills/ediparse/diag"

// Decoded is the result of validating one field (or composite subfield)
// value: the raw string as lexed, whether it was present at all, and for
// numeric types, the scaled exact-decimal representation spec.md §4.4
// requires ("Decoded value is stored as an exact decimal string plus a
// parsed numeric attribute").
type Decoded struct {
	Raw     string
	Present bool
	// Numeric holds the scaled decimal representation for TypeN/TypeR
	// fields ("100" at ImpliedDecimals=2 decodes to "1.00"). Empty for
	// every other type, or when Raw failed the numeric-format check.
	Numeric string
}

// Issue is one field-validation problem found by Validate, without
// Location (the caller fills that in) or a resolved Severity (the caller
// applies field_validation_mode's strict/lenient policy via
// diag.Collector's demotion list - spec.md §4.7).
type Issue struct {
	Code        diag.Code
	Category    diag.Category
	Description string
	Expected    string
	Actual      string
	Suggestion  string
}
