// Package fieldval implements spec.md §4.4: checking one field value
// against its declared grammar.FieldSchema (data type, length, and for
// code-list fields, membership), decoding it into a stable representation.
//
// Validate is pure: it reads only its arguments and returns a decoded
// value plus zero or more Issues. It does not know about segments, trees,
// or diagnostic severity policy - the caller (package treebuild) attaches
// Location and applies the field_validation_mode lenient/strict severity
// rule via diag.Collector's demotion list.
package fieldval
