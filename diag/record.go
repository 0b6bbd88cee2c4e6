package diag

import "github.com/dshills/ediparse/ediseg"

// Record is one structured diagnostic: a problem found while lexing,
// tree-building, or field-validating a document. Records are immutable
// once built; construct them with NewRecord or Builder.
type Record struct {
	code        Code
	category    Category
	severity    Severity
	location    ediseg.Location
	description string
	expected    string
	actual      string
	suggestion  string
}

// NewRecord builds a Record directly. Prefer Builder when optional fields
// (expected/actual/suggestion) may be omitted.
func NewRecord(code Code, category Category, severity Severity, loc ediseg.Location, description string) Record {
	return Record{code: code, category: category, severity: severity, location: loc, description: description}
}

func (r Record) Code() Code                  { return r.code }
func (r Record) Category() Category          { return r.category }
func (r Record) Severity() Severity          { return r.severity }
func (r Record) Location() ediseg.Location   { return r.location }
func (r Record) Description() string         { return r.description }
func (r Record) Expected() string            { return r.expected }
func (r Record) Actual() string               { return r.actual }
func (r Record) Suggestion() string           { return r.suggestion }
func (r Record) HasExpectedActual() bool      { return r.expected != "" || r.actual != "" }

// Builder constructs a Record fluently: At starts it, the optional setters
// fill it in, and Build returns the finished Record.
type Builder struct {
	rec Record
}

// At starts a Builder for a diagnostic of the given code/category/severity
// located at loc.
func At(code Code, category Category, severity Severity, loc ediseg.Location) *Builder {
	return &Builder{rec: Record{code: code, category: category, severity: severity, location: loc}}
}

func (b *Builder) Describe(description string) *Builder {
	b.rec.description = description
	return b
}

func (b *Builder) Expected(expected string) *Builder {
	b.rec.expected = expected
	return b
}

func (b *Builder) Actual(actual string) *Builder {
	b.rec.actual = actual
	return b
}

func (b *Builder) Suggest(suggestion string) *Builder {
	b.rec.suggestion = suggestion
	return b
}

func (b *Builder) Build() Record {
	return b.rec
}
