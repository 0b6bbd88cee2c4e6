package ediseg

// Offset is a zero-based byte offset into the original document.
type Offset int

// Segment is one lexed segment: a tag (e.g. "ISA", "CLP", "NM1") and the
// ordered fields that followed it, up to (not including) the segment
// terminator. The byte offset and 1-based line number locate where the
// segment started in the source document, for diagnostics.
type Segment struct {
	Tag    string
	Fields []Field
	Offset Offset
	Line   int
	// Index is this segment's 0-based position among all segments lexed
	// from the document, independent of any grammar.
	Index int
	// Raw is the segment's bytes, including the tag but excluding the
	// segment terminator. Not owned by callers; do not mutate.
	Raw []byte
	// Unterminated is true when this segment ran to the end of the input
	// without finding a segment terminator byte.
	Unterminated bool
}

// Field is one field (data element) of a segment. A field with no
// repetition separator present in the source has exactly one Repetition.
type Field struct {
	// Position is the 1-based field position within the segment (the "01"
	// in "ISA01"); the tag itself is not a field.
	Position    int
	Repetitions []Repetition
	Offset      Offset
}

// Repetition is one repeated occurrence of a field. Most fields have
// exactly one.
type Repetition struct {
	// Composites holds the subfields (components) of this repetition, in
	// order. A scalar field (no sub-separator present) has exactly one
	// Composite whose Value is the whole repetition's decoded value.
	Composites []Composite
	Offset     Offset
}

// Composite is a single subfield value, already release-character
// unescaped.
type Composite struct {
	Value  string
	Offset Offset
}

// Value returns the first composite of the first repetition, the common
// case of a scalar, non-repeating field. Returns "" if the field is empty
// or absent.
func (f Field) Value() string {
	if len(f.Repetitions) == 0 || len(f.Repetitions[0].Composites) == 0 {
		return ""
	}
	return f.Repetitions[0].Composites[0].Value
}

// Components returns the subfield values of the first repetition.
func (f Field) Components() []string {
	if len(f.Repetitions) == 0 {
		return nil
	}
	out := make([]string, len(f.Repetitions[0].Composites))
	for i, c := range f.Repetitions[0].Composites {
		out[i] = c.Value
	}
	return out
}

// IsEmpty reports whether the field has no non-empty content at all.
func (f Field) IsEmpty() bool {
	for _, r := range f.Repetitions {
		for _, c := range r.Composites {
			if c.Value != "" {
				return false
			}
		}
	}
	return true
}

// FieldAt returns the field at the given 1-based position, or the zero
// Field and false if the segment has fewer fields.
func (s Segment) FieldAt(pos int) (Field, bool) {
	for _, f := range s.Fields {
		if f.Position == pos {
			return f, true
		}
	}
	return Field{}, false
}
