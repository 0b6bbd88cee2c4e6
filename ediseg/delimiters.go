package ediseg

import "fmt"

// EDIType identifies the wire dialect a document is written in.
type EDIType string

const (
	X12     EDIType = "x12"
	EDIFACT EDIType = "edifact"
)

// Delimiters holds the single-byte separators a document uses between
// segments, fields (data elements), subfields (components), and field
// repetitions, plus the release (escape) character that suppresses a
// separator's special meaning in a value.
//
// A zero byte in Repetition or Release means the document does not use
// that separator at all (common for pre-5010 X12 and for EDIFACT content
// with no UNA service string).
type Delimiters struct {
	Segment    byte
	Field      byte
	Sub        byte // component / subfield separator
	Repetition byte
	Release    byte
}

// DefaultEDIFACT returns the separators implied by EDIFACT when no UNA
// service string segment is present in the document, per the standard
// default service string ":+.? '".
func DefaultEDIFACT() Delimiters {
	return Delimiters{
		Segment:    '\'',
		Field:      '+',
		Sub:        ':',
		Repetition: 0,
		Release:    '?',
	}
}

// HasRepetition reports whether the delimiter set assigns a repetition separator.
func (d Delimiters) HasRepetition() bool { return d.Repetition != 0 }

// HasRelease reports whether the delimiter set assigns a release character.
func (d Delimiters) HasRelease() bool { return d.Release != 0 }

// Validate reports an error if the delimiter set is internally
// inconsistent: any two of segment/field/sub/repetition/release that are
// both non-zero must be distinct bytes, and segment/field/sub must all be
// set.
func (d Delimiters) Validate() error {
	if d.Segment == 0 {
		return fmt.Errorf("%w: segment terminator not set", ErrInvalidDelimiters)
	}
	if d.Field == 0 {
		return fmt.Errorf("%w: field separator not set", ErrInvalidDelimiters)
	}
	if d.Sub == 0 {
		return fmt.Errorf("%w: subfield separator not set", ErrInvalidDelimiters)
	}
	seen := map[byte]string{}
	for name, b := range map[string]byte{
		"segment": d.Segment, "field": d.Field, "sub": d.Sub,
		"repetition": d.Repetition, "release": d.Release,
	} {
		if b == 0 {
			continue
		}
		if other, ok := seen[b]; ok {
			return fmt.Errorf("%w: %s and %s both use byte %q", ErrInvalidDelimiters, name, other, b)
		}
		seen[b] = name
	}
	return nil
}

func (d Delimiters) String() string {
	rep := "-"
	if d.Repetition != 0 {
		rep = string(d.Repetition)
	}
	rel := "-"
	if d.Release != 0 {
		rel = string(d.Release)
	}
	return fmt.Sprintf("seg=%q field=%q sub=%q rep=%s release=%s",
		d.Segment, d.Field, d.Sub, rep, rel)
}
