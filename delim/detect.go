package delim

import (
	"bytes"

	"github.com/dshills/ediparse/ediseg"
)

const (
	isaLength       = 106
	isaVersionStart = 84
	isaVersionEnd   = 89
	isaRepPos       = 82
	isaCompPos      = 104
	isaTermPos      = 105
	isaRepVersion   = "00402"
)

// separator offsets for the 16 fixed-width ISA elements, 0-indexed,
// pointing at the separator byte that *precedes* each element.
var isaSepOffsets = []int{3, 6, 17, 20, 31, 34, 50, 53, 69, 76, 81, 83, 89, 99, 101, 103}

// Detect inspects the start of content and returns the delimiter set the
// document uses, dispatching on ediType. It returns ediseg.ErrNoEnvelopeHeader
// (wrapped) if no recognizable envelope header is found.
func Detect(content []byte, ediType ediseg.EDIType) (ediseg.Delimiters, error) {
	switch ediType {
	case ediseg.X12:
		return DetectX12(content)
	case ediseg.EDIFACT:
		return DetectEDIFACT(content)
	default:
		return ediseg.Delimiters{}, ediseg.ErrUnknownEDIType
	}
}

// DetectX12 recovers the delimiter set from a document's fixed-width ISA
// segment, per the ANSI X12 envelope layout: a field separator immediately
// following "ISA", sixteen fixed-width elements each preceded by that same
// separator, and a segment terminator as the 106th byte. The repetition
// separator (ISA11) is only honored for version 00402 and later, per the
// envelope spec's "repetition separator is at offset 82 in versions >=
// 00402"; earlier versions carry no repetition separator.
func DetectX12(content []byte) (ediseg.Delimiters, error) {
	if len(content) < isaLength {
		return ediseg.Delimiters{}, &ediseg.DelimiterError{
			Offset: 0, Reason: "content shorter than a fixed-width ISA segment",
		}
	}
	if !bytes.HasPrefix(content, []byte("ISA")) {
		return ediseg.Delimiters{}, &ediseg.DelimiterError{
			Offset: 0, Reason: "document does not begin with ISA",
		}
	}

	fieldSep := content[3]
	for _, off := range isaSepOffsets {
		if content[off] != fieldSep {
			return ediseg.Delimiters{}, &ediseg.DelimiterError{
				Offset: off,
				Reason: "inconsistent ISA field separator",
			}
		}
	}

	d := ediseg.Delimiters{
		Segment: content[isaTermPos],
		Field:   fieldSep,
		Sub:     content[isaCompPos],
	}

	version := string(content[isaVersionStart:isaVersionEnd])
	if version >= isaRepVersion {
		d.Repetition = content[isaRepPos]
		if d.Repetition == d.Sub || d.Repetition == d.Field {
			// pre-5010 content padded ISA11 with a space or the component
			// separator; treat as "no repetition separator" rather than a
			// false positive.
			d.Repetition = 0
		}
	}

	if err := d.Validate(); err != nil {
		return ediseg.Delimiters{}, &ediseg.DelimiterError{Offset: 0, Reason: err.Error()}
	}
	return d, nil
}

// DetectEDIFACT recovers the delimiter set from an optional UNA service
// string segment ("UNA" followed by six characters: component separator,
// data element separator, decimal notation, release character, reserved,
// segment terminator). When no UNA segment is present, the standard
// default service string is used.
func DetectEDIFACT(content []byte) (ediseg.Delimiters, error) {
	if len(content) == 0 {
		return ediseg.Delimiters{}, ediseg.ErrEmptyInput
	}
	if bytes.HasPrefix(content, []byte("UNA")) {
		if len(content) < 9 {
			return ediseg.Delimiters{}, &ediseg.DelimiterError{
				Offset: 0, Reason: "UNA segment shorter than 9 bytes",
			}
		}
		d := ediseg.Delimiters{
			Sub:        content[3],
			Field:      content[4],
			Release:    content[6],
			Segment:    content[8],
			Repetition: 0,
		}
		if err := d.Validate(); err != nil {
			return ediseg.Delimiters{}, &ediseg.DelimiterError{Offset: 0, Reason: err.Error()}
		}
		return d, nil
	}
	if bytes.HasPrefix(content, []byte("UNB")) {
		return ediseg.DefaultEDIFACT(), nil
	}
	return ediseg.Delimiters{}, &ediseg.DelimiterError{
		Offset: 0, Reason: "document begins with neither UNA nor UNB",
	}
}
