package lex

import (
	"bytes"

	"github.com/jf-tech/go-corelib/strs"

	"github.com/dshills/ediparse/ediseg"
	"github.com/dshills/ediparse/internal/escape"
)

const (
	hintElemsPerSeg = 32
	hintRepsPerElem = 4
	hintCompsPerElem = 8
)

// Options configures how the Lexer trims and bounds its output.
type Options struct {
	// TrimTrailingSpaces strips trailing ASCII spaces from every decoded
	// composite value.
	TrimTrailingSpaces bool
	// MaxSegments caps the number of segments the Lexer will produce
	// before reporting ediseg.ErrInputTooLarge. Zero means unbounded.
	MaxSegments int
	// MaxFieldLength caps the byte length of any single decoded composite
	// value (DoS protection, independent of any grammar's field-level MaxLen).
	// Zero means unbounded.
	MaxFieldLength int
}

// Lex splits content into a slice of segment tokens using the given
// delimiter set. It does not know about grammar or cardinality - it only
// recovers the token tree implied by the delimiters, unescaping
// release-character sequences as it goes.
func Lex(content []byte, delims ediseg.Delimiters, opts Options) ([]ediseg.Segment, error) {
	if len(content) == 0 {
		return nil, ediseg.ErrEmptyInput
	}

	var segments []ediseg.Segment
	offset := 0
	line := 1
	index := 0

	// An EDIFACT UNA service string advice only declares the delimiters
	// (already read by package delim); it is not a data segment.
	if bytes.HasPrefix(content, []byte("UNA")) && len(content) >= 9 {
		offset = 9
	}

	for offset < len(content) {
		termIdx := bytes.IndexByte(content[offset:], delims.Segment)
		var raw []byte
		var segEnd int
		if termIdx < 0 {
			raw = content[offset:]
			segEnd = len(content)
		} else {
			raw = content[offset : offset+termIdx]
			segEnd = offset + termIdx + 1
		}

		trimmed := bytes.Trim(raw, "\r\n")
		if len(trimmed) > 0 {
			lead := len(raw) - len(bytes.TrimLeft(raw, "\r\n"))
			segLine := line + bytes.Count(raw[:lead], []byte{'\n'})
			seg := lexOne(trimmed, delims, opts, ediseg.Offset(offset+lead), segLine, index)
			seg.Unterminated = termIdx < 0
			if opts.MaxFieldLength > 0 && fieldTooLong(seg, opts.MaxFieldLength) {
				return segments, ediseg.ErrInputTooLarge
			}
			segments = append(segments, seg)
			index++
			if opts.MaxSegments > 0 && len(segments) > opts.MaxSegments {
				return segments, ediseg.ErrInputTooLarge
			}
		}

		line += bytes.Count(content[offset:segEnd], []byte{'\n'})
		offset = segEnd
		if termIdx < 0 {
			break
		}
	}

	return segments, nil
}

// fieldTooLong reports whether any decoded composite value in seg exceeds
// limit bytes (DoS protection independent of any grammar's per-field
// MaxLen schema).
func fieldTooLong(seg ediseg.Segment, limit int) bool {
	for _, f := range seg.Fields {
		for _, rep := range f.Repetitions {
			for _, c := range rep.Composites {
				if len(c.Value) > limit {
					return true
				}
			}
		}
	}
	return false
}

func lexOne(raw []byte, delims ediseg.Delimiters, opts Options, offset ediseg.Offset, line, index int) ediseg.Segment {
	var releaseBytes []byte
	if delims.HasRelease() {
		releaseBytes = []byte{delims.Release}
	}

	elems := strs.ByteSplitWithEsc(raw, []byte{delims.Field}, releaseBytes, hintElemsPerSeg)

	seg := ediseg.Segment{
		Offset: offset,
		Line:   line,
		Index:  index,
		Raw:    raw,
	}
	if len(elems) > 0 {
		seg.Tag = string(elems[0])
	}

	for i := 1; i < len(elems); i++ {
		field := ediseg.Field{Position: i, Offset: offset}
		// ISA elements are fixed-width scalars, and ISA11/ISA16 hold the
		// repetition and component separators themselves, so they are
		// never split further.
		scalar := seg.Tag == "ISA"

		var reps [][]byte
		if delims.HasRepetition() && !scalar {
			reps = strs.ByteSplitWithEsc(elems[i], []byte{delims.Repetition}, releaseBytes, hintRepsPerElem)
		} else {
			reps = [][]byte{elems[i]}
		}

		for _, rep := range reps {
			comps := [][]byte{rep}
			if !scalar {
				comps = strs.ByteSplitWithEsc(rep, []byte{delims.Sub}, releaseBytes, hintCompsPerElem)
			}
			repetition := ediseg.Repetition{Offset: offset}
			for _, c := range comps {
				value := escape.Unescape(c, delims.Release)
				if opts.TrimTrailingSpaces {
					value = string(bytes.TrimRight([]byte(value), " "))
				}
				repetition.Composites = append(repetition.Composites, ediseg.Composite{
					Value:  value,
					Offset: offset,
				})
			}
			field.Repetitions = append(field.Repetitions, repetition)
		}

		seg.Fields = append(seg.Fields, field)
	}

	return seg
}
