// Package escape implements X12/EDIFACT release-character escaping.
//
// Unlike HL7's multi-code escape scheme (\F\, \S\, ...), an EDI release
// character has a single job: placed immediately before any delimiter
// byte, it makes that byte literal data instead of a separator. A release
// character immediately before itself is a literal release character.
package escape

// Unescape removes release-character escaping from a raw field/component
// value, given the document's release character. If release is 0 (the
// document has none), value is returned unchanged.
func Unescape(value []byte, release byte) string {
	if release == 0 || indexByte(value, release) < 0 {
		return string(value)
	}
	out := make([]byte, 0, len(value))
	for i := 0; i < len(value); i++ {
		if value[i] == release && i+1 < len(value) {
			out = append(out, value[i+1])
			i++
			continue
		}
		out = append(out, value[i])
	}
	return string(out)
}

// Escape inserts release-character escaping before any delimiter byte (or
// the release character itself) found in value, so the result can be
// embedded literally back into a document using the given delimiter set.
func Escape(value string, release byte, delims []byte) string {
	if release == 0 {
		return value
	}
	needsEscape := false
	for i := 0; i < len(value); i++ {
		if value[i] == release || containsByte(delims, value[i]) {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return value
	}
	out := make([]byte, 0, len(value)*2)
	for i := 0; i < len(value); i++ {
		if value[i] == release || containsByte(delims, value[i]) {
			out = append(out, release)
		}
		out = append(out, value[i])
	}
	return string(out)
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

func containsByte(b []byte, c byte) bool {
	return indexByte(b, c) >= 0
}
