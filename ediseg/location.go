package ediseg

import (
	"strconv"
	"strings"
)

// Location pinpoints where in a document, and where in the grammar tree, a
// diagnostic or value was found. Path is a slash-delimited chain of the
// grammar group names below the message root that enclose the segment,
// e.g. "FUNCTIONAL_GROUP/TRANSACTION_SET"; the segment tag itself is in
// Segment, and Segment/SegmentIndex/Field narrow further within that
// segment.
type Location struct {
	Offset       Offset
	Line         int
	Path         string
	Segment      string
	SegmentIndex int // 0-based occurrence of Segment among all lexed segments
	Field        int // 1-based field position, 0 if not field-specific
	Component    int // 1-based component position, 0 if not component-specific
}

// String renders the location the way diagnostics print it:
// "path/segment.field.component", e.g.
// "FUNCTIONAL_GROUP/TRANSACTION_SET/CLP.2"; empty parts and their
// separators are left out.
func (l Location) String() string {
	var b strings.Builder
	if l.Path != "" {
		b.WriteString(l.Path)
	}
	if l.Segment != "" {
		if b.Len() > 0 {
			b.WriteByte('/')
		}
		b.WriteString(l.Segment)
	}
	if l.Field > 0 {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(l.Field))
		if l.Component > 0 {
			b.WriteByte('.')
			b.WriteString(strconv.Itoa(l.Component))
		}
	}
	return b.String()
}
