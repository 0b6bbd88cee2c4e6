package segments

import (
	"errors"
	"fmt"

	"github.com/dshills/ediparse/tree"
)

// Errors shared by every ParseXXX function in this package.
var (
	ErrNilNode = errors.New("segment node is nil")
)

// wrongTag reports a ParseXXX call against a node whose Tag doesn't match
// the segment the caller asked for.
func wrongTag(want, got string) error {
	return fmt.Errorf("expected %s segment, got %s", want, got)
}

// checkTag validates n is non-nil, a segment node (not a group), and
// carries the expected tag, returning a uniform error otherwise.
func checkTag(n *tree.Node, tag string) error {
	if n == nil {
		return ErrNilNode
	}
	if n.Kind != tree.KindSegment || n.Tag != tag {
		return wrongTag(tag, n.Tag)
	}
	return nil
}

// components returns the decoded subfield values of the field at pos, or
// nil if the field is absent - the composite-element equivalent of
// tree.Node.Field for segments like SVC01 (HC:99213) and HI01
// (ABK:J0300).
func components(n *tree.Node, pos int) []string {
	f, ok := n.FieldAt(pos)
	if !ok {
		return nil
	}
	return f.Components()
}
