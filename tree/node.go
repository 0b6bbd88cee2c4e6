package tree

import "github.com/dshills/ediparse/ediseg"

// Kind distinguishes the two parse-tree node variants, mirroring
// grammar.Kind: a Node is either a record group (ordered Children) or a
// segment (ordered Fields), never both.
type Kind uint8

const (
	KindGroup Kind = iota
	KindSegment
)

// Node is one node of the parsed tree (spec.md §3). Segment nodes carry
// decoded field values; group nodes carry their matched children in the
// order they appeared in the input (spec.md invariant: "preserving
// appearance order in the input").
type Node struct {
	Kind   Kind
	Name   string // group name, e.g. "LOOP_2000"; empty for segments
	Tag    string // segment tag, e.g. "CLP"; empty for groups

	Parent *Node
	Children []*Node

	// Fields holds this segment's decoded field values, ordered by
	// position. Empty for group nodes.
	Fields []FieldValue

	// SegmentIndex is the 0-based position this segment occupied among
	// all segments lexed from the document (ediseg.Segment.Index).
	SegmentIndex int
	Offset       ediseg.Offset
	Line         int

	// Path is the slash-delimited chain of grammar node names from the
	// tree root down to (but not including) this node, used to build
	// ediseg.Location.Path for diagnostics raised against this node.
	Path string
}

// FieldValue is one decoded field of a segment node, mirroring
// ediseg.Field's repetition/composite shape but holding decoded values
// instead of raw bytes.
type FieldValue struct {
	Position    int
	Repetitions []RepetitionValue
}

// RepetitionValue is one repeated occurrence of a field.
type RepetitionValue struct {
	Composites []SubfieldValue
}

// SubfieldValue is one decoded subfield (component) value.
type SubfieldValue struct {
	Raw     string
	Present bool
	// Numeric holds the scaled exact-decimal representation for
	// numeric/real fields (fieldval.Decoded.Numeric); empty otherwise.
	Numeric string
}

// Value returns the first composite of the first repetition - the common
// case of a scalar, non-repeating field. Returns "" if absent.
func (f FieldValue) Value() string {
	if len(f.Repetitions) == 0 || len(f.Repetitions[0].Composites) == 0 {
		return ""
	}
	return f.Repetitions[0].Composites[0].Raw
}

// Numeric returns the decoded Numeric attribute of the first composite of
// the first repetition, or "" if absent or non-numeric.
func (f FieldValue) Numeric() string {
	if len(f.Repetitions) == 0 || len(f.Repetitions[0].Composites) == 0 {
		return ""
	}
	return f.Repetitions[0].Composites[0].Numeric
}

// Components returns the subfield raw values of the first repetition, in
// order - the decoded equivalent of ediseg.Field.Components.
func (f FieldValue) Components() []string {
	if len(f.Repetitions) == 0 {
		return nil
	}
	out := make([]string, len(f.Repetitions[0].Composites))
	for i, c := range f.Repetitions[0].Composites {
		out[i] = c.Raw
	}
	return out
}

// FieldAt returns the field at the given 1-based position, or the zero
// FieldValue and false if this segment node has no such field.
func (n *Node) FieldAt(pos int) (FieldValue, bool) {
	for _, f := range n.Fields {
		if f.Position == pos {
			return f, true
		}
	}
	return FieldValue{}, false
}

// Field returns FieldAt(pos).Value(), or "" if the field is absent -
// the common case callers in package segments use.
func (n *Node) Field(pos int) string {
	f, ok := n.FieldAt(pos)
	if !ok {
		return ""
	}
	return f.Value()
}

// ChildrenNamed returns this group node's direct children whose Name (for
// group children) or Tag (for segment children) equals name, in
// appearance order.
func (n *Node) ChildrenNamed(name string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name || c.Tag == name {
			out = append(out, c)
		}
	}
	return out
}

// FindAll walks the subtree rooted at n (inclusive) and returns every
// segment node with the given tag, in appearance order.
func (n *Node) FindAll(tag string) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		if cur.Kind == KindSegment && cur.Tag == tag {
			out = append(out, cur)
		}
		for _, c := range cur.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}
