package treebuild

import (
	"fmt"
	"strings"

	"github.com/dshills/ediparse/diag"
	"github.com/dshills/ediparse/ediseg"
	"github.com/dshills/ediparse/grammar"
	"github.com/dshills/ediparse/trace"
	"github.com/dshills/ediparse/tree"
)

// frame is one stack entry of the pushdown walker: a grammar group node
// being matched, the tree node it is filling in, a cursor into its
// children, and how many times the child at that cursor has matched so
// far. occurrences resets to zero whenever cursor advances.
type frame struct {
	node      grammar.Node
	treeNode  *tree.Node
	cursor    int
	occurrences int
}

// builder holds the mutable state of one Build invocation: the stack, the
// diagnostic collector, the HL side table, and the envelope
// pairing/counting bookkeeping (spec.md §4.5).
type builder struct {
	cfg       config
	gr        *grammar.Grammar
	collector *diag.Collector
	stack     []*frame
	hl        []tree.HLEntry
	aborted   bool

	hasWildcard bool

	isaControl string
	isaPairs   int
	gsControl  string
	gsPairs    int
	stControl  string
	stStart    int
}

// Build walks segs against gr.Root, the deterministic pushdown-stack
// decision procedure of spec.md §4.5, and returns the resulting tree plus
// every diagnostic raised along the way.
func Build(segs []ediseg.Segment, gr *grammar.Grammar, opts ...Option) (*tree.Tree, []diag.Record) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	root := &tree.Node{Kind: tree.KindGroup, Name: gr.Root.Name}
	bd := &builder{
		cfg:         cfg,
		gr:          gr,
		collector:   diag.NewCollector(cfg.demoteToWarning...),
		hasWildcard: grammarHasWildcard(gr.Root),
	}
	bd.stack = []*frame{{node: gr.Root, treeNode: root}}

	for _, seg := range segs {
		if bd.aborted {
			break
		}
		if isEmptySegment(seg) {
			bd.handleEmpty(seg)
			continue
		}
		if seg.Unterminated {
			bd.emitUnterminated(seg)
		}
		if !bd.hasWildcard {
			if _, ok := gr.Segments[seg.Tag]; !ok {
				bd.handleUnknown(seg)
				continue
			}
		}
		bd.consume(seg)
	}

	bd.finalize()

	return &tree.Tree{Root: root, HL: bd.hl}, bd.collector.Records()
}

// consume runs spec.md §4.5 steps 1-6 for one token, looping internally
// whenever a step says "retry step 1 with the same token".
func (bd *builder) consume(seg ediseg.Segment) {
	tag := seg.Tag
	for {
		if len(bd.stack) == 0 {
			bd.emitTrailing(seg)
			return
		}
		top := bd.stack[len(bd.stack)-1]
		if top.cursor >= len(top.node.Children) {
			bd.popFrame()
			continue
		}

		child := top.node.Children[top.cursor]
		switch child.Kind {
		case grammar.KindSegment:
			if bd.matchesSegment(child, tag) {
				if child.Cardinality.AtMax(top.occurrences) {
					bd.advancePast(top)
					continue
				}
				schema, _ := bd.gr.SegmentSchemaFor(tag)
				bd.attachSegment(top, seg, schema)
				top.occurrences++
				return
			}
			if child.Cardinality.Satisfies(top.occurrences) {
				bd.advancePast(top)
				continue
			}
			if !bd.missingMandatory(top, child, seg) {
				return
			}
			continue

		case grammar.KindGroup:
			if bd.matchesGroup(child, tag) {
				if child.Cardinality.AtMax(top.occurrences) {
					bd.advancePast(top)
					continue
				}
				bd.pushGroup(top, child)
				continue
			}
			if child.Cardinality.Satisfies(top.occurrences) {
				bd.advancePast(top)
				continue
			}
			if !bd.missingMandatory(top, child, seg) {
				return
			}
			continue
		}
	}
}

// matchesSegment reports whether a KindSegment child matches tag, treating
// a wildcard tag "*" as a match unless a later sibling up the stack claims
// tag instead (the envelope grammar's opaque transaction-set body).
func (bd *builder) matchesSegment(child grammar.Node, tag string) bool {
	if child.Tag == tag {
		return true
	}
	return child.Tag == "*" && !bd.wildcardYields(tag)
}

func (bd *builder) matchesGroup(child grammar.Node, tag string) bool {
	first := child.FirstSegmentTag()
	if first == tag {
		return true
	}
	return first == "*" && !bd.wildcardYields(tag)
}

// wildcardYields reports whether tag matches a not-yet-reached sibling in
// the top frame or an enclosing frame, meaning a wildcard should yield to
// it rather than swallow the token (so, e.g., SE still closes a
// transaction set whose body is declared as a wildcard run).
func (bd *builder) wildcardYields(tag string) bool {
	for lvl := len(bd.stack) - 1; lvl >= 0; lvl-- {
		f := bd.stack[lvl]
		for idx := f.cursor + 1; idx < len(f.node.Children); idx++ {
			if t := f.node.Children[idx].FirstSegmentTag(); t != "" && t != "*" && t == tag {
				return true
			}
		}
	}
	return false
}

func (bd *builder) advancePast(f *frame) {
	f.cursor++
	f.occurrences = 0
}

func (bd *builder) pushGroup(parent *frame, child grammar.Node) {
	node := &tree.Node{Kind: tree.KindGroup, Name: child.Name, Parent: parent.treeNode, Path: framePath(bd.stack)}
	parent.treeNode.Children = append(parent.treeNode.Children, node)
	bd.stack = append(bd.stack, &frame{node: child, treeNode: node})
}

// popFrame removes the top frame and, unless it was the root, credits the
// parent's current child with one completed occurrence. The parent's
// cursor is left unmoved so the next token can either re-enter the group
// (if under its max) or move on.
func (bd *builder) popFrame() {
	bd.stack = bd.stack[:len(bd.stack)-1]
	if len(bd.stack) == 0 {
		return
	}
	bd.stack[len(bd.stack)-1].occurrences++
}

// missingMandatory emits E301-STRUCT-MISSING for a mandatory child that
// the current token does not satisfy. In lenient mode (continue_on_error)
// it synthesizes a skip and returns true to keep walking; in strict mode
// it abandons the parse and returns false.
func (bd *builder) missingMandatory(top *frame, child grammar.Node, seg ediseg.Segment) bool {
	name := child.Tag
	if name == "" {
		name = child.Name
	}
	loc := ediseg.Location{Offset: seg.Offset, Line: seg.Line, Path: framePath(bd.stack), Segment: seg.Tag, SegmentIndex: seg.Index}
	bd.collector.Add(diag.At(diag.CodeStructMissing, diag.CategoryStructural, diag.Error, loc).
		Describe(fmt.Sprintf("expected %s here, found %s", name, seg.Tag)).
		Expected(name).
		Actual(seg.Tag).
		Suggest(fmt.Sprintf("insert the required %s before %s, or check the document structure", name, seg.Tag)).
		Build())

	if bd.cfg.continueOnError {
		bd.advancePast(top)
		bd.cfg.trace.Record(trace.Entry{Offset: seg.Offset, Line: seg.Line, Segment: seg.Tag, Path: framePath(bd.stack), Note: fmt.Sprintf("skipped missing mandatory %s, continuing", name)})
		return true
	}
	bd.aborted = true
	bd.cfg.trace.Record(trace.Entry{Offset: seg.Offset, Line: seg.Line, Segment: seg.Tag, Path: framePath(bd.stack), Note: fmt.Sprintf("aborted: missing mandatory %s", name)})
	return false
}

func (bd *builder) emitTrailing(seg ediseg.Segment) {
	loc := ediseg.Location{Offset: seg.Offset, Line: seg.Line, Segment: seg.Tag, SegmentIndex: seg.Index}
	bd.collector.Add(diag.At(diag.CodeStructTrailing, diag.CategoryStructural, diag.Error, loc).
		Describe(fmt.Sprintf("segment %s follows a structurally complete document", seg.Tag)).
		Actual(seg.Tag).
		Suggest("remove trailing content after the interchange trailer, or check for a missing envelope wrapper").
		Build())
	bd.cfg.trace.Record(trace.Entry{Offset: seg.Offset, Line: seg.Line, Segment: seg.Tag, Note: "rejected: trailing content beyond end of document"})
}

// emitUnterminated reports spec.md §4.2's recoverable E010: the segment
// ran to end-of-input with no terminator byte. The lexer has already
// emitted the segment's partial token; this only adds the diagnostic.
func (bd *builder) emitUnterminated(seg ediseg.Segment) {
	loc := ediseg.Location{Offset: seg.Offset, Line: seg.Line, Path: framePath(bd.stack), Segment: seg.Tag, SegmentIndex: seg.Index}
	bd.collector.Add(diag.At(diag.CodeSegUnterminated, diag.CategoryStructural, diag.Error, loc).
		Describe(fmt.Sprintf("segment %s reached end of input without a terminator", seg.Tag)).
		Suggest("verify the document was not truncated before the closing delimiter").
		Build())
}

func (bd *builder) handleEmpty(seg ediseg.Segment) {
	loc := ediseg.Location{Offset: seg.Offset, Line: seg.Line, Segment: seg.Tag, SegmentIndex: seg.Index, Path: framePath(bd.stack)}
	if bd.cfg.emptySegmentHandling == EmptySegmentError {
		bd.collector.Add(diag.At(diag.CodeSegEmpty, diag.CategoryStructural, diag.Error, loc).
			Describe("segment has no recognizable tag").
			Suggest("remove the stray delimiters producing this empty segment").
			Build())
		return
	}
	bd.collector.Add(diag.At(diag.CodeEmptySkipped, diag.CategoryStructural, diag.Info, loc).
		Describe("empty segment skipped").
		Build())
	bd.cfg.trace.Record(trace.Entry{Offset: seg.Offset, Line: seg.Line, Path: loc.Path, Note: "empty segment skipped"})
}

func (bd *builder) handleUnknown(seg ediseg.Segment) {
	loc := ediseg.Location{Offset: seg.Offset, Line: seg.Line, Segment: seg.Tag, SegmentIndex: seg.Index, Path: framePath(bd.stack)}
	if bd.cfg.checkUnknownEntities {
		bd.collector.Add(diag.At(diag.CodeSegUnknown, diag.CategoryStructural, diag.Error, loc).
			Describe(fmt.Sprintf("segment tag %q is not defined in this grammar", seg.Tag)).
			Actual(seg.Tag).
			Suggest("verify the transaction set identifier and version match the grammar in use").
			Build())
		return
	}
	bd.collector.Add(diag.At(diag.CodeSegUnknownWarn, diag.CategoryStructural, diag.Warning, loc).
		Describe(fmt.Sprintf("segment tag %q is not defined in this grammar; attached without interpretation", seg.Tag)).
		Actual(seg.Tag).
		Build())
	bd.cfg.trace.Record(trace.Entry{Offset: seg.Offset, Line: seg.Line, Segment: seg.Tag, Path: loc.Path, Note: "unknown segment attached without interpretation"})
	if len(bd.stack) == 0 {
		return
	}
	top := bd.stack[len(bd.stack)-1]
	top.treeNode.Children = append(top.treeNode.Children, &tree.Node{
		Kind:         tree.KindSegment,
		Tag:          seg.Tag,
		Parent:       top.treeNode,
		SegmentIndex: seg.Index,
		Offset:       seg.Offset,
		Line:         seg.Line,
		Path:         framePath(bd.stack),
	})
}

// finalize reports any mandatory child, anywhere on the still-open stack,
// that never reached its minimum occurrence count before the token stream
// ran out.
func (bd *builder) finalize() {
	if bd.aborted {
		return
	}
	for i := len(bd.stack) - 1; i >= 0; i-- {
		f := bd.stack[i]
		for idx := f.cursor; idx < len(f.node.Children); idx++ {
			occ := 0
			if idx == f.cursor {
				occ = f.occurrences
			}
			child := f.node.Children[idx]
			if child.Cardinality.Satisfies(occ) {
				continue
			}
			name := child.Tag
			if name == "" {
				name = child.Name
			}
			loc := ediseg.Location{Path: framePath(bd.stack[:i+1])}
			bd.collector.Add(diag.At(diag.CodeStructMissing, diag.CategoryStructural, diag.Error, loc).
				Describe(fmt.Sprintf("expected %s before end of input", name)).
				Expected(name).
				Actual("(end of input)").
				Suggest(fmt.Sprintf("add the required %s", name)).
				Build())
		}
	}
}

func framePath(stack []*frame) string {
	var parts []string
	for i, f := range stack {
		if i == 0 || f.node.Name == "" {
			continue
		}
		parts = append(parts, f.node.Name)
	}
	return strings.Join(parts, "/")
}

func isEmptySegment(seg ediseg.Segment) bool {
	return strings.TrimSpace(seg.Tag) == ""
}

func grammarHasWildcard(n grammar.Node) bool {
	if n.Kind == grammar.KindSegment {
		return n.Tag == "*"
	}
	for _, c := range n.Children {
		if grammarHasWildcard(c) {
			return true
		}
	}
	return false
}
