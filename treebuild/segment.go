package treebuild

import (
	"github.com/dshills/ediparse/diag"
	"github.com/dshills/ediparse/ediseg"
	"github.com/dshills/ediparse/fieldval"
	"github.com/dshills/ediparse/grammar"
	"github.com/dshills/ediparse/trace"
	"github.com/dshills/ediparse/tree"
)

// attachSegment invokes §4.4 field validation on every field schema entry,
// appends the resulting node to the current group node, and runs the
// HL/envelope bookkeeping hooks for segments that carry them.
func (bd *builder) attachSegment(top *frame, seg ediseg.Segment, schema grammar.SegmentSchema) {
	path := framePath(bd.stack)
	node := &tree.Node{
		Kind:         tree.KindSegment,
		Tag:          seg.Tag,
		Parent:       top.treeNode,
		SegmentIndex: seg.Index,
		Offset:       seg.Offset,
		Line:         seg.Line,
		Path:         path,
	}
	for _, fs := range schema.Fields {
		node.Fields = append(node.Fields, bd.decodeField(seg, fs, path))
	}
	top.treeNode.Children = append(top.treeNode.Children, node)
	bd.postProcess(seg, node)
	bd.cfg.trace.Record(trace.Entry{Offset: seg.Offset, Line: seg.Line, Segment: seg.Tag, Path: path, Note: "attached"})
}

func (bd *builder) decodeField(seg ediseg.Segment, fs grammar.FieldSchema, path string) tree.FieldValue {
	base := ediseg.Location{
		Offset:       seg.Offset,
		Line:         seg.Line,
		Path:         path,
		Segment:      seg.Tag,
		SegmentIndex: seg.Index,
		Field:        fs.Position,
	}

	field, ok := seg.FieldAt(fs.Position)
	if !ok {
		_, issues := fieldval.Validate(fs, "", bd.gr.CodeSets)
		bd.addFieldIssues(issues, base)
		return tree.FieldValue{Position: fs.Position}
	}

	fv := tree.FieldValue{Position: fs.Position}
	for _, rep := range field.Repetitions {
		if fs.IsComposite() {
			fv.Repetitions = append(fv.Repetitions, bd.decodeComposite(fs, rep, base))
			continue
		}
		value := ""
		if len(rep.Composites) > 0 {
			value = rep.Composites[0].Value
		}
		dec, issues := fieldval.Validate(fs, value, bd.gr.CodeSets)
		bd.addFieldIssues(issues, base)
		fv.Repetitions = append(fv.Repetitions, tree.RepetitionValue{
			Composites: []tree.SubfieldValue{{Raw: dec.Raw, Present: dec.Present, Numeric: dec.Numeric}},
		})
	}
	return fv
}

func (bd *builder) decodeComposite(fs grammar.FieldSchema, rep ediseg.Repetition, base ediseg.Location) tree.RepetitionValue {
	comps := make([]tree.SubfieldValue, 0, len(fs.Composite))
	for _, sub := range fs.Composite {
		value := ""
		if idx := sub.Position - 1; idx >= 0 && idx < len(rep.Composites) {
			value = rep.Composites[idx].Value
		}
		dec, issues := fieldval.Validate(sub, value, bd.gr.CodeSets)
		subLoc := base
		subLoc.Component = sub.Position
		bd.addFieldIssues(issues, subLoc)
		comps = append(comps, tree.SubfieldValue{Raw: dec.Raw, Present: dec.Present, Numeric: dec.Numeric})
	}
	return tree.RepetitionValue{Composites: comps}
}

func (bd *builder) addFieldIssues(issues []fieldval.Issue, loc ediseg.Location) {
	for _, is := range issues {
		bd.collector.Add(diag.At(is.Code, is.Category, diag.Error, loc).
			Describe(is.Description).
			Expected(is.Expected).
			Actual(is.Actual).
			Suggest(is.Suggestion).
			Build())
	}
}
