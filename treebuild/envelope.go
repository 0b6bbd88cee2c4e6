package treebuild

import (
	"fmt"
	"strconv"

	"github.com/dshills/ediparse/diag"
	"github.com/dshills/ediparse/ediseg"
	"github.com/dshills/ediparse/tree"
)

// postProcess runs the bookkeeping hooks spec.md §4.5 describes for HL
// hierarchy tracking and ISA/GS/ST envelope pairing. It never affects
// stack control flow - it only records side-table entries and, for
// trailer segments, compares the declared counts/control numbers against
// what was actually observed.
func (bd *builder) postProcess(seg ediseg.Segment, node *tree.Node) {
	switch seg.Tag {
	case "HL":
		bd.hl = append(bd.hl, tree.HLEntry{
			ID:       node.Field(1),
			ParentID: node.Field(2),
			Level:    node.Field(3),
			Node:     node,
		})
	case "ISA":
		bd.isaControl = node.Field(13)
		bd.isaPairs = 0
	case "GS":
		bd.gsControl = node.Field(6)
		bd.gsPairs = 0
	case "ST":
		bd.stControl = node.Field(2)
		bd.stStart = seg.Index
	case "SE":
		bd.checkSE(seg, node)
		bd.gsPairs++
	case "GE":
		bd.checkGE(seg, node)
		bd.isaPairs++
	case "IEA":
		bd.checkIEA(seg, node)
	}
}

func (bd *builder) checkSE(seg ediseg.Segment, node *tree.Node) {
	expected := seg.Index - bd.stStart + 1
	if n, err := strconv.Atoi(node.Field(1)); err == nil && n != expected {
		bd.emitCount(seg, node, "SE01 segment count (ST through SE inclusive)", strconv.Itoa(expected), node.Field(1))
	}
	if node.Field(2) != bd.stControl {
		bd.emitControl(seg, node, "ST02/SE02 transaction set control number", bd.stControl, node.Field(2))
	}
}

func (bd *builder) checkGE(seg ediseg.Segment, node *tree.Node) {
	if n, err := strconv.Atoi(node.Field(1)); err == nil && n != bd.gsPairs {
		bd.emitCount(seg, node, "GE01 number of ST/SE pairs", strconv.Itoa(bd.gsPairs), node.Field(1))
	}
	if node.Field(2) != bd.gsControl {
		bd.emitControl(seg, node, "GS06/GE02 functional group control number", bd.gsControl, node.Field(2))
	}
}

func (bd *builder) checkIEA(seg ediseg.Segment, node *tree.Node) {
	if n, err := strconv.Atoi(node.Field(1)); err == nil && n != bd.isaPairs {
		bd.emitCount(seg, node, "IEA01 number of GS/GE pairs", strconv.Itoa(bd.isaPairs), node.Field(1))
	}
	if node.Field(2) != bd.isaControl {
		bd.emitControl(seg, node, "ISA13/IEA02 interchange control number", bd.isaControl, node.Field(2))
	}
}

func (bd *builder) emitCount(seg ediseg.Segment, node *tree.Node, what, expected, actual string) {
	loc := ediseg.Location{Offset: seg.Offset, Line: seg.Line, Path: node.Path, Segment: seg.Tag, SegmentIndex: seg.Index}
	bd.collector.Add(diag.At(diag.CodeCountMismatch, diag.CategoryStructural, diag.Error, loc).
		Describe(fmt.Sprintf("%s does not match the enclosed content in %s", what, seg.Tag)).
		Expected(expected).
		Actual(actual).
		Suggest("recompute the trailer count to match the enclosed segments or groups").
		Build())
}

func (bd *builder) emitControl(seg ediseg.Segment, node *tree.Node, what, expected, actual string) {
	loc := ediseg.Location{Offset: seg.Offset, Line: seg.Line, Path: node.Path, Segment: seg.Tag, SegmentIndex: seg.Index}
	bd.collector.Add(diag.At(diag.CodeControlMismatch, diag.CategoryStructural, diag.Error, loc).
		Describe(fmt.Sprintf("%s does not match its paired header", what)).
		Expected(expected).
		Actual(actual).
		Suggest("verify the header and trailer control numbers were generated from the same interchange").
		Build())
}
