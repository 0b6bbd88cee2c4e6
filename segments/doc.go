// Package segments provides typed helper structs for common X12 healthcare
// segments.
//
// Each segment type provides a struct with fields corresponding to the
// segment's data-element positions, and a ParseXXX function that extracts
// those positions from a *tree.Node segment node produced by package
// treebuild. The helpers exist so callers don't have to remember field
// positions (CLP02, SVC03, ...) when walking a parsed document.
//
// # Supported Segments
//
// Interchange/group/transaction envelope:
//   - ISA, GS, ST, SE, GE, IEA - envelope.go
//
// 835 Health Care Claim Payment/Advice:
//   - BPR, TRN, CLP, CAS, SVC - remit835.go
//
// 837 Health Care Claim (professional):
//   - HL, NM1, CLM, HI, SV1 - claim837.go
//
// # Usage Example
//
//	res, err := engine.Parse(content, ediseg.X12, "835")
//	...
//	for _, clpNode := range res.Data.Root.FindAll("CLP") {
//	    clp, err := segments.ParseCLP(clpNode)
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println("Claim", clp.PatientControlNumber, "paid", clp.ClaimPaymentAmount)
//	}
//
// # Field Numbering
//
// Field numbers are 1-based element positions within the segment, matching
// the position values used in the grammar catalog's segment schemas (e.g.
// CLP02 is position 2). Composite elements (SVC01's procedure code
// composite, HI01's diagnosis code composite) are exposed via
// tree.FieldValue.Components rather than flattened into separate struct
// fields, since their arity varies by segment and code set. A field's
// components are present only when the grammar declares it as composite;
// the built-in catalog declares SVC01, SV101 and HI01 as scalar fields, so
// a tree built with it carries only the first component of each.
package segments
