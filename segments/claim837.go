package segments

import "github.com/dshills/ediparse/tree"

// HL represents a Hierarchical Level segment, the segment package
// treebuild keys its hierarchy tracking on. Most callers that need a
// claim's HL ancestry should go through tree.Tree.HL/HLByID/HLChildren
// instead of re-parsing this segment directly; ParseHL exists for callers
// that only have the node in hand.
type HL struct {
	ID       string
	ParentID string
	LevelCode string
	Children string
}

// ParseHL extracts HL01-HL04 from an HL segment node.
func ParseHL(n *tree.Node) (*HL, error) {
	if err := checkTag(n, "HL"); err != nil {
		return nil, err
	}
	return &HL{
		ID:        n.Field(1),
		ParentID:  n.Field(2),
		LevelCode: n.Field(3),
		Children:  n.Field(4),
	}, nil
}

// NM1 represents an Individual or Organizational Name segment, used
// throughout both 835 and 837 transactions to identify payers, providers,
// subscribers, and patients.
type NM1 struct {
	EntityIDCode     string
	EntityTypeQual   string
	LastOrOrgName    string
	FirstName        string
	MiddleName       string
	IDCodeQualifier  string
	IDCode           string
}

// ParseNM1 extracts NM101-NM105 and NM108-NM109 from an NM1 segment node.
func ParseNM1(n *tree.Node) (*NM1, error) {
	if err := checkTag(n, "NM1"); err != nil {
		return nil, err
	}
	return &NM1{
		EntityIDCode:    n.Field(1),
		EntityTypeQual:  n.Field(2),
		LastOrOrgName:   n.Field(3),
		FirstName:       n.Field(4),
		MiddleName:      n.Field(5),
		IDCodeQualifier: n.Field(8),
		IDCode:          n.Field(9),
	}, nil
}

// CLM represents the Claim Information segment that opens a claim within
// an HL billing-provider loop.
type CLM struct {
	PatientControlNumber string
	TotalChargeAmount    string
	ProviderSignature    string
	ProviderAccept       string
	ReleaseOfInfo        string
	PatientSignature     string
}

// ParseCLM extracts CLM01, CLM02, and CLM05-CLM08 from a CLM segment node.
func ParseCLM(n *tree.Node) (*CLM, error) {
	if err := checkTag(n, "CLM"); err != nil {
		return nil, err
	}
	return &CLM{
		PatientControlNumber: n.Field(1),
		TotalChargeAmount:    numericOrRaw(n, 2),
		ProviderSignature:    n.Field(5),
		ProviderAccept:       n.Field(6),
		ReleaseOfInfo:        n.Field(7),
		PatientSignature:     n.Field(8),
	}, nil
}

// HI represents one Health Care Diagnosis Code segment. Each repetition of
// HI01 carries a qualifier:code composite (e.g. "ABK:J0300" for an ICD-10
// principal diagnosis); ParseHI returns every repetition's components in
// appearance order rather than just the first.
type HI struct {
	Codes [][]string
}

// ParseHI extracts every repetition of HI01 from an HI segment node.
func ParseHI(n *tree.Node) (*HI, error) {
	if err := checkTag(n, "HI"); err != nil {
		return nil, err
	}
	f, ok := n.FieldAt(1)
	if !ok {
		return &HI{}, nil
	}
	codes := make([][]string, len(f.Repetitions))
	for i, rep := range f.Repetitions {
		vals := make([]string, len(rep.Composites))
		for j, c := range rep.Composites {
			vals[j] = c.Raw
		}
		codes[i] = vals
	}
	return &HI{Codes: codes}, nil
}

// SV1 represents the Professional Service segment of a LOOP_2400 service
// line.
type SV1 struct {
	// ProcedureCode holds SV101's composite components (e.g.
	// ["HC", "99213"]).
	ProcedureCode []string
	ChargeAmount  string
	UnitBasis     string
	Units         string
}

// ParseSV1 extracts SV101-SV104 from an SV1 segment node.
func ParseSV1(n *tree.Node) (*SV1, error) {
	if err := checkTag(n, "SV1"); err != nil {
		return nil, err
	}
	return &SV1{
		ProcedureCode: components(n, 1),
		ChargeAmount:  numericOrRaw(n, 2),
		UnitBasis:     n.Field(3),
		Units:         numericOrRaw(n, 4),
	}, nil
}
