package segments

import "github.com/dshills/ediparse/tree"

// ISA represents the Interchange Control Header, the fixed-width segment
// that opens every X12 interchange and carries the delimiter set the rest
// of the document was lexed with.
type ISA struct {
	AuthorizationInfoQualifier string
	AuthorizationInfo          string
	SecurityInfoQualifier      string
	SecurityInfo               string
	SenderIDQualifier          string
	SenderID                   string
	ReceiverIDQualifier        string
	ReceiverID                 string
	Date                       string
	Time                       string
	RepetitionSeparator        string
	VersionNumber              string
	ControlNumber              string
	AckRequested               string
	UsageIndicator             string
	ComponentSeparator         string
}

// ParseISA extracts ISA01-ISA16 from an ISA segment node.
func ParseISA(n *tree.Node) (*ISA, error) {
	if err := checkTag(n, "ISA"); err != nil {
		return nil, err
	}
	return &ISA{
		AuthorizationInfoQualifier: n.Field(1),
		AuthorizationInfo:          n.Field(2),
		SecurityInfoQualifier:      n.Field(3),
		SecurityInfo:               n.Field(4),
		SenderIDQualifier:          n.Field(5),
		SenderID:                   n.Field(6),
		ReceiverIDQualifier:        n.Field(7),
		ReceiverID:                 n.Field(8),
		Date:                       n.Field(9),
		Time:                       n.Field(10),
		RepetitionSeparator:        n.Field(11),
		VersionNumber:              n.Field(12),
		ControlNumber:              n.Field(13),
		AckRequested:               n.Field(14),
		UsageIndicator:             n.Field(15),
		ComponentSeparator:         n.Field(16),
	}, nil
}

// GS represents the Functional Group Header.
type GS struct {
	FunctionalIDCode  string
	SenderCode        string
	ReceiverCode      string
	Date              string
	Time              string
	ControlNumber     string
	AgencyCode        string
	VersionReleaseICN string
}

// ParseGS extracts GS01-GS08 from a GS segment node.
func ParseGS(n *tree.Node) (*GS, error) {
	if err := checkTag(n, "GS"); err != nil {
		return nil, err
	}
	return &GS{
		FunctionalIDCode:  n.Field(1),
		SenderCode:        n.Field(2),
		ReceiverCode:      n.Field(3),
		Date:              n.Field(4),
		Time:              n.Field(5),
		ControlNumber:     n.Field(6),
		AgencyCode:        n.Field(7),
		VersionReleaseICN: n.Field(8),
	}, nil
}

// ST represents the Transaction Set Header.
type ST struct {
	TransactionSetID      string
	ControlNumber         string
	ImplementationConvRef string
}

// ParseST extracts ST01-ST03 from an ST segment node.
func ParseST(n *tree.Node) (*ST, error) {
	if err := checkTag(n, "ST"); err != nil {
		return nil, err
	}
	return &ST{
		TransactionSetID:      n.Field(1),
		ControlNumber:         n.Field(2),
		ImplementationConvRef: n.Field(3),
	}, nil
}

// SE represents the Transaction Set Trailer.
type SE struct {
	SegmentCount  string
	ControlNumber string
}

// ParseSE extracts SE01-SE02 from an SE segment node.
func ParseSE(n *tree.Node) (*SE, error) {
	if err := checkTag(n, "SE"); err != nil {
		return nil, err
	}
	return &SE{
		SegmentCount:  n.Field(1),
		ControlNumber: n.Field(2),
	}, nil
}

// GE represents the Functional Group Trailer.
type GE struct {
	TransactionSetCount string
	ControlNumber       string
}

// ParseGE extracts GE01-GE02 from a GE segment node.
func ParseGE(n *tree.Node) (*GE, error) {
	if err := checkTag(n, "GE"); err != nil {
		return nil, err
	}
	return &GE{
		TransactionSetCount: n.Field(1),
		ControlNumber:       n.Field(2),
	}, nil
}

// IEA represents the Interchange Control Trailer.
type IEA struct {
	FunctionalGroupCount string
	ControlNumber        string
}

// ParseIEA extracts IEA01-IEA02 from an IEA segment node.
func ParseIEA(n *tree.Node) (*IEA, error) {
	if err := checkTag(n, "IEA"); err != nil {
		return nil, err
	}
	return &IEA{
		FunctionalGroupCount: n.Field(1),
		ControlNumber:        n.Field(2),
	}, nil
}
