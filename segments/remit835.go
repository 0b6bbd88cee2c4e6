package segments

import "github.com/dshills/ediparse/tree"

// BPR represents the Financial Information segment that opens an 835,
// describing how and how much was paid.
type BPR struct {
	TransactionHandlingCode string
	TotalPaymentAmount      string
	CreditDebitFlag         string
	PaymentMethod           string
	SenderDFIQualifier      string
	SenderDFIID             string
	AccountNumberQualifier  string
	AccountNumber           string
	OriginatingCompanyID    string
	PaymentDate             string
}

// ParseBPR extracts BPR01-BPR09 and BPR16 from a BPR segment node. Each
// amount field's Numeric string carries the exact decimal value scaled
// from the wire's implied two decimal places.
func ParseBPR(n *tree.Node) (*BPR, error) {
	if err := checkTag(n, "BPR"); err != nil {
		return nil, err
	}
	amount := n.Field(2)
	if f, ok := n.FieldAt(2); ok && f.Numeric() != "" {
		amount = f.Numeric()
	}
	return &BPR{
		TransactionHandlingCode: n.Field(1),
		TotalPaymentAmount:      amount,
		CreditDebitFlag:         n.Field(3),
		PaymentMethod:           n.Field(4),
		SenderDFIQualifier:      n.Field(5),
		SenderDFIID:             n.Field(6),
		AccountNumberQualifier:  n.Field(7),
		AccountNumber:           n.Field(8),
		OriginatingCompanyID:    n.Field(9),
		PaymentDate:             n.Field(16),
	}, nil
}

// TRN represents the Reassociation Trace Number segment, the key a payee's
// system uses to match an 835 to its corresponding payment.
type TRN struct {
	TraceTypeCode    string
	ReferenceID      string
	OriginatingCoID  string
}

// ParseTRN extracts TRN01-TRN03 from a TRN segment node.
func ParseTRN(n *tree.Node) (*TRN, error) {
	if err := checkTag(n, "TRN"); err != nil {
		return nil, err
	}
	return &TRN{
		TraceTypeCode:   n.Field(1),
		ReferenceID:     n.Field(2),
		OriginatingCoID: n.Field(3),
	}, nil
}

// CLP represents one Claim Payment Information segment, the header of a
// LOOP_2000 claim.
type CLP struct {
	PatientControlNumber  string
	ClaimStatusCode       string
	TotalChargeAmount     string
	ClaimPaymentAmount    string
	PatientResponsibility string
	ClaimFilingIndicator  string
	PayerClaimControlNum  string
	FacilityTypeCode      string
}

// ParseCLP extracts CLP01-CLP08 from a CLP segment node, resolving the
// numeric-typed amount fields (CLP03-CLP05) to their scaled decimal form.
func ParseCLP(n *tree.Node) (*CLP, error) {
	if err := checkTag(n, "CLP"); err != nil {
		return nil, err
	}
	return &CLP{
		PatientControlNumber:  n.Field(1),
		ClaimStatusCode:       n.Field(2),
		TotalChargeAmount:     numericOrRaw(n, 3),
		ClaimPaymentAmount:    numericOrRaw(n, 4),
		PatientResponsibility: numericOrRaw(n, 5),
		ClaimFilingIndicator:  n.Field(6),
		PayerClaimControlNum:  n.Field(7),
		FacilityTypeCode:      n.Field(8),
	}, nil
}

// CAS represents one Claim Adjustment segment, reporting why a paid amount
// differs from the billed amount.
type CAS struct {
	GroupCode      string
	ReasonCode     string
	AdjustmentAmt  string
	AdjustmentQty  string
}

// ParseCAS extracts CAS01-CAS04 from a CAS segment node.
func ParseCAS(n *tree.Node) (*CAS, error) {
	if err := checkTag(n, "CAS"); err != nil {
		return nil, err
	}
	return &CAS{
		GroupCode:     n.Field(1),
		ReasonCode:    n.Field(2),
		AdjustmentAmt: numericOrRaw(n, 3),
		AdjustmentQty: numericOrRaw(n, 4),
	}, nil
}

// SVC represents one Service Payment Information segment within a
// LOOP_2110 service line.
type SVC struct {
	// ProcedureCode holds SVC01's composite components (e.g.
	// ["HC", "99213"] for an HC-qualified CPT code).
	ProcedureCode    []string
	ChargeAmount     string
	PaidAmount       string
	RevisedProcedure []string
	PaidUnits        string
}

// ParseSVC extracts SVC01-SVC05 from an SVC segment node.
func ParseSVC(n *tree.Node) (*SVC, error) {
	if err := checkTag(n, "SVC"); err != nil {
		return nil, err
	}
	return &SVC{
		ProcedureCode:    components(n, 1),
		ChargeAmount:     numericOrRaw(n, 2),
		PaidAmount:       numericOrRaw(n, 3),
		RevisedProcedure: components(n, 4),
		PaidUnits:        n.Field(5),
	}, nil
}

// numericOrRaw returns a field's scaled Numeric representation, falling
// back to its raw value for non-numeric or absent fields.
func numericOrRaw(n *tree.Node, pos int) string {
	f, ok := n.FieldAt(pos)
	if !ok {
		return ""
	}
	if num := f.Numeric(); num != "" {
		return num
	}
	return f.Value()
}
