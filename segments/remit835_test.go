package segments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/ediparse/tree"
)

func TestParseBPR(t *testing.T) {
	n := segNode("BPR", "I", "132.00", "C", "ACH", "01", "011900449", "DA", "0000009999", "0106609999")
	bpr, err := ParseBPR(n)
	require.NoError(t, err)
	assert.Equal(t, "I", bpr.TransactionHandlingCode)
	assert.Equal(t, "132.00", bpr.TotalPaymentAmount)
	assert.Equal(t, "ACH", bpr.PaymentMethod)
}

func TestParseBPR_PrefersDecodedNumeric(t *testing.T) {
	n := segNode("BPR", "I")
	n.Fields = append(n.Fields, tree.FieldValue{
		Position: 2,
		Repetitions: []tree.RepetitionValue{{
			Composites: []tree.SubfieldValue{{Raw: "13200", Numeric: "132.00"}},
		}},
	})
	bpr, err := ParseBPR(n)
	require.NoError(t, err)
	assert.Equal(t, "132.00", bpr.TotalPaymentAmount)
}

func TestParseTRN(t *testing.T) {
	n := segNode("TRN", "1", "882509401093167", "1234567890")
	trn, err := ParseTRN(n)
	require.NoError(t, err)
	assert.Equal(t, "882509401093167", trn.ReferenceID)
	assert.Equal(t, "1234567890", trn.OriginatingCoID)
}

func TestParseCLP(t *testing.T) {
	n := segNode("CLP", "CLAIM001", "1", "1000.00", "680.00", "320.00")
	clp, err := ParseCLP(n)
	require.NoError(t, err)
	assert.Equal(t, "CLAIM001", clp.PatientControlNumber)
	assert.Equal(t, "1", clp.ClaimStatusCode)
	assert.Equal(t, "1000.00", clp.TotalChargeAmount)
	assert.Equal(t, "680.00", clp.ClaimPaymentAmount)
	assert.Equal(t, "320.00", clp.PatientResponsibility)
}

func TestParseCLP_WrongTag(t *testing.T) {
	_, err := ParseCLP(segNode("CAS", "CO"))
	assert.Error(t, err)
}

func TestParseCAS(t *testing.T) {
	n := segNode("CAS", "CO", "197", "30.00", "20.00")
	cas, err := ParseCAS(n)
	require.NoError(t, err)
	assert.Equal(t, "CO", cas.GroupCode)
	assert.Equal(t, "197", cas.ReasonCode)
	assert.Equal(t, "30.00", cas.AdjustmentAmt)
	assert.Equal(t, "20.00", cas.AdjustmentQty)
}

func TestParseSVC(t *testing.T) {
	n := &tree.Node{Kind: tree.KindSegment, Tag: "SVC"}
	n.Fields = append(n.Fields,
		tree.FieldValue{Position: 1, Repetitions: []tree.RepetitionValue{{
			Composites: []tree.SubfieldValue{{Raw: "HC"}, {Raw: "99213"}},
		}}},
		tree.FieldValue{Position: 2, Repetitions: []tree.RepetitionValue{{
			Composites: []tree.SubfieldValue{{Raw: "100.00"}},
		}}},
		tree.FieldValue{Position: 3, Repetitions: []tree.RepetitionValue{{
			Composites: []tree.SubfieldValue{{Raw: "68.00"}},
		}}},
		tree.FieldValue{Position: 5, Repetitions: []tree.RepetitionValue{{
			Composites: []tree.SubfieldValue{{Raw: "1"}},
		}}},
	)
	svc, err := ParseSVC(n)
	require.NoError(t, err)
	assert.Equal(t, []string{"HC", "99213"}, svc.ProcedureCode)
	assert.Equal(t, "100.00", svc.ChargeAmount)
	assert.Equal(t, "68.00", svc.PaidAmount)
	assert.Equal(t, "1", svc.PaidUnits)
}
