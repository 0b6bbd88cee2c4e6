package fieldval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/ediparse/grammar"
)

func TestValidate_MandatoryMissing(t *testing.T) {
	schema := grammar.FieldSchema{Position: 1, Type: grammar.TypeAN, Mandatory: true, MinLen: 1, MaxLen: 5}
	dec, issues := Validate(schema, "", nil)
	assert.False(t, dec.Present)
	assert.Len(t, issues, 1)
	assert.Equal(t, "E110-FIELD-MISSING", string(issues[0].Code))
}

func TestValidate_ConditionalMissingIsSilent(t *testing.T) {
	schema := grammar.FieldSchema{Position: 1, Type: grammar.TypeAN, Mandatory: false}
	dec, issues := Validate(schema, "", nil)
	assert.False(t, dec.Present)
	assert.Empty(t, issues)
}

func TestValidate_AN_LengthViolation(t *testing.T) {
	schema := grammar.FieldSchema{Position: 2, Type: grammar.TypeAN, MinLen: 3, MaxLen: 5}
	_, issues := Validate(schema, "ab", nil)
	assert.Len(t, issues, 1)
	assert.Equal(t, "E112-FIELD-LENGTH", string(issues[0].Code))
}

func TestValidate_N_ImpliedDecimals(t *testing.T) {
	schema := grammar.FieldSchema{Position: 2, Type: grammar.TypeN, ImpliedDecimals: 2, MinLen: 1, MaxLen: 18}
	dec, issues := Validate(schema, "10000", nil)
	assert.Empty(t, issues)
	assert.Equal(t, "100.00", dec.Numeric)
}

func TestValidate_N_NotNumeric(t *testing.T) {
	schema := grammar.FieldSchema{Position: 1, Type: grammar.TypeN, MinLen: 1, MaxLen: 10}
	_, issues := Validate(schema, "12a", nil)
	assert.Len(t, issues, 1)
	assert.Equal(t, "E113-FIELD-NOT-NUMERIC", string(issues[0].Code))
}

func TestValidate_ID_CodeSetMembership(t *testing.T) {
	schema := grammar.FieldSchema{Position: 1, Type: grammar.TypeID, CodeSet: "bpr03", MinLen: 1, MaxLen: 1}
	codeSets := map[string]grammar.CodeSet{"bpr03": {Codes: map[string]string{"C": "Credit", "D": "Debit"}}}

	_, issues := Validate(schema, "C", codeSets)
	assert.Empty(t, issues)

	_, issues = Validate(schema, "Q", codeSets)
	assert.Len(t, issues, 1)
	assert.Equal(t, "E201-CODE-UNKNOWN", string(issues[0].Code))
}

func TestValidate_DT_InvalidCalendarDate(t *testing.T) {
	schema := grammar.FieldSchema{Position: 1, Type: grammar.TypeDT, MinLen: 8, MaxLen: 8}
	_, issues := Validate(schema, "20250230", nil)
	assert.Len(t, issues, 1)
	assert.Equal(t, "E120-DATE-INVALID", string(issues[0].Code))

	_, issues = Validate(schema, "20250228", nil)
	assert.Empty(t, issues)
}

func TestValidate_TM_ValidAndInvalid(t *testing.T) {
	schema := grammar.FieldSchema{Position: 1, Type: grammar.TypeTM, MinLen: 4, MaxLen: 6}
	_, issues := Validate(schema, "1230", nil)
	assert.Empty(t, issues)
	_, issues = Validate(schema, "2561", nil)
	assert.Len(t, issues, 1)
}

func TestScaleDecimal(t *testing.T) {
	assert.Equal(t, "1.00", scaleDecimal("100", 2))
	assert.Equal(t, "-0.05", scaleDecimal("-5", 2))
	assert.Equal(t, "123", scaleDecimal("123", 0))
}
