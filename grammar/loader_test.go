package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/ediparse/ediseg"
)

func TestLoad_RegistersBuiltinGrammars(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	g835, err := cat.Lookup(Key{EDIType: ediseg.X12, MessageType: "835", Version: "005010X221A1"})
	require.NoError(t, err)
	assert.Equal(t, KindGroup, g835.Root.Kind)
	assert.Equal(t, "ISA", g835.Root.Children[0].Tag)

	g837, err := cat.Lookup(Key{EDIType: ediseg.X12, MessageType: "837", Version: "005010X222A1"})
	require.NoError(t, err)
	_, ok := g837.SegmentSchemaFor("CLM")
	assert.True(t, ok)

	gOrders, err := cat.Lookup(Key{EDIType: ediseg.EDIFACT, MessageType: "ORDERS", Version: "D96A"})
	require.NoError(t, err)
	_, ok = gOrders.SegmentSchemaFor("NAD")
	assert.True(t, ok)

	_, err = cat.Lookup(Key{EDIType: ediseg.X12, MessageType: "999", Version: "00501"})
	assert.ErrorIs(t, err, ediseg.ErrUnknownMessageType)
}

func TestGrammar_SegmentSchemaFor_Unknown(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)
	g, err := cat.Lookup(Key{EDIType: ediseg.X12, MessageType: "835", Version: "005010X221A1"})
	require.NoError(t, err)

	_, ok := g.SegmentSchemaFor("ZZZ")
	assert.False(t, ok)
}

func TestFieldSchema_Composite(t *testing.T) {
	f := FieldSchema{
		Position: 1,
		Composite: []FieldSchema{
			{Position: 1, Type: TypeID},
			{Position: 2, Type: TypeAN},
		},
	}
	assert.True(t, f.IsComposite())
	sf, ok := f.SubfieldAt(2)
	assert.True(t, ok)
	assert.Equal(t, TypeAN, sf.Type)
	_, ok = f.SubfieldAt(3)
	assert.False(t, ok)
}

func TestCodeSet_Contains(t *testing.T) {
	cs := CodeSet{Codes: map[string]string{"C": "Credit"}}
	assert.True(t, cs.Contains("C"))
	assert.False(t, cs.Contains("Q"))
}
