package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/ediparse/ediseg"
)

func testDelims() ediseg.Delimiters {
	return ediseg.Delimiters{Segment: '~', Field: '*', Sub: ':', Repetition: '^', Release: 0}
}

func TestLex_SimpleSegments(t *testing.T) {
	content := []byte("ISA*00**~GS*HC*SENDER*RECEIVER~")
	segs, err := Lex(content, testDelims(), Options{})
	require.NoError(t, err)
	require.Len(t, segs, 2)
	assert.Equal(t, "ISA", segs[0].Tag)
	assert.Equal(t, "GS", segs[1].Tag)
	assert.Equal(t, "HC", segs[1].Fields[0].Value())
}

func TestLex_CompositesAndRepetitions(t *testing.T) {
	content := []byte("NM1*IL*1*DOE*JOHN^JIM*A:B~")
	segs, err := Lex(content, testDelims(), Options{})
	require.NoError(t, err)
	require.Len(t, segs, 1)

	field4 := segs[0].Fields[3]
	require.Len(t, field4.Repetitions, 2)
	assert.Equal(t, "JOHN", field4.Repetitions[0].Composites[0].Value)
	assert.Equal(t, "JIM", field4.Repetitions[1].Composites[0].Value)

	field5 := segs[0].Fields[4]
	require.Len(t, field5.Repetitions[0].Composites, 2)
	assert.Equal(t, "A", field5.Repetitions[0].Composites[0].Value)
	assert.Equal(t, "B", field5.Repetitions[0].Composites[1].Value)
}

func TestLex_ReleaseCharacterEscaping(t *testing.T) {
	d := testDelims()
	d.Release = '?'
	content := []byte("REF*1A*VALUE?*WITH?*STAR~")
	segs, err := Lex(content, d, Options{})
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, "VALUE*WITH*STAR", segs[0].Fields[1].Value())
}

func TestLex_TrimTrailingSpaces(t *testing.T) {
	content := []byte("REF*1A*PADDED    ~")
	segs, err := Lex(content, testDelims(), Options{TrimTrailingSpaces: true})
	require.NoError(t, err)
	assert.Equal(t, "PADDED", segs[0].Fields[1].Value())
}

func TestLex_EmptyInput(t *testing.T) {
	_, err := Lex(nil, testDelims(), Options{})
	require.ErrorIs(t, err, ediseg.ErrEmptyInput)
}

func TestLex_MaxSegmentsExceeded(t *testing.T) {
	content := []byte("ISA*1~ISA*2~ISA*3~")
	_, err := Lex(content, testDelims(), Options{MaxSegments: 2})
	require.ErrorIs(t, err, ediseg.ErrInputTooLarge)
}

func TestLex_SkipsBlankLines(t *testing.T) {
	content := []byte("ISA*1~\r\n\r\nGS*2~")
	segs, err := Lex(content, testDelims(), Options{})
	require.NoError(t, err)
	require.Len(t, segs, 2)
}
