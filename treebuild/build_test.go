package treebuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/ediparse/delim"
	"github.com/dshills/ediparse/diag"
	"github.com/dshills/ediparse/ediseg"
	"github.com/dshills/ediparse/grammar"
	"github.com/dshills/ediparse/lex"
)

// sample835 is a complete, internally consistent 835 interchange (trailer
// counts and control numbers all agree), sourced from the reference
// implementation's demo fixture.
const sample835 = `ISA*00*          *00*          *ZZ*PAYER ID       *ZZ*RECEIVER ID    *250409*1200*^*00501*000000001*0*P*:~
GS*HP*PAYER*RECEIVER*20250409*1200*1*X*005010X221A1~
ST*835*0001*005010X221A1~
BPR*I*132*C*ACH*CCP*01*011900449*DA*0000009999*0106609999**01*107001235*DA*2200008888*20250409~
TRN*1*882509401093167*1234567890~
DTM*405*20250409~
N1*PR*INSURANCE COMPANY~
N3*PO BOX 12345~
N4*CITY*ST*12345~
REF*2U*99999~
N1*PE*PROVIDER NAME*XX*1234567890~
LX*1~
CLP*CLAIM001*1*100000*68000*32000**12345678901234567*11~
CAS*CO*197*30000*45*2000~
NM1*QC*1*PATIENT*JOHN~
DTM*232*20250101~
AMT*AU*100000~
SVC*HC:99213*100*68*32**1~
CAS*CO*132*30~
CAS*PR*3*2~
DTM*472*20250101~
LX*2~
CLP*CLAIM002*1*50*40*10**12345678901234568*11~
CAS*OA*131*10~
NM1*QC*1*DOE*JANE~
AMT*AU*50~
SVC*HC:87070*50*40*10**1~
CAS*OA*131*10~
DTM*472*20250102~
SE*28*0001~
GE*1*1~
IEA*1*000000001~`

// sample837 is the same reference implementation's 837 demo fixture. Its
// SE01 segment count (39) does not match the 35 segments actually present
// between ST and SE - a genuine inconsistency in the source fixture this
// test exercises rather than hides.
const sample837 = `ISA*00*          *00*          *ZZ*SUBMITTERS.ID  *ZZ*RECEIVERS.ID   *050516*0932*^*00501*000000001*0*T*:~
GS*HC*SENDER*RECEIVER*20050516*0932*1*X*005010X222A1~
ST*837*0001*005010X222A1~
BHT*0019*00*36463774*20050516*1200*CH~
NM1*41*2*PREMIER BILLING SERVICE*****46*TGJ23~
PER*IC*JERRY*TE*3055552222*EX*231~
NM1*40*2*KEY INSURANCE COMPANY*****46*66783JJT~
HL*1**20*1~
PRV*BI*PXC*203BF0100Y~
NM1*85*2*PREMIER BILLING SERVICE*****XX*1234567893~
N3*1234 SEAWAY ST~
N4*MIAMI*FL*33111~
REF*EI*587654321~
HL*2*1*22*0~
SBR*P*18*******CI~
NM1*IL*1*SMITH*JOHN****MI*JS00111223999~
N3*236 N MAIN ST~
N4*MIAMI*FL*33413~
DMG*D8*19430501*M~
NM1*PR*2*KEY INSURANCE COMPANY*****PI*999996666~
CLM*36463774*100***11:B:1*Y*A*Y*Y~
HI*ABK:J0300*ABF:J0310*ABF:J0320*ABF:J0330*ABF:J0340~
LX*1~
SV1*HC:99299:26:27:28:29*40*UN*1***1~
DTP*472*D8*20050325~
LX*2~
SV1*HC:87070*15*UN*1***1~
DTP*472*D8*20050325~
LX*3~
SV1*HC:99213*35*UN*1***1~
DTP*472*D8*20050325~
LX*4~
SV1*HC:86663*10*UN*1***2~
DTP*472*D8*20050325~
NM1*82*1*DOE*JANE****XX*1234567804~
PRV*PE*PXC*000000000X~
SE*39*0001~
GE*1*1~
IEA*1*000000001~`

func lexX12(t *testing.T, content string) []ediseg.Segment {
	t.Helper()
	d, err := delim.DetectX12([]byte(content))
	require.NoError(t, err)
	segs, err := lex.Lex([]byte(content), d, lex.Options{TrimTrailingSpaces: true})
	require.NoError(t, err)
	return segs
}

func hasStructuralIssue(records []diag.Record) bool {
	for _, r := range records {
		switch r.Code() {
		case diag.CodeStructMissing, diag.CodeStructTrailing, diag.CodeSegUnknown, diag.CodeControlMismatch:
			return true
		}
	}
	return false
}

func findCode(records []diag.Record, code diag.Code) (diag.Record, bool) {
	for _, r := range records {
		if r.Code() == code {
			return r, true
		}
	}
	return diag.Record{}, false
}

func TestBuild_835HappyPath(t *testing.T) {
	cat, err := grammar.Load()
	require.NoError(t, err)
	gr, err := cat.Lookup(grammar.Key{EDIType: ediseg.X12, MessageType: "835", Version: "005010X221A1"})
	require.NoError(t, err)

	segs := lexX12(t, sample835)
	tr, records := Build(segs, gr)

	assert.False(t, hasStructuralIssue(records), "unexpected structural diagnostics: %+v", records)
	if _, found := findCode(records, diag.CodeCountMismatch); found {
		t.Errorf("unexpected count mismatch in a self-consistent fixture")
	}

	claims := tr.Root.FindAll("CLP")
	require.Len(t, claims, 2)
	assert.Equal(t, "CLAIM001", claims[0].Field(1))
	assert.Equal(t, "CLAIM002", claims[1].Field(1))

	loops := tr.Root.FindAll("LX")
	assert.Len(t, loops, 2)
}

func TestBuild_837CountMismatch(t *testing.T) {
	cat, err := grammar.Load()
	require.NoError(t, err)
	gr, err := cat.Lookup(grammar.Key{EDIType: ediseg.X12, MessageType: "837", Version: "005010X222A1"})
	require.NoError(t, err)

	segs := lexX12(t, sample837)
	tr, records := Build(segs, gr)

	rec, found := findCode(records, diag.CodeCountMismatch)
	require.True(t, found, "expected an SE01 count mismatch")
	assert.Equal(t, "35", rec.Expected())
	assert.Equal(t, "39", rec.Actual())

	hls := tr.HL
	require.Len(t, hls, 2)
	assert.Equal(t, "1", hls[0].ID)
	assert.Equal(t, "20", hls[0].Level)
	assert.Equal(t, "2", hls[1].ID)
	assert.Equal(t, "1", hls[1].ParentID)
	assert.Equal(t, "22", hls[1].Level)
}

func TestBuild_EnvelopeWildcardSwallowsBody(t *testing.T) {
	cat, err := grammar.Load()
	require.NoError(t, err)
	gr, err := cat.Lookup(grammar.Key{EDIType: ediseg.X12, MessageType: "envelope", Version: "00501"})
	require.NoError(t, err)

	segs := lexX12(t, sample835)
	tr, records := Build(segs, gr)

	assert.False(t, hasStructuralIssue(records), "unexpected structural diagnostics: %+v", records)
	bodyTags := make([]string, 0)
	for _, c := range tr.Root.FindAll("BPR") {
		bodyTags = append(bodyTags, c.Tag)
	}
	assert.Equal(t, []string{"BPR"}, bodyTags)
	assert.Len(t, tr.Root.FindAll("CLP"), 2)
}

func TestBuild_UnknownSegment(t *testing.T) {
	gr := &grammar.Grammar{
		Root: grammar.Node{
			Kind:        grammar.KindGroup,
			Name:        "ROOT",
			Cardinality: grammar.Cardinality{Min: 1, Max: 1},
			Children: []grammar.Node{
				{Kind: grammar.KindSegment, Tag: "AAA", Cardinality: grammar.Cardinality{Min: 1, Max: 1}},
			},
		},
		Segments: map[string]grammar.SegmentSchema{
			"AAA": {Tag: "AAA"},
		},
	}
	segs := []ediseg.Segment{
		{Tag: "AAA", Index: 0},
		{Tag: "ZZZ", Index: 1},
	}

	t.Run("strict drops and errors", func(t *testing.T) {
		_, records := Build(segs, gr, WithCheckUnknownEntities(true))
		rec, found := findCode(records, diag.CodeSegUnknown)
		require.True(t, found)
		assert.Equal(t, diag.Error, rec.Severity())
	})

	t.Run("lenient attaches raw", func(t *testing.T) {
		tr, records := Build(segs, gr, WithCheckUnknownEntities(false))
		rec, found := findCode(records, diag.CodeSegUnknownWarn)
		require.True(t, found)
		assert.Equal(t, diag.Warning, rec.Severity())
		raw := tr.Root.FindAll("ZZZ")
		require.Len(t, raw, 1)
	})
}

func TestBuild_EmptySegmentHandling(t *testing.T) {
	gr := &grammar.Grammar{
		Root: grammar.Node{
			Kind:        grammar.KindGroup,
			Name:        "ROOT",
			Cardinality: grammar.Cardinality{Min: 1, Max: 1},
			Children: []grammar.Node{
				{Kind: grammar.KindSegment, Tag: "AAA", Cardinality: grammar.Cardinality{Min: 0, Max: -1}},
			},
		},
		Segments: map[string]grammar.SegmentSchema{"AAA": {Tag: "AAA"}},
	}
	segs := []ediseg.Segment{{Tag: "", Index: 0}}

	_, records := Build(segs, gr, WithEmptySegmentHandling(EmptySegmentSkip))
	_, found := findCode(records, diag.CodeEmptySkipped)
	assert.True(t, found)

	_, records = Build(segs, gr, WithEmptySegmentHandling(EmptySegmentError))
	rec, found := findCode(records, diag.CodeSegEmpty)
	require.True(t, found)
	assert.Equal(t, diag.Error, rec.Severity())
}

func TestBuild_MandatoryMissingStrictAbandons(t *testing.T) {
	gr := &grammar.Grammar{
		Root: grammar.Node{
			Kind:        grammar.KindGroup,
			Name:        "ROOT",
			Cardinality: grammar.Cardinality{Min: 1, Max: 1},
			Children: []grammar.Node{
				{Kind: grammar.KindSegment, Tag: "AAA", Cardinality: grammar.Cardinality{Min: 1, Max: 1}},
				{Kind: grammar.KindSegment, Tag: "BBB", Cardinality: grammar.Cardinality{Min: 1, Max: 1}},
			},
		},
		Segments: map[string]grammar.SegmentSchema{
			"AAA": {Tag: "AAA"},
			"BBB": {Tag: "BBB"},
			"CCC": {Tag: "CCC"},
		},
	}
	segs := []ediseg.Segment{
		{Tag: "AAA", Index: 0},
		{Tag: "CCC", Index: 1},
	}

	tr, records := Build(segs, gr)
	rec, found := findCode(records, diag.CodeStructMissing)
	require.True(t, found)
	assert.Equal(t, diag.Error, rec.Severity())
	assert.Equal(t, "BBB", rec.Expected())
	assert.Len(t, tr.Root.FindAll("AAA"), 1)
	assert.Empty(t, tr.Root.FindAll("CCC"))

	tr2, records2 := Build(segs, gr, WithContinueOnError(true))
	_, found = findCode(records2, diag.CodeStructMissing)
	assert.True(t, found)
	_, found = findCode(records2, diag.CodeStructTrailing)
	assert.True(t, found, "lenient mode should keep walking past the synthesized skip and reach CCC")
}
