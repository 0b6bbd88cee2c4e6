package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/ediparse/delim"
	"github.com/dshills/ediparse/diag"
	"github.com/dshills/ediparse/ediseg"
	"github.com/dshills/ediparse/grammar"
	"github.com/dshills/ediparse/lex"
	"github.com/dshills/ediparse/trace"
	"github.com/dshills/ediparse/tree"
	"github.com/dshills/ediparse/treebuild"
)

// envelopeMessageType is the pseudo message_type alias the grammar
// catalog defines per SPEC_FULL's "envelope as a message-type alias":
// the ISA/GS/...(/GE/IEA) skeleton only, body treated as opaque.
const envelopeMessageType = "envelope"

// Engine is the API-boundary object spec.md §9 describes: it owns the
// grammar catalogue, built once and read-only thereafter, and exposes
// Parse and Validate. Grammar objects are immutable, so a single Engine
// may be shared freely across concurrently running calls; there is no
// other process-wide mutable state.
type Engine struct {
	catalog *grammar.Catalog
}

// New constructs an Engine around the grammar catalogue built into this
// module (package grammar's embedded catalog/*.yaml documents: X12 835,
// 837, the X12 envelope skeleton, and EDIFACT ORDERS D96A). Callers that
// want a cold cache construct a new Engine; there is no singleton.
func New() (*Engine, error) {
	cat, err := grammar.Load()
	if err != nil {
		return nil, fmt.Errorf("core: loading grammar catalog: %w", err)
	}
	return &Engine{catalog: cat}, nil
}

// NewWithCatalog constructs an Engine around a caller-supplied catalog,
// for embedders that register additional or alternate grammar documents
// via grammar.ParseYAML/Catalog.Register instead of the built-in set.
func NewWithCatalog(cat *grammar.Catalog) *Engine {
	return &Engine{catalog: cat}
}

// Parse implements spec.md §4.7's parse operation: content, edi_type,
// message_type, options → ParseResult.
//
// A Go error is returned only for caller misuse that makes the call
// meaningless to attempt: a nil content slice, or an edi_type other than
// ediseg.X12/ediseg.EDIFACT. Every document-level problem - an empty but
// non-nil document, an unrecognized envelope, a delimiter collision, an
// unmatched grammar - is reported as a diagnostic within ParseResult,
// per the error-handling design in spec.md §7.
func (e *Engine) Parse(content []byte, ediType ediseg.EDIType, messageType string, opts ...Option) (ParseResult, error) {
	return e.run(content, ediType, messageType, opts, false)
}

// Validate implements spec.md §4.7's validate operation. It shares the
// core with Parse but forces lenient structural continuation
// (continue_on_error=true) so that every error in the document surfaces
// rather than aborting at the first one.
func (e *Engine) Validate(content []byte, ediType ediseg.EDIType, messageType string, opts ...Option) (ValidateResult, error) {
	res, err := e.run(content, ediType, messageType, opts, true)
	if err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{
		Valid:       res.Success,
		ErrorCount:  countFailures(res.Diagnostics),
		Diagnostics: res.Diagnostics,
		Summary:     summarize(res),
		RunID:       res.RunID,
	}, nil
}

func (e *Engine) run(content []byte, ediType ediseg.EDIType, messageType string, userOpts []Option, forceLenient bool) (ParseResult, error) {
	if content == nil {
		return ParseResult{}, ediseg.ErrEmptyInput
	}
	if ediType != ediseg.X12 && ediType != ediseg.EDIFACT {
		return ParseResult{}, ediseg.ErrUnknownEDIType
	}

	cfg := defaultConfig()
	for _, o := range userOpts {
		o(&cfg)
	}
	if forceLenient {
		cfg.continueOnError = true
		cfg.fieldValidationMode = ModeLenient
	}

	runID := uuid.NewString()

	if cfg.maxInputSize > 0 && len(content) > cfg.maxInputSize {
		return e.finish(runID, nil, nil, []diag.Record{inputTooLarge(len(content), cfg.maxInputSize)}), nil
	}

	delims, err := delim.Detect(content, ediType)
	if err != nil {
		return e.finish(runID, nil, nil, []diag.Record{delimiterDiagnostic(err)}), nil
	}

	segs, err := lex.Lex(content, delims, lex.Options{
		TrimTrailingSpaces: cfg.trimTrailingSpaces,
		MaxSegments:        cfg.maxSegments,
		MaxFieldLength:     cfg.maxFieldLength,
	})
	if err != nil {
		return e.finish(runID, nil, segs, []diag.Record{lexDiagnostic(err, cfg)}), nil
	}

	version, ok := detectVersion(ediType, messageType, segs)
	if !ok {
		version = ""
	}
	gr, err := e.catalog.Lookup(grammar.Key{EDIType: ediType, MessageType: messageType, Version: version})
	if err != nil {
		return e.finish(runID, nil, segs, []diag.Record{grammarMissing(ediType, messageType, version)}), nil
	}

	var rec *trace.Recorder
	if cfg.debug {
		rec = trace.NewRecorder()
	}
	t, built := treebuild.Build(segs, gr,
		treebuild.WithContinueOnError(cfg.continueOnError),
		treebuild.WithEmptySegmentHandling(cfg.emptySegmentHandling),
		treebuild.WithCheckUnknownEntities(cfg.checkUnknownEntities),
		treebuild.WithDemoteToWarning(cfg.demotions()...),
		treebuild.WithTrace(rec),
	)

	result := e.finish(runID, t, segs, built)
	if rec != nil {
		result.Trace = rec.Entries()
	}
	return result, nil
}

// finish assembles a ParseResult from whatever stage the run reached,
// sorting records per spec.md §3's ascending-byte-offset ordering
// invariant and computing message_count from whatever segments were
// successfully lexed.
func (e *Engine) finish(runID string, t *tree.Tree, segs []ediseg.Segment, records []diag.Record) ParseResult {
	sorted := sortRecords(records)
	return ParseResult{
		Success:      isSuccess(sorted),
		Data:         t,
		Diagnostics:  sorted,
		MessageCount: messageCount(segs),
		RunID:        runID,
	}
}

func isSuccess(records []diag.Record) bool {
	for _, r := range records {
		if r.Severity().IsFailure() {
			return false
		}
	}
	return true
}

func sortRecords(in []diag.Record) []diag.Record {
	c := diag.NewCollector()
	for _, r := range in {
		c.Add(r)
	}
	return c.Records()
}

func countFailures(records []diag.Record) int {
	n := 0
	for _, r := range records {
		if r.Severity().IsFailure() {
			n++
		}
	}
	return n
}

func messageCount(segs []ediseg.Segment) int {
	n := 0
	for _, s := range segs {
		if s.Tag == "ST" || s.Tag == "UNH" {
			n++
		}
	}
	return n
}

func summarize(res ParseResult) string {
	errs, warns := 0, 0
	for _, r := range res.Diagnostics {
		switch r.Severity() {
		case diag.Fatal, diag.Error:
			errs++
		case diag.Warning:
			warns++
		}
	}
	unit := "transaction set"
	if res.MessageCount != 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d error(s), %d warning(s) across %d %s", errs, warns, res.MessageCount, unit)
}

// detectVersion recovers the grammar version string from the envelope
// segments already lexed, rather than requiring the caller to supply it:
// for X12 it is GS08 (the functional group's version/release/industry
// identifier), except for the "envelope" pseudo message_type, which keys
// on ISA12 (the interchange control version) instead; for EDIFACT it is
// UNH02's release and version subfields concatenated (e.g. "D" + "96A" =
// "D96A").
func detectVersion(ediType ediseg.EDIType, messageType string, segs []ediseg.Segment) (string, bool) {
	switch ediType {
	case ediseg.X12:
		if messageType == envelopeMessageType {
			return fieldValue(segs, "ISA", 12)
		}
		return fieldValue(segs, "GS", 8)
	case ediseg.EDIFACT:
		for _, s := range segs {
			if s.Tag != "UNH" {
				continue
			}
			f, ok := s.FieldAt(2)
			if !ok {
				return "", false
			}
			comps := f.Components()
			if len(comps) < 3 {
				return "", false
			}
			return comps[1] + comps[2], true
		}
		return "", false
	default:
		return "", false
	}
}

func fieldValue(segs []ediseg.Segment, tag string, pos int) (string, bool) {
	for _, s := range segs {
		if s.Tag != tag {
			continue
		}
		f, ok := s.FieldAt(pos)
		if !ok {
			return "", false
		}
		return f.Value(), true
	}
	return "", false
}

func inputTooLarge(size, max int) diag.Record {
	return diag.At(diag.CodeInputTooLarge, diag.CategoryIO, diag.Fatal, ediseg.Location{}).
		Describe(fmt.Sprintf("input is %d bytes, exceeds configured maximum of %d", size, max)).
		Expected(fmt.Sprintf("<= %d bytes", max)).
		Actual(fmt.Sprintf("%d bytes", size)).
		Suggest("split the document or raise max_input_size").
		Build()
}

// delimiterDiagnostic classifies a delim.Detect failure into E001 (no
// recognizable envelope header) or E002 (the header's own separators
// collide), per spec.md §4.1. *ediseg.DelimiterError always unwraps to
// ErrNoEnvelopeHeader regardless of cause, so the distinction is made on
// its Reason text, which for a collision always comes from
// Delimiters.Validate()'s "X and Y both use byte" message.
func delimiterDiagnostic(err error) diag.Record {
	code := diag.CodeDelimISA
	offset := ediseg.Offset(0)
	if de, ok := err.(*ediseg.DelimiterError); ok {
		offset = ediseg.Offset(de.Offset)
		if strings.Contains(de.Reason, "both use byte") {
			code = diag.CodeDelimCollision
		}
	}
	return diag.At(code, diag.CategoryDelimiter, diag.Fatal, ediseg.Location{Offset: offset}).
		Describe(err.Error()).
		Suggest("verify the document begins with a recognizable ISA or UNA/UNB envelope header using distinct delimiter bytes").
		Build()
}

// lexDiagnostic classifies a lex.Lex failure. ErrEmptyInput reuses E001
// (the boundary spec.md §8 describes for parse("")); ErrInputTooLarge
// covers both the segment-count and field-length DoS rails.
func lexDiagnostic(err error, cfg config) diag.Record {
	if err == ediseg.ErrEmptyInput {
		return diag.At(diag.CodeDelimISA, diag.CategoryDelimiter, diag.Fatal, ediseg.Location{}).
			Describe("input is empty").
			Suggest("supply a non-empty document").
			Build()
	}
	return diag.At(diag.CodeInputTooLarge, diag.CategoryIO, diag.Fatal, ediseg.Location{}).
		Describe("document exceeds a configured DoS-protection limit (segment count or field length)").
		Expected(fmt.Sprintf("<= %d segments, <= %d bytes per field", cfg.maxSegments, cfg.maxFieldLength)).
		Suggest("raise max_segments/max_field_length or investigate a malformed/malicious input").
		Build()
}

func grammarMissing(ediType ediseg.EDIType, messageType, version string) diag.Record {
	return diag.At(diag.CodeGrammarMissing, diag.CategoryGrammar, diag.Fatal, ediseg.Location{}).
		Describe(fmt.Sprintf("no grammar registered for %s/%s/%s", ediType, messageType, version)).
		Expected("a grammar in the catalog for this (edi_type, message_type, version)").
		Actual(fmt.Sprintf("%s/%s/%s", ediType, messageType, version)).
		Suggest("verify message_type and that the document's declared version matches a loaded grammar").
		Build()
}
