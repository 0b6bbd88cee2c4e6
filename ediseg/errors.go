package ediseg

import (
	"errors"
	"strconv"
)

// Sentinel errors returned from the core's top-level entry points. These
// signal conditions that make continuing pointless regardless of
// continue_on_error; everything recoverable is reported as a diagnostic
// instead, not a Go error.
var (
	ErrEmptyInput         = errors.New("ediseg: empty input")
	ErrNoEnvelopeHeader   = errors.New("ediseg: no recognizable envelope header (ISA or UNA/UNB) found")
	ErrUnknownEDIType     = errors.New("ediseg: unknown edi_type")
	ErrUnknownMessageType = errors.New("ediseg: unknown message_type for this edi_type")
	ErrInvalidDelimiters  = errors.New("ediseg: invalid delimiter set")
	ErrInputTooLarge      = errors.New("ediseg: input exceeds configured maximum size")
)

// DelimiterError reports a problem discovered while detecting a
// document's delimiter set, with the byte offset the problem was found at.
type DelimiterError struct {
	Offset int
	Reason string
}

func (e *DelimiterError) Error() string {
	return "ediseg: delimiter detection failed at offset " + strconv.Itoa(e.Offset) + ": " + e.Reason
}

func (e *DelimiterError) Unwrap() error { return ErrNoEnvelopeHeader }

// GrammarError reports that the grammar catalogue holds no definition for
// a requested (edi_type, message_type, version) triple.
type GrammarError struct {
	EDIType     EDIType
	MessageType string
	Version     string
}

func (e *GrammarError) Error() string {
	return "ediseg: no grammar registered for " + string(e.EDIType) + "/" + e.MessageType + "/" + e.Version
}

func (e *GrammarError) Unwrap() error { return ErrUnknownMessageType }
