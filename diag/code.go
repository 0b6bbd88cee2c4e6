package diag

// Code is a stable, documented identifier for a class of diagnostic. Codes
// never change meaning across versions of the catalogue; new conditions get
// new codes.
type Code string

// Category groups codes by the subsystem that raised them.
type Category string

const (
	CategoryDelimiter       Category = "delimiter"
	CategoryStructural      Category = "structural"
	CategoryFieldValidation Category = "field_validation"
	CategoryGrammar         Category = "grammar"
	CategoryIO              Category = "io"
)

const (
	// Fatal input failures. E001 and E002 are CategoryDelimiter (§4.1)
	// detection failures; E003 is CategoryIO, raised for the input-size
	// limit and the lexer's segment/field limits.
	CodeDelimISA        Code = "E001-DELIM-ISA"
	CodeDelimCollision  Code = "E002-DELIM-COLLISION"
	CodeInputTooLarge   Code = "E003-INPUT-TOO-LARGE"

	// CategoryGrammar (§7): the grammar catalogue holds no definition for
	// the requested (edi_type, message_type, version) triple. Always
	// fatal - there is no schema to validate against.
	CodeGrammarMissing Code = "E004-GRAMMAR-MISSING"

	// CategoryStructural (§4.2, §4.5): lexing and segment-level structure.
	CodeSegUnterminated Code = "E010-SEG-UNTERMINATED"
	CodeSegEmpty        Code = "E011-SEG-EMPTY"
	CodeEmptySkipped    Code = "I120-EMPTY-SKIPPED"

	// CategoryFieldValidation (§4.4).
	CodeFieldMissing     Code = "E110-FIELD-MISSING"
	CodeFieldCharset     Code = "E111-FIELD-CHARSET"
	CodeFieldLength      Code = "E112-FIELD-LENGTH"
	CodeFieldNotNumeric  Code = "E113-FIELD-NOT-NUMERIC"
	CodeDateInvalid      Code = "E120-DATE-INVALID"
	CodeTimeInvalid      Code = "E121-TIME-INVALID"
	CodeCodeUnknown      Code = "E201-CODE-UNKNOWN"

	// CategoryStructural (§4.5): tree-builder decision procedure and
	// envelope pairing.
	CodeStructMissing    Code = "E301-STRUCT-MISSING"
	CodeStructTrailing   Code = "E302-STRUCT-TRAILING"
	CodeSegUnknown       Code = "E303-SEG-UNKNOWN"
	CodeSegUnknownWarn   Code = "W303-SEG-UNKNOWN"
	CodeCountMismatch    Code = "E310-COUNT-MISMATCH"
	CodeControlMismatch  Code = "E311-CONTROL-MISMATCH"
)
