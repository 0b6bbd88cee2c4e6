package fieldval

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dshills/ediparse/diag"
	"github.com/dshills/ediparse/grammar"
)

var (
	reInteger = regexp.MustCompile(`^[+-]?[0-9]+$`)
	reReal    = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)
	reTime    = regexp.MustCompile(`^([01][0-9]|2[0-3])([0-5][0-9])([0-5][0-9])?(\.[0-9]+)?$`)
)

// Validate checks raw against schema, consulting codeSets for TypeID
// membership, and returns the decoded value plus any Issues found. An
// empty raw value is handled per spec.md §4.4's "Empty field" rule:
// mandatory-and-empty is an Issue, conditional-and-empty is not (Decoded
// is returned with Present == false either way).
func Validate(schema grammar.FieldSchema, raw string, codeSets map[string]grammar.CodeSet) (Decoded, []Issue) {
	if raw == "" {
		if schema.Mandatory {
			return Decoded{}, []Issue{{
				Code:        diag.CodeFieldMissing,
				Category:    diag.CategoryFieldValidation,
				Description: fmt.Sprintf("field %d is mandatory but empty", schema.Position),
				Expected:    "a non-empty value",
				Actual:      "(empty)",
				Suggestion:  "supply a value for this field, or remove the segment if it truly does not apply",
			}}
		}
		return Decoded{}, nil
	}

	switch schema.Type {
	case grammar.TypeAN:
		return validateAN(schema, raw)
	case grammar.TypeN:
		return validateN(schema, raw)
	case grammar.TypeR:
		return validateR(schema, raw)
	case grammar.TypeID:
		return validateID(schema, raw, codeSets)
	case grammar.TypeDT:
		return validateDT(schema, raw)
	case grammar.TypeTM:
		return validateTM(schema, raw)
	case grammar.TypeB:
		return validateB(schema, raw)
	default:
		return Decoded{Raw: raw, Present: true}, checkLength(schema, raw)
	}
}

func checkLength(schema grammar.FieldSchema, raw string) []Issue {
	n := len(raw)
	if n >= schema.MinLen && (schema.MaxLen <= 0 || n <= schema.MaxLen) {
		return nil
	}
	return []Issue{{
		Code:        diag.CodeFieldLength,
		Category:    diag.CategoryFieldValidation,
		Description: fmt.Sprintf("field %d has length %d, expected %d..%d", schema.Position, n, schema.MinLen, schema.MaxLen),
		Expected:    fmt.Sprintf("%d..%d", schema.MinLen, schema.MaxLen),
		Actual:      fmt.Sprintf("%d", n),
		Suggestion:  fmt.Sprintf("pad or truncate %q to the declared length range", raw),
	}}
}

func validateAN(schema grammar.FieldSchema, raw string) (Decoded, []Issue) {
	var issues []Issue
	for _, r := range raw {
		if r < 0x20 && r != '\t' {
			issues = append(issues, Issue{
				Code:        diag.CodeFieldCharset,
				Category:    diag.CategoryFieldValidation,
				Description: fmt.Sprintf("field %d contains a disallowed control character", schema.Position),
				Expected:    "printable characters",
				Actual:      fmt.Sprintf("%q", raw),
				Suggestion:  "remove control characters from the value",
			})
			break
		}
	}
	issues = append(issues, checkLength(schema, raw)...)
	return Decoded{Raw: raw, Present: true}, issues
}

func validateN(schema grammar.FieldSchema, raw string) (Decoded, []Issue) {
	if !reInteger.MatchString(raw) {
		return Decoded{Raw: raw, Present: true}, []Issue{{
			Code:        diag.CodeFieldNotNumeric,
			Category:    diag.CategoryFieldValidation,
			Description: fmt.Sprintf("field %d is not a valid integer", schema.Position),
			Expected:    "[+-]?[0-9]+",
			Actual:      raw,
			Suggestion:  "remove non-numeric characters from the value",
		}}
	}
	issues := checkLength(schema, raw)
	return Decoded{Raw: raw, Present: true, Numeric: scaleDecimal(raw, schema.ImpliedDecimals)}, issues
}

func validateR(schema grammar.FieldSchema, raw string) (Decoded, []Issue) {
	if !reReal.MatchString(raw) {
		return Decoded{Raw: raw, Present: true}, []Issue{{
			Code:        diag.CodeFieldNotNumeric,
			Category:    diag.CategoryFieldValidation,
			Description: fmt.Sprintf("field %d is not a valid real number", schema.Position),
			Expected:    "[+-]?[0-9]+(.[0-9]+)?([eE][+-]?[0-9]+)?",
			Actual:      raw,
			Suggestion:  "remove non-numeric characters from the value",
		}}
	}
	issues := checkLength(schema, raw)
	return Decoded{Raw: raw, Present: true, Numeric: raw}, issues
}

func validateID(schema grammar.FieldSchema, raw string, codeSets map[string]grammar.CodeSet) (Decoded, []Issue) {
	issues := checkLength(schema, raw)
	if schema.CodeSet != "" {
		if cs, ok := codeSets[schema.CodeSet]; ok && !cs.Contains(raw) {
			issues = append(issues, Issue{
				Code:        diag.CodeCodeUnknown,
				Category:    diag.CategoryFieldValidation,
				Description: fmt.Sprintf("field %d value %q is not a member of code set %s", schema.Position, raw, schema.CodeSet),
				Expected:    fmt.Sprintf("a member of %s", schema.CodeSet),
				Actual:      raw,
				Suggestion:  "check the code against the field's permitted code list",
			})
		}
	}
	return Decoded{Raw: raw, Present: true}, issues
}

func validateDT(schema grammar.FieldSchema, raw string) (Decoded, []Issue) {
	issues := checkLength(schema, raw)
	if len(raw) == 8 {
		if _, err := time.Parse("20060102", raw); err != nil {
			issues = append(issues, dateInvalid(schema, raw))
		}
	} else if len(raw) == 6 {
		if _, err := time.Parse("060102", raw); err != nil {
			issues = append(issues, dateInvalid(schema, raw))
		}
	} else {
		issues = append(issues, dateInvalid(schema, raw))
	}
	return Decoded{Raw: raw, Present: true}, issues
}

func dateInvalid(schema grammar.FieldSchema, raw string) Issue {
	return Issue{
		Code:        diag.CodeDateInvalid,
		Category:    diag.CategoryFieldValidation,
		Description: fmt.Sprintf("field %d is not a valid CCYYMMDD/YYMMDD date", schema.Position),
		Expected:    "CCYYMMDD or YYMMDD, a valid calendar date",
		Actual:      raw,
		Suggestion:  "correct the date to a real calendar date in CCYYMMDD form",
	}
}

func validateTM(schema grammar.FieldSchema, raw string) (Decoded, []Issue) {
	issues := checkLength(schema, raw)
	if !reTime.MatchString(raw) {
		issues = append(issues, Issue{
			Code:        diag.CodeTimeInvalid,
			Category:    diag.CategoryFieldValidation,
			Description: fmt.Sprintf("field %d is not a valid HHMM/HHMMSS time", schema.Position),
			Expected:    "HHMM or HHMMSS, optionally with fractional seconds",
			Actual:      raw,
			Suggestion:  "correct the time to HHMM or HHMMSS form",
		})
	}
	return Decoded{Raw: raw, Present: true}, issues
}

func validateB(schema grammar.FieldSchema, raw string) (Decoded, []Issue) {
	return Decoded{Raw: raw, Present: true}, checkLength(schema, raw)
}

// scaleDecimal inserts a decimal point k places from the right of an
// integer literal (spec.md §4.4's "N*k*... scaled by 10^-k on decode"),
// returning an exact decimal string. k == 0 returns digits unchanged.
func scaleDecimal(digits string, k int) string {
	if k <= 0 {
		return digits
	}
	sign := ""
	if strings.HasPrefix(digits, "+") || strings.HasPrefix(digits, "-") {
		if digits[0] == '-' {
			sign = "-"
		}
		digits = digits[1:]
	}
	for len(digits) <= k {
		digits = "0" + digits
	}
	intPart := digits[:len(digits)-k]
	fracPart := digits[len(digits)-k:]
	return sign + intPart + "." + fracPart
}
