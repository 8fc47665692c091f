// Package field implements the fixed-width codecs (C1): parsing a raw
// column slice into a typed value, and formatting a typed value back to a
// column slice of the declared width. Every codec tolerates a slice
// shorter than the declared length and never fails outright. Alphanumeric
// and Numeric warn when the slice is shorter than declared; the other
// codecs judge only the content they receive, so a blank Date, Time or
// ListCode slice yields the default without a warning. Content a codec
// cannot parse warns and yields the type's default.
package field

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/warning"
)

// shortField emits the ShortField warning for a slice narrower than
// declared, per spec.md §4.4/§7.
func shortField(fieldName, fieldTitle, raw string, wantLen int) warning.Warning {
	return warning.New(fieldName, fieldTitle, raw, warning.Warn,
		fmt.Sprintf("field shorter than declared length %d", wantLen))
}

// Alphanumeric parses a left-justified, space-padded text field. It
// trims trailing spaces and keeps every other byte, including leading
// and internal spaces (see DESIGN.md Open Question Decision 1); the
// round-trip path re-pads on Format.
func Alphanumeric(raw, fieldName, fieldTitle string, wantLen int) (string, []warning.Warning) {
	var warnings []warning.Warning
	if len(raw) < wantLen {
		warnings = append(warnings, shortField(fieldName, fieldTitle, raw, wantLen))
	}
	return strings.TrimRight(raw, " "), warnings
}

// FormatAlphanumeric left-justifies value and space-pads it to width. A
// value longer than width is returned as an error; nothing is truncated.
func FormatAlphanumeric(value string, width int) (string, error) {
	if len(value) > width {
		return "", fmt.Errorf("value %q exceeds column width %d", value, width)
	}
	return value + strings.Repeat(" ", width-len(value)), nil
}

// Numeric parses a right-justified, zero-padded unsigned decimal field.
func Numeric(raw, fieldName, fieldTitle string, wantLen int) (int, []warning.Warning) {
	var warnings []warning.Warning
	if len(raw) < wantLen {
		warnings = append(warnings, shortField(fieldName, fieldTitle, raw, wantLen))
	}
	trimmed := strings.TrimLeft(strings.TrimSpace(raw), "0")
	if trimmed == "" {
		return 0, warnings
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		warnings = append(warnings, warning.New(fieldName, fieldTitle, raw, warning.Warn,
			fmt.Sprintf("non-numeric content %q", raw)))
		return 0, warnings
	}
	return n, warnings
}

// FormatNumeric right-justifies and zero-pads n to width.
func FormatNumeric(n int, width int) (string, error) {
	s := strconv.Itoa(n)
	if len(s) > width {
		return "", fmt.Errorf("value %d exceeds column width %d", n, width)
	}
	return strings.Repeat("0", width-len(s)) + s, nil
}

const zeroDate = "00000000"

// Date parses an 8-char YYYYMMDD field, treating all-zeros as "absent".
// A malformed non-zero value warns and yields the zero-date sentinel.
func Date(raw, fieldName, fieldTitle string) (string, []warning.Warning) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == zeroDate {
		return zeroDate, nil
	}
	if len(trimmed) != 8 {
		return zeroDate, []warning.Warning{warning.New(fieldName, fieldTitle, raw, warning.Warn,
			fmt.Sprintf("malformed date %q", trimmed))}
	}
	y, yerr := strconv.Atoi(trimmed[0:4])
	m, merr := strconv.Atoi(trimmed[4:6])
	d, derr := strconv.Atoi(trimmed[6:8])
	if yerr != nil || merr != nil || derr != nil || m < 1 || m > 12 || d < 1 || d > 31 {
		return zeroDate, []warning.Warning{warning.New(fieldName, fieldTitle, raw, warning.Warn,
			fmt.Sprintf("malformed date %q", trimmed))}
	}
	_ = y
	return trimmed, nil
}

// FormatDate renders an already-validated YYYYMMDD value, or the zero-date
// sentinel for an empty value.
func FormatDate(value string) string {
	if value == "" {
		return zeroDate
	}
	return value
}

const zeroTime = "000000"

// Time parses a 6-char HHMMSS field, validating HH<24, MM<60, SS<60.
func Time(raw, fieldName, fieldTitle string) (string, []warning.Warning) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return zeroTime, nil
	}
	if len(trimmed) != 6 {
		return zeroTime, []warning.Warning{warning.New(fieldName, fieldTitle, raw, warning.Warn,
			fmt.Sprintf("malformed time %q", trimmed))}
	}
	hh, herr := strconv.Atoi(trimmed[0:2])
	mm, merr := strconv.Atoi(trimmed[2:4])
	ss, serr := strconv.Atoi(trimmed[4:6])
	if herr != nil || merr != nil || serr != nil || hh >= 24 || mm >= 60 || ss >= 60 {
		return zeroTime, []warning.Warning{warning.New(fieldName, fieldTitle, raw, warning.Warn,
			fmt.Sprintf("malformed time %q", trimmed))}
	}
	return trimmed, nil
}

// FormatTime renders an already-validated HHMMSS value.
func FormatTime(value string) string {
	if value == "" {
		return zeroTime
	}
	return value
}

// Boolean parses a strict "Y"/"N" flag.
func Boolean(raw, fieldName, fieldTitle string) (bool, []warning.Warning) {
	switch strings.TrimSpace(raw) {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	default:
		return false, []warning.Warning{warning.New(fieldName, fieldTitle, raw, warning.Warn,
			fmt.Sprintf("expected Y/N, got %q", raw))}
	}
}

// FormatBoolean renders true/false as "Y"/"N".
func FormatBoolean(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}

// Flag parses a tri-state "Y"/"N"/"U" field.
func Flag(raw, fieldName, fieldTitle string) (string, []warning.Warning) {
	switch strings.TrimSpace(raw) {
	case "Y", "N", "U":
		return strings.TrimSpace(raw), nil
	default:
		return "U", []warning.Warning{warning.New(fieldName, fieldTitle, raw, warning.Warn,
			fmt.Sprintf("expected Y/N/U, got %q", raw))}
	}
}

// ListCode parses raw against a closed-set domain.Table, warning and
// defaulting on a miss.
func ListCode(raw, fieldName, fieldTitle string, table domain.Table) (string, []warning.Warning) {
	code, ok := table.Parse(raw)
	if ok {
		return code, nil
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		// Blank optional list-code fields default silently.
		return code, nil
	}
	return code, []warning.Warning{warning.New(fieldName, fieldTitle, raw, warning.Warn,
		fmt.Sprintf("unrecognized %s code %q", table.Name, trimmed))}
}
