package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cdacos/allegro/pkg/cwr/warning"
)

// WorksCount is the AGR number_of_works field: a 5-digit unsigned count
// in the range 1..99999. Grounded on domain_types/works_count.rs.
type WorksCount uint32

// ParseWorksCount parses a 5-digit works count, warning and defaulting to
// zero on a malformed or out-of-range value.
func ParseWorksCount(raw, fieldName, fieldTitle string) (WorksCount, []warning.Warning) {
	trimmed := strings.TrimSpace(raw)
	n, err := strconv.ParseUint(trimmed, 10, 32)
	if err != nil {
		return 0, []warning.Warning{warning.New(fieldName, fieldTitle, raw, warning.Warn,
			fmt.Sprintf("invalid works count format: %q", trimmed))}
	}
	if n < 1 || n > 99999 {
		return 0, []warning.Warning{warning.New(fieldName, fieldTitle, raw, warning.Warn,
			fmt.Sprintf("works count %d outside range 1..99999", n))}
	}
	return WorksCount(n), nil
}

// Format renders the works count zero-padded to 5 digits.
func (w WorksCount) Format() string {
	return fmt.Sprintf("%05d", uint32(w))
}

// Share is a 0..10000 fixed-point percentage (two implied decimals, so
// 10000 = 100.00%). Grounded on domain_types/ownership_share.rs.
type Share uint16

const maxShare = 10000

// ParseShare parses a 5-digit ownership/collection share, warning and
// defaulting to zero on an out-of-range or malformed value.
func ParseShare(raw, fieldName, fieldTitle string) (Share, []warning.Warning) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(trimmed, 10, 16)
	if err != nil {
		return 0, []warning.Warning{warning.New(fieldName, fieldTitle, raw, warning.Warn,
			fmt.Sprintf("invalid ownership share format: %q", trimmed))}
	}
	if n > maxShare {
		return 0, []warning.Warning{warning.New(fieldName, fieldTitle, raw, warning.Warn,
			fmt.Sprintf("ownership share %d exceeds maximum %d (100.00%%)", n, maxShare))}
	}
	return Share(n), nil
}

// Format renders the share zero-padded to 5 digits.
func (s Share) Format() string {
	return fmt.Sprintf("%05d", uint16(s))
}

// Percentage returns the share as a float, e.g. Share(5000).Percentage() == 50.0.
func (s Share) Percentage() float64 {
	return float64(s) / 100.0
}
