// Package domain holds the closed-set lookup tables and bounded numeric
// newtypes for CWR list-code fields. Grounded on
// original_source/crates/allegro_cwr/src/lookups/*.rs, which represents
// each lookup as a map from code to description rather than a Rust enum;
// the Go realization keeps the same shape since a fixed-width field's
// codec only needs membership and a default, not a distinct type per code.
package domain

import "strings"

// Table is a closed set of codes for one CWR lookup field.
type Table struct {
	Name    string
	Codes   map[string]string
	Default string
}

// Valid reports whether code (already trimmed) is a member of the table.
func (t Table) Valid(code string) bool {
	_, ok := t.Codes[code]
	return ok
}

// Describe returns the human-readable description for code, or "" if unknown.
func (t Table) Describe(code string) string {
	return t.Codes[code]
}

// Parse resolves raw (a fixed-width slice) against the table: trims it,
// and returns the trimmed code if valid, else the table's default.
// The caller (pkg/cwr/field.ListCode) is responsible for emitting the
// associated Warning on miss.
func (t Table) Parse(raw string) (code string, ok bool) {
	trimmed := strings.TrimSpace(raw)
	if t.Valid(trimmed) {
		return trimmed, true
	}
	return t.Default, false
}

// codes builds a map literal concisely from an alternating
// code, description, code, description... list. Used by table
// constructors below to keep large lookup tables visually compact.
func codes(pairs ...string) map[string]string {
	m := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		m[pairs[i]] = pairs[i+1]
	}
	return m
}
