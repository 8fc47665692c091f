// Package schema is the declarative record schema (C3) and the generic
// parse/format engine (C4). Per the Design Notes' "table-driven
// interpreter" recommendation, this replaces the Rust source's
// derive-style macro (CwrRecord) with an explicit Go generic table: a
// FieldDef closure pair per field, a RecordSchema listing them in column
// order, and two generic functions that walk the table.
package schema

import (
	"fmt"
	"strings"

	"github.com/cdacos/allegro/pkg/cwr/version"
	"github.com/cdacos/allegro/pkg/cwr/warning"
)

// Presence classifies a field as mandatory, conditional, or optional,
// per spec.md §3's field descriptor.
type Presence int

const (
	Mandatory Presence = iota
	Conditional
	Optional
)

// FieldDef describes one column-range field of record type T: its name,
// title, column range, minimum version, and the parse/format closures
// that read from / write to a *T.
type FieldDef[T any] struct {
	Name       string
	Title      string
	Start      int
	Len        int
	Presence   Presence
	MinVersion version.Version
	// Format renders the field's current value from rec into a string of
	// exactly Len bytes; FormatRecord returns an error for any other
	// length.
	Format func(rec *T, v version.Version) (string, error)
	// Parse reads raw (already sliced to Start:Start+Len, or shorter if the
	// line was short) into rec, returning any warnings.
	Parse func(rec *T, raw string, v version.Version) []warning.Warning
}

// RecordSchema is the ordered field list for one record tag, plus the
// active-version-dependent total line length.
type RecordSchema[T any] struct {
	Tag    string
	Fields []FieldDef[T]
	Length func(v version.Version) int
}

// activeFields returns the fields whose MinVersion gates them in at v,
// in column order (schemas are authored in column order already).
func activeFields[T any](sch RecordSchema[T], v version.Version) []FieldDef[T] {
	var out []FieldDef[T]
	for _, f := range sch.Fields {
		if v.AtLeast(f.MinVersion) {
			out = append(out, f)
		}
	}
	return out
}

// ParseRecord parses line into a T per sch at version 2.2 (ParseRecordAt
// takes an explicit version). All warnings from all fields are collected
// in field order. A field that runs past the end of line receives the
// part that is present (empty when it starts past the end); the engine
// adds no warning of its own for this, so only the codecs that check
// width (Alphanumeric, Numeric) report a short field.
func ParseRecord[T any](line string, sch RecordSchema[T]) (T, []warning.Warning) {
	return ParseRecordAt(line, sch, version.V22)
}

// ParseRecordAt is ParseRecord with an explicit active version.
func ParseRecordAt[T any](line string, sch RecordSchema[T], v version.Version) (T, []warning.Warning) {
	var rec T
	var warnings []warning.Warning
	for _, f := range activeFields(sch, v) {
		end := f.Start + f.Len
		var raw string
		if f.Start >= len(line) {
			raw = ""
		} else if end > len(line) {
			raw = line[f.Start:]
		} else {
			raw = line[f.Start:end]
		}
		warnings = append(warnings, f.Parse(&rec, raw, v)...)
	}
	return rec, warnings
}

// FormatRecord formats rec per sch at the given active version, per
// spec.md §4.4: a buffer of the record's total length is filled (spaces
// by default; each field's Format call supplies its own padding
// convention) and each field's rendering is copied at its column.
// OverflowOnFormat is returned, without partial output, if any field's
// rendering exceeds its declared width.
func FormatRecord[T any](rec T, sch RecordSchema[T], v version.Version) (string, error) {
	total := sch.Length(v)
	buf := []byte(strings.Repeat(" ", total))
	for _, f := range activeFields(sch, v) {
		s, err := f.Format(&rec, v)
		if err != nil {
			return "", fmt.Errorf("field %s: %w", f.Name, err)
		}
		if len(s) != f.Len {
			return "", fmt.Errorf("field %s: formatted value %q has length %d, want %d", f.Name, s, len(s), f.Len)
		}
		copy(buf[f.Start:f.Start+f.Len], s)
	}
	return string(buf), nil
}
