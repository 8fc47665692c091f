// Package record holds the 33 CWR record type definitions (C3 schemas)
// column-for-column grounded on
// original_source/crates/allegro_cwr/src/records/*.rs — the Rust source
// spec.md was distilled from, since spec.md itself only gives the bit-exact
// column map for the four framing records and defers the rest to "the CWR
// 2.2 specification."
package record

import (
	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/field"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
	"github.com/cdacos/allegro/pkg/cwr/warning"
)

// Record is satisfied by every concrete CWR record type.
type Record interface {
	Tag() string
	Format(v version.Version) (string, error)
}

// prefixFields builds the three FieldDef entries shared by every
// transaction/detail record: record_type(3,0), transaction_sequence_num(8,3),
// record_sequence_num(8,11). Framing records (HDR, GRH, GRT, TRL) have
// their own bespoke layouts per spec.md §6 and do not use this helper.
func prefixFields[T any](getTag, getTxn, getRec func(*T) *string) []schema.FieldDef[T] {
	return []schema.FieldDef[T]{
		stringField(0, 3, "record_type", "Record type", getTag),
		stringField(3, 8, "transaction_sequence_num", "Transaction sequence number", getTxn),
		stringField(11, 8, "record_sequence_num", "Record sequence number", getRec),
	}
}

// stringField builds a mandatory alphanumeric FieldDef bound to a *string
// accessor, the common shape for every CWR text field.
func stringField[T any](start, length int, name, title string, get func(*T) *string) schema.FieldDef[T] {
	return schema.FieldDef[T]{
		Name: name, Title: title, Start: start, Len: length, Presence: schema.Mandatory,
		Format: func(rec *T, v version.Version) (string, error) {
			return field.FormatAlphanumeric(*get(rec), length)
		},
		Parse: func(rec *T, raw string, v version.Version) []warning.Warning {
			s, w := field.Alphanumeric(raw, name, title, length)
			*get(rec) = s
			return w
		},
	}
}

// optStringField is stringField for a conditional/optional text field
// introduced at minVersion (otherwise identical — presence is descriptive
// only, the codec already tolerates blank/short input).
func optStringField[T any](start, length int, name, title string, get func(*T) *string, minVersion version.Version) schema.FieldDef[T] {
	f := stringField(start, length, name, title, get)
	f.Presence = schema.Optional
	f.MinVersion = minVersion
	return f
}

// listCodeField builds a closed-set lookup FieldDef against table.
func listCodeField[T any](start, length int, name, title string, get func(*T) *string, table domain.Table, minVersion version.Version) schema.FieldDef[T] {
	return schema.FieldDef[T]{
		Name: name, Title: title, Start: start, Len: length, MinVersion: minVersion,
		Format: func(rec *T, v version.Version) (string, error) {
			return field.FormatAlphanumeric(*get(rec), length)
		},
		Parse: func(rec *T, raw string, v version.Version) []warning.Warning {
			s, w := field.ListCode(raw, name, title, table)
			*get(rec) = s
			return w
		},
	}
}

// dateField builds a YYYYMMDD FieldDef.
func dateField[T any](start int, name, title string, get func(*T) *string, minVersion version.Version) schema.FieldDef[T] {
	return schema.FieldDef[T]{
		Name: name, Title: title, Start: start, Len: 8, MinVersion: minVersion,
		Format: func(rec *T, v version.Version) (string, error) {
			return field.FormatDate(*get(rec)), nil
		},
		Parse: func(rec *T, raw string, v version.Version) []warning.Warning {
			s, w := field.Date(raw, name, title)
			*get(rec) = s
			return w
		},
	}
}

// timeField builds an HHMMSS FieldDef.
func timeField[T any](start int, name, title string, get func(*T) *string, minVersion version.Version) schema.FieldDef[T] {
	return schema.FieldDef[T]{
		Name: name, Title: title, Start: start, Len: 6, MinVersion: minVersion,
		Format: func(rec *T, v version.Version) (string, error) {
			return field.FormatTime(*get(rec)), nil
		},
		Parse: func(rec *T, raw string, v version.Version) []warning.Warning {
			s, w := field.Time(raw, name, title)
			*get(rec) = s
			return w
		},
	}
}

// flagField builds a Y/N/U FieldDef.
func flagField[T any](start int, name, title string, get func(*T) *string, minVersion version.Version) schema.FieldDef[T] {
	return schema.FieldDef[T]{
		Name: name, Title: title, Start: start, Len: 1, MinVersion: minVersion,
		Format: func(rec *T, v version.Version) (string, error) {
			s := *get(rec)
			if s == "" {
				return "U", nil
			}
			return s, nil
		},
		Parse: func(rec *T, raw string, v version.Version) []warning.Warning {
			s, w := field.Flag(raw, name, title)
			*get(rec) = s
			return w
		},
	}
}

// boolField builds a strict Y/N FieldDef.
func boolField[T any](start int, name, title string, get func(*T) *bool, minVersion version.Version) schema.FieldDef[T] {
	return schema.FieldDef[T]{
		Name: name, Title: title, Start: start, Len: 1, MinVersion: minVersion,
		Format: func(rec *T, v version.Version) (string, error) {
			return field.FormatBoolean(*get(rec)), nil
		},
		Parse: func(rec *T, raw string, v version.Version) []warning.Warning {
			b, w := field.Boolean(raw, name, title)
			*get(rec) = b
			return w
		},
	}
}

// numericField builds a right-justified, zero-padded integer FieldDef.
func numericField[T any](start, length int, name, title string, get func(*T) *int, minVersion version.Version) schema.FieldDef[T] {
	return schema.FieldDef[T]{
		Name: name, Title: title, Start: start, Len: length, MinVersion: minVersion,
		Format: func(rec *T, v version.Version) (string, error) {
			return field.FormatNumeric(*get(rec), length)
		},
		Parse: func(rec *T, raw string, v version.Version) []warning.Warning {
			n, w := field.Numeric(raw, name, title, length)
			*get(rec) = n
			return w
		},
	}
}
