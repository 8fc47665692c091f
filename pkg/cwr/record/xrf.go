package record

import (
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Xrf cross-references the current work against an identifier in
// another organisation's system. Grounded on records/xrf.rs.
type Xrf struct {
	RecordType             string
	TransactionSequenceNum  string
	RecordSequenceNum       string
	OrganisationCode         string
	Identifier               string
	IdentifierType           string
	Validity                 string
}

func (r Xrf) Tag() string { return "XRF" }

func (r Xrf) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, XrfSchema, v)
}

func xrfLength(v version.Version) int { return 38 }

// XrfSchema is the XRF record schema.
var XrfSchema = schema.RecordSchema[Xrf]{
	Tag:    "XRF",
	Length: xrfLength,
	Fields: append(prefixFields(
		func(r *Xrf) *string { return &r.RecordType },
		func(r *Xrf) *string { return &r.TransactionSequenceNum },
		func(r *Xrf) *string { return &r.RecordSequenceNum },
	),
		stringField(19, 3, "organisation_code", "Organisation code", func(r *Xrf) *string { return &r.OrganisationCode }),
		stringField(22, 14, "identifier", "Identifier", func(r *Xrf) *string { return &r.Identifier }),
		stringField(36, 1, "identifier_type", "Identifier type (1 char)", func(r *Xrf) *string { return &r.IdentifierType }),
		stringField(37, 1, "validity", "Validity (1 char)", func(r *Xrf) *string { return &r.Validity }),
	),
}
