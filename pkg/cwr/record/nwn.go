package record

import (
	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Nwn carries a writer's name in non-Roman script. Grounded on records/nwn.rs.
type Nwn struct {
	RecordType             string
	TransactionSequenceNum  string
	RecordSequenceNum       string
	InterestedPartyNum       string
	WriterLastName           string
	WriterFirstName          string
	LanguageCode             string
}

func (r Nwn) Tag() string { return "NWN" }

func (r Nwn) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, NwnSchema, v)
}

func nwnLength(v version.Version) int { return 350 }

// NwnSchema is the NWN record schema.
var NwnSchema = schema.RecordSchema[Nwn]{
	Tag:    "NWN",
	Length: nwnLength,
	Fields: append(prefixFields(
		func(r *Nwn) *string { return &r.RecordType },
		func(r *Nwn) *string { return &r.TransactionSequenceNum },
		func(r *Nwn) *string { return &r.RecordSequenceNum },
	),
		optStringField(19, 9, "interested_party_num", "Interested party number (9 chars, conditional)", func(r *Nwn) *string { return &r.InterestedPartyNum }, version.V20),
		stringField(28, 160, "writer_last_name", "Writer last name", func(r *Nwn) *string { return &r.WriterLastName }),
		optStringField(188, 160, "writer_first_name", "Writer first name (160 chars, optional)", func(r *Nwn) *string { return &r.WriterFirstName }, version.V20),
		listCodeField(348, 2, "language_code", "Language code (2 chars, optional)", func(r *Nwn) *string { return &r.LanguageCode }, domain.LanguageCodes, version.V20),
	),
}
