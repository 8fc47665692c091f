package record

import (
	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Npn carries a publisher's name in non-Roman script for a specific
// publisher sequence (distinct from NPA, which applies to an IPA's
// interested party generally). Grounded on records/npn.rs.
type Npn struct {
	RecordType             string
	TransactionSequenceNum  string
	RecordSequenceNum       string
	PublisherSequenceNum     string
	InterestedPartyNum       string
	PublisherName            string
	LanguageCode             string
}

func (r Npn) Tag() string { return "NPN" }

func (r Npn) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, NpnSchema, v)
}

func npnLength(v version.Version) int { return 512 }

// NpnSchema is the NPN record schema.
var NpnSchema = schema.RecordSchema[Npn]{
	Tag:    "NPN",
	Length: npnLength,
	Fields: append(prefixFields(
		func(r *Npn) *string { return &r.RecordType },
		func(r *Npn) *string { return &r.TransactionSequenceNum },
		func(r *Npn) *string { return &r.RecordSequenceNum },
	),
		stringField(19, 2, "publisher_sequence_num", "Publisher sequence number", func(r *Npn) *string { return &r.PublisherSequenceNum }),
		stringField(21, 9, "interested_party_num", "Interested party number", func(r *Npn) *string { return &r.InterestedPartyNum }),
		stringField(30, 480, "publisher_name", "Publisher name", func(r *Npn) *string { return &r.PublisherName }),
		listCodeField(510, 2, "language_code", "Language code (optional)", func(r *Npn) *string { return &r.LanguageCode }, domain.LanguageCodes, version.V20),
	),
}
