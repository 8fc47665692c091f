package record

import (
	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Npa carries a publisher's name in non-Roman script. Grounded on
// records/npa.rs.
type Npa struct {
	RecordType                       string
	TransactionSequenceNum            string
	RecordSequenceNum                 string
	InterestedPartyNum                string
	InterestedPartyName               string
	InterestedPartyWriterFirstName    string
	LanguageCode                      string
}

func (r Npa) Tag() string { return "NPA" }

func (r Npa) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, NpaSchema, v)
}

func npaLength(v version.Version) int { return 350 }

// NpaSchema is the NPA record schema.
var NpaSchema = schema.RecordSchema[Npa]{
	Tag:    "NPA",
	Length: npaLength,
	Fields: append(prefixFields(
		func(r *Npa) *string { return &r.RecordType },
		func(r *Npa) *string { return &r.TransactionSequenceNum },
		func(r *Npa) *string { return &r.RecordSequenceNum },
	),
		optStringField(19, 9, "interested_party_num", "Interested party number (conditional)", func(r *Npa) *string { return &r.InterestedPartyNum }, version.V20),
		stringField(28, 160, "interested_party_name", "Interested party name", func(r *Npa) *string { return &r.InterestedPartyName }),
		stringField(188, 160, "interested_party_writer_first_name", "Interested party writer first name", func(r *Npa) *string { return &r.InterestedPartyWriterFirstName }),
		listCodeField(348, 2, "language_code", "Language code (optional)", func(r *Npa) *string { return &r.LanguageCode }, domain.LanguageCodes, version.V20),
	),
}
