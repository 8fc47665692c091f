package record

import (
	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Net carries a title in non-Roman script, shared by the NET (version
// original title), NCT (component title), and NVT (version title) tags.
// Grounded on records/net.rs.
type Net struct {
	RecordType             string
	TransactionSequenceNum  string
	RecordSequenceNum       string
	Title                    string
	LanguageCode             string
}

// NetTags lists the three record types sharing this layout.
var NetTags = []string{"NET", "NCT", "NVT"}

func (r Net) Tag() string { return r.RecordType }

func (r Net) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, NetSchema, v)
}

func netLength(v version.Version) int { return 661 }

// NetSchema is the NET/NCT/NVT record schema.
var NetSchema = schema.RecordSchema[Net]{
	Tag:    "NET",
	Length: netLength,
	Fields: append(prefixFields(
		func(r *Net) *string { return &r.RecordType },
		func(r *Net) *string { return &r.TransactionSequenceNum },
		func(r *Net) *string { return &r.RecordSequenceNum },
	),
		stringField(19, 640, "title", "Title", func(r *Net) *string { return &r.Title }),
		listCodeField(659, 2, "language_code", "Language code (optional)", func(r *Net) *string { return &r.LanguageCode }, domain.LanguageCodes, version.V20),
	),
}
