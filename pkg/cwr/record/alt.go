package record

import (
	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Alt is an alternate title for a work. Grounded on records/alt.rs.
type Alt struct {
	RecordType              string
	TransactionSequenceNum   string
	RecordSequenceNum        string
	AlternateTitle           string
	TitleType                string
	LanguageCode             string
}

func (r Alt) Tag() string { return "ALT" }

func (r Alt) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, AltSchema, v)
}

func altLength(v version.Version) int { return 83 }

// AltSchema is the ALT record schema.
var AltSchema = schema.RecordSchema[Alt]{
	Tag:    "ALT",
	Length: altLength,
	Fields: append(prefixFields(
		func(r *Alt) *string { return &r.RecordType },
		func(r *Alt) *string { return &r.TransactionSequenceNum },
		func(r *Alt) *string { return &r.RecordSequenceNum },
	),
		stringField(19, 60, "alternate_title", "Alternate title", func(r *Alt) *string { return &r.AlternateTitle }),
		listCodeField(79, 2, "title_type", "Title type", func(r *Alt) *string { return &r.TitleType }, domain.TitleTypes, version.V20),
		listCodeField(81, 2, "language_code", "Language code (conditional)", func(r *Alt) *string { return &r.LanguageCode }, domain.LanguageCodes, version.V20),
	),
}
