package record

import (
	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Npr carries a performing artist's name in non-Roman script. Grounded
// on records/npr.rs.
type Npr struct {
	RecordType                       string
	TransactionSequenceNum            string
	RecordSequenceNum                 string
	PerformingArtistName               string
	PerformingArtistFirstName          string
	PerformingArtistIpiNameNum         string
	PerformingArtistIpiBaseNumber      string
	LanguageCode                       string
	PerformanceLanguage                string
	PerformanceDialect                 string
}

func (r Npr) Tag() string { return "NPR" }

func (r Npr) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, NprSchema, v)
}

func nprLength(v version.Version) int {
	if v.AtLeast(version.V21) {
		return 370
	}
	return 365
}

// NprSchema is the NPR record schema.
var NprSchema = schema.RecordSchema[Npr]{
	Tag:    "NPR",
	Length: nprLength,
	Fields: append(prefixFields(
		func(r *Npr) *string { return &r.RecordType },
		func(r *Npr) *string { return &r.TransactionSequenceNum },
		func(r *Npr) *string { return &r.RecordSequenceNum },
	),
		optStringField(19, 160, "performing_artist_name", "Performing artist name (conditional)", func(r *Npr) *string { return &r.PerformingArtistName }, version.V20),
		optStringField(179, 160, "performing_artist_first_name", "Performing artist first name (optional)", func(r *Npr) *string { return &r.PerformingArtistFirstName }, version.V20),
		optStringField(339, 11, "performing_artist_ipi_name_num", "Performing artist IPI name number (optional)", func(r *Npr) *string { return &r.PerformingArtistIpiNameNum }, version.V20),
		optStringField(350, 13, "performing_artist_ipi_base_number", "Performing artist IPI base number (optional)", func(r *Npr) *string { return &r.PerformingArtistIpiBaseNumber }, version.V20),
		listCodeField(363, 2, "language_code", "Language code (optional)", func(r *Npr) *string { return &r.LanguageCode }, domain.LanguageCodes, version.V20),
		listCodeField(365, 2, "performance_language", "Performance language (conditional, v2.1+)", func(r *Npr) *string { return &r.PerformanceLanguage }, domain.LanguageCodes, version.V21),
		optStringField(367, 3, "performance_dialect", "Performance dialect (conditional, v2.1+)", func(r *Npr) *string { return &r.PerformanceDialect }, version.V21),
	),
}
