package record

import (
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Per names a performing artist for the preceding work. Grounded on
// records/per.rs.
type Per struct {
	RecordType                     string
	TransactionSequenceNum          string
	RecordSequenceNum               string
	PerformingArtistLastName         string
	PerformingArtistFirstName        string
	PerformingArtistIpiNameNum       string
	PerformingArtistIpiBaseNumber    string
}

func (r Per) Tag() string { return "PER" }

func (r Per) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, PerSchema, v)
}

func perLength(v version.Version) int { return 118 }

// PerSchema is the PER record schema.
var PerSchema = schema.RecordSchema[Per]{
	Tag:    "PER",
	Length: perLength,
	Fields: append(prefixFields(
		func(r *Per) *string { return &r.RecordType },
		func(r *Per) *string { return &r.TransactionSequenceNum },
		func(r *Per) *string { return &r.RecordSequenceNum },
	),
		stringField(19, 45, "performing_artist_last_name", "Performing artist last name", func(r *Per) *string { return &r.PerformingArtistLastName }),
		optStringField(64, 30, "performing_artist_first_name", "Performing artist first name (optional)", func(r *Per) *string { return &r.PerformingArtistFirstName }, version.V20),
		optStringField(94, 11, "performing_artist_ipi_name_num", "Performing artist IPI name number (optional)", func(r *Per) *string { return &r.PerformingArtistIpiNameNum }, version.V20),
		optStringField(105, 13, "performing_artist_ipi_base_number", "Performing artist IPI base number (optional)", func(r *Per) *string { return &r.PerformingArtistIpiBaseNumber }, version.V20),
	),
}
