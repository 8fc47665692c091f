package record

import (
	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Ter qualifies the territory an AGR agreement's preceding IPA applies to.
// Grounded on records/ter.rs.
type Ter struct {
	RecordType                   string
	TransactionSequenceNum        string
	RecordSequenceNum             string
	InclusionExclusionIndicator   string
	TisNumericCode                string
}

func (r Ter) Tag() string { return "TER" }

func (r Ter) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, TerSchema, v)
}

func terLength(v version.Version) int { return 24 }

// TerSchema is the TER record schema.
var TerSchema = schema.RecordSchema[Ter]{
	Tag:    "TER",
	Length: terLength,
	Fields: append(prefixFields(
		func(r *Ter) *string { return &r.RecordType },
		func(r *Ter) *string { return &r.TransactionSequenceNum },
		func(r *Ter) *string { return &r.RecordSequenceNum },
	),
		listCodeField(19, 1, "inclusion_exclusion_indicator", "Inclusion/Exclusion indicator (1 char)", func(r *Ter) *string { return &r.InclusionExclusionIndicator }, domain.InclusionExclusionIndicators, version.V20),
		listCodeField(20, 4, "tis_numeric_code", "TIS Numeric Code", func(r *Ter) *string { return &r.TisNumericCode }, domain.TisCodes, version.V20),
	),
}
