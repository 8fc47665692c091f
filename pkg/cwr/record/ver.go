package record

import (
	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Ver names the original work a version/arrangement was derived from.
// Same column layout as Ewt with different field names. Grounded on
// records/ver.rs.
type Ver struct {
	RecordType             string
	TransactionSequenceNum  string
	RecordSequenceNum       string
	OriginalWorkTitle        string
	IswcOfOriginalWork       string
	LanguageCode             string
	Writer1LastName          string
	Writer1FirstName         string
	Source                   string
	Writer1IpiNameNum        string
	Writer1IpiBaseNumber     string
	Writer2LastName          string
	Writer2FirstName         string
	Writer2IpiNameNum        string
	Writer2IpiBaseNumber     string
	SubmitterWorkNum         string
}

func (r Ver) Tag() string { return "VER" }

func (r Ver) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, VerSchema, v)
}

func verLength(v version.Version) int { return 364 }

// VerSchema is the VER record schema.
var VerSchema = schema.RecordSchema[Ver]{
	Tag:    "VER",
	Length: verLength,
	Fields: append(prefixFields(
		func(r *Ver) *string { return &r.RecordType },
		func(r *Ver) *string { return &r.TransactionSequenceNum },
		func(r *Ver) *string { return &r.RecordSequenceNum },
	),
		stringField(19, 60, "original_work_title", "Original work title", func(r *Ver) *string { return &r.OriginalWorkTitle }),
		optStringField(79, 11, "iswc_of_original_work", "ISWC of original work (optional)", func(r *Ver) *string { return &r.IswcOfOriginalWork }, version.V20),
		listCodeField(90, 2, "language_code", "Language code (optional)", func(r *Ver) *string { return &r.LanguageCode }, domain.LanguageCodes, version.V20),
		optStringField(92, 45, "writer_1_last_name", "Writer 1 last name (optional)", func(r *Ver) *string { return &r.Writer1LastName }, version.V20),
		optStringField(137, 30, "writer_1_first_name", "Writer 1 first name (optional)", func(r *Ver) *string { return &r.Writer1FirstName }, version.V20),
		optStringField(167, 60, "source", "Source (optional)", func(r *Ver) *string { return &r.Source }, version.V20),
		optStringField(227, 11, "writer_1_ipi_name_num", "Writer 1 IPI name number (optional)", func(r *Ver) *string { return &r.Writer1IpiNameNum }, version.V20),
		optStringField(238, 13, "writer_1_ipi_base_number", "Writer 1 IPI base number (optional)", func(r *Ver) *string { return &r.Writer1IpiBaseNumber }, version.V20),
		optStringField(251, 45, "writer_2_last_name", "Writer 2 last name (optional)", func(r *Ver) *string { return &r.Writer2LastName }, version.V20),
		optStringField(296, 30, "writer_2_first_name", "Writer 2 first name (optional)", func(r *Ver) *string { return &r.Writer2FirstName }, version.V20),
		optStringField(326, 11, "writer_2_ipi_name_num", "Writer 2 IPI name number (optional)", func(r *Ver) *string { return &r.Writer2IpiNameNum }, version.V20),
		optStringField(337, 13, "writer_2_ipi_base_number", "Writer 2 IPI base number (optional)", func(r *Ver) *string { return &r.Writer2IpiBaseNumber }, version.V20),
		optStringField(350, 14, "submitter_work_num", "Submitter work number (optional)", func(r *Ver) *string { return &r.SubmitterWorkNum }, version.V20),
	),
}
