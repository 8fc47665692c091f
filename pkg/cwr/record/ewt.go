package record

import (
	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Ewt names the entire work an excerpt was taken from. Grounded on
// records/ewt.rs.
type Ewt struct {
	RecordType             string
	TransactionSequenceNum  string
	RecordSequenceNum       string
	EntireWorkTitle          string
	IswcOfEntireWork         string
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

func (r Ewt) Tag() string { return "EWT" }

func (r Ewt) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, EwtSchema, v)
}

func ewtLength(v version.Version) int { return 364 }

// EwtSchema is the EWT record schema.
var EwtSchema = schema.RecordSchema[Ewt]{
	Tag:    "EWT",
	Length: ewtLength,
	Fields: append(prefixFields(
		func(r *Ewt) *string { return &r.RecordType },
		func(r *Ewt) *string { return &r.TransactionSequenceNum },
		func(r *Ewt) *string { return &r.RecordSequenceNum },
	),
		stringField(19, 60, "entire_work_title", "Entire work title", func(r *Ewt) *string { return &r.EntireWorkTitle }),
		optStringField(79, 11, "iswc_of_entire_work", "ISWC of entire work (optional)", func(r *Ewt) *string { return &r.IswcOfEntireWork }, version.V20),
		listCodeField(90, 2, "language_code", "Language code (optional)", func(r *Ewt) *string { return &r.LanguageCode }, domain.LanguageCodes, version.V20),
		optStringField(92, 45, "writer_1_last_name", "Writer 1 last name (optional)", func(r *Ewt) *string { return &r.Writer1LastName }, version.V20),
		optStringField(137, 30, "writer_1_first_name", "Writer 1 first name (optional)", func(r *Ewt) *string { return &r.Writer1FirstName }, version.V20),
		optStringField(167, 60, "source", "Source (optional)", func(r *Ewt) *string { return &r.Source }, version.V20),
		optStringField(227, 11, "writer_1_ipi_name_num", "Writer 1 IPI name number (optional)", func(r *Ewt) *string { return &r.Writer1IpiNameNum }, version.V20),
		optStringField(238, 13, "writer_1_ipi_base_number", "Writer 1 IPI base number (optional)", func(r *Ewt) *string { return &r.Writer1IpiBaseNumber }, version.V20),
		optStringField(251, 45, "writer_2_last_name", "Writer 2 last name (optional)", func(r *Ewt) *string { return &r.Writer2LastName }, version.V20),
		optStringField(296, 30, "writer_2_first_name", "Writer 2 first name (optional)", func(r *Ewt) *string { return &r.Writer2FirstName }, version.V20),
		optStringField(326, 11, "writer_2_ipi_name_num", "Writer 2 IPI name number (optional)", func(r *Ewt) *string { return &r.Writer2IpiNameNum }, version.V20),
		optStringField(337, 13, "writer_2_ipi_base_number", "Writer 2 IPI base number (optional)", func(r *Ewt) *string { return &r.Writer2IpiBaseNumber }, version.V20),
		optStringField(350, 14, "submitter_work_num", "Submitter work number (optional)", func(r *Ewt) *string { return &r.SubmitterWorkNum }, version.V20),
	),
}
