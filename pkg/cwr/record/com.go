package record

import (
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Com is a component of a composite work. Hand-rolled in the source via
// its own impl_cwr_parsing! macro rather than the CwrRecord derive.
// Grounded on records/com.rs.
type Com struct {
	RecordType                string
	TransactionSequenceNum      string
	RecordSequenceNum           string
	Title                       string
	IswcOfComponent              string
	SubmitterWorkNum             string
	Duration                     string
	Writer1LastName              string
	Writer1FirstName             string
	Writer1IpiNameNum            string
	Writer2LastName              string
	Writer2FirstName             string
	Writer2IpiNameNum            string
	Writer1IpiBaseNumber         string
	Writer2IpiBaseNumber         string
}

func (r Com) Tag() string { return "COM" }

func (r Com) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, ComSchema, v)
}

func comLength(v version.Version) int { return 308 }

// ComSchema is the COM record schema.
var ComSchema = schema.RecordSchema[Com]{
	Tag:    "COM",
	Length: comLength,
	Fields: append(prefixFields(
		func(r *Com) *string { return &r.RecordType },
		func(r *Com) *string { return &r.TransactionSequenceNum },
		func(r *Com) *string { return &r.RecordSequenceNum },
	),
		stringField(19, 60, "title", "Title", func(r *Com) *string { return &r.Title }),
		optStringField(79, 11, "iswc_of_component", "ISWC of component (11 chars, optional)", func(r *Com) *string { return &r.IswcOfComponent }, version.V20),
		optStringField(90, 14, "submitter_work_num", "Submitter work number (14 chars, optional)", func(r *Com) *string { return &r.SubmitterWorkNum }, version.V20),
		optStringField(104, 6, "duration", "Duration HHMMSS (6 chars, optional)", func(r *Com) *string { return &r.Duration }, version.V20),
		stringField(110, 45, "writer_1_last_name", "Writer 1 last name", func(r *Com) *string { return &r.Writer1LastName }),
		optStringField(155, 30, "writer_1_first_name", "Writer 1 first name (30 chars, optional)", func(r *Com) *string { return &r.Writer1FirstName }, version.V20),
		optStringField(185, 11, "writer_1_ipi_name_num", "Writer 1 IPI name number (11 chars, optional)", func(r *Com) *string { return &r.Writer1IpiNameNum }, version.V20),
		optStringField(196, 45, "writer_2_last_name", "Writer 2 last name (45 chars, optional)", func(r *Com) *string { return &r.Writer2LastName }, version.V20),
		optStringField(241, 30, "writer_2_first_name", "Writer 2 first name (30 chars, optional)", func(r *Com) *string { return &r.Writer2FirstName }, version.V20),
		optStringField(271, 11, "writer_2_ipi_name_num", "Writer 2 IPI name number (11 chars, optional)", func(r *Com) *string { return &r.Writer2IpiNameNum }, version.V20),
		optStringField(282, 13, "writer_1_ipi_base_number", "Writer 1 IPI base number (13 chars, optional)", func(r *Com) *string { return &r.Writer1IpiBaseNumber }, version.V20),
		optStringField(295, 13, "writer_2_ipi_base_number", "Writer 2 IPI base number (13 chars, optional)", func(r *Com) *string { return &r.Writer2IpiBaseNumber }, version.V20),
	),
}
