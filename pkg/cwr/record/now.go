package record

import (
	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Now carries a writer's name in non-Roman script along with their
// position among the work's writers. Grounded on records/now.rs.
type Now struct {
	RecordType             string
	TransactionSequenceNum  string
	RecordSequenceNum       string
	WriterName               string
	WriterFirstName          string
	LanguageCode             string
	WriterPosition           string
}

func (r Now) Tag() string { return "NOW" }

func (r Now) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, NowSchema, v)
}

func nowLength(v version.Version) int { return 342 }

// NowSchema is the NOW record schema.
var NowSchema = schema.RecordSchema[Now]{
	Tag:    "NOW",
	Length: nowLength,
	Fields: append(prefixFields(
		func(r *Now) *string { return &r.RecordType },
		func(r *Now) *string { return &r.TransactionSequenceNum },
		func(r *Now) *string { return &r.RecordSequenceNum },
	),
		stringField(19, 160, "writer_name", "Writer name", func(r *Now) *string { return &r.WriterName }),
		stringField(179, 160, "writer_first_name", "Writer first name", func(r *Now) *string { return &r.WriterFirstName }),
		listCodeField(339, 2, "language_code", "Language code (optional)", func(r *Now) *string { return &r.LanguageCode }, domain.LanguageCodes, version.V20),
		optStringField(341, 1, "writer_position", "Writer position (1 char, optional)", func(r *Now) *string { return &r.WriterPosition }, version.V20),
	),
}
