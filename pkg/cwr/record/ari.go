package record

import (
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Ari is a free-text note from a society about the preceding work.
// Grounded on records/ari.rs.
type Ari struct {
	RecordType             string
	TransactionSequenceNum  string
	RecordSequenceNum       string
	SocietyNum               string
	WorkNum                  string
	TypeOfRight              string
	SubjectCode              string
	Note                     string
}

func (r Ari) Tag() string { return "ARI" }

func (r Ari) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, AriSchema, v)
}

func ariLength(v version.Version) int { return 201 }

// AriSchema is the ARI record schema.
var AriSchema = schema.RecordSchema[Ari]{
	Tag:    "ARI",
	Length: ariLength,
	Fields: append(prefixFields(
		func(r *Ari) *string { return &r.RecordType },
		func(r *Ari) *string { return &r.TransactionSequenceNum },
		func(r *Ari) *string { return &r.RecordSequenceNum },
	),
		stringField(19, 3, "society_num", "Society number", func(r *Ari) *string { return &r.SocietyNum }),
		optStringField(22, 14, "work_num", "Work number (conditional)", func(r *Ari) *string { return &r.WorkNum }, version.V20),
		stringField(36, 3, "type_of_right", "Type of right", func(r *Ari) *string { return &r.TypeOfRight }),
		optStringField(39, 2, "subject_code", "Subject code (conditional)", func(r *Ari) *string { return &r.SubjectCode }, version.V20),
		optStringField(41, 160, "note", "Note (conditional)", func(r *Ari) *string { return &r.Note }, version.V20),
	),
}
