package record

import (
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Trl closes a CWR transmission with its group/transaction/record
// summary counts. Grounded on records/trl.rs; its layout does not change
// across versions.
type Trl struct {
	RecordType       string
	GroupCount        string
	TransactionCount  string
	RecordCount       string
}

func (r Trl) Tag() string { return "TRL" }

func (r Trl) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, TrlSchema, v)
}

func trlLength(v version.Version) int { return 24 }

// TrlSchema is the TRL record schema.
var TrlSchema = schema.RecordSchema[Trl]{
	Tag:    "TRL",
	Length: trlLength,
	Fields: []schema.FieldDef[Trl]{
		stringField(0, 3, "record_type", "Always 'TRL'", func(r *Trl) *string { return &r.RecordType }),
		stringField(3, 5, "group_count", "Group count", func(r *Trl) *string { return &r.GroupCount }),
		stringField(8, 8, "transaction_count", "Transaction count", func(r *Trl) *string { return &r.TransactionCount }),
		stringField(16, 8, "record_count", "Record count", func(r *Trl) *string { return &r.RecordCount }),
	},
}
