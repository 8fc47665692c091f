package record

import (
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Grt closes a group and carries its transaction/record summary counts.
// Grounded on records/grt.rs; the currency/total-value tail is a CWR
// 2.1+ extension the source models as Option<String>.
type Grt struct {
	RecordType         string
	GroupID             string
	TransactionCount    string
	RecordCount         string
	CurrencyIndicator   string
	TotalMonetaryValue  string
}

func (r Grt) Tag() string { return "GRT" }

func (r Grt) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, GrtSchema, v)
}

func grtLength(v version.Version) int {
	if v.AtLeast(version.V21) {
		return 37
	}
	return 24
}

// GrtSchema is the GRT record schema.
var GrtSchema = schema.RecordSchema[Grt]{
	Tag:    "GRT",
	Length: grtLength,
	Fields: []schema.FieldDef[Grt]{
		stringField(0, 3, "record_type", "Always 'GRT'", func(r *Grt) *string { return &r.RecordType }),
		stringField(3, 5, "group_id", "Group ID", func(r *Grt) *string { return &r.GroupID }),
		stringField(8, 8, "transaction_count", "Transaction count", func(r *Grt) *string { return &r.TransactionCount }),
		stringField(16, 8, "record_count", "Record count", func(r *Grt) *string { return &r.RecordCount }),
		optStringField(24, 3, "currency_indicator", "Currency indicator (conditional)", func(r *Grt) *string { return &r.CurrencyIndicator }, version.V21),
		optStringField(27, 10, "total_monetary_value", "Total monetary value (optional)", func(r *Grt) *string { return &r.TotalMonetaryValue }, version.V21),
	},
}
