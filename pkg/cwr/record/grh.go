package record

import (
	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Grh opens a group of transactions of one type within a transmission.
// Grounded on records/grh.rs.
type Grh struct {
	RecordType                   string
	TransactionType               string
	GroupID                       string
	VersionNumber                 string
	BatchRequest                  string
	SubmissionDistributionType    string
}

func (r Grh) Tag() string { return "GRH" }

func (r Grh) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, GrhSchema, v)
}

func grhLength(v version.Version) int { return 28 }

// GrhSchema is the GRH record schema.
var GrhSchema = schema.RecordSchema[Grh]{
	Tag:    "GRH",
	Length: grhLength,
	Fields: []schema.FieldDef[Grh]{
		stringField(0, 3, "record_type", "Always 'GRH'", func(r *Grh) *string { return &r.RecordType }),
		stringField(3, 3, "transaction_type", "Transaction type code", func(r *Grh) *string { return &r.TransactionType }),
		stringField(6, 5, "group_id", "Group identifier within the transmission", func(r *Grh) *string { return &r.GroupID }),
		stringField(11, 5, "version_number", "Version number for this transaction type", func(r *Grh) *string { return &r.VersionNumber }),
		optStringField(16, 10, "batch_request", "Optional batch request identifier", func(r *Grh) *string { return &r.BatchRequest }, version.V20),
		listCodeField(26, 2, "submission_distribution_type", "Optional submission/distribution type (blank for CWR)", func(r *Grh) *string { return &r.SubmissionDistributionType }, domain.SubmissionDistributionTypes, version.V21),
	},
}
