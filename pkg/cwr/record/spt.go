package record

import (
	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Spt is a publisher's territory of control, also used under the OPT tag
// for other publishers. Grounded on records/spt.rs.
type Spt struct {
	RecordType                    string
	TransactionSequenceNum          string
	RecordSequenceNum               string
	InterestedPartyNum               string
	Constant                         string
	PrCollectionShare                string
	MrCollectionShare                string
	SrCollectionShare                string
	InclusionExclusionIndicator      string
	TisNumericCode                   string
	SharesChange                     string
	SequenceNum                      string
}

// SptTags lists the two record types sharing this layout.
var SptTags = []string{"SPT", "OPT"}

func (r Spt) Tag() string { return r.RecordType }

func (r Spt) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, SptSchema, v)
}

func sptLength(v version.Version) int {
	if v.AtLeast(version.V21) {
		return 58
	}
	return 55
}

// SptSchema is the SPT/OPT record schema.
var SptSchema = schema.RecordSchema[Spt]{
	Tag:    "SPT",
	Length: sptLength,
	Fields: append(prefixFields(
		func(r *Spt) *string { return &r.RecordType },
		func(r *Spt) *string { return &r.TransactionSequenceNum },
		func(r *Spt) *string { return &r.RecordSequenceNum },
	),
		stringField(19, 9, "interested_party_num", "Interested party number", func(r *Spt) *string { return &r.InterestedPartyNum }),
		stringField(28, 6, "constant", "Constant - spaces", func(r *Spt) *string { return &r.Constant }),
		optStringField(34, 5, "pr_collection_share", "PR collection share (conditional)", func(r *Spt) *string { return &r.PrCollectionShare }, version.V20),
		optStringField(39, 5, "mr_collection_share", "MR collection share (conditional)", func(r *Spt) *string { return &r.MrCollectionShare }, version.V20),
		optStringField(44, 5, "sr_collection_share", "SR collection share (conditional)", func(r *Spt) *string { return &r.SrCollectionShare }, version.V20),
		listCodeField(49, 1, "inclusion_exclusion_indicator", "Inclusion/Exclusion indicator (1 char)", func(r *Spt) *string { return &r.InclusionExclusionIndicator }, domain.InclusionExclusionIndicators, version.V20),
		listCodeField(50, 4, "tis_numeric_code", "TIS numeric code", func(r *Spt) *string { return &r.TisNumericCode }, domain.TisCodes, version.V20),
		optStringField(54, 1, "shares_change", "Shares change (1 char, optional)", func(r *Spt) *string { return &r.SharesChange }, version.V20),
		optStringField(55, 3, "sequence_num", "Sequence number (v2.1+)", func(r *Spt) *string { return &r.SequenceNum }, version.V21),
	),
}
