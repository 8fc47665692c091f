package record

import (
	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Swt is a writer's territory of control, also used under the OWT tag
// for other writers. Grounded on records/swt.rs.
type Swt struct {
	RecordType                   string
	TransactionSequenceNum        string
	RecordSequenceNum             string
	InterestedPartyNum             string
	PrCollectionShare               string
	MrCollectionShare               string
	SrCollectionShare               string
	InclusionExclusionIndicator     string
	TisNumericCode                  string
	SharesChange                    string
	SequenceNum                     string
}

// SwtTags lists the two record types sharing this layout.
var SwtTags = []string{"SWT", "OWT"}

func (r Swt) Tag() string { return r.RecordType }

func (r Swt) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, SwtSchema, v)
}

func swtLength(v version.Version) int {
	if v.AtLeast(version.V21) {
		return 52
	}
	return 49
}

// SwtSchema is the SWT/OWT record schema.
var SwtSchema = schema.RecordSchema[Swt]{
	Tag:    "SWT",
	Length: swtLength,
	Fields: append(prefixFields(
		func(r *Swt) *string { return &r.RecordType },
		func(r *Swt) *string { return &r.TransactionSequenceNum },
		func(r *Swt) *string { return &r.RecordSequenceNum },
	),
		optStringField(19, 9, "interested_party_num", "Interested party number (9 chars, conditional)", func(r *Swt) *string { return &r.InterestedPartyNum }, version.V20),
		optStringField(28, 5, "pr_collection_share", "PR collection share (5 chars, optional)", func(r *Swt) *string { return &r.PrCollectionShare }, version.V20),
		optStringField(33, 5, "mr_collection_share", "MR collection share (5 chars, optional)", func(r *Swt) *string { return &r.MrCollectionShare }, version.V20),
		optStringField(38, 5, "sr_collection_share", "SR collection share (5 chars, optional)", func(r *Swt) *string { return &r.SrCollectionShare }, version.V20),
		listCodeField(43, 1, "inclusion_exclusion_indicator", "Inclusion/Exclusion indicator (1 char)", func(r *Swt) *string { return &r.InclusionExclusionIndicator }, domain.InclusionExclusionIndicators, version.V20),
		listCodeField(44, 4, "tis_numeric_code", "TIS numeric code", func(r *Swt) *string { return &r.TisNumericCode }, domain.TisCodes, version.V20),
		optStringField(48, 1, "shares_change", "Shares change (1 char, optional)", func(r *Swt) *string { return &r.SharesChange }, version.V20),
		optStringField(49, 3, "sequence_num", "Sequence number (3 chars, v2.1+)", func(r *Swt) *string { return &r.SequenceNum }, version.V21),
	),
}
