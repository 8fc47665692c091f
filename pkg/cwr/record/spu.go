package record

import (
	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Spu is the publisher-controlled-by-submitter record, also used under
// the OPU tag for other publishers. Hand-rolled in the source (not
// macro-derived). Grounded on records/spu.rs.
type Spu struct {
	RecordType                           string
	TransactionSequenceNum                string
	RecordSequenceNum                     string
	PublisherSequenceNum                  string
	InterestedPartyNum                    string
	PublisherName                         string
	PublisherUnknownIndicator              string
	PublisherType                          string
	TaxIDNum                               string
	PublisherIpiNameNum                    string
	SubmitterAgreementNumber                string
	PrAffiliationSocietyNum                string
	PrOwnershipShare                       string
	MrSociety                              string
	MrOwnershipShare                       string
	SrSociety                              string
	SrOwnershipShare                       string
	SpecialAgreementsIndicator              string
	FirstRecordingRefusalInd                string
	Filler                                  string
	PublisherIpiBaseNumber                  string
	InternationalStandardAgreementCode      string
	SocietyAssignedAgreementNumber          string
	AgreementType                           string
	UsaLicenseInd                           string
}

// SpuTags lists the two record types sharing this layout.
var SpuTags = []string{"SPU", "OPU"}

func (r Spu) Tag() string { return r.RecordType }

func (r Spu) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, SpuSchema, v)
}

func spuLength(v version.Version) int {
	if v.AtLeast(version.V21) {
		return 183
	}
	return 180
}

// SpuSchema is the SPU/OPU record schema.
var SpuSchema = schema.RecordSchema[Spu]{
	Tag:    "SPU",
	Length: spuLength,
	Fields: append(prefixFields(
		func(r *Spu) *string { return &r.RecordType },
		func(r *Spu) *string { return &r.TransactionSequenceNum },
		func(r *Spu) *string { return &r.RecordSequenceNum },
	),
		stringField(19, 2, "publisher_sequence_num", "Publisher sequence number", func(r *Spu) *string { return &r.PublisherSequenceNum }),
		optStringField(21, 9, "interested_party_num", "Interested party number (9 chars, conditional)", func(r *Spu) *string { return &r.InterestedPartyNum }, version.V20),
		optStringField(30, 45, "publisher_name", "Publisher name (45 chars, conditional)", func(r *Spu) *string { return &r.PublisherName }, version.V20),
		optStringField(75, 1, "publisher_unknown_indicator", "Publisher unknown indicator (1 char, conditional)", func(r *Spu) *string { return &r.PublisherUnknownIndicator }, version.V20),
		listCodeField(76, 2, "publisher_type", "Publisher type (2 chars, conditional)", func(r *Spu) *string { return &r.PublisherType }, domain.PublisherTypes, version.V20),
		optStringField(78, 9, "tax_id_num", "Tax ID number (9 chars, optional)", func(r *Spu) *string { return &r.TaxIDNum }, version.V20),
		optStringField(87, 11, "publisher_ipi_name_num", "Publisher IPI name number (11 chars, conditional)", func(r *Spu) *string { return &r.PublisherIpiNameNum }, version.V20),
		optStringField(98, 14, "submitter_agreement_number", "Submitter agreement number (14 chars, optional)", func(r *Spu) *string { return &r.SubmitterAgreementNumber }, version.V20),
		optStringField(112, 3, "pr_affiliation_society_num", "PR affiliation society number (3 chars, conditional)", func(r *Spu) *string { return &r.PrAffiliationSocietyNum }, version.V20),
		optStringField(115, 5, "pr_ownership_share", "PR ownership share (5 chars, conditional)", func(r *Spu) *string { return &r.PrOwnershipShare }, version.V20),
		optStringField(120, 3, "mr_society", "MR society (3 chars, conditional)", func(r *Spu) *string { return &r.MrSociety }, version.V20),
		optStringField(123, 5, "mr_ownership_share", "MR ownership share (5 chars, conditional)", func(r *Spu) *string { return &r.MrOwnershipShare }, version.V20),
		optStringField(128, 3, "sr_society", "SR society (3 chars, conditional)", func(r *Spu) *string { return &r.SrSociety }, version.V20),
		optStringField(131, 5, "sr_ownership_share", "SR ownership share (5 chars, conditional)", func(r *Spu) *string { return &r.SrOwnershipShare }, version.V20),
		optStringField(136, 1, "special_agreements_indicator", "Special agreements indicator (1 char, optional)", func(r *Spu) *string { return &r.SpecialAgreementsIndicator }, version.V20),
		optStringField(137, 1, "first_recording_refusal_ind", "First recording refusal indicator (1 char, optional)", func(r *Spu) *string { return &r.FirstRecordingRefusalInd }, version.V20),
		optStringField(138, 1, "filler", "Filler (1 char, optional)", func(r *Spu) *string { return &r.Filler }, version.V20),
		optStringField(139, 13, "publisher_ipi_base_number", "Publisher IPI base number (13 chars, optional)", func(r *Spu) *string { return &r.PublisherIpiBaseNumber }, version.V20),
		optStringField(152, 14, "international_standard_agreement_code", "International standard agreement code (14 chars, optional)", func(r *Spu) *string { return &r.InternationalStandardAgreementCode }, version.V20),
		optStringField(166, 14, "society_assigned_agreement_number", "Society-assigned agreement number (14 chars, optional)", func(r *Spu) *string { return &r.SocietyAssignedAgreementNumber }, version.V20),
		listCodeField(180, 2, "agreement_type", "Agreement type (2 chars, optional, v2.1+)", func(r *Spu) *string { return &r.AgreementType }, domain.AgreementTypes, version.V21),
		listCodeField(182, 1, "usa_license_ind", "USA license indicator (1 char, optional, v2.1+)", func(r *Spu) *string { return &r.UsaLicenseInd }, domain.UsaLicenseIndicators, version.V21),
	),
}
