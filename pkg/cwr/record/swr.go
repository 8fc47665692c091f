package record

import (
	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Swr is the writer-controlled-by-submitter record, also used under the
// OWR tag for other writers. Hand-rolled in the source (not
// macro-derived). Grounded on records/swr.rs.
type Swr struct {
	RecordType                    string
	TransactionSequenceNum         string
	RecordSequenceNum              string
	InterestedPartyNum              string
	WriterLastName                  string
	WriterFirstName                  string
	WriterUnknownIndicator            string
	WriterDesignationCode             string
	TaxIDNum                           string
	WriterIpiNameNum                   string
	PrAffiliationSocietyNum             string
	PrOwnershipShare                    string
	MrSociety                           string
	MrOwnershipShare                    string
	SrSociety                           string
	SrOwnershipShare                    string
	ReversionaryIndicator               string
	FirstRecordingRefusalInd            string
	WorkForHireIndicator                string
	Filler                              string
	WriterIpiBaseNumber                 string
	PersonalNumber                      string
	UsaLicenseInd                       string
}

// SwrTags lists the two record types sharing this layout.
var SwrTags = []string{"SWR", "OWR"}

func (r Swr) Tag() string { return r.RecordType }

func (r Swr) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, SwrSchema, v)
}

func swrLength(v version.Version) int {
	if v.AtLeast(version.V21) {
		return 180
	}
	return 179
}

// SwrSchema is the SWR/OWR record schema.
var SwrSchema = schema.RecordSchema[Swr]{
	Tag:    "SWR",
	Length: swrLength,
	Fields: append(prefixFields(
		func(r *Swr) *string { return &r.RecordType },
		func(r *Swr) *string { return &r.TransactionSequenceNum },
		func(r *Swr) *string { return &r.RecordSequenceNum },
	),
		optStringField(19, 9, "interested_party_num", "Interested party number (9 chars, conditional)", func(r *Swr) *string { return &r.InterestedPartyNum }, version.V20),
		optStringField(28, 45, "writer_last_name", "Writer last name (45 chars, conditional)", func(r *Swr) *string { return &r.WriterLastName }, version.V20),
		optStringField(73, 30, "writer_first_name", "Writer first name (30 chars, optional)", func(r *Swr) *string { return &r.WriterFirstName }, version.V20),
		optStringField(103, 1, "writer_unknown_indicator", "Writer unknown indicator (1 char, conditional)", func(r *Swr) *string { return &r.WriterUnknownIndicator }, version.V20),
		listCodeField(104, 2, "writer_designation_code", "Writer designation code (2 chars, conditional)", func(r *Swr) *string { return &r.WriterDesignationCode }, domain.WriterDesignationCodes, version.V20),
		optStringField(106, 9, "tax_id_num", "Tax ID number (9 chars, optional)", func(r *Swr) *string { return &r.TaxIDNum }, version.V20),
		optStringField(115, 11, "writer_ipi_name_num", "Writer IPI name number (11 chars, optional)", func(r *Swr) *string { return &r.WriterIpiNameNum }, version.V20),
		optStringField(126, 3, "pr_affiliation_society_num", "PR affiliation society number (3 chars, optional)", func(r *Swr) *string { return &r.PrAffiliationSocietyNum }, version.V20),
		optStringField(129, 5, "pr_ownership_share", "PR ownership share (5 chars, optional)", func(r *Swr) *string { return &r.PrOwnershipShare }, version.V20),
		optStringField(134, 3, "mr_society", "MR society (3 chars, optional)", func(r *Swr) *string { return &r.MrSociety }, version.V20),
		optStringField(137, 5, "mr_ownership_share", "MR ownership share (5 chars, optional)", func(r *Swr) *string { return &r.MrOwnershipShare }, version.V20),
		optStringField(142, 3, "sr_society", "SR society (3 chars, optional)", func(r *Swr) *string { return &r.SrSociety }, version.V20),
		optStringField(145, 5, "sr_ownership_share", "SR ownership share (5 chars, optional)", func(r *Swr) *string { return &r.SrOwnershipShare }, version.V20),
		optStringField(150, 1, "reversionary_indicator", "Reversionary indicator (1 char, optional)", func(r *Swr) *string { return &r.ReversionaryIndicator }, version.V20),
		optStringField(151, 1, "first_recording_refusal_ind", "First recording refusal indicator (1 char, optional)", func(r *Swr) *string { return &r.FirstRecordingRefusalInd }, version.V20),
		optStringField(152, 1, "work_for_hire_indicator", "Work for hire indicator (1 char, optional)", func(r *Swr) *string { return &r.WorkForHireIndicator }, version.V20),
		optStringField(153, 1, "filler", "Filler (1 char, optional)", func(r *Swr) *string { return &r.Filler }, version.V20),
		optStringField(154, 13, "writer_ipi_base_number", "Writer IPI base number (13 chars, optional)", func(r *Swr) *string { return &r.WriterIpiBaseNumber }, version.V20),
		optStringField(167, 12, "personal_number", "Personal number (12 chars, optional)", func(r *Swr) *string { return &r.PersonalNumber }, version.V20),
		listCodeField(179, 1, "usa_license_ind", "USA license indicator (1 char, optional, v2.1+)", func(r *Swr) *string { return &r.UsaLicenseInd }, domain.UsaLicenseIndicators, version.V21),
	),
}
