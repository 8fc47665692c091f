package record

import (
	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Ipa is an interested party of an AGR agreement. Hand-rolled (not
// macro-derived) in the source. Grounded on records/ipa.rs.
type Ipa struct {
	RecordType                        string
	TransactionSequenceNum             string
	RecordSequenceNum                  string
	AgreementRoleCode                  string
	InterestedPartyIpiNameNum          string
	IpiBaseNumber                      string
	InterestedPartyNum                 string
	InterestedPartyLastName            string
	InterestedPartyWriterFirstName     string
	PrAffiliationSociety               string
	PrShare                            string
	MrAffiliationSociety               string
	MrShare                            string
	SrAffiliationSociety               string
	SrShare                            string
}

func (r Ipa) Tag() string { return "IPA" }

func (r Ipa) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, IpaSchema, v)
}

func ipaLength(v version.Version) int { return 153 }

// IpaSchema is the IPA record schema.
var IpaSchema = schema.RecordSchema[Ipa]{
	Tag:    "IPA",
	Length: ipaLength,
	Fields: append(prefixFields(
		func(r *Ipa) *string { return &r.RecordType },
		func(r *Ipa) *string { return &r.TransactionSequenceNum },
		func(r *Ipa) *string { return &r.RecordSequenceNum },
	),
		listCodeField(19, 2, "agreement_role_code", "Agreement role code", func(r *Ipa) *string { return &r.AgreementRoleCode }, domain.AgreementRoleCodes, version.V20),
		optStringField(21, 11, "interested_party_ipi_name_num", "Interested party IPI name number (11 chars, optional)", func(r *Ipa) *string { return &r.InterestedPartyIpiNameNum }, version.V20),
		optStringField(32, 13, "ipi_base_number", "IPI base number (13 chars, optional)", func(r *Ipa) *string { return &r.IpiBaseNumber }, version.V20),
		stringField(45, 9, "interested_party_num", "Interested party number", func(r *Ipa) *string { return &r.InterestedPartyNum }),
		stringField(54, 45, "interested_party_last_name", "Interested party last name", func(r *Ipa) *string { return &r.InterestedPartyLastName }),
		optStringField(99, 30, "interested_party_writer_first_name", "Interested party writer first name (30 chars, optional)", func(r *Ipa) *string { return &r.InterestedPartyWriterFirstName }, version.V20),
		optStringField(129, 3, "pr_affiliation_society", "PR affiliation society (3 chars, conditional)", func(r *Ipa) *string { return &r.PrAffiliationSociety }, version.V20),
		optStringField(132, 5, "pr_share", "PR share (5 chars, conditional)", func(r *Ipa) *string { return &r.PrShare }, version.V20),
		optStringField(137, 3, "mr_affiliation_society", "MR affiliation society (3 chars, conditional)", func(r *Ipa) *string { return &r.MrAffiliationSociety }, version.V20),
		optStringField(140, 5, "mr_share", "MR share (5 chars, conditional)", func(r *Ipa) *string { return &r.MrShare }, version.V20),
		optStringField(145, 3, "sr_affiliation_society", "SR affiliation society (3 chars, conditional)", func(r *Ipa) *string { return &r.SrAffiliationSociety }, version.V20),
		optStringField(148, 5, "sr_share", "SR share (5 chars, conditional)", func(r *Ipa) *string { return &r.SrShare }, version.V20),
	),
}
