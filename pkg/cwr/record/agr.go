package record

import (
	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
	"github.com/cdacos/allegro/pkg/cwr/warning"
)

// Agr is the agreement transaction header. Grounded on records/agr.rs.
type Agr struct {
	RecordType                          string
	TransactionSequenceNum               string
	RecordSequenceNum                    string
	SubmitterAgreementNumber             string
	InternationalStandardAgreementCode   string
	AgreementType                        string
	AgreementStartDate                   string
	AgreementEndDate                     string
	RetentionEndDate                     string
	PriorRoyaltyStatus                   bool
	PriorRoyaltyStartDate                string
	PostTermCollectionStatus             bool
	PostTermCollectionEndDate            string
	DateOfSignatureOfAgreement           string
	NumberOfWorks                        domain.WorksCount
	SalesManufactureClause               string
	SharesChange                         bool
	AdvanceGiven                         bool
	SocietyAssignedAgreementNumber       string
}

func (r Agr) Tag() string { return "AGR" }

func (r Agr) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, AgrSchema, v)
}

func agrLength(v version.Version) int {
	if v.AtLeast(version.V21) {
		return 121
	}
	return 107
}

// AgrSchema is the AGR record schema.
var AgrSchema = schema.RecordSchema[Agr]{
	Tag:    "AGR",
	Length: agrLength,
	Fields: append(prefixFields(
		func(r *Agr) *string { return &r.RecordType },
		func(r *Agr) *string { return &r.TransactionSequenceNum },
		func(r *Agr) *string { return &r.RecordSequenceNum },
	),
		stringField(19, 14, "submitter_agreement_number", "Submitter agreement number", func(r *Agr) *string { return &r.SubmitterAgreementNumber }),
		optStringField(33, 14, "international_standard_agreement_code", "International standard agreement code (optional)", func(r *Agr) *string { return &r.InternationalStandardAgreementCode }, version.V20),
		listCodeField(47, 2, "agreement_type", "Agreement type", func(r *Agr) *string { return &r.AgreementType }, domain.AgreementTypes, version.V20),
		dateField(49, "agreement_start_date", "Agreement start date YYYYMMDD", func(r *Agr) *string { return &r.AgreementStartDate }, version.V20),
		dateField(57, "agreement_end_date", "Agreement end date YYYYMMDD (optional)", func(r *Agr) *string { return &r.AgreementEndDate }, version.V20),
		dateField(65, "retention_end_date", "Retention end date YYYYMMDD (optional)", func(r *Agr) *string { return &r.RetentionEndDate }, version.V20),
		boolField(73, "prior_royalty_status", "Prior royalty status (1 char)", func(r *Agr) *bool { return &r.PriorRoyaltyStatus }, version.V20),
		dateField(74, "prior_royalty_start_date", "Prior royalty start date YYYYMMDD (conditional)", func(r *Agr) *string { return &r.PriorRoyaltyStartDate }, version.V20),
		boolField(82, "post_term_collection_status", "Post-term collection status (1 char)", func(r *Agr) *bool { return &r.PostTermCollectionStatus }, version.V20),
		dateField(83, "post_term_collection_end_date", "Post-term collection end date YYYYMMDD (conditional)", func(r *Agr) *string { return &r.PostTermCollectionEndDate }, version.V20),
		dateField(91, "date_of_signature_of_agreement", "Date of signature of agreement YYYYMMDD (optional)", func(r *Agr) *string { return &r.DateOfSignatureOfAgreement }, version.V20),
		schema.FieldDef[Agr]{
			Name: "number_of_works", Title: "Number of works", Start: 99, Len: 5,
			Format: func(rec *Agr, v version.Version) (string, error) { return rec.NumberOfWorks.Format(), nil },
			Parse: func(rec *Agr, raw string, v version.Version) []warning.Warning {
				n, w := domain.ParseWorksCount(raw, "number_of_works", "Number of works")
				rec.NumberOfWorks = n
				return w
			},
		},
		optStringField(104, 1, "sales_manufacture_clause", "Sales/manufacture clause (1 char, conditional)", func(r *Agr) *string { return &r.SalesManufactureClause }, version.V20),
		boolField(105, "shares_change", "Shares change (1 char, optional)", func(r *Agr) *bool { return &r.SharesChange }, version.V20),
		boolField(106, "advance_given", "Advance given (1 char, optional)", func(r *Agr) *bool { return &r.AdvanceGiven }, version.V20),
		optStringField(107, 14, "society_assigned_agreement_number", "Society assigned agreement number (optional, v2.1+)", func(r *Agr) *string { return &r.SocietyAssignedAgreementNumber }, version.V21),
	),
}
