package record

import (
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Pwr links a writer to the publisher administering their share.
// Grounded on records/pwr.rs.
type Pwr struct {
	RecordType                     string
	TransactionSequenceNum          string
	RecordSequenceNum               string
	PublisherIPNum                   string
	PublisherName                    string
	SubmitterAgreementNumber          string
	SocietyAssignedAgreementNumber    string
	WriterIPNum                       string
	PublisherSequenceNum               string
}

func (r Pwr) Tag() string { return "PWR" }

func (r Pwr) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, PwrSchema, v)
}

func pwrLength(v version.Version) int {
	switch {
	case v.AtLeast(version.V22):
		return 112
	case v.AtLeast(version.V21):
		return 110
	default:
		return 101
	}
}

// PwrSchema is the PWR record schema.
var PwrSchema = schema.RecordSchema[Pwr]{
	Tag:    "PWR",
	Length: pwrLength,
	Fields: append(prefixFields(
		func(r *Pwr) *string { return &r.RecordType },
		func(r *Pwr) *string { return &r.TransactionSequenceNum },
		func(r *Pwr) *string { return &r.RecordSequenceNum },
	),
		optStringField(19, 9, "publisher_ip_num", "Publisher IP number (9 chars, conditional)", func(r *Pwr) *string { return &r.PublisherIPNum }, version.V20),
		optStringField(28, 45, "publisher_name", "Publisher name (45 chars, conditional)", func(r *Pwr) *string { return &r.PublisherName }, version.V20),
		optStringField(73, 14, "submitter_agreement_number", "Submitter agreement number (14 chars, optional)", func(r *Pwr) *string { return &r.SubmitterAgreementNumber }, version.V20),
		optStringField(87, 14, "society_assigned_agreement_number", "Society-assigned agreement number (14 chars, optional)", func(r *Pwr) *string { return &r.SocietyAssignedAgreementNumber }, version.V20),
		optStringField(101, 9, "writer_ip_num", "Writer IP number (9 chars, conditional, v2.1+)", func(r *Pwr) *string { return &r.WriterIPNum }, version.V21),
		optStringField(110, 2, "publisher_sequence_num", "Publisher sequence number (2 chars, v2.2+)", func(r *Pwr) *string { return &r.PublisherSequenceNum }, version.V22),
	),
}
