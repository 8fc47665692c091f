package record

import (
	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Ack acknowledges a previously submitted transaction. Grounded on
// records/ack.rs.
type Ack struct {
	RecordType                       string
	TransactionSequenceNum            string
	RecordSequenceNum                 string
	CreationDate                      string
	CreationTime                      string
	OriginalGroupID                   string
	OriginalTransactionSequenceNum    string
	OriginalTransactionType           string
	CreationTitle                     string
	SubmitterCreationNum               string
	RecipientCreationNum               string
	ProcessingDate                     string
	TransactionStatus                  string
}

func (r Ack) Tag() string { return "ACK" }

func (r Ack) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, AckSchema, v)
}

func ackLength(v version.Version) int { return 159 }

// AckSchema is the ACK record schema.
var AckSchema = schema.RecordSchema[Ack]{
	Tag:    "ACK",
	Length: ackLength,
	Fields: append(prefixFields(
		func(r *Ack) *string { return &r.RecordType },
		func(r *Ack) *string { return &r.TransactionSequenceNum },
		func(r *Ack) *string { return &r.RecordSequenceNum },
	),
		dateField(19, "creation_date", "Creation date of original file YYYYMMDD", func(r *Ack) *string { return &r.CreationDate }, version.V20),
		timeField(27, "creation_time", "Creation time of original file HHMMSS", func(r *Ack) *string { return &r.CreationTime }, version.V20),
		stringField(33, 5, "original_group_id", "Original group ID", func(r *Ack) *string { return &r.OriginalGroupID }),
		stringField(38, 8, "original_transaction_sequence_num", "Original transaction sequence number", func(r *Ack) *string { return &r.OriginalTransactionSequenceNum }),
		stringField(46, 3, "original_transaction_type", "Original transaction type", func(r *Ack) *string { return &r.OriginalTransactionType }),
		optStringField(49, 60, "creation_title", "Creation title (conditional)", func(r *Ack) *string { return &r.CreationTitle }, version.V20),
		optStringField(109, 20, "submitter_creation_num", "Submitter creation number (conditional)", func(r *Ack) *string { return &r.SubmitterCreationNum }, version.V20),
		optStringField(129, 20, "recipient_creation_num", "Recipient creation number (conditional)", func(r *Ack) *string { return &r.RecipientCreationNum }, version.V20),
		dateField(149, "processing_date", "Processing date YYYYMMDD", func(r *Ack) *string { return &r.ProcessingDate }, version.V20),
		listCodeField(157, 2, "transaction_status", "Transaction status", func(r *Ack) *string { return &r.TransactionStatus }, domain.TransactionStatuses, version.V20),
	),
}
