package record

import (
	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Msg is an acknowledging party's message about an original transaction
// or record, fixed at 185 columns across every version. Grounded on
// records/msg.rs.
type Msg struct {
	RecordType                    string
	TransactionSequenceNum          string
	RecordSequenceNum               string
	MessageType                      string
	OriginalRecordSequenceNum         string
	RecordTypeField                   string
	MessageLevel                      string
	ValidationNumber                  string
	MessageText                       string
}

func (r Msg) Tag() string { return "MSG" }

func (r Msg) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, MsgSchema, v)
}

func msgLength(v version.Version) int { return 185 }

// MsgSchema is the MSG record schema.
var MsgSchema = schema.RecordSchema[Msg]{
	Tag:    "MSG",
	Length: msgLength,
	Fields: append(prefixFields(
		func(r *Msg) *string { return &r.RecordType },
		func(r *Msg) *string { return &r.TransactionSequenceNum },
		func(r *Msg) *string { return &r.RecordSequenceNum },
	),
		listCodeField(19, 1, "message_type", "Message type", func(r *Msg) *string { return &r.MessageType }, domain.MessageTypes, version.V20),
		stringField(20, 8, "original_record_sequence_num", "Original record sequence number", func(r *Msg) *string { return &r.OriginalRecordSequenceNum }),
		stringField(28, 3, "record_type_field", "Record type", func(r *Msg) *string { return &r.RecordTypeField }),
		listCodeField(31, 1, "message_level", "Message level", func(r *Msg) *string { return &r.MessageLevel }, domain.MessageLevels, version.V20),
		stringField(32, 3, "validation_number", "Validation number", func(r *Msg) *string { return &r.ValidationNumber }),
		stringField(35, 150, "message_text", "Message text", func(r *Msg) *string { return &r.MessageText }),
	),
}
