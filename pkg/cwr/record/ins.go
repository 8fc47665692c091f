package record

import (
	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Ins summarizes the instrumentation of a serious work. Grounded on
// records/ins.rs.
type Ins struct {
	RecordType                     string
	TransactionSequenceNum          string
	RecordSequenceNum               string
	NumberOfVoices                   string
	StandardInstrumentationType       string
	InstrumentationDescription        string
}

func (r Ins) Tag() string { return "INS" }

func (r Ins) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, InsSchema, v)
}

func insLength(v version.Version) int { return 75 }

// InsSchema is the INS record schema.
var InsSchema = schema.RecordSchema[Ins]{
	Tag:    "INS",
	Length: insLength,
	Fields: append(prefixFields(
		func(r *Ins) *string { return &r.RecordType },
		func(r *Ins) *string { return &r.TransactionSequenceNum },
		func(r *Ins) *string { return &r.RecordSequenceNum },
	),
		optStringField(19, 3, "number_of_voices", "Number of voices (optional)", func(r *Ins) *string { return &r.NumberOfVoices }, version.V20),
		listCodeField(22, 3, "standard_instrumentation_type", "Standard instrumentation type (conditional)", func(r *Ins) *string { return &r.StandardInstrumentationType }, domain.StandardInstrumentationTypes, version.V20),
		optStringField(25, 50, "instrumentation_description", "Instrumentation description (conditional)", func(r *Ins) *string { return &r.InstrumentationDescription }, version.V20),
	),
}
