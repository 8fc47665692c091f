package record

import (
	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Ind details one non-standard instrument within the preceding INS
// summary. Grounded on records/ind.rs.
type Ind struct {
	RecordType             string
	TransactionSequenceNum  string
	RecordSequenceNum       string
	InstrumentCode           string
	NumberOfPlayers          string
}

func (r Ind) Tag() string { return "IND" }

func (r Ind) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, IndSchema, v)
}

func indLength(v version.Version) int { return 25 }

// IndSchema is the IND record schema.
var IndSchema = schema.RecordSchema[Ind]{
	Tag:    "IND",
	Length: indLength,
	Fields: append(prefixFields(
		func(r *Ind) *string { return &r.RecordType },
		func(r *Ind) *string { return &r.TransactionSequenceNum },
		func(r *Ind) *string { return &r.RecordSequenceNum },
	),
		listCodeField(19, 3, "instrument_code", "Instrument code", func(r *Ind) *string { return &r.InstrumentCode }, domain.InstrumentCodes, version.V20),
		optStringField(22, 3, "number_of_players", "Number of players (optional)", func(r *Ind) *string { return &r.NumberOfPlayers }, version.V20),
	),
}
