package record

import (
	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Nat carries a work's title in non-Roman script. Grounded on records/nat.rs.
type Nat struct {
	RecordType             string
	TransactionSequenceNum  string
	RecordSequenceNum       string
	Title                    string
	TitleType                string
	LanguageCode             string
}

func (r Nat) Tag() string { return "NAT" }

func (r Nat) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, NatSchema, v)
}

func natLength(v version.Version) int { return 663 }

// NatSchema is the NAT record schema.
var NatSchema = schema.RecordSchema[Nat]{
	Tag:    "NAT",
	Length: natLength,
	Fields: append(prefixFields(
		func(r *Nat) *string { return &r.RecordType },
		func(r *Nat) *string { return &r.TransactionSequenceNum },
		func(r *Nat) *string { return &r.RecordSequenceNum },
	),
		stringField(19, 640, "title", "Title", func(r *Nat) *string { return &r.Title }),
		listCodeField(659, 2, "title_type", "Title type", func(r *Nat) *string { return &r.TitleType }, domain.TitleTypes, version.V20),
		listCodeField(661, 2, "language_code", "Language code (optional)", func(r *Nat) *string { return &r.LanguageCode }, domain.LanguageCodes, version.V20),
	),
}
