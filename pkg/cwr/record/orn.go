package record

import (
	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Orn describes a work's audio-visual origin, heavily extended at v2.1
// (library/episode metadata) and v2.2 (V-ISAN/EIDR identifiers).
// Grounded on records/orn.rs.
type Orn struct {
	RecordType             string
	TransactionSequenceNum  string
	RecordSequenceNum       string
	IntendedPurpose          string
	ProductionTitle           string
	CdIdentifier              string
	CutNumber                 string
	Library                   string
	Bltvr                     string
	Filler                    string
	ProductionNum             string
	EpisodeTitle              string
	EpisodeNum                string
	YearOfProduction          string
	AviSocietyCode            string
	AudioVisualNumber         string
	VIsanIsan                 string
	VIsanEpisode              string
	VIsanCheckDigit1          string
	VIsanVersion              string
	VIsanCheckDigit2          string
	Eidr                      string
	EidrCheckDigit            string
}

func (r Orn) Tag() string { return "ORN" }

func (r Orn) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, OrnSchema, v)
}

func ornLength(v version.Version) int {
	switch {
	case v.AtLeast(version.V22):
		return 348
	case v.AtLeast(version.V21):
		return 301
	default:
		return 101
	}
}

// OrnSchema is the ORN record schema.
var OrnSchema = schema.RecordSchema[Orn]{
	Tag:    "ORN",
	Length: ornLength,
	Fields: append(prefixFields(
		func(r *Orn) *string { return &r.RecordType },
		func(r *Orn) *string { return &r.TransactionSequenceNum },
		func(r *Orn) *string { return &r.RecordSequenceNum },
	),
		listCodeField(19, 3, "intended_purpose", "Intended purpose", func(r *Orn) *string { return &r.IntendedPurpose }, domain.IntendedPurposes, version.V20),
		optStringField(22, 60, "production_title", "Production title (60 chars, conditional)", func(r *Orn) *string { return &r.ProductionTitle }, version.V20),
		optStringField(82, 15, "cd_identifier", "CD identifier (15 chars, conditional)", func(r *Orn) *string { return &r.CdIdentifier }, version.V20),
		optStringField(97, 4, "cut_number", "Cut number (4 chars, optional)", func(r *Orn) *string { return &r.CutNumber }, version.V20),
		optStringField(101, 60, "library", "Library (60 chars, conditional, v2.1+)", func(r *Orn) *string { return &r.Library }, version.V21),
		optStringField(161, 1, "bltvr", "BLTVR (1 char, optional, v2.1+)", func(r *Orn) *string { return &r.Bltvr }, version.V21),
		optStringField(162, 25, "filler", "Filler (25 chars, optional, v2.1+)", func(r *Orn) *string { return &r.Filler }, version.V21),
		optStringField(187, 12, "production_num", "Production number (12 chars, optional, v2.1+)", func(r *Orn) *string { return &r.ProductionNum }, version.V21),
		optStringField(199, 60, "episode_title", "Episode title (60 chars, optional, v2.1+)", func(r *Orn) *string { return &r.EpisodeTitle }, version.V21),
		optStringField(259, 20, "episode_num", "Episode number (20 chars, optional, v2.1+)", func(r *Orn) *string { return &r.EpisodeNum }, version.V21),
		optStringField(279, 4, "year_of_production", "Year of production (4 chars, optional, v2.1+)", func(r *Orn) *string { return &r.YearOfProduction }, version.V21),
		optStringField(283, 3, "avi_society_code", "AVI society code (3 chars, optional, v2.1+)", func(r *Orn) *string { return &r.AviSocietyCode }, version.V21),
		optStringField(286, 15, "audio_visual_number", "Audio-visual number (15 chars, optional, v2.1+)", func(r *Orn) *string { return &r.AudioVisualNumber }, version.V21),
		optStringField(301, 12, "v_isan_isan", "V-ISAN/ISAN (12 chars, optional, v2.2+)", func(r *Orn) *string { return &r.VIsanIsan }, version.V22),
		optStringField(313, 4, "v_isan_episode", "V-ISAN/Episode (4 chars, optional, v2.2+)", func(r *Orn) *string { return &r.VIsanEpisode }, version.V22),
		optStringField(317, 1, "v_isan_check_digit_1", "V-ISAN/Check Digit 1 (1 char, optional, v2.2+)", func(r *Orn) *string { return &r.VIsanCheckDigit1 }, version.V22),
		optStringField(318, 8, "v_isan_version", "V-ISAN/Version (8 chars, optional, v2.2+)", func(r *Orn) *string { return &r.VIsanVersion }, version.V22),
		optStringField(326, 1, "v_isan_check_digit_2", "V-ISAN/Check Digit 2 (1 char, optional, v2.2+)", func(r *Orn) *string { return &r.VIsanCheckDigit2 }, version.V22),
		optStringField(327, 20, "eidr", "EIDR (20 chars, optional, v2.2+)", func(r *Orn) *string { return &r.Eidr }, version.V22),
		optStringField(347, 1, "eidr_check_digit", "EIDR/Check Digit (1 char, optional, v2.2+)", func(r *Orn) *string { return &r.EidrCheckDigit }, version.V22),
	),
}
