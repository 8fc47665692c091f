package record

import (
	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Nwr is the shared layout of the NWR, REV, ISW, and EXC work-registration
// transactions — identical columns, distinguished only by record_type.
// Grounded on records/nwr.rs.
type Nwr struct {
	RecordType                          string
	TransactionSequenceNum               string
	RecordSequenceNum                    string
	WorkTitle                            string
	LanguageCode                         string
	SubmitterWorkNum                     string
	Iswc                                 string
	CopyrightDate                        string
	CopyrightNumber                      string
	MusicalWorkDistributionCategory      string
	Duration                             string
	RecordedIndicator                    string
	TextMusicRelationship                string
	CompositeType                        string
	VersionType                          string
	ExcerptType                          string
	MusicArrangement                     string
	LyricAdaptation                      string
	ContactName                          string
	ContactID                            string
	CwrWorkType                          string
	GrandRightsInd                       string
	CompositeComponentCount              string
	DateOfPublicationOfPrintedEdition    string
	ExceptionalClause                    string
	OpusNumber                           string
	CatalogueNumber                      string
	PriorityFlag                         string
}

// NwrTags lists the four record types sharing this layout.
var NwrTags = []string{"NWR", "REV", "ISW", "EXC"}

func (r Nwr) Tag() string { return r.RecordType }

func (r Nwr) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, NwrSchema, v)
}

func nwrLength(v version.Version) int {
	if v.AtLeast(version.V21) {
		return 260
	}
	return 259
}

// NwrSchema is the NWR/REV/ISW/EXC record schema.
var NwrSchema = schema.RecordSchema[Nwr]{
	Tag:    "NWR",
	Length: nwrLength,
	Fields: append(prefixFields(
		func(r *Nwr) *string { return &r.RecordType },
		func(r *Nwr) *string { return &r.TransactionSequenceNum },
		func(r *Nwr) *string { return &r.RecordSequenceNum },
	),
		stringField(19, 60, "work_title", "Work title", func(r *Nwr) *string { return &r.WorkTitle }),
		listCodeField(79, 2, "language_code", "Language code (2 chars, optional)", func(r *Nwr) *string { return &r.LanguageCode }, domain.LanguageCodes, version.V20),
		stringField(81, 14, "submitter_work_num", "Submitter work number", func(r *Nwr) *string { return &r.SubmitterWorkNum }),
		optStringField(95, 11, "iswc", "ISWC (11 chars, optional)", func(r *Nwr) *string { return &r.Iswc }, version.V20),
		optStringField(106, 8, "copyright_date", "Copyright date (8 chars, optional)", func(r *Nwr) *string { return &r.CopyrightDate }, version.V20),
		optStringField(114, 12, "copyright_number", "Copyright number (12 chars, optional)", func(r *Nwr) *string { return &r.CopyrightNumber }, version.V20),
		listCodeField(126, 3, "musical_work_distribution_category", "Musical work distribution category", func(r *Nwr) *string { return &r.MusicalWorkDistributionCategory }, domain.MusicalWorkDistributionCategories, version.V20),
		optStringField(129, 6, "duration", "Duration HHMMSS (6 chars, conditional)", func(r *Nwr) *string { return &r.Duration }, version.V20),
		stringField(135, 1, "recorded_indicator", "Recorded indicator (1 char)", func(r *Nwr) *string { return &r.RecordedIndicator }),
		listCodeField(136, 3, "text_music_relationship", "Text music relationship (3 chars, optional)", func(r *Nwr) *string { return &r.TextMusicRelationship }, domain.TextMusicRelationships, version.V20),
		listCodeField(139, 3, "composite_type", "Composite type (3 chars, optional)", func(r *Nwr) *string { return &r.CompositeType }, domain.CompositeTypes, version.V20),
		listCodeField(142, 3, "version_type", "Version type", func(r *Nwr) *string { return &r.VersionType }, domain.VersionTypes, version.V20),
		listCodeField(145, 3, "excerpt_type", "Excerpt type (3 chars, optional)", func(r *Nwr) *string { return &r.ExcerptType }, domain.ExcerptTypes, version.V20),
		listCodeField(148, 3, "music_arrangement", "Music arrangement (3 chars, conditional)", func(r *Nwr) *string { return &r.MusicArrangement }, domain.MusicArrangements, version.V20),
		listCodeField(151, 3, "lyric_adaptation", "Lyric adaptation (3 chars, conditional)", func(r *Nwr) *string { return &r.LyricAdaptation }, domain.LyricAdaptations, version.V20),
		optStringField(154, 30, "contact_name", "Contact name (30 chars, optional)", func(r *Nwr) *string { return &r.ContactName }, version.V20),
		optStringField(184, 10, "contact_id", "Contact ID (10 chars, optional)", func(r *Nwr) *string { return &r.ContactID }, version.V20),
		listCodeField(194, 2, "cwr_work_type", "CWR work type (2 chars, optional)", func(r *Nwr) *string { return &r.CwrWorkType }, domain.WorkTypes, version.V20),
		optStringField(196, 1, "grand_rights_ind", "Grand rights indicator (1 char, conditional)", func(r *Nwr) *string { return &r.GrandRightsInd }, version.V20),
		optStringField(197, 3, "composite_component_count", "Composite component count (3 chars, conditional)", func(r *Nwr) *string { return &r.CompositeComponentCount }, version.V20),
		optStringField(200, 8, "date_of_publication_of_printed_edition", "Date of publication of printed edition (8 chars, optional)", func(r *Nwr) *string { return &r.DateOfPublicationOfPrintedEdition }, version.V20),
		optStringField(208, 1, "exceptional_clause", "Exceptional clause (1 char, optional)", func(r *Nwr) *string { return &r.ExceptionalClause }, version.V20),
		optStringField(209, 25, "opus_number", "Opus number (25 chars, optional)", func(r *Nwr) *string { return &r.OpusNumber }, version.V20),
		optStringField(234, 25, "catalogue_number", "Catalogue number (25 chars, optional)", func(r *Nwr) *string { return &r.CatalogueNumber }, version.V20),
		optStringField(259, 1, "priority_flag", "Priority flag (1 char, optional, v2.1+)", func(r *Nwr) *string { return &r.PriorityFlag }, version.V21),
	),
}
