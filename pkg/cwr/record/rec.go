package record

import (
	"github.com/cdacos/allegro/pkg/cwr/domain"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Rec is sound-recording detail for the preceding work, heavily extended
// at v2.1 (media_type) and v2.2 (a block of display/catalog fields).
// Grounded on records/rec.rs.
type Rec struct {
	RecordType                      string
	TransactionSequenceNum           string
	RecordSequenceNum                string
	ReleaseDate                       string
	Constant                          string
	ReleaseDuration                   string
	Constant2                         string
	AlbumTitle                        string
	AlbumLabel                        string
	ReleaseCatalogNum                 string
	Ean                               string
	Isrc                              string
	RecordingFormat                   string
	RecordingTechnique                string
	MediaType                         string
	RecordingTitle                    string
	VersionTitle                      string
	DisplayArtist                     string
	RecordLabel                       string
	IsrcValidity                      string
	SubmitterRecordingIdentifier       string
}

func (r Rec) Tag() string { return "REC" }

func (r Rec) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, RecSchema, v)
}

func recLength(v version.Version) int {
	switch {
	case v.AtLeast(version.V22):
		return 540
	case v.AtLeast(version.V21):
		return 266
	default:
		return 263
	}
}

// RecSchema is the REC record schema.
var RecSchema = schema.RecordSchema[Rec]{
	Tag:    "REC",
	Length: recLength,
	Fields: append(prefixFields(
		func(r *Rec) *string { return &r.RecordType },
		func(r *Rec) *string { return &r.TransactionSequenceNum },
		func(r *Rec) *string { return &r.RecordSequenceNum },
	),
		dateField(19, "release_date", "Release date YYYYMMDD (optional)", func(r *Rec) *string { return &r.ReleaseDate }, version.V20),
		stringField(27, 60, "constant", "Constant - spaces", func(r *Rec) *string { return &r.Constant }),
		timeField(87, "release_duration", "Release duration HHMMSS (optional)", func(r *Rec) *string { return &r.ReleaseDuration }, version.V20),
		stringField(93, 5, "constant2", "Constant - spaces", func(r *Rec) *string { return &r.Constant2 }),
		optStringField(98, 60, "album_title", "Album title (optional)", func(r *Rec) *string { return &r.AlbumTitle }, version.V20),
		optStringField(158, 60, "album_label", "Album label (optional)", func(r *Rec) *string { return &r.AlbumLabel }, version.V20),
		optStringField(218, 18, "release_catalog_num", "Release catalog number (optional)", func(r *Rec) *string { return &r.ReleaseCatalogNum }, version.V20),
		optStringField(236, 13, "ean", "EAN (optional)", func(r *Rec) *string { return &r.Ean }, version.V20),
		optStringField(249, 12, "isrc", "ISRC (optional)", func(r *Rec) *string { return &r.Isrc }, version.V20),
		listCodeField(261, 1, "recording_format", "Recording format (1 char, optional)", func(r *Rec) *string { return &r.RecordingFormat }, domain.RecordingFormats, version.V20),
		listCodeField(262, 1, "recording_technique", "Recording technique (1 char, optional)", func(r *Rec) *string { return &r.RecordingTechnique }, domain.RecordingTechniques, version.V20),
		listCodeField(263, 3, "media_type", "Media type (optional, v2.1+)", func(r *Rec) *string { return &r.MediaType }, domain.MediaTypes, version.V21),
		optStringField(266, 60, "recording_title", "Recording title (optional, v2.2+)", func(r *Rec) *string { return &r.RecordingTitle }, version.V22),
		optStringField(326, 60, "version_title", "Version title (optional, v2.2+)", func(r *Rec) *string { return &r.VersionTitle }, version.V22),
		optStringField(386, 60, "display_artist", "Display artist (optional, v2.2+)", func(r *Rec) *string { return &r.DisplayArtist }, version.V22),
		optStringField(446, 60, "record_label", "Record label (optional, v2.2+)", func(r *Rec) *string { return &r.RecordLabel }, version.V22),
		optStringField(506, 20, "isrc_validity", "ISRC validity (conditional, v2.2+)", func(r *Rec) *string { return &r.IsrcValidity }, version.V22),
		optStringField(526, 14, "submitter_recording_identifier", "Submitter recording identifier (optional, v2.2+)", func(r *Rec) *string { return &r.SubmitterRecordingIdentifier }, version.V22),
	),
}
