package record

import (
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// Hdr carries the sender and transmission metadata that opens every CWR
// file. Grounded on records/hdr.rs; the version/revision/software fields
// are the same columns the version resolver (pkg/cwr/version) probes
// before this schema ever runs.
type Hdr struct {
	RecordType               string
	SenderType               string
	SenderID                 string
	SenderName               string
	EdiStandardVersionNumber string
	CreationDate             string
	CreationTime             string
	TransmissionDate         string
	CharacterSet             string
	Version                  string
	Revision                 string
	SoftwarePackage          string
	SoftwarePackageVersion   string
}

func (r Hdr) Tag() string { return "HDR" }

func (r Hdr) Format(v version.Version) (string, error) {
	return schema.FormatRecord(r, HdrSchema, v)
}

// hdrLength grows with the version-gated trailing fields: 86 cols in the
// bare 2.0 shape, 101 once character_set appears at 2.1, full 167 at 2.2.
func hdrLength(v version.Version) int {
	switch {
	case v.AtLeast(version.V22):
		return 167
	case v.AtLeast(version.V21):
		return 101
	default:
		return 86
	}
}

// HdrSchema is the HDR record schema, exported for pkg/cwr/dispatch.
var HdrSchema = schema.RecordSchema[Hdr]{
	Tag:    "HDR",
	Length: hdrLength,
	Fields: []schema.FieldDef[Hdr]{
		stringField(0, 3, "record_type", "Always 'HDR'", func(r *Hdr) *string { return &r.RecordType }),
		stringField(3, 2, "sender_type", "Sender type", func(r *Hdr) *string { return &r.SenderType }),
		stringField(5, 9, "sender_id", "Sender ID", func(r *Hdr) *string { return &r.SenderID }),
		stringField(14, 45, "sender_name", "Sender name", func(r *Hdr) *string { return &r.SenderName }),
		stringField(59, 5, "edi_standard_version_number", "EDI standard version number", func(r *Hdr) *string { return &r.EdiStandardVersionNumber }),
		dateField(64, "creation_date", "Creation date YYYYMMDD", func(r *Hdr) *string { return &r.CreationDate }, version.V20),
		timeField(72, "creation_time", "Creation time HHMMSS", func(r *Hdr) *string { return &r.CreationTime }, version.V20),
		dateField(78, "transmission_date", "Transmission date YYYYMMDD", func(r *Hdr) *string { return &r.TransmissionDate }, version.V20),
		optStringField(86, 15, "character_set", "Character set (v2.1+)", func(r *Hdr) *string { return &r.CharacterSet }, version.V21),
		optStringField(101, 3, "version", "Version (v2.2+)", func(r *Hdr) *string { return &r.Version }, version.V22),
		optStringField(104, 3, "revision", "Revision (v2.2+)", func(r *Hdr) *string { return &r.Revision }, version.V22),
		optStringField(107, 30, "software_package", "Software package (v2.2+)", func(r *Hdr) *string { return &r.SoftwarePackage }, version.V22),
		optStringField(137, 30, "software_package_version", "Software package version (v2.2+)", func(r *Hdr) *string { return &r.SoftwarePackageVersion }, version.V22),
	},
}
