package domain

// CharacterSetCodes is the closed set of HDR character_set values (v2.1+).
// Grounded on domain_types/character_set.rs; unknown values are not
// rejected outright there (an Info-level "custom" fallback). The HDR
// schema parses character_set as plain text and does not consult this
// table, so any value is kept as read; Default names "ASCII".
var CharacterSetCodes = Table{
	Name: "Character Set",
	Codes: codes(
		"ASCII", "ASCII",
		"Traditional Big5", "Traditional Big5",
		"Simplified GB", "Simplified GB",
		"UTF-8", "UTF-8",
		"Unicode", "Unicode",
	),
	Default: "ASCII",
}

// RecordingFormats is the closed set of REC recording_format values.
var RecordingFormats = Table{
	Name: "Recording Format",
	Codes: codes(
		"A", "Audio",
		"V", "Video",
	),
	Default: "A",
}

// RecordingTechniques is the closed set of REC recording_technique values.
var RecordingTechniques = Table{
	Name: "Recording Technique",
	Codes: codes(
		"A", "Analogue",
		"D", "Digital",
		"U", "Unknown",
	),
	Default: "U",
}

// InclusionExclusionIndicators is the closed set of TER/SPT/SWT
// inclusion_exclusion_indicator values.
var InclusionExclusionIndicators = Table{
	Name: "Inclusion/Exclusion Indicator",
	Codes: codes(
		"I", "Included",
		"E", "Excluded",
	),
	Default: "I",
}

// MessageLevels is the closed set of MSG message_level values.
var MessageLevels = Table{
	Name: "Message Level",
	Codes: codes(
		"E", "Entire transaction",
		"R", "Specific record",
		"F", "Field",
		"T", "Transaction",
		"G", "Group",
	),
	Default: "R",
}

// MessageTypes is the closed set of MSG message_type values.
var MessageTypes = Table{
	Name: "Message Type",
	Codes: codes(
		"E", "Error",
		"G", "General",
		"T", "Title",
	),
	Default: "G",
}

// EdiStandardVersions is the closed set of HDR edi_standard_version_number
// values; CWR has only ever defined one.
var EdiStandardVersions = Table{
	Name: "EDI Standard Version",
	Codes: codes(
		"01.10", "CWR EDI Standard version 1.10",
	),
	Default: "01.10",
}
