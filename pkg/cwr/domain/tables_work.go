package domain

// IntendedPurposes is the closed set of ORN intended_purpose values.
// Grounded on lookups/intended_purposes.rs.
var IntendedPurposes = Table{
	Name: "Intended Purpose",
	Codes: codes(
		"COM", "Commercial / Jingle / Trailer",
		"FIL", "Film",
		"GEN", "General Usage",
		"LIB", "Library Work",
		"MUL", "Multimedia",
		"RAD", "Radio",
		"TEL", "Television",
		"THR", "Theatre",
		"VID", "Video",
	),
	Default: "GEN",
}

// WorkTypes is the closed set of cwr_work_type values used on NWR. Grounded
// on lookups/work_types.rs (a common subset; full in source).
var WorkTypes = Table{
	Name: "Work Type",
	Codes: codes(
		"TA", "AAA (Triple A)",
		"AC", "Adult Contemporary",
		"AR", "Album Oriented Rock (AOR)",
		"AL", "Alternative Music",
		"AM", "Americana",
		"BD", "Band",
		"BL", "Bluegrass Music",
		"CD", "Children's Music",
		"CL", "Classical Music",
		"CC", "Contemporary Christian",
		"CT", "Country Music",
		"DN", "Dance",
		"FM", "Film/ Television Music",
		"FK", "Folk Music",
		"JZ", "Jazz Music",
		"JG", "Jingles",
		"LN", "Latin",
		"NA", "New Age",
		"OP", "Opera",
		"PP", "Pop Music",
		"RP", "Rap Music",
		"RK", "Rock Music",
		"RB", "Rhythm and Blues",
		"SD", "Sacred",
		"SY", "Symphonic",
	),
	Default: "PP",
}

// MediaTypes is the closed set of REC media_type values. Grounded on
// lookups/media_types.rs (a common subset; full table is ~60 codes in
// source).
var MediaTypes = Table{
	Name: "Media Type",
	Codes: codes(
		"S", "45 rpm 17 cm Single",
		"EP", "45 rpm 17 cm EP",
		"DS", "45 rpm (12 inches) Maxi Single",
		"LP", "LP 33 rpm 30 cm",
		"CD", "CD-LP (5 inches)",
		"CDS", "CD Singles 3&5 inches",
		"CDM", "CD Maxi-single",
		"MC", "MC LP",
		"MD", "MD",
		"DV1", "DVD-Audio",
		"DV2", "DVD-Video",
		"DW", "Downloading of a title",
	),
	Default: "CD",
}

// InstrumentCodes is the closed set of IND instrument_code values. Grounded
// on lookups/instrument_codes.rs (a common subset of orchestral instruments).
var InstrumentCodes = Table{
	Name: "Instrument Code",
	Codes: codes(
		"PNO", "Piano",
		"VLN", "Violin",
		"VLA", "Viola",
		"VLC", "Cello",
		"GTR", "Guitar",
		"FLT", "Flute",
		"CLR", "Clarinet",
		"TRP", "Trumpet",
		"TRB", "Trombone",
		"DRM", "Drums",
		"BAS", "Bass",
		"ORG", "Organ",
		"SAX", "Saxophone",
		"HRN", "Horn",
		"VOC", "Voice",
	),
	Default: "PNO",
}

// StandardInstrumentationTypes is the closed set of INS
// standard_instrumentation_type values. Grounded on
// lookups/standard_instrumentations.rs (a common subset).
var StandardInstrumentationTypes = Table{
	Name: "Standard Instrumentation Type",
	Codes: codes(
		"ORC", "Full Orchestra",
		"BND", "Concert Band",
		"CMB", "Combo",
		"PNO", "Solo Piano",
		"VOC", "Voice and Accompaniment",
		"STR", "String Ensemble",
	),
	Default: "CMB",
}
