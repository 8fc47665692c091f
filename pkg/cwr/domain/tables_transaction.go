package domain

// AgreementTypes is the closed set of AGR agreement_type codes.
// Grounded on lookups/agreement_types.rs.
var AgreementTypes = Table{
	Name: "Agreement Type",
	Codes: codes(
		"OS", "Original Specific",
		"PS", "Sub-publishing Specific",
		"PG", "Sub-publishing General",
		"OG", "Original General",
	),
	Default: "OS",
}

// AgreementRoleCodes is the closed set of IPA agreement_role_code values.
// Grounded on lookups/agreement_role_codes.rs.
var AgreementRoleCodes = Table{
	Name: "Agreement Role Code",
	Codes: codes(
		"AS", "Assignor",
		"AC", "Acquirer",
	),
	Default: "AS",
}

// TransactionStatuses is the closed set of ACK transaction_status codes.
// Grounded on lookups/transaction_statuses.rs.
var TransactionStatuses = Table{
	Name: "Transaction Status",
	Codes: codes(
		"CO", "Conflict",
		"DU", "Duplicate",
		"RA", "Transaction Accepted",
		"AS", "Registration Accepted",
		"AC", "Registration Accepted with Changes",
		"RJ", "Rejected",
		"NP", "No Participation",
		"RC", "Claim rejected",
	),
	Default: "NP",
}

// MusicalWorkDistributionCategories is the closed set of NWR
// musical_work_distribution_category codes. Grounded on
// lookups/musical_work_distribution_categories.rs.
var MusicalWorkDistributionCategories = Table{
	Name: "Musical Work Distribution Category",
	Codes: codes(
		"JAZ", "Jazz",
		"POP", "Popular",
		"SER", "Serious",
		"UNC", "Unclassified Distribution Category",
	),
	Default: "UNC",
}

// TextMusicRelationships is the closed set of NWR
// text_music_relationship codes. Grounded on lookups/text_music_relationships.rs.
var TextMusicRelationships = Table{
	Name: "Text Music Relationship",
	Codes: codes(
		"MUS", "Music",
		"MTX", "Music and Text",
		"TXT", "Text",
		"MTN", "Music and Text (separate creation)",
	),
	Default: "MUS",
}

// CompositeTypes is the closed set of NWR composite_type codes, including
// the blank "non-composite" sentinel. Grounded on lookups/composite_types.rs.
var CompositeTypes = Table{
	Name: "Composite Type",
	Codes: codes(
		"COS", "Composite of Samples",
		"MED", "Medley",
		"POT", "Potpourri",
		"UCO", "Unspecified Composite",
		"", "Non-Composite",
	),
	Default: "",
}

// VersionTypes is the closed set of NWR version_type codes. Grounded on
// lookups/version_types.rs.
var VersionTypes = Table{
	Name: "Version Type",
	Codes: codes(
		"MOD", "Modified Version of a musical work",
		"ORI", "Original Work",
	),
	Default: "ORI",
}

// ExcerptTypes is the closed set of NWR excerpt_type codes, including the
// blank "non-excerpt" sentinel. Grounded on lookups/excerpt_types.rs.
var ExcerptTypes = Table{
	Name: "Excerpt Type",
	Codes: codes(
		"MOV", "Movement",
		"UEX", "Unspecified Excerpt",
		"", "Non-Excerpt",
	),
	Default: "",
}

// MusicArrangements is the closed set of NWR music_arrangement codes.
// Grounded on lookups/music_arrangements.rs.
var MusicArrangements = Table{
	Name: "Music Arrangement",
	Codes: codes(
		"NEW", "New",
		"ARR", "Arrangement",
		"ADM", "Addition",
		"UNS", "Unspecified arrangement",
		"ORI", "Original",
	),
	Default: "UNS",
}

// LyricAdaptations is the closed set of NWR lyric_adaptation codes.
// Grounded on lookups/lyric_adaptations.rs.
var LyricAdaptations = Table{
	Name: "Lyric Adaptation",
	Codes: codes(
		"NEW", "New",
		"MOD", "Modification",
		"NON", "None",
		"ORI", "Original",
		"REP", "Replacement Lyrics",
		"ADL", "Addition",
		"UNS", "Unspecified",
		"TRA", "Translation",
	),
	Default: "UNS",
}
