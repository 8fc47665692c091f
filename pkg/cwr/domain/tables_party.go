package domain

// WriterDesignationCodes is the closed set of SWR/OWR writer_designation_code
// values. Grounded on lookups/writer_designations.rs.
var WriterDesignationCodes = Table{
	Name: "Writer Designation Code",
	Codes: codes(
		"AD", "Adaptor",
		"AR", "Arranger",
		"A", "Author, Writer, Author of Lyrics",
		"C", "Composer, Writer",
		"CA", "Composer/Author",
		"SR", "Sub Arranger",
		"SA", "Sub Author",
		"TR", "Translator",
		"PA", "Income Participant",
	),
	Default: "A",
}

// PublisherTypes is the closed set of SPU/OPU publisher_type values.
// Grounded on lookups/publisher_types.rs.
var PublisherTypes = Table{
	Name: "Publisher Type",
	Codes: codes(
		"AQ", "Acquirer",
		"AM", "Administrator",
		"PA", "Income Participant",
		"E", "Original Publisher",
		"ES", "Substituted Publisher",
		"SE", "Sub Publisher",
	),
	Default: "E",
}

// UsaLicenseIndicators is the closed set of usa_license_ind values.
// Grounded on lookups/usa_license_indicators.rs.
var UsaLicenseIndicators = Table{
	Name: "USA License Indicator",
	Codes: codes(
		"A", "ASCAP",
		"B", "BMI",
		"S", "SESAC",
		"M", "AMRA",
		"G", "GMR",
	),
	Default: "A",
}

// SenderTypes is the closed set of HDR sender_type values. The CWR
// specification restricts this to publisher/administrator/society
// submitters; Non-goals in spec.md exclude full per-society validation, so
// this table carries the three canonical codes used across the corpus.
var SenderTypes = Table{
	Name: "Sender Type",
	Codes: codes(
		"PB", "Publisher",
		"SO", "Society",
		"AA", "Agent/Administrator",
	),
	Default: "PB",
}

// TitleTypes is the closed set of ALT title_type values.
var TitleTypes = Table{
	Name: "Title Type",
	Codes: codes(
		"AT", "Alternate Title",
		"FT", "First Alternate Title",
		"OT", "Original Title",
		"TE", "Alternate Title (Extended)",
		"TT", "Translated Title",
		"PT", "Alternate Title for a Component of an Entire Work",
		"RT", "First Alternate Title for an Entire Work",
		"ET", "European Title",
		"OL", "Original Title Language",
		"AL", "Alternative Title",
	),
	Default: "AT",
}

// SubmissionDistributionTypes is the closed set of GRH
// submission_distribution_type values.
var SubmissionDistributionTypes = Table{
	Name: "Submission/Distribution Type",
	Codes: codes(
		"RO", "Royalty",
		"IR", "International Royalty",
		"PD", "Publisher Direct",
	),
	Default: "RO",
}
