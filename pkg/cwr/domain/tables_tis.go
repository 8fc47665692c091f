package domain

// TisCodes is the closed set of CISAC TIS (Territory Information System)
// numeric codes used by tis_numeric_code fields (TER, SPT, SWT). Grounded
// on lookups/tis_codes.rs, which models each territory with validity
// periods and a type (country / geographical group / etc.); this table
// keeps the common subset needed for field validation (code -> territory
// name), not the validity/hierarchy metadata, since the core's contract is
// field-level codec validation, not territory-chain business rules
// (explicitly out of scope per spec.md §1).
var TisCodes = Table{
	Name: "TIS Numeric Code",
	Codes: codes(
		"2136", "WORLD",
		"0124", "CANADA",
		"0250", "FRANCE",
		"0276", "GERMANY",
		"0392", "JAPAN",
		"0826", "UNITED KINGDOM",
		"0840", "UNITED STATES",
		"2124", "AFRICA",
	),
	Default: "2136",
}
