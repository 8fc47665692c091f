package domain

// CurrencyCodes is the closed set of ISO 4217 currency codes used by GRT's
// currency_indicator field. A common subset, grounded on
// lookups/currency_codes.rs (there noted itself as "common subset").
var CurrencyCodes = Table{
	Name: "Currency Code",
	Codes: codes(
		"USD", "US Dollar", "EUR", "Euro", "GBP", "British Pound", "JPY", "Japanese Yen",
		"CHF", "Swiss Franc", "CAD", "Canadian Dollar", "AUD", "Australian Dollar",
		"SEK", "Swedish Krona", "NOK", "Norwegian Krone", "DKK", "Danish Krone",
		"PLN", "Polish Zloty", "CZK", "Czech Koruna", "HUF", "Hungarian Forint",
		"RON", "Romanian Leu", "BRL", "Brazilian Real", "MXN", "Mexican Peso",
		"CNY", "Chinese Yuan", "HKD", "Hong Kong Dollar", "SGD", "Singapore Dollar",
		"KRW", "South Korean Won", "INR", "Indian Rupee", "ZAR", "South African Rand",
		"NZD", "New Zealand Dollar", "ILS", "Israeli New Shekel",
	),
	Default: "USD",
}

// SocietyCodes is the closed set of CISAC society codes referenced by
// affiliation fields (pr_affiliation_society_num, mr_society, sr_society,
// etc.). Grounded on lookups/society_codes.rs (society name -> numeric
// code); this table is keyed by the zero-padded 3-digit numeric code as it
// appears on the wire, a common subset of the ~120 societies in source.
var SocietyCodes = Table{
	Name: "Society Code",
	Codes: codes(
		"001", "ACUM", "003", "AEPI", "004", "AGADU", "005", "AKM",
		"008", "APRA", "010", "ASCAP", "012", "AMCOS", "017", "AMRA",
		"021", "BMI", "023", "BUMA", "027", "CAPAC", "034", "HFA",
		"035", "GEMA", "036", "IPRS", "038", "JASRAC", "040", "KODA",
		"044", "MCPS", "048", "NCB", "052", "PRS", "055", "SABAM",
		"056", "SACD", "058", "SACEM", "061", "SADAIC", "063", "SAMRO",
		"072", "SGAE", "074", "SIAE", "078", "STEMRA", "079", "STIM",
		"080", "SUISA", "088", "CMRRA", "089", "TEOSTO", "090", "TONO",
		"101", "SOCAN",
	),
	Default: "010",
}
