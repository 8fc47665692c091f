package field

import "testing"

func TestAlphanumericRoundTrip(t *testing.T) {
	cases := []struct {
		raw   string
		width int
	}{
		{"ACME MUSIC          ", 20},
		{"SHORT", 5},
		{"          ", 10},
	}

	for _, c := range cases {
		value, warnings := Alphanumeric(c.raw, "name", "Name", c.width)
		if len(warnings) != 0 {
			t.Errorf("Alphanumeric(%q): unexpected warnings %v", c.raw, warnings)
		}
		formatted, err := FormatAlphanumeric(value, c.width)
		if err != nil {
			t.Fatalf("FormatAlphanumeric(%q): %v", value, err)
		}
		if formatted != c.raw {
			t.Errorf("round trip mismatch: got %q, want %q", formatted, c.raw)
		}
	}
}

func TestAlphanumericShortFieldWarns(t *testing.T) {
	_, warnings := Alphanumeric("AB", "name", "Name", 5)
	if len(warnings) != 1 {
		t.Fatalf("expected one warning for a short field, got %d", len(warnings))
	}
}

func TestNumericRoundTrip(t *testing.T) {
	n, warnings := Numeric("00042", "seq", "Sequence", 5)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if n != 42 {
		t.Fatalf("got %d, want 42", n)
	}
	formatted, err := FormatNumeric(n, 5)
	if err != nil {
		t.Fatalf("FormatNumeric: %v", err)
	}
	if formatted != "00042" {
		t.Fatalf("got %q, want %q", formatted, "00042")
	}
}

func TestNumericAllZeros(t *testing.T) {
	n, warnings := Numeric("00000", "seq", "Sequence", 5)
	if n != 0 || len(warnings) != 0 {
		t.Fatalf("got n=%d warnings=%v, want 0 and no warnings", n, warnings)
	}
}

func TestNumericOverflowsWidth(t *testing.T) {
	if _, err := FormatNumeric(123456, 5); err == nil {
		t.Fatal("expected an error formatting a value wider than its column")
	}
}

func TestDateValidAndZero(t *testing.T) {
	value, warnings := Date("20240115", "f", "t")
	if len(warnings) != 0 || value != "20240115" {
		t.Fatalf("got value=%q warnings=%v", value, warnings)
	}

	value, warnings = Date("00000000", "f", "t")
	if len(warnings) != 0 || value != "00000000" {
		t.Fatalf("zero date should pass through unwarned, got value=%q warnings=%v", value, warnings)
	}
}

func TestDateMalformedWarnsAndDefaults(t *testing.T) {
	value, warnings := Date("20241332", "f", "t")
	if value != "00000000" {
		t.Fatalf("malformed date should default to the zero sentinel, got %q", value)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %d", len(warnings))
	}
}

func TestTimeValidAndMalformed(t *testing.T) {
	value, warnings := Time("235959", "f", "t")
	if value != "235959" || len(warnings) != 0 {
		t.Fatalf("got value=%q warnings=%v", value, warnings)
	}

	value, warnings = Time("246000", "f", "t")
	if value != "000000" || len(warnings) != 1 {
		t.Fatalf("out-of-range time should warn and default, got value=%q warnings=%v", value, warnings)
	}
}

func TestBooleanParsing(t *testing.T) {
	if v, w := Boolean("Y", "f", "t"); !v || len(w) != 0 {
		t.Fatalf("Y should parse true with no warnings, got %v %v", v, w)
	}
	if v, w := Boolean("N", "f", "t"); v || len(w) != 0 {
		t.Fatalf("N should parse false with no warnings, got %v %v", v, w)
	}
	if _, w := Boolean("X", "f", "t"); len(w) != 1 {
		t.Fatalf("invalid boolean should warn once, got %v", w)
	}
}

func TestFlagTriState(t *testing.T) {
	for _, v := range []string{"Y", "N", "U"} {
		if got, w := Flag(v, "f", "t"); got != v || len(w) != 0 {
			t.Errorf("Flag(%q) = %q, %v; want %q, no warnings", v, got, w, v)
		}
	}
	if got, w := Flag("Z", "f", "t"); got != "U" || len(w) != 1 {
		t.Fatalf("invalid flag should default to U with one warning, got %q, %v", got, w)
	}
}
