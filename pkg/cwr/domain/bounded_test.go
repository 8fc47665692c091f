package domain

import "testing"

func TestParseWorksCountRoundTrip(t *testing.T) {
	n, warnings := ParseWorksCount("00042", "f", "t")
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if n != 42 {
		t.Fatalf("got %d, want 42", n)
	}
	if got := n.Format(); got != "00042" {
		t.Fatalf("Format() = %q, want %q", got, "00042")
	}
}

func TestParseWorksCountMalformedWarns(t *testing.T) {
	n, warnings := ParseWorksCount("abcde", "f", "t")
	if n != 0 {
		t.Fatalf("a malformed works count should default to zero, got %d", n)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %d", len(warnings))
	}
}

func TestParseShareRoundTrip(t *testing.T) {
	s, warnings := ParseShare("05000", "f", "t")
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if s != 5000 {
		t.Fatalf("got %d, want 5000", s)
	}
	if got := s.Format(); got != "05000" {
		t.Fatalf("Format() = %q, want %q", got, "05000")
	}
	if got := s.Percentage(); got != 50.0 {
		t.Fatalf("Percentage() = %v, want 50.0", got)
	}
}

func TestParseShareEmptyIsZeroWithNoWarning(t *testing.T) {
	s, warnings := ParseShare("", "f", "t")
	if s != 0 || len(warnings) != 0 {
		t.Fatalf("an empty share should parse to zero with no warnings, got %d %v", s, warnings)
	}
}

func TestParseShareOutOfRangeWarns(t *testing.T) {
	s, warnings := ParseShare("10001", "f", "t")
	if s != 0 {
		t.Fatalf("an out-of-range share should default to zero, got %d", s)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %d", len(warnings))
	}
}

func TestParseShareMalformedWarns(t *testing.T) {
	_, warnings := ParseShare("xxxxx", "f", "t")
	if len(warnings) != 1 {
		t.Fatalf("expected one warning for a malformed share, got %d", len(warnings))
	}
}
