package warning

import "testing"

func TestSeverityString(t *testing.T) {
	cases := map[Severity]string{
		Info:     "Info",
		Warn:     "Warning",
		Critical: "Critical",
		Severity(99): "Unknown",
	}
	for sev, want := range cases {
		if got := sev.String(); got != want {
			t.Errorf("Severity(%d).String() = %q, want %q", sev, got, want)
		}
	}
}

func TestIsCritical(t *testing.T) {
	w := New("field", "Field Title", "HDR", Critical, "line too short to parse")
	if !w.IsCritical() {
		t.Fatal("a Critical warning should report IsCritical true")
	}

	w = New("field", "Field Title", "HDR", Warn, "value out of range")
	if w.IsCritical() {
		t.Fatal("a Warn severity warning should not report IsCritical true")
	}
}

func TestNewPopulatesFields(t *testing.T) {
	w := New("titleNo", "Title Number", "NWR", Warn, "not numeric")
	if w.FieldName != "titleNo" || w.FieldTitle != "Title Number" || w.Source != "NWR" {
		t.Fatalf("unexpected warning fields: %+v", w)
	}
	if w.Severity != Warn || w.Description != "not numeric" {
		t.Fatalf("unexpected severity/description: %+v", w)
	}
}
