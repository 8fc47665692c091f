package dispatch

import (
	"strings"
	"testing"

	"github.com/cdacos/allegro/pkg/cwr/version"
)

func padTo(s string, n int) string {
	if len(s) >= n {
		return s[:n]
	}
	return s + strings.Repeat(" ", n-len(s))
}

func TestDispatchTruncatedLineYieldsCriticalPlaceholder(t *testing.T) {
	d := New(nil)
	entry := d.Dispatch(1, "HD")

	if _, ok := entry.Record.(Placeholder); !ok {
		t.Fatalf("expected a Placeholder record, got %T", entry.Record)
	}
	if len(entry.Warnings) != 1 || !entry.Warnings[0].IsCritical() {
		t.Fatalf("expected one Critical warning, got %v", entry.Warnings)
	}
}

func TestDispatchUnknownTagYieldsCriticalPlaceholder(t *testing.T) {
	d := New(nil)
	line := padTo("ZZZsomegarbageline", 20)
	entry := d.Dispatch(1, line)

	p, ok := entry.Record.(Placeholder)
	if !ok {
		t.Fatalf("expected a Placeholder record, got %T", entry.Record)
	}
	if p.Tag() != "ZZZ" {
		t.Fatalf("Placeholder.Tag() = %q, want %q", p.Tag(), "ZZZ")
	}
	if len(entry.Warnings) != 1 || !entry.Warnings[0].IsCritical() {
		t.Fatalf("expected one Critical warning, got %v", entry.Warnings)
	}
}

func TestDispatchRoutesHDRAndResolvesVersion(t *testing.T) {
	d := New(nil)
	line := padTo("HDRPB226144452ACME MUSIC", 86)
	entry := d.Dispatch(1, line)

	if entry.Record.Tag() != "HDR" {
		t.Fatalf("expected an HDR record, got tag %q", entry.Record.Tag())
	}
	if d.Resolver().Active() != version.V20 {
		t.Fatalf("an 86-byte HDR should resolve to 2.0, got %v", d.Resolver().Active())
	}
}

func TestDispatchOverrideTakesPrecedenceOverHDR(t *testing.T) {
	resolver := version.NewResolver()
	resolver.Override(version.V22)
	d := New(resolver)

	line := padTo("HDRPB226144452ACME MUSIC", 86)
	d.Dispatch(1, line)

	if d.Resolver().Active() != version.V22 {
		t.Fatalf("an explicit override should survive HDR dispatch, got %v", d.Resolver().Active())
	}
}

func TestKnownTagsIncludesCoreTags(t *testing.T) {
	tags := KnownTags()
	want := map[string]bool{"HDR": false, "GRH": false, "GRT": false, "TRL": false, "NWR": false}
	for _, tag := range tags {
		if _, ok := want[tag]; ok {
			want[tag] = true
		}
	}
	for tag, found := range want {
		if !found {
			t.Errorf("KnownTags() is missing expected tag %q", tag)
		}
	}
}
