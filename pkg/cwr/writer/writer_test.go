package writer

import (
	"strings"
	"testing"

	"github.com/cdacos/allegro/pkg/cwr/record"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

func TestWriteRecordAppendsCRLF(t *testing.T) {
	var buf strings.Builder
	w := New(&buf, version.V21)

	if err := w.WriteRecord(record.Trl{RecordType: "TRL", GroupCount: "00001", TransactionCount: "00000001", RecordCount: "00000003"}); err != nil {
		t.Fatalf("WriteRecord: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if !strings.HasSuffix(buf.String(), "\r\n") {
		t.Fatalf("expected a CRLF-terminated line, got %q", buf.String())
	}
}

func TestWriteAllAggregatesErrors(t *testing.T) {
	var buf strings.Builder
	w := New(&buf, version.V20)

	recs := []record.Record{
		record.Trl{RecordType: "TRL", GroupCount: "00001", TransactionCount: "00000001", RecordCount: "00000003"},
		record.Trl{RecordType: "TRL", GroupCount: "TOO LONG TO FIT", TransactionCount: "00000001", RecordCount: "00000003"},
	}

	err := w.WriteAll(recs)
	if err == nil {
		t.Fatal("expected WriteAll to aggregate a formatting error from the second record")
	}
}

func TestWriteFileReframeRecomputesCounts(t *testing.T) {
	var buf strings.Builder
	w := New(&buf, version.V21)

	file := File{
		Header: record.Hdr{RecordType: "HDR", SenderType: "PB", SenderID: "226144452", SenderName: "ACME MUSIC"},
		Groups: []Group{
			{
				TransactionType: "NWR",
				Transactions: [][]record.Record{
					{record.Hdr{RecordType: "HDR"}},
					{record.Hdr{RecordType: "HDR"}, record.Hdr{RecordType: "HDR"}},
				},
			},
		},
		Railer: record.Trl{RecordType: "TRL"},
	}

	if err := w.WriteFile(file, true); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\r\n"), "\r\n")
	// HDR + GRH + 2 transactions (1 + 2 records) + GRT + TRL = 1 + 1 + 3 + 1 + 1 = 7
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), out)
	}

	trl := lines[len(lines)-1]
	if !strings.HasPrefix(trl, "TRL") {
		t.Fatalf("last line should be TRL, got %q", trl)
	}
}

func TestFormatCountZeroPads(t *testing.T) {
	if got := formatCount(42, 5); got != "00042" {
		t.Fatalf("formatCount(42, 5) = %q, want %q", got, "00042")
	}
	if got := formatCount(0, 3); got != "000" {
		t.Fatalf("formatCount(0, 3) = %q, want %q", got, "000")
	}
}
