// Package writer is the inverse of dispatch (C9): it formats typed
// records back to fixed-width lines, frames them into a well-formed
// CWR file (HDR / GRH...GRT pairs / TRL), and computes group,
// transaction, and record counts when the caller asks it to re-frame.
// Grounded on spec.md §4.9 and structurally mirrors
// original_source/crates/allegro_cwr/src/cwr_registry.rs's
// to_cwr_record_bytes dispatch-by-variant: there, one call formats
// whichever concrete record a CwrRegistry variant holds; here, every
// record.Record already knows how to format itself, so the writer just
// calls it and stitches the line into the file.
package writer

import (
	"bufio"
	"io"

	"github.com/cdacos/allegro/pkg/cwr/record"
	"github.com/cdacos/allegro/pkg/cwr/version"
	"go.uber.org/multierr"
)

// crlf is the CWR line terminator; spec.md §4.9 requires CR/LF on every
// written line regardless of host platform.
const crlf = "\r\n"

// Writer accumulates formatted lines for one CWR file and flushes them
// to an underlying byte sink.
type Writer struct {
	w       *bufio.Writer
	version version.Version
}

// New wraps w for CWR line-oriented output at the given active version.
func New(w io.Writer, v version.Version) *Writer {
	return &Writer{w: bufio.NewWriter(w), version: v}
}

// WriteRecord formats rec at the writer's active version and appends it
// with a CRLF terminator. Per spec.md §4.9, a field-level overflow is
// returned as an error and nothing is written for that record; no
// truncation is performed silently.
func (w *Writer) WriteRecord(rec record.Record) error {
	line, err := rec.Format(w.version)
	if err != nil {
		return err
	}
	if _, err := w.w.WriteString(line); err != nil {
		return err
	}
	_, err = w.w.WriteString(crlf)
	return err
}

// WriteAll formats and writes every record in order, aggregating every
// OverflowOnFormat (or I/O) error encountered across the whole slice
// into a single multierr rather than stopping at the first failure —
// so a caller fixing overflows can see every offending record in one
// pass instead of one compile-edit-run cycle per record.
func (w *Writer) WriteAll(recs []record.Record) error {
	var errs error
	for _, rec := range recs {
		if err := w.WriteRecord(rec); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// Flush pushes any buffered bytes to the underlying writer. Callers
// must call Flush (or rely on a deferred call) before the underlying
// sink is closed.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Group is one GRH/GRT-bracketed run of transactions, grouped by
// transaction type (e.g. all NWR transactions, then all REV
// transactions), per spec.md §4.9's "HDR may be followed by any number
// of groups, each bracketed by GRH/GRT" framing rule.
type Group struct {
	TransactionType string
	Transactions    [][]record.Record
}

// File is a complete, well-framed CWR transmission: one HDR, zero or
// more Groups, and the closing TRL. Group and transaction sequence
// numbers inside each record are assumed already correct. WriteFile
// builds each group's GRH and GRT itself; the counts carried by Railer
// are recomputed only when the caller asks for re-framing.
type File struct {
	Header record.Hdr
	Groups []Group
	Railer record.Trl
}

// WriteFile writes a complete framed CWR file: HDR, then for each group
// a GRH, its transactions' records in order, and a GRT, then the final
// TRL. GRH and GRT are always built from the Group: sequential group IDs
// from 00001, the group's transaction count, and its record count
// including GRH and GRT. When reframe is true, the TRL group, transaction
// and record counts are recomputed from what is written; otherwise
// f.Railer is written as supplied.
func (w *Writer) WriteFile(f File, reframe bool) error {
	var errs error

	totalGroups := len(f.Groups)
	totalTransactions := 0
	totalRecords := 1 // HDR itself
	for _, g := range f.Groups {
		totalTransactions += len(g.Transactions)
		totalRecords += 2 // GRH + GRT
		for _, tx := range g.Transactions {
			totalRecords += len(tx)
		}
	}
	totalRecords++ // TRL

	if reframe {
		f.Railer.GroupCount = formatCount(totalGroups, 5)
		f.Railer.TransactionCount = formatCount(totalTransactions, 8)
		f.Railer.RecordCount = formatCount(totalRecords, 8)
	}

	if err := w.WriteRecord(f.Header); err != nil {
		errs = multierr.Append(errs, err)
	}

	for i, g := range f.Groups {
		grhCount := 0
		for _, tx := range g.Transactions {
			grhCount += len(tx)
		}

		grh := record.Grh{
			RecordType:      "GRH",
			TransactionType: g.TransactionType,
			GroupID:         formatCount(i+1, 5),
		}
		if err := w.WriteRecord(grh); err != nil {
			errs = multierr.Append(errs, err)
		}

		for _, tx := range g.Transactions {
			for _, rec := range tx {
				if err := w.WriteRecord(rec); err != nil {
					errs = multierr.Append(errs, err)
				}
			}
		}

		grt := record.Grt{
			RecordType:       "GRT",
			GroupID:          grh.GroupID,
			TransactionCount: formatCount(len(g.Transactions), 8),
			RecordCount:      formatCount(grhCount+2, 8),
		}
		if err := w.WriteRecord(grt); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	if err := w.WriteRecord(f.Railer); err != nil {
		errs = multierr.Append(errs, err)
	}

	if err := w.Flush(); err != nil {
		errs = multierr.Append(errs, err)
	}

	return errs
}

// formatCount zero-pads n to width digits, matching the numeric field
// codec's right-justify/zero-fill convention (field.FormatNumeric
// without the overflow check, since these counts are computed, not
// caller-supplied and thus never need to warn).
func formatCount(n, width int) string {
	s := itoa(n)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
