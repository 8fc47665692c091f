// Package render turns a dispatched CWR stream into JSON, a consumer of
// the parsed stream rather than a second parser. Grounded on
// original_source's allegro_cwr_json crate, which serializes the same
// parsed record stream the core parser produces.
package render

import (
	"encoding/json"
	"io"

	"github.com/cdacos/allegro/pkg/cwr/dispatch"
	"github.com/cdacos/allegro/pkg/cwr/version"
	"github.com/cdacos/allegro/pkg/cwr/warning"
)

// Record is one dispatched line rendered for JSON output: its source
// position, tag, canonically re-formatted line, and any warnings raised
// while parsing it.
type Record struct {
	LineNum  int               `json:"line_num"`
	Tag      string            `json:"tag"`
	Line     string            `json:"line"`
	Warnings []warning.Warning `json:"warnings,omitempty"`
}

// FromEntry converts a dispatch.Entry into its JSON view, re-formatting
// the record at v rather than re-emitting the raw input line.
func FromEntry(e dispatch.Entry, v version.Version) (Record, error) {
	line, err := e.Record.Format(v)
	if err != nil {
		return Record{}, err
	}
	return Record{
		LineNum:  e.LineNum,
		Tag:      e.Record.Tag(),
		Line:     line,
		Warnings: e.Warnings,
	}, nil
}

// WriteJSON renders entries as a single JSON array to w.
func WriteJSON(w io.Writer, entries []dispatch.Entry, v version.Version) error {
	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		rec, err := FromEntry(e, v)
		if err != nil {
			return err
		}
		records = append(records, rec)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
