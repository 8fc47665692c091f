// Package dispatch reads a line's leading 3-character tag and routes it
// to the matching record schema (C8), driving the version resolver (C7)
// off the HDR record. Grounded on
// original_source/crates/allegro_cwr/src/cwr_registry.rs's
// register_record/RECORD_PARSERS map-of-parse-functions pattern, ported
// from a HashMap<&str, fn> built behind a LazyLock to a Go map built in
// an init().
package dispatch

import (
	"fmt"

	"github.com/cdacos/allegro/pkg/cwr/record"
	"github.com/cdacos/allegro/pkg/cwr/schema"
	"github.com/cdacos/allegro/pkg/cwr/version"
	"github.com/cdacos/allegro/pkg/cwr/warning"
)

// parseFunc parses one line at the given active version into a Record.
type parseFunc func(line string, v version.Version) (record.Record, []warning.Warning)

// registry maps every known CWR tag to the parser for its record type.
// Several tags share one Go type (NWR/REV/ISW/EXC, SPU/OPU, SWR/OWR,
// SPT/OPT, SWT/OWT, NET/NCT/NVT); each is registered under every tag it
// answers to, mirroring register_record's per-code loop.
var registry = map[string]parseFunc{}

func register[T record.Record](tags []string, sch schema.RecordSchema[T]) {
	fn := func(line string, v version.Version) (record.Record, []warning.Warning) {
		rec, warnings := schema.ParseRecordAt(line, sch, v)
		return rec, warnings
	}
	for _, tag := range tags {
		registry[tag] = fn
	}
}

func init() {
	register([]string{"HDR"}, record.HdrSchema)
	register([]string{"GRH"}, record.GrhSchema)
	register([]string{"GRT"}, record.GrtSchema)
	register([]string{"TRL"}, record.TrlSchema)
	register([]string{"AGR"}, record.AgrSchema)
	register(record.NwrTags, record.NwrSchema)
	register([]string{"ACK"}, record.AckSchema)
	register([]string{"TER"}, record.TerSchema)
	register([]string{"IPA"}, record.IpaSchema)
	register([]string{"NPA"}, record.NpaSchema)
	register(record.SpuTags, record.SpuSchema)
	register([]string{"NPN"}, record.NpnSchema)
	register(record.SptTags, record.SptSchema)
	register(record.SwrTags, record.SwrSchema)
	register([]string{"NWN"}, record.NwnSchema)
	register(record.SwtTags, record.SwtSchema)
	register([]string{"PWR"}, record.PwrSchema)
	register([]string{"ALT"}, record.AltSchema)
	register([]string{"NAT"}, record.NatSchema)
	register([]string{"EWT"}, record.EwtSchema)
	register([]string{"VER"}, record.VerSchema)
	register([]string{"PER"}, record.PerSchema)
	register([]string{"NPR"}, record.NprSchema)
	register([]string{"REC"}, record.RecSchema)
	register([]string{"ORN"}, record.OrnSchema)
	register([]string{"INS"}, record.InsSchema)
	register([]string{"IND"}, record.IndSchema)
	register([]string{"COM"}, record.ComSchema)
	register([]string{"MSG"}, record.MsgSchema)
	register(record.NetTags, record.NetSchema)
	register([]string{"NOW"}, record.NowSchema)
	register([]string{"ARI"}, record.AriSchema)
	register([]string{"XRF"}, record.XrfSchema)
}

// KnownTags returns every tag the dispatcher recognizes, for callers that
// need to validate or enumerate the supported record set.
func KnownTags() []string {
	tags := make([]string, 0, len(registry))
	for tag := range registry {
		tags = append(tags, tag)
	}
	return tags
}

// Placeholder stands in for a line the dispatcher could not route to a
// real record type: a truncated line (fewer than 3 bytes) or an
// unrecognized tag. Tag() returns the raw (possibly empty) tag text so
// callers can still report what was seen.
type Placeholder struct {
	RawTag  string
	Line    string
	LineNum int
}

func (p Placeholder) Tag() string { return p.RawTag }

func (p Placeholder) Format(v version.Version) (string, error) {
	return p.Line, nil
}

// Entry is one dispatched line: its source position, the record value
// (always non-nil; a Placeholder when routing failed), and every
// warning collected while producing it.
type Entry struct {
	LineNum  int
	Record   record.Record
	Warnings []warning.Warning
}

// Dispatcher routes successive lines to their record schema, updating
// the active version from the HDR record as it passes through, per
// spec.md §4.8.
type Dispatcher struct {
	resolver *version.Resolver
}

// New creates a Dispatcher. The active version starts at 2.2 and tracks
// the resolver's normal precedence (explicit override > HDR-declared >
// length-inferred) until an HDR line is dispatched.
func New(resolver *version.Resolver) *Dispatcher {
	if resolver == nil {
		resolver = version.NewResolver()
	}
	return &Dispatcher{resolver: resolver}
}

// Resolver exposes the dispatcher's version resolver so a caller can
// apply an explicit override before the first line is dispatched.
func (d *Dispatcher) Resolver() *version.Resolver {
	return d.resolver
}

// Dispatch routes one line: lines shorter than 3 bytes and lines whose
// tag is not registered both yield a Placeholder with a Critical
// warning rather than aborting the stream; an HDR line is parsed, fed
// to the version resolver (surfacing a VersionMismatch warning if a
// later HDR in the same stream disagrees with the first), and returned
// like any other record.
func (d *Dispatcher) Dispatch(lineNum int, line string) Entry {
	if len(line) < 3 {
		return Entry{
			LineNum: lineNum,
			Record:  Placeholder{RawTag: line, Line: line, LineNum: lineNum},
			Warnings: []warning.Warning{warning.New("record_type", "Record type", line, warning.Critical,
				fmt.Sprintf("line %d: truncated line (shorter than the 3-byte tag)", lineNum))},
		}
	}

	tag := line[:3]
	parse, ok := registry[tag]
	if !ok {
		return Entry{
			LineNum: lineNum,
			Record:  Placeholder{RawTag: tag, Line: line, LineNum: lineNum},
			Warnings: []warning.Warning{warning.New("record_type", "Record type", line, warning.Critical,
				fmt.Sprintf("line %d: unrecognized record type %q", lineNum, tag))},
		}
	}

	v := d.resolver.Active()
	rec, warnings := parse(line, v)

	if tag == "HDR" {
		if mismatch := d.resolver.ResolveFromHDR(line); mismatch {
			warnings = append(warnings, warning.New("", "", line, warning.Warn,
				fmt.Sprintf("line %d: HDR version disagrees with an earlier HDR in this stream; keeping the first", lineNum)))
		}
	}

	return Entry{LineNum: lineNum, Record: rec, Warnings: warnings}
}
