// Package lineio iterates a CWR byte stream as a lazy, single-pass
// sequence of (line number, line) pairs, stripping the CR/LF delimiter.
// Grounded on spec.md §4.6; structurally mirrors the read-until-EOF loop
// the teacher's internal/parser/csv.go drives over encoding/csv's Reader,
// adapted here to raw line splitting since CWR is fixed-width, not
// delimited.
package lineio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cdacos/allegro/pkg/cwr/warning"
)

// Reader yields successive CWR lines from an underlying byte stream.
type Reader struct {
	scanner *bufio.Scanner
	lineNum int
	loneLF  bool // set by the split func for the token just returned
}

// NewReader wraps r for line-oriented CWR iteration.
func NewReader(r io.Reader) *Reader {
	rd := &Reader{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	scanner.Split(rd.splitLines)
	rd.scanner = scanner
	return rd
}

// Next advances to the next line. It returns io.EOF when the stream is
// exhausted (trailing empty lines at EOF are suppressed). A lone LF is
// accepted and reported as an Info warning; a lone CR mid-stream is
// treated as ordinary data, matching spec.md §4.6.
func (r *Reader) Next() (lineNum int, line string, warnings []warning.Warning, err error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return 0, "", nil, err
		}
		return 0, "", nil, io.EOF
	}
	r.lineNum++
	text := r.scanner.Text()
	if r.loneLF {
		warnings = append(warnings, warning.New("", "", text, warning.Info,
			fmt.Sprintf("line %d terminated by a lone LF, not CRLF", r.lineNum)))
	}
	return r.lineNum, text, warnings, nil
}

// splitLines recognizes CRLF or a lone LF as the line terminator; a lone
// CR not followed by LF is left as data within the line.
func (r *Reader) splitLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	for i := 0; i < len(data); i++ {
		if data[i] == '\n' {
			end := i
			r.loneLF = true
			if end > 0 && data[end-1] == '\r' {
				end--
				r.loneLF = false
			}
			if end == 0 {
				// An empty line followed only by line-break bytes up to EOF
				// is trailing and is dropped together with the rest.
				j := i + 1
				for j < len(data) && (data[j] == '\r' || data[j] == '\n') {
					j++
				}
				if j == len(data) {
					if !atEOF {
						return 0, nil, nil
					}
					return len(data), nil, nil
				}
			}
			return i + 1, data[:end], nil
		}
	}
	if atEOF {
		r.loneLF = false
		return len(data), data, nil
	}
	return 0, nil, nil
}
