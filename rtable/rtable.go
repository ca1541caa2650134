// Package rtable implements construction, storage, and indexing of rainbow
// tables.
//
// # Storage Format
//
// A table is stored as text, one chain per line, with the start and end words
// of the chain separated by a single TAB:
//
//	start<TAB>end
//
// The chain length and word list are not recorded; the caller must use the
// same values when the table is searched as when it was built.
package rtable

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/creachadair/mds/mstr"
)

// A Record is a single chain of a rainbow table.
type Record struct {
	Start string // the first word of the chain
	End   string // the last word of the chain
}

// ErrMalformed is reported by a strict Read for a line that is not a valid
// record.
var ErrMalformed = errors.New("malformed record")

// ParseError is the concrete type of errors reported by a strict Read.
type ParseError struct {
	Line int    // 1-based line number
	Text string // the offending line
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", p.Line, ErrMalformed, p.Text)
}

// Unwrap supports errors.Is for ErrMalformed.
func (p *ParseError) Unwrap() error { return ErrMalformed }

// Read reads records from r in storage format.  Surrounding whitespace is
// trimmed from each line and blank lines are ignored.  A line that does not
// have exactly two TAB-separated fields is skipped, unless strict is true, in
// which case Read reports a *ParseError.
func Read(r io.Reader, strict bool) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	var out []Record
	for i, line := range mstr.Lines(string(data)) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			if strict {
				return nil, &ParseError{Line: i + 1, Text: line}
			}
			continue
		}
		out = append(out, Record{Start: fields[0], End: fields[1]})
	}
	return out, nil
}

// Write writes recs to w in storage format.
func Write(w io.Writer, recs []Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		fmt.Fprintf(bw, "%s\t%s\n", r.Start, r.End)
	}
	return bw.Flush()
}
